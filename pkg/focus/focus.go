// Package focus tracks which widget receives keyboard input.
//
// The scene has a single keyboard stream that every text box listens to.
// A FocusManager holds at most one primary FocusNode; a listener only acts
// on a key when its node has primary focus, so each keystroke reaches one
// widget.
package focus

// FocusNode represents a focusable widget.
type FocusNode struct {
	CanRequestFocus bool
	DebugLabel      string

	// OnFocusChange is called after the node gains or loses primary focus.
	OnFocusChange func(hasFocus bool)

	manager         *FocusManager
	hasPrimaryFocus bool
}

// HasPrimaryFocus reports whether this node is the primary focus.
func (n *FocusNode) HasPrimaryFocus() bool {
	return n != nil && n.hasPrimaryFocus
}

// RequestFocus requests that this node receive primary focus. Nodes that
// were never registered with a manager, or that cannot request focus, are
// ignored.
func (n *FocusNode) RequestFocus() {
	if n == nil || !n.CanRequestFocus || n.manager == nil {
		return
	}
	n.manager.setPrimaryFocus(n)
}

// Unfocus removes focus from this node if it has primary focus.
func (n *FocusNode) Unfocus() {
	if n == nil || n.manager == nil {
		return
	}
	if n.manager.primary == n {
		n.manager.setPrimaryFocus(nil)
	}
}

// setFocusState updates the focus flag and notifies the callback.
func (n *FocusNode) setFocusState(hasFocus bool) {
	n.hasPrimaryFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}

// FocusManager owns the primary focus for one scene.
type FocusManager struct {
	primary *FocusNode
	nodes   []*FocusNode
}

// NewFocusManager returns a manager with nothing focused.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// Register adds n to the traversal order and binds it to m.
func (m *FocusManager) Register(n *FocusNode) {
	n.manager = m
	m.nodes = append(m.nodes, n)
}

// PrimaryFocus returns the focused node, or nil.
func (m *FocusManager) PrimaryFocus() *FocusNode {
	return m.primary
}

// MoveFocus moves focus by delta positions in registration order, wrapping
// around and skipping nodes that cannot request focus.
func (m *FocusManager) MoveFocus(delta int) bool {
	count := len(m.nodes)
	if count == 0 {
		return false
	}

	current := m.indexOf(m.primary)
	if current < 0 && delta < 0 {
		current = 0
	}
	for step := 1; step <= count; step++ {
		candidate := m.nodes[wrapIndex(current+delta*step, count)]
		if candidate.CanRequestFocus {
			m.setPrimaryFocus(candidate)
			return true
		}
	}
	return false
}

// Clear removes primary focus.
func (m *FocusManager) Clear() {
	m.setPrimaryFocus(nil)
}

func (m *FocusManager) indexOf(n *FocusNode) int {
	for i, node := range m.nodes {
		if node == n {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// setPrimaryFocus updates the primary focus to the given node.
func (m *FocusManager) setPrimaryFocus(node *FocusNode) {
	if m.primary == node {
		return
	}
	prev := m.primary
	m.primary = node
	if prev != nil {
		prev.setFocusState(false)
	}
	if node != nil {
		node.setFocusState(true)
	}
}
