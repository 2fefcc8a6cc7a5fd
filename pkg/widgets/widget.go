package widgets

import (
	"github.com/google/uuid"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/focus"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
	"github.com/go-drift/widgetkit/pkg/theme"
)

// Toolkit creates widgets on one scene with a shared theme and focus register.
type Toolkit struct {
	scene scene.Scene
	theme *theme.ThemeData
	focus *focus.FocusManager
}

// Option configures a Toolkit.
type Option func(*Toolkit)

// WithTheme sets the theme used by widgets created afterwards. A theme
// that fails Validate is reported and the default theme is kept.
func WithTheme(t *theme.ThemeData) Option {
	return func(tk *Toolkit) {
		if t == nil {
			return
		}
		if err := t.Validate(); err != nil {
			errors.Report(&errors.ToolkitError{Op: "widgets.WithTheme", Kind: errors.KindTheme, Err: err})
			return
		}
		tk.theme = t
	}
}

// WithFocusManager shares a focus register between toolkits.
func WithFocusManager(m *focus.FocusManager) Option {
	return func(tk *Toolkit) {
		if m != nil {
			tk.focus = m
		}
	}
}

// New returns a toolkit drawing into sc.
func New(sc scene.Scene, opts ...Option) *Toolkit {
	tk := &Toolkit{
		scene: sc,
		theme: theme.DefaultTheme(),
		focus: focus.NewFocusManager(),
	}
	for _, opt := range opts {
		opt(tk)
	}
	return tk
}

// Scene returns the scene widgets draw into.
func (tk *Toolkit) Scene() scene.Scene { return tk.scene }

// Theme returns the toolkit theme.
func (tk *Toolkit) Theme() *theme.ThemeData { return tk.theme }

// Focus returns the focus register routing keyboard input.
func (tk *Toolkit) Focus() *focus.FocusManager { return tk.focus }

// StateEvent describes a widget state transition. Pointer or Key carries
// the raw input that caused it, whichever applies.
type StateEvent struct {
	Widget  uuid.UUID
	From    WidgetState
	To      WidgetState
	Pointer scene.PointerEvent
	Key     scene.KeyEvent
}

// base holds what every widget owns: identity, its scene group, the state
// machine and the state-change slot.
type base struct {
	id      uuid.UUID
	kind    string
	tk      *Toolkit
	group   scene.Group
	machine stateMachine
	// repaint restyles primitives after a transition, before handlers run.
	repaint func()

	onStateChange event.Slot[StateEvent]
}

func newBase(tk *Toolkit, kind string, table TransitionTable) base {
	return base{
		id:      uuid.New(),
		kind:    kind,
		tk:      tk,
		group:   tk.scene.Group(),
		machine: stateMachine{state: Idle, table: table},
	}
}

// ID returns the widget's identity.
func (b *base) ID() uuid.UUID { return b.id }

// State returns the current interaction state.
func (b *base) State() WidgetState { return b.machine.state }

// Move places the widget's top-left corner at (x, y).
func (b *base) Move(x, y float64) { b.group.Move(x, y) }

// Bounds returns the area covered by the widget.
func (b *base) Bounds() graphics.Rect { return b.group.Bounds() }

// OnStateChange registers the handler called after every state transition,
// replacing any previous one.
func (b *base) OnStateChange(h func(StateEvent)) { b.onStateChange.Set(h) }

// transition fires t and notifies the state-change slot if the state moved.
func (b *base) transition(t Trigger, cause StateEvent) bool {
	from, to, changed := b.machine.fire(t)
	if !changed {
		return false
	}
	if b.repaint != nil {
		b.repaint()
	}
	cause.Widget, cause.From, cause.To = b.id, from, to
	b.onStateChange.Invoke(cause)
	return true
}

// notify invokes the state-change slot without a transition.
func (b *base) notify(cause StateEvent) {
	s := b.machine.state
	cause.Widget, cause.From, cause.To = b.id, s, s
	b.onStateChange.Invoke(cause)
}

// report sends a configuration error for this widget to the error handler.
func (b *base) report(op string, err error) {
	te := errors.Config("widgets."+b.kind+"."+op, err)
	te.Widget = b.id.String()
	errors.Report(te)
}

func pointerCause(ev scene.PointerEvent) StateEvent {
	return StateEvent{Pointer: ev}
}

// contains reports whether p is g or lies inside g.
func contains(g scene.Group, p scene.Primitive) bool {
	for p != nil {
		if p == scene.Primitive(g) {
			return true
		}
		parent := p.Parent()
		if parent == nil {
			return false
		}
		p = parent
	}
	return false
}
