package memscene

import (
	"slices"

	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// HitTest returns the innermost visible primitive containing p, or nil.
// Later siblings paint on top and win.
func (s *Scene) HitTest(p graphics.Point) scene.Primitive {
	if n := s.hit(p); n != nil {
		return n
	}
	return nil
}

func (s *Scene) hit(p graphics.Point) *Node {
	var visit func(n *Node) *Node
	visit = func(n *Node) *Node {
		for i := len(n.children) - 1; i >= 0; i-- {
			c := n.children[i]
			if c.hidden {
				continue
			}
			if c.shape == scene.ShapeGroup {
				if h := visit(c); h != nil {
					return h
				}
				continue
			}
			if c.contains(p) {
				return c
			}
		}
		return nil
	}
	return visit(s.root)
}

// PointerMove delivers a pointer move to p.
func (s *Scene) PointerMove(p graphics.Point) {
	target := s.track(p)
	s.dispatch(scene.PointerMove, target, target, p)
}

// PointerDown delivers a button press at p.
func (s *Scene) PointerDown(p graphics.Point) {
	target := s.track(p)
	s.pressed = target
	s.dispatch(scene.PointerDown, target, target, p)
}

// PointerUp delivers a button release at p. When the release lands inside
// the subtree that received the press, a click follows on their nearest
// common ancestor.
func (s *Scene) PointerUp(p graphics.Point) {
	target := s.track(p)
	pressed := s.pressed
	s.pressed = nil
	s.dispatch(scene.PointerUp, target, target, p)
	if target == nil || pressed == nil {
		return
	}
	if common := commonAncestor(pressed, target); common != nil && common != s.root {
		s.dispatch(scene.PointerClick, common, common, p)
	}
}

// Click is a press followed by a release at p.
func (s *Scene) Click(p graphics.Point) {
	s.PointerDown(p)
	s.PointerUp(p)
}

// Key delivers a key event to every keyboard subscriber in registration order.
func (s *Scene) Key(ev scene.KeyEvent) {
	for _, h := range slices.Clone(s.keys) {
		h(ev)
	}
}

// track records the pointer position and emits out/over events when the
// innermost hovered primitive changes.
func (s *Scene) track(p graphics.Point) *Node {
	s.pointer = p
	target := s.hit(p)
	if target == s.hovered {
		return target
	}
	oldChain := s.chain(s.hovered)
	newChain := s.chain(target)
	prev := s.hovered
	s.hovered = target

	for _, n := range oldChain {
		if !slices.Contains(newChain, n) {
			n.emit(scene.PointerEvent{Kind: scene.PointerOut, Position: p, Target: primitive(prev)})
		}
	}
	for i := len(newChain) - 1; i >= 0; i-- {
		n := newChain[i]
		if !slices.Contains(oldChain, n) {
			n.emit(scene.PointerEvent{Kind: scene.PointerOver, Position: p, Target: primitive(target)})
		}
	}
	return target
}

// chain returns n and its ancestors below the root, innermost first.
func (s *Scene) chain(n *Node) []*Node {
	var out []*Node
	for ; n != nil && n != s.root; n = n.parent {
		out = append(out, n)
	}
	return out
}

// dispatch bubbles an event from start up to the canvas.
func (s *Scene) dispatch(kind scene.PointerKind, start, target *Node, p graphics.Point) {
	ev := scene.PointerEvent{Kind: kind, Position: p, Target: primitive(target)}
	for n := start; n != nil && n != s.root; n = n.parent {
		n.emit(ev)
	}
	for _, h := range slices.Clone(s.canvas[kind]) {
		h(ev)
	}
}

func (n *Node) emit(ev scene.PointerEvent) {
	for _, h := range slices.Clone(n.handlers[ev.Kind]) {
		h(ev)
	}
}

func commonAncestor(a, b *Node) *Node {
	for p := a; p != nil; p = p.parent {
		if p.isAncestorOf(b) {
			return p
		}
	}
	return nil
}

// primitive converts n to an interface value that is nil when n is nil.
func primitive(n *Node) scene.Primitive {
	if n == nil {
		return nil
	}
	return n
}
