package memscene

import (
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// Node is a primitive in a memscene. It implements scene.Primitive,
// scene.Text and scene.Group; methods that do not apply to its shape are
// no-ops.
type Node struct {
	scene    *Scene
	id       int
	shape    scene.Shape
	bounds   graphics.Rect
	fill     graphics.Color
	stroke   graphics.Color
	strokeW  float64
	hidden   bool
	content  string
	parent   *Node
	children []*Node
	handlers map[scene.PointerKind][]func(scene.PointerEvent)
}

var (
	_ scene.Text  = (*Node)(nil)
	_ scene.Group = (*Node)(nil)
)

// ID returns a scene-unique identifier, stable for the node's lifetime.
func (n *Node) ID() int { return n.id }

// Shape implements scene.Primitive.
func (n *Node) Shape() scene.Shape { return n.shape }

// Move implements scene.Primitive.
func (n *Node) Move(x, y float64) {
	if n.shape != scene.ShapeGroup {
		n.bounds = graphics.RectXYWH(x, y, n.bounds.Dx(), n.bounds.Dy())
		return
	}
	if len(n.children) == 0 {
		n.bounds = graphics.RectXYWH(x, y, 0, 0)
		return
	}
	n.translate(graphics.Pt(x, y).Sub(n.Bounds().Min))
}

func (n *Node) translate(d graphics.Point) {
	if n.shape != scene.ShapeGroup {
		n.bounds = n.bounds.Add(d)
		return
	}
	for _, c := range n.children {
		c.translate(d)
	}
}

// Bounds implements scene.Primitive. A group's bounds are the union of its
// children's bounds.
func (n *Node) Bounds() graphics.Rect {
	if n.shape != scene.ShapeGroup || len(n.children) == 0 {
		return n.bounds
	}
	var r graphics.Rect
	for _, c := range n.children {
		r = r.Union(c.Bounds())
	}
	return r
}

// SetSize implements scene.Primitive. Text sizes follow their content.
func (n *Node) SetSize(width, height float64) {
	switch n.shape {
	case scene.ShapeRect, scene.ShapeCircle:
		n.bounds.Max = graphics.Pt(n.bounds.Min.X+max(width, 0), n.bounds.Min.Y+max(height, 0))
	}
}

// Fill implements scene.Primitive.
func (n *Node) Fill(c graphics.Color) {
	if n.shape != scene.ShapeGroup {
		n.fill = c
	}
}

// FillColor implements scene.Primitive.
func (n *Node) FillColor() graphics.Color { return n.fill }

// Stroke implements scene.Primitive.
func (n *Node) Stroke(width float64, c graphics.Color) {
	n.strokeW = width
	n.stroke = c
}

// StrokeStyle returns the outline width and color.
func (n *Node) StrokeStyle() (float64, graphics.Color) { return n.strokeW, n.stroke }

// Show implements scene.Primitive.
func (n *Node) Show() { n.hidden = false }

// Hide implements scene.Primitive.
func (n *Node) Hide() { n.hidden = true }

// Visible implements scene.Primitive.
func (n *Node) Visible() bool {
	for p := n; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}
	return true
}

// On implements scene.Primitive.
func (n *Node) On(kind scene.PointerKind, h func(scene.PointerEvent)) {
	n.handlers[kind] = append(n.handlers[kind], h)
}

// Parent implements scene.Primitive.
func (n *Node) Parent() scene.Group {
	if n.parent == nil || n.parent == n.scene.root {
		return nil
	}
	return n.parent
}

// SetContent implements scene.Text.
func (n *Node) SetContent(s string) {
	if n.shape != scene.ShapeText {
		return
	}
	n.content = s
	n.bounds.Max.X = n.bounds.Min.X + n.scene.measure(s)
}

// Content implements scene.Text.
func (n *Node) Content() string { return n.content }

// Length implements scene.Text.
func (n *Node) Length() float64 {
	if n.shape != scene.ShapeText {
		return 0
	}
	return n.scene.measure(n.content)
}

// Add implements scene.Group.
func (n *Node) Add(children ...scene.Primitive) {
	if n.shape != scene.ShapeGroup {
		return
	}
	for _, child := range children {
		c, ok := child.(*Node)
		if !ok || c.scene != n.scene || c.isAncestorOf(n) {
			continue
		}
		n.add(c)
	}
}

func (n *Node) add(c *Node) {
	if old := c.parent; old != nil {
		for i, sib := range old.children {
			if sib == c {
				old.children = append(old.children[:i], old.children[i+1:]...)
				break
			}
		}
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *Node) isAncestorOf(m *Node) bool {
	for p := m; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// Children implements scene.Group.
func (n *Node) Children() []scene.Primitive {
	out := make([]scene.Primitive, len(n.children))
	for i, c := range n.children {
		out[i] = c
	}
	return out
}

func (n *Node) contains(p graphics.Point) bool {
	switch n.shape {
	case scene.ShapeCircle:
		c := n.bounds.Center()
		r := n.bounds.Dx() / 2
		d := p.Sub(c)
		return d.X*d.X+d.Y*d.Y <= r*r
	default:
		return n.bounds.Contains(p)
	}
}
