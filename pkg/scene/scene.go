// Package scene defines the rendering and input collaborator that widgets
// draw into.
//
// A Scene owns drawable primitives (rectangles, circles, text and groups)
// and delivers raw pointer and keyboard input to them. Widgets build their
// visuals out of primitives, subscribe to the raw events they care about,
// and translate them into semantic events. Widgets never measure glyphs or
// compute layout themselves; they ask the primitives.
//
// Coordinates are scene pixels with the origin at the top-left corner.
package scene

import (
	"time"

	"github.com/go-drift/widgetkit/pkg/graphics"
)

// Shape identifies the kind of a primitive.
type Shape uint8

const (
	ShapeRect Shape = iota
	ShapeCircle
	ShapeText
	ShapeGroup
)

func (s Shape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	case ShapeText:
		return "text"
	case ShapeGroup:
		return "group"
	default:
		return "unknown"
	}
}

// Primitive is a drawable element owned by a Scene.
type Primitive interface {
	// Shape reports what kind of primitive this is.
	Shape() Shape
	// Move places the top-left corner of the primitive's bounds at (x, y).
	// Moving a group translates all of its children by the same offset.
	Move(x, y float64)
	// Bounds returns the primitive's bounding box in scene coordinates.
	Bounds() graphics.Rect
	// SetSize resizes the primitive. Groups ignore it.
	SetSize(width, height float64)
	// Fill sets the fill color. Groups ignore it.
	Fill(c graphics.Color)
	// FillColor returns the current fill color.
	FillColor() graphics.Color
	// Stroke sets the outline width and color.
	Stroke(width float64, c graphics.Color)
	// Show makes the primitive visible.
	Show()
	// Hide makes the primitive invisible. Hidden primitives are not hit.
	Hide()
	// Visible reports whether the primitive and all its ancestors are shown.
	Visible() bool
	// On subscribes h to pointer events of kind delivered to this primitive.
	// Subscriptions accumulate and run in registration order.
	On(kind PointerKind, h func(PointerEvent))
	// Parent returns the group containing the primitive, or nil for the canvas root.
	Parent() Group
}

// Text is a primitive that renders a single line of text.
type Text interface {
	Primitive
	// SetContent replaces the rendered string.
	SetContent(s string)
	// Content returns the rendered string.
	Content() string
	// Length returns the rendered width of the content in pixels.
	Length() float64
}

// Group composes primitives so they move together.
type Group interface {
	Primitive
	// Add re-parents children into the group, appending them on top.
	Add(children ...Primitive)
	// Children returns the direct children in paint order.
	Children() []Primitive
}

// Animation is a running property animation.
type Animation interface {
	// Start begins (or restarts) the loop.
	Start()
	// Stop halts the loop and restores the primitive's original width.
	Stop()
	// Running reports whether the loop is active.
	Running() bool
}

// Scene creates primitives and routes input to them.
type Scene interface {
	// Rect creates a rectangle at the origin on the canvas root.
	Rect(width, height float64) Primitive
	// Circle creates a circle at the origin on the canvas root.
	Circle(diameter float64) Primitive
	// Text creates a text primitive at the origin on the canvas root.
	Text(content string) Text
	// Group creates an empty group on the canvas root.
	Group() Group

	// OnPointer subscribes h to every pointer event of kind, wherever it
	// lands on the canvas. Drag widgets use it to observe releases outside
	// their own bounds.
	OnPointer(kind PointerKind, h func(PointerEvent))
	// OnKey subscribes h to the process-wide keyboard stream. Every
	// subscriber sees every key, in registration order.
	OnKey(h func(KeyEvent))

	// LoopWidth tweens p's width between its current value and width,
	// swinging back and forth once per period until stopped.
	LoopWidth(p Primitive, width float64, period time.Duration) Animation
}

// CenterOn moves p so that the center of its bounds is at c.
func CenterOn(p Primitive, c graphics.Point) {
	b := p.Bounds()
	p.Move(c.X-b.Dx()/2, c.Y-b.Dy()/2)
}

// MoveX moves p horizontally, keeping its vertical position.
func MoveX(p Primitive, x float64) {
	p.Move(x, p.Bounds().Min.Y)
}

// MoveY moves p vertically, keeping its horizontal position.
func MoveY(p Primitive, y float64) {
	p.Move(p.Bounds().Min.X, y)
}

// Position returns the top-left corner of p's bounds.
func Position(p Primitive) graphics.Point {
	return p.Bounds().Min
}
