package testing

import (
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// dragSteps is the number of intermediate moves Drag emits.
const dragSteps = 10

// Hover moves the pointer to pos.
func (t *WidgetTester) Hover(pos graphics.Point) {
	t.scene.PointerMove(pos)
}

// Press moves the pointer to pos and presses the button there.
func (t *WidgetTester) Press(pos graphics.Point) {
	t.scene.PointerMove(pos)
	t.scene.PointerDown(pos)
}

// Release releases the button at pos.
func (t *WidgetTester) Release(pos graphics.Point) {
	t.scene.PointerUp(pos)
}

// Tap moves the pointer to pos and clicks there.
func (t *WidgetTester) Tap(pos graphics.Point) {
	t.scene.PointerMove(pos)
	t.scene.Click(pos)
}

// TapPrimitive taps the center of p.
func (t *WidgetTester) TapPrimitive(p scene.Primitive) {
	t.Tap(p.Bounds().Center())
}

// Drag presses at start, moves by delta in even steps and releases at the
// end point.
func (t *WidgetTester) Drag(start, delta graphics.Point) {
	t.Press(start)
	for i := 1; i <= dragSteps; i++ {
		frac := float64(i) / dragSteps
		t.scene.PointerMove(graphics.Pt(start.X+delta.X*frac, start.Y+delta.Y*frac))
	}
	t.Release(start.Add(delta))
}

// DragThrough presses at the first point, moves through the rest in order
// and releases at the last one.
func (t *WidgetTester) DragThrough(points ...graphics.Point) {
	if len(points) == 0 {
		return
	}
	t.Press(points[0])
	for _, p := range points[1:] {
		t.scene.PointerMove(p)
	}
	t.Release(points[len(points)-1])
}

// Key sends a single key event.
func (t *WidgetTester) Key(code, key string) {
	t.scene.Key(scene.KeyEvent{Code: code, Key: key})
}

// Type sends one key event per rune of s. Spaces are sent as the Space key.
func (t *WidgetTester) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			t.Key(scene.CodeSpace, " ")
			continue
		}
		t.Key(keyCode(r), string(r))
	}
}

// Backspace sends n Backspace key events, or one when n is omitted.
func (t *WidgetTester) Backspace(n ...int) {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	for i := 0; i < count; i++ {
		t.Key(scene.CodeBackspace, "Backspace")
	}
}

// Shift sends a left Shift key event.
func (t *WidgetTester) Shift() {
	t.Key(scene.CodeShiftLeft, "Shift")
}

// keyCode returns the physical key name a US keyboard reports for r.
func keyCode(r rune) string {
	switch {
	case r >= 'a' && r <= 'z':
		return "Key" + string(r-'a'+'A')
	case r >= 'A' && r <= 'Z':
		return "Key" + string(r)
	case r >= '0' && r <= '9':
		return "Digit" + string(r)
	default:
		return "Unidentified"
	}
}
