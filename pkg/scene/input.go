package scene

import "github.com/go-drift/widgetkit/pkg/graphics"

// PointerKind identifies a raw pointer event.
type PointerKind uint8

const (
	// PointerOver fires when the pointer enters a primitive or any of its descendants.
	PointerOver PointerKind = 1 << iota
	// PointerOut fires when the pointer leaves a primitive and all of its descendants.
	PointerOut
	// PointerDown fires when a button is pressed.
	PointerDown
	// PointerUp fires when a button is released.
	PointerUp
	// PointerMove fires when the pointer moves.
	PointerMove
	// PointerClick fires after an up on the same primitive that received the down.
	PointerClick
)

func (k PointerKind) String() string {
	switch k {
	case PointerOver:
		return "over"
	case PointerOut:
		return "out"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	case PointerMove:
		return "move"
	case PointerClick:
		return "click"
	default:
		return "unknown"
	}
}

// PointerEvent is a raw pointer event.
type PointerEvent struct {
	Kind PointerKind
	// Position is the pointer location in scene coordinates.
	Position graphics.Point
	// Target is the innermost visible primitive under the pointer, or nil
	// when the pointer is over empty canvas.
	Target Primitive
}

// Key codes for the keys widgets treat specially. Other keys carry their
// character in KeyEvent.Key.
const (
	CodeBackspace  = "Backspace"
	CodeSpace      = "Space"
	CodeShiftLeft  = "ShiftLeft"
	CodeShiftRight = "ShiftRight"
	CodeEnter      = "Enter"
	CodeTab        = "Tab"
)

// KeyEvent is a raw key release.
type KeyEvent struct {
	// Code names the physical key, e.g. "KeyA", "Space", "ShiftLeft".
	Code string
	// Key is the produced character for printable keys, or the key name otherwise.
	Key string
}

// IsShift reports whether the event is a shift key on either side.
func (e KeyEvent) IsShift() bool {
	return e.Code == CodeShiftLeft || e.Code == CodeShiftRight
}
