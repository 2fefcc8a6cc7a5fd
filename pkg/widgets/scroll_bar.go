package widgets

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// Direction is the inferred direction of a scroll drag.
type Direction uint8

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// ScrollEvent is delivered after a drag moves the slider.
type ScrollEvent struct {
	// Position is the slider's top-left corner.
	Position  graphics.Point
	Direction Direction
	Pointer   scene.PointerEvent
}

// ScrollBar is a vertical track with a draggable slider a third of its
// height. The slider never leaves the track.
type ScrollBar struct {
	base

	track  scene.Primitive
	slider scene.Primitive
	height float64

	dragging bool
	// grab is the pointer's distance below the slider top when the drag began.
	grab float64
	// last is the pointer Y the direction is measured against.
	last      float64
	direction Direction

	onScroll event.Slot[ScrollEvent]
}

// NewScrollBar creates a scroll bar of the given track height at the scene
// origin. A non-positive height is reported and replaced by the theme's.
func (tk *Toolkit) NewScrollBar(height float64) *ScrollBar {
	th := tk.theme.ScrollBar
	s := &ScrollBar{base: newBase(tk, "ScrollBar", DragTransitions)}
	if height <= 0 {
		s.report("New", fmt.Errorf("track height must be positive, got %v", height))
		height = th.Height
	}
	s.height = height

	cs := tk.theme.ColorScheme
	s.track = tk.scene.Rect(th.Width, height)
	s.track.Fill(cs.Idle)
	s.slider = tk.scene.Rect(th.Width, height/3)
	s.group.Add(s.track, s.slider)
	s.repaint = s.paint

	s.slider.On(scene.PointerOver, func(ev scene.PointerEvent) { s.transition(TriggerEnter, pointerCause(ev)) })
	s.slider.On(scene.PointerOut, func(ev scene.PointerEvent) { s.transition(TriggerLeave, pointerCause(ev)) })
	s.slider.On(scene.PointerDown, s.press)
	// Moves and releases are observed on the whole canvas so a drag keeps
	// working once the pointer leaves the slider.
	tk.scene.OnPointer(scene.PointerMove, s.drag)
	tk.scene.OnPointer(scene.PointerUp, s.release)

	s.paint()
	return s
}

// Height returns the track height.
func (s *ScrollBar) Height() float64 { return s.height }

// Position returns the slider's top-left corner.
func (s *ScrollBar) Position() graphics.Point { return scene.Position(s.slider) }

// ScrollPosition returns the slider position formatted as "(x, y)".
func (s *ScrollBar) ScrollPosition() string { return s.Position().String() }

// Offset returns the slider's distance below the track top.
func (s *ScrollBar) Offset() float64 {
	return scene.Position(s.slider).Y - scene.Position(s.track).Y
}

// Direction returns the direction of the most recent drag movement.
func (s *ScrollBar) Direction() Direction { return s.direction }

// Dragging reports whether a drag is in progress.
func (s *ScrollBar) Dragging() bool { return s.dragging }

// OnScroll registers the handler called after a drag moves the slider,
// replacing any previous one.
func (s *ScrollBar) OnScroll(h func(ScrollEvent)) { s.onScroll.Set(h) }

func (s *ScrollBar) press(ev scene.PointerEvent) {
	s.dragging = true
	s.grab = ev.Position.Y - scene.Position(s.slider).Y
	s.transition(TriggerPress, pointerCause(ev))
}

func (s *ScrollBar) release(ev scene.PointerEvent) {
	if !s.dragging {
		return
	}
	s.dragging = false
	t := TriggerRelease
	if s.slider.Visible() && s.slider.Bounds().Contains(ev.Position) {
		t = TriggerReleaseOver
	}
	s.transition(t, pointerCause(ev))
}

// drag moves the slider with the pointer. A slider found outside the track
// snaps back to the nearest end; otherwise it follows the pointer only when
// the new position keeps it entirely on the track.
func (s *ScrollBar) drag(ev scene.PointerEvent) {
	if !s.dragging {
		return
	}
	top := scene.Position(s.track).Y
	bottom := top + s.height - s.height/3
	y := scene.Position(s.slider).Y

	switch {
	case y < top:
		scene.MoveY(s.slider, top)
	case y > bottom:
		scene.MoveY(s.slider, bottom)
	default:
		target := ev.Position.Y - s.grab
		if target < top || target > bottom {
			return
		}
		scene.MoveY(s.slider, target)
	}

	if cur := ev.Position.Y; cur > s.last {
		s.direction = DirectionDown
		s.last = cur
	} else {
		s.direction = DirectionUp
	}

	s.onScroll.Invoke(ScrollEvent{
		Position:  scene.Position(s.slider),
		Direction: s.direction,
		Pointer:   ev,
	})
}

func (s *ScrollBar) paint() {
	cs := s.tk.theme.ColorScheme
	switch s.State() {
	case Ready:
		s.slider.Fill(cs.Pressed)
	case Executing:
		s.slider.Fill(cs.OnSurface)
	default:
		s.slider.Fill(cs.Hover)
	}
}
