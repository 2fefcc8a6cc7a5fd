package widgets

import (
	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// ClickEvent is delivered when a widget is clicked.
type ClickEvent struct {
	Pointer scene.PointerEvent
}

// Button is a rectangular push button with an optional centered caption.
type Button struct {
	base

	rect  scene.Primitive
	label scene.Text

	onClick event.Slot[ClickEvent]
}

// NewButton creates a button at the scene origin.
func (tk *Toolkit) NewButton() *Button {
	th := tk.theme.Button
	b := &Button{base: newBase(tk, "Button", ButtonTransitions)}
	b.rect = tk.scene.Rect(th.Width, th.Height)
	b.group.Add(b.rect)
	b.repaint = b.paint

	b.group.On(scene.PointerOver, func(ev scene.PointerEvent) { b.apply(TriggerEnter, ev) })
	b.group.On(scene.PointerOut, func(ev scene.PointerEvent) { b.apply(TriggerLeave, ev) })
	b.group.On(scene.PointerDown, func(ev scene.PointerEvent) { b.apply(TriggerPress, ev) })
	b.group.On(scene.PointerUp, func(ev scene.PointerEvent) { b.apply(TriggerRelease, ev) })
	b.group.On(scene.PointerClick, func(ev scene.PointerEvent) {
		b.onClick.Invoke(ClickEvent{Pointer: ev})
	})

	b.paint()
	return b
}

// Label sets the caption. Each call widens the button by the rendered text
// length plus the theme's label margin.
func (b *Button) Label(text string) {
	if b.label == nil {
		b.label = b.tk.scene.Text(text)
		b.label.Fill(b.tk.theme.ColorScheme.OnSurface)
		b.group.Add(b.label)
	} else {
		b.label.SetContent(text)
	}
	r := b.rect.Bounds()
	b.rect.SetSize(r.Dx()+b.label.Length()+b.tk.theme.Button.LabelMargin, r.Dy())
	scene.CenterOn(b.label, b.rect.Bounds().Center())
}

// Text returns the caption, or "" if none was set.
func (b *Button) Text() string {
	if b.label == nil {
		return ""
	}
	return b.label.Content()
}

// OnClick registers the click handler, replacing any previous one.
func (b *Button) OnClick(h func(ClickEvent)) { b.onClick.Set(h) }

// Fill returns the current body color.
func (b *Button) Fill() graphics.Color { return b.rect.FillColor() }

func (b *Button) apply(t Trigger, ev scene.PointerEvent) {
	b.transition(t, pointerCause(ev))
}

// paint colors the body from the current state.
func (b *Button) paint() {
	cs := b.tk.theme.ColorScheme
	switch b.State() {
	case Ready:
		b.rect.Fill(cs.Hover)
	case Executing, Active:
		b.rect.Fill(cs.Pressed)
	default:
		b.rect.Fill(cs.Idle)
	}
}
