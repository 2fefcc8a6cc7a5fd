package widgets

import (
	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// Checkbox is a square box that toggles a check mark when clicked.
type Checkbox struct {
	base

	box   scene.Group
	rect  scene.Primitive
	mark  scene.Text
	label scene.Text

	checked bool
	onClick event.Slot[ClickEvent]
}

// NewCheckbox creates an unchecked checkbox at the scene origin.
func (tk *Toolkit) NewCheckbox() *Checkbox {
	th := tk.theme.Checkbox
	c := &Checkbox{base: newBase(tk, "Checkbox", ToggleTransitions)}

	c.rect = tk.scene.Rect(th.Size, th.Size)
	c.rect.Stroke(1, tk.theme.ColorScheme.OnSurface)
	c.mark = tk.scene.Text(th.Mark)
	c.mark.Fill(tk.theme.ColorScheme.OnSurface)
	scene.CenterOn(c.mark, c.rect.Bounds().Center())
	c.mark.Hide()

	// The mark sits inside its own group with the body so clicks on the
	// glyph still toggle the box.
	c.box = tk.scene.Group()
	c.box.Add(c.rect, c.mark)
	c.group.Add(c.box)
	c.repaint = c.paint

	c.box.On(scene.PointerClick, c.click)

	c.paint()
	return c
}

// Label sets the caption shown to the right of the box.
func (c *Checkbox) Label(text string) {
	if c.label == nil {
		c.label = c.tk.scene.Text(text)
		c.label.Fill(c.tk.theme.ColorScheme.OnSurface)
		c.group.Add(c.label)
	} else {
		c.label.SetContent(text)
	}
	r := c.rect.Bounds()
	lb := c.label.Bounds()
	c.label.Move(r.Min.X+c.tk.theme.Checkbox.LabelGap, r.Center().Y-lb.Dy()/2)
}

// Text returns the caption, or "" if none was set.
func (c *Checkbox) Text() string {
	if c.label == nil {
		return ""
	}
	return c.label.Content()
}

// Checked reports whether the box is checked.
func (c *Checkbox) Checked() bool { return c.checked }

// SetChecked sets the checked state without a pointer event. The click
// handler is not called.
func (c *Checkbox) SetChecked(checked bool) {
	if checked == c.checked {
		return
	}
	c.toggle(scene.PointerEvent{})
}

// OnClick registers the click handler, replacing any previous one. The
// handler runs before the toggle, so Checked reports the old value.
func (c *Checkbox) OnClick(h func(ClickEvent)) { c.onClick.Set(h) }

// Fill returns the current body color.
func (c *Checkbox) Fill() graphics.Color { return c.rect.FillColor() }

func (c *Checkbox) click(ev scene.PointerEvent) {
	c.onClick.Invoke(ClickEvent{Pointer: ev})
	c.toggle(ev)
}

func (c *Checkbox) toggle(ev scene.PointerEvent) {
	c.checked = !c.checked
	c.transition(TriggerToggle, pointerCause(ev))
}

func (c *Checkbox) paint() {
	cs := c.tk.theme.ColorScheme
	if c.checked {
		c.mark.Show()
		c.rect.Fill(cs.Pressed)
	} else {
		c.mark.Hide()
		c.rect.Fill(cs.Idle)
	}
}
