package widgets

import (
	"fmt"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// RadioEvent is delivered when an option is clicked.
type RadioEvent struct {
	// Option is the 1-based number of the clicked option, or 0 when the
	// click landed on a caption.
	Option  int
	Pointer scene.PointerEvent
}

// RadioGroup is a vertical list of mutually exclusive circular options.
type RadioGroup struct {
	base

	options  []scene.Primitive
	labels   []scene.Text
	selected int
	err      error

	onClick event.Slot[RadioEvent]
}

// NewRadioGroup creates a group of n options stacked from the scene origin.
// A group needs at least two options; smaller groups are still built with
// whatever options they have, and the problem is reported and kept in Err.
func (tk *Toolkit) NewRadioGroup(n int) *RadioGroup {
	r := &RadioGroup{base: newBase(tk, "RadioGroup", RadioTransitions), selected: -1}
	if n < 2 {
		r.err = fmt.Errorf("got %d: %w", n, errors.ErrTooFewOptions)
		r.report("New", r.err)
	}

	th := tk.theme.Radio
	for i := 0; i < n; i++ {
		c := tk.scene.Circle(th.Diameter)
		c.Stroke(1, tk.theme.ColorScheme.OnSurface)
		c.Move(0, float64(i)*th.Pitch)
		r.options = append(r.options, c)
		r.group.Add(c)
	}
	r.labels = make([]scene.Text, len(r.options))
	r.repaint = r.paint

	r.group.On(scene.PointerClick, r.click)

	r.paint()
	return r
}

// Err returns the configuration error recorded at construction, if any.
func (r *RadioGroup) Err() error { return r.err }

// Len returns the number of options.
func (r *RadioGroup) Len() int { return len(r.options) }

// Label sets the caption of the 1-based option number. Out of range numbers
// are reported and leave the group unchanged.
func (r *RadioGroup) Label(option int, text string) {
	if option < 1 || option > len(r.options) {
		r.report("Label", fmt.Errorf("option %d of %d: %w", option, len(r.options), errors.ErrOptionOutOfRange))
		return
	}
	i := option - 1
	if r.labels[i] == nil {
		r.labels[i] = r.tk.scene.Text(text)
		r.labels[i].Fill(r.tk.theme.ColorScheme.OnSurface)
		r.group.Add(r.labels[i])
	} else {
		r.labels[i].SetContent(text)
	}
	b := r.options[i].Bounds()
	r.labels[i].Move(b.Min.X+r.tk.theme.Radio.LabelGap, b.Center().Y-r.labels[i].Bounds().Dy()/2)
}

// Selected returns the 1-based number of the selected option, or 0 when
// nothing has been selected yet.
func (r *RadioGroup) Selected() int { return r.selected + 1 }

// Select selects the 1-based option without a pointer event. The click
// handler is not called.
func (r *RadioGroup) Select(option int) {
	if option < 1 || option > len(r.options) {
		r.report("Select", fmt.Errorf("option %d of %d: %w", option, len(r.options), errors.ErrOptionOutOfRange))
		return
	}
	r.selected = option - 1
	r.paint()
	r.transition(TriggerSelect, StateEvent{})
}

// OnClick registers the option click handler, replacing any previous one.
func (r *RadioGroup) OnClick(h func(RadioEvent)) { r.onClick.Set(h) }

// OptionFill returns the fill of the 1-based option.
func (r *RadioGroup) OptionFill(option int) graphics.Color {
	if option < 1 || option > len(r.options) {
		return graphics.ColorTransparent
	}
	return r.options[option-1].FillColor()
}

// click handles clicks anywhere in the group. The click handler always
// runs; only hits on an option circle change the selection.
func (r *RadioGroup) click(ev scene.PointerEvent) {
	i := r.indexOf(ev.Target)
	if i >= 0 {
		r.selected = i
		r.paint()
	}
	r.onClick.Invoke(RadioEvent{Option: i + 1, Pointer: ev})
	if i < 0 {
		return
	}

	cause := pointerCause(ev)
	if !r.transition(TriggerSelect, cause) {
		r.notify(cause)
	}
}

func (r *RadioGroup) indexOf(p scene.Primitive) int {
	for i, o := range r.options {
		if o == p {
			return i
		}
	}
	return -1
}

// paint fills the selected option and resets the rest.
func (r *RadioGroup) paint() {
	cs := r.tk.theme.ColorScheme
	for i, o := range r.options {
		if i == r.selected {
			o.Fill(cs.Pressed)
		} else {
			o.Fill(cs.Idle)
		}
	}
}
