package widgets

import (
	"strings"

	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// definitionLeading is the vertical distance between the two definition lines.
const definitionLeading = 20

// FlipEvent is delivered after a flash card turns over.
type FlipEvent struct {
	// Flipped is true when the definition side is showing.
	Flipped bool
	Pointer scene.PointerEvent
}

// FlashCard shows a term and turns over to a two-line definition when
// clicked.
type FlashCard struct {
	base

	card  scene.Primitive
	term  scene.Text
	lines [2]scene.Text

	flipped bool
	onFlip  event.Slot[FlipEvent]
}

// NewFlashCard creates a blank card showing its term side at the scene origin.
func (tk *Toolkit) NewFlashCard() *FlashCard {
	th := tk.theme.FlashCard
	cs := tk.theme.ColorScheme
	f := &FlashCard{base: newBase(tk, "FlashCard", ToggleTransitions)}

	f.card = tk.scene.Rect(th.Width, th.Height)
	f.card.Stroke(1, cs.OnSurface)
	f.term = tk.scene.Text("")
	f.term.Fill(cs.OnSurface)
	f.group.Add(f.card, f.term)
	for i := range f.lines {
		f.lines[i] = tk.scene.Text("")
		f.lines[i].Fill(cs.OnSurface)
		f.group.Add(f.lines[i])
	}
	f.repaint = f.paint

	f.group.On(scene.PointerClick, func(ev scene.PointerEvent) { f.flip(ev) })

	f.layout()
	f.paint()
	return f
}

// SetTerm sets the front text, truncated to the theme's term limit.
func (f *FlashCard) SetTerm(text string) {
	f.term.SetContent(truncate(text, f.tk.theme.FlashCard.TermMax))
	f.layout()
}

// Term returns the displayed term.
func (f *FlashCard) Term() string { return f.term.Content() }

// SetDefinition sets the back text. It keeps at most the theme's
// definition limit and wraps once at the last space that fits the first
// line, or hard-cuts at the column limit when there is none.
func (f *FlashCard) SetDefinition(text string) {
	th := f.tk.theme.FlashCard
	first, second := splitDefinition(text, th.DefinitionLine, th.DefinitionMax)
	f.lines[0].SetContent(first)
	f.lines[1].SetContent(second)
	f.layout()
}

// Definition returns the two displayed definition lines.
func (f *FlashCard) Definition() (string, string) {
	return f.lines[0].Content(), f.lines[1].Content()
}

// Flipped reports whether the definition side is showing.
func (f *FlashCard) Flipped() bool { return f.flipped }

// Flip turns the card over without a pointer event.
func (f *FlashCard) Flip() { f.flip(scene.PointerEvent{}) }

// OnFlip registers the flip handler, replacing any previous one.
func (f *FlashCard) OnFlip(h func(FlipEvent)) { f.onFlip.Set(h) }

// Fill returns the current card color.
func (f *FlashCard) Fill() graphics.Color { return f.card.FillColor() }

func (f *FlashCard) flip(ev scene.PointerEvent) {
	f.flipped = !f.flipped
	f.transition(TriggerToggle, pointerCause(ev))
	f.onFlip.Invoke(FlipEvent{Flipped: f.flipped, Pointer: ev})
}

// layout centers the term and the definition lines on the card.
func (f *FlashCard) layout() {
	c := f.card.Bounds().Center()
	scene.CenterOn(f.term, c)
	scene.CenterOn(f.lines[0], graphics.Pt(c.X, c.Y-definitionLeading/2))
	scene.CenterOn(f.lines[1], graphics.Pt(c.X, c.Y+definitionLeading/2))
}

func (f *FlashCard) paint() {
	cs := f.tk.theme.ColorScheme
	if f.flipped {
		f.card.Fill(cs.Pressed)
		f.term.Hide()
		f.lines[0].Show()
		f.lines[1].Show()
		return
	}
	f.card.Fill(cs.Idle)
	f.term.Show()
	f.lines[0].Hide()
	f.lines[1].Hide()
}

// truncate keeps the first n runes of s.
func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// splitDefinition truncates s to total runes and splits it into two lines
// at the last space within the first line runes. With no such space the
// first line is cut at exactly line runes.
func splitDefinition(s string, line, total int) (string, string) {
	r := []rune(truncate(s, total))
	if len(r) <= line {
		return string(r), ""
	}
	cut := -1
	for i := line; i > 0; i-- {
		if r[i] == ' ' {
			cut = i
			break
		}
	}
	if cut < 0 {
		cut = line
	}
	return strings.TrimRight(string(r[:cut]), " "), strings.Trim(string(r[cut:]), " ")
}
