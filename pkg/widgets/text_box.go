package widgets

import (
	"unicode"
	"unicode/utf8"

	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/focus"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// nbsp stands in for typed spaces so the rendered width advances.
const nbsp = '\u00a0'

// TextEvent is delivered after a key edits a text box.
type TextEvent struct {
	Text string
	Key  scene.KeyEvent
}

// TextBox is a single-line text input with a blinking caret.
//
// Every text box on a scene listens to the shared keyboard stream; only the
// one holding primary focus acts on a key. Pressing the box focuses it and
// pressing anywhere else on the scene blurs it.
type TextBox struct {
	base

	frame scene.Primitive
	text  scene.Text
	caret scene.Primitive
	blink scene.Animation
	node  *focus.FocusNode

	buf []rune

	onChange event.Slot[TextEvent]
}

// NewTextBox creates an empty text box at the scene origin and registers
// it with the toolkit's focus manager.
func (tk *Toolkit) NewTextBox() *TextBox {
	th := tk.theme.TextBox
	cs := tk.theme.ColorScheme
	t := &TextBox{base: newBase(tk, "TextBox", HoverTransitions)}

	t.frame = tk.scene.Rect(th.Width, th.Height)
	t.frame.Fill(cs.Surface)
	t.frame.Stroke(th.BorderWidth, cs.Idle)

	t.text = tk.scene.Text("")
	t.text.Fill(cs.OnSurface)
	mid := th.Height / 2
	t.text.Move(th.Padding, mid-t.text.Bounds().Dy()/2)

	t.caret = tk.scene.Rect(th.CaretWidth, th.CaretHeight)
	t.caret.Fill(cs.OnSurface)
	t.caret.Move(th.Padding, mid-th.CaretHeight/2)
	t.caret.Hide()
	t.blink = tk.scene.LoopWidth(t.caret, 0, th.CaretBlink)

	t.group.Add(t.frame, t.text, t.caret)
	t.repaint = t.syncCaret

	t.node = &focus.FocusNode{
		CanRequestFocus: true,
		DebugLabel:      "TextBox " + t.id.String(),
		OnFocusChange:   func(bool) { t.syncCaret() },
	}
	tk.focus.Register(t.node)

	t.group.On(scene.PointerOver, func(ev scene.PointerEvent) { t.transition(TriggerEnter, pointerCause(ev)) })
	t.group.On(scene.PointerOut, func(ev scene.PointerEvent) { t.transition(TriggerLeave, pointerCause(ev)) })
	t.group.On(scene.PointerDown, func(scene.PointerEvent) { t.node.RequestFocus() })
	tk.scene.OnPointer(scene.PointerDown, func(ev scene.PointerEvent) {
		if !contains(t.group, ev.Target) {
			t.node.Unfocus()
		}
	})
	tk.scene.OnKey(t.key)

	return t
}

// Text returns the rendered contents. Typed spaces appear as no-break spaces.
func (t *TextBox) Text() string { return string(t.buf) }

// Len returns the number of characters in the buffer.
func (t *TextBox) Len() int { return len(t.buf) }

// Caret returns the caret's top-left corner.
func (t *TextBox) Caret() graphics.Point { return scene.Position(t.caret) }

// CaretVisible reports whether the caret is shown.
func (t *TextBox) CaretVisible() bool { return t.caret.Visible() }

// Focus gives the box keyboard focus.
func (t *TextBox) Focus() { t.node.RequestFocus() }

// Blur removes keyboard focus from the box.
func (t *TextBox) Blur() { t.node.Unfocus() }

// Focused reports whether the box receives keys.
func (t *TextBox) Focused() bool { return t.node.HasPrimaryFocus() }

// OnChange registers the handler called after a key edits the buffer,
// replacing any previous one.
func (t *TextBox) OnChange(h func(TextEvent)) { t.onChange.Set(h) }

func (t *TextBox) key(ev scene.KeyEvent) {
	if !t.node.HasPrimaryFocus() {
		return
	}
	limit := t.tk.theme.TextBox.MaxLength

	switch {
	case ev.Code == scene.CodeBackspace:
		if len(t.buf) == 0 {
			return
		}
		before := t.text.Length()
		t.buf = t.buf[:len(t.buf)-1]
		t.text.SetContent(string(t.buf))
		scene.MoveX(t.caret, scene.Position(t.caret).X-(before-t.text.Length()))

	case ev.Code == scene.CodeSpace || ev.Key == " ":
		if len(t.buf) >= limit {
			return
		}
		t.buf = append(t.buf, nbsp)
		t.text.SetContent(string(t.buf))
		scene.MoveX(t.caret, scene.Position(t.caret).X+t.tk.theme.TextBox.SpaceAdvance)

	case ev.IsShift():
		t.notify(StateEvent{Key: ev})
		return

	default:
		r, ok := printable(ev.Key)
		if !ok || len(t.buf) >= limit {
			return
		}
		t.buf = append(t.buf, r)
		t.text.SetContent(string(t.buf))
		scene.MoveX(t.caret, t.text.Bounds().Min.X+t.text.Length())
	}

	t.onChange.Invoke(TextEvent{Text: string(t.buf), Key: ev})
}

// printable returns the rune named by a single-character key value.
func printable(key string) (rune, bool) {
	r, size := utf8.DecodeRuneInString(key)
	if r == utf8.RuneError || size != len(key) || !unicode.IsPrint(r) {
		return 0, false
	}
	return r, true
}

// syncCaret shows the blinking caret while the box is hovered or focused.
func (t *TextBox) syncCaret() {
	show := t.State() == Ready || t.node.HasPrimaryFocus()
	if show == t.blink.Running() {
		return
	}
	if show {
		t.caret.Show()
		t.blink.Start()
		return
	}
	t.blink.Stop()
	t.caret.Hide()
}
