package widgets_test

import (
	"testing"

	"github.com/google/uuid"

	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/focus"
	"github.com/go-drift/widgetkit/pkg/graphics"
	"github.com/go-drift/widgetkit/pkg/scene/memscene"
	"github.com/go-drift/widgetkit/pkg/theme"
	wktest "github.com/go-drift/widgetkit/pkg/testing"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func TestToolkit_WidgetIDsAreUnique(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	tk := tester.Toolkit()

	ids := []uuid.UUID{
		tk.NewButton().ID(),
		tk.NewCheckbox().ID(),
		tk.NewRadioGroup(2).ID(),
		tk.NewTextBox().ID(),
		tk.NewScrollBar(90).ID(),
		tk.NewProgressBar().ID(),
		tk.NewFlashCard().ID(),
	}
	seen := make(map[uuid.UUID]bool)
	for _, id := range ids {
		if id == uuid.Nil || seen[id] {
			t.Errorf("duplicate or nil id %v", id)
		}
		seen[id] = true
	}
}

func TestToolkit_SharedFocusManager(t *testing.T) {
	m := focus.NewFocusManager()
	a := widgets.New(memscene.New(), widgets.WithFocusManager(m)).NewTextBox()
	b := widgets.New(memscene.New(), widgets.WithFocusManager(m)).NewTextBox()

	a.Focus()
	b.Focus()

	if a.Focused() || !b.Focused() {
		t.Errorf("focus: a=%v b=%v, want only b", a.Focused(), b.Focused())
	}
	if !m.MoveFocus(1) || !a.Focused() {
		t.Error("MoveFocus should wrap back to the first box")
	}
}

func TestToolkit_StateEventCarriesPointer(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()

	var got widgets.StateEvent
	b.OnStateChange(func(ev widgets.StateEvent) { got = ev })
	tester.Hover(graphics.Pt(5, 5))

	if got.Widget != b.ID() || got.From != widgets.Idle || got.To != widgets.Ready {
		t.Errorf("state event = %+v", got)
	}
	if got.Pointer.Position != graphics.Pt(5, 5) {
		t.Errorf("pointer position = %v, want (5, 5)", got.Pointer.Position)
	}
}

func TestToolkit_OnStateChangeNilClears(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()

	calls := 0
	b.OnStateChange(func(widgets.StateEvent) { calls++ })
	b.OnStateChange(nil)
	tester.Hover(graphics.Pt(5, 5))

	if calls != 0 {
		t.Errorf("calls = %d, want 0 after clearing", calls)
	}
}

func TestWithTheme_InvalidThemeKeepsDefault(t *testing.T) {
	th := theme.DefaultTheme()
	th.FlashCard.TermMax = -1
	tester := wktest.NewWidgetTesterWithT(t, widgets.WithTheme(th))

	errs := tester.Errors()
	if len(errs) != 1 || errs[0].Kind != errors.KindTheme {
		t.Fatalf("errors = %v, want one theme error", errs)
	}
	if got := tester.Toolkit().Theme().FlashCard.TermMax; got != theme.DefaultFlashCardTheme().TermMax {
		t.Errorf("TermMax = %d, want the default", got)
	}

	card := tester.Toolkit().NewFlashCard()
	card.SetTerm("abc")
	if card.Term() != "abc" {
		t.Errorf("Term() = %q, want abc", card.Term())
	}
}

func TestFlashCard_NegativeLimitShowsNothing(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	card := tester.Toolkit().NewFlashCard()
	tester.Toolkit().Theme().FlashCard.TermMax = -1

	card.SetTerm("abc")
	if card.Term() != "" {
		t.Errorf("Term() = %q, want empty", card.Term())
	}
}
