package widgets_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/go-drift/widgetkit/pkg/graphics"
	wktest "github.com/go-drift/widgetkit/pkg/testing"
	"github.com/go-drift/widgetkit/pkg/theme"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func TestButton_HoverPressRelease(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()
	b.Move(20, 20)
	cs := theme.DefaultColorScheme()

	var log []string
	b.OnStateChange(func(ev widgets.StateEvent) {
		log = append(log, ev.From.String()+"->"+ev.To.String())
	})
	center := b.Bounds().Center()

	tester.Hover(center)
	if b.State() != widgets.Ready || b.Fill() != cs.Hover {
		t.Errorf("hovered: state %v fill %v, want ready %v", b.State(), b.Fill(), cs.Hover)
	}
	tester.Press(center)
	if b.State() != widgets.Executing || b.Fill() != cs.Pressed {
		t.Errorf("pressed: state %v fill %v, want executing %v", b.State(), b.Fill(), cs.Pressed)
	}
	tester.Release(center)
	tester.Hover(graphics.Pt(500, 500))
	if b.State() != widgets.Idle || b.Fill() != cs.Idle {
		t.Errorf("left: state %v fill %v, want idle %v", b.State(), b.Fill(), cs.Idle)
	}

	want := []string{"idle->ready", "ready->executing", "executing->ready", "ready->idle"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("transitions mismatch (-want +got):\n%s", diff)
	}
}

func TestButton_Click(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()
	b.Label("Go")

	clicks := 0
	b.OnClick(func(widgets.ClickEvent) { clicks++ })

	// Press on the caption and release on the body still counts.
	tester.Press(b.Bounds().Center())
	tester.Release(graphics.Pt(2, 2))
	tester.Tap(b.Bounds().Center())

	if clicks != 2 {
		t.Errorf("clicks = %d, want 2", clicks)
	}
}

func TestButton_NoClickWhenReleasedOutside(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()

	clicks := 0
	b.OnClick(func(widgets.ClickEvent) { clicks++ })
	tester.Press(graphics.Pt(10, 10))
	tester.Hover(graphics.Pt(400, 400))
	tester.Release(graphics.Pt(400, 400))

	if clicks != 0 {
		t.Errorf("clicks = %d, want 0", clicks)
	}
	if b.State() != widgets.Idle {
		t.Errorf("state = %v, want idle after leaving mid-press", b.State())
	}
}

func TestButton_LabelGrowsWidth(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()

	b.Label("Hello") // 5 glyphs x 7px
	if got := b.Bounds().Dx(); got != 100+35+100 {
		t.Errorf("width after first label = %v, want 235", got)
	}
	b.Label("Hi")
	if got := b.Bounds().Dx(); got != 235+14+100 {
		t.Errorf("width after second label = %v, want 349", got)
	}
	if b.Text() != "Hi" {
		t.Errorf("Text() = %q, want %q", b.Text(), "Hi")
	}
}

func TestButton_OnClickOverwrites(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()

	var first, second int
	b.OnClick(func(widgets.ClickEvent) { first++ })
	b.OnClick(func(widgets.ClickEvent) { second++ })
	tester.Tap(b.Bounds().Center())

	if first != 0 || second != 1 {
		t.Errorf("first=%d second=%d, want only the latest handler to run", first, second)
	}
}

func TestButton_MoveKeepsLabelCentered(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	b := tester.Toolkit().NewButton()
	b.Label("OK")
	b.Move(200, 300)

	if got := b.Bounds().Min; got != graphics.Pt(200, 300) {
		t.Errorf("button at %v, want (200, 300)", got)
	}
	label := tester.Find(wktest.ByText("OK")).Bounds()
	if got, want := label.Center().X, b.Bounds().Center().X; got != want {
		t.Errorf("label center x = %v, want %v", got, want)
	}
}
