package widgets_test

import (
	"path/filepath"
	"testing"

	"github.com/go-drift/widgetkit/pkg/graphics"
	wktest "github.com/go-drift/widgetkit/pkg/testing"
	"github.com/go-drift/widgetkit/pkg/theme"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func TestCheckbox_ClickHandlerSeesPreToggleValue(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	cb := tester.Toolkit().NewCheckbox()

	var inClick, inState []bool
	cb.OnClick(func(widgets.ClickEvent) { inClick = append(inClick, cb.Checked()) })
	cb.OnStateChange(func(widgets.StateEvent) { inState = append(inState, cb.Checked()) })

	tester.Tap(cb.Bounds().Center())

	if len(inClick) != 1 || inClick[0] {
		t.Errorf("click handler saw %v, want [false]", inClick)
	}
	if len(inState) != 1 || !inState[0] {
		t.Errorf("state handler saw %v, want [true]", inState)
	}
	if !cb.Checked() || cb.State() != widgets.Active {
		t.Errorf("after click: checked=%v state=%v, want true active", cb.Checked(), cb.State())
	}
}

func TestCheckbox_DoubleToggleRoundTrip(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	cb := tester.Toolkit().NewCheckbox()
	cb.Move(30, 30)
	before := tester.CaptureSnapshot()
	fill := cb.Fill()

	center := cb.Bounds().Center()
	tester.Tap(center)
	if !cb.Checked() || cb.Fill() != theme.DefaultColorScheme().Pressed {
		t.Fatalf("after one click: checked=%v fill=%v", cb.Checked(), cb.Fill())
	}
	// The second click lands on the visible mark.
	tester.Tap(center)

	if cb.Checked() || cb.Fill() != fill {
		t.Errorf("after two clicks: checked=%v fill=%v, want false %v", cb.Checked(), cb.Fill(), fill)
	}
	if diff := tester.CaptureSnapshot().Diff(before); diff != "" {
		t.Errorf("scene changed after round trip (-want +got):\n%s", diff)
	}
}

func TestCheckbox_HoverDoesNotToggle(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	cb := tester.Toolkit().NewCheckbox()

	tester.Hover(cb.Bounds().Center())

	if cb.Checked() || cb.State() != widgets.Idle {
		t.Errorf("hover changed checkbox: checked=%v state=%v", cb.Checked(), cb.State())
	}
}

func TestCheckbox_LabelClickDoesNotToggle(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	cb := tester.Toolkit().NewCheckbox()
	cb.Label("Subscribe")

	tester.Tap(cb.Bounds().Max.Sub(graphics.Pt(5, 25)))

	if cb.Checked() {
		t.Error("clicking the caption should not toggle")
	}
	if cb.Text() != "Subscribe" {
		t.Errorf("Text() = %q", cb.Text())
	}
}

func TestCheckbox_SetChecked(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	cb := tester.Toolkit().NewCheckbox()

	clicks, changes := 0, 0
	cb.OnClick(func(widgets.ClickEvent) { clicks++ })
	cb.OnStateChange(func(widgets.StateEvent) { changes++ })

	cb.SetChecked(true)
	cb.SetChecked(true)

	if !cb.Checked() || clicks != 0 || changes != 1 {
		t.Errorf("checked=%v clicks=%d changes=%d, want true 0 1", cb.Checked(), clicks, changes)
	}
}

func TestCheckbox_Snapshots(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	cb := tester.Toolkit().NewCheckbox()
	cb.Label("hi")

	tester.CaptureSnapshot().MatchesFile(t, filepath.Join("testdata", "checkbox_unchecked.snapshot.json"))

	tester.Tap(cb.Bounds().Min.Add(graphics.Pt(10, 10)))
	if !cb.Checked() {
		t.Fatal("tap did not check the box")
	}
	tester.CaptureSnapshot().MatchesFile(t, filepath.Join("testdata", "checkbox_checked.snapshot.json"))
}
