package widgets_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	wktest "github.com/go-drift/widgetkit/pkg/testing"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func TestProgressBar_IncrementSequence(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(300)
	pb.SetInc(0)

	var got []float64
	for i := 0; i < 7; i++ {
		pb.Increment(20)
		got = append(got, pb.FillWidth())
	}

	want := []float64{20, 40, 60, 80, 100, 120, 140}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("fill widths mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressBar_OverflowWrapsToZero(t *testing.T) {
	for _, d := range []float64{7, 20, 45, 100, 299} {
		tester := wktest.NewWidgetTesterWithT(t)
		pb := tester.Toolkit().NewProgressBar()
		pb.SetWidth(300)

		for pb.FillWidth()+d <= pb.Width() {
			pb.Increment(d)
		}
		if pb.FillWidth() == 0 {
			t.Fatalf("d=%v: fill should be positive before overflow", d)
		}
		pb.Increment(d)
		if pb.FillWidth() != 0 {
			t.Errorf("d=%v: fill after overflow = %v, want 0", d, pb.FillWidth())
		}
	}
}

func TestProgressBar_ExactFitDoesNotWrap(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(100)

	pb.Increment(60)
	pb.Increment(40)

	if pb.FillWidth() != 100 || pb.State() != widgets.Active {
		t.Errorf("fill=%v state=%v, want 100 active", pb.FillWidth(), pb.State())
	}
}

func TestProgressBar_SetInc(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(200)

	pb.SetInc(25)
	if pb.FillWidth() != 50 || pb.Inc() != 25 {
		t.Errorf("SetInc(25): fill=%v inc=%v, want 50 25", pb.FillWidth(), pb.Inc())
	}

	pb.SetInc(150)
	if pb.FillWidth() != 50 || pb.Inc() != 150 {
		t.Errorf("SetInc(150): fill=%v inc=%v, want fill kept at 50 and inc 150", pb.FillWidth(), pb.Inc())
	}
	pb.SetInc(-1)
	if pb.FillWidth() != 50 || pb.Inc() != -1 {
		t.Errorf("SetInc(-1): fill=%v inc=%v", pb.FillWidth(), pb.Inc())
	}
}

func TestProgressBar_OnIncrementOnlyWhenOutOfSync(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(200)

	var events []widgets.IncrementEvent
	pb.OnIncrement(func(ev widgets.IncrementEvent) { events = append(events, ev) })

	pb.SetInc(50)
	pb.Increment(0)
	if len(events) != 0 {
		t.Fatalf("in-sync increment fired %d events", len(events))
	}

	pb.Increment(20)
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	want := widgets.IncrementEvent{Delta: 20, FillWidth: 120, Percent: 60}
	if diff := cmp.Diff(want, events[0]); diff != "" {
		t.Errorf("event mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressBar_OnIncrementInSyncOnOddWidths(t *testing.T) {
	for _, w := range []float64{3, 7, 11, 13, 250, 300, 333} {
		tester := wktest.NewWidgetTesterWithT(t)
		pb := tester.Toolkit().NewProgressBar()
		pb.SetWidth(w)

		fired := 0
		pb.OnIncrement(func(widgets.IncrementEvent) { fired++ })
		for pct := 1.0; pct <= 100; pct++ {
			pb.SetInc(pct)
			pb.Increment(0)
			if fired != 0 {
				t.Fatalf("width %v: SetInc(%v) then Increment(0) fired OnIncrement (percent %v)", w, pct, pb.Percent())
			}
		}

		pb.SetInc(50)
		pb.Increment(1)
		if fired != 1 {
			t.Errorf("width %v: a real change fired %d times, want 1", w, fired)
		}
	}
}

func TestProgressBar_SetWidthKeepsFill(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(300)
	pb.Increment(90)

	pb.SetWidth(600)
	if pb.FillWidth() != 90 {
		t.Errorf("widening: fill = %v, want 90", pb.FillWidth())
	}
	pb.SetWidth(50)
	if pb.FillWidth() != 50 {
		t.Errorf("narrowing below the fill: fill = %v, want 50", pb.FillWidth())
	}
	pb.SetWidth(-5)
	if pb.Width() != 50 || len(tester.Errors()) != 1 {
		t.Errorf("negative width: Width()=%v errors=%d", pb.Width(), len(tester.Errors()))
	}
}

func TestProgressBar_NegativeDeltaClampsAtZero(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.Increment(30)

	pb.Increment(-50)

	if pb.FillWidth() != 0 || pb.State() != widgets.Idle {
		t.Errorf("fill=%v state=%v, want 0 idle", pb.FillWidth(), pb.State())
	}
}

func TestProgressBar_States(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(100)

	var log []string
	pb.OnStateChange(func(ev widgets.StateEvent) { log = append(log, ev.To.String()) })

	pb.Increment(50)
	pb.Increment(10)
	pb.Increment(40)
	pb.Increment(1)

	want := []string{"executing", "active", "idle"}
	if diff := cmp.Diff(want, log); diff != "" {
		t.Errorf("states mismatch (-want +got):\n%s", diff)
	}
}

func TestProgressBar_Indeterminate(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	pb := tester.Toolkit().NewProgressBar()
	pb.SetWidth(300)
	pb.SetInc(10)

	pb.SetIndeterminate(true)
	tester.Advance(time.Second)
	if w := fillRectWidth(tester); w != 300 {
		t.Errorf("sweep width after one period = %v, want 300", w)
	}
	pb.Increment(30)
	if pb.FillWidth() != 60 {
		t.Errorf("logical fill = %v, want 60", pb.FillWidth())
	}

	pb.SetIndeterminate(false)
	if w := fillRectWidth(tester); w != 60 {
		t.Errorf("fill rect after stopping = %v, want 60", w)
	}
}

// fillRectWidth returns the drawn width of the progress fill.
func fillRectWidth(tester *wktest.WidgetTester) float64 {
	hover := tester.Toolkit().Theme().ColorScheme.Hover
	return tester.Find(wktest.ByFill(hover)).Bounds().Dx()
}
