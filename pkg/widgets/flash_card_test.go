package widgets_test

import (
	"strings"
	"testing"

	wktest "github.com/go-drift/widgetkit/pkg/testing"
	"github.com/go-drift/widgetkit/pkg/theme"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

func TestFlashCard_TermTruncation(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"User Experience (UX)", "User Experience (UX)"},
		{"abcdefghijklmnopqrstuvwxyz0123", "abcdefghijklmnopqrstuvwxyz"},
		{"", ""},
		{"überschallgeschwindigkeiten", "überschallgeschwindigkeite"},
	}
	for _, tt := range tests {
		tester := wktest.NewWidgetTesterWithT(t)
		fc := tester.Toolkit().NewFlashCard()

		fc.SetTerm(tt.in)

		if fc.Term() != tt.want {
			t.Errorf("SetTerm(%q): Term() = %q, want %q", tt.in, fc.Term(), tt.want)
		}
	}
}

func TestFlashCard_FlipShowsExactlyOneFace(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	fc := tester.Toolkit().NewFlashCard()
	fc.SetTerm("Latency")
	fc.SetDefinition("Time between a request and its response")
	cs := theme.DefaultColorScheme()

	visible := func() []string {
		var out []string
		for _, n := range tester.CaptureSnapshot().Nodes {
			if n.Text != "" {
				out = append(out, n.Text)
			}
		}
		return out
	}

	if got := visible(); len(got) != 1 || got[0] != "Latency" {
		t.Fatalf("front face shows %v", got)
	}

	var flips []bool
	fc.OnFlip(func(ev widgets.FlipEvent) { flips = append(flips, ev.Flipped) })
	tester.Tap(fc.Bounds().Center())

	if !fc.Flipped() || fc.State() != widgets.Active || fc.Fill() != cs.Pressed {
		t.Errorf("after flip: flipped=%v state=%v fill=%v", fc.Flipped(), fc.State(), fc.Fill())
	}
	got := visible()
	if len(got) != 2 || strings.Contains(strings.Join(got, "|"), "Latency") {
		t.Errorf("back face shows %v, want the two definition lines only", got)
	}

	tester.Tap(fc.Bounds().Center())
	if fc.Flipped() || fc.State() != widgets.Idle {
		t.Errorf("after second flip: flipped=%v state=%v", fc.Flipped(), fc.State())
	}
	if len(flips) != 2 || !flips[0] || flips[1] {
		t.Errorf("flip events = %v, want [true false]", flips)
	}
}

func TestFlashCard_Definition(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		first  string
		second string
	}{
		{
			name:  "fits one line",
			in:    "Short definition",
			first: "Short definition",
		},
		{
			name:   "wraps at last space",
			in:     "The quick brown fox jumps over the lazy dog",
			first:  "The quick brown fox jumps over",
			second: "the lazy dog",
		},
		{
			name:   "hard cut without spaces",
			in:     strings.Repeat("x", 40),
			first:  strings.Repeat("x", 30),
			second: strings.Repeat("x", 10),
		},
		{
			name:   "drops past the total limit",
			in:     strings.Repeat("ab ", 30),
			first:  "ab ab ab ab ab ab ab ab ab ab",
			second: "ab ab ab ab ab ab ab ab ab ab",
		},
		{
			name:  "exactly thirty",
			in:    strings.Repeat("y", 30),
			first: strings.Repeat("y", 30),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tester := wktest.NewWidgetTesterWithT(t)
			fc := tester.Toolkit().NewFlashCard()

			fc.SetDefinition(tt.in)

			first, second := fc.Definition()
			if first != tt.first || second != tt.second {
				t.Errorf("Definition() = %q, %q; want %q, %q", first, second, tt.first, tt.second)
			}
		})
	}
}

func TestFlashCard_FlipWithoutPointer(t *testing.T) {
	tester := wktest.NewWidgetTesterWithT(t)
	fc := tester.Toolkit().NewFlashCard()

	changes := 0
	fc.OnStateChange(func(widgets.StateEvent) { changes++ })
	fc.Flip()
	fc.Flip()

	if fc.Flipped() || changes != 2 {
		t.Errorf("flipped=%v changes=%d, want false 2", fc.Flipped(), changes)
	}
}
