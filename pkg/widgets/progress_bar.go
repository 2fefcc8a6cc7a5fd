package widgets

import (
	"fmt"
	"math"

	"github.com/go-drift/widgetkit/pkg/event"
	"github.com/go-drift/widgetkit/pkg/scene"
)

// IncrementEvent is delivered after Increment when the fill no longer
// matches the percentage last set with SetInc.
type IncrementEvent struct {
	Delta     float64
	FillWidth float64
	// Percent is the fill as a percentage of the track width.
	Percent float64
}

// percentTolerance absorbs the rounding of a fill converted to a percentage
// and back, so a fill set by SetInc reads as in sync.
const percentTolerance = 1e-9

// ProgressBar is a horizontal track with a fill that grows from the left.
type ProgressBar struct {
	base

	track scene.Primitive
	fill  scene.Primitive
	sweep scene.Animation

	width float64
	// filled is the logical fill width; the fill primitive shows it unless
	// the bar is indeterminate.
	filled        float64
	inc           float64
	indeterminate bool

	onIncrement event.Slot[IncrementEvent]
}

// NewProgressBar creates an empty progress bar at the scene origin.
func (tk *Toolkit) NewProgressBar() *ProgressBar {
	th := tk.theme.ProgressBar
	cs := tk.theme.ColorScheme
	p := &ProgressBar{base: newBase(tk, "ProgressBar", ProgressTransitions), width: th.Width}

	p.track = tk.scene.Rect(th.Width, th.Height)
	p.track.Fill(cs.Idle)
	p.track.Stroke(1, cs.OnSurface)
	p.fill = tk.scene.Rect(0, th.Height)
	p.fill.Fill(cs.Hover)
	p.group.Add(p.track, p.fill)

	return p
}

// SetWidth sets the track width. An existing fill keeps its width unless
// it no longer fits, in which case it is cut to the new track.
func (p *ProgressBar) SetWidth(w float64) {
	if w < 0 {
		p.report("SetWidth", fmt.Errorf("width must not be negative, got %v", w))
		return
	}
	p.width = w
	p.track.SetSize(w, p.track.Bounds().Dy())
	if p.filled > w {
		p.filled = w
	}
	p.sync(StateEvent{})
}

// Width returns the track width.
func (p *ProgressBar) Width() float64 { return p.width }

// SetInc records pct and, when it lies in [0, 100], sets the fill to that
// percentage of the track.
func (p *ProgressBar) SetInc(pct float64) {
	p.inc = pct
	if pct < 0 || pct > 100 {
		return
	}
	p.filled = p.width * pct / 100
	p.sync(StateEvent{})
}

// Inc returns the percentage last passed to SetInc.
func (p *ProgressBar) Inc() float64 { return p.inc }

// Increment grows the fill by delta. A fill that would pass the end of the
// track wraps to empty, and a negative result clamps to empty.
func (p *ProgressBar) Increment(delta float64) {
	if next := p.filled + delta; next <= p.width {
		p.filled = max(next, 0)
	} else {
		p.filled = 0
	}
	p.sync(StateEvent{})

	if pct := p.Percent(); math.Abs(pct-p.inc) > percentTolerance {
		p.onIncrement.Invoke(IncrementEvent{Delta: delta, FillWidth: p.filled, Percent: pct})
	}
}

// FillWidth returns the logical fill width.
func (p *ProgressBar) FillWidth() float64 { return p.filled }

// Percent returns the fill as a percentage of the track width.
func (p *ProgressBar) Percent() float64 {
	if p.width == 0 {
		return 0
	}
	return p.filled * 100 / p.width
}

// SetIndeterminate switches between showing the fill and sweeping it
// across the track. Turning it off shows the logical fill again.
func (p *ProgressBar) SetIndeterminate(on bool) {
	if on == p.indeterminate {
		return
	}
	p.indeterminate = on
	if on {
		p.sweep = p.tk.scene.LoopWidth(p.fill, p.width, p.tk.theme.ProgressBar.IndeterminatePeriod)
		p.sweep.Start()
		return
	}
	p.sweep.Stop()
	p.sweep = nil
	p.paint()
}

// Indeterminate reports whether the bar is sweeping.
func (p *ProgressBar) Indeterminate() bool { return p.indeterminate }

// OnIncrement registers the increment handler, replacing any previous one.
func (p *ProgressBar) OnIncrement(h func(IncrementEvent)) { p.onIncrement.Set(h) }

// sync repaints the fill and moves the state machine to match it.
func (p *ProgressBar) sync(cause StateEvent) {
	p.paint()
	switch {
	case p.filled <= 0:
		p.transition(TriggerEmpty, cause)
	case p.filled >= p.width:
		p.transition(TriggerComplete, cause)
	default:
		p.transition(TriggerProgress, cause)
	}
}

func (p *ProgressBar) paint() {
	if p.indeterminate {
		return
	}
	p.fill.SetSize(p.filled, p.fill.Bounds().Dy())
}
