package testing

import (
	"testing"
	"time"

	"github.com/go-drift/widgetkit/pkg/animation"
	"github.com/go-drift/widgetkit/pkg/errors"
	"github.com/go-drift/widgetkit/pkg/scene/memscene"
	"github.com/go-drift/widgetkit/pkg/widgets"
)

// frameDuration is the clock step used by PumpFrames.
const frameDuration = 16 * time.Millisecond

// WidgetTester runs widgets on an in-memory scene with a fake clock and a
// recording error handler.
type WidgetTester struct {
	scene     *memscene.Scene
	toolkit   *widgets.Toolkit
	clock     *FakeClock
	prevClock animation.Clock
	errs      *errors.Recorder
	prevErrs  errors.ErrorHandler
}

// NewWidgetTester creates a tester with a fresh scene and toolkit.
// Call Cleanup when done, or use NewWidgetTesterWithT instead.
func NewWidgetTester(opts ...widgets.Option) *WidgetTester {
	clk := NewFakeClock()
	sc := memscene.New()
	t := &WidgetTester{
		scene: sc,
		clock: clk,
		errs:  &errors.Recorder{},
	}
	t.prevClock = animation.SetClock(clk)
	// Installed first so toolkit options can report into the recorder.
	t.prevErrs = errors.SetHandler(t.errs)
	t.toolkit = widgets.New(sc, opts...)
	return t
}

// NewWidgetTesterWithT creates a tester that cleans up via t.Cleanup.
// This is the recommended constructor for tests.
func NewWidgetTesterWithT(t testing.TB, opts ...widgets.Option) *WidgetTester {
	tester := NewWidgetTester(opts...)
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the global animation clock and error handler.
func (t *WidgetTester) Cleanup() {
	animation.SetClock(t.prevClock)
	errors.SetHandler(t.prevErrs)
}

// Scene returns the headless scene.
func (t *WidgetTester) Scene() *memscene.Scene { return t.scene }

// Toolkit returns the toolkit widgets are created with.
func (t *WidgetTester) Toolkit() *widgets.Toolkit { return t.toolkit }

// Clock returns the fake animation clock.
func (t *WidgetTester) Clock() *FakeClock { return t.clock }

// Errors returns the errors reported since the tester was created.
func (t *WidgetTester) Errors() []*errors.ToolkitError { return t.errs.Errors }

// Pump steps running animations at the current fake time.
func (t *WidgetTester) Pump() {
	t.scene.Pump()
}

// Advance moves the fake clock by d and pumps once.
func (t *WidgetTester) Advance(d time.Duration) {
	t.clock.Advance(d)
	t.Pump()
}

// PumpFrames advances n frames of 16ms each, pumping after every frame.
func (t *WidgetTester) PumpFrames(n int) {
	for i := 0; i < n; i++ {
		t.Advance(frameDuration)
	}
}

// Animating reports whether any animation is still running.
func (t *WidgetTester) Animating() bool {
	return animation.HasActiveTickers()
}
