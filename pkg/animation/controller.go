package animation

import (
	"fmt"
	"time"
)

// AnimationStatus represents the current state of an animation.
type AnimationStatus int

const (
	// AnimationDismissed means the animation is stopped at the lower bound.
	AnimationDismissed AnimationStatus = iota
	// AnimationForward means the animation is playing toward the upper bound.
	AnimationForward
	// AnimationRepeating means the animation cycles until stopped.
	AnimationRepeating
	// AnimationCompleted means the animation is stopped at the upper bound.
	AnimationCompleted
)

// String returns a human-readable representation of the animation status.
func (s AnimationStatus) String() string {
	switch s {
	case AnimationDismissed:
		return "dismissed"
	case AnimationForward:
		return "forward"
	case AnimationRepeating:
		return "repeating"
	case AnimationCompleted:
		return "completed"
	default:
		return fmt.Sprintf("AnimationStatus(%d)", int(s))
	}
}

// AnimationController produces a value between LowerBound and UpperBound
// over Duration. Listeners added with AddListener run after every change.
type AnimationController struct {
	// Value is the current animation value.
	Value float64

	// Duration is the length of one pass.
	Duration time.Duration

	// Curve transforms linear progress (optional).
	Curve func(float64) float64

	// LowerBound is the minimum value (default 0.0).
	LowerBound float64

	// UpperBound is the maximum value (default 1.0).
	UpperBound float64

	status         AnimationStatus
	reverse        bool
	ticker         *Ticker
	listeners      map[int]func()
	nextListenerID int
}

// NewAnimationController creates an animation controller with the given duration.
func NewAnimationController(duration time.Duration) *AnimationController {
	return &AnimationController{
		Duration:   duration,
		UpperBound: 1,
		Curve:      LinearCurve,
		listeners:  make(map[int]func()),
	}
}

// Forward animates once from the lower bound to the upper bound.
func (c *AnimationController) Forward() {
	c.start(AnimationForward, false)
}

// Repeat cycles forever. With reverse set, odd passes run from the upper
// bound back to the lower one, so the value swings instead of jumping.
func (c *AnimationController) Repeat(reverse bool) {
	c.start(AnimationRepeating, reverse)
}

func (c *AnimationController) start(status AnimationStatus, reverse bool) {
	c.Stop()
	c.status = status
	c.reverse = reverse
	c.Value = c.LowerBound
	c.notifyListeners()

	c.ticker = NewTicker(c.tick)
	c.ticker.Start()
}

func (c *AnimationController) tick(elapsed time.Duration) {
	if c.Duration <= 0 {
		c.Value = c.UpperBound
		c.notifyListeners()
		c.finish()
		return
	}

	pass := elapsed / c.Duration
	progress := float64(elapsed%c.Duration) / float64(c.Duration)
	if c.status == AnimationForward && pass >= 1 {
		progress = 1
	} else if c.reverse && pass%2 == 1 {
		progress = 1 - progress
	}

	eased := progress
	if c.Curve != nil {
		eased = c.Curve(progress)
	}
	c.Value = c.LowerBound + (c.UpperBound-c.LowerBound)*eased
	c.notifyListeners()

	if c.status == AnimationForward && progress >= 1 {
		c.finish()
	}
}

func (c *AnimationController) finish() {
	c.Stop()
	c.status = AnimationCompleted
}

// Reset stops the animation and sets the value to the lower bound.
func (c *AnimationController) Reset() {
	c.Stop()
	c.Value = c.LowerBound
	c.status = AnimationDismissed
	c.notifyListeners()
}

// Stop stops the animation at the current value.
func (c *AnimationController) Stop() {
	if c.ticker != nil {
		c.ticker.Stop()
		c.ticker = nil
	}
	if c.status == AnimationForward || c.status == AnimationRepeating {
		c.status = AnimationDismissed
	}
}

// Status returns the current animation status.
func (c *AnimationController) Status() AnimationStatus {
	return c.status
}

// IsAnimating returns true if the animation is currently running.
func (c *AnimationController) IsAnimating() bool {
	return c.ticker != nil && c.ticker.IsActive()
}

// AddListener adds a callback that fires whenever the value changes.
// Returns an unsubscribe function.
func (c *AnimationController) AddListener(fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	c.listeners[id] = fn
	return func() {
		delete(c.listeners, id)
	}
}

func (c *AnimationController) notifyListeners() {
	for _, listener := range c.listeners {
		listener()
	}
}

// Dispose stops the controller and drops its listeners.
func (c *AnimationController) Dispose() {
	c.Stop()
	c.listeners = nil
}
