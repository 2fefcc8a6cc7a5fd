package animation

import "math"

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

// StepCurve jumps from 0 to 1 halfway through. A caret tweened with it is
// either fully drawn or hidden, which reads as a blink.
func StepCurve(t float64) float64 {
	if t < 0.5 {
		return 0
	}
	return 1
}

// EaseInOutSine starts and ends slowly.
func EaseInOutSine(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}
