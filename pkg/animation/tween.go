package animation

import (
	"math"

	"github.com/go-drift/switchkit/pkg/graphics"
)

// Tween interpolates between Begin and End values based on animation progress.
//
// Progress outside [0, 1] extrapolates for numeric types, which lets spring
// curves overshoot positions. Colors clamp instead.
type Tween[T any] struct {
	// Begin is the starting value (when t = 0).
	Begin T
	// End is the ending value (when t = 1).
	End T
	// Lerp interpolates between Begin and End at progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the interpolated value at t.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform returns the interpolated value using the controller's current value.
func (tw *Tween[T]) Transform(controller *AnimationController) T {
	return tw.Evaluate(controller.Value)
}

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

// LerpOffset linearly interpolates between two Offset values.
func LerpOffset(a, b graphics.Offset, t float64) graphics.Offset {
	return graphics.Offset{
		X: LerpFloat64(a.X, b.X, t),
		Y: LerpFloat64(a.Y, b.Y, t),
	}
}

// LerpColor interpolates each ARGB channel. t is clamped to [0, 1].
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	t = math.Max(0, math.Min(1, t))
	channel := func(shift uint) uint32 {
		ca := float64((uint32(a) >> shift) & 0xFF)
		cb := float64((uint32(b) >> shift) & 0xFF)
		return uint32(math.Round(LerpFloat64(ca, cb, t))) << shift
	}
	return graphics.Color(channel(24) | channel(16) | channel(8) | channel(0))
}

// LerpOpacity interpolates opacity and clamps the result to [0, 1].
func LerpOpacity(a, b float64, t float64) float64 {
	return math.Max(0, math.Min(1, LerpFloat64(a, b, t)))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenOpacity creates a clamped tween for opacities.
func TweenOpacity(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpOpacity}
}

// TweenOffset creates a tween for Offset values.
func TweenOffset(begin, end graphics.Offset) *Tween[graphics.Offset] {
	return &Tween[graphics.Offset]{Begin: begin, End: end, Lerp: LerpOffset}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
