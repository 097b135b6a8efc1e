package animation

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	// springSamples is the resolution of the precomputed spring table.
	springSamples = 240

	// springSettleLog is ln(1/0.001): the envelope decays to 0.1% of the
	// initial displacement by the end of the duration.
	springSettleLog = 6.907755

	minDampingRatio = 0.05
)

// SpringCurve returns an easing curve that follows a damped spring released
// from 0 toward 1, stretched so it settles within duration.
//
// dampingRatio below 1 overshoots before settling; 1 is critically damped.
// initialVelocity is in units of the total distance per second, so 0.5
// means the value starts moving at half the full span per second.
//
// The curve is sampled once up front; evaluating it is a table lookup.
func SpringCurve(duration time.Duration, dampingRatio, initialVelocity float64) func(float64) float64 {
	seconds := duration.Seconds()
	if seconds <= 0 {
		return LinearCurve
	}
	damping := math.Max(dampingRatio, minDampingRatio)
	omega := springSettleLog / (math.Min(damping, 1) * seconds)

	spring := harmonica.NewSpring(seconds/springSamples, omega, damping)
	table := make([]float64, springSamples+1)
	pos, vel := 0.0, initialVelocity
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		table[i] = pos
	}
	table[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return table[i] + (table[i+1]-table[i])*frac
	}
}

// EaseOutSpring is SpringCurve with its timeline warped by EaseOut, so the
// spring covers most of its travel early and spends the tail settling.
func EaseOutSpring(duration time.Duration, dampingRatio, initialVelocity float64) func(float64) float64 {
	spring := SpringCurve(duration, dampingRatio, initialVelocity)
	return func(t float64) float64 {
		return spring(EaseOut(t))
	}
}
