package widgets

import (
	"fmt"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/graphics"
)

// Spring parameters of the state transition.
const (
	springDampingRatio    = 0.7
	springInitialVelocity = 0.5
)

// TransitionPhase is the state of a switch's transition machine.
//
//	           toggle / SetState(animated)
//	Settled ─────────────────────────────► Transitioning
//	   ▲                                        │
//	   └──── completion / SetStateSilently ─────┘
//
// Layout passes only run while Settled; a pass requested while
// Transitioning is replayed on settle.
type TransitionPhase int

const (
	PhaseSettled TransitionPhase = iota
	PhaseTransitioning
)

// String returns a human-readable representation of the phase.
func (p TransitionPhase) String() string {
	switch p {
	case PhaseSettled:
		return "settled"
	case PhaseTransitioning:
		return "transitioning"
	default:
		return fmt.Sprintf("TransitionPhase(%d)", int(p))
	}
}

// presentation is the set of properties a transition animates.
type presentation struct {
	thumbOrigin   graphics.Offset
	background    graphics.Color
	onIconAlpha   float64
	offIconAlpha  float64
	onIconCenter  graphics.Offset
	offIconCenter graphics.Offset
}

// presentationTween interpolates every animated property at once.
type presentationTween struct {
	end presentation

	thumb         *animation.Tween[graphics.Offset]
	background    *animation.Tween[graphics.Color]
	onIconAlpha   *animation.Tween[float64]
	offIconAlpha  *animation.Tween[float64]
	onIconCenter  *animation.Tween[graphics.Offset]
	offIconCenter *animation.Tween[graphics.Offset]
}

func newPresentationTween(from, to presentation) *presentationTween {
	return &presentationTween{
		end:           to,
		thumb:         animation.TweenOffset(from.thumbOrigin, to.thumbOrigin),
		background:    animation.TweenColor(from.background, to.background),
		onIconAlpha:   animation.TweenOpacity(from.onIconAlpha, to.onIconAlpha),
		offIconAlpha:  animation.TweenOpacity(from.offIconAlpha, to.offIconAlpha),
		onIconCenter:  animation.TweenOffset(from.onIconCenter, to.onIconCenter),
		offIconCenter: animation.TweenOffset(from.offIconCenter, to.offIconCenter),
	}
}

func (pt *presentationTween) transform(c *animation.AnimationController) presentation {
	return presentation{
		thumbOrigin:   pt.thumb.Transform(c),
		background:    pt.background.Transform(c),
		onIconAlpha:   pt.onIconAlpha.Transform(c),
		offIconAlpha:  pt.offIconAlpha.Transform(c),
		onIconCenter:  pt.onIconCenter.Transform(c),
		offIconCenter: pt.offIconCenter.Transform(c),
	}
}
