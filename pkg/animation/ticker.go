// Package animation provides the timing primitives behind switch transitions.
//
// # Core Components
//
//   - [AnimationController]: produces a value that travels from 0.0 to 1.0
//     over a duration, optionally shaped by an easing curve.
//
//   - [Tween]: maps the controller's value onto colors, offsets, opacities
//     and plain floats.
//
//   - Curves: [EaseOut], [CubicBezier], the damped [SpringCurve] and
//     [EaseOutSpring], which switch transitions use.
//
// # Frame Driving
//
// Nothing in this package starts goroutines. The host calls [StepTickers]
// once per frame on its UI goroutine; every active [Ticker] receives the
// time elapsed since it started, measured by the package [Clock].
//
//	s.controller = animation.NewAnimationController(300 * time.Millisecond)
//	s.controller.Curve = animation.EaseOutSpring(300*time.Millisecond, 0.7, 0.5)
//	x := animation.TweenFloat64(offX, onX)
//	s.controller.AddListener(func() {
//	    thumb.SetX(x.Transform(s.controller))
//	})
//	s.controller.Forward()
//
//	// each frame
//	animation.StepTickers()
package animation

import (
	"sync"
	"time"
)

var (
	tickerMu      sync.Mutex
	activeTickers = make(map[*Ticker]struct{})
)

// Ticker calls a callback on each frame while active.
//
// Ticker is the low-level timing primitive used by [AnimationController].
// Most code should use AnimationController directly rather than Ticker.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker. Elapsed time is measured from this call.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers[t] = struct{}{}
	tickerMu.Unlock()
}

// Stop deactivates the ticker.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	delete(activeTickers, t)
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// StepTickers advances all active tickers.
// Hosts call this once per frame before laying out and painting.
func StepTickers() {
	tickerMu.Lock()
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Callbacks may start or stop tickers, so iterate over a copy.
	tickers := make([]*Ticker, 0, len(activeTickers))
	for ticker := range activeTickers {
		tickers = append(tickers, ticker)
	}
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}
