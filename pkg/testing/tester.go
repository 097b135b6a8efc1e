package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/rendering"
	"github.com/go-drift/switchkit/pkg/view"
)

// FrameDuration is the clock advance per frame in PumpAndSettle (60 fps).
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// SwitchTester mounts a view tree and steps its animations on a fake clock.
type SwitchTester struct {
	root      *view.View
	router    *view.PointerRouter
	clock     *FakeClock
	prevClock animation.Clock
	frames    int
}

// NewSwitchTester creates a tester and installs its fake clock as the
// animation clock. Call Cleanup() when done, or use NewSwitchTesterWithT().
func NewSwitchTester() *SwitchTester {
	clk := NewFakeClock()
	return &SwitchTester{
		clock:     clk,
		prevClock: animation.SetClock(clk),
	}
}

// NewSwitchTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewSwitchTesterWithT(t testing.TB) *SwitchTester {
	tester := NewSwitchTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup restores the previous animation clock.
func (t *SwitchTester) Cleanup() {
	animation.SetClock(t.prevClock)
}

// Clock returns the fake clock for advancing time in tests.
func (t *SwitchTester) Clock() *FakeClock {
	return t.clock
}

// Mount makes root the tree that pointer events and snapshots target, and
// lays it out.
func (t *SwitchTester) Mount(root *view.View) {
	t.root = root
	t.router = view.NewPointerRouter(root)
	root.LayoutIfNeeded()
}

// Root returns the mounted view tree.
func (t *SwitchTester) Root() *view.View {
	return t.root
}

// Frames returns the number of frames pumped so far.
func (t *SwitchTester) Frames() int {
	return t.frames
}

// Pump runs a single frame: tickers are stepped at the current fake time,
// then any pending layout runs.
func (t *SwitchTester) Pump() {
	animation.StepTickers()
	if t.root != nil {
		t.root.LayoutIfNeeded()
	}
	t.frames++
}

// PumpFor advances the clock by d and pumps one frame.
func (t *SwitchTester) PumpFor(d time.Duration) {
	t.clock.Advance(d)
	t.Pump()
}

// PumpAndSettle runs frames until no ticker is active or the timeout is
// reached. Each frame advances the fake clock by FrameDuration.
func (t *SwitchTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Record paints the mounted tree into a display list.
func (t *SwitchTester) Record() *rendering.DisplayList {
	if t.root == nil {
		return (&rendering.PictureRecorder{}).EndRecording()
	}
	return view.Record(t.root)
}
