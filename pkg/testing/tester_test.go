package testing

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/view"
	"github.com/go-drift/switchkit/pkg/widgets"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	clk.Advance(-time.Second)

	if got := clk.Now().Sub(start); got != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", got)
	}
	if clk.Elapsed() != 100*time.Millisecond {
		t.Errorf("expected Elapsed 100ms, got %v", clk.Elapsed())
	}
}

func TestSwitchTester_InstallsAndRestoresClock(t *testing.T) {
	tester := NewSwitchTester()
	if !animation.Now().Equal(tester.Clock().Now()) {
		t.Fatal("expected fake clock to drive animations")
	}
	tester.Cleanup()
	if animation.Now().Equal(tester.Clock().Now()) {
		t.Error("expected previous clock restored after Cleanup")
	}
}

func mountSwitch(t *testing.T, opts ...widgets.Option) (*SwitchTester, *widgets.Switch) {
	t.Helper()
	tester := NewSwitchTesterWithT(t)
	sw := widgets.NewSwitch(graphics.RectFromLTWH(10, 10, 100, 50), opts...)
	t.Cleanup(sw.Dispose)
	tester.Mount(sw.View())
	return tester, sw
}

func TestSwitchTester_TapTogglesAndSettles(t *testing.T) {
	tester, sw := mountSwitch(t)

	if err := tester.Tap(ByName("switch")); err != nil {
		t.Fatal(err)
	}
	if sw.IsOn() {
		t.Error("expected switch off right after tap")
	}
	if !sw.IsTransitioning() {
		t.Error("expected a running transition")
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if sw.IsTransitioning() {
		t.Error("expected transition to settle")
	}
	if got := sw.ThumbFrame().Origin(); got != sw.OffPoint() {
		t.Errorf("expected thumb at %v, got %v", sw.OffPoint(), got)
	}
	if tester.Frames() < 2 {
		t.Errorf("expected several frames, got %d", tester.Frames())
	}
}

func TestSwitchTester_DragTogglesOnce(t *testing.T) {
	tester, sw := mountSwitch(t, widgets.WithOn(false))
	var changes []bool
	sw.OnValueChanged(func(on bool) { changes = append(changes, on) })

	start := centerInRoot(sw.View())
	if err := tester.DragFrom(start, graphics.Offset{X: 40, Y: 0}); err != nil {
		t.Fatal(err)
	}
	if !sw.IsOn() {
		t.Error("expected drag-begin to toggle the switch on")
	}
	if len(changes) != 1 || !changes[0] {
		t.Errorf("expected exactly one change to true, got %v", changes)
	}
	if tester.router.Active() != 0 {
		t.Errorf("expected pointer released after drag, got %d active", tester.router.Active())
	}

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Fatal(err)
	}
	if len(changes) != 1 {
		t.Errorf("expected no further toggles after settling, got %v", changes)
	}
	if got := sw.ThumbFrame().Origin(); got != sw.OnPoint() {
		t.Errorf("expected thumb at %v, got %v", sw.OnPoint(), got)
	}
}

func TestSwitchTester_PumpAndSettleTimeout(t *testing.T) {
	tester, sw := mountSwitch(t, widgets.WithStyle(func() widgets.Style {
		st := widgets.DefaultStyle()
		st.AnimationDuration = 10 * time.Second
		return st
	}()))

	sw.Toggle()
	err := tester.PumpAndSettle(100 * time.Millisecond)
	if !errors.Is(err, ErrSettleTimeout) {
		t.Fatalf("expected ErrSettleTimeout, got %v", err)
	}
}

func TestSwitchTester_TapMissingView(t *testing.T) {
	tester, _ := mountSwitch(t)
	if err := tester.Tap(ByName("missing")); err == nil {
		t.Error("expected error for unmatched finder")
	}
}

func TestFinders(t *testing.T) {
	tester, _ := mountSwitch(t)

	if n := tester.Find(ByText("On")).Count(); n != 1 {
		t.Errorf("expected one On label, got %d", n)
	}
	if !tester.Find(ByName("thumbImage")).Exists() {
		t.Error("expected thumb image view")
	}
	icons := tester.Find(ByPredicate(func(v *view.View) bool { return v.Name == "onIcon" || v.Name == "offIcon" }))
	if icons.Count() != 2 {
		t.Errorf("expected two icon views, got %d", icons.Count())
	}
	if tester.Find(ByName("nothing")).FirstOrNil() != nil {
		t.Error("expected nil for no match")
	}
}

func TestSnapshot_RoundTripAndDiff(t *testing.T) {
	tester, sw := mountSwitch(t)

	snap := tester.CaptureSnapshot()
	if snap.ViewTree == nil || snap.ViewTree.Name != "switch" {
		t.Fatalf("unexpected root node: %+v", snap.ViewTree)
	}
	if len(snap.ViewTree.Children) != 5 {
		t.Errorf("expected 5 children, got %d", len(snap.ViewTree.Children))
	}

	path := filepath.Join(t.TempDir(), "switch.snapshot.json")
	if err := snap.UpdateFile(path); err != nil {
		t.Fatal(err)
	}
	snap.MatchesFile(t, path)

	sw.SetStateSilently(false)
	if diff := tester.CaptureSnapshot().Diff(snap); diff == "" {
		t.Error("expected a diff after state change")
	}
}
