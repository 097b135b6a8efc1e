// Package testing drives switches and view trees deterministically in tests.
//
// # Quick Start
//
// Create a tester, mount a view tree, and pump frames:
//
//	func TestMySwitch(t *testing.T) {
//	    tester := switchtest.NewSwitchTesterWithT(t)
//	    sw := widgets.NewSwitch(graphics.RectFromLTWH(0, 0, 100, 50))
//	    tester.Mount(sw.View())
//
//	    tester.TapAt(graphics.Offset{X: 50, Y: 25})
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	    if sw.IsOn() {
//	        t.Error("expected switch to be off")
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare view tree snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/switch.snapshot.json")
//
// Update snapshots with:
//
//	SWITCHKIT_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// The tester installs a [FakeClock] as the animation clock:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import switchtest "github.com/go-drift/switchkit/pkg/testing"
package testing
