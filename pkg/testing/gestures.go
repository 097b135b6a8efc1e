package testing

import (
	"fmt"

	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/view"
)

// nextPointerID is incremented for each new pointer to avoid collisions.
var nextPointerID int64

func allocPointerID() int64 {
	nextPointerID++
	return nextPointerID
}

// Tap simulates a tap at the center of the first view matched by finder.
func (t *SwitchTester) Tap(finder Finder) error {
	result := t.Find(finder)
	if !result.Exists() {
		return fmt.Errorf("Tap: finder matched no views: %s", finder.Description())
	}
	return t.TapAt(centerInRoot(result.First()))
}

// TapAt simulates a tap at pos in the root's parent coordinates.
func (t *SwitchTester) TapAt(pos graphics.Offset) error {
	id := allocPointerID()
	if err := t.SendPointer(view.PointerEvent{ID: id, Phase: view.PointerPhaseDown, Position: pos}); err != nil {
		return err
	}
	return t.SendPointer(view.PointerEvent{ID: id, Phase: view.PointerPhaseUp, Position: pos})
}

// DragFrom simulates a drag from start by delta.
func (t *SwitchTester) DragFrom(start, delta graphics.Offset) error {
	id := allocPointerID()
	end := start.Add(delta)
	events := []view.PointerEvent{
		{ID: id, Phase: view.PointerPhaseDown, Position: start},
		{ID: id, Phase: view.PointerPhaseMove, Position: end},
		{ID: id, Phase: view.PointerPhaseUp, Position: end},
	}
	for _, ev := range events {
		if err := t.SendPointer(ev); err != nil {
			return err
		}
	}
	return nil
}

// SendPointer routes a single event into the mounted tree. Events that hit
// nothing are not an error.
func (t *SwitchTester) SendPointer(event view.PointerEvent) error {
	if t.router == nil {
		return fmt.Errorf("SendPointer: no view tree mounted")
	}
	t.router.Dispatch(event)
	return nil
}

// centerInRoot returns the center of v in the root's parent coordinates.
func centerInRoot(v *view.View) graphics.Offset {
	p := v.Bounds().Center()
	for n := v; n != nil; n = n.Parent() {
		p = p.Add(n.Frame().Origin())
	}
	return p
}
