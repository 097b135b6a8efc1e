package view

import (
	"fmt"

	"github.com/go-drift/switchkit/pkg/graphics"
)

// PointerPhase describes the pointer event type.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// String returns a human-readable representation of the pointer phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return fmt.Sprintf("PointerPhase(%d)", int(p))
	}
}

// PointerEvent is a single pointer sample.
type PointerEvent struct {
	ID       int64
	Phase    PointerPhase
	Position graphics.Offset
}

// HitTest returns the frontmost view under p that has an OnPointer handler.
// p is in v's parent coordinates. Hidden, transparent and non-interactive
// views are skipped along with their subtrees.
func (v *View) HitTest(p graphics.Offset) *View {
	if v.Hidden || v.Alpha <= 0 || !v.UserInteractionEnabled {
		return nil
	}
	if !v.frame.Contains(p) {
		return nil
	}
	local := graphics.Offset{X: p.X - v.frame.Left, Y: p.Y - v.frame.Top}
	for i := len(v.children) - 1; i >= 0; i-- {
		if hit := v.children[i].HitTest(local); hit != nil {
			return hit
		}
	}
	if v.OnPointer != nil {
		return v
	}
	return nil
}

// PointerRouter dispatches pointer events into a view tree.
//
// The target is chosen on Down and kept for the rest of the gesture, so a
// drag that leaves the view still delivers its Move and Up events there.
type PointerRouter struct {
	root    *View
	targets map[int64]*View
}

// NewPointerRouter returns a router for the tree rooted at root.
func NewPointerRouter(root *View) *PointerRouter {
	return &PointerRouter{root: root, targets: make(map[int64]*View)}
}

// Dispatch routes event, whose position is in the root's parent
// coordinates. It reports whether a view received the event.
func (r *PointerRouter) Dispatch(event PointerEvent) bool {
	var target *View
	if event.Phase == PointerPhaseDown {
		target = r.root.HitTest(event.Position)
		if target == nil {
			delete(r.targets, event.ID)
			return false
		}
		r.targets[event.ID] = target
	} else {
		target = r.targets[event.ID]
	}
	if event.Phase == PointerPhaseUp || event.Phase == PointerPhaseCancel {
		delete(r.targets, event.ID)
	}
	if target == nil || target.OnPointer == nil {
		return false
	}

	local := event
	local.Position = target.ConvertFromAncestor(event.Position, nil)
	target.OnPointer(local)
	return true
}

// Active reports the number of pointers currently captured.
func (r *PointerRouter) Active() int {
	return len(r.targets)
}
