// Package view is a small retained view tree: rectangles with frames,
// appearance properties and children, laid out by per-view hooks and
// painted onto a [rendering.Canvas].
//
// Frames are in the parent's coordinate space; bounds always start at the
// origin. Layout is pull-based: SetNeedsLayout marks a view dirty and
// LayoutIfNeeded runs the dirty hooks top-down.
package view

import (
	"image"

	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/rendering"
)

// ContentMode controls how a view's Image is fitted into its bounds.
type ContentMode int

const (
	// ContentModeScaleToFill stretches the image to the bounds.
	ContentModeScaleToFill ContentMode = iota
	// ContentModeScaleAspectFit scales the image to fit, preserving aspect ratio.
	ContentModeScaleAspectFit
)

// Layouter positions a view's children during a layout pass.
type Layouter interface {
	LayoutSubviews(v *View)
}

// LayoutFunc adapts a function to the Layouter interface.
type LayoutFunc func(v *View)

// LayoutSubviews calls f(v).
func (f LayoutFunc) LayoutSubviews(v *View) {
	f(v)
}

// View is a node in the view tree.
type View struct {
	// Name identifies the view in snapshots and debug output.
	Name string

	BackgroundColor graphics.Color
	CornerRadius    float64
	// Alpha is the view's opacity, 0 to 1. New views start at 1.
	Alpha         float64
	Hidden        bool
	ClipsToBounds bool
	Shadow        graphics.Shadow
	Border        graphics.Border

	Image       image.Image
	ContentMode ContentMode

	Text      string
	TextStyle rendering.TextStyle

	// UserInteractionEnabled excludes the view and its children from hit
	// testing when false.
	UserInteractionEnabled bool
	// OnPointer receives pointer events routed to this view, with
	// positions in its own coordinate space.
	OnPointer func(event PointerEvent)

	frame       graphics.Rect
	parent      *View
	children    []*View
	layouter    Layouter
	needsLayout bool
}

// New returns an opaque, interactive, zero-sized view.
func New(name string) *View {
	return &View{
		Name:                   name,
		Alpha:                  1,
		UserInteractionEnabled: true,
		needsLayout:            true,
	}
}

// Frame returns the view's rectangle in its parent's coordinates.
func (v *View) Frame() graphics.Rect {
	return v.frame
}

// SetFrame moves and resizes the view. A size change schedules layout.
func (v *View) SetFrame(frame graphics.Rect) {
	if v.frame.Size() != frame.Size() {
		v.SetNeedsLayout()
	}
	v.frame = frame
}

// Bounds returns the view's rectangle in its own coordinates.
func (v *View) Bounds() graphics.Rect {
	return graphics.RectFromOriginSize(graphics.Offset{}, v.frame.Size())
}

// Size returns the frame size.
func (v *View) Size() graphics.Size {
	return v.frame.Size()
}

// SetSize resizes the view, keeping its origin.
func (v *View) SetSize(size graphics.Size) {
	v.SetFrame(graphics.RectFromOriginSize(v.frame.Origin(), size))
}

// SetOrigin moves the view, keeping its size.
func (v *View) SetOrigin(origin graphics.Offset) {
	v.frame = v.frame.WithOrigin(origin)
}

// Center returns the frame center in the parent's coordinates.
func (v *View) Center() graphics.Offset {
	return v.frame.Center()
}

// SetCenter moves the view so its frame is centered on p.
func (v *View) SetCenter(p graphics.Offset) {
	v.frame = graphics.RectFromCenter(p, v.frame.Size())
}

// Parent returns the superview, or nil for a root.
func (v *View) Parent() *View {
	return v.parent
}

// Subviews returns the children in back-to-front order.
func (v *View) Subviews() []*View {
	out := make([]*View, len(v.children))
	copy(out, v.children)
	return out
}

// AddSubview appends child on top of the existing children, detaching it
// from any previous parent.
func (v *View) AddSubview(child *View) {
	if child == nil || child == v {
		return
	}
	child.RemoveFromSuperview()
	child.parent = v
	v.children = append(v.children, child)
	v.SetNeedsLayout()
}

// InsertSubviewBelow inserts child directly beneath sibling. If sibling is
// not a child of v, child is added on top.
func (v *View) InsertSubviewBelow(child, sibling *View) {
	if child == nil || child == v {
		return
	}
	child.RemoveFromSuperview()
	idx := v.indexOf(sibling)
	if idx < 0 {
		v.AddSubview(child)
		return
	}
	child.parent = v
	v.children = append(v.children, nil)
	copy(v.children[idx+1:], v.children[idx:])
	v.children[idx] = child
	v.SetNeedsLayout()
}

// RemoveFromSuperview detaches the view from its parent.
func (v *View) RemoveFromSuperview() {
	p := v.parent
	if p == nil {
		return
	}
	if idx := p.indexOf(v); idx >= 0 {
		p.children = append(p.children[:idx], p.children[idx+1:]...)
	}
	v.parent = nil
	p.SetNeedsLayout()
}

func (v *View) indexOf(child *View) int {
	for i, c := range v.children {
		if c == child {
			return i
		}
	}
	return -1
}

// SetLayouter installs the hook that positions children on layout passes.
func (v *View) SetLayouter(l Layouter) {
	v.layouter = l
	v.SetNeedsLayout()
}

// SetNeedsLayout marks the view for layout on the next LayoutIfNeeded.
func (v *View) SetNeedsLayout() {
	v.needsLayout = true
}

// NeedsLayout reports whether a layout pass is pending.
func (v *View) NeedsLayout() bool {
	return v.needsLayout
}

// LayoutIfNeeded runs pending layout passes for v and its descendants,
// parents before children.
func (v *View) LayoutIfNeeded() {
	if v.needsLayout {
		v.needsLayout = false
		if v.layouter != nil {
			v.layouter.LayoutSubviews(v)
		}
	}
	for _, child := range v.children {
		child.LayoutIfNeeded()
	}
}

// ConvertFromAncestor maps p from ancestor's coordinates into v's.
// If ancestor is not above v, p is mapped from the root's coordinates.
func (v *View) ConvertFromAncestor(p graphics.Offset, ancestor *View) graphics.Offset {
	for n := v; n != nil && n != ancestor; n = n.parent {
		p = graphics.Offset{X: p.X - n.frame.Left, Y: p.Y - n.frame.Top}
	}
	return p
}

// ImageRect returns where Image is drawn inside the bounds for the current
// ContentMode.
func (v *View) ImageRect() graphics.Rect {
	bounds := v.Bounds()
	if v.Image == nil || v.ContentMode != ContentModeScaleAspectFit {
		return bounds
	}
	src := v.Image.Bounds()
	if src.Dx() == 0 || src.Dy() == 0 || bounds.IsEmpty() {
		return bounds
	}
	scale := min(bounds.Width()/float64(src.Dx()), bounds.Height()/float64(src.Dy()))
	fitted := graphics.Size{Width: float64(src.Dx()) * scale, Height: float64(src.Dy()) * scale}
	return graphics.RectFromCenter(bounds.Center(), fitted)
}
