package view

import (
	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/rendering"
)

// Paint draws v and its subtree. The canvas origin is v's parent origin.
//
// Order: shadow, background, image, text, children, border. Hidden views
// and fully transparent views are skipped with their subtrees.
func (v *View) Paint(canvas rendering.Canvas) {
	if v.Hidden || v.Alpha <= 0 {
		return
	}
	canvas.Save()
	canvas.Translate(v.frame.Left, v.frame.Top)

	bounds := v.Bounds()
	shape := graphics.RRectFromRectAndRadius(bounds, graphics.CircularRadius(v.CornerRadius))

	layered := v.Alpha < 1
	if layered {
		canvas.SaveLayerAlpha(bounds, v.Alpha)
	}

	if v.Shadow.IsVisible() {
		canvas.DrawRRectShadow(shape, v.Shadow)
	}
	if v.BackgroundColor.Alpha() > 0 {
		canvas.DrawRRect(shape, rendering.FillPaint(v.BackgroundColor))
	}

	if v.ClipsToBounds {
		canvas.Save()
		canvas.ClipRRect(shape)
	}
	if v.Image != nil {
		canvas.DrawImageRect(v.Image, v.ImageRect())
	}
	if v.Text != "" {
		canvas.DrawText(v.Text, v.TextStyle, bounds)
	}
	for _, child := range v.children {
		child.Paint(canvas)
	}
	if v.ClipsToBounds {
		canvas.Restore()
	}

	if v.Border.IsVisible() {
		canvas.DrawRRect(shape, rendering.StrokePaint(v.Border.Color, v.Border.Width))
	}

	if layered {
		canvas.Restore()
	}
	canvas.Restore()
}

// Record lays out root if needed and records it into a display list sized
// to its frame.
func Record(root *View) *rendering.DisplayList {
	root.LayoutIfNeeded()
	rec := &rendering.PictureRecorder{}
	canvas := rec.BeginRecording(root.frame.Size())
	canvas.Translate(-root.frame.Left, -root.frame.Top)
	root.Paint(canvas)
	return rec.EndRecording()
}

// Rasterize lays out root if needed and paints it onto a fresh raster
// canvas sized to its frame.
func Rasterize(root *View, scale float64) *rendering.RasterCanvas {
	root.LayoutIfNeeded()
	canvas := rendering.NewRasterCanvas(root.frame.Size(), scale)
	canvas.Translate(-root.frame.Left, -root.frame.Top)
	root.Paint(canvas)
	return canvas
}
