// Package rendering turns view trees into pixels.
//
// Views paint into a [Canvas]. Two implementations ship here:
// [PictureRecorder] captures a replayable [DisplayList] (used by tests and
// snapshots), and [RasterCanvas] rasterizes onto an *image.RGBA with
// golang.org/x/image.
package rendering

import (
	"fmt"
	"image"

	"github.com/go-drift/switchkit/pkg/graphics"
)

// PaintStyle describes how shapes are filled or stroked.
type PaintStyle int

const (
	// PaintStyleFill fills the shape interior.
	PaintStyleFill PaintStyle = iota

	// PaintStyleStroke draws only the outline, inside the shape's edge.
	PaintStyleStroke
)

// String returns a human-readable representation of the paint style.
func (s PaintStyle) String() string {
	switch s {
	case PaintStyleFill:
		return "fill"
	case PaintStyleStroke:
		return "stroke"
	default:
		return fmt.Sprintf("PaintStyle(%d)", int(s))
	}
}

// Paint describes how to draw a shape.
type Paint struct {
	Color       graphics.Color
	Style       PaintStyle
	StrokeWidth float64
}

// FillPaint returns a fill paint of the given color.
func FillPaint(c graphics.Color) Paint {
	return Paint{Color: c, Style: PaintStyleFill}
}

// StrokePaint returns an inside stroke of the given color and width.
func StrokePaint(c graphics.Color, width float64) Paint {
	return Paint{Color: c, Style: PaintStyleStroke, StrokeWidth: width}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform, clip and opacity state.
	Save()

	// SaveLayerAlpha saves state and multiplies subsequent drawing by alpha
	// (0.0 to 1.0) until the matching Restore.
	SaveLayerAlpha(bounds graphics.Rect, alpha float64)

	// Restore pops the most recent state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// ClipRRect restricts future drawing to the given rounded rectangle.
	ClipRRect(rrect graphics.RRect)

	// DrawRRect draws a rounded rectangle with the provided paint.
	DrawRRect(rrect graphics.RRect, paint Paint)

	// DrawRRectShadow draws a blurred shadow behind a rounded rectangle.
	DrawRRectShadow(rrect graphics.RRect, shadow graphics.Shadow)

	// DrawImageRect scales img into dst.
	DrawImageRect(img image.Image, dst graphics.Rect)

	// DrawText draws a single line of text aligned inside bounds.
	DrawText(text string, style TextStyle, bounds graphics.Rect)

	// Size returns the size of the canvas in pixels.
	Size() graphics.Size
}
