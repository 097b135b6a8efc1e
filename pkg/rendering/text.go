package rendering

import (
	"fmt"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/graphics"
)

// defaultFontSize is used when no font size is specified.
const defaultFontSize = 12

// TextAlign controls horizontal placement of a line inside its bounds.
type TextAlign int

const (
	TextAlignCenter TextAlign = iota
	TextAlignLeft
	TextAlignRight
)

// String returns a human-readable representation of the alignment.
func (a TextAlign) String() string {
	switch a {
	case TextAlignCenter:
		return "center"
	case TextAlignLeft:
		return "left"
	case TextAlignRight:
		return "right"
	default:
		return fmt.Sprintf("TextAlign(%d)", int(a))
	}
}

// TextStyle describes how a label is drawn.
type TextStyle struct {
	Color    graphics.Color
	FontSize float64
	Bold     bool
	Align    TextAlign
}

// DefaultLabelStyle is the bold white 12pt centered style of switch labels.
func DefaultLabelStyle() TextStyle {
	return TextStyle{
		Color:    graphics.ColorWhite,
		FontSize: defaultFontSize,
		Bold:     true,
		Align:    TextAlignCenter,
	}
}

type faceKey struct {
	size float64
	bold bool
}

var (
	fontsOnce   sync.Once
	regularFont *opentype.Font
	boldFont    *opentype.Font

	facesMu sync.Mutex
	faces   = make(map[faceKey]font.Face)
)

func loadFonts() {
	var err error
	if regularFont, err = opentype.Parse(goregular.TTF); err != nil {
		errors.Report(&errors.SwitchError{Op: "rendering.loadFonts", Kind: errors.KindRender, Err: err})
	}
	if boldFont, err = opentype.Parse(gobold.TTF); err != nil {
		errors.Report(&errors.SwitchError{Op: "rendering.loadFonts", Kind: errors.KindRender, Err: err})
	}
}

// faceFor returns a cached face for style, falling back to the 7x13 bitmap
// face if the embedded Go fonts cannot be loaded.
func faceFor(style TextStyle) font.Face {
	fontsOnce.Do(loadFonts)

	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	key := faceKey{size: size, bold: style.Bold}

	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[key]; ok {
		return face
	}

	src := regularFont
	if style.Bold {
		src = boldFont
	}
	if src == nil {
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		errors.Report(&errors.SwitchError{Op: "rendering.faceFor", Kind: errors.KindRender, Err: err})
		return basicfont.Face7x13
	}
	faces[key] = face
	return face
}

// MeasureText returns the advance width and line height of text.
func MeasureText(text string, style TextStyle) graphics.Size {
	face := faceFor(style)
	metrics := face.Metrics()
	return graphics.Size{
		Width:  fixedToFloat(font.MeasureString(face, text)),
		Height: fixedToFloat(metrics.Ascent + metrics.Descent),
	}
}

// textOrigin returns the baseline origin that places text inside bounds,
// vertically centered.
func textOrigin(text string, style TextStyle, bounds graphics.Rect) graphics.Offset {
	size := MeasureText(text, style)
	x := bounds.Left
	switch style.Align {
	case TextAlignCenter:
		x = bounds.Left + (bounds.Width()-size.Width)/2
	case TextAlignRight:
		x = bounds.Right - size.Width
	}
	top := bounds.Top + (bounds.Height()-size.Height)/2
	return graphics.Offset{X: x, Y: top + fixedToFloat(faceFor(style).Metrics().Ascent)}
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func floatToFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
