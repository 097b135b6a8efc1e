package widgets

import (
	"math"
	"time"

	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/theme"
)

// DefaultAnimationDuration is the length of a state transition.
const DefaultAnimationDuration = 300 * time.Millisecond

// Style holds every appearance setting of a [Switch]. Values round-trip
// verbatim through [Switch.SetStyle] and [Switch.Style]; fallbacks are
// resolved only by the Effective* methods.
type Style struct {
	// OnTintColor is the track color when on.
	OnTintColor graphics.Color
	// OffTintColor is the track color when off.
	OffTintColor graphics.Color
	// ThumbTintColor is the thumb fill color.
	ThumbTintColor graphics.Color

	// Padding is the gap between the track edge and the thumb.
	Padding float64
	// CornerRadius overrides the track radius. Nil means half the height.
	CornerRadius *float64
	// ThumbSize overrides the thumb size. Zero means a square that fills
	// the track height minus padding.
	ThumbSize graphics.Size
	// ThumbCornerRadius overrides the thumb radius. Nil means half the
	// thumb's smaller dimension.
	ThumbCornerRadius *float64

	ThumbShadow      graphics.Shadow
	ThumbBorder      graphics.Border
	ThumbImageInsets graphics.EdgeInsets

	// LabelsShown shows the "On" and "Off" labels under the thumb.
	LabelsShown bool
	// AnimationDuration is the transition length. Zero or negative values
	// switch instantly.
	AnimationDuration time.Duration
}

// DefaultStyle returns the stock look: green on track, white off track and
// a white thumb with a soft shadow.
func DefaultStyle() Style {
	return Style{
		OnTintColor:       graphics.ColorSystemGreen,
		OffTintColor:      graphics.ColorWhite,
		ThumbTintColor:    graphics.ColorWhite,
		Padding:           1,
		ThumbShadow:       graphics.DefaultThumbShadow(),
		ThumbBorder:       graphics.Border{Color: graphics.ColorWhite},
		AnimationDuration: DefaultAnimationDuration,
	}
}

// StyleFromTheme returns DefaultStyle recolored from a switch theme.
func StyleFromTheme(t theme.SwitchThemeData) Style {
	s := DefaultStyle()
	s.OnTintColor = t.ActiveTrackColor
	s.OffTintColor = t.InactiveTrackColor
	s.ThumbTintColor = t.ThumbColor
	s.ThumbShadow = t.ThumbShadow
	return s
}

// Float returns a pointer to v, for the optional radius overrides.
func Float(v float64) *float64 {
	return &v
}

// clone copies s so the override pointers are not shared with the caller.
func (s Style) clone() Style {
	if s.CornerRadius != nil {
		s.CornerRadius = Float(*s.CornerRadius)
	}
	if s.ThumbCornerRadius != nil {
		s.ThumbCornerRadius = Float(*s.ThumbCornerRadius)
	}
	return s
}

// EffectiveCornerRadius returns the track radius for a control of the
// given size.
func (s Style) EffectiveCornerRadius(size graphics.Size) float64 {
	if s.CornerRadius != nil {
		return *s.CornerRadius
	}
	return size.Height / 2
}

// EffectiveThumbSize returns the thumb size for a control of the given size.
func (s Style) EffectiveThumbSize(size graphics.Size) graphics.Size {
	if !s.ThumbSize.IsZero() {
		return s.ThumbSize
	}
	side := math.Max(0, size.Height-2*s.Padding)
	return graphics.Size{Width: side, Height: side}
}

// EffectiveThumbCornerRadius returns the thumb radius for a thumb of the
// given size.
func (s Style) EffectiveThumbCornerRadius(thumb graphics.Size) float64 {
	if s.ThumbCornerRadius != nil {
		return *s.ThumbCornerRadius
	}
	return thumb.MinDimension() / 2
}

// switchGeometry is the output of one layout computation.
type switchGeometry struct {
	size              graphics.Size
	cornerRadius      float64
	thumbSize         graphics.Size
	thumbCornerRadius float64
	onPoint           graphics.Offset
	offPoint          graphics.Offset
	labelWidth        float64
	iconSize          float64
}

// iconScale is the icon size relative to the thumb's smaller dimension.
const iconScale = 0.7

func computeGeometry(s Style, size graphics.Size) switchGeometry {
	thumb := s.EffectiveThumbSize(size)
	y := (size.Height - thumb.Height) / 2
	return switchGeometry{
		size:              size,
		cornerRadius:      s.EffectiveCornerRadius(size),
		thumbSize:         thumb,
		thumbCornerRadius: s.EffectiveThumbCornerRadius(thumb),
		onPoint:           graphics.Offset{X: size.Width - thumb.Width - s.Padding, Y: y},
		offPoint:          graphics.Offset{X: s.Padding, Y: y},
		labelWidth:        math.Max(0, size.Width/2-2*s.Padding),
		iconSize:          thumb.MinDimension() * iconScale,
	}
}

// restingPoint returns the thumb origin for state on.
func (g switchGeometry) restingPoint(on bool) graphics.Offset {
	if on {
		return g.onPoint
	}
	return g.offPoint
}
