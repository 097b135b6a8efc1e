package theme

import (
	"github.com/go-drift/switchkit/pkg/graphics"
)

// SwitchThemeData defines default styling for switches.
type SwitchThemeData struct {
	// ActiveTrackColor is the track color when on.
	ActiveTrackColor graphics.Color
	// InactiveTrackColor is the track color when off.
	InactiveTrackColor graphics.Color
	// ThumbColor is the thumb fill color.
	ThumbColor graphics.Color
	// DisabledActiveTrackColor is the track color when on and disabled.
	DisabledActiveTrackColor graphics.Color
	// DisabledInactiveTrackColor is the track color when off and disabled.
	DisabledInactiveTrackColor graphics.Color
	// DisabledThumbColor is the thumb color when disabled.
	DisabledThumbColor graphics.Color
	// ThumbShadow is the shadow cast by the thumb.
	ThumbShadow graphics.Shadow
	// Width is the default switch width.
	Width float64
	// Height is the default switch height.
	Height float64
}

// DefaultSwitchTheme returns SwitchThemeData derived from a ColorScheme.
func DefaultSwitchTheme(colors ColorScheme) SwitchThemeData {
	shadow := graphics.DefaultThumbShadow()
	shadow.Color = colors.Shadow
	return SwitchThemeData{
		ActiveTrackColor:           colors.Primary,
		InactiveTrackColor:         colors.SurfaceVariant,
		ThumbColor:                 colors.Surface,
		DisabledActiveTrackColor:   colors.Primary.ScaleAlpha(0.5),
		DisabledInactiveTrackColor: colors.SurfaceVariant,
		DisabledThumbColor:         colors.OnSurfaceVariant,
		ThumbShadow:                shadow,
		Width:                      51,
		Height:                     31,
	}
}

// DisabledTrackColor returns the disabled track color for the given state.
func (t SwitchThemeData) DisabledTrackColor(on bool) graphics.Color {
	if on {
		return t.DisabledActiveTrackColor
	}
	return t.DisabledInactiveTrackColor
}

// Size returns the default switch size.
func (t SwitchThemeData) Size() graphics.Size {
	return graphics.Size{Width: t.Width, Height: t.Height}
}
