// Package theme provides the default palettes switches draw from.
package theme

import (
	"fmt"

	"github.com/go-drift/switchkit/pkg/graphics"
)

// Brightness indicates whether a theme is light or dark.
type Brightness int

const (
	// BrightnessLight is a light theme with dark text on light backgrounds.
	BrightnessLight Brightness = iota
	// BrightnessDark is a dark theme with light text on dark backgrounds.
	BrightnessDark
)

// String returns a human-readable representation of the brightness.
func (b Brightness) String() string {
	switch b {
	case BrightnessLight:
		return "light"
	case BrightnessDark:
		return "dark"
	default:
		return fmt.Sprintf("Brightness(%d)", int(b))
	}
}

// ColorScheme is the subset of a palette switches use.
type ColorScheme struct {
	// Primary is the accent used for the on track.
	Primary graphics.Color
	// Surface is the thumb color.
	Surface graphics.Color
	// SurfaceVariant is the off track color.
	SurfaceVariant graphics.Color
	// OnSurfaceVariant is used for disabled thumbs.
	OnSurfaceVariant graphics.Color
	// Background sits behind the control.
	Background graphics.Color
	// Shadow is the thumb shadow color.
	Shadow graphics.Color

	Brightness Brightness
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.ColorSystemGreen,
		Surface:          graphics.ColorWhite,
		SurfaceVariant:   graphics.RGB(0xE9, 0xE9, 0xEA),
		OnSurfaceVariant: graphics.ColorSystemGray,
		Background:       graphics.RGB(0xF2, 0xF2, 0xF7),
		Shadow:           graphics.ColorBlack,
		Brightness:       BrightnessLight,
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:          graphics.RGB(0x30, 0xD1, 0x58),
		Surface:          graphics.ColorWhite,
		SurfaceVariant:   graphics.RGB(0x39, 0x39, 0x3D),
		OnSurfaceVariant: graphics.RGB(0x63, 0x63, 0x66),
		Background:       graphics.ColorBlack,
		Shadow:           graphics.ColorBlack,
		Brightness:       BrightnessDark,
	}
}

// ThemeData bundles a color scheme with optional component overrides.
type ThemeData struct {
	ColorScheme ColorScheme

	// SwitchTheme overrides the switch palette; derived from ColorScheme if nil.
	SwitchTheme *SwitchThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	return &ThemeData{ColorScheme: LightColorScheme()}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	return &ThemeData{ColorScheme: DarkColorScheme()}
}

// ForBrightness returns the default theme for b.
func ForBrightness(b Brightness) *ThemeData {
	if b == BrightnessDark {
		return DefaultDarkTheme()
	}
	return DefaultLightTheme()
}

// CopyWith returns a new ThemeData with the specified fields overridden.
func (t *ThemeData) CopyWith(colorScheme *ColorScheme, switchTheme *SwitchThemeData) *ThemeData {
	result := &ThemeData{
		ColorScheme: t.ColorScheme,
		SwitchTheme: t.SwitchTheme,
	}
	if colorScheme != nil {
		result.ColorScheme = *colorScheme
	}
	if switchTheme != nil {
		st := *switchTheme
		result.SwitchTheme = &st
	}
	return result
}

// SwitchThemeOf returns the switch theme, deriving from ColorScheme if not set.
func (t *ThemeData) SwitchThemeOf() SwitchThemeData {
	if t.SwitchTheme != nil {
		return *t.SwitchTheme
	}
	return DefaultSwitchTheme(t.ColorScheme)
}
