package graphics

// Shadow describes a layer-style drop shadow: a blurred copy of the shape's
// outline drawn behind it.
//
// Radius is the blur radius in pixels. Opacity scales the color's own alpha,
// so a black shadow with Opacity 0.4 paints at 40% coverage.
type Shadow struct {
	Color   Color
	Offset  Offset
	Radius  float64
	Opacity float64
}

// IsVisible reports whether the shadow would paint anything.
func (s Shadow) IsVisible() bool {
	return s.Opacity > 0 && s.Color.Alpha() > 0
}

// EffectiveColor returns Color with Opacity applied.
func (s Shadow) EffectiveColor() Color {
	return s.Color.ScaleAlpha(s.Opacity)
}

// Sigma returns the gaussian sigma equivalent of Radius.
// Returns 0 if Radius is zero or negative.
func (s Shadow) Sigma() float64 {
	if s.Radius <= 0 {
		return 0
	}
	return s.Radius * 0.5
}

// DefaultThumbShadow is the subtle drop shadow used under switch thumbs.
func DefaultThumbShadow() Shadow {
	return Shadow{
		Color:   ColorBlack,
		Offset:  Offset{X: 0.75, Y: 2},
		Radius:  1.5,
		Opacity: 0.4,
	}
}

// Border describes a stroke drawn inside a shape's outline.
type Border struct {
	Color Color
	Width float64
}

// IsVisible reports whether the border would paint anything.
func (b Border) IsVisible() bool {
	return b.Width > 0 && b.Color.Alpha() > 0
}
