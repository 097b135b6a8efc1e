package config

import (
	"fmt"

	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/theme"
	"github.com/go-drift/switchkit/pkg/widgets"
)

// Brightness returns the document's theme brightness. Light is the default.
func (d *Document) Brightness() theme.Brightness {
	if d.Theme == "dark" {
		return theme.BrightnessDark
	}
	return theme.BrightnessLight
}

// SwitchTheme returns the palette named by the document.
func (d *Document) SwitchTheme() theme.SwitchThemeData {
	return theme.ForBrightness(d.Brightness()).SwitchThemeOf()
}

// WidgetStyle overlays the document's style on the defaults. A document
// naming a theme starts from that theme's colors; otherwise it starts from
// widgets.DefaultStyle.
func (d *Document) WidgetStyle() (widgets.Style, error) {
	base := widgets.DefaultStyle()
	if d.Theme != "" {
		base = widgets.StyleFromTheme(d.SwitchTheme())
	}
	return d.Style.apply(base)
}

func (s StyleDoc) apply(st widgets.Style) (widgets.Style, error) {
	var err error
	if st.OnTintColor, err = overrideColor(st.OnTintColor, s.OnTint, "style.on_tint"); err != nil {
		return st, err
	}
	if st.OffTintColor, err = overrideColor(st.OffTintColor, s.OffTint, "style.off_tint"); err != nil {
		return st, err
	}
	if st.ThumbTintColor, err = overrideColor(st.ThumbTintColor, s.ThumbTint, "style.thumb_tint"); err != nil {
		return st, err
	}
	if s.Padding != nil {
		st.Padding = *s.Padding
	}
	if s.CornerRadius != nil {
		st.CornerRadius = widgets.Float(*s.CornerRadius)
	}
	if s.ThumbSize != nil {
		st.ThumbSize = graphics.Size{Width: s.ThumbSize.Width, Height: s.ThumbSize.Height}
	}
	if s.ThumbCornerRadius != nil {
		st.ThumbCornerRadius = widgets.Float(*s.ThumbCornerRadius)
	}
	if sh := s.Shadow; sh != nil {
		if st.ThumbShadow.Color, err = overrideColor(st.ThumbShadow.Color, sh.Color, "style.shadow.color"); err != nil {
			return st, err
		}
		if sh.Offset != nil {
			st.ThumbShadow.Offset = graphics.Offset{X: sh.Offset.X, Y: sh.Offset.Y}
		}
		if sh.Radius != nil {
			st.ThumbShadow.Radius = *sh.Radius
		}
		if sh.Opacity != nil {
			st.ThumbShadow.Opacity = *sh.Opacity
		}
	}
	if b := s.Border; b != nil {
		if st.ThumbBorder.Color, err = overrideColor(st.ThumbBorder.Color, b.Color, "style.border.color"); err != nil {
			return st, err
		}
		if b.Width != nil {
			st.ThumbBorder.Width = *b.Width
		}
	}
	if in := s.ThumbImageInsets; in != nil {
		st.ThumbImageInsets = graphics.EdgeInsets{Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right}
	}
	if s.LabelsShown != nil {
		st.LabelsShown = *s.LabelsShown
	}
	if s.AnimationDuration != nil {
		st.AnimationDuration = *s.AnimationDuration
	}
	return st, nil
}

func overrideColor(current graphics.Color, hex, field string) (graphics.Color, error) {
	if hex == "" {
		return current, nil
	}
	c, err := graphics.ParseHex(hex)
	if err != nil {
		return current, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}

// FromStyle returns a document that reproduces st exactly when applied.
func FromStyle(st widgets.Style) StyleDoc {
	doc := StyleDoc{
		OnTint:    st.OnTintColor.String(),
		OffTint:   st.OffTintColor.String(),
		ThumbTint: st.ThumbTintColor.String(),
		Padding:   ptr(st.Padding),
		ThumbSize: &Size{Width: st.ThumbSize.Width, Height: st.ThumbSize.Height},
		Shadow: &ShadowDoc{
			Color:   st.ThumbShadow.Color.String(),
			Offset:  &Offset{X: st.ThumbShadow.Offset.X, Y: st.ThumbShadow.Offset.Y},
			Radius:  ptr(st.ThumbShadow.Radius),
			Opacity: ptr(st.ThumbShadow.Opacity),
		},
		Border: &BorderDoc{
			Color: st.ThumbBorder.Color.String(),
			Width: ptr(st.ThumbBorder.Width),
		},
		ThumbImageInsets: &Insets{
			Top:    st.ThumbImageInsets.Top,
			Left:   st.ThumbImageInsets.Left,
			Bottom: st.ThumbImageInsets.Bottom,
			Right:  st.ThumbImageInsets.Right,
		},
		LabelsShown:       ptr(st.LabelsShown),
		AnimationDuration: ptr(st.AnimationDuration),
	}
	if st.CornerRadius != nil {
		doc.CornerRadius = ptr(*st.CornerRadius)
	}
	if st.ThumbCornerRadius != nil {
		doc.ThumbCornerRadius = ptr(*st.ThumbCornerRadius)
	}
	return doc
}

func ptr[T any](v T) *T {
	return &v
}
