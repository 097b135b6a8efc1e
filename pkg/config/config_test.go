package config

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	switcherrors "github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/theme"
	"github.com/go-drift/switchkit/pkg/widgets"
)

const fullDocument = `
theme: light
frame: {x: 10, y: 20, width: 100, height: 50}
on: false
style:
  on_tint: "#007AFF"
  off_tint: "#80FFFFFF"
  thumb_tint: "#FFFFFF"
  padding: 2
  corner_radius: 12
  thumb_size: {width: 40, height: 40}
  thumb_corner_radius: 4
  shadow: {color: "#000000", offset: {x: 1, y: 3}, radius: 2, opacity: 0.5}
  border: {color: "#FF0000", width: 1.5}
  thumb_image_insets: {top: 1, left: 2, bottom: 3, right: 4}
  labels_shown: true
  animation_duration: 250ms
`

func TestParseFullDocument(t *testing.T) {
	doc, err := Parse([]byte(fullDocument))
	require.NoError(t, err)

	assert.Equal(t, graphics.RectFromLTWH(10, 20, 100, 50), doc.Rect())
	require.NotNil(t, doc.On)
	assert.False(t, *doc.On)

	st, err := doc.WidgetStyle()
	require.NoError(t, err)
	assert.Equal(t, graphics.RGB(0, 122, 255), st.OnTintColor)
	assert.Equal(t, graphics.Color(0x80FFFFFF), st.OffTintColor)
	assert.Equal(t, 2.0, st.Padding)
	require.NotNil(t, st.CornerRadius)
	assert.Equal(t, 12.0, *st.CornerRadius)
	assert.Equal(t, graphics.Size{Width: 40, Height: 40}, st.ThumbSize)
	require.NotNil(t, st.ThumbCornerRadius)
	assert.Equal(t, 4.0, *st.ThumbCornerRadius)
	assert.Equal(t, graphics.Shadow{
		Color:   graphics.ColorBlack,
		Offset:  graphics.Offset{X: 1, Y: 3},
		Radius:  2,
		Opacity: 0.5,
	}, st.ThumbShadow)
	assert.Equal(t, graphics.Border{Color: graphics.RGB(255, 0, 0), Width: 1.5}, st.ThumbBorder)
	assert.Equal(t, graphics.EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}, st.ThumbImageInsets)
	assert.True(t, st.LabelsShown)
	assert.Equal(t, 250*time.Millisecond, st.AnimationDuration)
}

func TestEmptyDocumentUsesDefaults(t *testing.T) {
	doc, err := Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, graphics.RectFromLTWH(0, 0, 51, 31), doc.Rect())
	assert.Nil(t, doc.On)

	st, err := doc.WidgetStyle()
	require.NoError(t, err)
	assert.Equal(t, widgets.DefaultStyle(), st)
}

func TestLightThemePalette(t *testing.T) {
	doc, err := Parse([]byte("theme: light\n"))
	require.NoError(t, err)

	st, err := doc.WidgetStyle()
	require.NoError(t, err)
	assert.Equal(t, widgets.StyleFromTheme(theme.DefaultLightTheme().SwitchThemeOf()), st)
}

func TestMissingFrameUsesThemeSize(t *testing.T) {
	for _, src := range []string{"", "theme: light\n", "theme: dark\n"} {
		doc, err := Parse([]byte(src))
		require.NoError(t, err)

		size := doc.SwitchTheme().Size()
		assert.Equal(t, graphics.RectFromOriginSize(graphics.Offset{}, size), doc.Rect(), "document %q", src)
		assert.Equal(t, doc.DefaultRect(), doc.Rect())
	}

	doc, err := Parse([]byte("frame: {x: 3, y: 4, width: 60, height: 20}\n"))
	require.NoError(t, err)
	assert.Equal(t, graphics.RectFromLTWH(3, 4, 60, 20), doc.Rect())
	assert.Equal(t, graphics.Size{Width: 51, Height: 31}, doc.DefaultRect().Size())
}

func TestDarkThemePalette(t *testing.T) {
	doc, err := Parse([]byte("theme: dark\n"))
	require.NoError(t, err)

	st, err := doc.WidgetStyle()
	require.NoError(t, err)
	assert.Equal(t, theme.DarkColorScheme().Primary, st.OnTintColor)
	assert.Equal(t, theme.BrightnessDark, doc.Brightness())
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name  string
		doc   string
		field string
	}{
		{"negative padding", "style: {padding: -1}", "style.padding"},
		{"opacity above one", "style: {shadow: {opacity: 1.5}}", "style.shadow.opacity"},
		{"negative border", "style: {border: {width: -2}}", "style.border.width"},
		{"bad color", `style: {on_tint: "green"}`, "style.on_tint"},
		{"short color", `style: {thumb_tint: "#FFF"}`, "style.thumb_tint"},
		{"zero frame", "frame: {width: 0, height: 10}", "frame.width"},
		{"negative inset", "style: {thumb_image_insets: {left: -1}}", "style.thumb_image_insets.left"},
		{"unknown theme", "theme: sepia", "theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			require.Error(t, err)

			var se *switcherrors.SwitchError
			require.ErrorAs(t, err, &se)
			assert.Equal(t, switcherrors.KindConfig, se.Kind)

			var ce *switcherrors.ConfigError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.field, ce.Field)
		})
	}
}

func TestParseRejectsUnknownKeysAndBadSyntax(t *testing.T) {
	_, err := Parse([]byte("style: {paddding: 2}"))
	var ce *switcherrors.ConfigError
	require.ErrorAs(t, err, &ce)

	_, err = Parse([]byte("style: {animation_duration: soon}"))
	require.ErrorAs(t, err, &ce)

	_, err = Parse([]byte("style: [1, 2"))
	require.ErrorAs(t, err, &ce)
}

func TestStyleRoundTrip(t *testing.T) {
	st := widgets.DefaultStyle()
	st.CornerRadius = widgets.Float(6)
	st.ThumbCornerRadius = widgets.Float(3)
	st.ThumbSize = graphics.Size{Width: 20, Height: 10}
	st.LabelsShown = true
	st.AnimationDuration = 120 * time.Millisecond

	data, err := Marshal(&Document{Style: FromStyle(st)})
	require.NoError(t, err)

	doc, err := Parse(data)
	require.NoError(t, err)
	got, err := doc.WidgetStyle()
	require.NoError(t, err)
	assert.Equal(t, st, got)
}

func writePNG(t *testing.T, path string, c color.Color) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, c)
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestLoadResolvesImagesRelativeToDocument(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "on.png"), color.White)
	writePNG(t, filepath.Join(dir, "off.png"), color.Black)
	path := filepath.Join(dir, "switch.yaml")
	require.NoError(t, os.WriteFile(path, []byte("on: true\nimages: {on: on.png, off: off.png}\n"), 0o644))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, dir, doc.Dir())

	sw, err := doc.NewSwitch()
	require.NoError(t, err)
	defer sw.Dispose()

	assert.NotNil(t, sw.OnImage())
	assert.NotNil(t, sw.OffImage())
	assert.Equal(t, image.Rect(0, 0, 4, 4), sw.OnImage().Bounds())
	assert.True(t, sw.IsOn())
	assert.Equal(t, 1.0, sw.OnImageView().Alpha)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	var se *switcherrors.SwitchError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, switcherrors.KindIO, se.Kind)
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("style: {padding: -3}\n"), 0o644))
	_, err = Load(bad)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, switcherrors.KindConfig, se.Kind)
	assert.Equal(t, "config.Load", se.Op)
	assert.Equal(t, bad, se.Path)

	noImage := filepath.Join(dir, "noimage.yaml")
	require.NoError(t, os.WriteFile(noImage, []byte("images: {thumb: nope.png}\n"), 0o644))
	doc, err := Load(noImage)
	require.NoError(t, err)
	_, err = doc.NewSwitch()
	require.ErrorAs(t, err, &se)
	assert.Equal(t, switcherrors.KindIO, se.Kind)
	assert.Equal(t, filepath.Join(dir, "nope.png"), se.Path)
}

func TestUndecodableImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.webp"), []byte("not an image"), 0o644))

	doc := &Document{Images: ImagesDoc{Thumb: "junk.webp"}}
	doc.SetDir(dir)
	_, err := doc.LoadImages()
	var se *switcherrors.SwitchError
	require.ErrorAs(t, err, &se)
	assert.Contains(t, se.Error(), "decode image")
}
