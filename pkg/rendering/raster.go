package rendering

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/go-drift/switchkit/pkg/graphics"
)

// arcKappa places cubic control points so a quarter circle is approximated
// to within 0.03% of its radius.
const arcKappa = 0.5522847498

// RasterCanvas rasterizes drawing commands onto an RGBA image.
//
// Coordinates are logical; Scale maps them to device pixels. Opacity layers
// multiply into each draw rather than compositing an offscreen layer, which
// matches layer output whenever the drawing inside a layer does not overlap
// itself.
type RasterCanvas struct {
	dst   *image.RGBA
	size  graphics.Size
	scale float64
	state rasterState
	stack []rasterState
}

type rasterState struct {
	dx, dy float64
	alpha  float64
	clip   *image.Alpha
}

// NewRasterCanvas allocates a transparent canvas of the given logical size.
// scale is the device pixel ratio; values <= 0 mean 1.
func NewRasterCanvas(size graphics.Size, scale float64) *RasterCanvas {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(size.Width * scale))
	h := int(math.Ceil(size.Height * scale))
	return &RasterCanvas{
		dst:   image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0))),
		size:  size,
		scale: scale,
		state: rasterState{alpha: 1},
	}
}

// Image returns the backing image.
func (c *RasterCanvas) Image() *image.RGBA {
	return c.dst
}

// Clear fills the whole canvas with col, ignoring clip and opacity.
func (c *RasterCanvas) Clear(col graphics.Color) {
	draw.Draw(c.dst, c.dst.Bounds(), image.NewUniform(col.NRGBA()), image.Point{}, draw.Src)
}

// Size returns the logical size of the canvas.
func (c *RasterCanvas) Size() graphics.Size {
	return c.size
}

func (c *RasterCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *RasterCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.Save()
	c.state.alpha *= math.Max(0, math.Min(1, alpha))
}

func (c *RasterCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *RasterCanvas) Translate(dx, dy float64) {
	c.state.dx += dx
	c.state.dy += dy
}

func (c *RasterCanvas) ClipRRect(rrect graphics.RRect) {
	mask := c.rrectCoverage(rrect)
	if c.state.clip != nil {
		multiplyAlpha(mask, c.state.clip)
	}
	c.state.clip = mask
}

func (c *RasterCanvas) DrawRRect(rrect graphics.RRect, paint Paint) {
	if paint.Color.Alpha() == 0 || c.state.alpha == 0 {
		return
	}
	mask := c.rrectCoverage(rrect)
	if paint.Style == PaintStyleStroke {
		if paint.StrokeWidth <= 0 {
			return
		}
		inner := deflateRRect(rrect, paint.StrokeWidth)
		if !inner.Rect.IsEmpty() {
			subtractAlpha(mask, c.rrectCoverage(inner))
		}
	}
	c.fillMask(mask, paint.Color)
}

func (c *RasterCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.Shadow) {
	if !shadow.IsVisible() || c.state.alpha == 0 {
		return
	}
	mask := c.rrectCoverage(rrect.Translate(shadow.Offset.X, shadow.Offset.Y))
	boxBlur(mask, int(math.Round(shadow.Sigma()*c.scale)))
	c.fillMask(mask, shadow.EffectiveColor())
}

func (c *RasterCanvas) DrawImageRect(img image.Image, dst graphics.Rect) {
	if img == nil || c.state.alpha == 0 {
		return
	}
	target := c.devicePixels(dst)
	if target.Empty() {
		return
	}
	scaled := image.NewRGBA(image.Rect(0, 0, target.Dx(), target.Dy()))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	draw.DrawMask(c.dst, target, scaled, image.Point{}, c.layerMask(), target.Min, draw.Over)
}

func (c *RasterCanvas) DrawText(text string, style TextStyle, bounds graphics.Rect) {
	if text == "" || style.Color.Alpha() == 0 || c.state.alpha == 0 {
		return
	}
	deviceStyle := style
	if deviceStyle.FontSize <= 0 {
		deviceStyle.FontSize = defaultFontSize
	}
	deviceStyle.FontSize *= c.scale
	origin := textOrigin(text, deviceStyle, c.deviceRect(bounds))

	coverage := image.NewAlpha(c.dst.Bounds())
	d := &font.Drawer{
		Dst:  coverage,
		Src:  image.Opaque,
		Face: faceFor(deviceStyle),
		Dot:  fixed.Point26_6{X: floatToFixed(origin.X), Y: floatToFixed(origin.Y)},
	}
	d.DrawString(text)
	c.fillMask(coverage, style.Color)
}

// fillMask paints col through mask after applying clip and layer opacity.
func (c *RasterCanvas) fillMask(mask *image.Alpha, col graphics.Color) {
	if c.state.clip != nil {
		multiplyAlpha(mask, c.state.clip)
	}
	src := image.NewUniform(col.ScaleAlpha(c.state.alpha).NRGBA())
	draw.DrawMask(c.dst, c.dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// layerMask returns the combined clip and opacity mask, or nil when neither
// applies.
func (c *RasterCanvas) layerMask() image.Image {
	if c.state.clip == nil && c.state.alpha >= 1 {
		return nil
	}
	if c.state.clip == nil {
		return image.NewUniform(color.Alpha{A: uint8(math.Round(c.state.alpha * 255))})
	}
	mask := image.NewAlpha(c.dst.Bounds())
	copy(mask.Pix, c.state.clip.Pix)
	if c.state.alpha < 1 {
		for i, v := range mask.Pix {
			mask.Pix[i] = uint8(math.Round(float64(v) * c.state.alpha))
		}
	}
	return mask
}

// deviceRect maps a logical rect through the current translation and scale.
func (c *RasterCanvas) deviceRect(r graphics.Rect) graphics.Rect {
	return graphics.Rect{
		Left:   (r.Left + c.state.dx) * c.scale,
		Top:    (r.Top + c.state.dy) * c.scale,
		Right:  (r.Right + c.state.dx) * c.scale,
		Bottom: (r.Bottom + c.state.dy) * c.scale,
	}
}

func (c *RasterCanvas) devicePixels(r graphics.Rect) image.Rectangle {
	d := c.deviceRect(r)
	return image.Rect(
		int(math.Round(d.Left)), int(math.Round(d.Top)),
		int(math.Round(d.Right)), int(math.Round(d.Bottom)),
	).Intersect(c.dst.Bounds())
}

// rrectCoverage rasterizes rrect into a canvas-sized coverage mask.
func (c *RasterCanvas) rrectCoverage(rrect graphics.RRect) *image.Alpha {
	bounds := c.dst.Bounds()
	mask := image.NewAlpha(bounds)
	r := c.deviceRect(rrect.Rect)
	if r.IsEmpty() || bounds.Empty() {
		return mask
	}
	limit := math.Min(r.Width(), r.Height()) / 2
	radius := func(v graphics.Radius) float64 {
		return math.Max(0, math.Min(v.X*c.scale, limit))
	}
	tl, tr := radius(rrect.TopLeft), radius(rrect.TopRight)
	br, bl := radius(rrect.BottomRight), radius(rrect.BottomLeft)

	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Src
	f := func(v float64) float32 { return float32(v) }

	z.MoveTo(f(r.Left+tl), f(r.Top))
	z.LineTo(f(r.Right-tr), f(r.Top))
	z.CubeTo(f(r.Right-tr+tr*arcKappa), f(r.Top), f(r.Right), f(r.Top+tr-tr*arcKappa), f(r.Right), f(r.Top+tr))
	z.LineTo(f(r.Right), f(r.Bottom-br))
	z.CubeTo(f(r.Right), f(r.Bottom-br+br*arcKappa), f(r.Right-br+br*arcKappa), f(r.Bottom), f(r.Right-br), f(r.Bottom))
	z.LineTo(f(r.Left+bl), f(r.Bottom))
	z.CubeTo(f(r.Left+bl-bl*arcKappa), f(r.Bottom), f(r.Left), f(r.Bottom-bl+bl*arcKappa), f(r.Left), f(r.Bottom-bl))
	z.LineTo(f(r.Left), f(r.Top+tl))
	z.CubeTo(f(r.Left), f(r.Top+tl-tl*arcKappa), f(r.Left+tl-tl*arcKappa), f(r.Top), f(r.Left+tl), f(r.Top))
	z.ClosePath()

	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// deflateRRect shrinks rrect by width on every side, shrinking radii to match.
func deflateRRect(rrect graphics.RRect, width float64) graphics.RRect {
	shrink := func(r graphics.Radius) graphics.Radius {
		return graphics.Radius{X: math.Max(0, r.X-width), Y: math.Max(0, r.Y-width)}
	}
	return graphics.RRect{
		Rect:        rrect.Rect.Deflate(graphics.EdgeInsetsAll(width)),
		TopLeft:     shrink(rrect.TopLeft),
		TopRight:    shrink(rrect.TopRight),
		BottomRight: shrink(rrect.BottomRight),
		BottomLeft:  shrink(rrect.BottomLeft),
	}
}

// multiplyAlpha sets dst = dst * by.
func multiplyAlpha(dst, by *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(by.Pix[i]) / 255)
	}
}

// subtractAlpha sets dst = dst * (1 - by).
func subtractAlpha(dst, by *image.Alpha) {
	for i := range dst.Pix {
		dst.Pix[i] = uint8(uint16(dst.Pix[i]) * uint16(255-by.Pix[i]) / 255)
	}
}

// boxBlur approximates a gaussian blur with three box passes per axis.
func boxBlur(mask *image.Alpha, radius int) {
	if radius <= 0 {
		return
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	tmp := make([]uint8, len(mask.Pix))
	for range 3 {
		blurLine(mask.Pix, tmp, w, h, radius, 1, mask.Stride)
		blurLine(tmp, mask.Pix, h, w, radius, mask.Stride, 1)
	}
}

// blurLine averages runs of n samples spaced step apart, for count lines
// spaced lineStep apart, reading src and writing dst.
func blurLine(src, dst []uint8, n, count, radius, step, lineStep int) {
	window := 2*radius + 1
	for line := 0; line < count; line++ {
		base := line * lineStep
		sum := 0
		for i := -radius; i <= radius; i++ {
			sum += sampleAt(src, base, i, n, step)
		}
		for i := 0; i < n; i++ {
			dst[base+i*step] = uint8(sum / window)
			sum += sampleAt(src, base, i+radius+1, n, step)
			sum -= sampleAt(src, base, i-radius, n, step)
		}
	}
}

func sampleAt(pix []uint8, base, i, n, step int) int {
	if i < 0 || i >= n {
		return 0
	}
	return int(pix[base+i*step])
}
