package widgets

import (
	"image"

	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/view"
)

// ThumbView is the sliding knob of a [Switch]. It owns an aspect-fit image
// view inset from its bounds, which follows the thumb's corner radius and
// clipping on every layout pass.
type ThumbView struct {
	view      *view.View
	imageView *view.View
	insets    graphics.EdgeInsets
}

// NewThumbView creates an empty thumb. Thumbs never take pointer input.
func NewThumbView() *ThumbView {
	t := &ThumbView{
		view:      view.New("thumb"),
		imageView: view.New("thumbImage"),
	}
	t.view.UserInteractionEnabled = false
	t.imageView.ContentMode = view.ContentModeScaleAspectFit
	t.view.AddSubview(t.imageView)
	t.view.SetLayouter(view.LayoutFunc(t.layoutSubviews))
	return t
}

func (t *ThumbView) layoutSubviews(v *view.View) {
	t.imageView.SetFrame(v.Bounds().Deflate(t.insets))
	t.imageView.CornerRadius = v.CornerRadius
	t.imageView.ClipsToBounds = v.ClipsToBounds
}

// View returns the thumb's root view.
func (t *ThumbView) View() *view.View {
	return t.view
}

// ImageView returns the inner image view.
func (t *ThumbView) ImageView() *view.View {
	return t.imageView
}

// Frame returns the thumb frame in the switch's coordinates.
func (t *ThumbView) Frame() graphics.Rect {
	return t.view.Frame()
}

// ImageInsets returns the inset of the image from the thumb edges.
func (t *ThumbView) ImageInsets() graphics.EdgeInsets {
	return t.insets
}

// SetImageInsets sets the image inset and schedules layout.
func (t *ThumbView) SetImageInsets(insets graphics.EdgeInsets) {
	t.insets = insets
	t.view.SetNeedsLayout()
}

// Image returns the thumb image, or nil.
func (t *ThumbView) Image() image.Image {
	return t.imageView.Image
}

// SetImage sets the thumb image. Nil clears it.
func (t *ThumbView) SetImage(img image.Image) {
	t.imageView.Image = img
}

// CornerRadius returns the thumb corner radius.
func (t *ThumbView) CornerRadius() float64 {
	return t.view.CornerRadius
}

// SetCornerRadius sets the thumb radius; the image view picks it up on the
// next layout pass.
func (t *ThumbView) SetCornerRadius(r float64) {
	if t.view.CornerRadius == r {
		return
	}
	t.view.CornerRadius = r
	t.view.SetNeedsLayout()
}

// SetClipsToBounds sets thumb clipping; the image view picks it up on the
// next layout pass.
func (t *ThumbView) SetClipsToBounds(clip bool) {
	if t.view.ClipsToBounds == clip {
		return
	}
	t.view.ClipsToBounds = clip
	t.view.SetNeedsLayout()
}

// LayoutIfNeeded runs a pending layout pass.
func (t *ThumbView) LayoutIfNeeded() {
	t.view.LayoutIfNeeded()
}
