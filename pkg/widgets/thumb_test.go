package widgets

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/switchkit/pkg/graphics"
)

func TestThumbImageFollowsInsets(t *testing.T) {
	thumb := NewThumbView()
	thumb.View().SetFrame(graphics.RectFromLTWH(5, 5, 40, 30))
	thumb.SetImageInsets(graphics.EdgeInsets{Top: 2, Left: 4, Bottom: 6, Right: 8})
	thumb.LayoutIfNeeded()

	assert.Equal(t, graphics.RectFromLTWH(4, 2, 28, 22), thumb.ImageView().Frame())
}

func TestThumbImageInsetsClampToZero(t *testing.T) {
	thumb := NewThumbView()
	thumb.View().SetFrame(graphics.RectFromLTWH(0, 0, 10, 10))
	thumb.SetImageInsets(graphics.EdgeInsetsAll(8))
	thumb.LayoutIfNeeded()

	frame := thumb.ImageView().Frame()
	assert.Zero(t, frame.Width())
	assert.Zero(t, frame.Height())
}

func TestThumbMirrorsRadiusAndClipping(t *testing.T) {
	thumb := NewThumbView()
	thumb.View().SetFrame(graphics.RectFromLTWH(0, 0, 20, 20))
	thumb.SetCornerRadius(6)
	thumb.SetClipsToBounds(true)
	thumb.LayoutIfNeeded()

	assert.Equal(t, 6.0, thumb.ImageView().CornerRadius)
	assert.True(t, thumb.ImageView().ClipsToBounds)

	thumb.SetClipsToBounds(false)
	thumb.LayoutIfNeeded()
	assert.False(t, thumb.ImageView().ClipsToBounds)
}

func TestThumbImage(t *testing.T) {
	thumb := NewThumbView()
	assert.Nil(t, thumb.Image())

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	thumb.SetImage(img)
	assert.Same(t, img, thumb.Image())
	assert.False(t, thumb.View().UserInteractionEnabled)

	thumb.SetImage(nil)
	assert.Nil(t, thumb.Image())
}
