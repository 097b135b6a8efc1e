package widgets

import (
	"image"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/graphics"
	switchtest "github.com/go-drift/switchkit/pkg/testing"
	"github.com/go-drift/switchkit/pkg/theme"
	"github.com/go-drift/switchkit/pkg/view"
)

func newTestSwitch(t *testing.T, w, h float64, opts ...Option) (*Switch, *switchtest.SwitchTester) {
	t.Helper()
	tester := switchtest.NewSwitchTesterWithT(t)
	sw := NewSwitch(graphics.RectFromLTWH(0, 0, w, h), opts...)
	t.Cleanup(sw.Dispose)
	tester.Mount(sw.View())
	return sw, tester
}

func countNotifications(sw *Switch) *[]bool {
	var got []bool
	sw.OnValueChanged(func(on bool) { got = append(got, on) })
	return &got
}

func square(n int) image.Image {
	return image.NewRGBA(image.Rect(0, 0, n, n))
}

func TestDefaultGeometry(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)

	assert.Equal(t, graphics.Size{Width: 48, Height: 48}, sw.ThumbFrame().Size())
	assert.Equal(t, graphics.Offset{X: 1, Y: 1}, sw.OffPoint())
	assert.Equal(t, graphics.Offset{X: 51, Y: 1}, sw.OnPoint())
	assert.Equal(t, 25.0, sw.CornerRadius())
	assert.Equal(t, 25.0, sw.View().CornerRadius)
	assert.Equal(t, 24.0, sw.Thumb().CornerRadius())
}

func TestRestingPointsForAnySize(t *testing.T) {
	sizes := []graphics.Size{{Width: 51, Height: 31}, {Width: 200, Height: 40}, {Width: 30, Height: 60}, {Width: 10, Height: 4}}
	for _, padding := range []float64{0, 1, 3.5} {
		for _, size := range sizes {
			sw, _ := newTestSwitch(t, size.Width, size.Height)
			sw.SetPadding(padding)

			thumb := sw.ThumbFrame().Size()
			y := (size.Height - thumb.Height) / 2
			assert.Equal(t, graphics.Offset{X: padding, Y: y}, sw.OffPoint(), "size %v padding %v", size, padding)
			assert.Equal(t, graphics.Offset{X: size.Width - thumb.Width - padding, Y: y}, sw.OnPoint(), "size %v padding %v", size, padding)
			assert.Equal(t, sw.OnPoint(), sw.ThumbFrame().Origin())
		}
	}
}

func TestCornerRadiusOverride(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)

	sw.SetCornerRadius(Float(7))
	assert.Equal(t, 7.0, sw.CornerRadius())
	assert.Equal(t, 7.0, sw.View().CornerRadius)

	sw.SetCornerRadius(nil)
	assert.Equal(t, 25.0, sw.CornerRadius())
}

func TestThumbSizeOverride(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	sw.SetThumbSize(graphics.Size{Width: 30, Height: 20})

	assert.Equal(t, graphics.Size{Width: 30, Height: 20}, sw.ThumbFrame().Size())
	assert.Equal(t, graphics.Offset{X: 69, Y: 15}, sw.OnPoint())
	assert.Equal(t, 10.0, sw.Thumb().CornerRadius())

	sw.SetThumbCornerRadius(Float(3))
	assert.Equal(t, 3.0, sw.Thumb().CornerRadius())

	sw.SetThumbSize(graphics.Size{})
	assert.Equal(t, graphics.Size{Width: 48, Height: 48}, sw.ThumbFrame().Size())
}

func TestOversizedThumbIsTolerated(t *testing.T) {
	sw, _ := newTestSwitch(t, 20, 10)
	sw.SetThumbSize(graphics.Size{Width: 40, Height: 40})

	assert.Equal(t, graphics.Offset{X: -21, Y: -15}, sw.OnPoint())
	assert.Equal(t, graphics.Offset{X: 1, Y: -15}, sw.OffPoint())
}

func TestSetStateInstant(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50, WithOn(false))
	got := countNotifications(sw)

	sw.SetState(true, false)

	assert.True(t, sw.IsOn())
	assert.False(t, sw.IsTransitioning())
	assert.Equal(t, sw.Style().OnTintColor, sw.BackgroundColor())
	assert.Equal(t, sw.OnPoint(), sw.ThumbFrame().Origin())
	assert.Equal(t, []bool{true}, *got)
}

func TestSetStateSilently(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50)
	got := countNotifications(sw)

	sw.SetStateSilently(false)
	assert.False(t, sw.IsOn())
	assert.Equal(t, sw.OffPoint(), sw.ThumbFrame().Origin())
	assert.Equal(t, graphics.ColorWhite, sw.BackgroundColor())

	sw.Toggle()
	require.True(t, sw.IsTransitioning())
	tester.PumpFor(50 * time.Millisecond)
	sw.SetStateSilently(false)
	assert.False(t, sw.IsTransitioning())
	assert.Equal(t, sw.OffPoint(), sw.ThumbFrame().Origin())

	assert.Equal(t, []bool{true}, *got, "only the toggle notifies")
}

func TestToggleAnimatesThumb(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50, WithOn(false))
	got := countNotifications(sw)
	require.Equal(t, sw.OffPoint(), sw.ThumbFrame().Origin())

	sw.Toggle()
	assert.True(t, sw.IsOn())
	assert.True(t, sw.IsTransitioning())
	assert.Equal(t, []bool{true}, *got, "notified at transition start")
	assert.Equal(t, sw.OffPoint(), sw.ThumbFrame().Origin(), "nothing moves before the first frame")

	tester.PumpFor(100 * time.Millisecond)
	assert.Greater(t, sw.ThumbFrame().Left, sw.OffPoint().X)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.False(t, sw.IsTransitioning())
	assert.Equal(t, sw.OnPoint(), sw.ThumbFrame().Origin())
	assert.Equal(t, sw.Style().OnTintColor, sw.BackgroundColor())
	assert.Len(t, *got, 1)
}

func TestTransitionUsesEaseOutSpring(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	sw.SetAnimationDuration(400 * time.Millisecond)
	sw.Toggle()

	want := animation.EaseOutSpring(400*time.Millisecond, springDampingRatio, springInitialVelocity)
	require.NotNil(t, sw.controller.Curve)
	assert.Equal(t, 400*time.Millisecond, sw.controller.Duration)
	for _, p := range []float64{0.1, 0.3, 0.6, 0.9} {
		assert.Equal(t, want(p), sw.controller.Curve(p))
	}
}

func TestSetStateAnimatedNotifiesOnce(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50)
	got := countNotifications(sw)

	sw.SetState(false, true)
	require.NoError(t, tester.PumpAndSettle(time.Second))

	assert.Equal(t, []bool{false}, *got)
	assert.Equal(t, graphics.ColorWhite, sw.BackgroundColor())
}

func TestInterruptedTransitionStartsFromCurrentPresentation(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50)
	got := countNotifications(sw)

	sw.Toggle()
	tester.PumpFor(60 * time.Millisecond)
	mid := sw.ThumbFrame().Origin()
	midColor := sw.BackgroundColor()

	sw.Toggle()
	assert.True(t, sw.IsOn())
	assert.True(t, sw.IsTransitioning())
	assert.Equal(t, mid, sw.ThumbFrame().Origin())
	assert.Equal(t, midColor, sw.BackgroundColor())

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, sw.OnPoint(), sw.ThumbFrame().Origin())
	assert.Equal(t, []bool{false, true}, *got)
}

func TestLayoutDeferredWhileTransitioning(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50)

	sw.Toggle()
	sw.SetFrame(graphics.RectFromLTWH(0, 0, 200, 50))
	assert.Equal(t, graphics.Offset{X: 51, Y: 1}, sw.OnPoint(), "layout skipped mid-transition")

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, graphics.Offset{X: 151, Y: 1}, sw.OnPoint(), "layout replayed on settle")
	assert.Equal(t, sw.OffPoint(), sw.ThumbFrame().Origin())
}

func TestZeroDurationSwitchesInstantly(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	got := countNotifications(sw)
	sw.SetAnimationDuration(0)

	sw.Toggle()
	assert.False(t, sw.IsTransitioning())
	assert.Equal(t, sw.OffPoint(), sw.ThumbFrame().Origin())
	assert.Equal(t, []bool{false}, *got)
}

func TestListenersAndUnsubscribe(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	var a, b int
	unsubscribe := sw.OnValueChanged(func(bool) { a++ })
	sw.OnValueChanged(func(bool) { b++ })

	sw.SetState(false, false)
	unsubscribe()
	sw.SetState(true, false)

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestPanickingListenerIsRecovered(t *testing.T) {
	var panics []*errors.PanicError
	prev := errors.DefaultHandler
	errors.SetHandler(&panicRecorder{panics: &panics})
	t.Cleanup(func() { errors.SetHandler(prev) })

	sw, _ := newTestSwitch(t, 100, 50)
	sw.OnValueChanged(func(bool) { panic("boom") })
	called := false
	sw.OnValueChanged(func(bool) { called = true })

	assert.NotPanics(t, func() { sw.SetState(false, false) })
	assert.True(t, called)
	require.Len(t, panics, 1)
	assert.Equal(t, "widgets.Switch.valueChanged", panics[0].Op)
	assert.Equal(t, "boom", panics[0].Value)
}

type panicRecorder struct {
	panics *[]*errors.PanicError
}

func (r *panicRecorder) HandleError(*errors.SwitchError) {}

func (r *panicRecorder) HandlePanic(err *errors.PanicError) {
	*r.panics = append(*r.panics, err)
}

func TestIconsInertWithoutPair(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50, WithImages(square(8), nil))

	assert.Zero(t, sw.OnImageView().Alpha)
	assert.Zero(t, sw.OffImageView().Alpha)

	sw.Toggle()
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Zero(t, sw.OnImageView().Alpha)
	assert.Zero(t, sw.OffImageView().Alpha)
	assert.True(t, sw.OnImageView().Frame().IsEmpty())
}

func assertNear(t *testing.T, want, got graphics.Offset, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, 1e-9, msgAndArgs...)
	assert.InDelta(t, want.Y, got.Y, 1e-9, msgAndArgs...)
}

func TestIconsFollowState(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50, WithImages(square(8), square(8)))

	on, off := sw.OnImageView(), sw.OffImageView()
	assert.InDelta(t, 33.6, on.Size().Width, 1e-9)
	assert.InDelta(t, 33.6, off.Size().Height, 1e-9)
	assert.Equal(t, 1.0, on.Alpha)
	assert.Equal(t, 0.0, off.Alpha)
	assertNear(t, graphics.Offset{X: 75, Y: 25}, on.Center())
	assertNear(t, graphics.Offset{X: 25, Y: 25}, off.Center())

	sw.Toggle()
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 0.0, on.Alpha)
	assert.Equal(t, 1.0, off.Alpha)
	assertNear(t, graphics.Offset{X: 25, Y: 25}, off.Center())
	assertNear(t, graphics.Offset{X: 100, Y: 25}, on.Center(), "inactive icon parked at the far edge")

	sw.SetOffImage(nil)
	assert.Zero(t, off.Alpha)
	assert.Zero(t, on.Alpha)
}

func TestLabels(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	assert.Zero(t, sw.OnLabel().Alpha)
	assert.Zero(t, sw.OffLabel().Alpha)

	sw.SetLabelsShown(true)
	assert.Equal(t, 1.0, sw.OnLabel().Alpha)
	assert.Equal(t, "On", sw.OnLabel().Text)
	assert.Equal(t, "Off", sw.OffLabel().Text)
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 48, 50), sw.OnLabel().Frame())
	assert.Equal(t, graphics.RectFromLTWH(52, 0, 48, 50), sw.OffLabel().Frame())

	names := func() []string {
		var out []string
		for _, v := range sw.View().Subviews() {
			out = append(out, v.Name)
		}
		return out
	}
	assert.Equal(t, []string{"offLabel", "onLabel", "thumb", "onIcon", "offIcon"}, names())
}

func TestStyleRoundTrip(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	red, blue := graphics.RGB(255, 0, 0), graphics.RGB(0, 0, 255)
	shadow := graphics.Shadow{Color: red, Offset: graphics.Offset{X: 1, Y: 3}, Radius: 2, Opacity: 0.8}
	border := graphics.Border{Color: blue, Width: 1.5}
	insets := graphics.EdgeInsets{Top: 1, Left: 2, Bottom: 3, Right: 4}

	sw.SetOnTintColor(red)
	sw.SetOffTintColor(blue)
	sw.SetThumbTintColor(red)
	sw.SetPadding(2.5)
	sw.SetThumbShadow(shadow)
	sw.SetThumbBorder(border)
	sw.SetThumbImageInsets(insets)
	sw.SetAnimationDuration(150 * time.Millisecond)
	sw.SetCornerRadius(Float(4))
	sw.SetThumbCornerRadius(Float(2))
	sw.SetThumbSize(graphics.Size{Width: 10, Height: 12})

	st := sw.Style()
	assert.Equal(t, red, st.OnTintColor)
	assert.Equal(t, blue, st.OffTintColor)
	assert.Equal(t, red, st.ThumbTintColor)
	assert.Equal(t, 2.5, st.Padding)
	assert.Equal(t, shadow, st.ThumbShadow)
	assert.Equal(t, border, st.ThumbBorder)
	assert.Equal(t, insets, st.ThumbImageInsets)
	assert.Equal(t, 150*time.Millisecond, st.AnimationDuration)
	assert.Equal(t, 4.0, *st.CornerRadius)
	assert.Equal(t, 2.0, *st.ThumbCornerRadius)
	assert.Equal(t, graphics.Size{Width: 10, Height: 12}, st.ThumbSize)

	thumb := sw.Thumb().View()
	assert.Equal(t, red, thumb.BackgroundColor)
	assert.Equal(t, shadow, thumb.Shadow)
	assert.Equal(t, border, thumb.Border)
	assert.Equal(t, insets, sw.Thumb().ImageInsets())

	// The returned style is a copy.
	*st.CornerRadius = 99
	assert.Equal(t, 4.0, sw.CornerRadius())
}

func TestUpdateBatchesChanges(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	sw.Update(func(st *Style) {
		st.Padding = 5
		st.LabelsShown = true
	})
	assert.Equal(t, graphics.Offset{X: 5, Y: 5}, sw.OffPoint())
	assert.Equal(t, graphics.RectFromLTWH(0, 0, 40, 50), sw.OnLabel().Frame())
}

func TestSetupIsIdempotent(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50, WithImages(square(4), square(4)), WithLabelsShown(true))
	before := sw.View().Subviews()
	frames := sw.ThumbFrame()

	sw.Setup()
	sw.Setup()

	assert.Equal(t, before, sw.View().Subviews())
	assert.Equal(t, frames, sw.ThumbFrame())
}

func TestPointerDownToggles(t *testing.T) {
	sw, tester := newTestSwitch(t, 100, 50)

	require.NoError(t, tester.TapAt(graphics.Offset{X: 10, Y: 10}))
	assert.False(t, sw.IsOn())

	sw.HandlePointer(view.PointerEvent{Phase: view.PointerPhaseDown, Position: graphics.Offset{X: 150, Y: 10}})
	assert.False(t, sw.IsOn(), "outside bounds")

	sw.HandlePointer(view.PointerEvent{Phase: view.PointerPhaseUp, Position: graphics.Offset{X: 10, Y: 10}})
	assert.False(t, sw.IsOn(), "only down toggles")
}

func TestDisabledSwitch(t *testing.T) {
	palette := theme.DefaultSwitchTheme(theme.LightColorScheme())
	sw, tester := newTestSwitch(t, 100, 50, WithEnabled(false), WithTheme(palette))
	got := countNotifications(sw)

	require.NoError(t, tester.TapAt(graphics.Offset{X: 50, Y: 25}))
	assert.True(t, sw.IsOn())
	assert.Empty(t, *got)
	assert.Equal(t, palette.DisabledActiveTrackColor, sw.BackgroundColor())
	assert.Equal(t, palette.DisabledThumbColor, sw.Thumb().View().BackgroundColor)

	sw.SetEnabled(true)
	assert.Equal(t, palette.ActiveTrackColor, sw.BackgroundColor())
	assert.Equal(t, palette.ThumbColor, sw.Thumb().View().BackgroundColor)
}

func TestRasterizedTrackUsesOnTint(t *testing.T) {
	sw, _ := newTestSwitch(t, 100, 50)
	img := view.Rasterize(sw.View(), 1).Image()

	assert.Equal(t, graphics.ColorSystemGreen, graphics.FromColor(img.At(25, 25)))
	assert.Equal(t, graphics.ColorWhite, graphics.FromColor(img.At(75, 25)), "thumb")
}
