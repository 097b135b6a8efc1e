package widgets

import (
	"image"
	"slices"
	"time"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/rendering"
	"github.com/go-drift/switchkit/pkg/theme"
	"github.com/go-drift/switchkit/pkg/view"
)

// Switch is a two-state toggle with a sliding thumb.
//
// The child tree is built once by [NewSwitch]:
//
//	root
//	├── offLabel   ("Off", flush right)
//	├── onLabel    ("On", flush left)
//	├── thumb      (ThumbView)
//	├── onIcon
//	└── offIcon
//
// Style changes mutate these children in place. State changes animate the
// thumb, track color and icons with a spring curve driven by
// [animation.StepTickers]; a toggle during a transition restarts it from
// whatever is currently on screen.
//
// Value-changed listeners fire once per state commit, right after the new
// state is applied (instant) or its transition has started (animated).
//
// A Switch belongs to the goroutine that steps the tickers.
//
// # Creation Pattern
//
//	sw := widgets.NewSwitch(graphics.RectFromLTWH(0, 0, 51, 31),
//	    widgets.WithOn(false),
//	    widgets.WithLabelsShown(true),
//	)
//	sw.OnValueChanged(func(on bool) { log.Println("switch:", on) })
type Switch struct {
	root         *view.View
	thumb        *ThumbView
	onLabel      *view.View
	offLabel     *view.View
	onImageView  *view.View
	offImageView *view.View

	style   Style
	theme   theme.SwitchThemeData
	isOn    bool
	enabled bool

	onImage  image.Image
	offImage image.Image

	onPoint  graphics.Offset
	offPoint graphics.Offset

	phase          TransitionPhase
	layoutDeferred bool
	controller     *animation.AnimationController
	tween          *presentationTween

	listeners      []valueListener
	nextListenerID int
}

type valueListener struct {
	id int
	fn func(bool)
}

// Option configures a Switch at construction.
type Option func(*Switch)

// WithOn sets the initial state. Switches start on by default.
func WithOn(on bool) Option {
	return func(s *Switch) { s.isOn = on }
}

// WithStyle replaces the default style.
func WithStyle(style Style) Option {
	return func(s *Switch) { s.style = style.clone() }
}

// WithTheme sets the palette used for disabled colors and recolors the
// style from it.
func WithTheme(t theme.SwitchThemeData) Option {
	return func(s *Switch) {
		s.theme = t
		restyled := StyleFromTheme(t)
		s.style.OnTintColor = restyled.OnTintColor
		s.style.OffTintColor = restyled.OffTintColor
		s.style.ThumbTintColor = restyled.ThumbTintColor
		s.style.ThumbShadow = restyled.ThumbShadow
	}
}

// WithLabelsShown shows or hides the "On"/"Off" labels.
func WithLabelsShown(shown bool) Option {
	return func(s *Switch) { s.style.LabelsShown = shown }
}

// WithImages sets the per-state icons. Icons are drawn only when both are set.
func WithImages(on, off image.Image) Option {
	return func(s *Switch) {
		s.onImage = on
		s.offImage = off
	}
}

// WithThumbImage sets the image drawn inside the thumb.
func WithThumbImage(img image.Image) Option {
	return func(s *Switch) { s.thumb.SetImage(img) }
}

// WithEnabled sets whether the switch reacts to pointer input.
func WithEnabled(enabled bool) Option {
	return func(s *Switch) { s.enabled = enabled }
}

// NewSwitch creates a switch occupying frame in its parent's coordinates.
func NewSwitch(frame graphics.Rect, opts ...Option) *Switch {
	s := &Switch{
		root:         view.New("switch"),
		thumb:        NewThumbView(),
		onLabel:      view.New("onLabel"),
		offLabel:     view.New("offLabel"),
		onImageView:  view.New("onIcon"),
		offImageView: view.New("offIcon"),
		style:        DefaultStyle(),
		theme:        theme.DefaultSwitchTheme(theme.LightColorScheme()),
		isOn:         true,
		enabled:      true,
		controller:   animation.NewAnimationController(DefaultAnimationDuration),
	}

	s.root.AddSubview(s.thumb.View())
	s.root.AddSubview(s.onImageView)
	s.root.AddSubview(s.offImageView)
	s.root.InsertSubviewBelow(s.offLabel, s.thumb.View())
	s.root.InsertSubviewBelow(s.onLabel, s.thumb.View())

	s.onLabel.Text = "On"
	s.offLabel.Text = "Off"
	s.onImageView.UserInteractionEnabled = false
	s.offImageView.UserInteractionEnabled = false
	s.onLabel.UserInteractionEnabled = false
	s.offLabel.UserInteractionEnabled = false

	s.root.SetFrame(frame)
	s.root.SetLayouter(view.LayoutFunc(s.layoutSubviews))
	s.root.OnPointer = s.HandlePointer

	s.controller.AddListener(s.onTick)
	s.controller.AddStatusListener(s.onStatus)

	for _, opt := range opts {
		opt(s)
	}
	s.Setup()
	return s
}

// View returns the switch's root view, for embedding in a view tree.
func (s *Switch) View() *view.View {
	return s.root
}

// Setup applies the whole configuration to the existing children and runs
// a layout pass. It is idempotent.
func (s *Switch) Setup() {
	s.applyConfiguration()
	s.Layout()
}

// Layout runs a layout pass now, or defers it if a transition is running.
func (s *Switch) Layout() {
	s.root.SetNeedsLayout()
	s.root.LayoutIfNeeded()
}

func (s *Switch) applyConfiguration() {
	st := s.style
	s.root.ClipsToBounds = false

	tv := s.thumb.View()
	tv.BackgroundColor = s.thumbColor()
	tv.Shadow = st.ThumbShadow
	tv.Border = st.ThumbBorder
	s.thumb.SetImageInsets(st.ThumbImageInsets)

	labelAlpha := 0.0
	if st.LabelsShown {
		labelAlpha = 1
	}
	for _, label := range []*view.View{s.onLabel, s.offLabel} {
		label.Alpha = labelAlpha
		label.TextStyle = rendering.DefaultLabelStyle()
	}

	s.onImageView.Image = s.onImage
	s.offImageView.Image = s.offImage
	s.onImageView.ContentMode = view.ContentModeScaleAspectFit
	s.offImageView.ContentMode = view.ContentModeScaleAspectFit
	if !s.hasIcons() {
		s.onImageView.Alpha = 0
		s.offImageView.Alpha = 0
	}
}

// layoutSubviews is the root view's layout hook.
func (s *Switch) layoutSubviews(v *view.View) {
	if s.phase == PhaseTransitioning {
		s.layoutDeferred = true
		return
	}
	g := computeGeometry(s.style, v.Size())
	s.onPoint, s.offPoint = g.onPoint, g.offPoint

	v.CornerRadius = g.cornerRadius
	s.thumb.View().SetFrame(graphics.RectFromOriginSize(g.restingPoint(s.isOn), g.thumbSize))
	s.thumb.SetCornerRadius(g.thumbCornerRadius)

	if s.style.LabelsShown {
		h := g.size.Height
		s.onLabel.SetFrame(graphics.RectFromLTWH(0, 0, g.labelWidth, h))
		s.offLabel.SetFrame(graphics.RectFromLTWH(g.size.Width-g.labelWidth, 0, g.labelWidth, h))
	}

	if s.hasIcons() {
		iconSize := graphics.Size{Width: g.iconSize, Height: g.iconSize}
		s.onImageView.SetSize(iconSize)
		s.offImageView.SetSize(iconSize)
	}

	s.applyPresentation(s.targetPresentation(false))
}

// targetPresentation returns the settled look for the current state. With
// sliding set, the inactive icon is parked at the far edge it slides from.
func (s *Switch) targetPresentation(sliding bool) presentation {
	thumbSize := s.thumb.Frame().Size()
	restingY := s.onPoint.Y + thumbSize.Height/2
	onCenter := graphics.Offset{X: s.onPoint.X + thumbSize.Width/2, Y: restingY}
	offCenter := graphics.Offset{X: s.offPoint.X + thumbSize.Width/2, Y: restingY}

	p := presentation{
		thumbOrigin:   s.offPoint,
		background:    s.trackColor(s.isOn),
		onIconCenter:  onCenter,
		offIconCenter: offCenter,
	}
	if s.isOn {
		p.thumbOrigin = s.onPoint
		p.onIconAlpha = 1
		if sliding {
			p.offIconCenter.X = 0
		}
	} else {
		p.offIconAlpha = 1
		if sliding {
			p.onIconCenter.X = s.root.Size().Width
		}
	}
	return p
}

func (s *Switch) currentPresentation() presentation {
	return presentation{
		thumbOrigin:   s.thumb.Frame().Origin(),
		background:    s.root.BackgroundColor,
		onIconAlpha:   s.onImageView.Alpha,
		offIconAlpha:  s.offImageView.Alpha,
		onIconCenter:  s.onImageView.Center(),
		offIconCenter: s.offImageView.Center(),
	}
}

func (s *Switch) applyPresentation(p presentation) {
	s.thumb.View().SetOrigin(p.thumbOrigin)
	s.root.BackgroundColor = p.background
	if !s.hasIcons() {
		return
	}
	s.onImageView.Alpha = p.onIconAlpha
	s.offImageView.Alpha = p.offIconAlpha
	s.onImageView.SetCenter(p.onIconCenter)
	s.offImageView.SetCenter(p.offIconCenter)
}

func (s *Switch) hasIcons() bool {
	return s.onImage != nil && s.offImage != nil
}

func (s *Switch) trackColor(on bool) graphics.Color {
	if !s.enabled {
		return s.theme.DisabledTrackColor(on)
	}
	if on {
		return s.style.OnTintColor
	}
	return s.style.OffTintColor
}

func (s *Switch) thumbColor() graphics.Color {
	if !s.enabled {
		return s.theme.DisabledThumbColor
	}
	return s.style.ThumbTintColor
}

// HandlePointer toggles the switch on a pointer down inside its bounds.
// Disabled switches ignore pointer input.
func (s *Switch) HandlePointer(event view.PointerEvent) {
	if !s.enabled || event.Phase != view.PointerPhaseDown {
		return
	}
	if !s.root.Bounds().Contains(event.Position) {
		return
	}
	s.Toggle()
}

// Toggle animates to the opposite state.
func (s *Switch) Toggle() {
	s.animate(!s.isOn)
}

// SetState sets the state, animated or instantly, and notifies listeners
// once.
func (s *Switch) SetState(on, animated bool) {
	if animated {
		s.animate(on)
		return
	}
	s.jumpTo(on)
	s.notify()
}

// SetStateSilently sets the state instantly without notifying listeners.
// A running transition is cancelled.
func (s *Switch) SetStateSilently(on bool) {
	s.jumpTo(on)
}

func (s *Switch) jumpTo(on bool) {
	s.controller.Stop()
	s.tween = nil
	s.isOn = on
	s.settle()
	s.applyPresentation(s.targetPresentation(true))
}

func (s *Switch) animate(on bool) {
	from := s.currentPresentation()
	s.controller.Stop()

	s.isOn = on
	s.phase = PhaseTransitioning
	s.tween = newPresentationTween(from, s.targetPresentation(true))

	duration := s.style.AnimationDuration
	s.controller.Duration = duration
	s.controller.Curve = animation.EaseOutSpring(duration, springDampingRatio, springInitialVelocity)
	s.controller.Restart()

	s.notify()
}

func (s *Switch) onTick() {
	if s.tween == nil {
		return
	}
	s.applyPresentation(s.tween.transform(s.controller))
}

func (s *Switch) onStatus(status animation.AnimationStatus) {
	if status == animation.AnimationCompleted && s.phase == PhaseTransitioning {
		if s.tween != nil {
			s.applyPresentation(s.tween.end)
		}
		s.tween = nil
		s.settle()
	}
}

// settle leaves Transitioning and replays a deferred layout pass.
func (s *Switch) settle() {
	s.phase = PhaseSettled
	if s.layoutDeferred {
		s.layoutDeferred = false
		s.Layout()
	}
}

// OnValueChanged registers fn to receive the new state after every commit.
// Returns an unsubscribe function. A panicking listener is reported through
// the errors package and does not stop the others.
func (s *Switch) OnValueChanged(fn func(on bool)) func() {
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners = append(s.listeners, valueListener{id: id, fn: fn})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l valueListener) bool {
			return l.id == id
		})
	}
}

func (s *Switch) notify() {
	on := s.isOn
	for _, l := range slices.Clone(s.listeners) {
		callListener(l.fn, on)
	}
}

func callListener(fn func(bool), on bool) {
	defer errors.Recover("widgets.Switch.valueChanged")
	fn(on)
}

// Dispose stops any running transition and drops all listeners.
func (s *Switch) Dispose() {
	s.controller.Dispose()
	s.listeners = nil
	s.phase = PhaseSettled
}

// IsOn reports the committed state.
func (s *Switch) IsOn() bool {
	return s.isOn
}

// IsTransitioning reports whether a state transition is running.
func (s *Switch) IsTransitioning() bool {
	return s.phase == PhaseTransitioning
}

// Phase returns the transition phase.
func (s *Switch) Phase() TransitionPhase {
	return s.phase
}

// IsEnabled reports whether the switch reacts to pointer input.
func (s *Switch) IsEnabled() bool {
	return s.enabled
}

// SetEnabled enables or disables the switch and recolors it.
func (s *Switch) SetEnabled(enabled bool) {
	s.enabled = enabled
	s.Setup()
}

// Frame returns the switch frame in its parent's coordinates.
func (s *Switch) Frame() graphics.Rect {
	return s.root.Frame()
}

// SetFrame moves and resizes the switch. A size change runs a layout pass.
func (s *Switch) SetFrame(frame graphics.Rect) {
	s.root.SetFrame(frame)
	s.root.LayoutIfNeeded()
}

// OnPoint returns the thumb origin for the on state, from the last layout.
func (s *Switch) OnPoint() graphics.Offset {
	return s.onPoint
}

// OffPoint returns the thumb origin for the off state, from the last layout.
func (s *Switch) OffPoint() graphics.Offset {
	return s.offPoint
}

// ThumbFrame returns the thumb's current frame.
func (s *Switch) ThumbFrame() graphics.Rect {
	return s.thumb.Frame()
}

// BackgroundColor returns the track color currently on screen.
func (s *Switch) BackgroundColor() graphics.Color {
	return s.root.BackgroundColor
}

// CornerRadius returns the effective track corner radius.
func (s *Switch) CornerRadius() float64 {
	return s.style.EffectiveCornerRadius(s.root.Size())
}

// Thumb returns the thumb view.
func (s *Switch) Thumb() *ThumbView {
	return s.thumb
}

// OnLabel returns the "On" label view.
func (s *Switch) OnLabel() *view.View {
	return s.onLabel
}

// OffLabel returns the "Off" label view.
func (s *Switch) OffLabel() *view.View {
	return s.offLabel
}

// OnImageView returns the on-state icon view.
func (s *Switch) OnImageView() *view.View {
	return s.onImageView
}

// OffImageView returns the off-state icon view.
func (s *Switch) OffImageView() *view.View {
	return s.offImageView
}

// Style returns a copy of the current style.
func (s *Switch) Style() Style {
	return s.style.clone()
}

// SetStyle replaces the style and re-applies it.
func (s *Switch) SetStyle(style Style) {
	s.style = style.clone()
	s.Setup()
}

// Update applies several style changes with a single refresh.
func (s *Switch) Update(fn func(*Style)) {
	style := s.style.clone()
	fn(&style)
	s.SetStyle(style)
}

func (s *Switch) SetPadding(padding float64) {
	s.Update(func(st *Style) { st.Padding = padding })
}

func (s *Switch) SetOnTintColor(c graphics.Color) {
	s.Update(func(st *Style) { st.OnTintColor = c })
}

func (s *Switch) SetOffTintColor(c graphics.Color) {
	s.Update(func(st *Style) { st.OffTintColor = c })
}

func (s *Switch) SetThumbTintColor(c graphics.Color) {
	s.Update(func(st *Style) { st.ThumbTintColor = c })
}

// SetCornerRadius overrides the track radius. Nil restores the default.
func (s *Switch) SetCornerRadius(r *float64) {
	s.Update(func(st *Style) { st.CornerRadius = r })
}

// SetThumbSize overrides the thumb size. A zero size restores the default.
func (s *Switch) SetThumbSize(size graphics.Size) {
	s.Update(func(st *Style) { st.ThumbSize = size })
}

// SetThumbCornerRadius overrides the thumb radius. Nil restores the default.
func (s *Switch) SetThumbCornerRadius(r *float64) {
	s.Update(func(st *Style) { st.ThumbCornerRadius = r })
}

func (s *Switch) SetThumbShadow(shadow graphics.Shadow) {
	s.Update(func(st *Style) { st.ThumbShadow = shadow })
}

func (s *Switch) SetThumbBorder(border graphics.Border) {
	s.Update(func(st *Style) { st.ThumbBorder = border })
}

func (s *Switch) SetThumbImageInsets(insets graphics.EdgeInsets) {
	s.Update(func(st *Style) { st.ThumbImageInsets = insets })
}

func (s *Switch) SetLabelsShown(shown bool) {
	s.Update(func(st *Style) { st.LabelsShown = shown })
}

func (s *Switch) SetAnimationDuration(d time.Duration) {
	s.Update(func(st *Style) { st.AnimationDuration = d })
}

// Theme returns the palette used for disabled colors.
func (s *Switch) Theme() theme.SwitchThemeData {
	return s.theme
}

// ThumbImage returns the image inside the thumb, or nil.
func (s *Switch) ThumbImage() image.Image {
	return s.thumb.Image()
}

// SetThumbImage sets the image inside the thumb. Nil clears it.
func (s *Switch) SetThumbImage(img image.Image) {
	s.thumb.SetImage(img)
	s.Setup()
}

// OnImage returns the on-state icon, or nil.
func (s *Switch) OnImage() image.Image {
	return s.onImage
}

// SetOnImage sets the on-state icon.
func (s *Switch) SetOnImage(img image.Image) {
	s.onImage = img
	s.Setup()
}

// OffImage returns the off-state icon, or nil.
func (s *Switch) OffImage() image.Image {
	return s.offImage
}

// SetOffImage sets the off-state icon.
func (s *Switch) SetOffImage(img image.Image) {
	s.offImage = img
	s.Setup()
}
