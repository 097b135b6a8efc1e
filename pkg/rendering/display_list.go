package rendering

import (
	"image"

	"github.com/go-drift/switchkit/pkg/graphics"
)

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any Canvas implementation.
type DisplayList struct {
	ops  []displayOp
	size graphics.Size
}

// Paint replays the recorded operations onto the provided canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, op := range d.ops {
		op.execute(canvas)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() graphics.Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// OpNames returns the operation names in recording order, for example
// "save", "drawRRect", "restore".
func (d *DisplayList) OpNames() []string {
	names := make([]string, len(d.ops))
	for i, op := range d.ops {
		names[i] = op.name()
	}
	return names
}

// Texts returns the strings passed to DrawText in recording order.
func (d *DisplayList) Texts() []string {
	var texts []string
	for _, op := range d.ops {
		if t, ok := op.(opText); ok {
			texts = append(texts, t.text)
		}
	}
	return texts
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	recording bool
	size      graphics.Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size graphics.Size) Canvas {
	r.ops = r.ops[:0]
	r.recording = true
	r.size = size
	return &recordingCanvas{recorder: r, size: size}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	return &DisplayList{
		ops:  ops,
		size: r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	execute(canvas Canvas)
	name() string
}

type recordingCanvas struct {
	recorder *PictureRecorder
	size     graphics.Size
}

func (c *recordingCanvas) Save() {
	c.recorder.append(opSave{})
}

func (c *recordingCanvas) SaveLayerAlpha(bounds graphics.Rect, alpha float64) {
	c.recorder.append(opSaveLayerAlpha{bounds: bounds, alpha: alpha})
}

func (c *recordingCanvas) Restore() {
	c.recorder.append(opRestore{})
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingCanvas) ClipRRect(rrect graphics.RRect) {
	c.recorder.append(opClipRRect{rrect: rrect})
}

func (c *recordingCanvas) DrawRRect(rrect graphics.RRect, paint Paint) {
	c.recorder.append(opRRect{rrect: rrect, paint: paint})
}

func (c *recordingCanvas) DrawRRectShadow(rrect graphics.RRect, shadow graphics.Shadow) {
	c.recorder.append(opRRectShadow{rrect: rrect, shadow: shadow})
}

func (c *recordingCanvas) DrawImageRect(img image.Image, dst graphics.Rect) {
	c.recorder.append(opImageRect{image: img, dst: dst})
}

func (c *recordingCanvas) DrawText(text string, style TextStyle, bounds graphics.Rect) {
	c.recorder.append(opText{text: text, style: style, bounds: bounds})
}

func (c *recordingCanvas) Size() graphics.Size {
	return c.size
}

type opSave struct{}

func (opSave) execute(canvas Canvas) {
	canvas.Save()
}

func (opSave) name() string { return "save" }

type opSaveLayerAlpha struct {
	bounds graphics.Rect
	alpha  float64
}

func (op opSaveLayerAlpha) execute(canvas Canvas) {
	canvas.SaveLayerAlpha(op.bounds, op.alpha)
}

func (opSaveLayerAlpha) name() string { return "saveLayerAlpha" }

type opRestore struct{}

func (opRestore) execute(canvas Canvas) {
	canvas.Restore()
}

func (opRestore) name() string { return "restore" }

type opTranslate struct {
	dx, dy float64
}

func (op opTranslate) execute(canvas Canvas) {
	canvas.Translate(op.dx, op.dy)
}

func (opTranslate) name() string { return "translate" }

type opClipRRect struct {
	rrect graphics.RRect
}

func (op opClipRRect) execute(canvas Canvas) {
	canvas.ClipRRect(op.rrect)
}

func (opClipRRect) name() string { return "clipRRect" }

type opRRect struct {
	rrect graphics.RRect
	paint Paint
}

func (op opRRect) execute(canvas Canvas) {
	canvas.DrawRRect(op.rrect, op.paint)
}

func (opRRect) name() string { return "drawRRect" }

type opRRectShadow struct {
	rrect  graphics.RRect
	shadow graphics.Shadow
}

func (op opRRectShadow) execute(canvas Canvas) {
	canvas.DrawRRectShadow(op.rrect, op.shadow)
}

func (opRRectShadow) name() string { return "drawRRectShadow" }

type opImageRect struct {
	image image.Image
	dst   graphics.Rect
}

func (op opImageRect) execute(canvas Canvas) {
	canvas.DrawImageRect(op.image, op.dst)
}

func (opImageRect) name() string { return "drawImageRect" }

type opText struct {
	text   string
	style  TextStyle
	bounds graphics.Rect
}

func (op opText) execute(canvas Canvas) {
	canvas.DrawText(op.text, op.style, op.bounds)
}

func (opText) name() string { return "drawText" }
