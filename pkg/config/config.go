// Package config reads switch style documents.
//
// A document is YAML describing one switch: its frame, initial state,
// palette, style overrides and optional images. Every field is optional;
// missing values fall back to the theme's defaults.
//
//	theme: dark
//	frame: {x: 0, y: 0, width: 100, height: 50}
//	on: true
//	style:
//	  on_tint: "#34C759"
//	  padding: 2
//	  animation_duration: 250ms
//	images: {on: on.png, off: off.png}
//
// Image paths are resolved relative to the document's directory.
package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	switcherrors "github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/graphics"
)

// Document is a decoded style document.
type Document struct {
	Theme   string    `yaml:"theme,omitempty" validate:"omitempty,oneof=light dark"`
	Frame   *Frame    `yaml:"frame,omitempty"`
	On      *bool     `yaml:"on,omitempty"`
	Enabled *bool     `yaml:"enabled,omitempty"`
	Style   StyleDoc  `yaml:"style,omitempty"`
	Images  ImagesDoc `yaml:"images,omitempty"`

	// dir is the directory image paths are relative to.
	dir string
}

// Frame places the switch in its parent.
type Frame struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Size is a width and height pair.
type Size struct {
	Width  float64 `yaml:"width" validate:"gte=0"`
	Height float64 `yaml:"height" validate:"gte=0"`
}

// Offset is an x and y pair.
type Offset struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Insets are per-edge distances.
type Insets struct {
	Top    float64 `yaml:"top" validate:"gte=0"`
	Left   float64 `yaml:"left" validate:"gte=0"`
	Bottom float64 `yaml:"bottom" validate:"gte=0"`
	Right  float64 `yaml:"right" validate:"gte=0"`
}

// ShadowDoc overrides the thumb shadow.
type ShadowDoc struct {
	Color   string   `yaml:"color,omitempty" validate:"omitempty,argb"`
	Offset  *Offset  `yaml:"offset,omitempty"`
	Radius  *float64 `yaml:"radius,omitempty" validate:"omitempty,gte=0"`
	Opacity *float64 `yaml:"opacity,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// BorderDoc overrides the thumb border.
type BorderDoc struct {
	Color string   `yaml:"color,omitempty" validate:"omitempty,argb"`
	Width *float64 `yaml:"width,omitempty" validate:"omitempty,gte=0"`
}

// StyleDoc mirrors widgets.Style with every field optional.
type StyleDoc struct {
	OnTint            string         `yaml:"on_tint,omitempty" validate:"omitempty,argb"`
	OffTint           string         `yaml:"off_tint,omitempty" validate:"omitempty,argb"`
	ThumbTint         string         `yaml:"thumb_tint,omitempty" validate:"omitempty,argb"`
	Padding           *float64       `yaml:"padding,omitempty" validate:"omitempty,gte=0"`
	CornerRadius      *float64       `yaml:"corner_radius,omitempty" validate:"omitempty,gte=0"`
	ThumbSize         *Size          `yaml:"thumb_size,omitempty"`
	ThumbCornerRadius *float64       `yaml:"thumb_corner_radius,omitempty" validate:"omitempty,gte=0"`
	Shadow            *ShadowDoc     `yaml:"shadow,omitempty"`
	Border            *BorderDoc     `yaml:"border,omitempty"`
	ThumbImageInsets  *Insets        `yaml:"thumb_image_insets,omitempty"`
	LabelsShown       *bool          `yaml:"labels_shown,omitempty"`
	AnimationDuration *time.Duration `yaml:"animation_duration,omitempty"`
}

// ImagesDoc names image files for the icons and the thumb.
type ImagesDoc struct {
	On    string `yaml:"on,omitempty"`
	Off   string `yaml:"off,omitempty"`
	Thumb string `yaml:"thumb,omitempty"`
}

// Parse decodes and validates a document. Unknown keys are rejected.
// An empty document is valid and yields all defaults.
func Parse(data []byte) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, &switcherrors.SwitchError{
			Op:        "config.Parse",
			Kind:      switcherrors.KindConfig,
			Err:       switcherrors.NewConfigError("", err.Error(), err),
			Timestamp: time.Now(),
		}
	}
	if err := doc.Validate(); err != nil {
		return nil, &switcherrors.SwitchError{
			Op:        "config.Parse",
			Kind:      switcherrors.KindConfig,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
	return &doc, nil
}

// Validate checks value ranges and color syntax.
func (d *Document) Validate() error {
	return convertValidationError(validatorInstance().Struct(d))
}

// Dir returns the directory image paths resolve against.
func (d *Document) Dir() string {
	return d.dir
}

// SetDir sets the directory image paths resolve against.
func (d *Document) SetDir(dir string) {
	d.dir = dir
}

// DefaultRect is the frame used when the document has none: the theme's
// switch size at the origin.
func (d *Document) DefaultRect() graphics.Rect {
	return graphics.RectFromOriginSize(graphics.Offset{}, d.SwitchTheme().Size())
}

// Rect returns the document frame, or DefaultRect.
func (d *Document) Rect() graphics.Rect {
	if d.Frame == nil {
		return d.DefaultRect()
	}
	return graphics.RectFromLTWH(d.Frame.X, d.Frame.Y, d.Frame.Width, d.Frame.Height)
}

// Marshal encodes a document as YAML.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// Loader reads documents from disk.
type Loader struct {
	logger zerolog.Logger
}

// NewLoader returns a loader that logs through logger.
func NewLoader(logger zerolog.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads and parses the document at path.
func (l *Loader) Load(ctx context.Context, path string) (*Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.logger.Debug().Str("path", path).Msg("loading style document")

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Error().Err(err).Str("path", path).Msg("failed to read style document")
		return nil, &switcherrors.SwitchError{
			Op:        "config.Load",
			Kind:      switcherrors.KindIO,
			Path:      path,
			Err:       err,
			Timestamp: time.Now(),
		}
	}

	doc, err := Parse(data)
	if err != nil {
		l.logger.Error().Err(err).Str("path", path).Msg("invalid style document")
		var se *switcherrors.SwitchError
		if errors.As(err, &se) {
			se.Op = "config.Load"
			se.Path = path
		}
		return nil, err
	}
	doc.dir = filepath.Dir(path)

	l.logger.Info().Str("path", path).Str("theme", doc.Theme).Msg("style document loaded")
	return doc, nil
}

// Load reads a document without logging.
func Load(path string) (*Document, error) {
	return NewLoader(zerolog.Nop()).Load(context.Background(), path)
}
