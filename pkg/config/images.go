package config

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	switcherrors "github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/widgets"
)

// Images holds decoded document images. Missing entries are nil.
type Images struct {
	On    image.Image
	Off   image.Image
	Thumb image.Image
}

// LoadImages decodes the images the document names. PNG, JPEG, WebP and
// BMP files are supported.
func (d *Document) LoadImages() (Images, error) {
	var imgs Images
	var err error
	if imgs.On, err = d.decode(d.Images.On); err != nil {
		return Images{}, err
	}
	if imgs.Off, err = d.decode(d.Images.Off); err != nil {
		return Images{}, err
	}
	if imgs.Thumb, err = d.decode(d.Images.Thumb); err != nil {
		return Images{}, err
	}
	return imgs, nil
}

func (d *Document) resolve(name string) string {
	if filepath.IsAbs(name) || d.dir == "" {
		return name
	}
	return filepath.Join(d.dir, name)
}

func (d *Document) decode(name string) (image.Image, error) {
	if name == "" {
		return nil, nil
	}
	path := d.resolve(name)
	f, err := os.Open(path)
	if err != nil {
		return nil, &switcherrors.SwitchError{
			Op:        "config.LoadImages",
			Kind:      switcherrors.KindIO,
			Path:      path,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, &switcherrors.SwitchError{
			Op:        "config.LoadImages",
			Kind:      switcherrors.KindIO,
			Path:      path,
			Err:       fmt.Errorf("decode image: %w", err),
			Timestamp: time.Now(),
		}
	}
	return img, nil
}

// Options returns the switch options the document describes, with images
// decoded.
func (d *Document) Options() ([]widgets.Option, error) {
	st, err := d.WidgetStyle()
	if err != nil {
		return nil, &switcherrors.SwitchError{
			Op:        "config.Options",
			Kind:      switcherrors.KindConfig,
			Err:       err,
			Timestamp: time.Now(),
		}
	}
	imgs, err := d.LoadImages()
	if err != nil {
		return nil, err
	}

	var opts []widgets.Option
	if d.Theme != "" {
		opts = append(opts, widgets.WithTheme(d.SwitchTheme()))
	}
	opts = append(opts,
		widgets.WithStyle(st),
		widgets.WithImages(imgs.On, imgs.Off),
	)
	if imgs.Thumb != nil {
		opts = append(opts, widgets.WithThumbImage(imgs.Thumb))
	}
	if d.On != nil {
		opts = append(opts, widgets.WithOn(*d.On))
	}
	if d.Enabled != nil {
		opts = append(opts, widgets.WithEnabled(*d.Enabled))
	}
	return opts, nil
}

// NewSwitch builds the switch the document describes.
func (d *Document) NewSwitch() (*widgets.Switch, error) {
	opts, err := d.Options()
	if err != nil {
		return nil, err
	}
	return widgets.NewSwitch(d.Rect(), opts...), nil
}
