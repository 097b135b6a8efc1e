package main

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/switchkit/pkg/errors"
	"github.com/go-drift/switchkit/pkg/view"
)

type renderFlags struct {
	config string
	out    string
	on     bool
	off    bool
	scale  float64
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Lay out a switch and write it as a PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Style document (YAML)")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "switch.png", "Output PNG path")
	cmd.Flags().BoolVar(&flags.on, "on", false, "Render in the on state")
	cmd.Flags().BoolVar(&flags.off, "off", false, "Render in the off state")
	cmd.Flags().Float64Var(&flags.scale, "scale", 1, "Device pixels per point")
	cmd.MarkFlagsMutuallyExclusive("on", "off")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, flags *renderFlags) error {
	if flags.scale <= 0 {
		return fmt.Errorf("--scale must be positive (got %v)", flags.scale)
	}
	doc, err := root.loadDocument(cmd.Context(), flags.config)
	if err != nil {
		return err
	}
	sw, err := doc.NewSwitch()
	if err != nil {
		return err
	}
	defer sw.Dispose()

	switch {
	case flags.on:
		sw.SetStateSilently(true)
	case flags.off:
		sw.SetStateSilently(false)
	}

	img := view.Rasterize(sw.View(), flags.scale).Image()
	if err := writePNG(flags.out, img); err != nil {
		return err
	}
	root.logger.Info().
		Str("out", flags.out).
		Bool("on", sw.IsOn()).
		Int("width", img.Bounds().Dx()).
		Int("height", img.Bounds().Dy()).
		Msg("rendered switch")
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return &errors.SwitchError{Op: "switchdemo.writePNG", Kind: errors.KindIO, Path: path, Err: err, Timestamp: time.Now()}
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return &errors.SwitchError{Op: "switchdemo.writePNG", Kind: errors.KindRender, Path: path, Err: err, Timestamp: time.Now()}
	}
	if err := f.Close(); err != nil {
		return &errors.SwitchError{Op: "switchdemo.writePNG", Kind: errors.KindIO, Path: path, Err: err, Timestamp: time.Now()}
	}
	return nil
}
