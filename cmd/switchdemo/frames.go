package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/view"
)

type framesFlags struct {
	config    string
	dir       string
	fps       int
	scale     float64
	maxFrames int
}

func newFramesCmd(root *rootFlags) *cobra.Command {
	flags := &framesFlags{}

	cmd := &cobra.Command{
		Use:   "frames",
		Short: "Toggle a switch and write one PNG per animation frame",
		Long: `Toggle a switch once and step its transition on a simulated clock,
writing frame_0000.png, frame_0001.png, ... until the switch settles.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFrames(cmd, root, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Style document (YAML)")
	cmd.Flags().StringVarP(&flags.dir, "dir", "d", "frames", "Output directory")
	cmd.Flags().IntVar(&flags.fps, "fps", 60, "Frames per second")
	cmd.Flags().Float64Var(&flags.scale, "scale", 1, "Device pixels per point")
	cmd.Flags().IntVar(&flags.maxFrames, "max-frames", 600, "Stop after this many frames")

	return cmd
}

// manualClock is an animation clock that only moves when advanced.
type manualClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *manualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *manualClock) advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	c.mu.Unlock()
}

func runFrames(cmd *cobra.Command, root *rootFlags, flags *framesFlags) error {
	if flags.fps <= 0 {
		return fmt.Errorf("--fps must be positive (got %d)", flags.fps)
	}
	if flags.scale <= 0 {
		return fmt.Errorf("--scale must be positive (got %v)", flags.scale)
	}
	doc, err := root.loadDocument(cmd.Context(), flags.config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(flags.dir, 0o755); err != nil {
		return fmt.Errorf("create frame directory: %w", err)
	}

	clk := &manualClock{now: time.Unix(0, 0)}
	prev := animation.SetClock(clk)
	defer animation.SetClock(prev)

	sw, err := doc.NewSwitch()
	if err != nil {
		return err
	}
	defer sw.Dispose()

	write := func(n int) error {
		path := filepath.Join(flags.dir, fmt.Sprintf("frame_%04d.png", n))
		return writePNG(path, view.Rasterize(sw.View(), flags.scale).Image())
	}

	if err := write(0); err != nil {
		return err
	}
	sw.Toggle()

	frame := time.Second / time.Duration(flags.fps)
	n := 1
	for ; n < flags.maxFrames && sw.IsTransitioning(); n++ {
		if err := cmd.Context().Err(); err != nil {
			return err
		}
		clk.advance(frame)
		animation.StepTickers()
		sw.View().LayoutIfNeeded()
		if err := write(n); err != nil {
			return err
		}
	}
	if sw.IsTransitioning() {
		root.logger.Warn().Int("frames", n).Msg("stopped before the transition settled")
	}

	root.logger.Info().Str("dir", flags.dir).Int("frames", n).Bool("on", sw.IsOn()).Msg("wrote frames")
	return nil
}
