package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/switchkit/pkg/config"
	"github.com/go-drift/switchkit/pkg/errors"
)

// Version information set at build time.
var Version = "0.1.0-dev"

type rootFlags struct {
	logLevel string
	verbose  bool

	logger zerolog.Logger
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{stderr: os.Stderr}

	cmd := &cobra.Command{
		Use:           "switchdemo",
		Short:         "Render and play with a styleable toggle switch",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return flags.setup()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging with stack traces")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newFramesCmd(flags))
	cmd.AddCommand(newTUICmd(flags))
	cmd.AddCommand(newDefaultsCmd())

	return cmd
}

// setup builds the logger and routes reported errors through it.
func (f *rootFlags) setup() error {
	level := zerolog.InfoLevel
	if f.logLevel != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(f.logLevel))
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", f.logLevel, err)
		}
		level = parsed
	}
	if f.verbose {
		level = zerolog.DebugLevel
	}

	console := zerolog.NewConsoleWriter()
	console.Out = f.stderr
	console.TimeFormat = time.RFC3339
	f.logger = zerolog.New(console).Level(level).With().Timestamp().Logger()

	errors.SetHandler(errors.NewLogHandler(f.logger, f.verbose))
	return nil
}

// loadDocument reads the style document at path. An empty path yields the
// default document.
func (f *rootFlags) loadDocument(ctx context.Context, path string) (*config.Document, error) {
	if path == "" {
		f.logger.Debug().Msg("no --config given, using defaults")
		return config.Parse(nil)
	}
	return config.NewLoader(f.logger).Load(ctx, path)
}
