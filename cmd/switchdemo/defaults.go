package main

import (
	"github.com/spf13/cobra"

	"github.com/go-drift/switchkit/pkg/config"
	"github.com/go-drift/switchkit/pkg/widgets"
)

func newDefaultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "defaults",
		Short: "Print a style document with every default spelled out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			on := true
			doc := &config.Document{
				On:    &on,
				Style: config.FromStyle(widgets.DefaultStyle()),
			}
			frame := doc.DefaultRect()
			doc.Frame = &config.Frame{X: frame.Left, Y: frame.Top, Width: frame.Width(), Height: frame.Height()}
			data, err := config.Marshal(doc)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
