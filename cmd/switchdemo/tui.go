package main

import (
	"fmt"
	"image"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/go-drift/switchkit/pkg/animation"
	"github.com/go-drift/switchkit/pkg/graphics"
	"github.com/go-drift/switchkit/pkg/view"
	"github.com/go-drift/switchkit/pkg/widgets"
)

const frameInterval = time.Second / 60

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	stateStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).MarginTop(1)
	canvasStyle = lipgloss.NewStyle().MarginTop(1).MarginBottom(1)

	// backdrop is what transparent pixels are composited onto.
	backdrop = graphics.RGB(0x1E, 0x1E, 0x1E)
)

type tuiFlags struct {
	config string
	scale  float64
}

func newTUICmd(root *rootFlags) *cobra.Command {
	flags := &tuiFlags{}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Play with a switch in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
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

			m := newTUIModel(sw, flags.scale, root.logger)
			_, err = tea.NewProgram(m, tea.WithContext(cmd.Context())).Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&flags.config, "config", "c", "", "Style document (YAML)")
	cmd.Flags().Float64Var(&flags.scale, "scale", 1, "Terminal cells per point (horizontal)")

	return cmd
}

// frameMsg steps the animation tickers.
type frameMsg time.Time

// tuiModel hosts one switch. Its value-changed listener runs inside
// Update, so it may write to the model directly.
type tuiModel struct {
	sw      *widgets.Switch
	scale   float64
	logger  zerolog.Logger
	changes int
	last    string
}

func newTUIModel(sw *widgets.Switch, scale float64, logger zerolog.Logger) *tuiModel {
	m := &tuiModel{sw: sw, scale: scale, logger: logger}
	sw.OnValueChanged(func(on bool) {
		m.changes++
		m.last = fmt.Sprintf("value changed: %t", on)
		m.logger.Debug().Bool("on", on).Msg("value changed")
	})
	return m
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m *tuiModel) Init() tea.Cmd {
	return frameTick()
}

func (m *tuiModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case " ", "space", "enter":
			m.sw.Toggle()
		case "s":
			m.sw.SetStateSilently(!m.sw.IsOn())
			m.last = "set silently"
		case "l":
			m.sw.SetLabelsShown(!m.sw.Style().LabelsShown)
		}
		return m, nil
	case frameMsg:
		animation.StepTickers()
		m.sw.View().LayoutIfNeeded()
		return m, frameTick()
	}
	return m, nil
}

func (m *tuiModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("switchdemo"))
	b.WriteString("  ")
	state := "off"
	if m.sw.IsOn() {
		state = "on"
	}
	b.WriteString(stateStyle.Render(state))
	if m.sw.IsTransitioning() {
		b.WriteString(" (animating)")
	}
	b.WriteString("\n")
	b.WriteString(canvasStyle.Render(renderHalfBlocks(view.Rasterize(m.sw.View(), m.scale).Image())))
	b.WriteString("\n")
	fmt.Fprintf(&b, "changes: %d", m.changes)
	if m.last != "" {
		fmt.Fprintf(&b, "  %s", m.last)
	}
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space/enter toggle • s toggle silently • l labels • q quit"))
	return b.String()
}

// renderHalfBlocks draws img with one terminal cell per two vertical
// pixels: the upper half block takes the top pixel as foreground and the
// bottom pixel as background.
func renderHalfBlocks(img image.Image) string {
	bounds := img.Bounds()
	var b strings.Builder
	for y := bounds.Min.Y; y < bounds.Max.Y; y += 2 {
		if y > bounds.Min.Y {
			b.WriteByte('\n')
		}
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			top := composite(graphics.FromColor(img.At(x, y)))
			bottom := backdrop
			if y+1 < bounds.Max.Y {
				bottom = composite(graphics.FromColor(img.At(x, y+1)))
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(rgbHex(top))).
				Background(lipgloss.Color(rgbHex(bottom))).
				Render("▀"))
		}
	}
	return b.String()
}

// composite blends c over the backdrop.
func composite(c graphics.Color) graphics.Color {
	return animation.LerpColor(backdrop, c.WithAlpha(1), c.Alpha())
}

func rgbHex(c graphics.Color) string {
	return "#" + c.String()[3:]
}
