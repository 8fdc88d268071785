package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/timegrid/timegrid/pkg/axis"
	"github.com/timegrid/timegrid/pkg/measure"
)

// newPreviewCmd creates the preview command: a terminal preview that
// re-runs the layout every time the window is resized, which makes the
// engine's density decisions (skip, alternation, coarser units)
// directly observable.
func newPreviewCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "preview",
		Short:   "Preview the axis layout in the terminal, live on resize",
		Example: `  timegrid preview --from 2014-01-01 --to 2024-01-01`,
		RunE:    nil,
	}
	flags := addConfigFlags(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd, flags, configPath)
		if err != nil {
			return err
		}
		// Fail on unparsable window before entering the alt screen.
		if _, err := cfg.layoutOptions(loggerFromContext(cmd.Context())); err != nil {
			return err
		}

		p := tea.NewProgram(previewModel{cfg: cfg}, tea.WithAltScreen())
		_, err = p.Run()
		return err
	}
	return cmd
}

type previewModel struct {
	cfg  Config
	cols int
	res  axis.Result
	err  error
}

func (m previewModel) Init() tea.Cmd { return nil }

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "m":
			m.cfg.Minor = !m.cfg.Minor
			m.relayout()
		}
	case tea.WindowSizeMsg:
		m.cols = msg.Width
		m.relayout()
	}
	return m, nil
}

// relayout recomputes the axis in terminal-cell units: one cell per
// pixel, a one-cell font, fixed-advance measurement.
func (m *previewModel) relayout() {
	if m.cols < 10 {
		m.err = nil
		m.res = axis.Result{}
		return
	}
	opts, err := m.cfg.layoutOptions(nil)
	if err != nil {
		m.err = err
		return
	}

	width := float64(m.cols - 2)
	min, max := opts.Window.Min, opts.Window.Max
	opts.Scale = func(v float64) (float64, bool) {
		return (v - min) / (max - min) * width, true
	}
	opts.Measurer = measure.Fixed{CharWidth: 1, LineHeight: 1}
	opts.FontSize = 1
	opts.MinLineDistance = 10
	opts.MinCrossDistance = 2
	opts.MinNotchDistance = 2
	opts.TextPadding = 1
	opts.Budget = 4
	opts.Margin = 0.5
	opts.Slanted = false // rotation has no terminal rendition

	m.res, m.err = axis.Layout(opts)
}

func (m previewModel) View() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("timegrid preview"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q quit  m toggle minor gridlines"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString("error: " + m.err.Error() + "\n")
	case m.cols < 10:
		b.WriteString("terminal too narrow\n")
	default:
		b.WriteString(m.renderAxis())
		b.WriteString("\n")
		b.WriteString(summarize(m.res))
		b.WriteString("\n")
	}
	return b.String()
}

// renderAxis draws the baseline with tick glyphs and one text line per
// alternation row underneath.
func (m previewModel) renderAxis() string {
	width := m.cols - 1

	line := make([]rune, width)
	for i := range line {
		line[i] = '─'
	}
	for _, g := range m.res.Gridlines {
		col := int(g.Coord + 0.5)
		if col < 0 || col >= width {
			continue
		}
		switch {
		case g.Notch:
			line[col] = '┴'
		case g.Optional:
			line[col] = '╌'
		default:
			line[col] = '┼'
		}
	}

	maxRow := 0
	for _, t := range m.res.Texts {
		if t.Visible && t.Block.Row > maxRow {
			maxRow = t.Block.Row
		}
	}
	rows := make([][]rune, maxRow+1)
	for i := range rows {
		rows[i] = blankRow(width)
	}
	for _, t := range m.res.Texts {
		if !t.Visible {
			continue
		}
		placeText(rows[t.Block.Row], t.Block.Text, int(t.Coord+0.5))
	}

	parts := []string{string(line)}
	for _, r := range rows {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, "\n")
}

func blankRow(width int) []rune {
	row := make([]rune, width)
	for i := range row {
		row[i] = ' '
	}
	return row
}

// placeText centers text on col, clamped to the row bounds.
func placeText(row []rune, text string, col int) {
	runes := []rune(text)
	start := col - len(runes)/2
	if start < 0 {
		start = 0
	}
	if start+len(runes) > len(row) {
		start = len(row) - len(runes)
	}
	if start < 0 {
		return
	}
	copy(row[start:], runes)
}
