package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/timegrid/timegrid/pkg/axis"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// newTicksCmd creates the ticks command: compute a layout and print the
// chosen gridlines and labels as a table, for inspecting what a plot
// would show without drawing one.
func newTicksCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Compute and print the axis layout for a time window",
		Example: `  timegrid ticks --from 2014-01-01 --to 2024-01-01 --width 1000
  timegrid ticks --config axis.toml --unit month`,
		RunE: nil,
	}
	flags := addConfigFlags(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())

		cfg, err := resolveConfig(cmd, flags, configPath)
		if err != nil {
			return err
		}
		opts, err := cfg.layoutOptions(logger)
		if err != nil {
			return err
		}

		prog := newProgress(logger)
		res, err := axis.Layout(opts)
		if err != nil {
			return err
		}
		prog.done(fmt.Sprintf("Computed %s layout: %d gridlines, %d labels",
			res.Outcome, res.Stats.Gridlines, res.Stats.Visible))

		fmt.Fprintln(cmd.OutOrStdout(), summarize(res))
		fmt.Fprintln(cmd.OutOrStdout(), ticksTable(res))
		return nil
	}
	return cmd
}

func summarize(res axis.Result) string {
	s := res.Stats
	parts := []string{
		fmt.Sprintf("outcome=%s", res.Outcome),
		fmt.Sprintf("unit=%s", s.Unit),
		fmt.Sprintf("multiple=%d", s.Multiple),
	}
	if s.Format != "" {
		parts = append(parts, fmt.Sprintf("format=%q", s.Format))
	}
	if s.Skip > 1 {
		parts = append(parts, fmt.Sprintf("skip=%d", s.Skip))
	}
	if s.AltCount > 1 {
		parts = append(parts, fmt.Sprintf("rows=%d", s.AltCount))
	}
	if s.Notches > 0 {
		parts = append(parts, fmt.Sprintf("notches=%d", s.Notches))
	}
	if s.Minor > 0 {
		parts = append(parts, fmt.Sprintf("minor=%d", s.Minor))
	}
	parts = append(parts, fmt.Sprintf("attempts=%d", s.Attempts))
	if s.Elapsed > 0 {
		parts = append(parts, fmt.Sprintf("elapsed=%s", s.Elapsed.Round(time.Microsecond)))
	}
	return dimStyle.Render(strings.Join(parts, "  "))
}

// ticksTable renders one row per gridline, joined with the label placed
// at the same coordinate when there is one.
func ticksTable(res axis.Result) string {
	labelAt := make(map[float64]axis.TickText, len(res.Texts))
	for _, t := range res.Texts {
		labelAt[t.Coord] = t
	}

	rows := make([][]string, 0, len(res.Gridlines))
	for _, g := range res.Gridlines {
		kind := "grid"
		switch {
		case g.Notch:
			kind = "notch"
		case g.Optional:
			kind = "minor"
		}

		label, row, vis := "", "", ""
		if t, ok := labelAt[g.Coord]; ok && !g.Notch && !g.Optional {
			label = t.Block.Text
			row = fmt.Sprintf("%d", t.Block.Row)
			if t.Visible {
				vis = "yes"
			} else {
				vis = "hidden"
			}
		}
		rows = append(rows, []string{
			g.Value.Format("2006-01-02 15:04:05"),
			fmt.Sprintf("%.1f", g.Coord),
			kind,
			label,
			row,
			vis,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Time", "Pixel", "Kind", "Label", "Row", "Shown").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return lipgloss.NewStyle()
		}).
		Render()
}
