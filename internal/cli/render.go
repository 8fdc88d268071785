package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/timegrid/timegrid/pkg/axis"
	"github.com/timegrid/timegrid/pkg/errors"
	"github.com/timegrid/timegrid/pkg/render"
)

// newRenderCmd creates the render command: compute a layout and write
// it as an SVG or PNG image.
func newRenderCmd() *cobra.Command {
	var (
		configPath string
		output     string
		format     string
		scale      float64
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the axis layout to an SVG or PNG file",
		Example: `  timegrid render --from 2014-01-01 --to 2024-01-01 -o axis.svg
  timegrid render --config axis.toml -f png -o axis.png`,
		RunE: nil,
	}
	flags := addConfigFlags(cmd)
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default axis.<format>)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: svg (default) or png")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "PNG raster scale factor")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := loggerFromContext(cmd.Context())

		cfg, err := resolveConfig(cmd, flags, configPath)
		if err != nil {
			return err
		}
		format, output = resolveOutput(format, output)
		if format != "svg" && format != "png" {
			return errors.New(errors.ErrCodeUnsupported,
				"unsupported format %q (want svg or png)", format)
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
		prog.done(fmt.Sprintf("Computed %s layout", res.Outcome))
		if res.Outcome == axis.OutcomeDegraded {
			logger.Warn("no label layout fit; rendering gridlines only")
		}

		data, err := renderImage(res, cfg, format, scale)
		if err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		if err := os.WriteFile(output, data, 0o644); err != nil {
			return err
		}
		logger.Infof("Generated %s", output)
		return nil
	}
	return cmd
}

// resolveOutput reconciles --format and --output: an explicit output
// extension implies the format, and a bare format implies the file name.
func resolveOutput(format, output string) (string, string) {
	if format == "" {
		if ext := strings.TrimPrefix(filepath.Ext(output), "."); ext != "" {
			format = ext
		} else {
			format = "svg"
		}
	}
	if output == "" {
		output = "axis." + format
	}
	return format, output
}

func renderImage(res axis.Result, cfg Config, format string, scale float64) ([]byte, error) {
	geo := []render.SVGOption{
		render.WithSize(cfg.Width, cfg.Height),
		render.WithTitle(cfg.Title),
	}
	switch format {
	case "png":
		return render.RenderPNG(res, render.WithScale(scale), render.WithPNGSVGOptions(geo...))
	default:
		return render.RenderSVG(res, geo...), nil
	}
}
