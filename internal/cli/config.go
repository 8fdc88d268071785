package cli

import (
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/timegrid/timegrid/pkg/axis"
	"github.com/timegrid/timegrid/pkg/duration"
	"github.com/timegrid/timegrid/pkg/errors"
	"github.com/timegrid/timegrid/pkg/measure"
)

// Config describes one axis layout request. Commands accept the common
// fields as flags and the full set from a TOML file via --config; a
// flag set on the command line wins over the file.
type Config struct {
	From string `toml:"from"` // window start, RFC3339 or date
	To   string `toml:"to"`   // window end

	Width  float64 `toml:"width"`  // axis pixel span
	Height float64 `toml:"height"` // canvas height for image output

	Unit      string  `toml:"unit"` // ms|sec|min|hour|day|week|month|quarter|year, empty = auto
	Multiples []int64 `toml:"multiples"`
	Format    string  `toml:"format"` // explicit label pattern, empty = search

	TargetGridlines int     `toml:"target_gridlines"`
	MinLineDistance float64 `toml:"min_line_distance"`
	TextPadding     float64 `toml:"text_padding"`
	MaxAlternation  int     `toml:"max_alternation"`
	Skip            int     `toml:"skip"`
	Slanted         bool    `toml:"slanted"`
	SlantAngle      float64 `toml:"slant_angle"`
	TicksInside     bool    `toml:"ticks_inside"`
	Minor           bool    `toml:"minor"`

	FontSize float64 `toml:"font_size"`
	Budget   float64 `toml:"budget"`
	Margin   float64 `toml:"margin"`
	Title    string  `toml:"title"`
	Timezone string  `toml:"timezone"`
}

const (
	defaultWidth  = 800.0
	defaultHeight = 400.0
)

// addConfigFlags registers the flags shared by every layout command and
// returns the Config they are bound to.
func addConfigFlags(cmd *cobra.Command) *Config {
	cfg := &Config{Width: defaultWidth, Height: defaultHeight}
	f := cmd.Flags()
	f.StringVar(&cfg.From, "from", "", "window start (RFC3339 or YYYY-MM-DD)")
	f.StringVar(&cfg.To, "to", "", "window end")
	f.Float64Var(&cfg.Width, "width", cfg.Width, "axis pixel span")
	f.Float64Var(&cfg.Height, "height", cfg.Height, "canvas height")
	f.StringVar(&cfg.Unit, "unit", "", "gridline unit (default: automatic)")
	f.StringVar(&cfg.Format, "label-format", "", "explicit label pattern (Go time layout)")
	f.StringVar(&cfg.Title, "title", "", "axis title")
	f.BoolVar(&cfg.Slanted, "slanted", false, "force slanted labels")
	f.BoolVar(&cfg.Minor, "minor", false, "add minor gridlines one unit finer")
	f.IntVar(&cfg.Skip, "skip", 0, "force a label skip")
	f.StringVar(&cfg.Timezone, "timezone", "", "IANA zone for calendar boundaries (default UTC)")
	return cfg
}

// resolveConfig merges the flag-bound config with the --config file, if
// any. The file is the base; any flag changed on the command line
// overrides it.
func resolveConfig(cmd *cobra.Command, flags *Config, path string) (Config, error) {
	if path == "" {
		return *flags, nil
	}
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "load config %s", path)
	}
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}

	f := cmd.Flags()
	override := map[string]func(){
		"from":         func() { cfg.From = flags.From },
		"to":           func() { cfg.To = flags.To },
		"width":        func() { cfg.Width = flags.Width },
		"height":       func() { cfg.Height = flags.Height },
		"unit":         func() { cfg.Unit = flags.Unit },
		"label-format": func() { cfg.Format = flags.Format },
		"title":        func() { cfg.Title = flags.Title },
		"slanted":      func() { cfg.Slanted = flags.Slanted },
		"minor":        func() { cfg.Minor = flags.Minor },
		"skip":         func() { cfg.Skip = flags.Skip },
		"timezone":     func() { cfg.Timezone = flags.Timezone },
	}
	for name, apply := range override {
		if f.Changed(name) {
			apply()
		}
	}
	return cfg, nil
}

// layoutOptions converts the resolved config into engine options with a
// linear scale over [0, Width].
func (c Config) layoutOptions(logger *log.Logger) (axis.Options, error) {
	if c.From == "" || c.To == "" {
		return axis.Options{}, errors.New(errors.ErrCodeInvalidOptions,
			"both --from and --to are required")
	}
	from, err := parseWhen(c.From)
	if err != nil {
		return axis.Options{}, err
	}
	to, err := parseWhen(c.To)
	if err != nil {
		return axis.Options{}, err
	}

	loc := time.UTC
	if c.Timezone != "" {
		loc, err = time.LoadLocation(c.Timezone)
		if err != nil {
			return axis.Options{}, errors.Wrap(errors.ErrCodeInvalidOptions, err,
				"unknown timezone %q", c.Timezone)
		}
	}

	var unit *duration.Unit
	if c.Unit != "" {
		u, ok := duration.ParseUnit(c.Unit)
		if !ok {
			return axis.Options{}, errors.New(errors.ErrCodeInvalidUnit,
				"unknown unit %q", c.Unit)
		}
		unit = &u
	}

	face, err := measure.NewFace()
	if err != nil {
		return axis.Options{}, err
	}

	min := float64(from.UnixMilli())
	max := float64(to.UnixMilli())
	width := c.Width
	if width <= 0 {
		width = defaultWidth
	}
	scale := func(v float64) (float64, bool) {
		return (v - min) / (max - min) * width, true
	}

	return axis.Options{
		Window:          axis.ViewWindow{Min: min, Max: max},
		Scale:           scale,
		Unit:            unit,
		Multiples:       c.Multiples,
		UserFormat:      c.Format,
		TargetGridlines: c.TargetGridlines,
		MinLineDistance: c.MinLineDistance,
		TextPadding:     c.TextPadding,
		MaxAlternation:  c.MaxAlternation,
		ForcedSkip:      c.Skip,
		Slanted:         c.Slanted,
		SlantAngle:      c.SlantAngle,
		TicksInside:     c.TicksInside,
		MinorGridlines:  c.Minor,
		FontSize:        c.FontSize,
		Measurer:        face,
		Budget:          c.Budget,
		Margin:          c.Margin,
		Title:           c.Title,
		Location:        loc,
		Logger:          logger,
	}, nil
}

// whenLayouts are the accepted time syntaxes for --from/--to, tried in
// order.
var whenLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseWhen(s string) (time.Time, error) {
	for _, layout := range whenLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.New(errors.ErrCodeInvalidFormat,
		"cannot parse time %q (want RFC3339 or YYYY-MM-DD)", s)
}
