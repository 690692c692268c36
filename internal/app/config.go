package app

import (
	"flag"
	"time"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	GridPath string
	Scale    int
	TPS      int
	Rate     float64
	Period   time.Duration
	Baseline float64
	Outline  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		GridPath: "data/grid.json",
		Scale:    6,
		TPS:      60,
		Rate:     0.5,
		Period:   100 * time.Millisecond,
		Baseline: 0,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.GridPath, "grid", c.GridPath, "path to the elevation grid resource")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frame ticks per second")
	fs.Float64Var(&c.Rate, "rate", c.Rate, "water-level rise per animation tick")
	fs.DurationVar(&c.Period, "period", c.Period, "animation tick period")
	fs.Float64Var(&c.Baseline, "baseline", c.Baseline, "reset water level")
	fs.BoolVar(&c.Outline, "outline", c.Outline, "start with the debug cell outline enabled")
}
