package app

import (
	"errors"
	"flag"
	"fmt"
	"math"
	"strconv"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string
	Width   uint
	Height  uint
	Density float64
	Scale   int
	TPS     int
	Seed    int64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "life", Width: 256, Height: 256, Density: 0.04, Scale: 3, TPS: 30, Seed: 42}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.UintVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.UintVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "probability that a cell starts alive")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
}

// Validate rejects settings the simulation cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.Width == 0 || c.Height == 0 {
		errs = append(errs, fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Width, c.Height))
	}
	if uint64(c.Width) > math.MaxUint32 || uint64(c.Height) > math.MaxUint32 {
		errs = append(errs, fmt.Errorf("grid dimensions must fit in 32 bits, got %dx%d", c.Width, c.Height))
	}
	if !(c.Density >= 0 && c.Density <= 1) {
		errs = append(errs, fmt.Errorf("density must be within [0, 1], got %v", c.Density))
	}
	if c.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %d", c.Scale))
	}
	return errors.Join(errs...)
}

// SimConfig renders the simulation-facing settings as a registry config map.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":       strconv.FormatUint(uint64(c.Width), 10),
		"h":       strconv.FormatUint(uint64(c.Height), 10),
		"density": strconv.FormatFloat(c.Density, 'g', -1, 64),
		"seed":    strconv.FormatInt(c.Seed, 10),
	}
}
