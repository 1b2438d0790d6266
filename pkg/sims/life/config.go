package life

import (
	"strconv"

	"packlife/pkg/core"
)

// Config holds the parameters used to build a Universe from the registry.
type Config struct {
	Width   uint32
	Height  uint32
	Density float64
	Seed    int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Density: 0.04, Seed: 42}
}

// FromMap populates a Config from a string map. Unparseable or out-of-range
// values leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Width = uint32(parsed)
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 32); err == nil && parsed > 0 {
			c.Height = uint32(parsed)
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && validDensity(parsed) {
			c.Density = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Parameters describes the universe's configuration.
func (u *Universe) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				{Key: "w", Label: "Width", Type: core.ParamTypeInt, Value: strconv.FormatUint(uint64(u.width), 10)},
				{Key: "h", Label: "Height", Type: core.ParamTypeInt, Value: strconv.FormatUint(uint64(u.height), 10)},
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				{Key: "density", Label: "Density", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(u.density, 'g', -1, 64)},
			},
		},
	}}
}

func validDensity(d float64) bool { return d >= 0 && d <= 1 }
