package app

import (
	"flag"
	"testing"

	"packlife/pkg/core"
	_ "packlife/pkg/sims/life"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-w", "40", "-h", "20", "-density", "0.5", "-seed", "9"}))

	assert.Equal(t, uint(40), cfg.Width)
	assert.Equal(t, uint(20), cfg.Height)
	assert.Equal(t, 0.5, cfg.Density)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 0
	cfg.Density = 1.5
	cfg.Scale = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "at least 1x1")
	assert.ErrorContains(t, err, "density")
	assert.ErrorContains(t, err, "scale")
}

func TestSimConfigBuildsMatchingSim(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Density = 10, 6, 1

	sim, err := core.Build(cfg.Sim, cfg.SimConfig())
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 10, H: 6}, sim.Size())
	assert.Equal(t, 60, sim.(core.Stats).Population())
}
