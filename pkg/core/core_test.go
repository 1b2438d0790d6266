package core

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		x := a.Float64()
		require.Equal(t, x, b.Float64())
		require.GreaterOrEqual(t, x, 0.0)
		require.Less(t, x, 1.0)
	}
}

type fixedUniform []float64

func (f *fixedUniform) Float64() float64 {
	v := (*f)[0]
	*f = (*f)[1:]
	return v
}

func TestFillDensity(t *testing.T) {
	src := fixedUniform{0.1, 0.5, 0.49, 0.0, 0.99}
	var got []bool
	FillDensity(&src, 5, 0.5, func(i int, alive bool) {
		assert.Equal(t, len(got), i)
		got = append(got, alive)
	})
	assert.Equal(t, []bool{true, false, true, true, false}, got)
	assert.Empty(t, src, "one draw per position")
}

func TestFillDensityBounds(t *testing.T) {
	rng := NewRNG(1)
	FillDensity(rng, 1000, 0, func(_ int, alive bool) { require.False(t, alive) })
	FillDensity(rng, 1000, 1, func(_ int, alive bool) { require.True(t, alive) })
}

func TestParameterSnapshotWrite(t *testing.T) {
	snap := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "World", Params: []Parameter{{Key: "w", Value: "4"}, {Key: "h", Value: "3"}}},
	}}
	var buf bytes.Buffer
	require.NoError(t, snap.Write(&buf))
	assert.Equal(t, "World: w=4 h=3\n", buf.String())
}

func TestBuildUnknown(t *testing.T) {
	_, err := Build("does-not-exist", nil)
	assert.ErrorContains(t, err, "unknown sim")
}

func TestFixedStepDefaultsTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.True(t, fs.ShouldStep(), "first poll steps immediately")
}

func TestFixedStepWait(t *testing.T) {
	clock := time.Unix(0, 0)
	fs := NewFixedStep(10)
	fs.now = func() time.Time { return clock }
	var slept []time.Duration
	fs.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	assert.Equal(t, 100*time.Millisecond, fs.Interval())
	fs.Wait()
	assert.Empty(t, slept)

	clock = clock.Add(30 * time.Millisecond)
	fs.Wait()
	assert.Equal(t, []time.Duration{70 * time.Millisecond}, slept)
}
