// Package life implements Conway's Game of Life on a toroidal grid whose cells
// are stored one per bit.
package life

import (
	"errors"
	"fmt"
	"math"
	"time"

	"packlife/pkg/bitset"
	"packlife/pkg/core"
)

var (
	// ErrInvalidSize is returned for zero or overflowing dimensions.
	ErrInvalidSize = errors.New("life: invalid universe size")
	// ErrInvalidDensity is returned for densities outside [0, 1].
	ErrInvalidDensity = errors.New("life: density must be within [0, 1]")
)

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col uint32
}

// Universe is a width x height Life grid whose edges wrap.
type Universe struct {
	width, height uint32
	density       float64

	cells   *bitset.Bitset
	scratch *bitset.Bitset

	generation uint64
}

// New returns a universe with every cell dead.
func New(width, height uint32) (*Universe, error) {
	if width == 0 || height == 0 || uint64(width)*uint64(height) > math.MaxInt {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	n := int(uint64(width) * uint64(height))
	return &Universe{
		width:   width,
		height:  height,
		cells:   bitset.WithSize(n),
		scratch: bitset.WithSize(n),
	}, nil
}

// NewRandom returns a universe where each cell is independently alive with
// probability density. A nil src is replaced by a time-seeded RNG.
func NewRandom(width, height uint32, density float64, src core.Uniform) (*Universe, error) {
	u, err := New(width, height)
	if err != nil {
		return nil, err
	}
	if src == nil {
		src = core.NewRNG(time.Now().UnixNano())
	}
	if err := u.Seed(src, density); err != nil {
		return nil, err
	}
	return u, nil
}

// NewWithConfig builds a universe from cfg, seeded from cfg.Seed.
func NewWithConfig(cfg Config) (*Universe, error) {
	return NewRandom(cfg.Width, cfg.Height, cfg.Density, core.NewRNG(cfg.Seed))
}

// Name returns the simulation identifier.
func (u *Universe) Name() string { return "life" }

// Width returns the number of columns.
func (u *Universe) Width() uint32 { return u.width }

// Height returns the number of rows.
func (u *Universe) Height() uint32 { return u.height }

// Size returns the grid dimensions.
func (u *Universe) Size() core.Size { return core.Size{W: int(u.width), H: int(u.height)} }

// Generation returns the number of ticks since construction or the last reseed.
func (u *Universe) Generation() uint64 { return u.generation }

// Population returns the number of live cells.
func (u *Universe) Population() int { return u.cells.Count() }

// Cells exposes the packed cell buffer in row-major order, bit idx holding
// cell (idx/width, idx%width). The view is invalidated by the next Tick or
// by any setter.
func (u *Universe) Cells() bitset.View { return u.cells.View() }

func (u *Universe) index(row, col uint32) int {
	return int(uint64(row)*uint64(u.width) + uint64(col))
}

func (u *Universe) checked(row, col uint32) (int, error) {
	if row >= u.height || col >= u.width {
		return 0, fmt.Errorf("cell (%d,%d) in %dx%d universe: %w",
			row, col, u.width, u.height,
			&bitset.IndexError{Index: u.index(row, col), Words: u.cells.Len()})
	}
	return u.index(row, col), nil
}

// Alive reports whether cell (row, col) is alive. Coordinates outside the grid
// panic.
func (u *Universe) Alive(row, col uint32) bool {
	idx, err := u.checked(row, col)
	if err != nil {
		panic(err)
	}
	return u.cells.Get(idx)
}

// SetCell makes cell (row, col) alive.
func (u *Universe) SetCell(row, col uint32) error {
	idx, err := u.checked(row, col)
	if err != nil {
		return err
	}
	u.cells.Set(idx)
	return nil
}

// ClearCell makes cell (row, col) dead.
func (u *Universe) ClearCell(row, col uint32) error {
	idx, err := u.checked(row, col)
	if err != nil {
		return err
	}
	u.cells.Reset(idx)
	return nil
}

// SetCells makes every listed cell alive. Nothing is written unless all
// coordinates are inside the grid.
func (u *Universe) SetCells(cells []Coord) error {
	for _, c := range cells {
		if _, err := u.checked(c.Row, c.Col); err != nil {
			return err
		}
	}
	for _, c := range cells {
		u.cells.Set(u.index(c.Row, c.Col))
	}
	return nil
}

// Clear kills every cell.
func (u *Universe) Clear() { u.cells.Clear() }

// Seed replaces the grid with random cells at the given density and restarts
// the generation count.
func (u *Universe) Seed(src core.Uniform, density float64) error {
	if !validDensity(density) {
		return fmt.Errorf("%w: got %v", ErrInvalidDensity, density)
	}
	u.density = density
	u.cells.Clear()
	core.FillDensity(src, u.cells.Cap(), density, u.cells.SetTo)
	u.generation = 0
	return nil
}

// Reset reseeds the grid from seed at the universe's current density.
func (u *Universe) Reset(seed int64) {
	// density was validated when it was stored.
	_ = u.Seed(core.NewRNG(seed), u.density)
}

// LiveNeighborCount returns how many of the eight wrapped neighbours of
// (row, col) are alive.
func (u *Universe) LiveNeighborCount(row, col uint32) uint8 {
	var count uint8
	h, w := uint64(u.height), uint64(u.width)
	// height-1 and width-1 stand in for -1 so the modulo wraps without branches.
	for _, dr := range [3]uint64{h - 1, 0, 1} {
		for _, dc := range [3]uint64{w - 1, 0, 1} {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (uint64(row) + dr) % h
			nc := (uint64(col) + dc) % w
			if u.cells.Get(int(nr*w + nc)) {
				count++
			}
		}
	}
	return count
}

func nextState(alive bool, neighbors uint8) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}

// Tick advances the universe by one generation. Neighbour counts are read
// from the current buffer only; the next generation is written to a scratch
// copy that is swapped in once every cell has been computed.
func (u *Universe) Tick() {
	u.scratch.CopyFrom(u.cells)
	for row := uint32(0); row < u.height; row++ {
		for col := uint32(0); col < u.width; col++ {
			idx := u.index(row, col)
			alive := u.cells.Get(idx)
			next := nextState(alive, u.LiveNeighborCount(row, col))
			if next != alive {
				u.scratch.SetTo(idx, next)
			}
		}
	}
	u.cells.Swap(u.scratch)
	u.generation++
}

// Step advances the simulation by one generation.
func (u *Universe) Step() { u.Tick() }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		u, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return u, nil
	})
}
