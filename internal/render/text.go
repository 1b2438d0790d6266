package render

import (
	"bufio"
	"io"

	"packlife/pkg/bitset"
)

const (
	aliveGlyph = '◼'
	deadGlyph  = '◻'
)

// Grid is anything with row-major packed cells.
type Grid interface {
	Width() uint32
	Height() uint32
	Cells() bitset.View
}

// WriteText writes one line per row, ◼ for live cells and ◻ for dead ones.
func WriteText(w io.Writer, g Grid) error {
	bw := bufio.NewWriter(w)
	cells := g.Cells()
	width, height := int(g.Width()), int(g.Height())
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			glyph := deadGlyph
			if cells.Bit(row*width + col) {
				glyph = aliveGlyph
			}
			if _, err := bw.WriteRune(glyph); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
