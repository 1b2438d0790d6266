//go:build ebiten

package render

import (
	"image/color"

	"packlife/pkg/bitset"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads packed cell data into a single RGBA image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit converts cells to pixels and draws them scaled onto dst. Views that are
// too small for the painter are ignored.
func (gp *GridPainter) Blit(dst *ebiten.Image, cells bitset.View, on, off color.Color, scale int) {
	n := gp.w * gp.h
	if cells.Cap() < n {
		return
	}
	fillPackedRGBA(gp.buf, cells, n, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
