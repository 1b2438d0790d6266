//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"packlife/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay draws a status line over the simulation view. H toggles it.
type Overlay struct {
	sim    core.Sim
	hidden bool
	paused bool
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetPaused records whether the host is currently paused.
func (o *Overlay) SetPaused(paused bool) { o.paused = paused }

// Update processes overlay key bindings.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		o.hidden = !o.hidden
	}
}

// Draw paints the status line in the top-left corner.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.hidden {
		return
	}
	line := statusLine(o.sim, o.paused)
	face := basicfont.Face7x13

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(len(line)*7+8), 18)
	op.ColorScale.ScaleWithColor(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	screen.DrawImage(o.pixel, op)

	text.Draw(screen, line, face, 4, 13, color.RGBA{R: 220, G: 220, B: 120, A: 255})
}

func statusLine(sim core.Sim, paused bool) string {
	line := sim.Name()
	if stats, ok := sim.(core.Stats); ok {
		line = fmt.Sprintf("%s  gen %d  pop %d", line, stats.Generation(), stats.Population())
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
