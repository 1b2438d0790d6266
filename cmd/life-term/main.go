// Command life-term runs a universe in the terminal, redrawing each generation
// as text.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"packlife/internal/app"
	"packlife/internal/render"
	"packlife/pkg/core"
	"packlife/pkg/sims/life"
)

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height, cfg.TPS, cfg.Density = 64, 32, 10, 0.25
	cfg.Bind(flag.CommandLine)
	gens := flag.Int("gens", 100, "generations to run (0 runs until interrupted)")
	noClear := flag.Bool("no-clear", false, "append frames instead of redrawing in place")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	u, err := life.NewWithConfig(life.Config{
		Width:   uint32(cfg.Width),
		Height:  uint32(cfg.Height),
		Density: cfg.Density,
		Seed:    cfg.Seed,
	})
	if err != nil {
		log.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	if err := u.Parameters().Write(out); err != nil {
		log.Fatal(err)
	}
	step := core.NewFixedStep(cfg.TPS)
	for *gens == 0 || int(u.Generation()) < *gens {
		step.Wait()
		if err := frame(out, u, !*noClear); err != nil {
			log.Fatal(err)
		}
		u.Tick()
	}
	if err := frame(out, u, !*noClear); err != nil {
		log.Fatal(err)
	}
}

func frame(out *bufio.Writer, u *life.Universe, redraw bool) error {
	if redraw {
		if _, err := io.WriteString(out, clearScreen); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "generation %d  population %d\n", u.Generation(), u.Population()); err != nil {
		return err
	}
	if err := render.WriteText(out, u); err != nil {
		return err
	}
	return out.Flush()
}
