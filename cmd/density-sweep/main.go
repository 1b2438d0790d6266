// Command density-sweep seeds many independent universes across a range of
// starting densities and reports how their populations settle.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"time"

	"packlife/pkg/core"
	"packlife/pkg/sims/life"

	"golang.org/x/sync/errgroup"
)

type scenario struct {
	density float64
	seed    int64
}

type scenarioResult struct {
	scenario
	initial    int
	final      int
	peak       int
	extinctAt  uint64
	generation uint64
}

func main() {
	width := flag.Uint("w", 128, "grid width")
	height := flag.Uint("h", 128, "grid height")
	steps := flag.Int("steps", 500, "generations to simulate per scenario")
	from := flag.Float64("from", 0.05, "lowest density")
	to := flag.Float64("to", 0.95, "highest density")
	by := flag.Float64("by", 0.05, "density increment")
	seeds := flag.Int("seeds", 4, "seeds per density")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	flag.Parse()

	if *by <= 0 || *from > *to || *seeds <= 0 || *steps < 0 {
		log.Fatalf("invalid sweep: from=%v to=%v by=%v seeds=%d steps=%d", *from, *to, *by, *seeds, *steps)
	}

	var sets []scenario
	for i := 0; ; i++ {
		d := *from + float64(i)*(*by)
		if d > *to+1e-9 {
			break
		}
		if d > 1 {
			d = 1
		}
		for s := 0; s < *seeds; s++ {
			sets = append(sets, scenario{density: d, seed: int64(1000*i + s)})
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("Sweeping %d scenarios on %dx%d (%d workers, %d steps)\n", len(sets), *width, *height, *workers, *steps)

	results := make([]scenarioResult, len(sets))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(*workers)
	start := time.Now()
	for i, sc := range sets {
		g.Go(func() error {
			res, err := runScenario(ctx, uint32(*width), uint32(*height), sc, *steps)
			if err != nil {
				return fmt.Errorf("density %.3f seed %d: %w", sc.density, sc.seed, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}

	report(results, *steps, time.Since(start))
}

func runScenario(ctx context.Context, w, h uint32, sc scenario, steps int) (scenarioResult, error) {
	u, err := life.NewRandom(w, h, sc.density, core.NewRNG(sc.seed))
	if err != nil {
		return scenarioResult{}, err
	}
	res := scenarioResult{scenario: sc, initial: u.Population()}
	res.peak = res.initial
	for i := 0; i < steps; i++ {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		u.Tick()
		pop := u.Population()
		if pop > res.peak {
			res.peak = pop
		}
		if pop == 0 {
			res.extinctAt = u.Generation()
			break
		}
	}
	res.final = u.Population()
	res.generation = u.Generation()
	return res, nil
}

func report(results []scenarioResult, steps int, elapsed time.Duration) {
	type summary struct {
		density  float64
		runs     int
		extinct  int
		final    float64
		survival float64
	}
	byDensity := map[float64]*summary{}
	for _, r := range results {
		s, ok := byDensity[r.density]
		if !ok {
			s = &summary{density: r.density}
			byDensity[r.density] = s
		}
		s.runs++
		if r.final == 0 {
			s.extinct++
		}
		if r.initial > 0 {
			s.survival += float64(r.final) / float64(r.initial)
		}
		s.final += float64(r.final)
	}

	var rows []*summary
	for _, s := range byDensity {
		s.final /= float64(s.runs)
		s.survival /= float64(s.runs)
		rows = append(rows, s)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].density < rows[j].density })

	fmt.Printf("\nResults after %d steps (elapsed %s):\n", steps, elapsed.Round(time.Millisecond))
	fmt.Printf("%8s %6s %8s %12s %10s\n", "density", "runs", "extinct", "mean final", "final/init")
	for _, s := range rows {
		fmt.Printf("%8.3f %6d %8d %12.1f %10.3f\n", s.density, s.runs, s.extinct, s.final, s.survival)
	}

	sort.Slice(rows, func(i, j int) bool { return rows[i].final > rows[j].final })
	if len(rows) > 0 {
		fmt.Printf("\nLargest mean final population: density %.3f (%.1f cells)\n", rows[0].density, rows[0].final)
	}
}
