package optim

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/san-kum/fourier/internal/fourier"
	"golang.org/x/sync/errgroup"
)

// Point is one evaluated grid cell.
type Point struct {
	Terms   int
	Mode    fourier.Mode
	Metrics map[string]float64
}

// GridSearch evaluates the pipeline over every (terms, mode) pair.
type GridSearch struct {
	points  int
	terms   []int
	modes   []fourier.Mode
	workers int
}

func NewGridSearch(points int, terms []int, modes []fourier.Mode) *GridSearch {
	return &GridSearch{points: points, terms: terms, modes: modes, workers: runtime.NumCPU()}
}

// WithWorkers caps concurrent pipeline runs; n < 1 means one.
func (g *GridSearch) WithWorkers(n int) *GridSearch {
	g.workers = max(n, 1)
	return g
}

// Run returns points ordered by mode, then by terms as given. The first
// failing cell cancels the rest.
func (g *GridSearch) Run(ctx context.Context) ([]Point, error) {
	grid := make([]Point, 0, len(g.terms)*len(g.modes))
	for _, m := range g.modes {
		for _, n := range g.terms {
			grid = append(grid, Point{Terms: n, Mode: m})
		}
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.workers)
	for i := range grid {
		eg.Go(func() error {
			cfg := fourier.Config{Points: g.points, Terms: grid[i].Terms, Mode: grid[i].Mode}
			res, err := fourier.Run(ctx, cfg)
			if err != nil {
				return fmt.Errorf("terms=%d mode=%s: %w", cfg.Terms, cfg.Mode, err)
			}
			grid[i].Metrics = res.Metrics
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return grid, nil
}

// Best returns the point minimizing metric. Points without the metric are
// skipped; ties keep the earliest.
func Best(points []Point, metric string) (Point, bool) {
	best := math.Inf(1)
	var out Point
	found := false
	for _, p := range points {
		v, ok := p.Metrics[metric]
		if !ok || v >= best {
			continue
		}
		best, out, found = v, p, true
	}
	return out, found
}

// Curve extracts metric along terms for one mode.
func Curve(points []Point, mode fourier.Mode, metric string) []float64 {
	var out []float64
	for _, p := range points {
		if p.Mode == mode {
			out = append(out, p.Metrics[metric])
		}
	}
	return out
}
