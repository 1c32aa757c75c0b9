package fourier

import (
	"fmt"
	"math"
)

// Reconstruct evaluates the truncated series on grid.
func Reconstruct(mode Mode, c Coefficients, grid []float64) ([]float64, error) {
	a, b, err := c.Floats()
	if err != nil {
		return nil, err
	}

	var series []float64
	switch mode {
	case ModeNotebook, "":
		series = reconstructNotebook(b, grid)
	case ModeCanonical:
		series = reconstructCanonical(a, b, grid)
	default:
		return nil, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, mode)
	}

	for l, v := range series {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: index %d (x=%g)", ErrNonFinite, l, grid[l])
		}
	}
	return series, nil
}

// reconstructNotebook accumulates b_k + cos(k·x) in place, then scales by 1/(2π).
func reconstructNotebook(b, grid []float64) []float64 {
	series := make([]float64, len(grid))
	for k := range b {
		for l, x := range grid {
			series[l] += b[k] + math.Cos(float64(k)*x)
		}
	}
	for l := range series {
		series[l] /= 2 * math.Pi
	}
	return series
}

func reconstructCanonical(a, b, grid []float64) []float64 {
	series := make([]float64, len(grid))
	if len(b) == 0 {
		return series
	}
	for l, x := range grid {
		v := b[0] / (2 * math.Pi)
		for k := 1; k < len(b); k++ {
			s, c := math.Sincos(float64(k) * x)
			v += (a[k]*s + b[k]*c) / math.Pi
		}
		series[l] = v
	}
	return series
}
