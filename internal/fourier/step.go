package fourier

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// StepFunction is 0 on [0, π) and 1 from π on; StepFunction(π) == 1.
func StepFunction(x float64) float64 {
	if x < math.Pi {
		return 0.0
	}
	return 1.0
}

// Grid returns n evenly spaced points covering [0, 2π] inclusive.
func Grid(n int) []float64 {
	switch {
	case n <= 0:
		return []float64{}
	case n == 1:
		return []float64{0}
	}
	return floats.Span(make([]float64, n), 0, 2*math.Pi)
}

// Sample evaluates f at every grid point, one call per point.
func Sample(f func(float64) float64, grid []float64) []float64 {
	out := make([]float64, len(grid))
	for l, x := range grid {
		out[l] = f(x)
	}
	return out
}
