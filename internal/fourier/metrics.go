package fourier

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/integrate"
)

// ErrorMetrics compares series against target on grid. Lengths must match.
func ErrorMetrics(grid, target, series []float64) map[string]float64 {
	m := map[string]float64{}
	n := len(series)
	if n == 0 || len(target) != n || len(grid) != n {
		return m
	}
	m["rms_error"] = floats.Distance(target, series, 2) / math.Sqrt(float64(n))
	m["max_abs_error"] = floats.Distance(target, series, math.Inf(1))
	m["series_min"] = floats.Min(series)
	m["series_max"] = floats.Max(series)
	if n >= 2 {
		sq := make([]float64, n)
		floats.SubTo(sq, target, series)
		floats.Mul(sq, sq)
		m["l2_error"] = math.Sqrt(integrate.Trapezoidal(grid, sq))
	}
	return m
}
