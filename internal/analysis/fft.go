package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"github.com/mjibson/go-dsp/fft"
)

var ErrTooFewSamples = errors.New("too few samples")

func PowerSpectrum(data []float64) []float64 {
	if len(data) == 0 {
		return nil
	}
	X := fft.FFTReal(data)
	ps := make([]float64, len(X)/2+1)

	for i := range ps {
		ps[i] = cmplx.Abs(X[i])
	}

	return ps
}

// Peak is one spectrum bin.
type Peak struct {
	Bin       int
	Magnitude float64
}

// PeakBins returns the n strongest bins of ps excluding DC, strongest first.
func PeakBins(ps []float64, n int) []Peak {
	if len(ps) < 2 || n <= 0 {
		return nil
	}
	peaks := make([]Peak, 0, len(ps)-1)
	for i := 1; i < len(ps); i++ {
		peaks = append(peaks, Peak{Bin: i, Magnitude: ps[i]})
	}
	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Magnitude > peaks[j].Magnitude })
	if n > len(peaks) {
		n = len(peaks)
	}
	return peaks[:n]
}

type Estimate struct {
	A []float64
	B []float64
}

// EstimateCoefficients estimates a_k and b_k for k < terms from samples taken
// on the periodic grid x_n = 2πn/M, M = len(samples). Aliasing requires
// M > 2·terms.
func EstimateCoefficients(samples []float64, terms int) (Estimate, error) {
	m := len(samples)
	if terms < 0 {
		return Estimate{}, fmt.Errorf("terms = %d", terms)
	}
	if m <= 2*terms || m == 0 {
		return Estimate{}, fmt.Errorf("%w: %d samples for %d terms", ErrTooFewSamples, m, terms)
	}
	X := fft.FFTReal(samples)
	scale := 2 * math.Pi / float64(m)
	est := Estimate{A: make([]float64, terms), B: make([]float64, terms)}
	for k := 0; k < terms; k++ {
		est.A[k] = -scale * imag(X[k])
		est.B[k] = scale * real(X[k])
	}
	return est, nil
}

// PeriodicSamples drops the closing sample of a grid that includes both
// endpoints of the period.
func PeriodicSamples(closed []float64) []float64 {
	if len(closed) < 2 {
		return nil
	}
	return closed[:len(closed)-1]
}

type Deviation struct {
	K  int
	DA float64
	DB float64
}

// Compare reports est minus exact for every index present in both.
func Compare(est Estimate, a, b []float64) []Deviation {
	n := len(est.A)
	if len(a) < n {
		n = len(a)
	}
	if len(b) < n {
		n = len(b)
	}
	out := make([]Deviation, n)
	for k := 0; k < n; k++ {
		out[k] = Deviation{K: k, DA: est.A[k] - a[k], DB: est.B[k] - b[k]}
	}
	return out
}

// MaxDeviation returns the largest absolute entry of devs.
func MaxDeviation(devs []Deviation) float64 {
	worst := 0.0
	for _, d := range devs {
		worst = math.Max(worst, math.Max(math.Abs(d.DA), math.Abs(d.DB)))
	}
	return worst
}
