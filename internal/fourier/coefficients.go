package fourier

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/fourier/internal/symbolic"
)

// CoefficientBounds are the limits of the coefficient integrals, [π, 2π].
// For the step target, ∫₀^{2π} f·basis reduces to the basis integral over them.
var CoefficientBounds = [2]symbolic.Scalar{symbolic.Pi(), symbolic.PiTimes(2, 1)}

// ComputeCoefficients returns a_k = ∫_π^{2π} sin(kx)dx and b_k = ∫_π^{2π} cos(kx)dx
// for k = 0..terms-1, exactly. The 1/(2π) factor is left to [Reconstruct].
func ComputeCoefficients(terms int) (Coefficients, error) {
	if terms < 0 {
		return Coefficients{}, fmt.Errorf("%w: terms = %d", ErrInvalidConfig, terms)
	}
	x := symbolic.NewSymbol("x", symbolic.Real)
	lower, upper := CoefficientBounds[0], CoefficientBounds[1]

	c := Coefficients{
		A: make([]symbolic.Value, terms),
		B: make([]symbolic.Value, terms),
	}
	for k := 0; k < terms; k++ {
		freq := symbolic.Lin(int64(k))
		a, err := symbolic.DefiniteIntegral(symbolic.Sin(x, freq), lower, upper)
		if err != nil {
			return Coefficients{}, fmt.Errorf("a_%d: %w", k, err)
		}
		b, err := symbolic.DefiniteIntegral(symbolic.Cos(x, freq), lower, upper)
		if err != nil {
			return Coefficients{}, fmt.Errorf("b_%d: %w", k, err)
		}
		c.A[k], c.B[k] = a, b
		log.Debug().Int("k", k).Stringer("a", a).Stringer("b", b).Msg("coefficient")
	}
	return c, nil
}
