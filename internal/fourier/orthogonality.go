package fourier

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/san-kum/fourier/internal/symbolic"
	"gonum.org/v1/gonum/integrate/quad"
)

// Basis symbols: x real, i and j positive integers.
var (
	SymX = symbolic.NewSymbol("x", symbolic.Real)
	SymI = symbolic.NewSymbol("i", symbolic.Integer, symbolic.Positive)
	SymJ = symbolic.NewSymbol("j", symbolic.Integer, symbolic.Positive)
)

type relation struct {
	name      string
	integrand symbolic.Expr
	expected  symbolic.Value
}

func relations() []relation {
	sinI, sinJ := symbolic.Sin(SymX, SymI.Linear()), symbolic.Sin(SymX, SymJ.Linear())
	cosI, cosJ := symbolic.Cos(SymX, SymI.Linear()), symbolic.Cos(SymX, SymJ.Linear())
	piDelta := symbolic.Delta(SymI.Linear().Sub(SymJ.Linear())).Scale(symbolic.Pi())
	return []relation{
		{name: "sin-sin", integrand: symbolic.Mul(sinI, sinJ), expected: piDelta},
		{name: "cos-cos", integrand: symbolic.Mul(cosI, cosJ), expected: piDelta},
		{name: "sin-cos", integrand: symbolic.Mul(sinI, cosJ), expected: symbolic.Value{}},
	}
}

// VerifyOrthogonality integrates sin·sin, cos·cos and sin·cos over [0, 2π]
// exactly and checks them against π·δ_ij, π·δ_ij and 0.
func VerifyOrthogonality() ([]Proof, error) {
	lower, upper := symbolic.Int(0), symbolic.PiTimes(2, 1)
	rels := relations()
	proofs := make([]Proof, 0, len(rels))
	for _, r := range rels {
		v, err := symbolic.DefiniteIntegral(r.integrand, lower, upper)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", r.name, err)
		}
		p := Proof{
			Name:      r.name,
			Integrand: r.integrand,
			Lower:     lower,
			Upper:     upper,
			Result:    v,
			Expected:  r.expected,
			Holds:     v.Equal(r.expected),
		}
		log.Debug().Str("relation", p.Name).Stringer("result", v).Bool("holds", p.Holds).Msg("orthogonality")
		proofs = append(proofs, p)
	}
	return proofs, nil
}

// CheckProofs returns ErrProofFailed naming the first relation that does not hold.
func CheckProofs(proofs []Proof) error {
	for _, p := range proofs {
		if !p.Holds {
			return fmt.Errorf("%w: %s gave %s, want %s", ErrProofFailed, p.Name, p.Result, p.Expected)
		}
	}
	return nil
}

// CrossCheck compares every proof against Gauss-Legendre quadrature with the
// given node count for all index pairs 1 ≤ i, j ≤ maxIndex and returns the
// largest absolute deviation.
func CrossCheck(proofs []Proof, maxIndex, nodes int) (float64, error) {
	if maxIndex < 1 || nodes < 1 {
		return 0, fmt.Errorf("%w: max index %d, nodes %d", ErrInvalidConfig, maxIndex, nodes)
	}
	worst := 0.0
	for _, p := range proofs {
		lo, hi := p.Lower.Float64(), p.Upper.Float64()
		for i := int64(1); i <= int64(maxIndex); i++ {
			for j := int64(1); j <= int64(maxIndex); j++ {
				b := symbolic.Bindings{SymI.Name(): i, SymJ.Name(): j}
				exact, err := p.Result.Eval(b)
				if err != nil {
					return 0, fmt.Errorf("%s at i=%d j=%d: %w", p.Name, i, j, err)
				}
				if _, err := p.Integrand.Eval(lo, b); err != nil {
					return 0, fmt.Errorf("%s at i=%d j=%d: %w", p.Name, i, j, err)
				}
				f := func(x float64) float64 {
					v, _ := p.Integrand.Eval(x, b)
					return v
				}
				numeric := quad.Fixed(f, lo, hi, nodes, quad.Legendre{}, 0)
				worst = math.Max(worst, math.Abs(numeric-exact.Float64()))
			}
		}
	}
	return worst, nil
}
