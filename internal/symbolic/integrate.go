package symbolic

import (
	"fmt"
	"math/big"
)

// DefiniteIntegral returns ∫_lower^upper e d(var) exactly. Both bounds must be
// rational multiples of π. Symbolic frequencies are supported when the bounds
// are integer multiples of π; concrete frequencies need bounds on the π/2 grid
// after scaling.
func DefiniteIntegral(e Expr, lower, upper Scalar) (Value, error) {
	fail := func(err error) (Value, error) {
		return Value{}, &IntegrationError{Integrand: e.String(), Lower: lower, Upper: upper, Wrapped: err}
	}
	qa, ok := lower.PiMultiple()
	if !ok {
		return fail(fmt.Errorf("%w: %s", ErrUnsupportedBound, lower))
	}
	qb, ok := upper.PiMultiple()
	if !ok {
		return fail(fmt.Errorf("%w: %s", ErrUnsupportedBound, upper))
	}
	length := upper.Sub(lower)

	var result Value
	for _, t := range e.Linearize().terms {
		if len(t.Factors) == 0 {
			result = result.Add(Constant(t.Coeff.Mul(length)))
			continue
		}
		f := t.Factors[0]
		var (
			v   Value
			err error
		)
		if f.Freq.IsConst() {
			v, err = integrateConcrete(f.Kind, f.Freq.Const(), qa, qb)
		} else {
			v, err = integrateSymbolic(f, qa, qb, length)
		}
		if err != nil {
			return fail(err)
		}
		result = result.Add(v.Scale(t.Coeff))
	}
	return result, nil
}

// integrateConcrete handles a nonzero integer frequency n:
//
//	∫ cos(nx) = (sin(n·b) - sin(n·a)) / n
//	∫ sin(nx) = (cos(n·a) - cos(n·b)) / n
func integrateConcrete(kind Kind, n int64, qa, qb *big.Rat) (Value, error) {
	nr := new(big.Rat).SetInt64(n)
	angleA := new(big.Rat).Mul(nr, qa)
	angleB := new(big.Rat).Mul(nr, qb)
	trig := sinPi
	if kind == KindSin {
		trig = cosPi
	}
	va, err := trig(angleA)
	if err != nil {
		return Value{}, err
	}
	vb, err := trig(angleB)
	if err != nil {
		return Value{}, err
	}
	diff := new(big.Rat).Sub(vb, va)
	if kind == KindSin {
		diff.Neg(diff)
	}
	diff.Quo(diff, nr)
	return Constant(fromRat(diff, 0)), nil
}

// integrateSymbolic handles a frequency L with free integer symbols. For
// integer bound multiples m of π, sin(L·mπ) = 0, so ∫cos(Lx) is (b-a)·δ(L).
// ∫sin(Lx) vanishes when both bounds share parity since cos(L·mπ) = (-1)^(L·m).
func integrateSymbolic(f Factor, qa, qb *big.Rat, length Scalar) (Value, error) {
	if !f.Freq.IntegerValued() {
		return Value{}, fmt.Errorf("%w: frequency %s is not integer", ErrNonElementary, f.Freq)
	}
	if !qa.IsInt() || !qb.IsInt() {
		return Value{}, fmt.Errorf("%w: %s(%s*x) at a non-integer multiple of pi", ErrNonElementary, f.Kind, f.Freq)
	}
	if f.Kind == KindCos {
		return Delta(f.Freq).Scale(length), nil
	}
	sameParity := new(big.Int).Sub(qa.Num(), qb.Num()).Bit(0) == 0
	if !sameParity {
		return Value{}, fmt.Errorf("%w: sin(%s*x) over bounds of mixed parity", ErrNonElementary, f.Freq)
	}
	return Value{}, nil
}

// sinPi returns sin(r·π) for r on the half-integer grid.
func sinPi(r *big.Rat) (*big.Rat, error) {
	m, half, err := halfSteps(r)
	if err != nil {
		return nil, err
	}
	if !half {
		return new(big.Rat), nil
	}
	// r = m + 1/2
	return new(big.Rat).SetInt64(parity(m)), nil
}

// cosPi returns cos(r·π) for r on the half-integer grid.
func cosPi(r *big.Rat) (*big.Rat, error) {
	m, half, err := halfSteps(r)
	if err != nil {
		return nil, err
	}
	if half {
		return new(big.Rat), nil
	}
	return new(big.Rat).SetInt64(parity(m)), nil
}

// halfSteps writes r = m or r = m + 1/2.
func halfSteps(r *big.Rat) (m *big.Int, half bool, err error) {
	twice := new(big.Rat).Mul(r, big.NewRat(2, 1))
	if !twice.IsInt() {
		return nil, false, fmt.Errorf("%w: trig of %s*pi", ErrNonElementary, r.RatString())
	}
	t := twice.Num()
	half = t.Bit(0) == 1
	// floor division keeps m correct for negative r
	m = new(big.Int).Div(t, big.NewInt(2))
	return m, half, nil
}

// parity returns (-1)^m.
func parity(m *big.Int) int64 {
	if m.Bit(0) == 1 {
		return -1
	}
	return 1
}
