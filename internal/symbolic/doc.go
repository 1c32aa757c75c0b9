// Package symbolic provides an exact integrator for trigonometric polynomials.
//
// The package covers the closed-form class needed to reason about Fourier
// bases on intervals whose bounds are rational multiples of π:
//
//   - [Symbol]: named variable carrying integer/positive/real assumptions
//   - [Linear]: integer linear form used as a frequency or delta condition
//   - [Expr]: sum of products of sin(L·x) and cos(L·x) with exact coefficients
//   - [Scalar]: exact polynomial in π with rational coefficients
//   - [Value]: integral result, a sum of Kronecker-delta guarded scalars
//
// # Example
//
//	x := symbolic.NewSymbol("x", symbolic.Real)
//	i := symbolic.NewSymbol("i", symbolic.Integer, symbolic.Positive)
//	j := symbolic.NewSymbol("j", symbolic.Integer, symbolic.Positive)
//	e := symbolic.Mul(symbolic.Sin(x, i.Linear()), symbolic.Sin(x, j.Linear()))
//	v, _ := symbolic.DefiniteIntegral(e, symbolic.Int(0), symbolic.PiTimes(2, 1))
//	fmt.Println(v) // pi*KroneckerDelta(i, j)
//
// Integrands outside the class return [ErrNonElementary]; there is no
// numeric fallback.
package symbolic
