package symbolic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/fourier/internal/symbolic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	x = symbolic.NewSymbol("x", symbolic.Real)
	i = symbolic.NewSymbol("i", symbolic.Integer, symbolic.Positive)
	j = symbolic.NewSymbol("j", symbolic.Integer, symbolic.Positive)
	k = symbolic.NewSymbol("k", symbolic.Integer, symbolic.Positive)
)

func TestExpr_String(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "sin(i*x)*sin(j*x)", symbolic.Mul(symbolic.Sin(x, i.Linear()), symbolic.Sin(x, j.Linear())).String())
	assert.Equal(t, "sin(x)", symbolic.Sin(x, symbolic.Lin(1)).String())
	assert.Equal(t, "-sin(2*x)", symbolic.Sin(x, symbolic.Lin(-2)).String())
	assert.Equal(t, "cos(2*x)", symbolic.Cos(x, symbolic.Lin(-2)).String())
	assert.Equal(t, "cos((i - j)*x)", symbolic.Cos(x, i.Linear().Sub(j.Linear())).String())
	assert.Equal(t, `\sin{\left(i x \right)} \cos{\left(j x \right)}`,
		symbolic.Mul(symbolic.Sin(x, i.Linear()), symbolic.Cos(x, j.Linear())).LaTeX())
	assert.True(t, symbolic.Sin(x, symbolic.Lin(0)).IsZero())
	assert.Equal(t, "1", symbolic.Cos(x, symbolic.Lin(0)).String())
	assert.True(t, symbolic.Add(symbolic.Sin(x, i.Linear()), symbolic.Sin(x, i.Linear()).Scale(symbolic.Int(-1))).IsZero())
}

func TestExpr_MixedVariablesPanic(t *testing.T) {
	t.Parallel()
	y := symbolic.NewSymbol("y", symbolic.Real)
	assert.Panics(t, func() {
		symbolic.Mul(symbolic.Sin(x, symbolic.Lin(1)), symbolic.Sin(y, symbolic.Lin(1)))
	})
}

func TestExpr_LinearizePreservesValue(t *testing.T) {
	t.Parallel()
	e := symbolic.Mul(
		symbolic.Sin(x, i.Linear()),
		symbolic.Cos(x, j.Linear()),
		symbolic.Cos(x, k.Linear()),
	)
	lin := e.Linearize()
	for _, term := range lin.Terms() {
		require.LessOrEqual(t, len(term.Factors), 1)
	}
	b := symbolic.Bindings{"i": 3, "j": 1, "k": 4}
	for _, at := range []float64{0, 0.3, 1.7, math.Pi, 5.1} {
		want, err := e.Eval(at, b)
		require.NoError(t, err)
		got, err := lin.Eval(at, b)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-12, "x=%v", at)
	}
}

func TestDefiniteIntegral_Orthogonality(t *testing.T) {
	t.Parallel()
	zero, twoPi := symbolic.Int(0), symbolic.PiTimes(2, 1)

	tests := []struct {
		name  string
		expr  symbolic.Expr
		plain string
		latex string
	}{
		{"sin sin", symbolic.Mul(symbolic.Sin(x, i.Linear()), symbolic.Sin(x, j.Linear())), "pi*KroneckerDelta(i, j)", `\pi \delta_{i j}`},
		{"cos cos", symbolic.Mul(symbolic.Cos(x, i.Linear()), symbolic.Cos(x, j.Linear())), "pi*KroneckerDelta(i, j)", `\pi \delta_{i j}`},
		{"sin cos", symbolic.Mul(symbolic.Sin(x, i.Linear()), symbolic.Cos(x, j.Linear())), "0", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := symbolic.DefiniteIntegral(tt.expr, zero, twoPi)
			require.NoError(t, err)
			assert.Equal(t, tt.plain, v.String())
			assert.Equal(t, tt.latex, v.LaTeX())
		})
	}
}

func TestDefiniteIntegral_ScaledFrequencyLaTeX(t *testing.T) {
	t.Parallel()
	twoI := i.Linear().Scale(2)
	e := symbolic.Mul(symbolic.Cos(x, twoI), symbolic.Cos(x, j.Linear()))
	assert.Equal(t, `\cos{\left(2 i x \right)} \cos{\left(j x \right)}`, e.LaTeX())
	assert.Equal(t, "cos(2*i*x)*cos(j*x)", e.String())

	v, err := symbolic.DefiniteIntegral(e, symbolic.Int(0), symbolic.PiTimes(2, 1))
	require.NoError(t, err)
	assert.Equal(t, "pi*KroneckerDelta(2*i, j)", v.String())
	assert.Equal(t, `\pi \delta_{2 i j}`, v.LaTeX())
	assert.NotContains(t, v.LaTeX(), "*")

	diff := symbolic.Delta(twoI.Sub(j.Linear().Scale(3)).Add(symbolic.Lin(-1)))
	assert.Equal(t, "KroneckerDelta(2*i, 3*j + 1)", diff.String())
	assert.Equal(t, `\delta_{2 i 3 j + 1}`, diff.LaTeX())
	assert.Equal(t, "3 j + 1", j.Linear().Scale(3).Add(symbolic.Lin(1)).LaTeX())
}

func TestDefiniteIntegral_EvalDelta(t *testing.T) {
	t.Parallel()
	e := symbolic.Mul(symbolic.Sin(x, i.Linear()), symbolic.Sin(x, j.Linear()))
	v, err := symbolic.DefiniteIntegral(e, symbolic.Int(0), symbolic.PiTimes(2, 1))
	require.NoError(t, err)

	same, err := v.Eval(symbolic.Bindings{"i": 3, "j": 3})
	require.NoError(t, err)
	assert.True(t, same.Equal(symbolic.Pi()))

	other, err := v.Eval(symbolic.Bindings{"i": 2, "j": 3})
	require.NoError(t, err)
	assert.True(t, other.IsZero())

	_, err = v.Float64()
	assert.ErrorIs(t, err, symbolic.ErrUnboundSymbol)

	_, err = v.Eval(symbolic.Bindings{"i": 0, "j": 0})
	assert.ErrorIs(t, err, symbolic.ErrAssumption)

	assert.True(t, v.Equal(symbolic.Delta(i.Linear().Sub(j.Linear())).Scale(symbolic.Pi())))
	assert.True(t, v.Equal(symbolic.Delta(j.Linear().Sub(i.Linear())).Scale(symbolic.Pi())))
}

func TestDefiniteIntegral_TripleCosine(t *testing.T) {
	t.Parallel()
	e := symbolic.Mul(symbolic.Cos(x, i.Linear()), symbolic.Cos(x, j.Linear()), symbolic.Cos(x, k.Linear()))
	v, err := symbolic.DefiniteIntegral(e, symbolic.Int(0), symbolic.PiTimes(2, 1))
	require.NoError(t, err)

	got, err := v.Eval(symbolic.Bindings{"i": 1, "j": 2, "k": 3})
	require.NoError(t, err)
	assert.True(t, got.Equal(symbolic.PiTimes(1, 2)), "got %s", got)

	got, err = v.Eval(symbolic.Bindings{"i": 1, "j": 2, "k": 4})
	require.NoError(t, err)
	assert.True(t, got.IsZero(), "got %s", got)
}

func TestDefiniteIntegral_HalfInterval(t *testing.T) {
	t.Parallel()
	lower, upper := symbolic.Pi(), symbolic.PiTimes(2, 1)
	sines := []string{"0", "-2", "0", "-2/3", "0", "-2/5"}
	cosines := []string{"pi", "0", "0", "0", "0", "0"}
	for n := range sines {
		freq := symbolic.Lin(int64(n))
		a, err := symbolic.DefiniteIntegral(symbolic.Sin(x, freq), lower, upper)
		require.NoError(t, err)
		assert.Equal(t, sines[n], a.String(), "a_%d", n)

		b, err := symbolic.DefiniteIntegral(symbolic.Cos(x, freq), lower, upper)
		require.NoError(t, err)
		assert.Equal(t, cosines[n], b.String(), "b_%d", n)

		s, ok := b.Scalar()
		require.True(t, ok)
		f, err := b.Float64()
		require.NoError(t, err)
		assert.Equal(t, s.Float64(), f)
	}
}

func TestDefiniteIntegral_QuarterBounds(t *testing.T) {
	t.Parallel()
	v, err := symbolic.DefiniteIntegral(symbolic.Cos(x, symbolic.Lin(1)), symbolic.Int(0), symbolic.PiTimes(1, 2))
	require.NoError(t, err)
	assert.Equal(t, "1", v.String())

	v, err = symbolic.DefiniteIntegral(symbolic.Sin(x, symbolic.Lin(1)), symbolic.PiTimes(-1, 2), symbolic.Int(0))
	require.NoError(t, err)
	assert.Equal(t, "-1", v.String())

	v, err = symbolic.DefiniteIntegral(symbolic.Const(x, symbolic.Rat(1, 2)), symbolic.Int(0), symbolic.PiTimes(3, 1))
	require.NoError(t, err)
	assert.Equal(t, "3*pi/2", v.String())
}

func TestDefiniteIntegral_Errors(t *testing.T) {
	t.Parallel()
	w := symbolic.NewSymbol("w", symbolic.Real)

	tests := []struct {
		name         string
		expr         symbolic.Expr
		lower, upper symbolic.Scalar
		want         error
	}{
		{"third of pi", symbolic.Sin(x, symbolic.Lin(1)), symbolic.Int(0), symbolic.PiTimes(1, 3), symbolic.ErrNonElementary},
		{"non-pi bound", symbolic.Sin(x, symbolic.Lin(1)), symbolic.Int(0), symbolic.Int(1), symbolic.ErrUnsupportedBound},
		{"real frequency", symbolic.Cos(x, w.Linear()), symbolic.Int(0), symbolic.PiTimes(2, 1), symbolic.ErrNonElementary},
		{"mixed parity", symbolic.Sin(x, i.Linear()), symbolic.Int(0), symbolic.Pi(), symbolic.ErrNonElementary},
		{"symbolic half bound", symbolic.Cos(x, i.Linear()), symbolic.Int(0), symbolic.PiTimes(1, 2), symbolic.ErrNonElementary},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := symbolic.DefiniteIntegral(tt.expr, tt.lower, tt.upper)
			require.ErrorIs(t, err, tt.want)

			var ierr *symbolic.IntegrationError
			require.True(t, errors.As(err, &ierr))
			assert.Equal(t, tt.expr.String(), ierr.Integrand)
		})
	}
}

func TestDefiniteIntegral_SymbolicCosineHalfTurn(t *testing.T) {
	t.Parallel()
	v, err := symbolic.DefiniteIntegral(symbolic.Cos(x, i.Linear()), symbolic.Int(0), symbolic.Pi())
	require.NoError(t, err)
	assert.True(t, v.IsZero())
}
