package symbolic

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// Scalar is an exact polynomial in π with rational coefficients.
// The zero value is 0.
type Scalar struct {
	// coeffs[p] multiplies π^p; no trailing zeros.
	coeffs []*big.Rat
}

// Rat returns the rational p/q. It panics if q is zero.
func Rat(p, q int64) Scalar {
	if q == 0 {
		panic("symbolic: denominator is zero")
	}
	return fromRat(big.NewRat(p, q), 0)
}

// Int returns the integer n.
func Int(n int64) Scalar {
	return fromRat(new(big.Rat).SetInt64(n), 0)
}

// Pi returns π.
func Pi() Scalar {
	return fromRat(big.NewRat(1, 1), 1)
}

// PiTimes returns (p/q)·π.
func PiTimes(p, q int64) Scalar {
	if q == 0 {
		panic("symbolic: denominator is zero")
	}
	return fromRat(big.NewRat(p, q), 1)
}

func fromRat(r *big.Rat, power int) Scalar {
	coeffs := make([]*big.Rat, power+1)
	for i := range coeffs {
		coeffs[i] = new(big.Rat)
	}
	coeffs[power].Set(r)
	return Scalar{coeffs: coeffs}.trim()
}

func (s Scalar) trim() Scalar {
	n := len(s.coeffs)
	for n > 0 && s.coeffs[n-1].Sign() == 0 {
		n--
	}
	if n == 0 {
		return Scalar{}
	}
	return Scalar{coeffs: s.coeffs[:n]}
}

// Coeff returns a copy of the coefficient of π^power.
func (s Scalar) Coeff(power int) *big.Rat {
	if power < 0 || power >= len(s.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(s.coeffs[power])
}

// Degree returns the highest power of π, or -1 for zero.
func (s Scalar) Degree() int {
	return len(s.coeffs) - 1
}

func (s Scalar) IsZero() bool {
	return len(s.coeffs) == 0
}

func (s Scalar) Equal(o Scalar) bool {
	if len(s.coeffs) != len(o.coeffs) {
		return false
	}
	for i := range s.coeffs {
		if s.coeffs[i].Cmp(o.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

func (s Scalar) Add(o Scalar) Scalar {
	n := len(s.coeffs)
	if len(o.coeffs) > n {
		n = len(o.coeffs)
	}
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat).Add(s.Coeff(i), o.Coeff(i))
	}
	return Scalar{coeffs: out}.trim()
}

func (s Scalar) Neg() Scalar {
	out := make([]*big.Rat, len(s.coeffs))
	for i, c := range s.coeffs {
		out[i] = new(big.Rat).Neg(c)
	}
	return Scalar{coeffs: out}
}

func (s Scalar) Sub(o Scalar) Scalar {
	return s.Add(o.Neg())
}

func (s Scalar) Mul(o Scalar) Scalar {
	if s.IsZero() || o.IsZero() {
		return Scalar{}
	}
	out := make([]*big.Rat, len(s.coeffs)+len(o.coeffs)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	for i, a := range s.coeffs {
		for j, b := range o.coeffs {
			out[i+j].Add(out[i+j], new(big.Rat).Mul(a, b))
		}
	}
	return Scalar{coeffs: out}.trim()
}

// MulRat scales s by the rational r.
func (s Scalar) MulRat(r *big.Rat) Scalar {
	return s.Mul(fromRat(r, 0))
}

// PiMultiple reports whether s equals r·π for some rational r and returns r.
func (s Scalar) PiMultiple() (*big.Rat, bool) {
	switch {
	case s.IsZero():
		return new(big.Rat), true
	case len(s.coeffs) == 2 && s.coeffs[0].Sign() == 0:
		return new(big.Rat).Set(s.coeffs[1]), true
	}
	return nil, false
}

// Float64 returns the nearest float64 value.
func (s Scalar) Float64() float64 {
	sum := 0.0
	for p := len(s.coeffs) - 1; p >= 0; p-- {
		c, _ := s.coeffs[p].Float64()
		sum = sum*math.Pi + c
	}
	return sum
}

func (s Scalar) String() string {
	return s.render(plainTerm)
}

func (s Scalar) LaTeX() string {
	return s.render(latexTerm)
}

func (s Scalar) render(term func(r *big.Rat, power int) string) string {
	if s.IsZero() {
		return "0"
	}
	parts := make([]string, 0, len(s.coeffs))
	for p, c := range s.coeffs {
		if c.Sign() == 0 {
			continue
		}
		parts = append(parts, term(c, p))
	}
	return joinSigned(parts)
}

// isSum reports whether the rendering of s has more than one term.
func (s Scalar) isSum() bool {
	n := 0
	for _, c := range s.coeffs {
		if c.Sign() != 0 {
			n++
		}
	}
	return n > 1
}

func plainTerm(r *big.Rat, power int) string {
	if power == 0 {
		return r.RatString()
	}
	pi := "pi"
	if power > 1 {
		pi = fmt.Sprintf("pi**%d", power)
	}
	num, den := r.Num(), r.Denom()
	sign := ""
	if num.Sign() < 0 {
		sign = "-"
		num = new(big.Int).Neg(num)
	}
	out := pi
	if !num.IsInt64() || num.Int64() != 1 {
		out = num.String() + "*" + pi
	}
	if !den.IsInt64() || den.Int64() != 1 {
		out += "/" + den.String()
	}
	return sign + out
}

func latexTerm(r *big.Rat, power int) string {
	num, den := r.Num(), r.Denom()
	sign := ""
	if num.Sign() < 0 {
		sign = "-"
		num = new(big.Int).Neg(num)
	}
	pi := ""
	switch {
	case power == 1:
		pi = `\pi`
	case power > 1:
		pi = fmt.Sprintf(`\pi^{%d}`, power)
	}
	top := num.String()
	if pi != "" {
		if num.IsInt64() && num.Int64() == 1 {
			top = pi
		} else {
			top += " " + pi
		}
	}
	if den.IsInt64() && den.Int64() == 1 {
		return sign + top
	}
	return fmt.Sprintf(`%s\frac{%s}{%s}`, sign, top, den.String())
}

// joinSigned joins rendered terms with " + " or " - " depending on each term's sign.
func joinSigned(parts []string) string {
	if len(parts) == 0 {
		return "0"
	}
	var sb strings.Builder
	sb.WriteString(parts[0])
	for _, p := range parts[1:] {
		if strings.HasPrefix(p, "-") {
			sb.WriteString(" - ")
			sb.WriteString(p[1:])
		} else {
			sb.WriteString(" + ")
			sb.WriteString(p)
		}
	}
	return sb.String()
}
