package symbolic

import (
	"fmt"
	"math"
	"math/big"
	"sort"
	"strings"
)

type Kind uint8

const (
	KindSin Kind = iota
	KindCos
)

func (k Kind) String() string {
	if k == KindSin {
		return "sin"
	}
	return "cos"
}

// Factor is sin(Freq·x) or cos(Freq·x).
type Factor struct {
	Kind Kind
	Freq Linear
}

func (f Factor) render(v Symbol, latex bool) string {
	freq := f.Freq.String()
	if latex {
		freq = f.Freq.LaTeX()
	}
	arg := v.name
	switch {
	case f.Freq.IsConst() && f.Freq.Const() == 1:
	case f.Freq.IsConst() || len(f.Freq.terms) == 1 && f.Freq.constant == 0:
		sep := "*"
		if latex {
			sep = " "
		}
		arg = freq + sep + v.name
	default:
		arg = "(" + freq + ")" + "*" + v.name
		if latex {
			arg = `\left(` + freq + `\right) ` + v.name
		}
	}
	if latex {
		return fmt.Sprintf(`\%s{\left(%s \right)}`, f.Kind, arg)
	}
	return fmt.Sprintf("%s(%s)", f.Kind, arg)
}

// Term is Coeff · Π Factors.
type Term struct {
	Coeff   Scalar
	Factors []Factor
}

// Expr is a trigonometric polynomial in a single variable.
type Expr struct {
	v     Symbol
	terms []Term
}

// Const returns the constant expression c in the variable v.
func Const(v Symbol, c Scalar) Expr {
	return Expr{v: v}.addTerm(Term{Coeff: c})
}

// Sin returns sin(freq·v).
func Sin(v Symbol, freq Linear) Expr {
	return Expr{v: v}.addTerm(Term{Coeff: Int(1), Factors: []Factor{{Kind: KindSin, Freq: freq}}})
}

// Cos returns cos(freq·v).
func Cos(v Symbol, freq Linear) Expr {
	return Expr{v: v}.addTerm(Term{Coeff: Int(1), Factors: []Factor{{Kind: KindCos, Freq: freq}}})
}

// Add returns the sum of es. It panics if the expressions use different variables.
func Add(es ...Expr) Expr {
	if len(es) == 0 {
		return Expr{}
	}
	out := Expr{v: es[0].v}
	for _, e := range es {
		mustShareVar(out, e)
		for _, t := range e.terms {
			out = out.addTerm(t)
		}
	}
	return out
}

// Mul returns the product of es, distributing over sums. It panics if the
// expressions use different variables.
func Mul(es ...Expr) Expr {
	if len(es) == 0 {
		return Expr{}
	}
	out := es[0]
	for _, e := range es[1:] {
		mustShareVar(out, e)
		prod := Expr{v: out.v}
		for _, a := range out.terms {
			for _, b := range e.terms {
				factors := make([]Factor, 0, len(a.Factors)+len(b.Factors))
				factors = append(factors, a.Factors...)
				factors = append(factors, b.Factors...)
				prod = prod.addTerm(Term{Coeff: a.Coeff.Mul(b.Coeff), Factors: factors})
			}
		}
		out = prod
	}
	return out
}

func mustShareVar(a, b Expr) {
	if a.v.name != b.v.name {
		panic(fmt.Sprintf("symbolic: mixed variables %q and %q", a.v.name, b.v.name))
	}
}

// Scale multiplies every coefficient of e by c.
func (e Expr) Scale(c Scalar) Expr {
	out := Expr{v: e.v}
	for _, t := range e.terms {
		out = out.addTerm(Term{Coeff: t.Coeff.Mul(c), Factors: t.Factors})
	}
	return out
}

func (e Expr) Terms() []Term { return e.terms }
func (e Expr) IsZero() bool  { return len(e.terms) == 0 }

// addTerm normalizes t and merges it into e. Zero frequencies are folded
// (sin(0)=0, cos(0)=1) and frequencies are made canonical using parity.
func (e Expr) addTerm(t Term) Expr {
	coeff := t.Coeff
	factors := make([]Factor, 0, len(t.Factors))
	for _, f := range t.Factors {
		if f.Freq.IsZero() {
			if f.Kind == KindSin {
				return e
			}
			continue
		}
		freq, negated := f.Freq.Canonical()
		if negated && f.Kind == KindSin {
			coeff = coeff.Neg()
		}
		factors = append(factors, Factor{Kind: f.Kind, Freq: freq})
	}
	if coeff.IsZero() {
		return e
	}
	key := termKey(factors)
	terms := make([]Term, 0, len(e.terms)+1)
	merged := false
	for _, cur := range e.terms {
		if !merged && termKey(cur.Factors) == key {
			merged = true
			sum := cur.Coeff.Add(coeff)
			if !sum.IsZero() {
				terms = append(terms, Term{Coeff: sum, Factors: cur.Factors})
			}
			continue
		}
		terms = append(terms, cur)
	}
	if !merged {
		terms = append(terms, Term{Coeff: coeff, Factors: factors})
	}
	return Expr{v: e.v, terms: terms}
}

// termKey identifies a product of factors independent of factor order.
func termKey(factors []Factor) string {
	keys := make([]string, len(factors))
	for i, f := range factors {
		keys[i] = f.Kind.String() + "(" + f.Freq.String() + ")"
	}
	sort.Strings(keys)
	return strings.Join(keys, "*")
}

// Linearize rewrites e with the product-to-sum identities so that every term
// has at most one factor.
func (e Expr) Linearize() Expr {
	out := Expr{v: e.v}
	pending := append([]Term(nil), e.terms...)
	half := big.NewRat(1, 2)
	for len(pending) > 0 {
		t := pending[len(pending)-1]
		pending = pending[:len(pending)-1]
		if len(t.Factors) <= 1 {
			out = out.addTerm(t)
			continue
		}
		a, b, rest := t.Factors[0], t.Factors[1], t.Factors[2:]
		sum, diff := a.Freq.Add(b.Freq), a.Freq.Sub(b.Freq)
		c := t.Coeff.MulRat(half)
		var products [2]Term
		switch {
		case a.Kind == KindSin && b.Kind == KindSin:
			// sin A sin B = ½cos(A-B) - ½cos(A+B)
			products[0] = Term{Coeff: c, Factors: []Factor{{KindCos, diff}}}
			products[1] = Term{Coeff: c.Neg(), Factors: []Factor{{KindCos, sum}}}
		case a.Kind == KindCos && b.Kind == KindCos:
			// cos A cos B = ½cos(A-B) + ½cos(A+B)
			products[0] = Term{Coeff: c, Factors: []Factor{{KindCos, diff}}}
			products[1] = Term{Coeff: c, Factors: []Factor{{KindCos, sum}}}
		case a.Kind == KindSin:
			// sin A cos B = ½sin(A+B) + ½sin(A-B)
			products[0] = Term{Coeff: c, Factors: []Factor{{KindSin, sum}}}
			products[1] = Term{Coeff: c, Factors: []Factor{{KindSin, diff}}}
		default:
			// cos A sin B = ½sin(A+B) - ½sin(A-B)
			products[0] = Term{Coeff: c, Factors: []Factor{{KindSin, sum}}}
			products[1] = Term{Coeff: c.Neg(), Factors: []Factor{{KindSin, diff}}}
		}
		for _, p := range products {
			p.Factors = append(p.Factors, rest...)
			pending = append(pending, p)
		}
	}
	return out
}

// Eval evaluates e numerically at x with integer symbols taken from b.
func (e Expr) Eval(x float64, b Bindings) (float64, error) {
	sum := 0.0
	for _, t := range e.terms {
		v := t.Coeff.Float64()
		for _, f := range t.Factors {
			k, err := f.Freq.Eval(b)
			if err != nil {
				return 0, err
			}
			if f.Kind == KindSin {
				v *= math.Sin(float64(k) * x)
			} else {
				v *= math.Cos(float64(k) * x)
			}
		}
		sum += v
	}
	return sum, nil
}

func (e Expr) String() string {
	return e.render(false)
}

func (e Expr) LaTeX() string {
	return e.render(true)
}

func (e Expr) render(latex bool) string {
	parts := make([]string, 0, len(e.terms))
	for _, t := range e.terms {
		factors := make([]string, 0, len(t.Factors)+1)
		for _, f := range t.Factors {
			factors = append(factors, f.render(e.v, latex))
		}
		coeff := t.Coeff.String()
		if latex {
			coeff = t.Coeff.LaTeX()
		}
		if t.Coeff.isSum() {
			coeff = "(" + coeff + ")"
		}
		sep := "*"
		if latex {
			sep = " "
		}
		switch {
		case len(factors) == 0:
			parts = append(parts, coeff)
		case coeff == "1":
			parts = append(parts, strings.Join(factors, sep))
		case coeff == "-1":
			parts = append(parts, "-"+strings.Join(factors, sep))
		default:
			parts = append(parts, coeff+sep+strings.Join(factors, sep))
		}
	}
	return joinSigned(parts)
}
