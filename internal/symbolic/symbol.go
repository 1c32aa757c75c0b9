package symbolic

import (
	"fmt"
	"sort"
	"strconv"
)

// Assumption is a property a symbol is known to satisfy.
type Assumption uint8

const (
	Real Assumption = 1 << iota
	Integer
	Positive
)

type Symbol struct {
	name        string
	assumptions Assumption
}

// NewSymbol returns a symbol; Integer and Positive imply Real.
func NewSymbol(name string, assumptions ...Assumption) Symbol {
	var a Assumption
	for _, x := range assumptions {
		a |= x
	}
	if a&(Integer|Positive) != 0 {
		a |= Real
	}
	return Symbol{name: name, assumptions: a}
}

func (s Symbol) Name() string   { return s.name }
func (s Symbol) String() string { return s.name }

// Has reports whether every assumption in a holds for s.
func (s Symbol) Has(a Assumption) bool {
	return s.assumptions&a == a
}

// Linear returns the form 1·s.
func (s Symbol) Linear() Linear {
	return Linear{terms: []linearTerm{{sym: s, coeff: 1}}}
}

// Bindings assigns integer values to symbols by name.
type Bindings map[string]int64

// Check validates b[s] against the assumptions of s.
func (b Bindings) Check(s Symbol) (int64, error) {
	v, ok := b[s.name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnboundSymbol, s.name)
	}
	if s.Has(Positive) && v <= 0 {
		return 0, fmt.Errorf("%w: %s = %d is not positive", ErrAssumption, s.name, v)
	}
	return v, nil
}

type linearTerm struct {
	sym   Symbol
	coeff int64
}

// Linear is an integer linear form c + Σ cᵢ·sᵢ. The zero value is 0.
type Linear struct {
	constant int64
	// sorted by symbol name, no zero coefficients
	terms []linearTerm
}

// Lin returns the constant form c.
func Lin(c int64) Linear {
	return Linear{constant: c}
}

func (l Linear) Const() int64  { return l.constant }
func (l Linear) IsConst() bool { return len(l.terms) == 0 }
func (l Linear) IsZero() bool  { return l.constant == 0 && len(l.terms) == 0 }

func (l Linear) Add(o Linear) Linear {
	byName := make(map[string]linearTerm, len(l.terms)+len(o.terms))
	for _, t := range l.terms {
		byName[t.sym.name] = t
	}
	for _, t := range o.terms {
		if cur, ok := byName[t.sym.name]; ok {
			cur.coeff += t.coeff
			byName[t.sym.name] = cur
		} else {
			byName[t.sym.name] = t
		}
	}
	terms := make([]linearTerm, 0, len(byName))
	for _, t := range byName {
		if t.coeff != 0 {
			terms = append(terms, t)
		}
	}
	sort.Slice(terms, func(a, b int) bool { return terms[a].sym.name < terms[b].sym.name })
	return Linear{constant: l.constant + o.constant, terms: terms}
}

func (l Linear) Scale(c int64) Linear {
	if c == 0 {
		return Linear{}
	}
	terms := make([]linearTerm, len(l.terms))
	for i, t := range l.terms {
		terms[i] = linearTerm{sym: t.sym, coeff: t.coeff * c}
	}
	return Linear{constant: l.constant * c, terms: terms}
}

func (l Linear) Neg() Linear         { return l.Scale(-1) }
func (l Linear) Sub(o Linear) Linear { return l.Add(o.Neg()) }
func (l Linear) Equal(o Linear) bool { return l.String() == o.String() }
func (l Linear) IntegerValued() bool {
	for _, t := range l.terms {
		if !t.sym.Has(Integer) {
			return false
		}
	}
	return true
}

// Sign returns the provable sign of l: 1 or -1 when l is positive or negative
// for every admissible binding, 0 when l is zero or the sign is undetermined.
func (l Linear) Sign() int {
	if l.IsConst() {
		return sign(l.constant)
	}
	bound := l.constant
	allPos, allNeg := true, true
	for _, t := range l.terms {
		if !t.sym.Has(Positive | Integer) {
			return 0
		}
		if t.coeff > 0 {
			allNeg = false
		} else {
			allPos = false
		}
		bound += t.coeff
	}
	switch {
	case allPos && bound > 0:
		return 1
	case allNeg && bound < 0:
		return -1
	}
	return 0
}

// NonZero reports whether l cannot vanish.
func (l Linear) NonZero() bool {
	return l.Sign() != 0
}

// Canonical returns ±l such that the leading coefficient is positive, and
// whether it negated l.
func (l Linear) Canonical() (Linear, bool) {
	lead := l.constant
	if len(l.terms) > 0 {
		lead = l.terms[0].coeff
	}
	if lead < 0 {
		return l.Neg(), true
	}
	return l, false
}

func (l Linear) Eval(b Bindings) (int64, error) {
	v := l.constant
	for _, t := range l.terms {
		x, err := b.Check(t.sym)
		if err != nil {
			return 0, err
		}
		v += t.coeff * x
	}
	return v, nil
}

func (l Linear) String() string {
	return l.render("*")
}

// LaTeX renders l with juxtaposition instead of "*".
func (l Linear) LaTeX() string {
	return l.render(" ")
}

func (l Linear) render(mul string) string {
	parts := make([]string, 0, len(l.terms)+1)
	for _, t := range l.terms {
		switch t.coeff {
		case 1:
			parts = append(parts, t.sym.name)
		case -1:
			parts = append(parts, "-"+t.sym.name)
		default:
			parts = append(parts, strconv.FormatInt(t.coeff, 10)+mul+t.sym.name)
		}
	}
	if l.constant != 0 || len(parts) == 0 {
		parts = append(parts, strconv.FormatInt(l.constant, 10))
	}
	return joinSigned(parts)
}

// split writes l = 0 as lhs = rhs with nonnegative coefficients on both sides.
func (l Linear) split() (lhs, rhs Linear) {
	for _, t := range l.terms {
		if t.coeff > 0 {
			lhs.terms = append(lhs.terms, t)
		} else {
			rhs.terms = append(rhs.terms, linearTerm{sym: t.sym, coeff: -t.coeff})
		}
	}
	if l.constant > 0 {
		lhs.constant = l.constant
	} else {
		rhs.constant = -l.constant
	}
	return lhs, rhs
}

func sign(v int64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
