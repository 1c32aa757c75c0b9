package symbolic

import (
	"fmt"
	"sort"
	"strings"
)

// Piece is Coeff guarded by Kronecker deltas: it contributes Coeff when every
// form in When vanishes and 0 otherwise.
type Piece struct {
	Coeff Scalar
	When  []Linear
}

func (p Piece) key() string {
	keys := make([]string, len(p.When))
	for i, l := range p.When {
		keys[i] = l.String()
	}
	return strings.Join(keys, ",")
}

// Value is an exact definite-integral result.
type Value struct {
	pieces []Piece
}

// Constant returns the unconditional value s.
func Constant(s Scalar) Value {
	return newValue([]Piece{{Coeff: s}})
}

// Delta returns δ(l = 0). KroneckerDelta(i, j) is Delta(i - j).
func Delta(l Linear) Value {
	return newValue([]Piece{{Coeff: Int(1), When: []Linear{l}}})
}

func newValue(pieces []Piece) Value {
	merged := map[string]Piece{}
	for _, p := range pieces {
		if p.Coeff.IsZero() {
			continue
		}
		when, ok := simplifyConditions(p.When)
		if !ok {
			continue
		}
		np := Piece{Coeff: p.Coeff, When: when}
		k := np.key()
		if cur, seen := merged[k]; seen {
			cur.Coeff = cur.Coeff.Add(np.Coeff)
			merged[k] = cur
		} else {
			merged[k] = np
		}
	}
	out := make([]Piece, 0, len(merged))
	for _, p := range merged {
		if !p.Coeff.IsZero() {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].key() < out[b].key() })
	return Value{pieces: out}
}

// simplifyConditions canonicalizes and dedupes conditions. It drops forms that
// are identically zero and reports false if some form can never vanish.
func simplifyConditions(when []Linear) ([]Linear, bool) {
	seen := map[string]bool{}
	out := make([]Linear, 0, len(when))
	for _, l := range when {
		if l.IsZero() {
			continue
		}
		if l.NonZero() {
			return nil, false
		}
		c, _ := l.Canonical()
		if seen[c.String()] {
			continue
		}
		seen[c.String()] = true
		out = append(out, c)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].String() < out[b].String() })
	return out, true
}

func (v Value) IsZero() bool { return len(v.pieces) == 0 }

func (v Value) Add(o Value) Value {
	pieces := make([]Piece, 0, len(v.pieces)+len(o.pieces))
	pieces = append(pieces, v.pieces...)
	pieces = append(pieces, o.pieces...)
	return newValue(pieces)
}

func (v Value) Scale(s Scalar) Value {
	pieces := make([]Piece, len(v.pieces))
	for i, p := range v.pieces {
		pieces[i] = Piece{Coeff: p.Coeff.Mul(s), When: p.When}
	}
	return newValue(pieces)
}

// Scalar returns the value when it carries no conditions.
func (v Value) Scalar() (Scalar, bool) {
	switch {
	case len(v.pieces) == 0:
		return Scalar{}, true
	case len(v.pieces) == 1 && len(v.pieces[0].When) == 0:
		return v.pieces[0].Coeff, true
	}
	return Scalar{}, false
}

func (v Value) Equal(o Value) bool {
	if len(v.pieces) != len(o.pieces) {
		return false
	}
	for i := range v.pieces {
		if v.pieces[i].key() != o.pieces[i].key() || !v.pieces[i].Coeff.Equal(o.pieces[i].Coeff) {
			return false
		}
	}
	return true
}

// Eval resolves every delta with the bindings in b.
func (v Value) Eval(b Bindings) (Scalar, error) {
	var sum Scalar
	for _, p := range v.pieces {
		active := true
		for _, l := range p.When {
			x, err := l.Eval(b)
			if err != nil {
				return Scalar{}, err
			}
			if x != 0 {
				active = false
			}
		}
		if active {
			sum = sum.Add(p.Coeff)
		}
	}
	return sum, nil
}

// Float64 evaluates an unconditional value.
func (v Value) Float64() (float64, error) {
	s, err := v.Eval(nil)
	if err != nil {
		return 0, err
	}
	return s.Float64(), nil
}

func (v Value) String() string {
	parts := make([]string, 0, len(v.pieces))
	for _, p := range v.pieces {
		deltas := make([]string, len(p.When))
		for i, l := range p.When {
			lhs, rhs := l.split()
			deltas[i] = fmt.Sprintf("KroneckerDelta(%s, %s)", lhs.String(), rhs.String())
		}
		parts = append(parts, guarded(p.Coeff, p.Coeff.String(), deltas, "*"))
	}
	return joinSigned(parts)
}

func (v Value) LaTeX() string {
	parts := make([]string, 0, len(v.pieces))
	for _, p := range v.pieces {
		deltas := make([]string, len(p.When))
		for i, l := range p.When {
			lhs, rhs := l.split()
			deltas[i] = fmt.Sprintf(`\delta_{%s %s}`, lhs.LaTeX(), rhs.LaTeX())
		}
		parts = append(parts, guarded(p.Coeff, p.Coeff.LaTeX(), deltas, " "))
	}
	return joinSigned(parts)
}

func guarded(c Scalar, rendered string, deltas []string, sep string) string {
	if len(deltas) == 0 {
		return rendered
	}
	d := strings.Join(deltas, sep)
	switch {
	case rendered == "1":
		return d
	case rendered == "-1":
		return "-" + d
	case c.isSum():
		return "(" + rendered + ")" + sep + d
	}
	return rendered + sep + d
}
