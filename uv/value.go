package uv

import (
	"math"
)

// Value is an ordered, signed sum of Groups evaluated left to right. Each
// term after the first carries OpAdd or OpSub relative to the previous one;
// the first term carries OpNone and holds its sign in its coefficient.
type Value struct {
	terms    []*Group
	exponent float64
}

// NewValue creates a single-term value v in unit. A nil unit gives a scalar.
func NewValue(v float64, unit *Atomic) *Value {
	return &Value{terms: []*Group{NewGroup(v, unit)}, exponent: 1}
}

// NewScalar creates a dimensionless value.
func NewScalar(v float64) *Value {
	return NewValue(v, nil)
}

// FromGroups builds a value from clones of groups, keeping their tags.
func FromGroups(groups ...*Group) *Value {
	out := &Value{exponent: 1}
	for _, g := range groups {
		out.terms = append(out.terms, g.Clone())
	}
	out.normalizeHead()
	return out
}

// Clone returns a deep copy.
func (v *Value) Clone() *Value {
	c := &Value{terms: make([]*Group, len(v.terms)), exponent: v.exponent}
	for i, t := range v.terms {
		c.terms[i] = t.Clone()
	}
	return c
}

// NumTerms returns the number of terms.
func (v *Value) NumTerms() int { return len(v.terms) }

// Terms returns clones of the terms in order.
func (v *Value) Terms() []*Group {
	return v.Clone().terms
}

// Exponent returns the pending power of a multi-term value. It is 1 unless
// Pow left a fractional remainder unapplied.
func (v *Value) Exponent() float64 { return v.exponent }

// ValueAt returns the coefficient of term i as stored, or 0 out of range.
func (v *Value) ValueAt(i int) float64 {
	if i < 0 || i >= len(v.terms) {
		return 0
	}
	return v.terms[i].value
}

// Values returns every term's coefficient in order.
func (v *Value) Values() []float64 {
	out := make([]float64, len(v.terms))
	for i, t := range v.terms {
		out[i] = t.value
	}
	return out
}

// Value returns the coefficient of the first term.
func (v *Value) Value() float64 { return v.ValueAt(0) }

// SetValue replaces the coefficient of the first term. An empty value gains a
// scalar term.
func (v *Value) SetValue(f float64) {
	if len(v.terms) == 0 {
		v.terms = append(v.terms, NewGroup(f, nil))
		return
	}
	v.terms[0].value = f
}

// Unit returns the label of the first unit of the first term, or "".
func (v *Value) Unit() string {
	if len(v.terms) == 0 {
		return ""
	}
	units := v.terms[0].Units()
	if len(units) == 0 {
		return ""
	}
	return units[0].Label()
}

// Mul distributes v over other: every term of v times every term of other.
func (v *Value) Mul(other *Value) *Value {
	return v.distribute(other, (*Group).Mul)
}

// Div divides every term of v by every term of other.
func (v *Value) Div(other *Value) *Value {
	return v.distribute(other, (*Group).Div)
}

func (v *Value) distribute(other *Value, op func(*Group, *Group) *Group) *Value {
	out := &Value{terms: make([]*Group, 0, len(v.terms)*len(other.terms)), exponent: 1}
	for _, a := range v.terms {
		for _, b := range other.terms {
			p := op(a, b)
			s := a.op.sign() * b.op.sign()
			if len(out.terms) == 0 {
				p.value *= s
				p.op = OpNone
			} else if s < 0 {
				p.op = OpSub
			} else {
				p.op = OpAdd
			}
			out.terms = append(out.terms, p)
		}
	}
	return out
}

// Scale multiplies every term by a plain number.
func (v *Value) Scale(f float64) *Value {
	c := v.Clone()
	for _, t := range c.terms {
		t.value *= f
	}
	return c
}

// DivScalar divides every term by a plain number.
func (v *Value) DivScalar(f float64) *Value {
	c := v.Clone()
	for _, t := range c.terms {
		t.value /= f
	}
	return c
}

// Add returns v + other. Terms of other with a signature already present in v
// are converted and combined into that term; the rest are appended. With
// simplify, terms that sum to exactly zero are dropped.
func (v *Value) Add(other *Value, simplify ...bool) *Value {
	return v.sum(1, other, len(simplify) > 0 && simplify[0])
}

// Sub returns v - other. See Add.
func (v *Value) Sub(other *Value, simplify ...bool) *Value {
	return v.sum(-1, other, len(simplify) > 0 && simplify[0])
}

func (v *Value) sum(sign float64, other *Value, simplify bool) *Value {
	out := v.Clone()
	combined := make(map[*Group]bool)
	for _, t := range other.terms {
		s := sign * t.op.sign()

		if i := out.match(t); i >= 0 {
			r := out.terms[i]
			combine := (*Group).Add
			if s*r.op.sign() < 0 {
				combine = (*Group).Sub
			}
			if g, ok := combine(r, t); ok {
				out.terms[i] = g
				combined[g] = true
			}
			continue
		}

		c := t.Clone()
		switch {
		case len(out.terms) == 0:
			c.value *= s
			c.op = OpNone
		case s < 0:
			c.op = OpSub
		default:
			c.op = OpAdd
		}
		out.terms = append(out.terms, c)
	}

	if simplify {
		kept := out.terms[:0]
		for _, t := range out.terms {
			if t.value != 0 || !combined[t] {
				kept = append(kept, t)
			}
		}
		out.terms = kept
		out.normalizeHead()
	}
	return out
}

// match returns the index of the first term with g's signature, or -1.
func (v *Value) match(g *Group) int {
	for i, t := range v.terms {
		if t.Equal(g) {
			return i
		}
	}
	return -1
}

// normalizeHead folds the first term's tag into its coefficient.
func (v *Value) normalizeHead() {
	if len(v.terms) == 0 {
		return
	}
	h := v.terms[0]
	h.value *= h.op.sign()
	h.op = OpNone
}

// MaxPowTerms bounds the number of terms Pow expands a sum into.
const MaxPowTerms = 4096

// Pow raises v to e. A single term delegates to Group.Pow. A sum is expanded
// by repeated multiplication for the integer part of e; a fractional
// remainder is recorded in Exponent but not applied. A sum whose expansion
// would exceed MaxPowTerms terms is not expanded and carries e in Exponent.
func (v *Value) Pow(e float64) *Value {
	switch {
	case e == 0:
		return NewScalar(1)
	case len(v.terms) == 0:
		return v.Clone()
	case len(v.terms) == 1:
		g := v.terms[0].Pow(e)
		g.op = OpNone
		return &Value{terms: []*Group{g}, exponent: 1}
	}

	n := math.Trunc(e)
	frac := e - n
	if n < 1 || math.Pow(float64(len(v.terms)), n) > MaxPowTerms {
		c := v.Clone()
		c.exponent = e
		return c
	}

	base := v.Clone()
	base.exponent = 1
	out := base.Clone()
	for i := 1; i < int(n); i++ {
		out = out.Mul(base)
	}
	if frac != 0 {
		out.exponent = frac
	}
	return out
}

// RoundTo rounds every term to digits significant figures. Zero digits
// leaves the value unchanged.
func (v *Value) RoundTo(digits uint) *Value {
	c := v.Clone()
	if digits == 0 {
		return c
	}
	for i, t := range c.terms {
		c.terms[i] = t.RoundTo(digits)
	}
	return c
}

// In re-expresses every term in label where its units allow.
func (v *Value) In(label string) *Value {
	c := v.Clone()
	for i, t := range c.terms {
		c.terms[i] = t.In(label)
	}
	return c
}

// InDimension re-expresses only units of dimension d. It reports whether any
// term was converted.
func (v *Value) InDimension(d *Dimension, label string) (*Value, bool) {
	c := v.Clone()
	converted := false
	for i, t := range c.terms {
		if g, ok := t.InDimension(d, label); ok {
			c.terms[i] = g
			converted = true
		}
	}
	return c, converted
}

// Equal reports whether both values hold the same terms, compared by
// signature and signed coefficient, in any order.
func (v *Value) Equal(other *Value) bool {
	if len(v.terms) != len(other.terms) {
		return false
	}
	used := make([]bool, len(other.terms))
	for _, a := range v.terms {
		found := false
		for j, b := range other.terms {
			if used[j] || !a.Equal(b) {
				continue
			}
			if a.value*a.op.sign() != b.value*b.op.sign() {
				continue
			}
			used[j] = true
			found = true
			break
		}
		if !found {
			return false
		}
	}
	return true
}
