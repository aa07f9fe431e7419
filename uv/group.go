package uv

import (
	"math"
	"sort"
	"strings"

	"github.com/teranos/uval/logger"
)

// Op tags a term's relation to the previous term of a sum.
type Op byte

const (
	OpNone Op = 0
	OpAdd  Op = '+'
	OpSub  Op = '-'
	OpMul  Op = '*'
	OpDiv  Op = '/'
)

func (o Op) String() string {
	if o == OpNone {
		return ""
	}
	return string(o)
}

// sign is the factor a sum term's tag applies to its value.
func (o Op) sign() float64 {
	if o == OpSub {
		return -1
	}
	return 1
}

// flip swaps a sum tag between + and -.
func (o Op) flip() Op {
	if o == OpSub {
		return OpAdd
	}
	return OpSub
}

// Group is a monomial: a scalar coefficient times a product of Atomics, at
// most one per dimension. The op tag is only meaningful inside a Value.
type Group struct {
	value float64
	op    Op
	units map[string]*Atomic
}

// NewGroup creates a group holding v and, when unit is non-nil, a clone of
// unit.
func NewGroup(v float64, unit *Atomic) *Group {
	g := &Group{value: v, units: make(map[string]*Atomic)}
	if unit != nil {
		g.units[unit.Key()] = unit.Clone()
	}
	return g
}

// Value returns the scalar coefficient.
func (g *Group) Value() float64 { return g.value }

// SetValue replaces the scalar coefficient.
func (g *Group) SetValue(v float64) { g.value = v }

// Op returns the term tag.
func (g *Group) Op() Op { return g.op }

// SetOp replaces the term tag.
func (g *Group) SetOp(op Op) { g.op = op }

// IsScalar reports whether the group carries no units.
func (g *Group) IsScalar() bool { return len(g.units) == 0 }

// Len returns the number of dimensions in the group.
func (g *Group) Len() int { return len(g.units) }

// Units returns clones of the group's units ordered by dimension name.
func (g *Group) Units() []*Atomic {
	out := make([]*Atomic, 0, len(g.units))
	for _, k := range g.sortedKeys() {
		out = append(out, g.units[k].Clone())
	}
	return out
}

// Unit returns a clone of the unit for dimension d, or nil.
func (g *Group) Unit(d *Dimension) *Atomic {
	if a, ok := g.units[d.Key()]; ok {
		return a.Clone()
	}
	return nil
}

func (g *Group) sortedKeys() []string {
	keys := make([]string, 0, len(g.units))
	for k := range g.units {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, nj := g.units[keys[i]].dim.Name(), g.units[keys[j]].dim.Name()
		if ni != nj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Clone returns a deep copy. No Atomic is shared with the original.
func (g *Group) Clone() *Group {
	c := &Group{value: g.value, op: g.op, units: make(map[string]*Atomic, len(g.units))}
	for k, a := range g.units {
		c.units[k] = a.Clone()
	}
	return c
}

// Equal reports whether both groups carry the same dimensions with the same
// exponents. The coefficient is ignored.
func (g *Group) Equal(other *Group) bool {
	if len(g.units) != len(other.units) {
		return false
	}
	for k, a := range g.units {
		b, ok := other.units[k]
		if !ok || !a.Equal(b) {
			return false
		}
	}
	return true
}

// Mul returns g * other.
func (g *Group) Mul(other *Group) *Group {
	c := g.Clone()
	c.foldIn(OpMul, other)
	return c
}

// Div returns g / other.
func (g *Group) Div(other *Group) *Group {
	c := g.Clone()
	c.foldIn(OpDiv, other)
	return c
}

// Scale multiplies the coefficient by a plain number.
func (g *Group) Scale(f float64) *Group {
	c := g.Clone()
	c.value *= f
	return c
}

// foldIn combines other into g multiplicatively. Matching dimensions have
// other's value converted into g's unit and their exponents merged; the rest
// are copied over. If either side has no units the fold is a plain scalar
// multiply or divide.
func (g *Group) foldIn(op Op, other *Group) {
	conv := other.value
	if len(g.units) > 0 && len(other.units) > 0 {
		for _, k := range other.sortedKeys() {
			in := other.units[k]
			exp := in.Exponent
			if op == OpDiv {
				exp = -exp
			}

			own, ok := g.units[k]
			if !ok {
				c := in.Clone()
				c.Exponent = exp
				g.units[k] = c
				continue
			}

			v, ok := convertPow(own.dim, conv, own.dim.Index(in.Label()), own.cur, in.Exponent, own.params)
			if !ok {
				logger.ConvertDebugw("fold conversion failed",
					logger.FieldDimension, own.dim.Name(),
					logger.FieldFrom, in.Label(),
					logger.FieldTo, own.Label())
				continue
			}
			conv = v
			own.Exponent += exp
			if own.Exponent == 0 {
				delete(g.units, k)
			}
		}
	}

	switch op {
	case OpMul:
		g.value *= conv
	case OpDiv:
		g.value /= conv
	}
}

// Add returns g + other. See Sub.
func (g *Group) Add(other *Group) (*Group, bool) {
	c := g.Clone()
	ok := c.sum(OpAdd, other)
	return c, ok
}

// Sub returns g - other. Both groups must carry the same signature; when
// they do not, the result's value is zero and ok is false.
func (g *Group) Sub(other *Group) (*Group, bool) {
	c := g.Clone()
	ok := c.sum(OpSub, other)
	return c, ok
}

// sum folds other's value into g after converting it into g's units.
// A signature mismatch zeroes g's value.
func (g *Group) sum(op Op, other *Group) bool {
	if !g.Equal(other) {
		logger.CalcDebugw("sum of mismatched units zeroes value",
			logger.FieldOperation, op.String(),
			logger.FieldUnit, g.UnitString(),
			"other_unit", other.UnitString())
		g.value = 0
		return false
	}

	conv := other.value
	for _, k := range other.sortedKeys() {
		in := other.units[k]
		own := g.units[k]
		v, ok := convertPow(own.dim, conv, in.cur, own.cur, in.Exponent, in.params)
		if !ok {
			return false
		}
		conv = v
	}

	switch op {
	case OpAdd:
		g.value += conv
	case OpSub:
		g.value -= conv
	}
	return true
}

// Pow raises the coefficient and every exponent to e.
func (g *Group) Pow(e float64) *Group {
	c := g.Clone()
	c.value = math.Pow(c.value, e)
	for k, a := range c.units {
		a.Exponent *= e
		if a.Exponent == 0 {
			delete(c.units, k)
		}
	}
	return c
}

// RoundTo rounds the coefficient to digits significant figures.
func (g *Group) RoundTo(digits uint) *Group {
	c := g.Clone()
	c.value = roundSig(c.value, digits)
	return c
}

func roundSig(v float64, digits uint) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	shift := float64(digits) - math.Ceil(math.Log10(math.Abs(v)))
	scale := math.Pow(10, shift)
	r := math.Round(v*scale) / scale
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return v
	}
	return r
}

// In re-expresses every unit whose table contains label in that unit.
// Dimensions without the label are left unconverted.
func (g *Group) In(label string) *Group {
	c := g.Clone()
	for _, k := range c.sortedKeys() {
		a := c.units[k]
		i := a.LabelIndex(label)
		if i < 0 {
			continue
		}
		trial := a.Clone()
		if v, ok := trial.Convert(c.value, i); ok {
			c.value = v
			c.units[k] = trial
		}
	}
	return c
}

// InDimension re-expresses only the unit of dimension d in label.
func (g *Group) InDimension(d *Dimension, label string) (*Group, bool) {
	c := g.Clone()
	a, ok := c.units[d.Key()]
	if !ok {
		return c, false
	}
	trial := a.Clone()
	v, ok := trial.ConvertLabel(c.value, label)
	if !ok {
		return c, false
	}
	c.value = v
	c.units[d.Key()] = trial
	return c, true
}

// UnitString prints the group's units as numerator/denominator, e.g.
// "(kg*m)/s^2". A scalar group prints "".
func (g *Group) UnitString() string {
	var num, den []string
	for _, k := range g.sortedKeys() {
		a := g.units[k]
		switch {
		case a.Exponent > 0:
			num = append(num, a.String())
		case a.Exponent < 0:
			den = append(den, a.String())
		}
	}

	var b strings.Builder
	switch {
	case len(num) == 0 && len(den) > 0:
		b.WriteString("1")
	case len(num) > 1 && len(den) > 0:
		b.WriteString("(" + strings.Join(num, "*") + ")")
	default:
		b.WriteString(strings.Join(num, "*"))
	}
	if len(den) > 0 {
		b.WriteString("/")
		if len(den) > 1 {
			b.WriteString("(" + strings.Join(den, "*") + ")")
		} else {
			b.WriteString(den[0])
		}
	}
	return b.String()
}

func (g *Group) String() string {
	return formatTerm(g.value, g.UnitString(), -1, NotationGeneral)
}
