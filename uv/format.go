package uv

import (
	"strconv"
	"strings"

	"github.com/teranos/uval/errors"
)

// Notation selects how coefficients are printed.
type Notation int

const (
	NotationGeneral Notation = iota
	NotationScientific
	NotationFixed
)

func (n Notation) String() string {
	switch n {
	case NotationScientific:
		return "scientific"
	case NotationFixed:
		return "fixed"
	default:
		return "general"
	}
}

func (n Notation) verb() byte {
	switch n {
	case NotationScientific:
		return 'e'
	case NotationFixed:
		return 'f'
	default:
		return 'g'
	}
}

// ParseNotation accepts "general", "scientific" or "fixed" and their first
// letters.
func ParseNotation(s string) (Notation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "general", "g":
		return NotationGeneral, nil
	case "scientific", "sci", "e":
		return NotationScientific, nil
	case "fixed", "f":
		return NotationFixed, nil
	}
	return NotationGeneral, errors.WithHint(errors.Newf("unknown notation %q", s), "use general, scientific or fixed")
}

// FormatNumber prints f in notation. A negative precision prints the shortest
// representation that round-trips.
func FormatNumber(f float64, precision int, n Notation) string {
	if precision < 0 {
		precision = -1
	}
	return strconv.FormatFloat(f, n.verb(), precision, 64)
}

func formatTerm(v float64, units string, precision int, n Notation) string {
	s := FormatNumber(v, precision, n)
	if units == "" {
		return s
	}
	return s + " " + units
}

// Print renders every term in order with its operator, e.g. "5 m + 3 s".
// A value carrying an unapplied exponent is wrapped as "(...)^e". An empty
// value prints "0".
func (v *Value) Print(precision int, n Notation) string {
	if len(v.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range v.terms {
		val := t.value
		if i > 0 {
			op := t.op
			if op == OpNone {
				op = OpAdd
			}
			if val < 0 {
				val = -val
				op = op.flip()
			}
			b.WriteString(" " + op.String() + " ")
		}
		b.WriteString(formatTerm(val, t.UnitString(), precision, n))
	}
	if len(v.terms) > 1 && v.exponent != 1 {
		return "(" + b.String() + ")" + string(ExponentChar) + strconv.FormatFloat(v.exponent, 'g', -1, 64)
	}
	return b.String()
}

// UnitString renders only the unit signatures of the terms joined by their
// operators.
func (v *Value) UnitString() string {
	parts := make([]string, 0, len(v.terms))
	for i, t := range v.terms {
		u := t.UnitString()
		if i > 0 {
			op := t.op
			if op == OpNone {
				op = OpAdd
			}
			u = op.String() + " " + u
		}
		parts = append(parts, u)
	}
	return strings.Join(parts, " ")
}

func (v *Value) String() string {
	return v.Print(-1, NotationGeneral)
}
