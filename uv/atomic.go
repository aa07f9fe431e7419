package uv

import (
	"math"
	"strconv"
	"strings"

	"github.com/teranos/uval/logger"
)

// ExponentChar separates a unit label from its exponent when printed.
const ExponentChar = '^'

// Atomic is a single dimensioned unit: a dimension, the unit currently in
// use, and the power it is raised to. An Atomic is owned by exactly one Group.
type Atomic struct {
	dim      *Dimension
	cur      int
	def      int
	Exponent float64
	params   []float64
}

// AtomicOption configures an Atomic at construction.
type AtomicOption func(*atomicConfig)

type atomicConfig struct {
	defaultLabel *string
	params       []float64
	fold         bool
}

// WithDefault sets the default unit by label.
func WithDefault(label string) AtomicOption {
	return func(c *atomicConfig) {
		c.defaultLabel = &label
	}
}

// WithParams attaches extra conversion parameters (e.g. reference impedance).
func WithParams(params ...float64) AtomicOption {
	return func(c *atomicConfig) {
		c.params = append([]float64(nil), params...)
	}
}

// WithCaseFold resolves labels case-insensitively.
func WithCaseFold() AtomicOption {
	return func(c *atomicConfig) {
		c.fold = true
	}
}

// NewAtomic creates a linear (exponent 1) unit of dimension d currently
// expressed in label. Labels that do not resolve map to index 0.
func NewAtomic(d *Dimension, label string, opts ...AtomicOption) *Atomic {
	var cfg atomicConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Atomic{
		dim:      d,
		def:      d.DefaultIndex(),
		Exponent: 1,
		params:   cfg.params,
	}
	if i := d.index(label, cfg.fold); i >= 0 {
		a.cur = i
	}
	if cfg.defaultLabel != nil {
		a.def = 0
		if i := d.index(*cfg.defaultLabel, cfg.fold); i >= 0 {
			a.def = i
		}
	}
	return a
}

// Dimension returns the dimension descriptor shared by this unit.
func (a *Atomic) Dimension() *Dimension { return a.dim }

// Key returns the dimension identity used to key units inside a Group.
func (a *Atomic) Key() string { return a.dim.Key() }

// Index returns the index of the current unit.
func (a *Atomic) Index() int { return a.cur }

// Label returns the current unit label.
func (a *Atomic) Label() string { return a.dim.Label(a.cur) }

// DefaultLabel returns the default unit label.
func (a *Atomic) DefaultLabel() string { return a.dim.Label(a.def) }

// LabelIndex returns the index of label in this unit's table, or -1.
func (a *Atomic) LabelIndex(label string) int { return a.dim.Index(label) }

// HasLabel reports whether label belongs to this unit's table.
func (a *Atomic) HasLabel(label string) bool { return a.dim.Index(label) >= 0 }

// Params returns a copy of the conversion parameters.
func (a *Atomic) Params() []float64 {
	return append([]float64(nil), a.params...)
}

// Param returns parameter i, or NaN when it is not set.
func (a *Atomic) Param(i int) float64 {
	if i < 0 || i >= len(a.params) {
		return math.NaN()
	}
	return a.params[i]
}

// SetParam sets parameter i, growing the parameter list as needed.
func (a *Atomic) SetParam(i int, p float64) {
	if i < 0 {
		return
	}
	for len(a.params) <= i {
		a.params = append(a.params, 0)
	}
	a.params[i] = p
}

// Convert re-expresses v, a quantity in this unit raised to its exponent, in
// the unit at index to. The unit switches to the new index only when the
// conversion succeeds; on failure both the unit and v are left as they were.
func (a *Atomic) Convert(v float64, to int) (float64, bool) {
	if to < 0 || to >= a.dim.Len() || a.Exponent == 0 {
		return v, false
	}
	out, ok := convertPow(a.dim, v, a.cur, to, a.Exponent, a.params)
	if !ok {
		logger.ConvertDebugw("conversion failed",
			logger.FieldDimension, a.dim.Name(),
			logger.FieldFrom, a.Label(),
			logger.FieldTo, a.dim.Label(to),
			logger.FieldValue, v)
		return v, false
	}
	a.cur = to
	return out, true
}

// ConvertLabel is Convert addressed by label. Unknown labels fail.
func (a *Atomic) ConvertLabel(v float64, label string) (float64, bool) {
	i := a.dim.Index(label)
	if i < 0 {
		return v, false
	}
	return a.Convert(v, i)
}

// convertPow converts a value carrying unit^exp by taking the root, running
// the dimension's conversion and raising the result back to exp. The sign is
// set aside while the root is taken.
func convertPow(d *Dimension, v float64, from, to int, exp float64, params []float64) (float64, bool) {
	if from == to {
		return v, true
	}
	sign := 1.0
	x := v
	if exp != 1 {
		if v < 0 {
			sign = -1
		}
		x = math.Pow(math.Abs(v), 1/exp)
	}
	x, ok := d.Convert(x, from, to, params)
	if !ok || math.IsNaN(x) {
		return v, false
	}
	if exp != 1 {
		x = sign * math.Pow(x, exp)
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return v, false
	}
	return x, true
}

// SameUnits reports whether other belongs to the same dimension.
func (a *Atomic) SameUnits(other *Atomic) bool {
	return other != nil && a.dim.Same(other.dim)
}

// Equal compares dimension and exponent. Values are not part of an Atomic.
func (a *Atomic) Equal(other *Atomic) bool {
	return a.SameUnits(other) && a.Exponent == other.Exponent
}

// Clone returns a deep copy.
func (a *Atomic) Clone() *Atomic {
	c := *a
	if a.params != nil {
		c.params = append([]float64(nil), a.params...)
	}
	return &c
}

// String prints the current label with the magnitude of its exponent. Labels
// containing spaces are parenthesized; a cancelled unit prints nothing.
func (a *Atomic) String() string {
	if a.Exponent == 0 {
		return ""
	}
	var b strings.Builder
	label := a.Label()
	if strings.ContainsRune(label, ' ') {
		b.WriteString("(" + label + ")")
	} else {
		b.WriteString(label)
	}
	if e := math.Abs(a.Exponent); e != 1 {
		b.WriteRune(ExponentChar)
		b.WriteString(strconv.FormatFloat(e, 'g', -1, 64))
	}
	return b.String()
}
