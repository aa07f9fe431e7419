package uv

import (
	"strings"
)

// ConvertFunc converts v from the unit at index from to the unit at index to
// within one dimension. It must be pure, treat from == to as identity and
// report false for out-of-range indices or a NaN result.
type ConvertFunc func(v float64, from, to int, params []float64) (float64, bool)

// keySep cannot appear in a unit label, so joined label tables are unambiguous.
const keySep = "\x1f"

// Dimension describes one physical quantity kind: its ordered unit labels and
// the function converting between them. A Dimension is immutable once built
// and may be shared freely.
type Dimension struct {
	name    string
	labels  []string
	convert ConvertFunc
	def     int
	key     string
}

// NewDimension builds a dimension. The default label resolves to its index in
// labels, falling back to 0 when it is not present.
func NewDimension(name string, labels []string, convert ConvertFunc, defaultLabel string) *Dimension {
	own := make([]string, len(labels))
	copy(own, labels)

	d := &Dimension{
		name:    name,
		labels:  own,
		convert: convert,
		key:     strings.Join(own, keySep),
	}
	if i := d.index(defaultLabel, false); i >= 0 {
		d.def = i
	}
	return d
}

// Name returns the human name of the dimension.
func (d *Dimension) Name() string { return d.name }

// Key identifies the dimension by its label table. Two dimensions with the
// same labels in the same order share a key.
func (d *Dimension) Key() string { return d.key }

// Len returns the number of unit labels.
func (d *Dimension) Len() int { return len(d.labels) }

// Labels returns a copy of the label table.
func (d *Dimension) Labels() []string {
	out := make([]string, len(d.labels))
	copy(out, d.labels)
	return out
}

// Label returns the label at index i, or "" when i is out of range.
func (d *Dimension) Label(i int) string {
	if i < 0 || i >= len(d.labels) {
		return ""
	}
	return d.labels[i]
}

// DefaultIndex returns the index of the dimension's default unit.
func (d *Dimension) DefaultIndex() int { return d.def }

// Index returns the index of label, or -1.
func (d *Dimension) Index(label string) int { return d.index(label, false) }

// IndexFold is Index with case-insensitive matching.
func (d *Dimension) IndexFold(label string) int { return d.index(label, true) }

func (d *Dimension) index(label string, fold bool) int {
	for i, l := range d.labels {
		if l == label || (fold && strings.EqualFold(l, label)) {
			return i
		}
	}
	return -1
}

// Convert runs the dimension's conversion function.
func (d *Dimension) Convert(v float64, from, to int, params []float64) (float64, bool) {
	if d.convert == nil {
		return v, false
	}
	return d.convert(v, from, to, params)
}

// Same reports whether both dimensions have pointwise identical label tables.
func (d *Dimension) Same(other *Dimension) bool {
	if d == other {
		return true
	}
	if d == nil || other == nil || len(d.labels) != len(other.labels) {
		return false
	}
	for i := range d.labels {
		if d.labels[i] != other.labels[i] {
			return false
		}
	}
	return true
}

func (d *Dimension) String() string { return d.name }
