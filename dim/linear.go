package dim

import (
	"math"
	"strings"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/uv"
)

// Linear builds a conversion function from per-label factors to a common
// base unit: out = v * factors[from] / factors[to]. The slice is copied.
func Linear(factors []float64) uv.ConvertFunc {
	f := append([]float64(nil), factors...)
	return func(v float64, from, to int, _ []float64) (float64, bool) {
		if from < 0 || to < 0 || from >= len(f) || to >= len(f) {
			return v, false
		}
		if from == to {
			return v, !math.IsNaN(v)
		}
		out := v * f[from] / f[to]
		return out, !math.IsNaN(out)
	}
}

// Unit pairs a label with its factor to the dimension's base unit.
type Unit struct {
	Label  string  `toml:"label" yaml:"label" json:"label"`
	Factor float64 `toml:"factor" yaml:"factor" json:"factor"`
}

// NewLinear validates units and builds a linear dimension. Labels must be
// non-empty and unique; factors must be finite and positive.
func NewLinear(name, defaultLabel string, units []Unit) (*uv.Dimension, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.Wrap(errors.ErrInvalidTable, "dimension has no name")
	}
	if len(units) == 0 {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidTable, "dimension %q has no units", name),
			"list at least one unit with a label and a factor")
	}

	labels := make([]string, len(units))
	factors := make([]float64, len(units))
	seen := make(map[string]bool, len(units))
	for i, u := range units {
		switch {
		case u.Label == "":
			return nil, errors.Wrapf(errors.ErrInvalidTable, "dimension %q: unit %d has no label", name, i)
		case strings.ContainsRune(u.Label, '\x1f'):
			return nil, errors.Wrapf(errors.ErrInvalidTable, "dimension %q: label %q contains a control character", name, u.Label)
		case seen[u.Label]:
			return nil, errors.Wrapf(errors.ErrInvalidTable, "dimension %q: duplicate label %q", name, u.Label)
		case u.Factor <= 0 || math.IsInf(u.Factor, 0) || math.IsNaN(u.Factor):
			return nil, errors.WithHint(
				errors.Wrapf(errors.ErrInvalidTable, "dimension %q: label %q has factor %v", name, u.Label, u.Factor),
				"factors are the size of one unit in the base unit and must be positive")
		}
		seen[u.Label] = true
		labels[i] = u.Label
		factors[i] = u.Factor
	}

	if defaultLabel != "" && !seen[defaultLabel] {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrInvalidTable, "dimension %q: default %q is not a label", name, defaultLabel),
			"labels: %s", quoteLabels(labels))
	}
	return uv.NewDimension(name, labels, Linear(factors), defaultLabel), nil
}

// linear builds a builtin table. Builtins are fixed at compile time, so a
// validation failure is a programming error.
func linear(name, defaultLabel string, units ...Unit) *uv.Dimension {
	d, err := NewLinear(name, defaultLabel, units)
	if err != nil {
		panic(err)
	}
	return d
}

func quoteLabels(labels []string) string {
	q := make([]string, len(labels))
	for i, l := range labels {
		if strings.ContainsRune(l, ' ') {
			q[i] = "'" + l + "'"
		} else {
			q[i] = l
		}
	}
	return strings.Join(q, ", ")
}
