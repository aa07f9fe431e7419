package dim

import (
	"strings"

	"github.com/teranos/uval/errors"
)

// Kind selects one of the builtin dimensions.
type Kind int

const (
	Scalar Kind = iota
	Frequency
	Amplitude
	Time
	Distance
	Temperature
	Current
	Volume
	Mass
	Force
	Pressure
	Energy
	Power
	Angle
	Area

	numKinds
)

var kindNames = [numKinds]string{
	Scalar:      "scalar",
	Frequency:   "frequency",
	Amplitude:   "amplitude",
	Time:        "time",
	Distance:    "distance",
	Temperature: "temperature",
	Current:     "current",
	Volume:      "volume",
	Mass:        "mass",
	Force:       "force",
	Pressure:    "pressure",
	Energy:      "energy",
	Power:       "power",
	Angle:       "angle",
	Area:        "area",
}

func (k Kind) String() string {
	if k < 0 || k >= numKinds {
		return "unknown"
	}
	return kindNames[k]
}

// Kinds returns every builtin kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, numKinds)
	for i := range out {
		out[i] = Kind(i)
	}
	return out
}

// ParseKind resolves a dimension name, ignoring case.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for k, s := range kindNames {
		if s == n {
			return Kind(k), nil
		}
	}
	return Scalar, errors.WithHintf(
		errors.Wrapf(errors.ErrUnknownDimension, "%q", name),
		"builtin dimensions: %s", strings.Join(kindNames[:], ", "))
}
