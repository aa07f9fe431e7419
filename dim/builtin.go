package dim

import (
	"github.com/teranos/uval/uv"
)

// builtins is built once at init and never modified.
var builtins [numKinds]*uv.Dimension

func init() {
	builtins = [numKinds]*uv.Dimension{
		Scalar:      scalarDim(),
		Frequency:   frequencyDim(),
		Amplitude:   amplitudeDim(),
		Time:        timeDim(),
		Distance:    distanceDim(),
		Temperature: temperatureDim(),
		Current:     currentDim(),
		Volume:      volumeDim(),
		Mass:        massDim(),
		Force:       forceDim(),
		Pressure:    pressureDim(),
		Energy:      energyDim(),
		Power:       powerDim(),
		Angle:       angleDim(),
		Area:        areaDim(),
	}
}

// Get returns the builtin dimension for k, or the scalar dimension when k is
// out of range.
func Get(k Kind) *uv.Dimension {
	if k < 0 || k >= numKinds {
		return builtins[Scalar]
	}
	return builtins[k]
}

// Builtins returns every builtin dimension in Kind order.
func Builtins() []*uv.Dimension {
	out := make([]*uv.Dimension, numKinds)
	copy(out, builtins[:])
	return out
}

// New creates an Atomic of builtin kind k in label.
func New(k Kind, label string, opts ...uv.AtomicOption) *uv.Atomic {
	return uv.NewAtomic(Get(k), label, opts...)
}
