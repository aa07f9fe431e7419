// Package uv implements dimensioned values: a number together with a composite
// unit signature that survives arithmetic.
//
// The package is layered:
//
//	Atomic  one dimension (time, mass, ...), a current unit and an exponent
//	Group   a monomial: scalar value times a product of Atomics
//	Value   a polynomial: an ordered, signed sum of Groups
//
// Multiplying groups folds matching dimensions together by converting the
// right-hand side into the left-hand side's units and adding exponents, so
// m * m becomes m^2 and m / s becomes m/s. Adding groups requires identical
// signatures. Values distribute multiplication across their terms and append
// terms whose signatures do not already appear.
//
// Dimensions themselves (label tables and conversion functions) are supplied
// by callers; see package dim for the builtin registry.
//
// Usage:
//
//	kg := uv.NewAtomic(dim.Get(dim.Mass), "kg")
//	m := uv.NewAtomic(dim.Get(dim.Distance), "m")
//	s := uv.NewAtomic(dim.Get(dim.Time), "s")
//
//	mass := uv.NewValue(5, kg)
//	accel := uv.NewValue(9.8, m).Div(uv.NewValue(1, s).Pow(2))
//	force := mass.Mul(accel) // 49 (kg*m)/s^2
//
// Every operation returns a fresh value; nothing in this package mutates its
// receiver through the public API.
package uv
