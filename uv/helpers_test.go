package uv

import (
	"math"
)

func linearConvert(factors ...float64) ConvertFunc {
	return func(v float64, from, to int, _ []float64) (float64, bool) {
		if from < 0 || to < 0 || from >= len(factors) || to >= len(factors) {
			return v, false
		}
		out := v * factors[from] / factors[to]
		return out, !math.IsNaN(out)
	}
}

var (
	distance = NewDimension("distance", []string{"m", "cm", "km", "sq m"}, linearConvert(1, 0.01, 1000, 1), "m")
	timeDim  = NewDimension("time", []string{"s", "ms", "min", "h"}, linearConvert(1, 1e-3, 60, 3600), "s")
	mass     = NewDimension("mass", []string{"g", "kg"}, linearConvert(1, 1000), "g")
	force    = NewDimension("force", []string{"N", "kgf"}, linearConvert(1, 9.80665), "N")
	current  = NewDimension("current", []string{"A", "mA"}, linearConvert(1, 1e-3), "A")

	temperature = NewDimension("temperature", []string{"K", "F", "C"}, func(v float64, from, to int, _ []float64) (float64, bool) {
		if from < 0 || to < 0 || from > 2 || to > 2 {
			return v, false
		}
		c := v
		switch from {
		case 0:
			c = v - 273.15
		case 1:
			c = (v - 32) * 5 / 9
		}
		out := c
		switch to {
		case 0:
			out = c + 273.15
		case 1:
			out = c*9/5 + 32
		}
		return out, true
	}, "C")

	// scaled tracks its parameter so tests can see which side's params a
	// conversion used.
	scaled = NewDimension("scaled", []string{"x", "y"}, func(v float64, from, to int, p []float64) (float64, bool) {
		if from < 0 || to < 0 || from > 1 || to > 1 {
			return v, false
		}
		k := 2.0
		if len(p) > 0 {
			k = p[0]
		}
		switch {
		case from == to:
			return v, true
		case from == 0:
			return v * k, true
		default:
			return v / k, true
		}
	}, "x")
)

func meters(v float64) *Value  { return NewValue(v, NewAtomic(distance, "m")) }
func seconds(v float64) *Value { return NewValue(v, NewAtomic(timeDim, "s")) }

func group(v float64, d *Dimension, label string) *Group {
	return NewGroup(v, NewAtomic(d, label))
}
