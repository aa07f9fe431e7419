package dim

import (
	"math"

	"github.com/teranos/uval/uv"
)

func scalarDim() *uv.Dimension {
	return uv.NewDimension(Scalar.String(), []string{""}, func(v float64, from, to int, _ []float64) (float64, bool) {
		if from != 0 || to != 0 {
			return v, false
		}
		return v, !math.IsNaN(v)
	}, "")
}

// DefaultImpedance is the reference impedance in ohms used by amplitude
// conversions when no parameter is set.
const DefaultImpedance = 50.0

// Amplitude labels. Log units convert through dBm; linear units are
// converted to dBm with the reference impedance.
var amplitudeLabels = []string{
	"dBm", "dBmV", "dBuV", "dBmA", "dBuA", "dB",
	"V", "W", "A", "mV", "mW", "mA", "dBµV", "dBµA",
}

const (
	aDBm = iota
	aDBmV
	aDBuV
	aDBmA
	aDBuA
	aDB
	aV
	aW
	aA
	aMV
	aMW
	aMA
	aDBmicroV
	aDBmicroA
)

func amplitudeDim() *uv.Dimension {
	return uv.NewDimension(Amplitude.String(), amplitudeLabels, convertAmplitude, "dBm")
}

// Impedance returns params[0] when it is a positive number, else
// DefaultImpedance.
func Impedance(params []float64) float64 {
	if len(params) > 0 && params[0] > 0 && !math.IsInf(params[0], 0) {
		return params[0]
	}
	return DefaultImpedance
}

func convertAmplitude(v float64, from, to int, params []float64) (float64, bool) {
	n := len(amplitudeLabels)
	if from < 0 || to < 0 || from >= n || to >= n {
		return v, false
	}
	if from == to {
		return v, !math.IsNaN(v)
	}

	z := 10 * math.Log10(Impedance(params))

	// to dBm
	var dbm float64
	switch from {
	case aDBm, aDB:
		dbm = v
	case aDBmV:
		dbm = v - z - 30
	case aDBuV, aDBmicroV:
		dbm = v - z - 90
	case aDBmA:
		dbm = v + z - 30
	case aDBuA, aDBmicroA:
		dbm = v + z - 90
	case aV:
		dbm = 20*math.Log10(v) - z + 30
	case aMV:
		dbm = 20*math.Log10(v) - z - 30
	case aW:
		dbm = 10*math.Log10(v) + 30
	case aMW:
		dbm = 10 * math.Log10(v)
	case aA:
		dbm = 20*math.Log10(v) + z + 30
	case aMA:
		dbm = 20*math.Log10(v) + z - 30
	}

	// from dBm
	var out float64
	switch to {
	case aDBm, aDB:
		out = dbm
	case aDBmV:
		out = dbm + z + 30
	case aDBuV, aDBmicroV:
		out = dbm + z + 90
	case aDBmA:
		out = dbm - z + 30
	case aDBuA, aDBmicroA:
		out = dbm - z + 90
	case aV:
		out = math.Pow(10, (dbm+z-30)/20)
	case aMV:
		out = math.Pow(10, (dbm+z+30)/20)
	case aW:
		out = math.Pow(10, dbm/10-3)
	case aMW:
		out = math.Pow(10, dbm/10)
	case aA:
		out = math.Pow(10, (dbm-z-30)/20)
	case aMA:
		out = math.Pow(10, (dbm-z+30)/20)
	}

	if math.IsNaN(out) || math.IsInf(out, 0) {
		return v, false
	}
	return out, true
}

func temperatureDim() *uv.Dimension {
	return uv.NewDimension(Temperature.String(), []string{"K", "F", "C"}, convertTemperature, "C")
}

// convertTemperature is affine, so it runs through Celsius.
func convertTemperature(v float64, from, to int, _ []float64) (float64, bool) {
	if from < 0 || to < 0 || from > 2 || to > 2 {
		return v, false
	}
	if from == to {
		return v, !math.IsNaN(v)
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
	return out, !math.IsNaN(out)
}
