package dim

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uval/uv"
)

var approx = cmpopts.EquateApprox(1e-5, 1e-12)

// convertAll expresses v (given in from) in every label of targets.
func convertAll(t *testing.T, k Kind, v float64, from string, targets []string, opts ...uv.AtomicOption) []float64 {
	t.Helper()
	out := make([]float64, len(targets))
	for i, to := range targets {
		a := New(k, from, opts...)
		got, ok := a.ConvertLabel(v, to)
		require.True(t, ok, "%s: %s -> %s", k, from, to)
		assert.Equal(t, to, a.Label())
		out[i] = got
	}
	return out
}

func TestLiteralConversions(t *testing.T) {
	tests := []struct {
		name    string
		kind    Kind
		value   float64
		from    string
		targets []string
		want    []float64
	}{
		{"hertz", Frequency, 1, "Hz", []string{"Hz", "kHz", "MHz", "GHz"}, []float64{1, 1e-3, 1e-6, 1e-9}},
		{"celsius", Temperature, 1, "C", []string{"K", "F", "C"}, []float64{274.15, 33.8, 1}},
		{"boiling", Temperature, 212, "F", []string{"C", "K"}, []float64{100, 373.15}},
		{"atmosphere", Pressure, 1, "atm", []string{"Pa", "torr", "mm Hg", "bar", "mbar"}, []float64{101325, 760, 760, 1.01325, 1013.25}},
		{"degree", Angle, 1, "deg", []string{"mil", "'", "\"", "grad", "rad"}, []float64{17.777777, 60, 3600, 1.111111, math.Pi / 180}},
		{"gram", Mass, 1, "g", []string{"mg", "kg", "Mg", "t"}, []float64{1000, 1e-3, 1e-6, 1e-6}},
		{"pound", Mass, 1, "lb", []string{"g", "oz", "kg"}, []float64{453.59237, 16, 0.45359237}},
		{"mile", Distance, 1, "mi", []string{"ft", "yd", "km", "league"}, []float64{5280, 1760, 1.609344, 1.0 / 3}},
		{"gallon", Volume, 1, "gal", []string{"l", "qt", "pt", "cup", "oz"}, []float64{3.785411784, 4, 8, 16, 128}},
		{"imperial gallon", Volume, 1, "Imp gal", []string{"l", "Imp pt", "Imp fl oz"}, []float64{4.54609, 8, 160}},
		{"cup", Volume, 1, "cup", []string{"tbsp", "tsp"}, []float64{16, 48}},
		{"kilogram force", Force, 1, "kgf", []string{"N", "gmf"}, []float64{9.80665, 1000}},
		{"watt hour", Energy, 1, "W-h", []string{"J", "W-s"}, []float64{3600, 3600}},
		{"kilowatt", Power, 1, "kW", []string{"W", "mW"}, []float64{1000, 1e6}},
		{"acre", Area, 1, "acre", []string{"sq ft", "sq m"}, []float64{43560, 4046.8564224}},
		{"day", Time, 1, "day", []string{"h", "min", "s"}, []float64{24, 1440, 86400}},
		{"milliamp", Current, 1, "mA", []string{"A", "uA"}, []float64{1e-3, 1e3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := convertAll(t, tt.kind, tt.value, tt.from, tt.targets)
			if diff := cmp.Diff(tt.want, got, approx); diff != "" {
				t.Errorf("conversion mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAmplitude(t *testing.T) {
	targets := []string{"dBm", "dB", "mW", "W", "V", "mV", "dBmV", "dBuV", "dBµV"}

	t.Run("default impedance", func(t *testing.T) {
		z := 10 * math.Log10(50)
		want := []float64{0, 0, 1, 1e-3, math.Sqrt(1e-3 * 50), 1e3 * math.Sqrt(1e-3*50), z + 30, z + 90, z + 90}
		got := convertAll(t, Amplitude, 0, "dBm", targets)
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("0 dBm at 50 ohm (-want +got):\n%s", diff)
		}
	})

	t.Run("75 ohm", func(t *testing.T) {
		a := New(Amplitude, "dBm", uv.WithParams(75))
		got, ok := a.ConvertLabel(0, "dBmV")
		require.True(t, ok)
		assert.InDelta(t, 10*math.Log10(75)+30, got, 1e-9)
	})

	t.Run("current", func(t *testing.T) {
		// 1 mW into 50 ohm draws sqrt(1e-3/50) A
		got := convertAll(t, Amplitude, 0, "dBm", []string{"A", "mA"})
		want := []float64{math.Sqrt(1e-3 / 50), 1e3 * math.Sqrt(1e-3/50)}
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("current (-want +got):\n%s", diff)
		}
	})

	t.Run("non-positive linear value fails", func(t *testing.T) {
		a := New(Amplitude, "V")
		got, ok := a.ConvertLabel(-1, "dBm")
		assert.False(t, ok)
		assert.Equal(t, -1.0, got)
		assert.Equal(t, "V", a.Label(), "failed conversion must not move the unit")
	})
}

func TestImpedance(t *testing.T) {
	assert.Equal(t, DefaultImpedance, Impedance(nil))
	assert.Equal(t, DefaultImpedance, Impedance([]float64{0}))
	assert.Equal(t, DefaultImpedance, Impedance([]float64{math.Inf(1)}))
	assert.Equal(t, 75.0, Impedance([]float64{75}))
}

// Every label pair of every builtin must survive a round trip. Amplitude
// mixes log and linear units, so only positive values apply there.
func TestRoundTrip(t *testing.T) {
	values := []float64{1, -3.5, 0.001, 1e9, -2.5e12}
	positive := []float64{1, 0.25, 42}

	for _, d := range Builtins() {
		d := d
		vs := values
		if d.Same(Get(Amplitude)) {
			vs = positive
		}
		t.Run(d.Name(), func(t *testing.T) {
			for _, v := range vs {
				for i := 0; i < d.Len(); i++ {
					for j := 0; j < d.Len(); j++ {
						there, ok := d.Convert(v, i, j, nil)
						require.True(t, ok, "%g %s -> %s", v, d.Label(i), d.Label(j))
						back, ok := d.Convert(there, j, i, nil)
						require.True(t, ok, "%g %s -> %s", there, d.Label(j), d.Label(i))
						assert.InEpsilon(t, v, back, 1e-5, "%g %s -> %s -> %s", v, d.Label(i), d.Label(j), d.Label(i))
					}
				}
			}
		})
	}
}

func TestConvertOutOfRange(t *testing.T) {
	for _, d := range Builtins() {
		_, ok := d.Convert(1, 0, d.Len(), nil)
		assert.False(t, ok, d.Name())
		_, ok = d.Convert(1, -1, 0, nil)
		assert.False(t, ok, d.Name())
	}
}

func TestDefaults(t *testing.T) {
	want := map[Kind]string{
		Scalar:      "",
		Frequency:   "MHz",
		Amplitude:   "dBm",
		Time:        "s",
		Distance:    "m",
		Temperature: "C",
		Current:     "A",
		Volume:      "l",
		Mass:        "g",
		Force:       "N",
		Pressure:    "Pa",
		Energy:      "J",
		Power:       "W",
		Angle:       "deg",
		Area:        "sq m",
	}
	for k, label := range want {
		d := Get(k)
		assert.Equal(t, label, d.Label(d.DefaultIndex()), k.String())
	}
}

func TestKinds(t *testing.T) {
	assert.Len(t, Kinds(), len(Builtins()))
	for _, k := range Kinds() {
		assert.Equal(t, k.String(), Get(k).Name())

		parsed, err := ParseKind(" " + k.String() + " ")
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	k, err := ParseKind("Pressure")
	require.NoError(t, err)
	assert.Equal(t, Pressure, k)

	_, err = ParseKind("luminosity")
	require.Error(t, err)
	assert.Equal(t, "unknown", Kind(-1).String())
	assert.Equal(t, "scalar", Get(Kind(99)).Name())
}

func TestScalarDimension(t *testing.T) {
	d := Get(Scalar)
	got, ok := d.Convert(3, 0, 0, nil)
	require.True(t, ok)
	assert.Equal(t, 3.0, got)

	_, ok = d.Convert(math.NaN(), 0, 0, nil)
	assert.False(t, ok)
}
