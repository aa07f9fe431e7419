package dim

import (
	"math"

	"github.com/teranos/uval/uv"
)

// Linear builtin tables. Factors are the size of one unit in the table's base
// unit (Hz, s, m, A, m^3, g, N, Pa, J, W, degree, m^2).

func frequencyDim() *uv.Dimension {
	return linear(Frequency.String(), "MHz",
		Unit{"Hz", 1},
		Unit{"kHz", 1e3},
		Unit{"MHz", 1e6},
		Unit{"GHz", 1e9},
	)
}

func timeDim() *uv.Dimension {
	return linear(Time.String(), "s",
		Unit{"fs", 1e-15},
		Unit{"ps", 1e-12},
		Unit{"ns", 1e-9},
		Unit{"us", 1e-6},
		Unit{"ms", 1e-3},
		Unit{"s", 1},
		Unit{"min", 60},
		Unit{"h", 3600},
		Unit{"day", 86400},
		Unit{"week", 7 * 86400},
		Unit{"wk", 7 * 86400},
		Unit{"µs", 1e-6},
	)
}

const inch = 0.0254

func distanceDim() *uv.Dimension {
	return linear(Distance.String(), "m",
		Unit{"fm", 1e-15},
		Unit{"A", 1e-10},
		Unit{"nm", 1e-9},
		Unit{"um", 1e-6},
		Unit{"µm", 1e-6},
		Unit{"mm", 1e-3},
		Unit{"cm", 1e-2},
		Unit{"m", 1},
		Unit{"km", 1e3},
		Unit{"nmi", 1852},
		Unit{"mil", inch / 1000},
		Unit{"1/64 in", inch / 64},
		Unit{"1/32 in", inch / 32},
		Unit{"1/16 in", inch / 16},
		Unit{"1/8 in", inch / 8},
		Unit{"1/4 in", inch / 4},
		Unit{"1/2 in", inch / 2},
		Unit{"in", inch},
		Unit{"ft", 12 * inch},
		Unit{"yd", 36 * inch},
		Unit{"fathom", 72 * inch},
		Unit{"rod", 198 * inch},
		Unit{"chain", 792 * inch},
		Unit{"furlong", 7920 * inch},
		Unit{"mi", 63360 * inch},
		Unit{"geo mi", 72000 * inch},
		Unit{"league", 3 * 63360 * inch},
		Unit{"AU", 149598000000},
		Unit{"ly", 9.4605284e15},
		Unit{"parsec", 3.08567758e16},
	)
}

func currentDim() *uv.Dimension {
	return linear(Current.String(), "A",
		Unit{"nA", 1e-9},
		Unit{"uA", 1e-6},
		Unit{"mA", 1e-3},
		Unit{"A", 1},
		Unit{"C/s", 1},
		Unit{"kA", 1e3},
	)
}

// US customary liquid units derive from the US fluid ounce.
const (
	usFlOz  = 29.5735295625e-6
	impFlOz = 28.4130625e-6
)

func volumeDim() *uv.Dimension {
	return linear(Volume.String(), "l",
		Unit{"ml", 1e-6},
		Unit{"cm^3", 1e-6},
		Unit{"l", 1e-3},
		Unit{"m^3", 1},
		Unit{"stere", 1},
		Unit{"ft^3", 0.028316846592},
		Unit{"in^3", 1.6387064e-5},
		Unit{"board ft", 2.359737216e-3},
		Unit{"acre-ft", 1233.48183754752},
		Unit{"drop", 5e-8},
		Unit{"fifth", 7.5e-4},
		Unit{"dram", usFlOz / 8},
		Unit{"tsp", usFlOz / 6},
		Unit{"tbsp", usFlOz / 2},
		Unit{"jigger", usFlOz * 1.5},
		Unit{"oz", usFlOz},
		Unit{"gill", usFlOz * 4},
		Unit{"cup", usFlOz * 8},
		Unit{"pt", usFlOz * 16},
		Unit{"qt", usFlOz * 32},
		Unit{"gal", usFlOz * 128},
		Unit{"wbbl", 0.119240471196},
		Unit{"bbl", 0.158987294928},
		Unit{"Imp dram", impFlOz / 8},
		Unit{"Imp tsp", impFlOz * 5 / 24},
		Unit{"Imp tbsp", impFlOz * 5 / 8},
		Unit{"Imp jigger", impFlOz * 1.5},
		Unit{"Imp fl oz", impFlOz},
		Unit{"Imp gill", impFlOz * 5},
		Unit{"Imp cup", impFlOz * 10},
		Unit{"Imp pt", impFlOz * 20},
		Unit{"Imp qt", impFlOz * 40},
		Unit{"Imp gal", impFlOz * 160},
		Unit{"metric dram", 3e-6},
		Unit{"metric tsp", 5e-6},
		Unit{"metric tbsp", 15e-6},
		Unit{"metric jigger", 25e-6},
		Unit{"metric cup", 250e-6},
		Unit{"AU tbsp", 20e-6},
		Unit{"JP cup", 200e-6},
		Unit{"dry pt", 5.506104713575e-4},
		Unit{"dry qt", 1.101220942715e-3},
		Unit{"dry gal", 4.40488377086e-3},
		Unit{"peck", 8.80976754172e-3},
		Unit{"bushel", 3.523907016688e-2},
	)
}

func massDim() *uv.Dimension {
	return linear(Mass.String(), "g",
		Unit{"mg", 1e-3},
		Unit{"g", 1},
		Unit{"kg", 1e3},
		Unit{"Mg", 1e6},
		Unit{"t", 1e6},
		Unit{"lb", 453.59237},
		Unit{"troy", 373.2417216},
		Unit{"gr", 0.06479891},
		Unit{"scruple", 1.2959782},
		Unit{"pennyweight", 1.55517384},
		Unit{"dram", 3.8879346},
		Unit{"oz", 28.349523125},
		Unit{"troy oz", 31.1034768},
		Unit{"carat", 0.2},
		Unit{"stone", 6350.29318},
		Unit{"slug", 14593.90294},
		Unit{"hundredweight", 50802.34544},
		Unit{"ton", 907184.74},
		Unit{"long ton", 1016046.9088},
	)
}

const gravity = 9.80665

func forceDim() *uv.Dimension {
	return linear(Force.String(), "N",
		Unit{"dyne", 1e-5},
		Unit{"N", 1},
		Unit{"kg*m/s^2", 1},
		Unit{"ozf", 0.27801385095378125},
		Unit{"lbf", 4.4482216152605},
		Unit{"gmf", gravity / 1000},
		Unit{"kgf", gravity},
		Unit{"kip", 4448.2216152605},
		Unit{"ton-force", 8896.443230521},
	)
}

func pressureDim() *uv.Dimension {
	return linear(Pressure.String(), "Pa",
		Unit{"dyne/cm^2", 0.1},
		Unit{"Pa", 1},
		Unit{"torr", 101325.0 / 760},
		Unit{"N/cm^2", 1e4},
		Unit{"mbar", 100},
		Unit{"bar", 1e5},
		Unit{"atm", 101325},
		Unit{"lbf/ft^2", 47.88025898},
		Unit{"cm H20", 98.0638},
		Unit{"gmf/cm^2", gravity * 10},
		Unit{"mm Hg", 133.322387415},
		Unit{"cm Hg", 1333.22387415},
		Unit{"in H20", 249.0889},
		Unit{"in Hg", 3386.389},
		Unit{"lbf/in^2", 6894.757293168},
		Unit{"kgf/cm^2", gravity * 1e4},
	)
}

func energyDim() *uv.Dimension {
	return linear(Energy.String(), "J",
		Unit{"erg", 1e-7},
		Unit{"ton TNT", 4.184e9},
		Unit{"mJ", 1e-3},
		Unit{"J", 1},
		Unit{"MJ", 1e6},
		Unit{"kg*m^2/s^2", 1},
		Unit{"ft-lbf", 1.3558179483314},
		Unit{"cal th", 4.184},
		Unit{"cal 15", 4.1855},
		Unit{"cal st", 4.1868},
		Unit{"W-s", 1},
		Unit{"W-h", 3600},
		Unit{"therm", 1.05506e8},
		Unit{"therm US", 1.054804e8},
		Unit{"Btu th", 1054.350},
		Unit{"Btu 15", 1054.728},
		Unit{"Btu ST", 1055.05585262},
		Unit{"quad", 1.05505585262e18},
	)
}

func powerDim() *uv.Dimension {
	return linear(Power.String(), "W",
		Unit{"cal/s", 4.1868},
		Unit{"cal th/s", 4.184},
		Unit{"erg/s", 1e-7},
		Unit{"ft-lbf/h", 3.766161e-4},
		Unit{"Btu th/h", 0.292875},
		Unit{"Btu/h", 0.29307107},
		Unit{"mW", 1e-3},
		Unit{"W", 1},
		Unit{"kW", 1e3},
		Unit{"MW", 1e6},
		Unit{"metric hp", 735.49875},
		Unit{"hp", 745.69987158227},
		Unit{"electric hp", 746},
	)
}

func angleDim() *uv.Dimension {
	return linear(Angle.String(), "deg",
		Unit{"mil", 360.0 / 6400},
		Unit{"°", 1},
		Unit{"deg", 1},
		Unit{"'", 1.0 / 60},
		Unit{"min", 1.0 / 60},
		Unit{"\"", 1.0 / 3600},
		Unit{"sec", 1.0 / 3600},
		Unit{"'''", 1.0 / 3600},
		Unit{"rad", 180 / math.Pi},
		Unit{"grad", 0.9},
	)
}

const sqFt = 0.09290304

func areaDim() *uv.Dimension {
	return linear(Area.String(), "sq m",
		Unit{"ab", 1e-46},
		Unit{"fb", 1e-43},
		Unit{"pb", 1e-40},
		Unit{"nb", 1e-37},
		Unit{"µb", 1e-34},
		Unit{"um", 1e-34},
		Unit{"mb", 1e-31},
		Unit{"barn", 1e-28},
		Unit{"kb", 1e-25},
		Unit{"Mb", 1e-22},
		Unit{"sq mm", 1e-6},
		Unit{"sq cm", 1e-4},
		Unit{"sq m", 1},
		Unit{"sq km", 1e6},
		Unit{"Hectacre", 1e4},
		Unit{"myriad", 1e10},
		Unit{"sq mil", inch * inch * 1e-6},
		Unit{"sq in", inch * inch},
		Unit{"sq ft", sqFt},
		Unit{"square", sqFt},
		Unit{"sq yard", 9 * sqFt},
		Unit{"acre", 43560 * sqFt},
		Unit{"sq mi", 27878400 * sqFt},
		Unit{"sq survey mi", 2589998.470319521},
		Unit{"section", 2589998.470319521},
		Unit{"survey township", 93239944.93150276},
	)
}
