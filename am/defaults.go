package am

import (
	"sort"

	"github.com/spf13/viper"
)

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Display defaults
	v.SetDefault("display.precision", DefaultPrecision)
	v.SetDefault("display.notation", DefaultNotation)
	v.SetDefault("display.round_digits", 0)

	// Unit resolution defaults
	v.SetDefault("units.case_insensitive", false)
	v.SetDefault("units.impedance", DefaultImpedance)
	v.SetDefault("units.tables", []string{})

	// Logging defaults
	v.SetDefault("log.json", false)
	v.SetDefault("log.theme", DefaultTheme)
}

// BindEnvVars binds settings whose environment names do not follow the
// UVAL_<SECTION>_<KEY> pattern. Lists in the environment are comma separated.
func BindEnvVars(v *viper.Viper) {
	v.BindEnv("units.tables", "UVAL_TABLES")
}

// Keys returns every known configuration key, sorted
func Keys() []string {
	v := viper.New()
	SetDefaults(v)
	keys := v.AllKeys()
	sort.Strings(keys)
	return keys
}
