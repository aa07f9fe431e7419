// Package am ("as configured") loads uval configuration from the file
// cascade and the environment.
package am

import "fmt"

// Config represents the uval configuration
type Config struct {
	Display DisplayConfig `mapstructure:"display" toml:"display" yaml:"display" json:"display"`
	Units   UnitsConfig   `mapstructure:"units" toml:"units" yaml:"units" json:"units"`
	Log     LogConfig     `mapstructure:"log" toml:"log" yaml:"log" json:"log"`
}

// DisplayConfig controls how values are printed
type DisplayConfig struct {
	Precision   int    `mapstructure:"precision" toml:"precision" yaml:"precision" json:"precision"`          // -1 = shortest round-trip form
	Notation    string `mapstructure:"notation" toml:"notation" yaml:"notation" json:"notation"`             // general, scientific, fixed
	RoundDigits uint   `mapstructure:"round_digits" toml:"round_digits" yaml:"round_digits" json:"round_digits"` // significant figures, 0 = off
}

// UnitsConfig controls unit resolution
type UnitsConfig struct {
	CaseInsensitive bool     `mapstructure:"case_insensitive" toml:"case_insensitive" yaml:"case_insensitive" json:"case_insensitive"`
	Impedance       float64  `mapstructure:"impedance" toml:"impedance" yaml:"impedance" json:"impedance"` // ohms, amplitude reference
	Tables          []string `mapstructure:"tables" toml:"tables" yaml:"tables" json:"tables"`             // extra .toml/.yaml unit tables
}

// LogConfig controls diagnostic output
type LogConfig struct {
	JSON  bool   `mapstructure:"json" toml:"json" yaml:"json" json:"json"`
	Theme string `mapstructure:"theme" toml:"theme" yaml:"theme" json:"theme"` // gruvbox, everforest
}

// Defaults
const (
	DefaultPrecision = -1
	DefaultNotation  = "general"
	DefaultImpedance = 50.0
	DefaultTheme     = "everforest"
)

// File system constants
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// GetTheme returns the log theme (default: everforest)
func (c *Config) GetTheme() string {
	if c.Log.Theme == "" {
		return DefaultTheme
	}
	return c.Log.Theme
}

// GetImpedance returns the amplitude reference impedance, falling back to
// DefaultImpedance for unset values.
func (c *Config) GetImpedance() float64 {
	if c.Units.Impedance <= 0 {
		return DefaultImpedance
	}
	return c.Units.Impedance
}

// String returns a string representation of the config
func (c *Config) String() string {
	return fmt.Sprintf("Config{Display: {Precision: %d, Notation: %s}, Units: {Tables: %d}, Log: {Theme: %s}}",
		c.Display.Precision, c.Display.Notation, len(c.Units.Tables), c.GetTheme())
}
