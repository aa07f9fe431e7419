package am

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/teranos/uval/errors"
)

// MaxPrecision bounds display.precision and display.round_digits; float64
// carries no more than 17 significant digits.
const MaxPrecision = 17

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	// Precision: -1 = shortest form, below that is invalid
	if c.Display.Precision < -1 || c.Display.Precision > MaxPrecision {
		return errors.NewInvalidRequestError("display.precision must be between -1 and %d, got %d", MaxPrecision, c.Display.Precision)
	}

	switch strings.ToLower(c.Display.Notation) {
	case "", "general", "g", "scientific", "sci", "e", "fixed", "f":
	default:
		return errors.WithHint(
			errors.NewInvalidRequestError("display.notation %q is not a notation", c.Display.Notation),
			"use general, scientific or fixed")
	}

	if c.Display.RoundDigits > MaxPrecision {
		return errors.NewInvalidRequestError("display.round_digits must be at most %d, got %d", MaxPrecision, c.Display.RoundDigits)
	}

	// Impedance: 0 = default, negative or non-finite is invalid
	if c.Units.Impedance < 0 || math.IsNaN(c.Units.Impedance) || math.IsInf(c.Units.Impedance, 0) {
		return errors.NewInvalidRequestError("units.impedance must be a positive number of ohms, got %v", c.Units.Impedance)
	}

	for _, path := range c.Units.Tables {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml", ".yaml", ".yml":
		default:
			return errors.WithHint(
				errors.NewInvalidRequestError("units.tables: %q is not a table file", path),
				"unit tables are .toml, .yaml or .yml files")
		}
	}

	switch c.Log.Theme {
	case "", "everforest", "gruvbox":
	default:
		return errors.WithHint(
			errors.NewInvalidRequestError("log.theme %q is not a theme", c.Log.Theme),
			"use everforest or gruvbox")
	}

	return nil
}
