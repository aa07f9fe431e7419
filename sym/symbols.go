// Package sym defines canonical symbols for uval operators and system markers.
// These symbols are stable across CLI output, logs, and documentation.
//
// Every operator glyph has an ASCII command equivalent so that calc
// expressions can be typed on any keyboard: "3@distance:m 2@time:s ÷" and
// "3@distance:m 2@time:s /" are the same expression.
package sym

// Operator glyphs: the visual expression of each calc operator.
const (
	Mul     = "×" // multiply, folds matching dimensions
	Div     = "÷" // divide
	Add     = "+" // add terms with matching signatures
	Sub     = "−" // subtract (U+2212, not hyphen-minus)
	Pow     = "^" // raise to a power
	Convert = "→" // re-express in another unit
	Round   = "≈" // round to significant figures
)

// System markers.
const (
	AM   = "≡" // am: configuration and system settings
	Calc = "∑" // calc: expression evaluation
	Unit = "⊡" // units: dimension registry and label tables
)

// PaletteOrder defines the canonical ordering of operators for help text
// and tables.
var PaletteOrder = []string{Mul, Div, Add, Sub, Pow, Convert, Round}

// SymbolToCommand maps glyph strings to their ASCII command equivalents.
var SymbolToCommand = map[string]string{
	Mul:     "*",
	Div:     "/",
	Add:     "+",
	Sub:     "-",
	Pow:     "^",
	Convert: "=>",
	Round:   "round:",
}

// CommandToSymbol maps ASCII commands to their canonical glyph strings.
var CommandToSymbol = map[string]string{
	"*":      Mul,
	"/":      Div,
	"+":      Add,
	"-":      Sub,
	"^":      Pow,
	"=>":     Convert,
	"round:": Round,
}

// CommandDescriptions provides human-readable explanations for help output.
var CommandDescriptions = map[string]string{
	"*":      "Multiply: matching dimensions fold into one unit with summed exponents",
	"/":      "Divide: matching dimensions fold, the rest move to the denominator",
	"+":      "Add: terms with matching signatures combine, others append",
	"-":      "Subtract: terms with matching signatures combine, others append",
	"^":      "Power: ^2 squares the value and every exponent",
	"=>":     "Convert: =>kHz re-expresses every unit whose table has kHz",
	"round:": "Round: round:3 keeps three significant figures",
}

// Commands lists the ASCII commands in palette order.
var Commands = []string{"*", "/", "+", "-", "^", "=>", "round:"}

// Normalize returns the ASCII command for a glyph, or token unchanged when it
// is not an operator glyph.
func Normalize(token string) string {
	if cmd, ok := SymbolToCommand[token]; ok {
		return cmd
	}
	return token
}
