package logger

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette is one theme's colors for the console encoder.
type palette struct {
	fg        string
	time      string
	component string
	symbol    string
	unit      string
	number    string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

// Gruvbox Dark color palette (warm, muted, easy on eyes)
var gruvbox = palette{
	fg:        "\x1b[38;5;223m", // Soft cream (#ebdbb2)
	time:      "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
	component: "\x1b[38;5;208m", // Warm orange (#fe8019)
	symbol:    "\x1b[38;5;142m", // Muted green (#b8bb26)
	unit:      "\x1b[38;5;109m", // Soft blue (#83a598)
	number:    "\x1b[38;5;175m", // Muted purple (#d3869b)
	warn:      "\x1b[38;5;214m", // Soft yellow (#fabd2f)
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m", // Warm red (#fb4934)
	errBg:     "\x1b[48;5;88m",
}

// Everforest Dark color palette (natural forest greens)
var everforest = palette{
	fg:        "\x1b[38;5;223m", // Soft beige (#d3c6aa)
	time:      "\x1b[38;5;107m", // Mid green (#83c092)
	component: "\x1b[38;5;208m", // Warm orange (#e69875)
	symbol:    "\x1b[38;5;108m", // Bright green (#a7c080)
	unit:      "\x1b[38;5;109m", // Blue-green (#7fbbb3)
	number:    "\x1b[38;5;108m",
	warn:      "\x1b[38;5;179m", // Soft yellow (#dbbc7f)
	warnBg:    "\x1b[48;5;58m",
	err:       "\x1b[38;5;167m", // Warm red (#e67e80)
	errBg:     "\x1b[48;5;52m",
}

// Current active theme (set from am config or UVAL_LOG_THEME)
var currentTheme = "everforest"

// SetTheme configures the color scheme for log output. Unknown themes are ignored.
func SetTheme(theme string) {
	if theme == "everforest" || theme == "gruvbox" {
		currentTheme = theme
	}
}

// Theme returns the active theme name.
func Theme() string { return currentTheme }

func colors() palette {
	if currentTheme == "gruvbox" {
		return gruvbox
	}
	return everforest
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  DEBUG  calc  → conversion failed  amplitude -3 dBm→V"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for field serialization
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	return &minimalEncoder{Encoder: enc.Encoder.Clone()}
}

var bufPool = buffer.NewPool()

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	c := colors()
	final := bufPool.Get()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show when not INFO
	if ent.Level != zapcore.InfoLevel {
		final.AppendString("  ")
		final.AppendString(levelColorString(c, ent.Level))
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(c.component)
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	if s := fieldString(fields, FieldSymbol); s != "" {
		final.AppendString(c.symbol + s + colorReset + " ")
	}
	final.AppendString(c.fg + ent.Message + colorReset)

	if vals := extractFieldValues(c, fields); vals != "" {
		final.AppendString("  ")
		final.AppendString(vals)
	}

	final.AppendString("\n")
	return final, nil
}

// levelColorString returns bold + colored + background for non-INFO levels
func levelColorString(c palette, level zapcore.Level) string {
	switch level {
	case zapcore.DebugLevel:
		return c.fg + "DEBUG" + colorReset
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	default:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	}
}

// abbreviateName shortens component names: calc -> calc, dim.load -> d.load
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// getFieldValue extracts the value from a zap field, handling different field types
func getFieldValue(field zapcore.Field) string {
	switch field.Type {
	case zapcore.StringType:
		return field.String
	case zapcore.Int64Type, zapcore.Int32Type, zapcore.Int16Type, zapcore.Int8Type,
		zapcore.Uint64Type, zapcore.Uint32Type, zapcore.Uint16Type, zapcore.Uint8Type:
		return fmt.Sprintf("%d", field.Integer)
	case zapcore.Float64Type:
		return strconv.FormatFloat(math.Float64frombits(uint64(field.Integer)), 'g', -1, 64)
	case zapcore.Float32Type:
		return strconv.FormatFloat(float64(math.Float32frombits(uint32(field.Integer))), 'g', -1, 32)
	case zapcore.DurationType:
		return time.Duration(field.Integer).String()
	case zapcore.BoolType:
		return fmt.Sprintf("%t", field.Integer == 1)
	}
	if field.Interface != nil {
		return fmt.Sprintf("%v", field.Interface)
	}
	return ""
}

func fieldString(fields []zapcore.Field, key string) string {
	for _, f := range fields {
		if f.Key == key {
			return getFieldValue(f)
		}
	}
	return ""
}

// extractFieldValues pulls the values from structured fields with theme-aware colors.
// Domain fields print bare; every other field prints as key=value.
// Input: {"dimension": "amplitude", "from": "dBm", "to": "V", "value": -3}
// Output: "amplitude -3 dBm→V"
func extractFieldValues(c palette, fields []zapcore.Field) string {
	var values []string
	var from, to string

	for _, field := range fields {
		switch field.Key {
		case FieldDimension, FieldFile:
			if v := getFieldValue(field); v != "" {
				values = append(values, c.fg+v+colorReset)
			}
		case FieldUnit:
			if v := getFieldValue(field); v != "" {
				values = append(values, c.unit+v+colorReset)
			}
		case FieldFrom:
			from = getFieldValue(field)
		case FieldTo:
			to = getFieldValue(field)
		case FieldValue, FieldCount, FieldLine:
			if v := getFieldValue(field); v != "" {
				values = append(values, c.number+v+colorReset)
			}
		case FieldError:
			if v := getFieldValue(field); v != "" {
				values = append(values, c.err+field.Key+"="+v+colorReset)
			}
		case FieldSymbol:
		default:
			// Never drop a field: anything without special formatting prints as key=value
			if v := getFieldValue(field); v != "" {
				values = append(values, c.fg+field.Key+"="+v+colorReset)
			}
		}
	}

	if from != "" || to != "" {
		values = append(values, c.unit+from+colorReset+"→"+c.unit+to+colorReset)
	}

	return strings.Join(values, " ")
}
