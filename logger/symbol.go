package logger

import (
	"github.com/teranos/uval/sym"
	"go.uber.org/zap"
)

// Symbol-aware logging helpers.
// These functions log with the symbol as a structured field, not in the message.
//
// Usage:
//
//	// Instead of:
//	logger.Debugw(sym.Convert + " conversion failed", "unit", label)
//
//	// Use:
//	logger.ConvertDebugw("conversion failed", logger.FieldUnit, label)
//
// This makes logs queryable by symbol and keeps messages clean.

// ConvertDebugw logs a debug message with the Convert symbol (→)
func ConvertDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Convert}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// CalcDebugw logs a debug message with the Calc symbol (∑)
func CalcDebugw(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Calc}, keysAndValues...)
		Logger.Debugw(msg, fields...)
	}
}

// CalcInfow logs an info message with the Calc symbol (∑)
func CalcInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Calc}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// AMInfow logs an info message with the AM symbol (≡)
// Used for configuration loading and persistence
func AMInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.AM}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// UnitInfow logs an info message with the Unit symbol (⊡)
// Used for registry and table loading
func UnitInfow(msg string, keysAndValues ...interface{}) {
	if Logger != nil {
		fields := append([]interface{}{FieldSymbol, sym.Unit}, keysAndValues...)
		Logger.Infow(msg, fields...)
	}
}

// WithSymbol returns a logger with the given symbol as a field.
// For ad-hoc symbol usage not covered by the helpers above.
//
// Example:
//
//	opLog := logger.WithSymbol(sym.Mul)
//	opLog.Debugw("folded", logger.FieldUnit, g.UnitString())
func WithSymbol(symbol string) *zap.SugaredLogger {
	return Logger.With(FieldSymbol, symbol)
}
