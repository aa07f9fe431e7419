package logger

import (
	"go.uber.org/zap"
)

// Standard field names for consistent structured logging across uval.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Components
	FieldComponent = "component"
	FieldCommand   = "command"

	// Quantities
	FieldDimension = "dimension"
	FieldUnit      = "unit"
	FieldFrom      = "from"
	FieldTo        = "to"
	FieldValue     = "value"
	FieldExponent  = "exponent"
	FieldTerms     = "terms"

	// Operations
	FieldOperation = "operation"
	FieldToken     = "token"
	FieldDepth     = "depth"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"

	// Files and paths
	FieldFile = "file"
	FieldLine = "line"

	// Symbol marker (×, ÷, →, ≡, ...)
	FieldSymbol = "symbol"
)

// ComponentLogger returns a named logger for a specific component.
//
// Example:
//
//	log := logger.ComponentLogger("dim.load")
//	log.Infow("Loaded unit tables", logger.FieldCount, n)
func ComponentLogger(name string) *zap.SugaredLogger {
	return Logger.Named(name)
}

// ChildLogger creates a child logger with additional context.
//
// Example:
//
//	lineLog := logger.ChildLogger(base, logger.FieldFile, path, logger.FieldLine, n)
func ChildLogger(parent *zap.SugaredLogger, keysAndValues ...interface{}) *zap.SugaredLogger {
	return parent.With(keysAndValues...)
}
