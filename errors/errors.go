// Package errors provides error handling for uval.
//
// This package re-exports github.com/cockroachdb/errors, providing:
//   - Stack traces for debugging
//   - Error wrapping and context
//   - User-facing hints (printed by the CLI under the error)
//
// Usage:
//
//	// Wrap with context
//	d, err := reg.Lookup(name)
//	if err != nil {
//	    return errors.Wrapf(err, "convert %s", name)
//	}
//
//	// Add hints for users
//	return errors.WithHint(err, "run 'uval units' to list dimensions")
//
//	// Check errors
//	if errors.Is(err, errors.ErrUnknownUnit) {
//	    // handle unknown label
//	}
//
// The value core (package uv) never returns errors; failures there are
// reported as booleans. These errors belong to the registry, config and CLI.
//
// For full documentation see: https://pkg.go.dev/github.com/cockroachdb/errors
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Core error creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessage  = crdb.WithMessage
	WithMessagef = crdb.WithMessagef
)

// User-facing messages and details
var (
	WithHint           = crdb.WithHint
	WithHintf          = crdb.WithHintf
	WithDetail         = crdb.WithDetail
	WithDetailf        = crdb.WithDetailf
	WithSecondaryError = crdb.WithSecondaryError
)

// Error inspection
var (
	Is             = crdb.Is
	IsAny          = crdb.IsAny
	As             = crdb.As
	Unwrap         = crdb.Unwrap
	UnwrapAll      = crdb.UnwrapAll
	GetAllHints    = crdb.GetAllHints
	GetAllDetails  = crdb.GetAllDetails
	FlattenHints   = crdb.FlattenHints
	FlattenDetails = crdb.FlattenDetails
)

// Combining
var (
	CombineErrors = crdb.CombineErrors
	Join          = crdb.Join
	Mark          = crdb.Mark
)

// Common sentinel errors for use across uval.
// Use these with errors.Is() for type-safe error checking.
// Wrap these with errors.Wrap() to add context while preserving the type.
var (
	// ErrNotFound indicates the requested resource does not exist
	ErrNotFound = New("not found")

	// ErrInvalidRequest indicates malformed input (bad number, bad flag)
	ErrInvalidRequest = New("invalid request")

	// ErrConflict indicates a duplicate dimension name or label table
	ErrConflict = New("conflict")

	// ErrUnknownDimension indicates a dimension name missing from the registry
	ErrUnknownDimension = New("unknown dimension")

	// ErrUnknownUnit indicates a label missing from a dimension's table
	ErrUnknownUnit = New("unknown unit")

	// ErrInvalidTable indicates a user-defined dimension table failed validation
	ErrInvalidTable = New("invalid unit table")

	// ErrConversionFailed indicates a conversion function rejected its input
	ErrConversionFailed = New("conversion failed")

	// ErrStackUnderflow indicates an RPN operator ran out of operands
	ErrStackUnderflow = New("stack underflow")
)

// IsNotFoundError checks if an error is or wraps ErrNotFound, ErrUnknownDimension
// or ErrUnknownUnit.
func IsNotFoundError(err error) bool {
	return err != nil && IsAny(err, ErrNotFound, ErrUnknownDimension, ErrUnknownUnit)
}

// IsInvalidRequestError checks if an error is or wraps ErrInvalidRequest
func IsInvalidRequestError(err error) bool {
	return err != nil && Is(err, ErrInvalidRequest)
}

// WrapNotFound wraps an error as a not-found error with context
func WrapNotFound(err error, context string) error {
	return Wrap(Wrap(ErrNotFound, err.Error()), context)
}

// NewInvalidRequestError creates an invalid-request error with a formatted message
func NewInvalidRequestError(format string, args ...interface{}) error {
	return Wrap(ErrInvalidRequest, Newf(format, args...).Error())
}
