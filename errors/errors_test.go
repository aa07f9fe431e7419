package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrUnknownUnit, "parse operand 3@distance:furlongs")

	assert.Contains(t, wrapped.Error(), "parse operand")
	assert.Contains(t, wrapped.Error(), "unknown unit")
	assert.True(t, Is(wrapped, ErrUnknownUnit))
	assert.False(t, Is(wrapped, ErrUnknownDimension))
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrUnknownDimension, "dimension %q", "flux")

	assert.Contains(t, wrapped.Error(), `dimension "flux"`)
	assert.True(t, Is(wrapped, ErrUnknownDimension))
}

type tableError struct {
	file string
}

func (e *tableError) Error() string {
	return "bad table in " + e.file
}

func TestAs(t *testing.T) {
	wrapped := Wrap(&tableError{file: "units.toml"}, "load tables")

	var target *tableError
	require.True(t, As(wrapped, &target))
	assert.Equal(t, "units.toml", target.file)
}

func TestWithHint(t *testing.T) {
	err := WithHintf(ErrUnknownUnit, "valid labels: %s", "Hz, kHz, MHz, GHz")

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "valid labels: Hz, kHz, MHz, GHz", hints[0])
	assert.True(t, Is(err, ErrUnknownUnit))
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithStack(nil))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.Nil(t, WithDetail(nil, "detail"))
}

func TestIsNotFoundError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"not found", ErrNotFound, true},
		{"unknown dimension", Wrap(ErrUnknownDimension, "lookup"), true},
		{"unknown unit", WithHint(ErrUnknownUnit, "hint"), true},
		{"invalid table", ErrInvalidTable, false},
		{"wrapped not found", WrapNotFound(New("config"), "am get"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestNewInvalidRequestError(t *testing.T) {
	err := NewInvalidRequestError("not a number: %q", "abc")

	assert.True(t, IsInvalidRequestError(err))
	assert.Contains(t, err.Error(), `not a number: "abc"`)
	assert.False(t, IsInvalidRequestError(ErrStackUnderflow))
}

func TestCombineErrors(t *testing.T) {
	err := CombineErrors(ErrInvalidTable, New("second"))
	assert.True(t, Is(err, ErrInvalidTable))

	assert.Nil(t, CombineErrors(nil, nil))
}

func TestErrorChaining(t *testing.T) {
	err := Wrap(ErrConversionFailed, "amplitude dBm -> V")
	err = WithHint(err, "log units need positive values")
	err = WithDetail(err, "value: -3")
	err = Wrap(err, "convert")

	assert.True(t, Is(err, ErrConversionFailed))
	assert.Contains(t, err.Error(), "convert")
	assert.Contains(t, err.Error(), "amplitude dBm -> V")

	assert.Contains(t, GetAllHints(err), "log units need positive values")
	assert.Contains(t, GetAllDetails(err), "value: -3")
}

func ExampleWrap() {
	err := Wrap(ErrStackUnderflow, "operator *")
	fmt.Println(err)
	// Output: operator *: stack underflow
}

func ExampleWithHint() {
	err := WithHint(ErrUnknownDimension, "run 'uval units' to list dimensions")

	hints := GetAllHints(err)
	fmt.Println(hints[0])
	// Output: run 'uval units' to list dimensions
}
