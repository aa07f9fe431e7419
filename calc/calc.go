// Package calc evaluates reverse Polish expressions over dimensioned values.
//
// Operands are plain numbers ("2.5", a pure scalar) or numbers bound to a
// unit, "<number>@<dimension>:<label>" ("3@distance:km"). Operators:
//
//	*  /  +  -      binary, left operand pushed first
//	^<e>            raise the top of the stack to e
//	=><label>       re-express every unit of the top whose table has label
//	=><dim>:<label> re-express only the unit of one dimension
//	round:<n>       round the top to n significant figures
//
// The glyph forms from package sym (×, ÷, −, →, ≈) are accepted everywhere
// the ASCII form is.
package calc

import (
	"strconv"
	"strings"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
	"github.com/teranos/uval/sym"
	"github.com/teranos/uval/uv"
)

// Units resolves dimension names and unit labels. *dim.Registry satisfies it.
type Units interface {
	Lookup(name string) (*uv.Dimension, error)
	Unit(dimension, label string, opts ...uv.AtomicOption) (*uv.Atomic, error)
}

// Step is reported after every token.
type Step struct {
	Index int
	Token string
	Stack []*uv.Value
}

// Top returns the value on top of the stack after the step, or nil.
func (s Step) Top() *uv.Value {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Option configures a Machine.
type Option func(*Machine)

// WithTrace registers fn to be called after every token.
func WithTrace(fn func(Step)) Option {
	return func(m *Machine) { m.trace = fn }
}

// WithUnitOptions passes opts to every unit the machine creates, for
// example uv.WithParams(impedance).
func WithUnitOptions(fn func(d *uv.Dimension) []uv.AtomicOption) Option {
	return func(m *Machine) { m.unitOpts = fn }
}

// Machine is a value stack. It is not safe for concurrent use.
type Machine struct {
	units    Units
	stack    []*uv.Value
	trace    func(Step)
	unitOpts func(d *uv.Dimension) []uv.AtomicOption
}

// New creates an empty machine resolving units through units.
func New(units Units, opts ...Option) *Machine {
	m := &Machine{units: units}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Reset empties the stack.
func (m *Machine) Reset() { m.stack = m.stack[:0] }

// Depth returns the number of values on the stack.
func (m *Machine) Depth() int { return len(m.stack) }

// Eval runs tokens on a fresh stack and returns the single value left. Any
// other final depth is an error.
func (m *Machine) Eval(tokens []string) (*uv.Value, error) {
	m.Reset()
	for i, tok := range tokens {
		if err := m.Step(tok); err != nil {
			return nil, errors.Wrapf(err, "token %d %q", i+1, tok)
		}
		if m.trace != nil {
			m.trace(Step{Index: i, Token: tok, Stack: m.snapshot()})
		}
	}
	switch len(m.stack) {
	case 0:
		return nil, errors.Wrap(errors.ErrStackUnderflow, "expression is empty")
	case 1:
		return m.stack[0].Clone(), nil
	}
	return nil, errors.WithHint(
		errors.NewInvalidRequestError("%d values left on the stack", len(m.stack)),
		"every operand needs an operator: \"2 3 *\", not \"2 3\"")
}

// Step applies a single token to the stack.
func (m *Machine) Step(token string) error {
	tok := Normalize(token)

	switch tok {
	case "*", "/", "+", "-":
		right, left, err := m.pop2(tok)
		if err != nil {
			return err
		}
		out, err := binary(tok, left, right)
		if err != nil {
			return err
		}
		m.push(out)
		logger.CalcDebugw("Applied operator",
			logger.FieldToken, tok,
			logger.FieldValue, out.String(),
			logger.FieldDepth, len(m.stack))
		return nil
	}

	if rest, ok := strings.CutPrefix(tok, "^"); ok {
		e, err := strconv.ParseFloat(rest, 64)
		if err != nil || rest == "" {
			return errors.WithHint(errors.NewInvalidRequestError("bad exponent %q", rest), "write the power after the caret: ^2, ^-1, ^0.5")
		}
		top, err := m.pop(tok)
		if err != nil {
			return err
		}
		m.push(top.Pow(e))
		return nil
	}

	if rest, ok := strings.CutPrefix(tok, "=>"); ok {
		top, err := m.pop(tok)
		if err != nil {
			return err
		}
		out, err := m.convert(top, rest)
		if err != nil {
			m.push(top)
			return err
		}
		m.push(out)
		return nil
	}

	if rest, ok := strings.CutPrefix(tok, "round:"); ok {
		n, err := strconv.ParseUint(rest, 10, 32)
		if err != nil {
			return errors.WithHint(errors.NewInvalidRequestError("bad digit count %q", rest), "round:3 keeps three significant figures")
		}
		top, err := m.pop(tok)
		if err != nil {
			return err
		}
		m.push(top.RoundTo(uint(n)))
		return nil
	}

	v, err := m.Operand(tok)
	if err != nil {
		return err
	}
	m.push(v)
	return nil
}

// Operand parses "<number>" or "<number>@<dimension>:<label>".
func (m *Machine) Operand(tok string) (*uv.Value, error) {
	num, unit, bound := strings.Cut(tok, "@")
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("unknown token %q", tok),
			"operands are 2.5 or 2.5@distance:m, operators are "+strings.Join(sym.Commands, " "))
	}
	if !bound {
		return uv.NewScalar(f), nil
	}

	dimension, label, ok := strings.Cut(unit, ":")
	if !ok || dimension == "" || label == "" {
		return nil, errors.WithHint(
			errors.NewInvalidRequestError("operand %q has no unit label", tok),
			"bind a unit as <number>@<dimension>:<label>, e.g. 3@distance:km")
	}
	a, err := m.unit(dimension, label)
	if err != nil {
		return nil, err
	}
	return uv.NewValue(f, a), nil
}

func (m *Machine) unit(dimension, label string) (*uv.Atomic, error) {
	var opts []uv.AtomicOption
	if m.unitOpts != nil {
		d, err := m.units.Lookup(dimension)
		if err != nil {
			return nil, err
		}
		opts = m.unitOpts(d)
	}
	return m.units.Unit(dimension, label, opts...)
}

// convert handles "=>label" and "=>dimension:label".
func (m *Machine) convert(v *uv.Value, target string) (*uv.Value, error) {
	if target == "" {
		return nil, errors.NewInvalidRequestError("conversion has no target unit")
	}
	dimension, label, scoped := strings.Cut(target, ":")
	if !scoped {
		out := v.In(target)
		logger.ConvertDebugw("Converted value",
			logger.FieldTo, target,
			logger.FieldValue, out.String())
		return out, nil
	}

	a, err := m.units.Unit(dimension, label)
	if err != nil {
		return nil, err
	}
	out, ok := v.InDimension(a.Dimension(), a.Label())
	if !ok {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrConversionFailed, "%s to %s", v.String(), a.Label()),
			"the value has no %s unit or is out of range for it", a.Dimension().Name())
	}
	logger.ConvertDebugw("Converted value",
		logger.FieldDimension, a.Dimension().Name(),
		logger.FieldTo, a.Label(),
		logger.FieldValue, out.String())
	return out, nil
}

// binary applies op to left and right. A pure scalar on either side of * and
// on the right of / scales the other side, so 2 3@distance:m * keeps metres.
func binary(op string, left, right *uv.Value) (*uv.Value, error) {
	switch op {
	case "*":
		if f, ok := scalar(left); ok {
			return right.Scale(f), nil
		}
		if f, ok := scalar(right); ok {
			return left.Scale(f), nil
		}
		return left.Mul(right), nil
	case "/":
		if f, ok := scalar(right); ok {
			if f == 0 {
				return nil, errors.NewInvalidRequestError("division by zero")
			}
			return left.DivScalar(f), nil
		}
		if f, ok := scalar(left); ok {
			if right.NumTerms() != 1 {
				return nil, errors.WithHint(
					errors.NewInvalidRequestError("cannot divide a scalar by a sum of %d terms", right.NumTerms()),
					"divide each term separately")
			}
			return right.Pow(-1).Scale(f), nil
		}
		return left.Div(right), nil
	case "+":
		return left.Add(right), nil
	case "-":
		return left.Sub(right), nil
	}
	return nil, errors.NewInvalidRequestError("unknown operator %q", op)
}

// scalar reports whether v is a single unitless term.
func scalar(v *uv.Value) (float64, bool) {
	if v.NumTerms() != 1 || v.Exponent() != 1 {
		return 0, false
	}
	if !v.Terms()[0].IsScalar() {
		return 0, false
	}
	return v.Value(), true
}

// Normalize maps glyph operators to their ASCII commands, keeping any
// argument: "×" is "*", "→kHz" is "=>kHz", "≈3" is "round:3".
func Normalize(token string) string {
	if cmd := sym.Normalize(token); cmd != token {
		return cmd
	}
	for _, glyph := range []string{sym.Convert, sym.Round} {
		if rest, ok := strings.CutPrefix(token, glyph); ok {
			return sym.SymbolToCommand[glyph] + rest
		}
	}
	return token
}

func (m *Machine) push(v *uv.Value) { m.stack = append(m.stack, v) }

func (m *Machine) pop(tok string) (*uv.Value, error) {
	if len(m.stack) == 0 {
		return nil, errors.Wrapf(errors.ErrStackUnderflow, "%s needs a value", tok)
	}
	v := m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
	return v, nil
}

// pop2 returns the top two values, top first.
func (m *Machine) pop2(tok string) (right, left *uv.Value, err error) {
	if len(m.stack) < 2 {
		return nil, nil, errors.Wrapf(errors.ErrStackUnderflow, "%s needs two values, have %d", tok, len(m.stack))
	}
	n := len(m.stack)
	right, left = m.stack[n-1], m.stack[n-2]
	m.stack = m.stack[:n-2]
	return right, left, nil
}

func (m *Machine) snapshot() []*uv.Value {
	out := make([]*uv.Value, len(m.stack))
	for i, v := range m.stack {
		out[i] = v.Clone()
	}
	return out
}
