package calc

import (
	"bufio"
	"context"
	"io"
	"strings"

	"github.com/kballard/go-shellquote"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
	"github.com/teranos/uval/uv"
)

// Result is the value of one script line.
type Result struct {
	Line   int       `json:"line"`
	Source string    `json:"source"`
	Value  *uv.Value `json:"-"`
}

// Split breaks an expression into tokens, honouring shell quoting so labels
// with spaces can be written as '4@area:sq m'.
func Split(line string) ([]string, error) {
	args, err := shellquote.Split(line)
	if err != nil {
		return nil, errors.WithHint(
			errors.Wrap(errors.ErrInvalidRequest, err.Error()),
			"close every quote; labels with spaces are written as '4@area:sq m'")
	}
	return args, nil
}

// EvalLine splits and evaluates a single expression.
func (m *Machine) EvalLine(line string) (*uv.Value, error) {
	tokens, err := Split(line)
	if err != nil {
		return nil, err
	}
	return m.Eval(tokens)
}

// EvalScript evaluates one expression per line. Blank lines and lines
// starting with # are skipped. Evaluation stops at the first failing line.
func (m *Machine) EvalScript(ctx context.Context, r io.Reader) ([]Result, error) {
	var results []Result
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		if err := ctx.Err(); err != nil {
			return results, err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		v, err := m.EvalLine(line)
		if err != nil {
			return results, errors.Wrapf(err, "line %d", n)
		}
		logger.CalcInfow("Evaluated line",
			logger.FieldLine, n,
			logger.FieldValue, v.String())
		results = append(results, Result{Line: n, Source: line, Value: v})
	}
	if err := scanner.Err(); err != nil {
		return results, errors.Wrap(err, "failed to read script")
	}
	return results, nil
}
