package display

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/sym"
	"github.com/teranos/uval/uv"
)

// maxInlineLabels caps the label column of the overview table
const maxInlineLabels = 8

// RenderUnitsTable renders one row per dimension: name, default unit, label
// count and the first few labels
func RenderUnitsTable(dims []*uv.Dimension) (string, error) {
	data := pterm.TableData{{"Dimension", "Default", "Units", "Labels"}}
	for _, d := range dims {
		labels := d.Labels()
		shown := labels
		if len(shown) > maxInlineLabels {
			shown = shown[:maxInlineLabels]
		}
		list := strings.Join(shown, ", ")
		if len(labels) > len(shown) {
			list += ", …"
		}
		data = append(data, []string{
			d.Name(),
			d.Label(d.DefaultIndex()),
			strconv.Itoa(len(labels)),
			list,
		})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Wrap(err, "failed to render units table")
	}
	return out, nil
}

// RenderLabelsTable renders every label of d with its index, marking the
// default unit
func RenderLabelsTable(d *uv.Dimension) (string, error) {
	data := pterm.TableData{{"#", "Label", ""}}
	for i, l := range d.Labels() {
		mark := ""
		if i == d.DefaultIndex() {
			mark = "default"
		}
		data = append(data, []string{strconv.Itoa(i), l, mark})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return "", errors.Wrapf(err, "failed to render labels of %s", d.Name())
	}
	return out, nil
}

// FormatStep renders one calc step: the token as its glyph, then the value
// now on top of the stack
func FormatStep(token, top string) string {
	return pterm.Gray(sym.Calc+" ") + pterm.Yellow(StepGlyph(token)) + pterm.Gray("  "+sym.Convert+" ") + pterm.LightGreen(top)
}

// StepGlyph maps an ASCII calc token to its glyph form, keeping any argument:
// "=>kHz" becomes "→kHz", "round:3" becomes "≈3". Operands are unchanged.
func StepGlyph(token string) string {
	if s, ok := sym.CommandToSymbol[token]; ok {
		return s
	}
	for _, cmd := range []string{"=>", "round:", "^"} {
		if rest, ok := strings.CutPrefix(token, cmd); ok && rest != "" {
			return sym.CommandToSymbol[cmd] + rest
		}
	}
	return token
}

// ErrorLine renders an error message for the terminal
func ErrorLine(msg string) string {
	return pterm.Red("✗ ") + msg
}

// HintLine renders one hint below an error
func HintLine(hint string) string {
	return pterm.Gray("  hint: ") + hint
}

// RerunBanner separates watch-mode runs of a script
func RerunBanner(path string) string {
	return pterm.Gray("── " + sym.Calc + " " + path + " changed, re-running")
}
