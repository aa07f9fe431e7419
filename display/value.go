package display

import (
	"github.com/teranos/uval/uv"
)

// UnitView is the JSON shape of one unit inside a term
type UnitView struct {
	Dimension string  `json:"dimension"`
	Label     string  `json:"label"`
	Exponent  float64 `json:"exponent"`
}

// TermView is the JSON shape of one term of a value
type TermView struct {
	Op    string     `json:"op,omitempty"`
	Value float64    `json:"value"`
	Unit  string     `json:"unit,omitempty"`
	Units []UnitView `json:"units,omitempty"`
}

// ValueView is the JSON shape of a value. Text is the same rendering the
// console prints.
type ValueView struct {
	Text     string     `json:"text"`
	Exponent float64    `json:"exponent"`
	Terms    []TermView `json:"terms"`
}

// NewValueView builds the view from the value's accessors
func NewValueView(v *uv.Value, precision int, n uv.Notation) ValueView {
	view := ValueView{
		Text:     v.Print(precision, n),
		Exponent: v.Exponent(),
		Terms:    make([]TermView, 0, v.NumTerms()),
	}
	for i, g := range v.Terms() {
		t := TermView{
			Value: g.Value(),
			Unit:  g.UnitString(),
		}
		if i > 0 {
			op := g.Op()
			if op == uv.OpNone {
				op = uv.OpAdd
			}
			t.Op = op.String()
		}
		for _, a := range g.Units() {
			t.Units = append(t.Units, UnitView{
				Dimension: a.Dimension().Name(),
				Label:     a.Label(),
				Exponent:  a.Exponent,
			})
		}
		view.Terms = append(view.Terms, t)
	}
	return view
}
