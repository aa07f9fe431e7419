package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uval/dim"
	"github.com/teranos/uval/uv"
)

func newCmd() (root, child *cobra.Command) {
	root = &cobra.Command{Use: "uval"}
	root.PersistentFlags().Bool("json", false, "")
	child = &cobra.Command{Use: "version"}
	child.Flags().BoolP("json", "j", false, "")
	root.AddCommand(child)
	return root, child
}

func TestShouldOutputJSON(t *testing.T) {
	t.Setenv("UVAL_LOG_JSON", "")

	t.Run("nil command falls back to env", func(t *testing.T) {
		assert.False(t, ShouldOutputJSON(nil))
		t.Setenv("UVAL_LOG_JSON", "true")
		assert.True(t, ShouldOutputJSON(nil))
	})

	t.Run("no flags", func(t *testing.T) {
		_, child := newCmd()
		assert.False(t, ShouldOutputJSON(child))
	})

	t.Run("global flag", func(t *testing.T) {
		root, child := newCmd()
		require.NoError(t, root.PersistentFlags().Set("json", "true"))
		assert.True(t, ShouldOutputJSON(child))
	})

	t.Run("local flag wins", func(t *testing.T) {
		root, child := newCmd()
		require.NoError(t, root.PersistentFlags().Set("json", "true"))
		require.NoError(t, child.Flags().Set("json", "false"))
		assert.False(t, ShouldOutputJSON(child))
	})
}

func TestOutputJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, OutputJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\n  \"a\": 1\n}\n", buf.String())

	t.Setenv("UVAL_JSON_COMPACT", "1")
	buf.Reset()
	require.NoError(t, OutputJSON(&buf, map[string]int{"a": 1}))
	assert.Equal(t, "{\"a\":1}\n", buf.String())

	assert.Error(t, OutputJSON(&buf, func() {}))
}

func TestNewValueView(t *testing.T) {
	m := uv.NewValue(3, dim.New(dim.Distance, "m"))
	s := uv.NewValue(2, dim.New(dim.Time, "s"))
	v := m.Mul(m).Sub(s)

	view := NewValueView(v, -1, uv.NotationGeneral)
	assert.Equal(t, "9 m^2 - 2 s", view.Text)
	assert.Equal(t, 1.0, view.Exponent)
	require.Len(t, view.Terms, 2)

	assert.Empty(t, view.Terms[0].Op)
	assert.Equal(t, 9.0, view.Terms[0].Value)
	assert.Equal(t, []UnitView{{Dimension: "distance", Label: "m", Exponent: 2}}, view.Terms[0].Units)
	assert.Equal(t, "-", view.Terms[1].Op)
	assert.Equal(t, "s", view.Terms[1].Unit)

	data, err := json.Marshal(view)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"text":"9 m^2 - 2 s"`)

	scalar := NewValueView(uv.NewScalar(4), 2, uv.NotationFixed)
	assert.Equal(t, "4.00", scalar.Text)
	assert.Empty(t, scalar.Terms[0].Units)
}

func TestRenderTables(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	out, err := RenderUnitsTable([]*uv.Dimension{dim.Get(dim.Frequency), dim.Get(dim.Volume)})
	require.NoError(t, err)
	assert.Contains(t, out, "frequency")
	assert.Contains(t, out, "Hz, kHz, MHz, GHz")
	assert.Contains(t, out, "…", "long label lists are cut")

	out, err = RenderLabelsTable(dim.Get(dim.Temperature))
	require.NoError(t, err)
	assert.Contains(t, out, "F")
	assert.Contains(t, out, "default")
}

func TestStepGlyph(t *testing.T) {
	tests := map[string]string{
		"*":        "×",
		"-":        "−",
		"=>kHz":    "→kHz",
		"round:3":  "≈3",
		"^2":       "^2",
		"-3":       "-3",
		"2@time:s": "2@time:s",
		"=>":       "→",
	}
	for in, want := range tests {
		assert.Equal(t, want, StepGlyph(in), in)
	}
	assert.Contains(t, FormatStep("*", "6 m^2"), "6 m^2")
}
