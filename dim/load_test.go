package dim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/uval/errors"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const dataTOML = `
[[dimension]]
name = "data"
default = "B"

  [[dimension.unit]]
  label = "B"
  factor = 1

  [[dimension.unit]]
  label = "KiB"
  factor = 1024

  [[dimension.unit]]
  label = "bit"
  factor = 0.125

[[dimension]]
name = "dose"
default = "Gy"

  [[dimension.unit]]
  label = "Gy"
  factor = 1

  [[dimension.unit]]
  label = "rad"
  factor = 0.01
`

const dataYAML = `
dimension:
  - name: data
    default: B
    unit:
      - {label: B, factor: 1}
      - {label: KiB, factor: 1024}
      - {label: bit, factor: 0.125}
`

func TestLoadFileTOML(t *testing.T) {
	dims, err := LoadFile(writeTable(t, "tables.toml", dataTOML))
	require.NoError(t, err)
	require.Len(t, dims, 2)

	data := dims[0]
	assert.Equal(t, "data", data.Name())
	assert.Equal(t, []string{"B", "KiB", "bit"}, data.Labels())
	assert.Equal(t, "B", data.Label(data.DefaultIndex()))

	got, ok := data.Convert(2, data.Index("KiB"), data.Index("bit"), nil)
	require.True(t, ok)
	assert.InDelta(t, 16384.0, got, 1e-9)

	assert.Equal(t, "dose", dims[1].Name())
}

func TestLoadFileYAML(t *testing.T) {
	for _, ext := range []string{"yaml", "yml"} {
		dims, err := LoadFile(writeTable(t, "tables."+ext, dataYAML))
		require.NoError(t, err, ext)
		require.Len(t, dims, 1)
		assert.Equal(t, []string{"B", "KiB", "bit"}, dims[0].Labels())
	}
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"unsupported extension", "tables.json", `{}`},
		{"malformed toml", "bad.toml", "[[dimension]\nname ="},
		{"unknown yaml field", "bad.yaml", "dimension:\n  - name: data\n    colour: red\n"},
		{"no dimensions", "empty.toml", "# nothing here\n"},
		{"no units", "nounits.toml", "[[dimension]]\nname = \"data\"\n"},
		{"bad factor", "factor.yaml", "dimension:\n  - name: data\n    unit:\n      - {label: B, factor: 0}\n"},
		{"duplicate label", "dup.yaml", "dimension:\n  - name: data\n    unit:\n      - {label: B, factor: 1}\n      - {label: B, factor: 2}\n"},
		{"unknown default", "def.yaml", "dimension:\n  - name: data\n    default: KiB\n    unit:\n      - {label: B, factor: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeTable(t, tt.file, tt.content))
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidTable), "got %v", err)
		})
	}
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, errors.ErrInvalidTable))
}

func TestLoadTables(t *testing.T) {
	r, err := LoadTables(writeTable(t, "tables.toml", dataTOML))
	require.NoError(t, err)

	a, err := r.Unit("data", "KiB")
	require.NoError(t, err)
	got, ok := a.ConvertLabel(1, "B")
	require.True(t, ok)
	assert.Equal(t, 1024.0, got)

	// the same tables twice collide
	path := writeTable(t, "tables.toml", dataTOML)
	_, err = LoadTables(path, path)
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestNewLinear(t *testing.T) {
	_, err := NewLinear("", "", []Unit{{"B", 1}})
	assert.True(t, errors.Is(err, errors.ErrInvalidTable))

	_, err = NewLinear("data", "", []Unit{{"", 1}})
	assert.True(t, errors.Is(err, errors.ErrInvalidTable))

	_, err = NewLinear("data", "", []Unit{{"a\x1fb", 1}})
	assert.True(t, errors.Is(err, errors.ErrInvalidTable))

	d, err := NewLinear("data", "", []Unit{{"KiB", 1024}, {"B", 1}})
	require.NoError(t, err)
	assert.Equal(t, "KiB", d.Label(d.DefaultIndex()), "no default falls back to the first label")

	// the factor slice is copied
	units := []Unit{{"B", 1}, {"KiB", 1024}}
	d, err = NewLinear("data", "B", units)
	require.NoError(t, err)
	units[1].Factor = 1
	got, _ := d.Convert(1, 1, 0, nil)
	assert.Equal(t, 1024.0, got)
}
