package dim

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/logger"
	"github.com/teranos/uval/uv"
)

// TableFile is the on-disk shape of a user table file:
//
//	[[dimension]]
//	name = "data"
//	default = "B"
//	  [[dimension.unit]]
//	  label = "B"
//	  factor = 1
type TableFile struct {
	Dimensions []TableSpec `toml:"dimension" yaml:"dimension"`
}

// TableSpec describes one linear dimension.
type TableSpec struct {
	Name    string `toml:"name" yaml:"name"`
	Default string `toml:"default" yaml:"default"`
	Units   []Unit `toml:"unit" yaml:"unit"`
}

// LoadFile reads the linear dimensions defined in path. The format is chosen
// by extension: .toml, .yaml or .yml.
func LoadFile(path string) ([]*uv.Dimension, error) {
	var tf TableFile

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.DecodeFile(path, &tf)
		if err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidTable), "failed to parse %s", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			logger.Warnw("Ignoring unknown keys in unit table",
				logger.FieldFile, path,
				"keys", strings.Join(keys, ", "))
		}
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", path)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&tf); err != nil {
			return nil, errors.Wrapf(errors.Mark(err, errors.ErrInvalidTable), "failed to parse %s", path)
		}
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidTable, "unsupported table file %s", path),
			"unit tables are .toml, .yaml or .yml files")
	}

	if len(tf.Dimensions) == 0 {
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrInvalidTable, "%s defines no dimensions", path),
			"declare tables under [[dimension]]")
	}

	dims := make([]*uv.Dimension, 0, len(tf.Dimensions))
	for _, spec := range tf.Dimensions {
		d, err := NewLinear(spec.Name, spec.Default, spec.Units)
		if err != nil {
			return nil, errors.Wrapf(err, "in %s", path)
		}
		dims = append(dims, d)
	}

	logger.UnitInfow("Loaded unit tables",
		logger.FieldFile, path,
		logger.FieldCount, len(dims))
	return dims, nil
}

// LoadTables loads every file in order and builds a registry of the builtins
// plus the loaded dimensions.
func LoadTables(paths ...string) (*Registry, error) {
	var custom []*uv.Dimension
	for _, p := range paths {
		dims, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		custom = append(custom, dims...)
	}
	return NewRegistry(custom...)
}
