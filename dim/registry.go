package dim

import (
	"sort"
	"strings"

	"github.com/teranos/uval/errors"
	"github.com/teranos/uval/uv"
)

// Registry resolves dimension names and unit labels to Atomics. It holds the
// builtin dimensions plus any user tables and is immutable once built, so a
// single Registry may be shared across goroutines.
type Registry struct {
	byName map[string]*uv.Dimension
	order  []*uv.Dimension
	fold   bool
}

// NewRegistry builds a registry of the builtins plus custom. A custom
// dimension whose name or label table is already registered is a conflict.
func NewRegistry(custom ...*uv.Dimension) (*Registry, error) {
	r := &Registry{byName: make(map[string]*uv.Dimension, int(numKinds)+len(custom))}
	keys := make(map[string]string, int(numKinds)+len(custom))

	add := func(d *uv.Dimension) error {
		name := strings.ToLower(d.Name())
		if _, ok := r.byName[name]; ok {
			return errors.WithHint(
				errors.Wrapf(errors.ErrConflict, "dimension %q is already registered", d.Name()),
				"pick a different name for the custom table")
		}
		if other, ok := keys[d.Key()]; ok {
			return errors.Wrapf(errors.ErrConflict, "dimension %q has the same units as %q", d.Name(), other)
		}
		r.byName[name] = d
		keys[d.Key()] = d.Name()
		r.order = append(r.order, d)
		return nil
	}

	for _, d := range builtins {
		if err := add(d); err != nil {
			return nil, err
		}
	}
	for _, d := range custom {
		if d == nil {
			continue
		}
		if err := add(d); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// WithCaseFold returns a registry that resolves unit labels ignoring case.
// The receiver is unchanged.
func (r *Registry) WithCaseFold() *Registry {
	c := *r
	c.fold = true
	return &c
}

// Lookup returns the dimension registered under name, ignoring case.
func (r *Registry) Lookup(name string) (*uv.Dimension, error) {
	if d, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return nil, errors.WithHintf(
		errors.Wrapf(errors.ErrUnknownDimension, "%q", name),
		"known dimensions: %s", strings.Join(r.Names(), ", "))
}

// Dimensions returns the builtins in Kind order followed by custom tables in
// registration order.
func (r *Registry) Dimensions() []*uv.Dimension {
	out := make([]*uv.Dimension, len(r.order))
	copy(out, r.order)
	return out
}

// Names returns the registered dimension names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.order))
	for _, d := range r.order {
		names = append(names, d.Name())
	}
	sort.Strings(names)
	return names
}

// Unit resolves label strictly within dimension name and returns a new Atomic
// in that unit. Unlike uv.NewAtomic, an unknown label is an error.
func (r *Registry) Unit(name, label string, opts ...uv.AtomicOption) (*uv.Atomic, error) {
	d, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	i := d.Index(label)
	if i < 0 && r.fold {
		i = d.IndexFold(label)
	}
	if i < 0 {
		return nil, errors.WithHintf(
			errors.Wrapf(errors.ErrUnknownUnit, "%q in %s", label, d.Name()),
			"labels: %s", quoteLabels(d.Labels()))
	}
	return uv.NewAtomic(d, d.Label(i), opts...), nil
}
