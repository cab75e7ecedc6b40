// Package params reads model parameters from TOML and builds grids from
// named settings.
package params

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Dictionary is a flat name-to-value parameter store decoded from TOML.
type Dictionary struct {
	values map[string]interface{}
}

// NewDictionary decodes a TOML document from a string.
func NewDictionary(doc string) (*Dictionary, error) {
	d := &Dictionary{values: make(map[string]interface{})}
	if _, err := toml.Decode(doc, &d.values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	return d, nil
}

// NewDictionaryFromFile decodes a TOML document from a file.
func NewDictionaryFromFile(path string) (*Dictionary, error) {
	d := &Dictionary{values: make(map[string]interface{})}
	if _, err := toml.DecodeFile(path, &d.values); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadValue, err)
	}
	return d, nil
}

// Has reports whether the parameter is present.
func (d *Dictionary) Has(name string) bool {
	_, ok := d.values[name]
	return ok
}

// ReadString returns the named string parameter.
func (d *Dictionary) ReadString(name string) (string, error) {
	v, ok := d.values[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMissingKey, name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %q is %T, want string", ErrBadValue, name, v)
	}
	return s, nil
}

// ReadStringDefault returns the named string parameter, or def when absent.
func (d *Dictionary) ReadStringDefault(name, def string) (string, error) {
	if !d.Has(name) {
		return def, nil
	}
	return d.ReadString(name)
}

// ReadInt returns the named integer parameter.
func (d *Dictionary) ReadInt(name string) (int, error) {
	v, ok := d.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingKey, name)
	}
	i, ok := v.(int64)
	if !ok {
		return 0, fmt.Errorf("%w: %q is %T, want integer", ErrBadValue, name, v)
	}
	return int(i), nil
}

// ReadFloat returns the named float parameter. Integer values are accepted
// and widened.
func (d *Dictionary) ReadFloat(name string) (float64, error) {
	v, ok := d.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrMissingKey, name)
	}
	switch x := v.(type) {
	case float64:
		return x, nil
	case int64:
		return float64(x), nil
	default:
		return 0, fmt.Errorf("%w: %q is %T, want float", ErrBadValue, name, v)
	}
}

// ReadFloatDefault returns the named float parameter, or def when absent.
func (d *Dictionary) ReadFloatDefault(name string, def float64) (float64, error) {
	if !d.Has(name) {
		return def, nil
	}
	return d.ReadFloat(name)
}
