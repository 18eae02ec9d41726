package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// params reads typed parameter values, falling back to declared defaults.
type params struct {
	entry  Entry
	values map[string]string
}

func (p params) text(name string) string {
	if v, ok := p.values[name]; ok {
		return v
	}
	for _, d := range p.entry.Params {
		if d.Name == name {
			return d.Default
		}
	}

	return ""
}

func (p params) integer(name string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(p.text(name)))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q is not an integer", ErrBadParam, name, p.text(name))
	}

	return v, nil
}

func (p params) flag(name string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(p.text(name)))
	if err != nil {
		return false, fmt.Errorf("%w: %s=%q is not a boolean", ErrBadParam, name, p.text(name))
	}

	return v, nil
}

// integers reads a comma-separated integer list.
func (p params) integers(name string) ([]int, error) {
	raw := strings.TrimSpace(p.text(name))
	if raw == "" {
		return nil, nil
	}
	fields := strings.Split(raw, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q is not an integer list", ErrBadParam, name, raw)
		}
		out[i] = v
	}

	return out, nil
}

// prefixed returns the values whose key starts with prefix, prefix removed.
func (p params) prefixed(prefix string) map[string]string {
	out := make(map[string]string)
	for k, v := range p.values {
		if rest, ok := strings.CutPrefix(k, prefix); ok && rest != "" {
			out[rest] = v
		}
	}

	return out
}
