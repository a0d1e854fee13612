package form

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned by Decode for unparsable numeric input.
var ErrInvalidValue = errors.New("invalid value")

// Record is a flat set of form values keyed by field name, or a nested
// initial record read through dotted paths.
type Record map[string]any

// Lookup resolves a dotted path. Crossing a list maps the rest of the path
// over its elements, so "consoles.id" yields every console id.
func Lookup(record Record, path string) any {
	if record == nil || path == "" {
		return nil
	}
	return lookup(map[string]any(record), strings.Split(path, "."))
}

func lookup(v any, parts []string) any {
	if len(parts) == 0 {
		return v
	}
	switch node := v.(type) {
	case map[string]any:
		return lookup(node[parts[0]], parts[1:])
	case Record:
		return lookup(map[string]any(node), parts)
	case []any:
		out := make([]any, 0, len(node))
		for _, el := range node {
			if val := lookup(el, parts); val != nil {
				out = append(out, val)
			}
		}
		return out
	}
	return nil
}

// Decode converts submitted string values into typed record values:
// numbers and years to int, selects to uint, multiselects to []uint.
// Image fields are left to Submit.
func Decode(fields []Field, values url.Values) (Record, error) {
	rec := Record{}
	for _, f := range fields {
		raw, present := values[f.Name]
		if f.Kind == KindMultiselect {
			ids, err := parseIDs(raw)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, f.Name)
			}
			if present {
				rec[f.Name] = ids
			}
			continue
		}
		if !present {
			continue
		}
		s := strings.TrimSpace(values.Get(f.Name))
		switch f.Kind {
		case KindNumber, KindYear:
			if s == "" {
				rec[f.Name] = 0
				continue
			}
			if f.Kind == KindYear && len(s) > 4 {
				// date inputs send YYYY-MM-DD
				s = s[:4]
			}
			n, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, f.Name)
			}
			rec[f.Name] = n
		case KindSelect:
			if s == "" {
				rec[f.Name] = uint(0)
				continue
			}
			id, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrInvalidValue, f.Name)
			}
			rec[f.Name] = uint(id)
		default:
			rec[f.Name] = s
		}
	}
	return rec, nil
}

func parseIDs(raw []string) ([]uint, error) {
	ids := []uint{}
	for _, r := range raw {
		for _, part := range strings.Split(r, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseUint(part, 10, 64)
			if err != nil {
				return nil, err
			}
			ids = append(ids, uint(id))
		}
	}
	return ids, nil
}

func (r Record) String(name string) string {
	s, _ := r[name].(string)
	return s
}

func (r Record) Int(name string) int {
	n, _ := r[name].(int)
	return n
}

func (r Record) ID(name string) uint {
	id, _ := r[name].(uint)
	return id
}

// IDs returns nil when the field was not submitted.
func (r Record) IDs(name string) []uint {
	ids, _ := r[name].([]uint)
	return ids
}

func (r Record) Has(name string) bool {
	_, ok := r[name]
	return ok
}

func isEmpty(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(x) == ""
	case uint:
		return x == 0
	case []uint:
		return len(x) == 0
	}
	return false
}
