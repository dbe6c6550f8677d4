package user

import (
	"encoding/json"
	"sort"

	"github.com/redmonkez12/plan-a-meal/internal/httputil"
)

// Patch maps column names to new values. Only the keys present in the
// request are written.
type Patch map[string]any

// Columns returns the patched columns in a stable order.
func (p Patch) Columns() []string {
	cols := make([]string, 0, len(p))
	for c := range p {
		cols = append(cols, c)
	}
	sort.Strings(cols)
	return cols
}

// ParsePatch validates a JSON object field by field. "uuid" is ignored, the
// identifier comes from the path.
func ParsePatch(body map[string]json.RawMessage) (Patch, error) {
	patch := make(Patch, len(body))
	for key, raw := range body {
		switch key {
		case "uuid":
			continue
		case "username", "password":
			s, err := requiredString(key, raw)
			if err != nil {
				return nil, err
			}
			patch[key] = s
		case "email":
			s, err := requiredString(key, raw)
			if err != nil {
				return nil, err
			}
			if err := httputil.ValidateVar("email", s, "email,max=254"); err != nil {
				return nil, err
			}
			patch[key] = s
		case "first_name", "last_name":
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, httputil.Validation(key + " must be a string or null").WithContext(key, string(raw))
			}
			patch[key] = s
		case "is_admin":
			var b *bool
			if err := json.Unmarshal(raw, &b); err != nil || b == nil {
				return nil, httputil.Validation("is_admin must be a boolean").WithContext(key, string(raw))
			}
			patch[key] = *b
		default:
			return nil, httputil.Validation("unknown field " + key).WithContext(key, string(raw))
		}
	}
	return patch, nil
}

func requiredString(key string, raw json.RawMessage) (string, error) {
	var s *string
	if err := json.Unmarshal(raw, &s); err != nil || s == nil || *s == "" {
		return "", httputil.Validation(key + " must be a non-empty string").WithContext(key, string(raw))
	}
	return *s, nil
}
