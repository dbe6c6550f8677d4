package food

import (
	"encoding/json"
	"sort"

	"github.com/redmonkez12/plan-a-meal/internal/database"
	"github.com/redmonkez12/plan-a-meal/internal/httputil"
)

// numericColumns are the nullable number columns a patch may touch.
var numericColumns = func() map[string]struct{} {
	cols := map[string]struct{}{"weight": {}}
	for _, c := range database.NutrientColumns {
		cols[c] = struct{}{}
	}
	return cols
}()

// Patch maps column names to new values; absent keys are left untouched.
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

// ParsePatch validates a JSON update body. "uuid" is ignored.
func ParsePatch(body map[string]json.RawMessage) (Patch, error) {
	patch := make(Patch, len(body))
	for key, raw := range body {
		switch key {
		case "uuid":
			continue
		case "name":
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil || s == nil || *s == "" {
				return nil, httputil.Validation("name must be a non-empty string").WithContext("name", nil)
			}
			patch[key] = *s
		case "brand":
			var s *string
			if err := json.Unmarshal(raw, &s); err != nil {
				return nil, httputil.Validation("brand must be a string or null").WithContext(key, string(raw))
			}
			patch[key] = s
		default:
			if _, ok := numericColumns[key]; !ok {
				return nil, httputil.Validation("unknown field " + key).WithContext(key, string(raw))
			}
			var f *float64
			if err := json.Unmarshal(raw, &f); err != nil {
				return nil, httputil.Validation(key + " must be a number or null").WithContext(key, string(raw))
			}
			patch[key] = f
		}
	}
	return patch, nil
}
