// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"fmt"

	"github.com/goccy/go-json"
)

// ObjectRecord is a collection object as returned by the external API. The
// schema is owned upstream (title, artistDisplayName, culture, dynasty,
// objectDate, medium, primaryImage, additionalImages, ...), so the record
// keeps every field it was given and only the proxy's enrichment rewrites a
// fixed subset of them.
type ObjectRecord map[string]any

// Text returns the textual value of field and whether it counts as present.
// Missing fields, nulls, empty strings, false and zero are absent.
func (r ObjectRecord) Text(field string) (string, bool) {
	switch v := r[field].(type) {
	case nil:
		return "", false
	case string:
		return v, v != ""
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", false
		}
		return v.String(), true
	case bool:
		if !v {
			return "", false
		}
		return "true", true
	case float64:
		if v == 0 {
			return "", false
		}
		return fmt.Sprint(v), true
	default:
		return fmt.Sprint(v), true
	}
}

// String returns field as a string, or "" when it is absent or not a string.
func (r ObjectRecord) String(field string) string {
	s, _ := r[field].(string)
	return s
}

// Strings returns field as a list of strings. Non-string elements are skipped.
func (r ObjectRecord) Strings(field string) []string {
	switch v := r[field].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}

// ObjectID returns the objectID field as an int, or 0 when absent.
func (r ObjectRecord) ObjectID() int {
	switch v := r["objectID"].(type) {
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return int(n)
	case float64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// Clone returns a shallow copy of r.
func (r ObjectRecord) Clone() ObjectRecord {
	out := make(ObjectRecord, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}
