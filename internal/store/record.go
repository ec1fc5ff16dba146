package store

import (
	json "github.com/goccy/go-json"
)

// Record is a single loosely-typed row. Numeric values arrive as float64 or
// json.Number depending on the decoder path, so the accessors below cope with
// both.
type Record map[string]any

// ID returns the record's numeric id, or 0 when absent or non-numeric.
func (r Record) ID() int64 {
	return r.Int64("id")
}

// Int64 reads key as an integer.
func (r Record) Int64(key string) int64 {
	switch v := r[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, _ := v.Int64()
		return n
	}
	return 0
}

// Float reads key as a float.
func (r Record) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	case int:
		return float64(v)
	case json.Number:
		f, _ := v.Float64()
		return f
	}
	return 0
}

// String reads key as a string, or "" when absent.
func (r Record) String(key string) string {
	s, _ := r[key].(string)
	return s
}

// Merge overlays patch onto r, keeping r's id.
func (r Record) Merge(patch Record) {
	id, hasID := r["id"]
	for k, v := range patch {
		r[k] = v
	}
	if hasID {
		r["id"] = id
	}
}

// Clone returns a deep copy. Records handed out of the store must be clones:
// the live map may be merged into by a later write while the caller is still
// serializing its copy.
func (r Record) Clone() Record {
	if r == nil {
		return nil
	}
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case Record:
		return t.Clone()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, vv := range t {
			out[k] = cloneValue(vv)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, vv := range t {
			out[i] = cloneValue(vv)
		}
		return out
	}
	return v
}

// CloneAll deep-copies a slice of records. The result is never nil.
func CloneAll(recs []Record) []Record {
	out := make([]Record, len(recs))
	for i, rec := range recs {
		out[i] = rec.Clone()
	}
	return out
}
