// Package normalize is the single translation boundary between the
// upstream API's wire shapes and the canonical entities in
// internal/models. The API mixes English and Spanish field names and
// wraps lists four different ways; every alias that exists on the wire
// is declared once here, in an ordered table per entity, and nowhere
// else in the codebase.
package normalize

import (
	"encoding/json"
	"time"
)

// Record is one raw wire object.
type Record map[string]interface{}

// Records flattens any of the accepted list shapes into a slice of raw
// records: a bare array, an object wrapping an array under "data" or one
// of the given entity keys, or a single bare object. Anything else
// (including a wrapper with no array anywhere) yields an empty slice,
// never an error.
func Records(raw json.RawMessage, wrapperKeys ...string) []Record {
	if len(raw) == 0 {
		return nil
	}

	var anyVal interface{}
	if err := json.Unmarshal(raw, &anyVal); err != nil {
		return nil
	}

	switch v := anyVal.(type) {
	case []interface{}:
		return toRecords(v)
	case map[string]interface{}:
		keys := append([]string{"data"}, wrapperKeys...)
		for _, key := range keys {
			if arr, ok := v[key].([]interface{}); ok {
				return toRecords(arr)
			}
			// some endpoints wrap a single object under the same key
			if obj, ok := v[key].(map[string]interface{}); ok {
				return []Record{obj}
			}
		}
		// a bare object is a one-element list, but only when it looks
		// like an entity rather than an empty envelope
		if looksLikeEntity(v) {
			return []Record{v}
		}
		return nil
	default:
		return nil
	}
}

func toRecords(arr []interface{}) []Record {
	out := make([]Record, 0, len(arr))
	for _, item := range arr {
		if obj, ok := item.(map[string]interface{}); ok {
			out = append(out, obj)
		}
	}
	return out
}

// looksLikeEntity guards against treating an envelope like {foo:"bar"} or
// {total: 3} as a record. Entities always carry some identity key.
func looksLikeEntity(obj map[string]interface{}) bool {
	for _, key := range []string{"_id", "id"} {
		if _, ok := obj[key]; ok {
			return true
		}
	}
	return false
}

// str returns the first non-empty string among the aliased keys.
func (r Record) str(keys ...string) string {
	for _, key := range keys {
		if v, ok := r[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

// num returns the first numeric value among the aliased keys. JSON
// numbers decode as float64; numeric strings slip through on some
// endpoints and are tolerated.
func (r Record) num(keys ...string) (float64, bool) {
	for _, key := range keys {
		switch v := r[key].(type) {
		case float64:
			return v, true
		case json.Number:
			if f, err := v.Float64(); err == nil {
				return f, true
			}
		case string:
			var f float64
			if err := json.Unmarshal([]byte(v), &f); err == nil {
				return f, true
			}
		}
	}
	return 0, false
}

func (r Record) intVal(keys ...string) int {
	f, _ := r.num(keys...)
	return int(f)
}

func (r Record) floatVal(keys ...string) float64 {
	f, _ := r.num(keys...)
	return f
}

// obj returns the first embedded object among the aliased keys.
func (r Record) obj(keys ...string) (Record, bool) {
	for _, key := range keys {
		if v, ok := r[key].(map[string]interface{}); ok {
			return v, true
		}
	}
	return nil, false
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// date parses the first parseable date among the aliased keys. Absent or
// unparseable values return nil: a date the server never sent must stay
// absent rather than be fabricated.
func (r Record) date(keys ...string) *time.Time {
	for _, key := range keys {
		s, ok := r[key].(string)
		if !ok || s == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return &t
			}
		}
	}
	return nil
}

// refID resolves a foreign key: a direct *Id field first, then the
// identity of an embedded object.
func (r Record) refID(idKeys []string, objKeys []string) string {
	if id := r.str(idKeys...); id != "" {
		return id
	}
	if embedded, ok := r.obj(objKeys...); ok {
		return embedded.str("_id", "id")
	}
	return ""
}
