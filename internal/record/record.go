// Package record provides safe dotted-path access to a raw player record.
//
// The Hypixel player document is deeply nested and loosely structured:
// fields come and go between API versions, counters are absent until the
// player first touches a mode, and a handful of keys changed names over the
// years. Every getter here is total — a missing segment, a non-object in
// the middle of a path, or a value of the wrong type yields the supplied
// default, never an error.
package record

import "github.com/tidwall/gjson"

// Record is a read-only view over one player's raw JSON document.
// The zero Record behaves like an empty object.
type Record struct {
	raw string
}

// FromJSON wraps raw JSON bytes in a Record. The bytes are not validated;
// unparseable input simply resolves every path to its default.
func FromJSON(b []byte) Record {
	return Record{raw: string(b)}
}

// FromString wraps a raw JSON string in a Record.
func FromString(s string) Record {
	return Record{raw: s}
}

// Raw returns the underlying JSON document.
func (r Record) Raw() string { return r.raw }

// IsEmpty reports whether the record holds no document at all.
func (r Record) IsEmpty() bool { return r.raw == "" }

// Sub returns the subtree at a dotted path as a new Record. If the path is
// missing or does not hold an object, the returned Record is empty and all
// lookups against it yield defaults.
func (r Record) Sub(path string) Record {
	res := gjson.Get(r.raw, path)
	if !res.IsObject() {
		return Record{}
	}
	return Record{raw: res.Raw}
}

// Exists reports whether a numeric-or-otherwise value is present at path.
func (r Record) Exists(path string) bool {
	return gjson.Get(r.raw, path).Exists()
}

// Int returns the integer at path, or def when the path is missing or the
// value is not a JSON number. Numeric coercion of strings is deliberately
// not performed; a string where a counter belongs counts as absent.
func (r Record) Int(path string, def int64) int64 {
	res := gjson.Get(r.raw, path)
	if res.Type != gjson.Number {
		return def
	}
	return res.Int()
}

// Float returns the float at path, or def when the path is missing or the
// value is not a JSON number.
func (r Record) Float(path string, def float64) float64 {
	res := gjson.Get(r.raw, path)
	if res.Type != gjson.Number {
		return def
	}
	return res.Float()
}

// Str returns the string at path, or def when the path is missing or the
// value is not a JSON string.
func (r Record) Str(path string, def string) string {
	res := gjson.Get(r.raw, path)
	if res.Type != gjson.String {
		return def
	}
	return res.String()
}

// FirstInt tries each candidate path in order and returns the first one
// holding a JSON number, or def when none does. This is the ordered
// replacement for chained lookup-with-dynamic-default calls.
func (r Record) FirstInt(def int64, paths ...string) int64 {
	for _, p := range paths {
		res := gjson.Get(r.raw, p)
		if res.Type == gjson.Number {
			return res.Int()
		}
	}
	return def
}
