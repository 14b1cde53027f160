// Package stats derives curated, per-mode performance reports from a raw
// Hypixel player record. The extraction rules are intentionally faithful to
// the long-standing console tool behavior: counters are omitted when zero,
// ratios use the N/A sentinel when the denominator is zero, and output
// order follows the static catalogs, not the input document.
package stats

import (
	"math"
	"strconv"
)

// NotAvailable is the sentinel shown in place of a ratio whose denominator
// is zero.
const NotAvailable = "N/A"

// Kind discriminates the payload of a Value.
type Kind int

const (
	KindInt Kind = iota
	KindFloat
	KindString
	KindNA
)

// Value is one derived statistic: an integer counter, a float (levels and
// computed ratios), a display string, or the N/A marker for a ratio that
// could not be computed.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// IntValue wraps an integer counter.
func IntValue(n int64) Value { return Value{kind: KindInt, i: n} }

// FloatValue wraps a float statistic.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f: f} }

// StrValue wraps a display string.
func StrValue(s string) Value { return Value{kind: KindString, s: s} }

// NA is the unavailable-ratio marker.
func NA() Value { return Value{kind: KindNA} }

// Ratio computes num/den rounded to two decimals, with the denominator
// clamped to a minimum of 1. When the true denominator is not positive the
// ratio is unavailable and NA is returned instead.
func Ratio(num, den float64) Value {
	if den <= 0 {
		return NA()
	}
	return FloatValue(round2(num / math.Max(1, den)))
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// numValue picks the integer representation for whole numbers so counters
// read from float-typed JSON render without a fractional part.
func numValue(f float64) Value {
	if f == math.Trunc(f) {
		return IntValue(int64(f))
	}
	return FloatValue(f)
}

// Kind returns the value's discriminator.
func (v Value) Kind() Kind { return v.kind }

// IsNA reports whether the value is the unavailable marker.
func (v Value) IsNA() bool { return v.kind == KindNA }

// Int returns the integer payload (zero for other kinds).
func (v Value) Int() int64 { return v.i }

// Float returns the float payload (zero for other kinds).
func (v Value) Float() float64 { return v.f }

// String renders the value without locale formatting. Floats always carry
// two decimals, matching the ratio and level precision.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'f', 2, 64)
	case KindString:
		return v.s
	default:
		return NotAvailable
	}
}
