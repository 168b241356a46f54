// Package types provides the core value model for Fabrica generated data.
package types

import (
	"fmt"
	"strconv"
)

// Kind identifies the concrete variant held by a Value.
type Kind uint8

const (
	// KindString holds text values (names, emails, dates, choices, ...).
	KindString Kind = iota

	// KindInt holds 64-bit signed integers.
	KindInt

	// KindFloat holds 64-bit floats.
	KindFloat

	// KindRGB holds a fixed (r, g, b) byte triple.
	KindRGB
)

// String returns the kind name used in error messages and column metadata.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindRGB:
		return "rgb"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a tagged union of the types a field generator can produce.
// The active variant is fully determined by the field spec that produced it.
type Value struct {
	kind Kind
	str  string
	i64  int64
	f64  float64
	rgb  [3]uint8
}

// StringValue wraps a text value.
func StringValue(s string) Value { return Value{kind: KindString, str: s} }

// IntValue wraps a 64-bit integer value.
func IntValue(i int64) Value { return Value{kind: KindInt, i64: i} }

// FloatValue wraps a 64-bit float value.
func FloatValue(f float64) Value { return Value{kind: KindFloat, f64: f} }

// RGBValue wraps an (r, g, b) color triple.
func RGBValue(r, g, b uint8) Value { return Value{kind: KindRGB, rgb: [3]uint8{r, g, b}} }

// Kind returns the active variant.
func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload. Valid only when Kind() == KindString.
func (v Value) Str() string { return v.str }

// Int returns the integer payload. Valid only when Kind() == KindInt.
func (v Value) Int() int64 { return v.i64 }

// Float returns the float payload. Valid only when Kind() == KindFloat.
func (v Value) Float() float64 { return v.f64 }

// RGB returns the color payload. Valid only when Kind() == KindRGB.
func (v Value) RGB() (r, g, b uint8) { return v.rgb[0], v.rgb[1], v.rgb[2] }

// Equal reports whether two values hold the same variant and payload.
func (v Value) Equal(o Value) bool { return v == o }

// String renders the value for display and for the JSONL sink.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.i64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f64, 'g', -1, 64)
	case KindRGB:
		return fmt.Sprintf("(%d, %d, %d)", v.rgb[0], v.rgb[1], v.rgb[2])
	default:
		return ""
	}
}

// Native unboxes the value into the matching Go type, for JSON encoding
// and SQL binding.
func (v Value) Native() interface{} {
	switch v.kind {
	case KindString:
		return v.str
	case KindInt:
		return v.i64
	case KindFloat:
		return v.f64
	case KindRGB:
		// An array, not a slice: encoding/json renders it as numbers
		// instead of base64.
		return v.rgb
	default:
		return nil
	}
}
