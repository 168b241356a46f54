// Package schema defines the validated field specification model and the
// compiler that produces it from raw schema encodings.
package schema

import (
	"sort"
	"time"

	"github.com/fabrica/fabrica/pkg/types"
)

// SpecKind discriminates the FieldSpec union.
type SpecKind uint8

const (
	// SpecSimple is a bare built-in type name ("name", "email", ...).
	SpecSimple SpecKind = iota

	// SpecIntRange is ("int", min, max), both ends inclusive.
	SpecIntRange

	// SpecFloatRange is ("float", min, max), both ends inclusive.
	SpecFloatRange

	// SpecTextRange is ("text", min_chars, max_chars).
	SpecTextRange

	// SpecDateRange is ("date", start, end) with YYYY-MM-DD bounds.
	SpecDateRange

	// SpecChoice is ("choice", options...).
	SpecChoice

	// SpecCustom names a registered custom provider.
	SpecCustom
)

// FieldSpec is the validated, tagged representation of one schema field.
// Exactly the fields for the active Kind are meaningful. A FieldSpec that
// came out of Compile is always internally consistent, so generation never
// re-validates it.
type FieldSpec struct {
	Kind SpecKind

	// TypeName holds the built-in type for SpecSimple and the provider
	// name for SpecCustom.
	TypeName string

	// IntMin/IntMax bound SpecIntRange.
	IntMin, IntMax int64

	// FloatMin/FloatMax bound SpecFloatRange.
	FloatMin, FloatMax float64

	// MinChars/MaxChars bound SpecTextRange.
	MinChars, MaxChars int

	// DateStart/DateEnd are the original YYYY-MM-DD bounds of a
	// SpecDateRange; StartDay/EndDay are the same bounds as days since
	// the Unix epoch, precomputed so draws need no parsing.
	DateStart, DateEnd string
	StartDay, EndDay   int64

	// Options holds the SpecChoice list.
	Options []string
}

// ValueKind returns the Value variant this spec produces. The mapping is
// total: every compiled spec produces exactly one kind.
func (f *FieldSpec) ValueKind() types.Kind {
	switch f.Kind {
	case SpecIntRange:
		return types.KindInt
	case SpecFloatRange:
		return types.KindFloat
	case SpecSimple:
		switch f.TypeName {
		case "int":
			return types.KindInt
		case "float":
			return types.KindFloat
		case "rgb_color":
			return types.KindRGB
		}
	}
	return types.KindString
}

// Field pairs a name with its validated spec.
type Field struct {
	Name string
	Spec FieldSpec
}

// Schema is an ordered set of validated fields. Declaration order is the
// iteration order for map-shaped records; alphabetical order is the
// canonical order for tuple and columnar output.
type Schema struct {
	fields []Field
	alpha  []int
	byName map[string]int
}

func newSchema(fields []Field) *Schema {
	s := &Schema{
		fields: fields,
		alpha:  make([]int, len(fields)),
		byName: make(map[string]int, len(fields)),
	}
	for i, f := range fields {
		s.alpha[i] = i
		s.byName[f.Name] = i
	}
	sort.Slice(s.alpha, func(i, j int) bool {
		return fields[s.alpha[i]].Name < fields[s.alpha[j]].Name
	})
	return s
}

// Len returns the number of fields.
func (s *Schema) Len() int { return len(s.fields) }

// Fields returns the fields in declaration order.
func (s *Schema) Fields() []Field { return s.fields }

// Alphabetical returns the fields in alphabetical name order.
func (s *Schema) Alphabetical() []Field {
	out := make([]Field, len(s.alpha))
	for i, idx := range s.alpha {
		out[i] = s.fields[idx]
	}
	return out
}

// FieldNames returns the field names in alphabetical order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.alpha))
	for i, idx := range s.alpha {
		names[i] = s.fields[idx].Name
	}
	return names
}

// Lookup returns the spec for the named field.
func (s *Schema) Lookup(name string) (*FieldSpec, bool) {
	idx, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	return &s.fields[idx].Spec, true
}

// dateLayout is the wire format for date bounds.
const dateLayout = "2006-01-02"

// parseDay parses a YYYY-MM-DD string into days since the Unix epoch.
func parseDay(s string) (int64, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return 0, err
	}
	return t.Unix() / 86400, nil
}

// FormatDay renders days-since-epoch back into YYYY-MM-DD.
func FormatDay(day int64) string {
	return time.Unix(day*86400, 0).UTC().Format(dateLayout)
}
