package types

// Column holds one field's full sequence of generated values in a single
// typed slice. Exactly one of the payload slices is populated, selected by
// Kind; all populated slices in a batch have the same length.
type Column struct {
	// Name is the field name this column was generated for.
	Name string

	// Kind selects which payload slice is populated.
	Kind Kind

	// Strings holds text values when Kind == KindString.
	Strings []string

	// Ints holds integer values when Kind == KindInt.
	Ints []int64

	// Floats holds float values when Kind == KindFloat.
	Floats []float64

	// RGBs holds color triples when Kind == KindRGB.
	RGBs [][3]uint8
}

// Len returns the number of values in the column.
func (c *Column) Len() int {
	switch c.Kind {
	case KindString:
		return len(c.Strings)
	case KindInt:
		return len(c.Ints)
	case KindFloat:
		return len(c.Floats)
	case KindRGB:
		return len(c.RGBs)
	default:
		return 0
	}
}

// Value returns the i'th value of the column boxed as a Value.
func (c *Column) Value(i int) Value {
	switch c.Kind {
	case KindString:
		return StringValue(c.Strings[i])
	case KindInt:
		return IntValue(c.Ints[i])
	case KindFloat:
		return FloatValue(c.Floats[i])
	case KindRGB:
		return RGBValue(c.RGBs[i][0], c.RGBs[i][1], c.RGBs[i][2])
	default:
		return Value{}
	}
}

// Append adds a value to the column. The value's kind must match the
// column's kind.
func (c *Column) Append(v Value) {
	switch c.Kind {
	case KindString:
		c.Strings = append(c.Strings, v.Str())
	case KindInt:
		c.Ints = append(c.Ints, v.Int())
	case KindFloat:
		c.Floats = append(c.Floats, v.Float())
	case KindRGB:
		r, g, b := v.RGB()
		c.RGBs = append(c.RGBs, [3]uint8{r, g, b})
	}
}

// ColumnBatch is a columnar batch: one column per schema field, in
// alphabetical field order.
type ColumnBatch struct {
	// Columns holds the per-field columns in alphabetical field order.
	Columns []*Column

	// Rows is the number of values in every column.
	Rows int
}

// Column returns the column for the named field, or nil if absent.
func (b *ColumnBatch) Column(name string) *Column {
	for _, c := range b.Columns {
		if c.Name == name {
			return c
		}
	}
	return nil
}
