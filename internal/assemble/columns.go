package assemble

import (
	"github.com/fabrica/fabrica/internal/dispatch"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// Columns generates a column-shaped batch: all n values of the first
// field, then all n of the second, and so on in alphabetical field order.
// Because draws happen field-major, a columnar batch holds different
// values than a row batch from the same seed.
func Columns(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n int) (*types.ColumnBatch, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}

	fields := s.Alphabetical()
	batch := &types.ColumnBatch{
		Columns: make([]*types.Column, len(fields)),
		Rows:    n,
	}
	for fi := range fields {
		col := newColumn(fields[fi].Name, fields[fi].Spec.ValueKind(), n)
		for i := 0; i < n; i++ {
			v, err := d.Generate(st, &fields[fi].Spec)
			if err != nil {
				return nil, err
			}
			col.Append(v)
		}
		batch.Columns[fi] = col
	}
	return batch, nil
}

func newColumn(name string, kind types.Kind, capacity int) *types.Column {
	col := &types.Column{Name: name, Kind: kind}
	switch kind {
	case types.KindInt:
		col.Ints = make([]int64, 0, capacity)
	case types.KindFloat:
		col.Floats = make([]float64, 0, capacity)
	case types.KindRGB:
		col.RGBs = make([][3]uint8, 0, capacity)
	default:
		col.Strings = make([]string, 0, capacity)
	}
	return col
}

// appendBatch concatenates src onto dst column by column. Both batches
// must share the same schema, which chunked generation guarantees.
func appendBatch(dst, src *types.ColumnBatch) {
	for i, col := range src.Columns {
		target := dst.Columns[i]
		target.Strings = append(target.Strings, col.Strings...)
		target.Ints = append(target.Ints, col.Ints...)
		target.Floats = append(target.Floats, col.Floats...)
		target.RGBs = append(target.RGBs, col.RGBs...)
	}
	dst.Rows += src.Rows
}
