// Package assemble turns per-field generators into whole batches: row and
// column shaped, unique-constrained, and chunked. All entry points
// validate the batch size before consuming any draws, so a rejected call
// leaves the stream exactly where it was.
package assemble

import (
	"github.com/fabrica/fabrica/internal/dispatch"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// Records generates n map-shaped rows. Fields are drawn in the schema's
// declaration order.
func Records(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n int) ([]types.Record, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}

	fields := s.Fields()
	rows := make([]types.Record, 0, n)
	for i := 0; i < n; i++ {
		row := make(types.Record, len(fields))
		for fi := range fields {
			v, err := d.Generate(st, &fields[fi].Spec)
			if err != nil {
				return nil, err
			}
			row[fields[fi].Name] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Tuples generates n tuple-shaped rows. Values appear in alphabetical
// field-name order, matching Schema.FieldNames.
func Tuples(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n int) ([]types.Tuple, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return nil, err
	}

	fields := s.Alphabetical()
	rows := make([]types.Tuple, 0, n)
	for i := 0; i < n; i++ {
		row := make(types.Tuple, len(fields))
		for fi := range fields {
			v, err := d.Generate(st, &fields[fi].Spec)
			if err != nil {
				return nil, err
			}
			row[fi] = v
		}
		rows = append(rows, row)
	}
	return rows, nil
}
