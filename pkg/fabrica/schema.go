package fabrica

import (
	"context"

	"github.com/fabrica/fabrica/internal/assemble"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// SchemaField is one uncompiled schema entry. Spec is either a bare type
// name ("email") or a parameter tuple ([]interface{}{"int", 18, 65}).
type SchemaField struct {
	Name string
	Spec interface{}
}

// Schema is a compiled, validated schema bound to the generator that
// compiled it. Compilation resolves custom provider names against that
// generator's registry.
type Schema struct {
	compiled *schema.Schema
}

// FieldNames returns the schema's field names in alphabetical order, the
// order RowTuples and Columns use.
func (s *Schema) FieldNames() []string {
	return s.compiled.FieldNames()
}

// Len returns the number of fields.
func (s *Schema) Len() int { return s.compiled.Len() }

// Compiled returns the underlying compiled schema. The sink layer uses
// it to derive table layouts.
func (s *Schema) Compiled() *schema.Schema { return s.compiled }

// CompileSchema validates an ordered field list. The input order becomes
// the declaration order that map-shaped rows iterate in.
func (g *Generator) CompileSchema(fields []SchemaField) (*Schema, error) {
	raw := make([]schema.RawField, len(fields))
	for i, f := range fields {
		raw[i] = schema.RawField{Name: f.Name, Spec: f.Spec}
	}
	compiled, err := schema.Compile(raw, g.registry.Has)
	if err != nil {
		return nil, err
	}
	return &Schema{compiled: compiled}, nil
}

// CompileSchemaMap validates a map-shaped schema. Go maps are unordered,
// so field names are sorted to fix the declaration order.
func (g *Generator) CompileSchemaMap(raw map[string]interface{}) (*Schema, error) {
	compiled, err := schema.CompileMap(raw, g.registry.Has)
	if err != nil {
		return nil, err
	}
	return &Schema{compiled: compiled}, nil
}

// CompileSchemaYAML validates a YAML schema document, keeping the
// document's field order as the declaration order.
func (g *Generator) CompileSchemaYAML(doc []byte) (*Schema, error) {
	compiled, err := schema.ParseYAML(doc, g.registry.Has)
	if err != nil {
		return nil, err
	}
	return &Schema{compiled: compiled}, nil
}

// Rows generates n rows as name-to-value maps, drawing fields in
// declaration order.
func (g *Generator) Rows(s *Schema, n int) ([]types.Record, error) {
	return assemble.Records(g.stream, g.dispatcher, s.compiled, n)
}

// RowTuples generates n rows as positional tuples in alphabetical field
// order.
func (g *Generator) RowTuples(s *Schema, n int) ([]types.Tuple, error) {
	return assemble.Tuples(g.stream, g.dispatcher, s.compiled, n)
}

// Columns generates one columnar batch, field-major in alphabetical
// order. A columnar batch drawn from the same seed as a row batch holds
// different values; only the shape contract is shared.
func (g *Generator) Columns(s *Schema, n int) (*types.ColumnBatch, error) {
	return assemble.Columns(g.stream, g.dispatcher, s.compiled, n)
}

// RowIterator yields map-shaped rows chunk by chunk. It runs on a private
// copy of the generator's stream, so iterating does not disturb other
// calls on the generator.
type RowIterator struct {
	it *assemble.RecordChunks
}

// Next returns the next chunk. A false result means iteration ended;
// check Err to tell completion from failure. Cancellation via ctx is
// observed only between chunks.
func (r *RowIterator) Next(ctx context.Context) ([]types.Record, bool) {
	return r.it.Next(ctx)
}

// Err returns the error that stopped iteration, if any.
func (r *RowIterator) Err() error { return r.it.Err() }

// RowsChunked starts chunked row generation. A chunkSize of 0 means the
// default of 10,000. Chunks concatenate to exactly the output of a single
// Rows call with the same stream state.
func (g *Generator) RowsChunked(s *Schema, n, chunkSize int) (*RowIterator, error) {
	it, err := assemble.NewRecordChunks(g.stream, g.dispatcher, s.compiled, n, chunkSize)
	if err != nil {
		return nil, err
	}
	return &RowIterator{it: it}, nil
}

// TupleIterator yields tuple-shaped rows chunk by chunk.
type TupleIterator struct {
	it *assemble.TupleChunks
}

func (r *TupleIterator) Next(ctx context.Context) ([]types.Tuple, bool) {
	return r.it.Next(ctx)
}

func (r *TupleIterator) Err() error { return r.it.Err() }

// RowTuplesChunked starts chunked tuple generation with the same chunking
// rules as RowsChunked.
func (g *Generator) RowTuplesChunked(s *Schema, n, chunkSize int) (*TupleIterator, error) {
	it, err := assemble.NewTupleChunks(g.stream, g.dispatcher, s.compiled, n, chunkSize)
	if err != nil {
		return nil, err
	}
	return &TupleIterator{it: it}, nil
}

// ColumnIterator yields columnar batches chunk by chunk. Each chunk is
// generated field-major on its own, so concatenated chunks match a single
// Columns call only when the chunk size covers all rows.
type ColumnIterator struct {
	it *assemble.ColumnChunks
}

func (r *ColumnIterator) Next(ctx context.Context) (*types.ColumnBatch, bool) {
	return r.it.Next(ctx)
}

func (r *ColumnIterator) Err() error { return r.it.Err() }

// Collect drains the iterator into one concatenated batch.
func (r *ColumnIterator) Collect(ctx context.Context) (*types.ColumnBatch, error) {
	return assemble.CollectColumns(ctx, r.it)
}

// ColumnsChunked starts chunked columnar generation.
func (g *Generator) ColumnsChunked(s *Schema, n, chunkSize int) (*ColumnIterator, error) {
	it, err := assemble.NewColumnChunks(g.stream, g.dispatcher, s.compiled, n, chunkSize)
	if err != nil {
		return nil, err
	}
	return &ColumnIterator{it: it}, nil
}
