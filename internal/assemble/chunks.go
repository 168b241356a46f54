package assemble

import (
	"context"

	"github.com/fabrica/fabrica/internal/dispatch"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

// DefaultChunkSize is used when a chunked call passes a chunk size of
// zero.
const DefaultChunkSize = 10_000

// chunker tracks the shared state of the chunk iterators. Construction
// clones the caller's stream, so iterating never advances the stream the
// generator keeps using.
type chunker struct {
	st        *rng.Stream
	d         *dispatch.Dispatcher
	s         *schema.Schema
	remaining int
	chunkSize int
	err       error
	done      bool
}

func newChunker(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n, chunkSize int) (chunker, error) {
	if err := schema.ValidateBatchSize(n); err != nil {
		return chunker{}, err
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return chunker{
		st:        st.Clone(),
		d:         d,
		s:         s,
		remaining: n,
		chunkSize: chunkSize,
	}, nil
}

// next reserves the next chunk's row count, or 0 when iteration is over.
// Cancellation is only observed here, between chunks.
func (c *chunker) next(ctx context.Context) int {
	if c.done || c.err != nil || c.remaining == 0 {
		c.done = true
		return 0
	}
	if err := ctx.Err(); err != nil {
		c.err = err
		c.done = true
		return 0
	}
	size := c.chunkSize
	if size > c.remaining {
		size = c.remaining
	}
	c.remaining -= size
	return size
}

func (c *chunker) fail(err error) {
	c.err = err
	c.done = true
}

// Err returns the first error the iterator hit, including context
// cancellation.
func (c *chunker) Err() error { return c.err }

// RecordChunks yields map-shaped rows chunk by chunk.
type RecordChunks struct {
	chunker
}

// NewRecordChunks starts chunked row generation. The stream is cloned up
// front; st itself is never advanced.
func NewRecordChunks(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n, chunkSize int) (*RecordChunks, error) {
	c, err := newChunker(st, d, s, n, chunkSize)
	if err != nil {
		return nil, err
	}
	return &RecordChunks{chunker: c}, nil
}

// Next returns the next chunk, or (nil, false) when iteration has ended.
// Check Err afterwards to distinguish completion from failure.
func (it *RecordChunks) Next(ctx context.Context) ([]types.Record, bool) {
	size := it.next(ctx)
	if size == 0 {
		return nil, false
	}
	rows, err := Records(it.st, it.d, it.s, size)
	if err != nil {
		it.fail(err)
		return nil, false
	}
	return rows, true
}

// TupleChunks yields tuple-shaped rows chunk by chunk.
type TupleChunks struct {
	chunker
}

func NewTupleChunks(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n, chunkSize int) (*TupleChunks, error) {
	c, err := newChunker(st, d, s, n, chunkSize)
	if err != nil {
		return nil, err
	}
	return &TupleChunks{chunker: c}, nil
}

func (it *TupleChunks) Next(ctx context.Context) ([]types.Tuple, bool) {
	size := it.next(ctx)
	if size == 0 {
		return nil, false
	}
	rows, err := Tuples(it.st, it.d, it.s, size)
	if err != nil {
		it.fail(err)
		return nil, false
	}
	return rows, true
}

// ColumnChunks yields column-shaped batches chunk by chunk. Each chunk is
// generated field-major on its own, so concatenating chunks does not
// reproduce an unchunked Columns call unless the chunk size covers all
// rows.
type ColumnChunks struct {
	chunker
}

func NewColumnChunks(st *rng.Stream, d *dispatch.Dispatcher, s *schema.Schema, n, chunkSize int) (*ColumnChunks, error) {
	c, err := newChunker(st, d, s, n, chunkSize)
	if err != nil {
		return nil, err
	}
	return &ColumnChunks{chunker: c}, nil
}

func (it *ColumnChunks) Next(ctx context.Context) (*types.ColumnBatch, bool) {
	size := it.next(ctx)
	if size == 0 {
		return nil, false
	}
	batch, err := Columns(it.st, it.d, it.s, size)
	if err != nil {
		it.fail(err)
		return nil, false
	}
	return batch, true
}

// CollectColumns drains a ColumnChunks iterator into one concatenated
// batch.
func CollectColumns(ctx context.Context, it *ColumnChunks) (*types.ColumnBatch, error) {
	var out *types.ColumnBatch
	for {
		batch, ok := it.Next(ctx)
		if !ok {
			break
		}
		if out == nil {
			out = batch
			continue
		}
		appendBatch(out, batch)
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	if out == nil {
		out = emptyBatch(it.s)
	}
	return out, nil
}

func emptyBatch(s *schema.Schema) *types.ColumnBatch {
	fields := s.Alphabetical()
	batch := &types.ColumnBatch{Columns: make([]*types.Column, len(fields))}
	for i := range fields {
		batch.Columns[i] = newColumn(fields[i].Name, fields[i].Spec.ValueKind(), 0)
	}
	return batch
}
