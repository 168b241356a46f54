package assemble

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrica/fabrica/internal/dispatch"
	"github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/locale"
	"github.com/fabrica/fabrica/internal/provider"
	"github.com/fabrica/fabrica/internal/rng"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/pkg/types"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Compile([]schema.RawField{
		{Name: "zeta", Spec: "city"},
		{Name: "age", Spec: []interface{}{"int", 18, 65}},
		{Name: "score", Spec: []interface{}{"float", 0, 1}},
	}, nil)
	require.NoError(t, err)
	return s
}

func testDispatcher() *dispatch.Dispatcher {
	return dispatch.New(locale.Default(), provider.NewRegistry())
}

func TestRecordsDeterministic(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	r1, err := Records(rng.New(42), d, s, 5)
	require.NoError(t, err)
	r2, err := Records(rng.New(42), d, s, 5)
	require.NoError(t, err)

	require.Len(t, r1, 5)
	for i := range r1 {
		require.Len(t, r1[i], 3)
		for name, v := range r1[i] {
			assert.True(t, v.Equal(r2[i][name]), "row %d field %s", i, name)
		}
	}
}

func TestRecordsRespectRanges(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	rows, err := Records(rng.New(7), d, s, 100)
	require.NoError(t, err)
	for _, row := range rows {
		age := row["age"]
		assert.GreaterOrEqual(t, age.Int(), int64(18))
		assert.LessOrEqual(t, age.Int(), int64(65))
		assert.Equal(t, types.KindString, row["zeta"].Kind())
	}
}

func TestBatchTooLargeConsumesNoDraws(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()
	st := rng.New(42)

	_, err := Records(st, d, s, schema.MaxBatchSize+1)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCategoryBatch, errors.GetCategory(err))
	assert.Equal(t, uint64(0), st.Draws())

	_, err = Tuples(st, d, s, schema.MaxBatchSize+1)
	require.Error(t, err)
	_, err = Columns(st, d, s, schema.MaxBatchSize+1)
	require.Error(t, err)
	assert.Equal(t, uint64(0), st.Draws())
}

func TestZeroRows(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()
	st := rng.New(42)

	rows, err := Records(st, d, s, 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
	assert.Equal(t, uint64(0), st.Draws())

	batch, err := Columns(st, d, s, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, batch.Rows)
	assert.Len(t, batch.Columns, 3)
}

func TestTuplesAreAlphabetical(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	// age, score, zeta
	tuples, err := Tuples(rng.New(42), d, s, 10)
	require.NoError(t, err)
	for _, tup := range tuples {
		require.Len(t, tup, 3)
		assert.Equal(t, types.KindInt, tup[0].Kind())
		assert.Equal(t, types.KindFloat, tup[1].Kind())
		assert.Equal(t, types.KindString, tup[2].Kind())
	}
}

func TestColumnsShape(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	batch, err := Columns(rng.New(42), d, s, 50)
	require.NoError(t, err)
	require.Len(t, batch.Columns, 3)
	assert.Equal(t, 50, batch.Rows)

	assert.Equal(t, "age", batch.Columns[0].Name)
	assert.Equal(t, "score", batch.Columns[1].Name)
	assert.Equal(t, "zeta", batch.Columns[2].Name)
	assert.Len(t, batch.Columns[0].Ints, 50)
	assert.Len(t, batch.Columns[1].Floats, 50)
	assert.Len(t, batch.Columns[2].Strings, 50)
}

func TestColumnsDeterministic(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	b1, err := Columns(rng.New(42), d, s, 20)
	require.NoError(t, err)
	b2, err := Columns(rng.New(42), d, s, 20)
	require.NoError(t, err)

	assert.Equal(t, b1.Columns[0].Ints, b2.Columns[0].Ints)
	assert.Equal(t, b1.Columns[2].Strings, b2.Columns[2].Strings)
}

func TestUniqueStringsFromAmplePool(t *testing.T) {
	values := make([]string, 200)
	for i := range values {
		values[i] = "v" + string(rune('0'+i/100)) + string(rune('0'+i/10%10)) + string(rune('0'+i%10))
	}
	gen := func(st *rng.Stream) string { return values[st.IntN(len(values))] }

	out, err := UniqueStrings(rng.New(42), 150, gen)
	require.NoError(t, err)
	require.Len(t, out, 150)

	seen := make(map[string]struct{}, len(out))
	for _, v := range out {
		_, dup := seen[v]
		assert.False(t, dup, "duplicate %s", v)
		seen[v] = struct{}{}
	}
}

func TestUniqueStringsExhausted(t *testing.T) {
	gen := func(st *rng.Stream) string {
		return []string{"a", "b", "c"}[st.IntN(3)]
	}

	_, err := UniqueStrings(rng.New(42), 10, gen)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCategoryUnique, errors.GetCategory(err))
}

func TestUniqueIntsAndFloats(t *testing.T) {
	ints, err := UniqueInts(rng.New(1), 50, func(st *rng.Stream) int64 {
		return st.Int64Range(0, 10_000)
	})
	require.NoError(t, err)
	assert.Len(t, ints, 50)

	floats, err := UniqueFloats(rng.New(1), 50, func(st *rng.Stream) float64 {
		return st.Float64()
	})
	require.NoError(t, err)
	assert.Len(t, floats, 50)
}

func TestChunkedRowsMatchUnchunked(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	want, err := Records(rng.New(42), d, s, 25)
	require.NoError(t, err)

	// Row generation is row-major, so chunk boundaries do not change the
	// draw order.
	it, err := NewRecordChunks(rng.New(42), d, s, 25, 10)
	require.NoError(t, err)

	var got []types.Record
	sizes := []int{}
	for {
		chunk, ok := it.Next(context.Background())
		if !ok {
			break
		}
		sizes = append(sizes, len(chunk))
		got = append(got, chunk...)
	}
	require.NoError(t, it.Err())
	assert.Equal(t, []int{10, 10, 5}, sizes)

	require.Len(t, got, len(want))
	for i := range want {
		for name, v := range want[i] {
			assert.True(t, v.Equal(got[i][name]), "row %d field %s", i, name)
		}
	}
}

func TestChunkingLeavesLiveStreamUntouched(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()
	st := rng.New(42)

	it, err := NewRecordChunks(st, d, s, 100, 0)
	require.NoError(t, err)
	for {
		if _, ok := it.Next(context.Background()); !ok {
			break
		}
	}
	require.NoError(t, it.Err())
	assert.Equal(t, uint64(0), st.Draws())
}

func TestChunkSizeZeroUsesDefault(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	it, err := NewRecordChunks(rng.New(42), d, s, DefaultChunkSize+1, 0)
	require.NoError(t, err)

	chunk, ok := it.Next(context.Background())
	require.True(t, ok)
	assert.Len(t, chunk, DefaultChunkSize)
	chunk, ok = it.Next(context.Background())
	require.True(t, ok)
	assert.Len(t, chunk, 1)
	_, ok = it.Next(context.Background())
	assert.False(t, ok)
	assert.NoError(t, it.Err())
}

func TestChunkedCancellation(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	it, err := NewRecordChunks(rng.New(42), d, s, 30, 10)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, ok := it.Next(ctx)
	require.True(t, ok)

	cancel()
	_, ok = it.Next(ctx)
	assert.False(t, ok)
	assert.ErrorIs(t, it.Err(), context.Canceled)
}

func TestColumnChunksCoveringSizeMatchesUnchunked(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	want, err := Columns(rng.New(42), d, s, 20)
	require.NoError(t, err)

	it, err := NewColumnChunks(rng.New(42), d, s, 20, 20)
	require.NoError(t, err)
	got, err := CollectColumns(context.Background(), it)
	require.NoError(t, err)

	assert.Equal(t, want.Columns[0].Ints, got.Columns[0].Ints)
	assert.Equal(t, want.Columns[1].Floats, got.Columns[1].Floats)
	assert.Equal(t, want.Columns[2].Strings, got.Columns[2].Strings)
}

func TestColumnChunksSmallerThanBatchDiverge(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	whole, err := Columns(rng.New(42), d, s, 20)
	require.NoError(t, err)

	it, err := NewColumnChunks(rng.New(42), d, s, 20, 5)
	require.NoError(t, err)
	chunked, err := CollectColumns(context.Background(), it)
	require.NoError(t, err)

	require.Equal(t, whole.Rows, chunked.Rows)
	// Each chunk is generated field-major independently, so the
	// concatenation interleaves draws differently than one big batch.
	assert.NotEqual(t, whole.Columns[0].Ints, chunked.Columns[0].Ints)
}

func TestTupleChunks(t *testing.T) {
	s := testSchema(t)
	d := testDispatcher()

	want, err := Tuples(rng.New(9), d, s, 12)
	require.NoError(t, err)

	it, err := NewTupleChunks(rng.New(9), d, s, 12, 5)
	require.NoError(t, err)
	var got []types.Tuple
	for {
		chunk, ok := it.Next(context.Background())
		if !ok {
			break
		}
		got = append(got, chunk...)
	}
	require.NoError(t, it.Err())
	require.Len(t, got, len(want))
	for i := range want {
		for j := range want[i] {
			assert.True(t, want[i][j].Equal(got[i][j]))
		}
	}
}
