package sink

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/internal/storage"
	"github.com/fabrica/fabrica/pkg/types"
)

func testRows() []types.Record {
	return []types.Record{
		{
			"city":  types.StringValue("Springfield"),
			"age":   types.IntValue(42),
			"score": types.FloatValue(0.5),
		},
		{
			"city":  types.StringValue("Riverton"),
			"age":   types.IntValue(7),
			"score": types.FloatValue(0.25),
		},
	}
}

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.Compile([]schema.RawField{
		{Name: "city", Spec: "city"},
		{Name: "age", Spec: []interface{}{"int", 0, 100}},
		{Name: "score", Spec: []interface{}{"float", 0.0, 1.0}},
	}, nil)
	require.NoError(t, err)
	return s
}

func decodeLines(t *testing.T, r io.Reader) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		var obj map[string]interface{}
		require.NoError(t, json.Unmarshal(sc.Bytes(), &obj))
		out = append(out, obj)
	}
	require.NoError(t, sc.Err())
	return out
}

func TestJSONLWriterToBuffer(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLWriter(&buf, false)

	require.NoError(t, s.WriteRows(context.Background(), testRows()))
	require.NoError(t, s.Close())

	objs := decodeLines(t, &buf)
	require.Len(t, objs, 2)
	assert.Equal(t, "Springfield", objs[0]["city"])
	assert.Equal(t, float64(42), objs[0]["age"])
	assert.Equal(t, 0.25, objs[1]["score"])
}

func TestJSONLFileCompressed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl.sz")
	s, err := NewJSONLFile(path, true)
	require.NoError(t, err)

	require.NoError(t, s.WriteRows(context.Background(), testRows()))
	require.NoError(t, s.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	objs := decodeLines(t, snappy.NewReader(f))
	require.Len(t, objs, 2)
	assert.Equal(t, "Riverton", objs[1]["city"])
}

func TestJSONLRGBEncodesAsArray(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLWriter(&buf, false)

	rows := []types.Record{{"tint": types.RGBValue(10, 20, 30)}}
	require.NoError(t, s.WriteRows(context.Background(), rows))
	require.NoError(t, s.Close())

	objs := decodeLines(t, &buf)
	require.Len(t, objs, 1)
	assert.Equal(t, []interface{}{float64(10), float64(20), float64(30)}, objs[0]["tint"])
}

func TestJSONLCancelledContext(t *testing.T) {
	var buf bytes.Buffer
	s := NewJSONLWriter(&buf, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.WriteRows(ctx, testRows())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSQLiteSinkRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sqlite")
	ctx := context.Background()

	s, err := NewSQLiteSink(ctx, path, "records", testSchema(t))
	require.NoError(t, err)

	require.NoError(t, s.WriteRows(ctx, testRows()))
	require.NoError(t, s.WriteRows(ctx, testRows()))
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count))
	assert.Equal(t, 4, count)

	var city string
	var age int64
	var score float64
	row := db.QueryRow("SELECT city, age, score FROM records LIMIT 1")
	require.NoError(t, row.Scan(&city, &age, &score))
	assert.Equal(t, "Springfield", city)
	assert.Equal(t, int64(42), age)
	assert.Equal(t, 0.5, score)
}

func TestSQLiteSinkReplacesExistingTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.sqlite")
	ctx := context.Background()

	s, err := NewSQLiteSink(ctx, path, "records", testSchema(t))
	require.NoError(t, err)
	require.NoError(t, s.WriteRows(ctx, testRows()))
	require.NoError(t, s.Close())

	s, err = NewSQLiteSink(ctx, path, "records", testSchema(t))
	require.NoError(t, err)
	require.NoError(t, s.WriteRows(ctx, testRows()[:1]))
	require.NoError(t, s.Close())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM records").Scan(&count))
	assert.Equal(t, 1, count)
}

func TestS3SinkUploadsParts(t *testing.T) {
	base := t.TempDir()
	store, err := storage.NewLocalStore(base)
	require.NoError(t, err)

	spool := filepath.Join(t.TempDir(), "spool")
	s, err := NewS3Sink(store, spool, "fabrica", false, 2)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.WriteRows(ctx, testRows()))
	require.NoError(t, s.WriteRows(ctx, testRows()[:1]))
	require.NoError(t, s.WriteRows(ctx, nil))
	require.NoError(t, s.Close())

	objects, err := store.ListObjects(ctx, "fabrica")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"fabrica/part-00000.jsonl",
		"fabrica/part-00001.jsonl",
	}, objects)

	f, err := os.Open(filepath.Join(base, "fabrica", "part-00000.jsonl"))
	require.NoError(t, err)
	defer f.Close()
	objs := decodeLines(t, f)
	require.Len(t, objs, 2)
	assert.Equal(t, "Springfield", objs[0]["city"])

	// Spool files are removed once uploaded.
	entries, err := os.ReadDir(spool)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestS3SinkCompressedParts(t *testing.T) {
	base := t.TempDir()
	store, err := storage.NewLocalStore(base)
	require.NoError(t, err)

	s, err := NewS3Sink(store, filepath.Join(t.TempDir(), "spool"), "fabrica", true, 1)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.WriteRows(ctx, testRows()))
	require.NoError(t, s.Close())

	f, err := os.Open(filepath.Join(base, "fabrica", "part-00000.jsonl.sz"))
	require.NoError(t, err)
	defer f.Close()

	objs := decodeLines(t, snappy.NewReader(f))
	require.Len(t, objs, 2)
}

type failingStore struct {
	storage.ObjectStore
}

func (f *failingStore) Upload(ctx context.Context, localPath, objectPath string) error {
	return errors.New("bucket unavailable")
}

func TestS3SinkReportsUploadFailure(t *testing.T) {
	s, err := NewS3Sink(&failingStore{}, filepath.Join(t.TempDir(), "spool"), "fabrica", false, 1)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.WriteRows(ctx, testRows()))

	err = s.Close()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to upload part")
}
