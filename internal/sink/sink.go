// Package sink writes generated records to their destination: stdout,
// JSONL files, SQLite databases, or S3 objects.
package sink

import (
	"context"
	"encoding/json"

	fabricaerrors "github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/pkg/types"
)

// Sink receives batches of generated records. WriteRows may be called
// multiple times with successive chunks. Close flushes and releases
// resources; a sink is unusable after Close.
type Sink interface {
	WriteRows(ctx context.Context, rows []types.Record) error
	Close() error
}

// encodeRecord renders a record as a single JSON object. Keys are
// emitted in alphabetical order, which keeps output byte-stable for a
// given seed.
func encodeRecord(rec types.Record) ([]byte, error) {
	obj := make(map[string]interface{}, len(rec))
	for name, v := range rec {
		obj[name] = v.Native()
	}
	data, err := json.Marshal(obj)
	if err != nil {
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to encode record", err)
	}
	return data, nil
}
