package sink

import (
	"context"
	"fmt"
	"os"

	"github.com/fabrica/fabrica/internal/config"
	fabricaerrors "github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/schema"
	"github.com/fabrica/fabrica/internal/storage"
)

// FromConfig builds the sink described by the output configuration.
// The schema is needed by the SQLite sink to derive the table layout.
func FromConfig(ctx context.Context, out config.OutputConfig, s *schema.Schema) (Sink, error) {
	switch out.Type {
	case "stdout":
		return NewJSONLWriter(os.Stdout, out.Compress), nil
	case "file":
		f, err := NewJSONLFile(out.Path, out.Compress)
		if err != nil {
			return nil, err
		}
		return f, nil
	case "sqlite":
		db, err := NewSQLiteSink(ctx, out.Path, out.Table, s)
		if err != nil {
			return nil, err
		}
		return db, nil
	case "s3":
		store, err := storage.NewS3Store(ctx, out.S3.Bucket, storage.S3Config{
			Region:       out.S3.Region,
			Endpoint:     out.S3.Endpoint,
			UsePathStyle: out.S3.Endpoint != "",
		})
		if err != nil {
			return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to create S3 client", err)
		}
		up, err := NewS3Sink(store, out.SpoolDir, out.S3.Prefix, out.Compress, out.S3.Concurrency)
		if err != nil {
			return nil, err
		}
		return up, nil
	default:
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed,
			fmt.Sprintf("unknown output type %q", out.Type), nil)
	}
}
