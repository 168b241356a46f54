package sink

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/golang/snappy"

	fabricaerrors "github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/pkg/types"
)

// JSONLSink writes one JSON object per line. Output optionally goes
// through snappy stream framing.
type JSONLSink struct {
	w       *bufio.Writer
	snappy  *snappy.Writer
	closers []io.Closer
}

// NewJSONLWriter wraps an existing writer. The caller retains
// ownership of w; Close flushes but does not close it. Used for
// stdout output.
func NewJSONLWriter(w io.Writer, compress bool) *JSONLSink {
	s := &JSONLSink{}
	if compress {
		s.snappy = snappy.NewBufferedWriter(w)
		s.w = bufio.NewWriter(s.snappy)
	} else {
		s.w = bufio.NewWriter(w)
	}
	return s
}

// NewJSONLFile creates a JSONL sink writing to the given file path,
// truncating any existing file.
func NewJSONLFile(path string, compress bool) (*JSONLSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to create output file", err)
	}
	s := NewJSONLWriter(f, compress)
	s.closers = append(s.closers, f)
	return s, nil
}

// WriteRows encodes and writes each record as one line.
func (s *JSONLSink) WriteRows(ctx context.Context, rows []types.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, rec := range rows {
		data, err := encodeRecord(rec)
		if err != nil {
			return err
		}
		if _, err := s.w.Write(data); err != nil {
			return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to write record", err)
		}
		if err := s.w.WriteByte('\n'); err != nil {
			return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to write record", err)
		}
	}
	return nil
}

// Close flushes buffered output and closes any file owned by the sink.
func (s *JSONLSink) Close() error {
	if err := s.w.Flush(); err != nil {
		return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to flush output", err)
	}
	if s.snappy != nil {
		if err := s.snappy.Close(); err != nil {
			return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to flush compressed output", err)
		}
	}
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			return fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to close output file", err)
		}
	}
	return nil
}
