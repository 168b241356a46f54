package sink

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sync"

	"golang.org/x/sync/semaphore"

	fabricaerrors "github.com/fabrica/fabrica/internal/errors"
	"github.com/fabrica/fabrica/internal/storage"
	"github.com/fabrica/fabrica/pkg/types"
)

// S3Sink spools each batch of rows to a local JSONL part file, then
// uploads it as an object named prefix/part-NNNNN.jsonl (plus a .sz
// extension when compression is on). Uploads run in the background,
// bounded by a semaphore; Close waits for all of them and reports the
// first failure.
type S3Sink struct {
	store    storage.ObjectStore
	spoolDir string
	prefix   string
	compress bool

	partIndex int
	sem       *semaphore.Weighted
	wg        sync.WaitGroup

	mu        sync.Mutex
	uploadErr error
}

// NewS3Sink creates the spool directory and prepares the uploader.
// concurrency bounds the number of in-flight uploads.
func NewS3Sink(store storage.ObjectStore, spoolDir, prefix string, compress bool, concurrency int) (*S3Sink, error) {
	if concurrency <= 0 {
		concurrency = 1
	}
	if err := os.MkdirAll(spoolDir, 0755); err != nil {
		return nil, fabricaerrors.NewSinkError(fabricaerrors.CodeOpenFailed, "failed to create spool directory", err)
	}
	return &S3Sink{
		store:    store,
		spoolDir: spoolDir,
		prefix:   prefix,
		compress: compress,
		sem:      semaphore.NewWeighted(int64(concurrency)),
	}, nil
}

// WriteRows spools the batch to the next part file and schedules its
// upload. An empty batch produces no part.
func (s *S3Sink) WriteRows(ctx context.Context, rows []types.Record) error {
	s.mu.Lock()
	err := s.uploadErr
	s.mu.Unlock()
	if err != nil {
		return err
	}

	if len(rows) == 0 {
		return nil
	}

	name := fmt.Sprintf("part-%05d.jsonl", s.partIndex)
	if s.compress {
		name += ".sz"
	}
	s.partIndex++

	spoolPath := filepath.Join(s.spoolDir, name)
	part, err := NewJSONLFile(spoolPath, s.compress)
	if err != nil {
		return err
	}
	if err := part.WriteRows(ctx, rows); err != nil {
		part.Close()
		return err
	}
	if err := part.Close(); err != nil {
		return err
	}

	if err := s.sem.Acquire(ctx, 1); err != nil {
		return err
	}
	s.wg.Add(1)
	go s.upload(ctx, spoolPath, path.Join(s.prefix, name))

	return nil
}

func (s *S3Sink) upload(ctx context.Context, spoolPath, objectPath string) {
	defer s.wg.Done()
	defer s.sem.Release(1)

	if err := s.store.Upload(ctx, spoolPath, objectPath); err != nil {
		s.mu.Lock()
		if s.uploadErr == nil {
			s.uploadErr = fabricaerrors.NewSinkError(fabricaerrors.CodeWriteFailed, "failed to upload part", err)
		}
		s.mu.Unlock()
		return
	}

	// Spooled parts are scratch space, remove after a successful upload.
	os.Remove(spoolPath)
}

// Close waits for in-flight uploads and reports the first failure.
func (s *S3Sink) Close() error {
	s.wg.Wait()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploadErr
}
