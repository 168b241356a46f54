// Package storage provides object storage abstractions for uploading
// generated data files.
package storage

import (
	"context"
	"errors"
)

// Common errors for storage operations.
var (
	ErrUploadFailed = errors.New("upload failed")
	ErrDeleteFailed = errors.New("delete failed")
)

// ObjectStore abstracts the write side of cloud object storage.
// Implementations include S3 and local filesystem for testing.
type ObjectStore interface {
	// Upload uploads a local file to object storage.
	// localPath is the path to the local file to upload.
	// objectPath is the destination key in object storage.
	Upload(ctx context.Context, localPath, objectPath string) error

	// Delete removes an object from storage. Deleting a missing
	// object is not an error.
	Delete(ctx context.Context, objectPath string) error

	// Exists checks if an object exists in storage.
	Exists(ctx context.Context, objectPath string) (bool, error)

	// ListObjects returns all object keys under the given prefix.
	ListObjects(ctx context.Context, prefix string) ([]string, error)
}
