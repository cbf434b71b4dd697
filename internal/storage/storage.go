// Package storage holds the blob layer. Blobs live in one flat namespace under a root;
// the key of a blob is its full locator (what file records keep as localPath).
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"filesmanager/internal/config"
)

// ErrObjectNotFound is returned by Get when no blob exists under the key.
var ErrObjectNotFound = errors.New("object not found")

// PutObjectOptions define optional parameters for uploading objects.
// Size should be the exact number of bytes if known, -1 otherwise.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the blob store used by the upload pipeline, content retrieval and the thumbnail worker.
type Storage interface {
	// Locate returns the key a blob with the given generated name is stored under.
	Locate(name string) string
	// Put writes r under key, creating the root if needed. Existing blobs are overwritten.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get opens the blob under key. Missing blobs yield ErrObjectNotFound.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the blob under key. Deleting a missing blob is not an error.
	Delete(ctx context.Context, key string) error
}

// New builds the backend selected by cfg.Backend.
func New(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocal(cfg.Root), nil
	case "minio":
		return NewMinIO(cfg.MinIO, cfg.Root)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
