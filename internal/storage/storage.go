// Package storage maps metadata records to durable byte storage. Objects are
// keyed by a freshly generated locator independent of any file's logical
// name, so renames and duplicate names never collide on storage. Locators
// are internal and never exposed to clients.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrObjectMissing is returned by Get when the key does not resolve to a
// stored object. Callers report this distinctly from a missing metadata
// record.
var ErrObjectMissing = errors.New("object not found in storage")

// Storage is the interface for persisting and retrieving content blobs.
type Storage interface {
	// Put streams reader to the store under a freshly generated key and
	// returns that key. The write is durable before Put returns.
	Put(ctx context.Context, reader io.Reader, size int64) (string, error)
	// Get returns a reader over the object's bytes, or ErrObjectMissing.
	// The caller must close the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	// Ping reports backend liveness.
	Ping(ctx context.Context) error
}
