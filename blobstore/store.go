// Package blobstore abstracts where snapshot blobs live. Stores are
// whole-blob: a Put replaces the named blob atomically, a Get returns its
// complete contents. Names may contain '/' separators, which local stores
// map to directories.
package blobstore

import (
	"context"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for storing and retrieving immutable data
// blobs. Implementations must be safe for concurrent use.
type BlobStore interface {
	// Put writes a blob atomically, replacing any previous blob of that name.
	Put(ctx context.Context, name string, data []byte) error

	// Get returns the complete contents of a blob.
	Get(ctx context.Context, name string) ([]byte, error)

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all blobs matching the prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
