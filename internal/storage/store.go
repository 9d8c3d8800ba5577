// Package storage provides the path-addressed document store the
// repositories persist into. The store treats every record as an opaque
// blob at a hierarchical path and intentionally has no query or index
// capability; every read-by-attribute above it is a scan.
package storage

import "context"

// DocumentStore is the adapter contract over the backing store.
type DocumentStore interface {
	// Put writes data at path, creating any missing parent directories
	// and overwriting an existing document.
	Put(ctx context.Context, path string, data []byte) error

	// Get reads the full contents at path. A missing path is reported as
	// a domain.NotFoundError, not an I/O failure.
	Get(ctx context.Context, path string) ([]byte, error)

	// Delete removes the document at path and reports whether one
	// existed. It never removes non-empty directories.
	Delete(ctx context.Context, path string) (bool, error)

	// Exists reports whether a document or directory exists at path.
	Exists(ctx context.Context, path string) (bool, error)

	// ListFiles recursively enumerates every file path under prefix,
	// deduplicated. A missing prefix yields an empty slice.
	ListFiles(ctx context.Context, prefix string) ([]string, error)
}
