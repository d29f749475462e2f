// internal/storage/archive/interface.go
package archive

import "context"

// Storage defines the interface for archive storage backends
type Storage interface {
	// Put stores data at the given path, replacing any previous object
	Put(ctx context.Context, path string, data []byte, contentType string) error

	// Get retrieves data from the given path. Missing paths return core.ErrNotFound.
	Get(ctx context.Context, path string) ([]byte, error)

	// List returns all paths matching the prefix
	List(ctx context.Context, prefix string) ([]string, error)

	// Delete removes the data at the given path
	Delete(ctx context.Context, path string) error

	// Exists checks if data exists at the given path
	Exists(ctx context.Context, path string) (bool, error)
}
