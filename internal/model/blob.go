package model

import (
	"context"
	"io"
)

// BlobStore persists uploaded audio byte streams under opaque keys it
// allocates itself. Keys never derive from untrusted filenames; only the
// extension of the original name survives, as part of the generated key.
type BlobStore interface {
	// Save writes the stream and returns a fresh key.
	Save(ctx context.Context, originalFileName string, r io.Reader) (string, error)
	// Open resolves a key to its bytes, returning ErrNotFound when absent.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes a blob. Absence of the target is not an error.
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
