// Package disk implements the blob store on the local filesystem.
package disk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/vkazankov/voicebank/internal/model"
	"github.com/vkazankov/voicebank/internal/storage"
)

var _ model.BlobStore = (*Store)(nil)

// Store persists blobs under a primary directory. Reads and deletes also
// consult legacy directories left over from earlier storage schemes, in
// order, first hit wins.
type Store struct {
	primary   string
	locations []string
}

// New creates a disk store rooted at primary. Legacy directories are
// optional read/delete-only locations; they are never written to.
func New(primary string, legacy ...string) (*Store, error) {
	if primary == "" {
		return nil, fmt.Errorf("primary uploads directory is required")
	}
	if err := os.MkdirAll(primary, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	locations := append([]string{primary}, legacy...)
	return &Store{primary: primary, locations: locations}, nil
}

// Save writes the stream to a temp file in the primary directory and
// renames it into place, so a key never resolves to partial bytes.
func (s *Store) Save(_ context.Context, originalFileName string, r io.Reader) (string, error) {
	key := storage.NewKey(originalFileName)

	tmp, err := os.CreateTemp(s.primary, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.primary, key)); err != nil {
		return "", fmt.Errorf("failed to place blob: %w", err)
	}

	return key, nil
}

func (s *Store) Open(_ context.Context, key string) (io.ReadCloser, error) {
	if !validKey(key) {
		return nil, model.ErrNotFound
	}

	for _, loc := range s.locations {
		f, err := os.Open(filepath.Join(loc, key))
		if err == nil {
			return f, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to open blob: %w", err)
		}
	}

	return nil, model.ErrNotFound
}

// Delete attempts removal from every known location. Absence anywhere is
// not an error; only unexpected failures are reported, aggregated.
func (s *Store) Delete(_ context.Context, key string) error {
	if !validKey(key) {
		return nil
	}

	var errs []error
	for _, loc := range s.locations {
		err := os.Remove(filepath.Join(loc, key))
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, fmt.Errorf("failed to delete blob from %s: %w", loc, err))
		}
	}

	return errors.Join(errs...)
}

func (s *Store) Exists(_ context.Context, key string) (bool, error) {
	if !validKey(key) {
		return false, nil
	}

	for _, loc := range s.locations {
		_, err := os.Stat(filepath.Join(loc, key))
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return false, fmt.Errorf("failed to stat blob: %w", err)
		}
	}

	return false, nil
}

// validKey rejects anything that could escape the storage directories.
// Keys are single path elements issued by this package.
func validKey(key string) bool {
	if key == "" || key == "." || key == ".." {
		return false
	}
	return !strings.ContainsAny(key, `/\`)
}
