package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/vkazankov/voicebank/internal/logger"
	"github.com/vkazankov/voicebank/internal/model"
	"github.com/vkazankov/voicebank/internal/storage"
)

// BlobOpener resolves blob keys to audio byte streams.
type BlobOpener interface {
	OpenAudio(ctx context.Context, key string) (io.ReadCloser, error)
}

// File serves stored audio blobs.
type File struct {
	blobs  BlobOpener
	logger *logger.Logger
}

// NewFile creates a new File handler.
func NewFile(blobs BlobOpener, logger *logger.Logger) *File {
	return &File{
		blobs:  blobs,
		logger: logger,
	}
}

// Get streams the blob identified by the key path segment. The content
// type comes from the key's extension at retrieval time.
func (h *File) Get(w http.ResponseWriter, r *http.Request) {
	key := r.PathValue("key")

	rc, err := h.blobs.OpenAudio(r.Context(), key)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not found")
			return
		}
		handleError(w, h.logger, "File handler", err)
		return
	}
	defer rc.Close()

	w.Header().Set("Content-Type", storage.ContentType(key))
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", key))

	if _, err := io.Copy(w, rc); err != nil {
		h.logger.Error("File handler: failed to stream blob", "key", key, "error", err)
	}
}
