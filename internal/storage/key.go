package storage

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var extPattern = regexp.MustCompile(`^\.[a-z0-9]+$`)

// NewKey allocates a fresh blob key. The key is a random UUID plus the
// lowercased extension of the original filename; the rest of the untrusted
// name never reaches the storage layer.
func NewKey(originalFileName string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalFileName)))
	if !extPattern.MatchString(ext) {
		ext = ""
	}
	return uuid.NewString() + ext
}
