// Package storage holds helpers shared by the blob store backends.
package storage

import (
	"path/filepath"
	"strings"
)

// ContentType maps a blob key's extension to a MIME type for response
// headers. Resolution happens only at retrieval time; keys are stored
// without any content-type metadata.
func ContentType(key string) string {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(key), ".")) {
	case "mp3":
		return "audio/mpeg"
	case "wav":
		return "audio/wav"
	case "ogg":
		return "audio/ogg"
	case "m4a":
		return "audio/mp4"
	case "webm":
		return "audio/webm"
	default:
		return "application/octet-stream"
	}
}
