package util

import (
	"errors"
	"strings"
)

// ErrBadFileName is returned for empty or traversal-shaped upload names.
var ErrBadFileName = errors.New("invalid file name")

// SanitizeFileName normalizes the name of an uploaded resume: traversal
// patterns are rejected outright, path separators are flattened to
// underscores. The result is only ever used for extension sniffing and
// logging, never as a filesystem path.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", ErrBadFileName
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", ErrBadFileName
	}
	return s, nil
}
