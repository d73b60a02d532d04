package util

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashResumeText returns a stable identifier for a resume body. Leading
// and trailing whitespace is ignored so re-uploads of the same document
// dedupe to the same key.
func HashResumeText(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}
