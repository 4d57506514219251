package feed

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// Fingerprint computes the stable content checksum used for global
// deduplication. Two entries with the same normalized title, URL and content
// are the same article no matter which feed delivered them.
func Fingerprint(title, url, content string) string {
	h := sha256.New()
	h.Write([]byte(normalize(title)))
	h.Write([]byte(normalize(url)))
	h.Write([]byte(normalize(content)))
	return hex.EncodeToString(h.Sum(nil))
}

// normalize collapses whitespace runs and trims so that cosmetic formatting
// differences don't defeat deduplication
func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
