package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashUserKey returns a filesystem-safe identifier for a user ID.
func HashUserKey(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// Checksum returns the hex sha256 of a payload, used to fingerprint
// uploaded documents.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
