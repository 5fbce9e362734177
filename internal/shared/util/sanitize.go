package util

import (
	"errors"
	"strings"
	"unicode"
)

const maxFileNameLen = 200

var errInvalidFileName = errors.New("invalid file name")

// SanitizeFileName makes an uploaded file name safe to embed in a storage
// key: path separators and control characters become underscores, and
// traversal patterns are rejected outright.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errInvalidFileName
	}
	s := strings.TrimSpace(name)
	s = strings.Map(func(r rune) rune {
		if r == '/' || r == '\\' || unicode.IsControl(r) {
			return '_'
		}
		return r
	}, s)
	if s == "" {
		return "", errInvalidFileName
	}
	if runes := []rune(s); len(runes) > maxFileNameLen {
		// Keep the tail so the extension survives.
		s = string(runes[len(runes)-maxFileNameLen:])
	}
	return s, nil
}
