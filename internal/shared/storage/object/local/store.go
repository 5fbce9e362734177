package local

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	"resume-parser/internal/shared/storage/object"
	"resume-parser/internal/shared/util"
)

// Store implements ObjectStore on the local filesystem. Objects live under
// baseDir/<hashed user>/<random>_<name> so that raw user IDs never appear
// in paths.
type Store struct {
	baseDir string
}

// New creates a local object store rooted at baseDir.
func New(baseDir string) object.ObjectStore {
	return &Store{baseDir: baseDir}
}

// Save writes the reader to disk and reports the storage key, byte count,
// and sniffed MIME type.
func (s *Store) Save(ctx context.Context, userID string, fileName string, r io.Reader) (string, int64, string, error) {
	sanitizedName, err := util.SanitizeFileName(fileName)
	if err != nil {
		return "", 0, "", fmt.Errorf("sanitize file name: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}

	userDir := util.HashUserKey(userID)
	finalName := fmt.Sprintf("%s_%s", randomID(), sanitizedName)

	dirPath := filepath.Join(s.baseDir, userDir)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return "", 0, "", fmt.Errorf("mkdir: %w", err)
	}

	fullPath := filepath.Join(dirPath, finalName)
	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", 0, "", fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	var head [512]byte
	n, readErr := io.ReadFull(r, head[:])
	if readErr != nil && readErr != io.EOF && readErr != io.ErrUnexpectedEOF {
		return "", 0, "", fmt.Errorf("read head: %w", readErr)
	}
	mimeType := mimetype.Detect(head[:n]).String()

	var size int64
	if n > 0 {
		if _, err := f.Write(head[:n]); err != nil {
			return "", 0, "", fmt.Errorf("write head: %w", err)
		}
		size += int64(n)
	}
	written, err := io.Copy(f, r)
	if err != nil {
		return "", 0, "", fmt.Errorf("write body: %w", err)
	}
	size += written

	return filepath.Join(userDir, finalName), size, mimeType, nil
}

// Open opens a stored object for reading. Keys that escape the base
// directory are rejected.
func (s *Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	clean := filepath.Clean(storageKey)
	if strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return nil, fmt.Errorf("invalid storage key")
	}
	return os.Open(filepath.Join(s.baseDir, clean))
}

func randomID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
