package object

import (
	"context"
	"io"
)

// ObjectStore persists uploaded résumé files and hands them back for
// parsing. Save namespaces the object under the user and returns the
// storage key needed to Open it later.
type ObjectStore interface {
	Save(ctx context.Context, userID string, fileName string, r io.Reader) (storageKey string, sizeBytes int64, mimeType string, err error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}
