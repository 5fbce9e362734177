package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"resume-parser/internal/shared/storage/object"
	"resume-parser/internal/shared/util"
)

// Service contains business logic for documents.
type Service struct {
	Store           object.ObjectStore
	Repo            DocumentsRepo
	StorageProvider string
}

// Upload saves the file to object storage and records the document with
// its content checksum.
func (s *Service) Upload(ctx context.Context, userID, fileName string, r io.Reader) (Document, error) {
	if fileName == "" || userID == "" {
		return Document{}, ErrInvalidInput
	}

	// Uploads are size-capped by the handler, so buffering for the
	// checksum is bounded.
	data, err := io.ReadAll(r)
	if err != nil {
		return Document{}, fmt.Errorf("read upload: %w", err)
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, userID, fileName, bytes.NewReader(data))
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		ID:               uuid.NewString(),
		UserID:           userID,
		FileName:         fileName,
		OriginalFilename: fileName,
		MimeType:         mimeType,
		SizeBytes:        size,
		StorageProvider:  s.StorageProvider,
		StorageKey:       storageKey,
		Checksum:         util.Checksum(data),
		CreatedAt:        time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, doc); err != nil {
		return Document{}, err
	}

	return doc, nil
}

// Open returns the stored bytes for a document the user owns.
func (s *Service) Open(ctx context.Context, userID, documentID string) (Document, []byte, error) {
	doc, err := s.Repo.GetByID(ctx, userID, documentID)
	if err != nil {
		return Document{}, nil, err
	}
	body, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return Document{}, nil, fmt.Errorf("open document %s: %w", documentID, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return Document{}, nil, fmt.Errorf("read document %s: %w", documentID, err)
	}
	return doc, data, nil
}

// Current returns the latest document for a user.
func (s *Service) Current(ctx context.Context, userID string) (Document, error) {
	if userID == "" {
		return Document{}, ErrInvalidInput
	}
	return s.Repo.GetCurrentByUser(ctx, userID)
}

// List returns documents for a user, newest first.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.Repo.ListByUser(ctx, userID, limit, offset)
}
