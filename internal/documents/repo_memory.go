package documents

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of DocumentsRepo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Document // userID -> documents
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Document)}
}

// Create appends a document for a user.
func (r *MemoryRepo) Create(ctx context.Context, doc Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.UserID] = append(r.data[doc.UserID], doc)
	return nil
}

// GetByID returns a document by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, documentID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, doc := range r.data[userID] {
		if doc.ID == documentID {
			return doc, nil
		}
	}
	return Document{}, ErrNotFound
}

// GetCurrentByUser returns the newest document for a user.
func (r *MemoryRepo) GetCurrentByUser(ctx context.Context, userID string) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	docs := r.data[userID]
	if len(docs) == 0 {
		return Document{}, ErrNotFound
	}
	return docs[len(docs)-1], nil
}

// ListByUser returns documents for a user, newest first, honoring
// limit/offset.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	r.mu.RLock()
	userDocs := r.data[userID]
	r.mu.RUnlock()

	if len(userDocs) == 0 || offset >= len(userDocs) {
		return []Document{}, nil
	}

	docs := make([]Document, len(userDocs))
	copy(docs, userDocs)
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].CreatedAt.After(docs[j].CreatedAt)
	})

	end := len(docs)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return docs[offset:end], nil
}

var _ DocumentsRepo = (*MemoryRepo)(nil)
