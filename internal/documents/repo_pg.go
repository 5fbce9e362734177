package documents

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements DocumentsRepo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const documentColumns = `id, user_id, file_name, original_filename, mime_type, size_bytes, storage_provider, storage_key, checksum, created_at`

// Create inserts a new document.
func (r *PGRepo) Create(ctx context.Context, doc Document) error {
	const query = `
INSERT INTO documents (
    id,
    user_id,
    file_name,
    original_filename,
    mime_type,
    size_bytes,
    storage_provider,
    storage_key,
    checksum,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	originalName := doc.OriginalFilename
	if originalName == "" {
		originalName = doc.FileName
	}
	storageProvider := doc.StorageProvider
	if storageProvider == "" {
		storageProvider = "local"
	}

	var storageKey sql.NullString
	if doc.StorageKey != "" {
		storageKey = sql.NullString{String: doc.StorageKey, Valid: true}
	}
	var checksum sql.NullString
	if doc.Checksum != "" {
		checksum = sql.NullString{String: doc.Checksum, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.UserID,
		doc.FileName,
		originalName,
		doc.MimeType,
		doc.SizeBytes,
		storageProvider,
		storageKey,
		checksum,
		doc.CreatedAt,
	)
	return err
}

// GetByID fetches a document by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, documentID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = $1 AND id = $2 AND deleted_at IS NULL
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, documentID))
}

// GetCurrentByUser returns the latest document for a user.
func (r *PGRepo) GetCurrentByUser(ctx context.Context, userID string) (Document, error) {
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

// ListByUser lists documents ordered newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Document, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
SELECT ` + documentColumns + `
FROM documents
WHERE user_id = $1 AND deleted_at IS NULL
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *PGRepo) scanOne(row rowScanner) (Document, error) {
	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Document{}, ErrNotFound
		}
		return Document{}, err
	}
	return doc, nil
}

func scanDocument(row rowScanner) (Document, error) {
	var doc Document
	var originalName, storageProvider, storageKey, checksum sql.NullString
	if err := row.Scan(
		&doc.ID,
		&doc.UserID,
		&doc.FileName,
		&originalName,
		&doc.MimeType,
		&doc.SizeBytes,
		&storageProvider,
		&storageKey,
		&checksum,
		&doc.CreatedAt,
	); err != nil {
		return Document{}, err
	}
	if originalName.Valid {
		doc.OriginalFilename = originalName.String
	}
	if storageProvider.Valid {
		doc.StorageProvider = storageProvider.String
	}
	if storageKey.Valid {
		doc.StorageKey = storageKey.String
	}
	if checksum.Valid {
		doc.Checksum = checksum.String
	}
	return doc, nil
}

var _ DocumentsRepo = (*PGRepo)(nil)
