package profiles

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resume-parser/internal/parse"
)

// PGRepo implements Repo using Postgres. The parse result is stored as
// JSONB.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new profile.
func (r *PGRepo) Create(ctx context.Context, profile Profile) error {
	const query = `
INSERT INTO profiles (
    id,
    user_id,
    document_id,
    file_type,
    result,
    warnings,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)`

	resultJSON, err := json.Marshal(profile.Result)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		profile.ID,
		profile.UserID,
		profile.DocumentID,
		profile.FileType,
		resultJSON,
		profile.Warnings,
		profile.CreatedAt,
	)
	return err
}

// GetByID fetches a profile by ID for a user.
func (r *PGRepo) GetByID(ctx context.Context, userID, profileID string) (Profile, error) {
	const query = `
SELECT id, user_id, document_id, file_type, result, warnings, created_at
FROM profiles
WHERE user_id = $1 AND id = $2
LIMIT 1`

	var profile Profile
	var resultJSON []byte
	err := r.DB.QueryRowContext(ctx, query, userID, profileID).Scan(
		&profile.ID,
		&profile.UserID,
		&profile.DocumentID,
		&profile.FileType,
		&resultJSON,
		&profile.Warnings,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Profile{}, ErrNotFound
		}
		return Profile{}, err
	}
	if err := json.Unmarshal(resultJSON, &profile.Result); err != nil {
		return Profile{}, fmt.Errorf("unmarshal result: %w", err)
	}
	return profile, nil
}

// ListByUser lists profiles newest-first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Profile, error) {
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
SELECT id, user_id, document_id, file_type, result, warnings, created_at
FROM profiles
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`

	rows, err := r.DB.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var profile Profile
		var resultJSON []byte
		if err := rows.Scan(
			&profile.ID,
			&profile.UserID,
			&profile.DocumentID,
			&profile.FileType,
			&resultJSON,
			&profile.Warnings,
			&profile.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(resultJSON, &profile.Result); err != nil {
			profile.Result = parse.Result{}
		}
		out = append(out, profile)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
