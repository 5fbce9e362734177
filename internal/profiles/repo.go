package profiles

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("profile not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Repo defines persistence operations for parsed profiles.
type Repo interface {
	Create(ctx context.Context, profile Profile) error
	GetByID(ctx context.Context, userID, profileID string) (Profile, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]Profile, error)
}
