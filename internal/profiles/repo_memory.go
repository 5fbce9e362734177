package profiles

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Profile // userID -> profiles
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string][]Profile)}
}

// Create appends a profile for a user.
func (r *MemoryRepo) Create(ctx context.Context, profile Profile) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[profile.UserID] = append(r.data[profile.UserID], profile)
	return nil
}

// GetByID returns a profile by ID for a user.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, profileID string) (Profile, error) {
	if err := ctx.Err(); err != nil {
		return Profile{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, profile := range r.data[userID] {
		if profile.ID == profileID {
			return profile, nil
		}
	}
	return Profile{}, ErrNotFound
}

// ListByUser returns profiles for a user, newest first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]Profile, error) {
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
	userProfiles := r.data[userID]
	r.mu.RUnlock()

	if len(userProfiles) == 0 || offset >= len(userProfiles) {
		return []Profile{}, nil
	}

	profiles := make([]Profile, len(userProfiles))
	copy(profiles, userProfiles)
	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].CreatedAt.After(profiles[j].CreatedAt)
	})

	end := len(profiles)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return profiles[offset:end], nil
}

var _ Repo = (*MemoryRepo)(nil)
