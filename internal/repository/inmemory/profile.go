package inmemory

import (
	"context"
	"sync"

	profiledomain "rt-portal-go/internal/domain/profile"
)

type ProfileRepository struct {
	mu      sync.RWMutex
	profile profiledomain.Profile
}

func NewProfileRepository(initial profiledomain.Profile) *ProfileRepository {
	return &ProfileRepository{profile: initial}
}

func (r *ProfileRepository) Get(ctx context.Context) (profiledomain.Profile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profile, nil
}

func (r *ProfileRepository) Save(ctx context.Context, profile profiledomain.Profile) error {
	r.mu.Lock()
	r.profile = profile
	r.mu.Unlock()
	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, fn func(*profiledomain.Profile)) (profiledomain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.profile
	fn(&next)
	r.profile = next
	return next, nil
}
