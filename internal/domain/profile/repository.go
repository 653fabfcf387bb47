package profile

import "context"

type Repository interface {
	Get(ctx context.Context) (Profile, error)
	Save(ctx context.Context, profile Profile) error
	// Update applies fn to the stored profile and saves the result as one
	// step, so concurrent partial updates never drop each other's fields.
	Update(ctx context.Context, fn func(*Profile)) (Profile, error)
}
