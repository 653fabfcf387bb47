package profile

import (
	"context"
	"fmt"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context) (Profile, error) {
	return s.repo.Get(ctx)
}

// Update applies only the fields that are set. A set field may be empty; the
// letterhead prints placeholders for an empty receiver.
func (s *Service) Update(ctx context.Context, input UpdateProfileInput) (Profile, error) {
	updated, err := s.repo.Update(ctx, func(current *Profile) {
		apply(&current.RT, input.RT)
		apply(&current.RW, input.RW)
		apply(&current.Village, input.Village)
		apply(&current.Subdistrict, input.Subdistrict)
		apply(&current.City, input.City)
		apply(&current.Address, input.Address)
		apply(&current.Phone, input.Phone)
		apply(&current.Email, input.Email)
		apply(&current.Chairman, input.Chairman)
		apply(&current.Receiver, input.Receiver)
	})
	if err != nil {
		return Profile{}, fmt.Errorf("save profile: %w", err)
	}
	return updated, nil
}

// Replace overwrites the whole profile; used when loading seed data.
func (s *Service) Replace(ctx context.Context, profile Profile) error {
	return s.repo.Save(ctx, profile)
}

func apply(dst *string, value *string) {
	if value == nil {
		return
	}
	*dst = strings.TrimSpace(*value)
}
