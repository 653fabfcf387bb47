package complaints

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"rt-portal-go/pkg/clock"
)

type Service struct {
	repo  Repository
	clock clock.Clock
}

func NewService(repo Repository, clk clock.Clock) *Service {
	return &Service{repo: repo, clock: clk}
}

// List returns complaints most recent first.
func (s *Service) List(ctx context.Context) ([]Complaint, error) {
	return s.repo.List(ctx)
}

func (s *Service) Submit(ctx context.Context, input SubmitInput) (*Complaint, error) {
	citizen := strings.TrimSpace(input.Citizen)
	message := strings.TrimSpace(input.Message)
	if citizen == "" || message == "" {
		return nil, ErrIncompleteComplaint
	}

	category := Category(strings.TrimSpace(string(input.Category)))
	if category == "" {
		category = CategoryCleanliness
	}
	if !category.Valid() {
		return nil, ErrInvalidCategory
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	complaint := Complaint{
		ID:       id.String(),
		Date:     time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
		Citizen:  citizen,
		Category: category,
		Message:  message,
		Status:   StatusNew,
	}
	if err := s.repo.Prepend(ctx, &complaint); err != nil {
		return nil, err
	}
	return &complaint, nil
}

// SetStatus moves a complaint to any known status, backwards included.
func (s *Service) SetStatus(ctx context.Context, id string, status Status) (*Complaint, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	return s.repo.SetStatus(ctx, id, status)
}

// Delete is a no-op for unknown ids.
func (s *Service) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Delete(ctx, id)
	return err
}

// Import appends existing complaints in the given order, keeping their date
// and status. Missing ids are generated.
func (s *Service) Import(ctx context.Context, items []Complaint) error {
	for i := range items {
		item := items[i]
		if item.ID == "" {
			id, err := uuid.NewRandom()
			if err != nil {
				return err
			}
			item.ID = id.String()
		}
		if item.Status == "" {
			item.Status = StatusNew
		}
		if item.Category == "" {
			item.Category = CategoryCleanliness
		}
		if !item.Status.Valid() {
			return ErrInvalidStatus
		}
		if !item.Category.Valid() {
			return ErrInvalidCategory
		}
		if err := s.repo.Append(ctx, &item); err != nil {
			return err
		}
	}
	return nil
}
