package bulletin

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListNews(ctx context.Context) ([]NewsPost, error) {
	return s.repo.ListNews(ctx)
}

func (s *Service) LatestNews(ctx context.Context, n int) ([]NewsPost, error) {
	items, err := s.repo.ListNews(ctx)
	if err != nil {
		return nil, err
	}
	return head(items, n), nil
}

func (s *Service) PublishNews(ctx context.Context, input PublishNewsInput) (*NewsPost, error) {
	post, err := buildNews(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.PrependNews(ctx, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// RemoveNews is a no-op for unknown ids.
func (s *Service) RemoveNews(ctx context.Context, id string) error {
	_, err := s.repo.DeleteNews(ctx, id)
	return err
}

func (s *Service) ListEvents(ctx context.Context) ([]Event, error) {
	return s.repo.ListEvents(ctx)
}

func (s *Service) LatestEvents(ctx context.Context, n int) ([]Event, error) {
	items, err := s.repo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}
	return head(items, n), nil
}

func (s *Service) ScheduleEvent(ctx context.Context, input ScheduleEventInput) (*Event, error) {
	event, err := buildEvent(input)
	if err != nil {
		return nil, err
	}
	if err := s.repo.PrependEvent(ctx, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// RemoveEvent is a no-op for unknown ids.
func (s *Service) RemoveEvent(ctx context.Context, id string) error {
	_, err := s.repo.DeleteEvent(ctx, id)
	return err
}

// ImportNews appends posts already in display order (newest first).
func (s *Service) ImportNews(ctx context.Context, inputs []PublishNewsInput) error {
	for _, input := range inputs {
		post, err := buildNews(input)
		if err != nil {
			return err
		}
		if err := s.repo.AppendNews(ctx, &post); err != nil {
			return err
		}
	}
	return nil
}

// ImportEvents appends events already in display order (newest first).
func (s *Service) ImportEvents(ctx context.Context, inputs []ScheduleEventInput) error {
	for _, input := range inputs {
		event, err := buildEvent(input)
		if err != nil {
			return err
		}
		if err := s.repo.AppendEvent(ctx, &event); err != nil {
			return err
		}
	}
	return nil
}

func buildNews(input PublishNewsInput) (NewsPost, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return NewsPost{}, ErrTitleRequired
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return NewsPost{}, err
	}

	return NewsPost{
		ID:    id.String(),
		Title: title,
		Date:  input.Date,
		Body:  strings.TrimSpace(input.Body),
	}, nil
}

func buildEvent(input ScheduleEventInput) (Event, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Event{}, ErrNameRequired
	}

	id, err := uuid.NewRandom()
	if err != nil {
		return Event{}, err
	}

	return Event{
		ID:    id.String(),
		Name:  name,
		Date:  input.Date,
		Time:  strings.TrimSpace(input.Time),
		Place: strings.TrimSpace(input.Place),
		Notes: strings.TrimSpace(input.Notes),
	}, nil
}

func head[T any](items []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n < len(items) {
		return items[:n]
	}
	return items
}
