package homepage

import (
	"context"

	bulletindomain "rt-portal-go/internal/domain/bulletin"
	profiledomain "rt-portal-go/internal/domain/profile"
)

const highlightCount = 2

type ProfileReader interface {
	Get(ctx context.Context) (profiledomain.Profile, error)
}

type BulletinReader interface {
	LatestNews(ctx context.Context, n int) ([]bulletindomain.NewsPost, error)
	LatestEvents(ctx context.Context, n int) ([]bulletindomain.Event, error)
}

type BalanceReader interface {
	Balance(ctx context.Context) (int64, error)
}

type Summary struct {
	Profile profiledomain.Profile
	News    []bulletindomain.NewsPost
	Events  []bulletindomain.Event
	Balance int64
}

type Service struct {
	profiles ProfileReader
	bulletin BulletinReader
	cash     BalanceReader
}

func NewService(profiles ProfileReader, bulletin BulletinReader, cash BalanceReader) *Service {
	return &Service{profiles: profiles, bulletin: bulletin, cash: cash}
}

// Summary collects what the public landing page shows: the unit profile, the
// two newest news posts and events, and the current cash balance.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	p, err := s.profiles.Get(ctx)
	if err != nil {
		return Summary{}, err
	}
	news, err := s.bulletin.LatestNews(ctx, highlightCount)
	if err != nil {
		return Summary{}, err
	}
	events, err := s.bulletin.LatestEvents(ctx, highlightCount)
	if err != nil {
		return Summary{}, err
	}
	balance, err := s.cash.Balance(ctx)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Profile: p,
		News:    news,
		Events:  events,
		Balance: balance,
	}, nil
}
