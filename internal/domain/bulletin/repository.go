package bulletin

import "context"

type Repository interface {
	ListNews(ctx context.Context) ([]NewsPost, error)
	PrependNews(ctx context.Context, post *NewsPost) error
	AppendNews(ctx context.Context, post *NewsPost) error
	DeleteNews(ctx context.Context, id string) (bool, error)
	ListEvents(ctx context.Context) ([]Event, error)
	PrependEvent(ctx context.Context, event *Event) error
	AppendEvent(ctx context.Context, event *Event) error
	DeleteEvent(ctx context.Context, id string) (bool, error)
}
