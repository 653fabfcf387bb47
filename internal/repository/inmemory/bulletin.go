package inmemory

import (
	"context"
	"fmt"
	"time"

	bulletindomain "rt-portal-go/internal/domain/bulletin"
)

type BulletinRepository struct {
	news   *orderedStore[bulletindomain.NewsPost]
	events *orderedStore[bulletindomain.Event]
}

func NewBulletinRepository() *BulletinRepository {
	return &BulletinRepository{
		news:   newOrderedStore(cloneNewsPost),
		events: newOrderedStore(cloneEvent),
	}
}

func (r *BulletinRepository) ListNews(ctx context.Context) ([]bulletindomain.NewsPost, error) {
	return r.news.list(), nil
}

func (r *BulletinRepository) PrependNews(ctx context.Context, post *bulletindomain.NewsPost) error {
	if err := r.news.pushFront(post.ID, *post); err != nil {
		return fmt.Errorf("prepend news %s: %w", post.ID, err)
	}
	return nil
}

func (r *BulletinRepository) AppendNews(ctx context.Context, post *bulletindomain.NewsPost) error {
	if err := r.news.pushBack(post.ID, *post); err != nil {
		return fmt.Errorf("append news %s: %w", post.ID, err)
	}
	return nil
}

func (r *BulletinRepository) DeleteNews(ctx context.Context, id string) (bool, error) {
	return r.news.remove(id), nil
}

func (r *BulletinRepository) ListEvents(ctx context.Context) ([]bulletindomain.Event, error) {
	return r.events.list(), nil
}

func (r *BulletinRepository) PrependEvent(ctx context.Context, event *bulletindomain.Event) error {
	if err := r.events.pushFront(event.ID, *event); err != nil {
		return fmt.Errorf("prepend event %s: %w", event.ID, err)
	}
	return nil
}

func (r *BulletinRepository) AppendEvent(ctx context.Context, event *bulletindomain.Event) error {
	if err := r.events.pushBack(event.ID, *event); err != nil {
		return fmt.Errorf("append event %s: %w", event.ID, err)
	}
	return nil
}

func (r *BulletinRepository) DeleteEvent(ctx context.Context, id string) (bool, error) {
	return r.events.remove(id), nil
}

func cloneNewsPost(post bulletindomain.NewsPost) bulletindomain.NewsPost {
	post.Date = cloneTime(post.Date)
	return post
}

func cloneEvent(event bulletindomain.Event) bulletindomain.Event {
	event.Date = cloneTime(event.Date)
	return event
}

func cloneTime(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	cloned := *value
	return &cloned
}
