package cashbook

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	Append(ctx context.Context, entry *Entry) error
	Delete(ctx context.Context, id string) (bool, error)
}
