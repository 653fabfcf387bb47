package residents

import "context"

type Repository interface {
	List(ctx context.Context) ([]Resident, error)
	Get(ctx context.Context, id string) (*Resident, error)
	Append(ctx context.Context, resident *Resident) error
	Replace(ctx context.Context, resident *Resident) error
	Delete(ctx context.Context, id string) (bool, error)
}
