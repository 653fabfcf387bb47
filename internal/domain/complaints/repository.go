package complaints

import "context"

type Repository interface {
	List(ctx context.Context) ([]Complaint, error)
	Prepend(ctx context.Context, complaint *Complaint) error
	Append(ctx context.Context, complaint *Complaint) error
	SetStatus(ctx context.Context, id string, status Status) (*Complaint, error)
	Delete(ctx context.Context, id string) (bool, error)
}
