package inmemory

import (
	"context"
	"fmt"

	complaintsdomain "rt-portal-go/internal/domain/complaints"
)

type ComplaintsRepository struct {
	store *orderedStore[complaintsdomain.Complaint]
}

func NewComplaintsRepository() *ComplaintsRepository {
	return &ComplaintsRepository{store: newOrderedStore[complaintsdomain.Complaint](nil)}
}

func (r *ComplaintsRepository) List(ctx context.Context) ([]complaintsdomain.Complaint, error) {
	return r.store.list(), nil
}

func (r *ComplaintsRepository) Prepend(ctx context.Context, complaint *complaintsdomain.Complaint) error {
	if err := r.store.pushFront(complaint.ID, *complaint); err != nil {
		return fmt.Errorf("prepend complaint %s: %w", complaint.ID, err)
	}
	return nil
}

func (r *ComplaintsRepository) Append(ctx context.Context, complaint *complaintsdomain.Complaint) error {
	if err := r.store.pushBack(complaint.ID, *complaint); err != nil {
		return fmt.Errorf("append complaint %s: %w", complaint.ID, err)
	}
	return nil
}

func (r *ComplaintsRepository) SetStatus(ctx context.Context, id string, status complaintsdomain.Status) (*complaintsdomain.Complaint, error) {
	updated, ok := r.store.update(id, func(stored *complaintsdomain.Complaint) {
		stored.Status = status
	})
	if !ok {
		return nil, complaintsdomain.ErrComplaintNotFound
	}
	return &updated, nil
}

func (r *ComplaintsRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.remove(id), nil
}
