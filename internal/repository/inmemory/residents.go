package inmemory

import (
	"context"
	"fmt"

	residentsdomain "rt-portal-go/internal/domain/residents"
)

type ResidentsRepository struct {
	store *orderedStore[residentsdomain.Resident]
}

func NewResidentsRepository() *ResidentsRepository {
	return &ResidentsRepository{store: newOrderedStore[residentsdomain.Resident](nil)}
}

func (r *ResidentsRepository) List(ctx context.Context) ([]residentsdomain.Resident, error) {
	return r.store.list(), nil
}

func (r *ResidentsRepository) Get(ctx context.Context, id string) (*residentsdomain.Resident, error) {
	resident, ok := r.store.get(id)
	if !ok {
		return nil, residentsdomain.ErrResidentNotFound
	}
	return &resident, nil
}

func (r *ResidentsRepository) Append(ctx context.Context, resident *residentsdomain.Resident) error {
	if err := r.store.pushBack(resident.ID, *resident); err != nil {
		return fmt.Errorf("append resident %s: %w", resident.ID, err)
	}
	return nil
}

func (r *ResidentsRepository) Replace(ctx context.Context, resident *residentsdomain.Resident) error {
	_, ok := r.store.update(resident.ID, func(stored *residentsdomain.Resident) {
		*stored = *resident
	})
	if !ok {
		return residentsdomain.ErrResidentNotFound
	}
	return nil
}

func (r *ResidentsRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.remove(id), nil
}
