package inmemory

import (
	"context"
	"fmt"

	cashbookdomain "rt-portal-go/internal/domain/cashbook"
)

type CashbookRepository struct {
	store *orderedStore[cashbookdomain.Entry]
}

func NewCashbookRepository() *CashbookRepository {
	return &CashbookRepository{store: newOrderedStore[cashbookdomain.Entry](nil)}
}

func (r *CashbookRepository) List(ctx context.Context) ([]cashbookdomain.Entry, error) {
	return r.store.list(), nil
}

func (r *CashbookRepository) Append(ctx context.Context, entry *cashbookdomain.Entry) error {
	if err := r.store.pushBack(entry.ID, *entry); err != nil {
		return fmt.Errorf("append cash entry %s: %w", entry.ID, err)
	}
	return nil
}

func (r *CashbookRepository) Delete(ctx context.Context, id string) (bool, error) {
	return r.store.remove(id), nil
}
