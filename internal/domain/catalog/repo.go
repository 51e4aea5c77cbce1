package catalog

import (
	"context"

	"github.com/google/uuid"
)

type MedicineRepository interface {
	Create(ctx context.Context, m *Medicine) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error)
	Update(ctx context.Context, m *Medicine) error
	SetArchived(ctx context.Context, id uuid.UUID, archived bool) error
	Search(ctx context.Context, name string, limit, offset int) ([]*Medicine, int, error)
	// AdjustQuantity applies delta to available_quantity in a single
	// conditional update. It reports false when the guard
	// (available_quantity + delta >= 0) rejects the write or the medicine
	// does not exist.
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (bool, error)
}
