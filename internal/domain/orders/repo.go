package orders

import (
	"context"

	"github.com/google/uuid"
)

type OrderRepository interface {
	// Create persists the order and its lines. ID and CreatedAt are
	// populated on the passed order.
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*Order, error)
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Order, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
