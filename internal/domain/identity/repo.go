package identity

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcart/medcart/pkg/pagination"
)

type PatientRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*Patient, error)
	List(ctx context.Context, p pagination.Params) ([]*Patient, int, error)
	SearchByName(ctx context.Context, name string, p pagination.Params) ([]*Patient, int, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// AddDeliveryAddress appends an address and returns the updated list.
	AddDeliveryAddress(ctx context.Context, id uuid.UUID, address string) ([]string, error)
}
