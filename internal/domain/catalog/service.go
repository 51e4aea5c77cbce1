package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
)

type Service struct {
	medicines MedicineRepository
}

func NewService(medicines MedicineRepository) *Service {
	return &Service{medicines: medicines}
}

func (s *Service) CreateMedicine(ctx context.Context, m *Medicine) error {
	if m.Name == "" {
		return apperr.Validation("name is required")
	}
	if m.Price < 0 {
		return apperr.Validation("price must not be negative")
	}
	if m.AvailableQuantity < 0 {
		return apperr.Validation("available quantity must not be negative")
	}
	return s.medicines.Create(ctx, m)
}

func (s *Service) GetMedicine(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return s.medicines.GetByID(ctx, id)
}

func (s *Service) UpdateMedicine(ctx context.Context, m *Medicine) error {
	if m.Name == "" {
		return apperr.Validation("name is required")
	}
	if m.Price < 0 {
		return apperr.Validation("price must not be negative")
	}
	return s.medicines.Update(ctx, m)
}

func (s *Service) ArchiveMedicine(ctx context.Context, id uuid.UUID) error {
	return s.medicines.SetArchived(ctx, id, true)
}

func (s *Service) UnarchiveMedicine(ctx context.Context, id uuid.UUID) error {
	return s.medicines.SetArchived(ctx, id, false)
}

func (s *Service) SearchMedicines(ctx context.Context, name string, limit, offset int) ([]*Medicine, int, error) {
	return s.medicines.Search(ctx, name, limit, offset)
}

// Restock increases a medicine's available quantity.
func (s *Service) Restock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperr.Validation("quantity must be a positive integer")
	}
	applied, err := s.medicines.AdjustQuantity(ctx, id, quantity)
	if err != nil {
		return err
	}
	if !applied {
		return apperr.NotFound("medicine not found")
	}
	return nil
}

// DeductStock decrements available quantity, refusing to go below zero. The
// guard lives in the store's conditional update, so concurrent deductions
// cannot oversell.
func (s *Service) DeductStock(ctx context.Context, id uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return apperr.Validation("quantity must be a positive integer")
	}
	applied, err := s.medicines.AdjustQuantity(ctx, id, -quantity)
	if err != nil {
		return err
	}
	if !applied {
		if _, err := s.medicines.GetByID(ctx, id); err != nil {
			return err
		}
		return apperr.Validation("quantity exceeds the available quantity")
	}
	return nil
}
