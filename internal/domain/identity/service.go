package identity

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
	"github.com/medcart/medcart/pkg/pagination"
)

type Service struct {
	patients PatientRepository
}

func NewService(patients PatientRepository) *Service {
	return &Service{patients: patients}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, p pagination.Params) ([]*Patient, int, error) {
	return s.patients.List(ctx, p)
}

func (s *Service) SearchByName(ctx context.Context, name string, p pagination.Params) ([]*Patient, int, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, apperr.Validation("name is required")
	}
	return s.patients.SearchByName(ctx, name, p)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.patients.Delete(ctx, id)
}

// Details returns the checkout snapshot projection for a patient.
func (s *Service) Details(ctx context.Context, id uuid.UUID) (*Details, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Details{ID: p.ID, Name: p.Name, MobileNumber: p.MobileNumber}, nil
}

func (s *Service) DeliveryAddresses(ctx context.Context, id uuid.UUID) ([]string, error) {
	p, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return p.DeliveryAddresses, nil
}

func (s *Service) AddDeliveryAddress(ctx context.Context, id uuid.UUID, address string) ([]string, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, apperr.Validation("address is required")
	}
	return s.patients.AddDeliveryAddress(ctx, id, address)
}
