package prescription

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/domain/pricing"
)

// DiscountSource resolves the medicine discount fraction for a patient.
type DiscountSource interface {
	DiscountForPatient(ctx context.Context, patientID uuid.UUID) (float64, error)
}

type Service struct {
	prescriptions PrescriptionRepository
	discounts     DiscountSource
}

func NewService(prescriptions PrescriptionRepository, discounts DiscountSource) *Service {
	return &Service{prescriptions: prescriptions, discounts: discounts}
}

// PayableByPatient lists submitted, unpaid prescriptions with each line
// priced at the patient's discount. The discount is resolved once and
// applied across all prescriptions.
func (s *Service) PayableByPatient(ctx context.Context, patientID uuid.UUID) ([]*Payable, error) {
	discount, err := s.discounts.DiscountForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	list, err := s.prescriptions.PayableByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	for _, p := range list {
		for i := range p.Medicines {
			p.Medicines[i].Price = pricing.DiscountedPrice(p.Medicines[i].OriginalPrice, discount)
		}
	}
	return list, nil
}

func (s *Service) MarkPaid(ctx context.Context, id uuid.UUID) error {
	return s.prescriptions.MarkPaid(ctx, id)
}
