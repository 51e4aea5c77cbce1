package pricing

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
)

// Service resolves the discount a patient is entitled to and applies it to
// medicine prices. Both the cart projection and prescription payment use
// this single policy, so the rounding rule lives in exactly one place.
type Service struct {
	packages      PackageRepository
	subscriptions SubscriptionRepository
}

func NewService(packages PackageRepository, subscriptions SubscriptionRepository) *Service {
	return &Service{packages: packages, subscriptions: subscriptions}
}

// DiscountForPatient returns the pharmacy-medicine discount fraction for a
// patient. Anything other than an active subscription yields zero: no
// package reference, an unsubscribed or cancelled status, or a package that
// has since been removed.
func (s *Service) DiscountForPatient(ctx context.Context, patientID uuid.UUID) (float64, error) {
	sub, err := s.subscriptions.ForPatient(ctx, patientID)
	if err != nil {
		return 0, err
	}
	if sub.Status != StatusSubscribed || sub.PackageID == nil {
		return 0, nil
	}

	pkg, err := s.packages.GetByID(ctx, *sub.PackageID)
	if err != nil {
		if apperr.IsNotFound(err) {
			return 0, nil
		}
		return 0, err
	}
	return pkg.MedicineDiscount, nil
}

func (s *Service) GetPackage(ctx context.Context, id uuid.UUID) (*HealthPackage, error) {
	return s.packages.GetByID(ctx, id)
}

func (s *Service) ListPackages(ctx context.Context) ([]*HealthPackage, error) {
	return s.packages.List(ctx)
}

// DiscountedPrice applies a discount fraction to a price and rounds to two
// decimals.
func DiscountedPrice(price, fraction float64) float64 {
	return math.Round(price*(1-fraction)*100) / 100
}
