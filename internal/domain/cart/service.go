package cart

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/domain/catalog"
	"github.com/medcart/medcart/internal/domain/pricing"
	"github.com/medcart/medcart/internal/platform/apperr"
)

// MedicineSource is the slice of the catalog the cart needs: live medicine
// records for stock and OTC checks.
type MedicineSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Medicine, error)
}

// DiscountSource resolves the discount fraction applied to cart prices.
type DiscountSource interface {
	DiscountForPatient(ctx context.Context, patientID uuid.UUID) (float64, error)
}

type Service struct {
	carts     CartRepository
	medicines MedicineSource
	discounts DiscountSource
}

func NewService(carts CartRepository, medicines MedicineSource, discounts DiscountSource) *Service {
	return &Service{carts: carts, medicines: medicines, discounts: discounts}
}

// AddToCart validates the request against the live medicine record and then
// adds or increments the cart entry in one atomic upsert. The stock bound is
// checked against current quantity + requested quantity; the check and the
// write are separate statements, so the bound is advisory under concurrency —
// the hard guarantee lives in the conditional stock deduction at checkout.
func (s *Service) AddToCart(ctx context.Context, patientID, medicineID uuid.UUID, quantity int, otcPurchase bool) error {
	if quantity <= 0 {
		return apperr.Validation("quantity must be greater than 0")
	}

	medicine, err := s.medicines.GetByID(ctx, medicineID)
	if err != nil {
		return err
	}
	if otcPurchase && !medicine.IsOverTheCounter {
		return apperr.Validation("medicine is not OTC")
	}

	currentQuantity := 0
	if existing, err := s.carts.Get(ctx, patientID, medicineID); err == nil {
		currentQuantity = existing.Quantity
	} else if !apperr.IsNotFound(err) {
		return err
	}

	if currentQuantity+quantity > medicine.AvailableQuantity {
		return apperr.Validation("quantity exceeds the available quantity")
	}

	return s.carts.Upsert(ctx, patientID, medicineID, quantity)
}

// ChangeQuantity replaces the entry's quantity outright. It intentionally
// does not re-check available stock; order creation re-validates every line
// against live stock anyway.
func (s *Service) ChangeQuantity(ctx context.Context, patientID, medicineID uuid.UUID, newQuantity int) error {
	if newQuantity <= 0 {
		return apperr.Validation("quantity must be a positive number")
	}
	applied, err := s.carts.SetQuantity(ctx, patientID, medicineID, newQuantity)
	if err != nil {
		return err
	}
	if !applied {
		return apperr.NotFound("medicine not found in cart")
	}
	return nil
}

// RemoveItem deletes the entry. Removing an absent entry still succeeds.
func (s *Service) RemoveItem(ctx context.Context, patientID, medicineID uuid.UUID) error {
	return s.carts.Remove(ctx, patientID, medicineID)
}

// Clear empties the patient's cart. Clearing an already-empty cart succeeds;
// only a missing patient is an error.
func (s *Service) Clear(ctx context.Context, patientID uuid.UUID) error {
	exists, err := s.carts.PatientExists(ctx, patientID)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("patient not found")
	}
	return s.carts.Clear(ctx, patientID)
}

// Items returns the priced cart projection. An empty cart yields an empty
// slice, not an error.
func (s *Service) Items(ctx context.Context, patientID uuid.UUID) ([]*PricedItem, error) {
	discount, err := s.discounts.DiscountForPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}

	details, err := s.carts.ItemsWithMedicine(ctx, patientID)
	if err != nil {
		return nil, err
	}

	items := make([]*PricedItem, 0, len(details))
	for _, d := range details {
		items = append(items, &PricedItem{
			MedicineID: d.MedicineID,
			Name:       d.Name,
			PictureURL: d.PictureURL,
			Price:      pricing.DiscountedPrice(d.Price, discount),
			Quantity:   d.Quantity,
		})
	}
	return items, nil
}

// Stock returns the live available quantity for each cart line, in cart
// order. The client uses this to flag lines that no longer fit before
// checkout.
func (s *Service) Stock(ctx context.Context, patientID uuid.UUID) ([]int, error) {
	details, err := s.carts.ItemsWithMedicine(ctx, patientID)
	if err != nil {
		return nil, err
	}
	quantities := make([]int, 0, len(details))
	for _, d := range details {
		quantities = append(quantities, d.AvailableQuantity)
	}
	return quantities, nil
}
