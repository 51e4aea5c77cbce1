package cart

import (
	"context"

	"github.com/google/uuid"
)

type CartRepository interface {
	// Get returns the entry for (patient, medicine) or a not-found error.
	Get(ctx context.Context, patientID, medicineID uuid.UUID) (*Item, error)
	// Upsert inserts the entry or atomically increments an existing one's
	// quantity by qty. Duplicate entries per (patient, medicine) can never
	// result.
	Upsert(ctx context.Context, patientID, medicineID uuid.UUID, qty int) error
	// SetQuantity replaces an entry's quantity outright. Reports false when
	// no matching entry exists.
	SetQuantity(ctx context.Context, patientID, medicineID uuid.UUID, qty int) (bool, error)
	// Remove deletes the entry; removing a non-existent entry is not an error.
	Remove(ctx context.Context, patientID, medicineID uuid.UUID) error
	// Clear empties the patient's cart.
	Clear(ctx context.Context, patientID uuid.UUID) error
	// ItemsWithMedicine returns the cart lines joined with live medicine data.
	ItemsWithMedicine(ctx context.Context, patientID uuid.UUID) ([]*ItemDetail, error)
	// PatientExists reports whether the patient record exists at all.
	PatientExists(ctx context.Context, patientID uuid.UUID) (bool, error)
}
