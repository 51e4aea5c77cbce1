package prescription

import (
	"context"

	"github.com/google/uuid"
)

type PrescriptionRepository interface {
	// PayableByPatient lists the patient's submitted, unpaid prescriptions
	// with their lines joined against the live medicine records. Prices are
	// undiscounted; the service applies the discount.
	PayableByPatient(ctx context.Context, patientID uuid.UUID) ([]*Payable, error)
	MarkPaid(ctx context.Context, id uuid.UUID) error
}
