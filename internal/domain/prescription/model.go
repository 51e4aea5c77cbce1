package prescription

import (
	"time"

	"github.com/google/uuid"
)

// Prescription maps to the prescription table. Lines live in the
// prescription_line table.
type Prescription struct {
	ID          uuid.UUID `db:"id" json:"id"`
	PatientID   uuid.UUID `db:"patient_id" json:"patient_id"`
	DoctorName  string    `db:"doctor_name" json:"doctor_name"`
	IsSubmitted bool      `db:"is_submitted" json:"is_submitted"`
	IsPaid      bool      `db:"is_paid" json:"is_paid"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// PayableLine is a prescription line joined with its medicine, priced with
// the patient's discount. OriginalPrice keeps the undiscounted figure so
// the client can show both.
type PayableLine struct {
	MedicineID    uuid.UUID `json:"medicine_id"`
	Name          string    `json:"name"`
	Description   *string   `json:"description,omitempty"`
	PictureURL    *string   `json:"picture_url,omitempty"`
	Price         float64   `json:"price"`
	OriginalPrice float64   `json:"original_price"`
	Quantity      int       `json:"quantity"`
}

// Payable is a submitted, unpaid prescription with priced lines.
type Payable struct {
	Prescription
	Medicines []PayableLine `json:"medicines"`
}
