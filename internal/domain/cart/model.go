package cart

import (
	"time"

	"github.com/google/uuid"
)

// Item maps to the cart_item table. The (patient_id, medicine_id) pair is
// unique, so "one entry per medicine per patient" is enforced by the schema
// rather than by query discipline.
type Item struct {
	PatientID  uuid.UUID `db:"patient_id" json:"patient_id"`
	MedicineID uuid.UUID `db:"medicine_id" json:"medicine_id"`
	Quantity   int       `db:"quantity" json:"quantity"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// ItemDetail is a cart line joined with its medicine record.
type ItemDetail struct {
	MedicineID        uuid.UUID `db:"medicine_id" json:"medicine_id"`
	Name              string    `db:"name" json:"name"`
	Price             float64   `db:"price" json:"price"`
	PictureURL        *string   `db:"picture_url" json:"picture_url,omitempty"`
	AvailableQuantity int       `db:"available_quantity" json:"available_quantity"`
	Quantity          int       `db:"quantity" json:"quantity"`
}

// PricedItem is the client-facing cart projection with the patient's
// discount already applied to the unit price.
type PricedItem struct {
	MedicineID uuid.UUID `json:"medicine_id"`
	Name       string    `json:"name"`
	PictureURL *string   `json:"picture_url,omitempty"`
	Price      float64   `json:"price"`
	Quantity   int       `json:"quantity"`
}
