package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Medicine maps to the medicine table. Available quantity is the shared
// stock counter touched by cart validation, order creation and cancellation
// reversal; it is only ever mutated through conditional single-row updates
// so it can never go negative.
type Medicine struct {
	ID                uuid.UUID `db:"id" json:"id"`
	Name              string    `db:"name" json:"name"`
	Description       *string   `db:"description" json:"description,omitempty"`
	Price             float64   `db:"price" json:"price"`
	AvailableQuantity int       `db:"available_quantity" json:"available_quantity"`
	IsOverTheCounter  bool      `db:"is_over_the_counter" json:"is_over_the_counter"`
	PictureURL        *string   `db:"picture_url" json:"picture_url,omitempty"`
	MedicinalUse      *string   `db:"medicinal_use" json:"medicinal_use,omitempty"`
	Archived          bool      `db:"archived" json:"archived"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}
