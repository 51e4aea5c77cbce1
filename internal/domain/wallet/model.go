package wallet

import (
	"time"

	"github.com/google/uuid"
)

// Wallet maps to the wallet table, one row per patient.
type Wallet struct {
	PatientID uuid.UUID `db:"patient_id" json:"patient_id"`
	Balance   float64   `db:"balance" json:"balance"`
	Currency  string    `db:"currency" json:"currency"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
