package orders

import (
	"time"

	"github.com/google/uuid"
)

// Payment methods accepted at checkout.
const (
	PaymentWallet         = "wallet"
	PaymentCard           = "card"
	PaymentCashOnDelivery = "cash_on_delivery"
)

// Line is one (medicine, quantity) pair on an order.
type Line struct {
	MedicineID uuid.UUID `db:"medicine_id" json:"medicine_id"`
	Quantity   int       `db:"quantity" json:"quantity"`
}

// Order is an immutable-once-created purchase record. Patient name, address
// and mobile number are denormalized snapshots taken at commit time, so
// later profile edits never rewrite purchase history.
type Order struct {
	ID            uuid.UUID `db:"id" json:"id"`
	PatientID     uuid.UUID `db:"patient_id" json:"patient_id"`
	PatientName   string    `db:"patient_name" json:"patient_name"`
	Address       string    `db:"address" json:"address"`
	MobileNumber  string    `db:"mobile_number" json:"mobile_number"`
	PaidAmount    float64   `db:"paid_amount" json:"paid_amount"`
	PaymentMethod string    `db:"payment_method" json:"payment_method"`
	Lines         []Line    `db:"-" json:"medicines"`
	CreatedAt     time.Time `db:"created_at" json:"created_at"`
}

func ValidPaymentMethod(m string) bool {
	switch m {
	case PaymentWallet, PaymentCard, PaymentCashOnDelivery:
		return true
	}
	return false
}
