package identity

import (
	"time"

	"github.com/google/uuid"
)

// Patient maps to the patient table.
type Patient struct {
	ID                  uuid.UUID  `db:"id" json:"id"`
	Username            string     `db:"username" json:"username"`
	Email               string     `db:"email" json:"email"`
	Name                string     `db:"name" json:"name"`
	MobileNumber        string     `db:"mobile_number" json:"mobile_number"`
	Gender              string     `db:"gender" json:"gender"`
	DateOfBirth         time.Time  `db:"date_of_birth" json:"date_of_birth"`
	DeliveryAddresses   []string   `db:"delivery_addresses" json:"delivery_addresses"`
	SubscriptionStatus  string     `db:"subscription_status" json:"subscription_status"`
	SubscribedPackageID *uuid.UUID `db:"subscribed_package_id" json:"subscribed_package_id,omitempty"`
	CreatedAt           time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time  `db:"updated_at" json:"updated_at"`
}

// Details is the slim projection used at checkout to prefill the order
// snapshot fields.
type Details struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobile_number"`
}
