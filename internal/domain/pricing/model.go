package pricing

import (
	"time"

	"github.com/google/uuid"
)

// HealthPackage maps to the health_package table. The medicine discount is a
// fraction in [0,1) applied to pharmacy medicine prices for subscribers.
type HealthPackage struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	Price            float64   `db:"price" json:"price"`
	SessionDiscount  float64   `db:"session_discount" json:"session_discount"`
	MedicineDiscount float64   `db:"medicine_discount" json:"medicine_discount"`
	FamilyDiscount   float64   `db:"family_discount" json:"family_discount"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// Subscription statuses. A discount applies only while the status is
// exactly StatusSubscribed; a cancelled subscription keeps its package
// reference but yields no discount.
const (
	StatusSubscribed   = "subscribed"
	StatusUnsubscribed = "unsubscribed"
	StatusCancelled    = "cancelled"
)

// Subscription is a patient's health-package subscription state.
type Subscription struct {
	Status    string     `db:"subscription_status" json:"status"`
	PackageID *uuid.UUID `db:"subscribed_package_id" json:"package_id,omitempty"`
}
