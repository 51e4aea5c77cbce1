package pricing

import (
	"context"

	"github.com/google/uuid"
)

type PackageRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HealthPackage, error)
	List(ctx context.Context) ([]*HealthPackage, error)
}

type SubscriptionRepository interface {
	ForPatient(ctx context.Context, patientID uuid.UUID) (*Subscription, error)
}
