package pricing

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
)

type mockPackageRepo struct {
	packages map[uuid.UUID]*HealthPackage
}

func (m *mockPackageRepo) GetByID(_ context.Context, id uuid.UUID) (*HealthPackage, error) {
	pkg, ok := m.packages[id]
	if !ok {
		return nil, apperr.NotFound("health package not found")
	}
	return pkg, nil
}

func (m *mockPackageRepo) List(_ context.Context) ([]*HealthPackage, error) {
	result := []*HealthPackage{}
	for _, pkg := range m.packages {
		result = append(result, pkg)
	}
	return result, nil
}

type mockSubscriptionRepo struct {
	subscriptions map[uuid.UUID]*Subscription
}

func (m *mockSubscriptionRepo) ForPatient(_ context.Context, patientID uuid.UUID) (*Subscription, error) {
	sub, ok := m.subscriptions[patientID]
	if !ok {
		return nil, apperr.NotFound("patient not found")
	}
	return sub, nil
}

func newTestService() (*Service, *mockPackageRepo, *mockSubscriptionRepo) {
	packages := &mockPackageRepo{packages: make(map[uuid.UUID]*HealthPackage)}
	subscriptions := &mockSubscriptionRepo{subscriptions: make(map[uuid.UUID]*Subscription)}
	return NewService(packages, subscriptions), packages, subscriptions
}

func TestDiscountForPatient_Subscribed(t *testing.T) {
	svc, packages, subscriptions := newTestService()

	pkgID := uuid.New()
	packages.packages[pkgID] = &HealthPackage{ID: pkgID, Name: "Gold", MedicineDiscount: 0.15}
	patientID := uuid.New()
	subscriptions.subscriptions[patientID] = &Subscription{Status: StatusSubscribed, PackageID: &pkgID}

	discount, err := svc.DiscountForPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discount != 0.15 {
		t.Errorf("expected discount 0.15, got %v", discount)
	}
}

func TestDiscountForPatient_Unsubscribed(t *testing.T) {
	svc, packages, subscriptions := newTestService()

	pkgID := uuid.New()
	packages.packages[pkgID] = &HealthPackage{ID: pkgID, MedicineDiscount: 0.15}
	patientID := uuid.New()
	subscriptions.subscriptions[patientID] = &Subscription{Status: StatusUnsubscribed, PackageID: &pkgID}

	discount, err := svc.DiscountForPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discount != 0 {
		t.Errorf("expected discount 0, got %v", discount)
	}
}

func TestDiscountForPatient_CancelledKeepsPackageButNoDiscount(t *testing.T) {
	svc, packages, subscriptions := newTestService()

	pkgID := uuid.New()
	packages.packages[pkgID] = &HealthPackage{ID: pkgID, MedicineDiscount: 0.20}
	patientID := uuid.New()
	subscriptions.subscriptions[patientID] = &Subscription{Status: StatusCancelled, PackageID: &pkgID}

	discount, _ := svc.DiscountForPatient(context.Background(), patientID)
	if discount != 0 {
		t.Errorf("expected discount 0, got %v", discount)
	}
}

func TestDiscountForPatient_MissingPackage(t *testing.T) {
	svc, _, subscriptions := newTestService()

	goneID := uuid.New()
	patientID := uuid.New()
	subscriptions.subscriptions[patientID] = &Subscription{Status: StatusSubscribed, PackageID: &goneID}

	discount, err := svc.DiscountForPatient(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if discount != 0 {
		t.Errorf("expected discount 0 for removed package, got %v", discount)
	}
}

func TestDiscountForPatient_NoPackageReference(t *testing.T) {
	svc, _, subscriptions := newTestService()

	patientID := uuid.New()
	subscriptions.subscriptions[patientID] = &Subscription{Status: StatusSubscribed}

	discount, _ := svc.DiscountForPatient(context.Background(), patientID)
	if discount != 0 {
		t.Errorf("expected discount 0, got %v", discount)
	}
}

func TestDiscountedPrice(t *testing.T) {
	cases := []struct {
		price    float64
		fraction float64
		want     float64
	}{
		{20.00, 0.10, 18.00},
		{9.99, 0.15, 8.49},
		{5.00, 0, 5.00},
		{10.00, 1, 0},
		{0.01, 0.5, 0.01},
	}
	for _, tc := range cases {
		got := DiscountedPrice(tc.price, tc.fraction)
		if got != tc.want {
			t.Errorf("DiscountedPrice(%v, %v) = %v, want %v", tc.price, tc.fraction, got, tc.want)
		}
	}
}
