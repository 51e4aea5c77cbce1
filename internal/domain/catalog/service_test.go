package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
)

// -- Mock Medicine Repository --

type mockMedicineRepo struct {
	medicines map[uuid.UUID]*Medicine
}

func newMockMedicineRepo() *mockMedicineRepo {
	return &mockMedicineRepo{medicines: make(map[uuid.UUID]*Medicine)}
}

func (m *mockMedicineRepo) Create(_ context.Context, medicine *Medicine) error {
	medicine.ID = uuid.New()
	medicine.CreatedAt = time.Now()
	medicine.UpdatedAt = time.Now()
	m.medicines[medicine.ID] = medicine
	return nil
}

func (m *mockMedicineRepo) GetByID(_ context.Context, id uuid.UUID) (*Medicine, error) {
	medicine, ok := m.medicines[id]
	if !ok {
		return nil, apperr.NotFound("medicine not found")
	}
	return medicine, nil
}

func (m *mockMedicineRepo) Update(_ context.Context, medicine *Medicine) error {
	if _, ok := m.medicines[medicine.ID]; !ok {
		return apperr.NotFound("medicine not found")
	}
	m.medicines[medicine.ID] = medicine
	return nil
}

func (m *mockMedicineRepo) SetArchived(_ context.Context, id uuid.UUID, archived bool) error {
	medicine, ok := m.medicines[id]
	if !ok {
		return apperr.NotFound("medicine not found")
	}
	medicine.Archived = archived
	return nil
}

func (m *mockMedicineRepo) Search(_ context.Context, name string, limit, offset int) ([]*Medicine, int, error) {
	result := []*Medicine{}
	for _, medicine := range m.medicines {
		if medicine.Archived {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(medicine.Name), strings.ToLower(name)) {
			continue
		}
		result = append(result, medicine)
	}
	return result, len(result), nil
}

func (m *mockMedicineRepo) AdjustQuantity(_ context.Context, id uuid.UUID, delta int) (bool, error) {
	medicine, ok := m.medicines[id]
	if !ok {
		return false, nil
	}
	if medicine.AvailableQuantity+delta < 0 {
		return false, nil
	}
	medicine.AvailableQuantity += delta
	return true, nil
}

func newTestService() (*Service, *mockMedicineRepo) {
	repo := newMockMedicineRepo()
	return NewService(repo), repo
}

// -- Tests --

func TestCreateMedicine(t *testing.T) {
	svc, _ := newTestService()

	m := &Medicine{Name: "Aspirin", Price: 4.99, AvailableQuantity: 100}
	if err := svc.CreateMedicine(context.Background(), m); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
}

func TestCreateMedicine_NameRequired(t *testing.T) {
	svc, _ := newTestService()

	err := svc.CreateMedicine(context.Background(), &Medicine{Price: 4.99})
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestCreateMedicine_NegativePrice(t *testing.T) {
	svc, _ := newTestService()

	err := svc.CreateMedicine(context.Background(), &Medicine{Name: "Aspirin", Price: -1})
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestSearchMedicines_ExcludesArchived(t *testing.T) {
	svc, repo := newTestService()

	active := &Medicine{Name: "Aspirin", Price: 4.99}
	archived := &Medicine{Name: "Aspirin Forte", Price: 6.99}
	_ = svc.CreateMedicine(context.Background(), active)
	_ = svc.CreateMedicine(context.Background(), archived)
	_ = repo.SetArchived(context.Background(), archived.ID, true)

	result, total, err := svc.SearchMedicines(context.Background(), "aspirin", 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 1 || len(result) != 1 {
		t.Errorf("expected 1 result, got %d", len(result))
	}
}

func TestRestock(t *testing.T) {
	svc, repo := newTestService()
	m := &Medicine{Name: "Aspirin", Price: 4.99, AvailableQuantity: 5}
	_ = svc.CreateMedicine(context.Background(), m)

	if err := svc.Restock(context.Background(), m.ID, 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.medicines[m.ID].AvailableQuantity != 15 {
		t.Errorf("expected quantity 15, got %d", repo.medicines[m.ID].AvailableQuantity)
	}
}

func TestRestock_NonPositive(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Restock(context.Background(), uuid.New(), 0)
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestRestock_UnknownMedicine(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Restock(context.Background(), uuid.New(), 5)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestDeductStock(t *testing.T) {
	svc, repo := newTestService()
	m := &Medicine{Name: "Aspirin", Price: 4.99, AvailableQuantity: 5}
	_ = svc.CreateMedicine(context.Background(), m)

	if err := svc.DeductStock(context.Background(), m.ID, 5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.medicines[m.ID].AvailableQuantity != 0 {
		t.Errorf("expected quantity 0, got %d", repo.medicines[m.ID].AvailableQuantity)
	}
}

func TestDeductStock_Oversell(t *testing.T) {
	svc, repo := newTestService()
	m := &Medicine{Name: "Aspirin", Price: 4.99, AvailableQuantity: 5}
	_ = svc.CreateMedicine(context.Background(), m)

	err := svc.DeductStock(context.Background(), m.ID, 6)
	if !apperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.medicines[m.ID].AvailableQuantity != 5 {
		t.Errorf("expected quantity untouched at 5, got %d", repo.medicines[m.ID].AvailableQuantity)
	}
}

func TestDeductStock_UnknownMedicine(t *testing.T) {
	svc, _ := newTestService()

	err := svc.DeductStock(context.Background(), uuid.New(), 1)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestArchiveUnarchive(t *testing.T) {
	svc, repo := newTestService()
	m := &Medicine{Name: "Aspirin", Price: 4.99}
	_ = svc.CreateMedicine(context.Background(), m)

	if err := svc.ArchiveMedicine(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !repo.medicines[m.ID].Archived {
		t.Error("expected medicine to be archived")
	}
	if err := svc.UnarchiveMedicine(context.Background(), m.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.medicines[m.ID].Archived {
		t.Error("expected medicine to be unarchived")
	}
}
