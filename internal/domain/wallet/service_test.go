package wallet

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
)

type mockWalletRepo struct {
	wallets map[uuid.UUID]*Wallet
}

func newMockWalletRepo() *mockWalletRepo {
	return &mockWalletRepo{wallets: make(map[uuid.UUID]*Wallet)}
}

func (m *mockWalletRepo) Get(_ context.Context, patientID uuid.UUID) (*Wallet, error) {
	w, ok := m.wallets[patientID]
	if !ok {
		return nil, apperr.NotFound("wallet not found")
	}
	return w, nil
}

func (m *mockWalletRepo) Credit(_ context.Context, patientID uuid.UUID, amount float64) (bool, error) {
	w, ok := m.wallets[patientID]
	if !ok {
		return false, nil
	}
	w.Balance += amount
	return true, nil
}

func (m *mockWalletRepo) Debit(_ context.Context, patientID uuid.UUID, amount float64) (bool, error) {
	w, ok := m.wallets[patientID]
	if !ok || w.Balance < amount {
		return false, nil
	}
	w.Balance -= amount
	return true, nil
}

func newTestService() (*Service, *mockWalletRepo, uuid.UUID) {
	repo := newMockWalletRepo()
	patientID := uuid.New()
	repo.wallets[patientID] = &Wallet{PatientID: patientID, Balance: 100, Currency: "USD"}
	return NewService(repo), repo, patientID
}

func TestCredit(t *testing.T) {
	svc, repo, patientID := newTestService()

	if err := svc.Credit(context.Background(), patientID, 25.50); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.wallets[patientID].Balance != 125.50 {
		t.Errorf("expected balance 125.50, got %v", repo.wallets[patientID].Balance)
	}
}

func TestCredit_MissingWallet(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Credit(context.Background(), uuid.New(), 10)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestCredit_NonPositiveAmount(t *testing.T) {
	svc, _, patientID := newTestService()

	for _, amount := range []float64{0, -5} {
		err := svc.Credit(context.Background(), patientID, amount)
		if !apperr.IsValidation(err) {
			t.Errorf("amount %v: expected validation error, got %v", amount, err)
		}
	}
}

func TestDebit(t *testing.T) {
	svc, repo, patientID := newTestService()

	if err := svc.Debit(context.Background(), patientID, 100); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.wallets[patientID].Balance != 0 {
		t.Errorf("expected balance 0, got %v", repo.wallets[patientID].Balance)
	}
}

func TestDebit_InsufficientBalance(t *testing.T) {
	svc, repo, patientID := newTestService()

	err := svc.Debit(context.Background(), patientID, 100.01)
	if !apperr.IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
	if repo.wallets[patientID].Balance != 100 {
		t.Errorf("expected balance untouched at 100, got %v", repo.wallets[patientID].Balance)
	}
}

func TestDebit_MissingWallet(t *testing.T) {
	svc, _, _ := newTestService()

	err := svc.Debit(context.Background(), uuid.New(), 10)
	if !apperr.IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestBalance(t *testing.T) {
	svc, _, patientID := newTestService()

	w, err := svc.Balance(context.Background(), patientID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.Balance != 100 || w.Currency != "USD" {
		t.Errorf("unexpected wallet: %+v", w)
	}
}
