package wallet

import (
	"context"

	"github.com/google/uuid"
)

type WalletRepository interface {
	Get(ctx context.Context, patientID uuid.UUID) (*Wallet, error)
	// Credit adds amount to the balance in a single update. Reports false
	// when the patient has no wallet row.
	Credit(ctx context.Context, patientID uuid.UUID, amount float64) (bool, error)
	// Debit subtracts amount, guarded by balance >= amount. Reports false
	// when the guard rejects the write or no wallet row exists.
	Debit(ctx context.Context, patientID uuid.UUID, amount float64) (bool, error)
}
