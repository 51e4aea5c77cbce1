package wallet

import (
	"context"

	"github.com/google/uuid"

	"github.com/medcart/medcart/internal/platform/apperr"
)

type Service struct {
	wallets WalletRepository
}

func NewService(wallets WalletRepository) *Service {
	return &Service{wallets: wallets}
}

func (s *Service) Balance(ctx context.Context, patientID uuid.UUID) (*Wallet, error) {
	return s.wallets.Get(ctx, patientID)
}

// Credit adds amount to the patient's wallet. A missing wallet row is a
// typed not-found error so callers can decide whether to abort or log.
func (s *Service) Credit(ctx context.Context, patientID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return apperr.Validation("amount must be greater than 0")
	}
	applied, err := s.wallets.Credit(ctx, patientID, amount)
	if err != nil {
		return err
	}
	if !applied {
		return apperr.NotFound("wallet not found")
	}
	return nil
}

// Debit withdraws amount, failing when the balance cannot cover it.
func (s *Service) Debit(ctx context.Context, patientID uuid.UUID, amount float64) error {
	if amount <= 0 {
		return apperr.Validation("amount must be greater than 0")
	}
	applied, err := s.wallets.Debit(ctx, patientID, amount)
	if err != nil {
		return err
	}
	if applied {
		return nil
	}
	// Distinguish a missing wallet from an insufficient balance.
	if _, err := s.wallets.Get(ctx, patientID); err != nil {
		return err
	}
	return apperr.Validation("insufficient wallet balance")
}
