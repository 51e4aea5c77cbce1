package orders

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medcart/medcart/internal/domain/catalog"
	"github.com/medcart/medcart/internal/platform/apperr"
)

// MedicineSource is the slice of the catalog that order reconciliation
// needs: live records for batch stock validation, and the conditional
// quantity adjustment used for stock reversal on cancellation.
type MedicineSource interface {
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Medicine, error)
	AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (bool, error)
}

// WalletSource credits refunds on cancellation. Credit reports false when
// the patient has no wallet row.
type WalletSource interface {
	Credit(ctx context.Context, patientID uuid.UUID, amount float64) (bool, error)
}

// TxFunc runs fn inside a database transaction.
type TxFunc func(ctx context.Context, fn func(ctx context.Context) error) error

type Service struct {
	orders    OrderRepository
	medicines MedicineSource
	wallets   WalletSource
	inTx      TxFunc
	log       zerolog.Logger
}

func NewService(orders OrderRepository, medicines MedicineSource, wallets WalletSource, inTx TxFunc, log zerolog.Logger) *Service {
	return &Service{orders: orders, medicines: medicines, wallets: wallets, inTx: inTx, log: log}
}

// CreateInput carries the patient snapshot and the order body. Name,
// address and mobile number are copied onto the order verbatim.
type CreateInput struct {
	PatientID     uuid.UUID
	PatientName   string
	Address       string
	MobileNumber  string
	Lines         []Line
	PaidAmount    float64
	PaymentMethod string
}

// Create validates every line against live stock and persists the order.
// Stock violations are collected across the whole list and reported in a
// single error naming every offending medicine, so the client can fix the
// cart in one pass. Creating an order does not decrement stock and does
// not clear the cart; callers drive both as separate steps.
func (s *Service) Create(ctx context.Context, in CreateInput) (*Order, error) {
	if len(in.Lines) == 0 {
		return nil, apperr.Validation("order must contain at least one medicine")
	}
	if in.PaidAmount < 0 {
		return nil, apperr.Validation("paid amount must not be negative")
	}
	if !ValidPaymentMethod(in.PaymentMethod) {
		return nil, apperr.Validation("invalid payment method: %s", in.PaymentMethod)
	}
	for _, line := range in.Lines {
		if line.Quantity <= 0 {
			return nil, apperr.Validation("quantity must be greater than 0")
		}
	}

	order := &Order{
		PatientID:     in.PatientID,
		PatientName:   in.PatientName,
		Address:       in.Address,
		MobileNumber:  in.MobileNumber,
		PaidAmount:    in.PaidAmount,
		PaymentMethod: in.PaymentMethod,
		Lines:         in.Lines,
	}

	err := s.inTx(ctx, func(ctx context.Context) error {
		var exceeding []string
		for _, line := range in.Lines {
			medicine, err := s.medicines.GetByID(ctx, line.MedicineID)
			if apperr.IsNotFound(err) {
				return apperr.Validation("medicine with id %s not found", line.MedicineID)
			}
			if err != nil {
				return err
			}
			if line.Quantity > medicine.AvailableQuantity {
				exceeding = append(exceeding, medicine.Name)
			}
		}
		if len(exceeding) > 0 {
			return apperr.Validation(
				"the following medicines are out of stock or do not have enough available quantity: %s",
				strings.Join(exceeding, ", "))
		}
		return s.orders.Create(ctx, order)
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Order, error) {
	return s.orders.ListByPatient(ctx, patientID)
}

// Cancel compensates and then deletes the order: refund first for wallet
// and card payments, then stock reversal per line, then the delete. Each
// step is persisted individually and applied compensations are never
// rolled back, so a failure partway leaves the order in place for a retry.
func (s *Service) Cancel(ctx context.Context, orderID uuid.UUID) (*Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.PaymentMethod == PaymentWallet || order.PaymentMethod == PaymentCard {
		credited, err := s.wallets.Credit(ctx, order.PatientID, order.PaidAmount)
		if err != nil {
			return nil, err
		}
		if !credited {
			s.log.Error().
				Str("order_id", order.ID.String()).
				Str("patient_id", order.PatientID.String()).
				Msg("wallet not found for refund, order left in place")
			return nil, apperr.NotFound("wallet not found")
		}
	}

	for _, line := range order.Lines {
		applied, err := s.medicines.AdjustQuantity(ctx, line.MedicineID, line.Quantity)
		if err != nil {
			return nil, err
		}
		if !applied {
			// Medicine deleted since purchase; nothing to restore.
			s.log.Warn().
				Str("order_id", order.ID.String()).
				Str("medicine_id", line.MedicineID.String()).
				Msg("medicine missing during stock reversal, skipped")
		}
	}

	if err := s.orders.Delete(ctx, orderID); err != nil {
		return nil, err
	}
	return order, nil
}
