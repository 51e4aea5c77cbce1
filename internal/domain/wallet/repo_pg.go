package wallet

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcart/medcart/internal/platform/apperr"
	"github.com/medcart/medcart/internal/platform/db"
)

type queryable interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type walletRepoPG struct{ pool *pgxpool.Pool }

func NewWalletRepoPG(pool *pgxpool.Pool) WalletRepository {
	return &walletRepoPG{pool: pool}
}

func (r *walletRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *walletRepoPG) Get(ctx context.Context, patientID uuid.UUID) (*Wallet, error) {
	var w Wallet
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT patient_id, balance, currency, updated_at
		FROM wallet WHERE patient_id = $1`, patientID).
		Scan(&w.PatientID, &w.Balance, &w.Currency, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("wallet not found")
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *walletRepoPG) Credit(ctx context.Context, patientID uuid.UUID, amount float64) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE wallet SET balance = balance + $2, updated_at = NOW()
		WHERE patient_id = $1`, patientID, amount)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *walletRepoPG) Debit(ctx context.Context, patientID uuid.UUID, amount float64) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE wallet SET balance = balance - $2, updated_at = NOW()
		WHERE patient_id = $1 AND balance >= $2`, patientID, amount)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
