package pricing

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcart/medcart/internal/platform/apperr"
	"github.com/medcart/medcart/internal/platform/db"
)

type packageRepoPG struct{ pool *pgxpool.Pool }

func NewPackageRepoPG(pool *pgxpool.Pool) PackageRepository {
	return &packageRepoPG{pool: pool}
}

const packageCols = `id, name, price, session_discount, medicine_discount, family_discount,
	created_at, updated_at`

func scanPackage(row pgx.Row) (*HealthPackage, error) {
	var p HealthPackage
	err := row.Scan(&p.ID, &p.Name, &p.Price, &p.SessionDiscount, &p.MedicineDiscount,
		&p.FamilyDiscount, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("health package not found")
	}
	return &p, err
}

func (r *packageRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*HealthPackage, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+packageCols+` FROM health_package WHERE id = $1`, id)
	return scanPackage(row)
}

func (r *packageRepoPG) List(ctx context.Context) ([]*HealthPackage, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+packageCols+` FROM health_package ORDER BY price`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*HealthPackage
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

type subscriptionRepoPG struct{ pool *pgxpool.Pool }

func NewSubscriptionRepoPG(pool *pgxpool.Pool) SubscriptionRepository {
	return &subscriptionRepoPG{pool: pool}
}

func (r *subscriptionRepoPG) conn(ctx context.Context) interface {
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
} {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *subscriptionRepoPG) ForPatient(ctx context.Context, patientID uuid.UUID) (*Subscription, error) {
	var sub Subscription
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT subscription_status, subscribed_package_id FROM patient WHERE id = $1`,
		patientID).Scan(&sub.Status, &sub.PackageID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("patient not found")
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}
