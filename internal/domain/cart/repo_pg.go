package cart

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
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type cartRepoPG struct{ pool *pgxpool.Pool }

func NewCartRepoPG(pool *pgxpool.Pool) CartRepository {
	return &cartRepoPG{pool: pool}
}

func (r *cartRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *cartRepoPG) Get(ctx context.Context, patientID, medicineID uuid.UUID) (*Item, error) {
	var it Item
	err := r.conn(ctx).QueryRow(ctx, `
		SELECT patient_id, medicine_id, quantity, created_at, updated_at
		FROM cart_item WHERE patient_id = $1 AND medicine_id = $2`,
		patientID, medicineID).
		Scan(&it.PatientID, &it.MedicineID, &it.Quantity, &it.CreatedAt, &it.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("cart item not found")
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *cartRepoPG) Upsert(ctx context.Context, patientID, medicineID uuid.UUID, qty int) error {
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO cart_item (patient_id, medicine_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (patient_id, medicine_id)
		DO UPDATE SET quantity = cart_item.quantity + EXCLUDED.quantity, updated_at = NOW()`,
		patientID, medicineID, qty)
	return err
}

func (r *cartRepoPG) SetQuantity(ctx context.Context, patientID, medicineID uuid.UUID, qty int) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE cart_item SET quantity = $3, updated_at = NOW()
		WHERE patient_id = $1 AND medicine_id = $2`,
		patientID, medicineID, qty)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *cartRepoPG) Remove(ctx context.Context, patientID, medicineID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM cart_item WHERE patient_id = $1 AND medicine_id = $2`,
		patientID, medicineID)
	return err
}

func (r *cartRepoPG) Clear(ctx context.Context, patientID uuid.UUID) error {
	_, err := r.conn(ctx).Exec(ctx,
		`DELETE FROM cart_item WHERE patient_id = $1`, patientID)
	return err
}

func (r *cartRepoPG) ItemsWithMedicine(ctx context.Context, patientID uuid.UUID) ([]*ItemDetail, error) {
	rows, err := r.conn(ctx).Query(ctx, `
		SELECT ci.medicine_id, m.name, m.price, m.picture_url, m.available_quantity, ci.quantity
		FROM cart_item ci
		JOIN medicine m ON m.id = ci.medicine_id
		WHERE ci.patient_id = $1
		ORDER BY ci.created_at`,
		patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*ItemDetail
	for rows.Next() {
		var d ItemDetail
		if err := rows.Scan(&d.MedicineID, &d.Name, &d.Price, &d.PictureURL,
			&d.AvailableQuantity, &d.Quantity); err != nil {
			return nil, err
		}
		items = append(items, &d)
	}
	return items, rows.Err()
}

func (r *cartRepoPG) PatientExists(ctx context.Context, patientID uuid.UUID) (bool, error) {
	var exists bool
	err := r.conn(ctx).QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM patient WHERE id = $1)`, patientID).Scan(&exists)
	return exists, err
}
