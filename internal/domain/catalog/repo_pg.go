package catalog

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

type medicineRepoPG struct{ pool *pgxpool.Pool }

func NewMedicineRepoPG(pool *pgxpool.Pool) MedicineRepository {
	return &medicineRepoPG{pool: pool}
}

func (r *medicineRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const medicineCols = `id, name, description, price, available_quantity,
	is_over_the_counter, picture_url, medicinal_use, archived, created_at, updated_at`

func scanMedicine(row pgx.Row) (*Medicine, error) {
	var m Medicine
	err := row.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.AvailableQuantity,
		&m.IsOverTheCounter, &m.PictureURL, &m.MedicinalUse, &m.Archived, &m.CreatedAt, &m.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("medicine not found")
	}
	return &m, err
}

func (r *medicineRepoPG) Create(ctx context.Context, m *Medicine) error {
	m.ID = uuid.New()
	_, err := r.conn(ctx).Exec(ctx, `
		INSERT INTO medicine (id, name, description, price, available_quantity,
			is_over_the_counter, picture_url, medicinal_use)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.Name, m.Description, m.Price, m.AvailableQuantity,
		m.IsOverTheCounter, m.PictureURL, m.MedicinalUse)
	return err
}

func (r *medicineRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Medicine, error) {
	return scanMedicine(r.conn(ctx).QueryRow(ctx,
		`SELECT `+medicineCols+` FROM medicine WHERE id = $1`, id))
}

func (r *medicineRepoPG) Update(ctx context.Context, m *Medicine) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE medicine SET name=$2, description=$3, price=$4,
			is_over_the_counter=$5, picture_url=$6, medicinal_use=$7, updated_at=NOW()
		WHERE id = $1`,
		m.ID, m.Name, m.Description, m.Price,
		m.IsOverTheCounter, m.PictureURL, m.MedicinalUse)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicine not found")
	}
	return nil
}

func (r *medicineRepoPG) SetArchived(ctx context.Context, id uuid.UUID, archived bool) error {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE medicine SET archived=$2, updated_at=NOW() WHERE id = $1`, id, archived)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("medicine not found")
	}
	return nil
}

func (r *medicineRepoPG) Search(ctx context.Context, name string, limit, offset int) ([]*Medicine, int, error) {
	where := `WHERE archived = FALSE`
	args := []interface{}{}
	if name != "" {
		where += ` AND name ILIKE '%' || $1 || '%'`
		args = append(args, name)
	}

	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM medicine `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + medicineCols + ` FROM medicine ` + where + ` ORDER BY name`
	if name != "" {
		query += ` LIMIT $2 OFFSET $3`
	} else {
		query += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := r.conn(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []*Medicine
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, m)
	}
	return items, total, rows.Err()
}

func (r *medicineRepoPG) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE medicine
		SET available_quantity = available_quantity + $2, updated_at = NOW()
		WHERE id = $1 AND available_quantity + $2 >= 0`,
		id, delta)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
