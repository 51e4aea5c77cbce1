package identity

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/medcart/medcart/internal/platform/apperr"
	"github.com/medcart/medcart/internal/platform/db"
	"github.com/medcart/medcart/pkg/pagination"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

func (r *patientRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const patientCols = `id, username, email, name, mobile_number, gender, date_of_birth,
	delivery_addresses, subscription_status, subscribed_package_id, created_at, updated_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Username, &p.Email, &p.Name, &p.MobileNumber, &p.Gender,
		&p.DateOfBirth, &p.DeliveryAddresses, &p.SubscriptionStatus, &p.SubscribedPackageID,
		&p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("patient not found")
	}
	if err != nil {
		return nil, err
	}
	if p.DeliveryAddresses == nil {
		p.DeliveryAddresses = []string{}
	}
	return &p, nil
}

func (r *patientRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return scanPatient(r.conn(ctx).QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *patientRepoPG) List(ctx context.Context, p pagination.Params) ([]*Patient, int, error) {
	return r.query(ctx, `WHERE TRUE`, nil, p)
}

func (r *patientRepoPG) SearchByName(ctx context.Context, name string, p pagination.Params) ([]*Patient, int, error) {
	return r.query(ctx, `WHERE name ILIKE '%' || $1 || '%'`, []interface{}{name}, p)
}

func (r *patientRepoPG) query(ctx context.Context, where string, args []interface{}, p pagination.Params) ([]*Patient, int, error) {
	q := r.conn(ctx)

	var total int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM patient `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := q.Query(ctx,
		`SELECT `+patientCols+` FROM patient `+where+` ORDER BY name `+p.SQL(), args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []*Patient{}
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, patient)
	}
	return list, total, rows.Err()
}

func (r *patientRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM patient WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("patient not found")
	}
	return nil
}

func (r *patientRepoPG) AddDeliveryAddress(ctx context.Context, id uuid.UUID, address string) ([]string, error) {
	var addresses []string
	err := r.conn(ctx).QueryRow(ctx, `
		UPDATE patient
		SET delivery_addresses = array_append(delivery_addresses, $2), updated_at = NOW()
		WHERE id = $1
		RETURNING delivery_addresses`, id, address).Scan(&addresses)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("patient not found")
	}
	if err != nil {
		return nil, err
	}
	return addresses, nil
}
