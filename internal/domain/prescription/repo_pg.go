package prescription

import (
	"context"

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

type prescriptionRepoPG struct{ pool *pgxpool.Pool }

func NewPrescriptionRepoPG(pool *pgxpool.Pool) PrescriptionRepository {
	return &prescriptionRepoPG{pool: pool}
}

func (r *prescriptionRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

func (r *prescriptionRepoPG) PayableByPatient(ctx context.Context, patientID uuid.UUID) ([]*Payable, error) {
	q := r.conn(ctx)
	rows, err := q.Query(ctx, `
		SELECT id, patient_id, doctor_name, is_submitted, is_paid, created_at
		FROM prescription
		WHERE patient_id = $1 AND is_submitted = TRUE AND is_paid = FALSE
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*Payable{}
	ids := []uuid.UUID{}
	for rows.Next() {
		var p Payable
		if err := rows.Scan(&p.ID, &p.PatientID, &p.DoctorName, &p.IsSubmitted, &p.IsPaid, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Medicines = []PayableLine{}
		list = append(list, &p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	lineRows, err := q.Query(ctx, `
		SELECT pl.prescription_id, pl.medicine_id, m.name, m.description, m.picture_url, m.price, pl.quantity
		FROM prescription_line pl
		JOIN medicine m ON m.id = pl.medicine_id
		WHERE pl.prescription_id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer lineRows.Close()

	byPrescription := map[uuid.UUID][]PayableLine{}
	for lineRows.Next() {
		var prescriptionID uuid.UUID
		var line PayableLine
		if err := lineRows.Scan(&prescriptionID, &line.MedicineID, &line.Name, &line.Description,
			&line.PictureURL, &line.OriginalPrice, &line.Quantity); err != nil {
			return nil, err
		}
		byPrescription[prescriptionID] = append(byPrescription[prescriptionID], line)
	}
	if err := lineRows.Err(); err != nil {
		return nil, err
	}
	for _, p := range list {
		if lines, ok := byPrescription[p.ID]; ok {
			p.Medicines = lines
		}
	}
	return list, nil
}

func (r *prescriptionRepoPG) MarkPaid(ctx context.Context, id uuid.UUID) error {
	tag, err := r.conn(ctx).Exec(ctx, `
		UPDATE prescription SET is_paid = TRUE
		WHERE id = $1 AND is_submitted = TRUE AND is_paid = FALSE`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("payable prescription not found")
	}
	return nil
}
