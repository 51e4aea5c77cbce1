package orders

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

type orderRepoPG struct{ pool *pgxpool.Pool }

func NewOrderRepoPG(pool *pgxpool.Pool) OrderRepository {
	return &orderRepoPG{pool: pool}
}

func (r *orderRepoPG) conn(ctx context.Context) queryable {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const orderCols = `id, patient_id, patient_name, address, mobile_number, paid_amount, payment_method, created_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.PatientID, &o.PatientName, &o.Address, &o.MobileNumber,
		&o.PaidAmount, &o.PaymentMethod, &o.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperr.NotFound("order not found")
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepoPG) Create(ctx context.Context, order *Order) error {
	q := r.conn(ctx)
	err := q.QueryRow(ctx, `
		INSERT INTO orders (patient_id, patient_name, address, mobile_number, paid_amount, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at`,
		order.PatientID, order.PatientName, order.Address, order.MobileNumber,
		order.PaidAmount, order.PaymentMethod).
		Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return err
	}
	for _, line := range order.Lines {
		if _, err := q.Exec(ctx, `
			INSERT INTO order_line (order_id, medicine_id, quantity)
			VALUES ($1, $2, $3)`,
			order.ID, line.MedicineID, line.Quantity); err != nil {
			return err
		}
	}
	return nil
}

func (r *orderRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*Order, error) {
	q := r.conn(ctx)
	o, err := scanOrder(q.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	lines, err := r.loadLines(ctx, q, []uuid.UUID{o.ID})
	if err != nil {
		return nil, err
	}
	o.Lines = lines[o.ID]
	if o.Lines == nil {
		o.Lines = []Line{}
	}
	return o, nil
}

func (r *orderRepoPG) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*Order, error) {
	q := r.conn(ctx)
	rows, err := q.Query(ctx, `
		SELECT `+orderCols+` FROM orders
		WHERE patient_id = $1
		ORDER BY created_at DESC`, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []*Order{}
	ids := []uuid.UUID{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		o.Lines = []Line{}
		list = append(list, o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	lines, err := r.loadLines(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		if l, ok := lines[o.ID]; ok {
			o.Lines = l
		}
	}
	return list, nil
}

func (r *orderRepoPG) loadLines(ctx context.Context, q queryable, orderIDs []uuid.UUID) (map[uuid.UUID][]Line, error) {
	rows, err := q.Query(ctx, `
		SELECT order_id, medicine_id, quantity
		FROM order_line WHERE order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byOrder := map[uuid.UUID][]Line{}
	for rows.Next() {
		var orderID uuid.UUID
		var line Line
		if err := rows.Scan(&orderID, &line.MedicineID, &line.Quantity); err != nil {
			return nil, err
		}
		byOrder[orderID] = append(byOrder[orderID], line)
	}
	return byOrder, rows.Err()
}

func (r *orderRepoPG) Delete(ctx context.Context, id uuid.UUID) error {
	// order_line rows go with the order via ON DELETE CASCADE.
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM orders WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("order not found")
	}
	return nil
}
