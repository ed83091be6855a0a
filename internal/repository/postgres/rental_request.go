package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

const requestColumns = `id, order_id, product_id, customer_id, supplier_id, from_date, end_date,
	status, order_date, address, created_on, updated_on`

type rentalRequestRepository struct {
	db *sql.DB
}

func NewRentalRequestRepository(db *sql.DB) repository.RentalRequestRepository {
	return &rentalRequestRepository{db: db}
}

func scanRequest(row interface{ Scan(...interface{}) error }) (*domain.RentalRequest, error) {
	rr := &domain.RentalRequest{}
	err := row.Scan(&rr.ID, &rr.OrderID, &rr.ProductID, &rr.CustomerID, &rr.SupplierID,
		&rr.FromDate, &rr.EndDate, &rr.Status, &rr.OrderDate, &rr.Address, &rr.CreatedOn, &rr.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return rr, nil
}

func (r *rentalRequestRepository) Create(ctx context.Context, rr *domain.RentalRequest) error {
	query := `INSERT INTO rental_requests (order_id, product_id, customer_id, supplier_id, from_date,
	          end_date, status, order_date, address, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, rr.OrderID, rr.ProductID, rr.CustomerID, rr.SupplierID,
		rr.FromDate, rr.EndDate, rr.Status, rr.OrderDate, rr.Address, now, now).Scan(&rr.ID)
}

func (r *rentalRequestRepository) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE id = $1`
	rr, err := scanRequest(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("rental request %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return rr, nil
}

func (r *rentalRequestRepository) list(ctx context.Context, column string, userID int32, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM rental_requests WHERE ` + column + ` = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY order_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.RentalRequest
	for rows.Next() {
		rr, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *rr)
	}
	return requests, rows.Err()
}

func (r *rentalRequestRepository) ListBySupplier(ctx context.Context, supplierID int32, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	return r.list(ctx, "supplier_id", supplierID, status)
}

func (r *rentalRequestRepository) ListByCustomer(ctx context.Context, customerID int32, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	return r.list(ctx, "customer_id", customerID, status)
}

// UpdateStatus performs the read-modify-write of a status change as a single
// conditional update so concurrent callers cannot both advance the same
// request. The row only changes while its status still equals current.
func (r *rentalRequestRepository) UpdateStatus(ctx context.Context, id int32, current, next domain.RequestStatus) error {
	query := `UPDATE rental_requests SET status = $1, updated_on = $2 WHERE id = $3 AND status = $4`
	res, err := r.db.ExecContext(ctx, query, next, time.Now(), id, current)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("rental request %d no longer %s: %w", id, current, domain.ErrStatusConflict)
	}
	return nil
}

func (r *rentalRequestRepository) ActiveRanges(ctx context.Context, productID int32) ([]domain.DateRange, error) {
	query := `SELECT from_date, end_date FROM rental_requests
	          WHERE product_id = $1 AND status IN ('Ordered', 'Payment', 'Shipped', 'Delivered')
	          ORDER BY from_date ASC`
	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranges []domain.DateRange
	for rows.Next() {
		var dr domain.DateRange
		if err := rows.Scan(&dr.FromDate, &dr.EndDate); err != nil {
			return nil, err
		}
		ranges = append(ranges, dr)
	}
	return ranges, rows.Err()
}
