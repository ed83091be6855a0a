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

type addressRepository struct {
	db *sql.DB
}

func NewAddressRepository(db *sql.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

func (r *addressRepository) Create(ctx context.Context, a *domain.Address) error {
	query := `INSERT INTO addresses (user_id, label, line1, line2, city, district, pincode, phone, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, a.UserID, a.Label, a.Line1, a.Line2, a.City, a.District,
		a.Pincode, a.Phone, now, now).Scan(&a.ID)
}

func (r *addressRepository) GetByID(ctx context.Context, id int32) (*domain.Address, error) {
	a := &domain.Address{}
	query := `SELECT id, user_id, label, line1, line2, city, district, pincode, phone, created_on, updated_on
	          FROM addresses WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.UserID, &a.Label, &a.Line1, &a.Line2,
		&a.City, &a.District, &a.Pincode, &a.Phone, &a.CreatedOn, &a.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("address %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *addressRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Address, error) {
	query := `SELECT id, user_id, label, line1, line2, city, district, pincode, phone, created_on, updated_on
	          FROM addresses WHERE user_id = $1 ORDER BY created_on DESC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var addrs []domain.Address
	for rows.Next() {
		var a domain.Address
		if err := rows.Scan(&a.ID, &a.UserID, &a.Label, &a.Line1, &a.Line2, &a.City, &a.District,
			&a.Pincode, &a.Phone, &a.CreatedOn, &a.UpdatedOn); err != nil {
			return nil, err
		}
		addrs = append(addrs, a)
	}
	return addrs, rows.Err()
}

func (r *addressRepository) Update(ctx context.Context, a *domain.Address) error {
	query := `UPDATE addresses SET label=$1, line1=$2, line2=$3, city=$4, district=$5, pincode=$6,
	          phone=$7, updated_on=$8 WHERE id=$9`
	_, err := r.db.ExecContext(ctx, query, a.Label, a.Line1, a.Line2, a.City, a.District, a.Pincode,
		a.Phone, time.Now(), a.ID)
	return err
}

func (r *addressRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM addresses WHERE id = $1`, id)
	return err
}
