package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

const productColumns = `id, supplier_id, name, description, category, sub_category, rental_days, price,
	compare_at_price, location, district, city, pincode, available, quantity, images, specification,
	supplier_contact, rental_count, created_on, updated_on`

// qualifiedProductColumns is productColumns with a "p." prefix for joins.
const qualifiedProductColumns = `p.id, p.supplier_id, p.name, p.description, p.category, p.sub_category,
	p.rental_days, p.price, p.compare_at_price, p.location, p.district, p.city, p.pincode, p.available,
	p.quantity, p.images, p.specification, p.supplier_contact, p.rental_count, p.created_on, p.updated_on`

type productRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func scanProduct(row interface{ Scan(...interface{}) error }) (*domain.Product, error) {
	p := &domain.Product{}
	var specJSON []byte
	err := row.Scan(&p.ID, &p.SupplierID, &p.Name, &p.Description, &p.Category, &p.SubCategory,
		&p.RentalDays, &p.Price, &p.CompareAtPrice, &p.Location, &p.District, &p.City, &p.Pincode,
		&p.Available, &p.Quantity, pq.Array(&p.Images), &specJSON, &p.SupplierContact,
		&p.RentalCount, &p.CreatedOn, &p.UpdatedOn)
	if err != nil {
		return nil, err
	}
	if len(specJSON) > 0 {
		if err := json.Unmarshal(specJSON, &p.Specification); err != nil {
			return nil, fmt.Errorf("unmarshal specification: %w", err)
		}
	}
	return p, nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...interface{}) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (r *productRepository) Create(ctx context.Context, p *domain.Product) error {
	specJSON, err := json.Marshal(p.Specification)
	if err != nil {
		return fmt.Errorf("marshal specification: %w", err)
	}
	query := `INSERT INTO products (supplier_id, name, description, category, sub_category, rental_days,
	          price, compare_at_price, location, district, city, pincode, available, quantity, images,
	          specification, supplier_contact, rental_count, created_on, updated_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, 0, $18, $19)
	          RETURNING id`
	now := time.Now()
	return r.db.QueryRowContext(ctx, query, p.SupplierID, p.Name, p.Description, p.Category,
		p.SubCategory, p.RentalDays, p.Price, p.CompareAtPrice, p.Location, p.District, p.City,
		p.Pincode, p.Available, p.Quantity, pq.Array(p.Images), specJSON, p.SupplierContact,
		now, now).Scan(&p.ID)
}

func (r *productRepository) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *productRepository) Update(ctx context.Context, p *domain.Product) error {
	specJSON, err := json.Marshal(p.Specification)
	if err != nil {
		return fmt.Errorf("marshal specification: %w", err)
	}
	query := `UPDATE products SET name=$1, description=$2, category=$3, sub_category=$4, rental_days=$5,
	          price=$6, compare_at_price=$7, location=$8, district=$9, city=$10, pincode=$11,
	          available=$12, quantity=$13, images=$14, specification=$15, supplier_contact=$16,
	          updated_on=$17 WHERE id=$18`
	_, err = r.db.ExecContext(ctx, query, p.Name, p.Description, p.Category, p.SubCategory,
		p.RentalDays, p.Price, p.CompareAtPrice, p.Location, p.District, p.City, p.Pincode,
		p.Available, p.Quantity, pq.Array(p.Images), specJSON, p.SupplierContact, time.Now(), p.ID)
	return err
}

func (r *productRepository) Delete(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}

func (r *productRepository) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE available = TRUE AND quantity > 0 ORDER BY created_on DESC`
	return r.queryProducts(ctx, query)
}

func (r *productRepository) ListBySupplier(ctx context.Context, supplierID int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE supplier_id = $1 ORDER BY created_on DESC`
	return r.queryProducts(ctx, query, supplierID)
}

func (r *productRepository) ListByCategory(ctx context.Context, category string, excludeID int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE category = $1 AND id <> $2 AND available = TRUE ORDER BY created_on DESC`
	return r.queryProducts(ctx, query, category, excludeID)
}

func (r *productRepository) ListPopular(ctx context.Context, limit int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE available = TRUE ORDER BY rental_count DESC, id ASC LIMIT $1`
	return r.queryProducts(ctx, query, limit)
}

func (r *productRepository) IncrementRentalCount(ctx context.Context, id int32) error {
	_, err := r.db.ExecContext(ctx, `UPDATE products SET rental_count = rental_count + 1, updated_on = $1 WHERE id = $2`, time.Now(), id)
	return err
}
