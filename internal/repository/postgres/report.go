package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

// weekdayNames maps the 1=Sunday..7=Saturday bucket numbering to labels.
var weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type reportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) repository.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) CountProducts(ctx context.Context, supplierID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM products WHERE supplier_id = $1`, supplierID).Scan(&count)
	return count, err
}

func (r *reportRepository) CountRequests(ctx context.Context, supplierID int32, status domain.RequestStatus) (int32, error) {
	var count int32
	if status == "" {
		err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_requests WHERE supplier_id = $1`, supplierID).Scan(&count)
		return count, err
	}
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_requests WHERE supplier_id = $1 AND status = $2`, supplierID, status).Scan(&count)
	return count, err
}

func (r *reportRepository) CountUsers(ctx context.Context) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users`).Scan(&count)
	return count, err
}

func (r *reportRepository) CountUsersCreatedBetween(ctx context.Context, from, to time.Time) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM users WHERE created_on >= $1 AND created_on < $2`, from, to).Scan(&count)
	return count, err
}

func (r *reportRepository) CountRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rental_requests WHERE status = $1`, status).Scan(&count)
	return count, err
}

// SalesByWeekday groups a supplier's orders by the day of week of from_date,
// numbered 1=Sunday..7=Saturday, sorted ascending by bucket. Weekdays with no
// orders produce no bucket.
func (r *reportRepository) SalesByWeekday(ctx context.Context, supplierID int32) ([]domain.WeekdaySales, error) {
	query := `SELECT EXTRACT(DOW FROM from_date)::int + 1 AS dow, count(*) AS sales
	          FROM rental_requests WHERE supplier_id = $1
	          GROUP BY dow ORDER BY dow ASC`
	rows, err := r.db.QueryContext(ctx, query, supplierID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var buckets []domain.WeekdaySales
	for rows.Next() {
		var dow, sales int32
		if err := rows.Scan(&dow, &sales); err != nil {
			return nil, err
		}
		buckets = append(buckets, domain.WeekdaySales{Day: weekdayNames[dow-1], Sales: sales})
	}
	return buckets, rows.Err()
}

// TopProducts ranks a supplier's products by order count, descending, ties
// broken by product id ascending for a stable result.
func (r *reportRepository) TopProducts(ctx context.Context, supplierID, limit int32) ([]domain.TopProduct, error) {
	query := `SELECT r.product_id, p.name, count(*) AS rentals
	          FROM rental_requests r
	          JOIN products p ON p.id = r.product_id
	          WHERE r.supplier_id = $1
	          GROUP BY r.product_id, p.name
	          ORDER BY rentals DESC, r.product_id ASC
	          LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, supplierID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var top []domain.TopProduct
	for rows.Next() {
		var tp domain.TopProduct
		if err := rows.Scan(&tp.ProductID, &tp.Name, &tp.Rentals); err != nil {
			return nil, err
		}
		top = append(top, tp)
	}
	return top, rows.Err()
}

// TotalSales sums price * rental days over a supplier's orders in Payment,
// Shipped or Delivered. The day count is the exact fractional difference
// (end - from in days), not rounded; the customer-facing ceiling count lives
// in the pricing package.
func (r *reportRepository) TotalSales(ctx context.Context, supplierID int32) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(p.price * (EXTRACT(EPOCH FROM (r.end_date - r.from_date)) / 86400.0)), 0)
	          FROM rental_requests r
	          JOIN products p ON p.id = r.product_id
	          WHERE r.supplier_id = $1 AND r.status IN ('Payment', 'Shipped', 'Delivered')`
	var total decimal.Decimal
	err := r.db.QueryRowContext(ctx, query, supplierID).Scan(&total)
	return total, err
}

// Revenue sums the flat 10% platform fee over every qualifying order
// (Payment, Shipped, Delivered or Returned), platform-wide. The fee is 10%
// of the product's per-day price per order, not of the rental total.
func (r *reportRepository) Revenue(ctx context.Context) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(p.price * 0.10), 0)
	          FROM rental_requests r
	          JOIN products p ON p.id = r.product_id
	          WHERE r.status IN ('Payment', 'Shipped', 'Delivered', 'Returned')`
	var revenue decimal.Decimal
	err := r.db.QueryRowContext(ctx, query).Scan(&revenue)
	return revenue, err
}

func (r *reportRepository) querySales(ctx context.Context, query string, args ...interface{}) ([]domain.SaleRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []domain.SaleRecord
	for rows.Next() {
		var s domain.SaleRecord
		rr := &s.Request
		err := rows.Scan(&rr.ID, &rr.OrderID, &rr.ProductID, &rr.CustomerID, &rr.SupplierID,
			&rr.FromDate, &rr.EndDate, &rr.Status, &rr.OrderDate, &rr.Address, &rr.CreatedOn,
			&rr.UpdatedOn, &s.ProductName, &s.ProductPrice, &s.CustomerName)
		if err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

const saleRecordQuery = `SELECT r.id, r.order_id, r.product_id, r.customer_id, r.supplier_id,
	r.from_date, r.end_date, r.status, r.order_date, r.address, r.created_on, r.updated_on,
	p.name, p.price, c.username
	FROM rental_requests r
	JOIN products p ON p.id = r.product_id
	JOIN users c ON c.id = r.customer_id`

func (r *reportRepository) RecentSales(ctx context.Context) ([]domain.SaleRecord, error) {
	return r.querySales(ctx, saleRecordQuery+` ORDER BY r.order_date DESC`)
}

func (r *reportRepository) RecentOrders(ctx context.Context, limit int32) ([]domain.SaleRecord, error) {
	return r.querySales(ctx, saleRecordQuery+` ORDER BY r.order_date DESC LIMIT $1`, limit)
}

func (r *reportRepository) TopPricedProducts(ctx context.Context, limit int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY price DESC, id ASC LIMIT $1`
	repo := &productRepository{db: r.db}
	return repo.queryProducts(ctx, query, limit)
}

func (r *reportRepository) RecentUsers(ctx context.Context, limit int32) ([]domain.User, error) {
	query := `SELECT id, username, email, password_hash, role, created_on, updated_on
	          FROM users ORDER BY created_on DESC LIMIT $1`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedOn, &u.UpdatedOn); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *reportRepository) RecentProducts(ctx context.Context, limit int32) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_on DESC LIMIT $1`
	repo := &productRepository{db: r.db}
	return repo.queryProducts(ctx, query, limit)
}
