package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rentez-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id int32) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id int32) (*domain.Product, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id int32) error
	ListAvailable(ctx context.Context) ([]domain.Product, error)
	ListBySupplier(ctx context.Context, supplierID int32) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string, excludeID int32) ([]domain.Product, error)
	ListPopular(ctx context.Context, limit int32) ([]domain.Product, error)
	IncrementRentalCount(ctx context.Context, id int32) error
}

type RentalRequestRepository interface {
	Create(ctx context.Context, req *domain.RentalRequest) error
	GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error)
	ListBySupplier(ctx context.Context, supplierID int32, status domain.RequestStatus) ([]domain.RentalRequest, error)
	ListByCustomer(ctx context.Context, customerID int32, status domain.RequestStatus) ([]domain.RentalRequest, error)
	// UpdateStatus advances a request with a conditional write: the update only
	// applies while the stored status still equals current. Zero matched rows
	// surface as domain.ErrStatusConflict.
	UpdateStatus(ctx context.Context, id int32, current, next domain.RequestStatus) error
	// ActiveRanges lists the date ranges of requests that block a product's
	// availability (Ordered through Delivered).
	ActiveRanges(ctx context.Context, productID int32) ([]domain.DateRange, error)
}

// ReportRepository holds the read-only aggregation queries. Every method is
// pure: the same store snapshot yields the same result, and empty inputs
// yield zeros or empty slices, never errors.
type ReportRepository interface {
	CountProducts(ctx context.Context, supplierID int32) (int32, error)
	// CountRequests counts a supplier's orders; an empty status counts all.
	CountRequests(ctx context.Context, supplierID int32, status domain.RequestStatus) (int32, error)
	CountUsers(ctx context.Context) (int32, error)
	CountUsersCreatedBetween(ctx context.Context, from, to time.Time) (int32, error)
	CountRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int32, error)
	SalesByWeekday(ctx context.Context, supplierID int32) ([]domain.WeekdaySales, error)
	TopProducts(ctx context.Context, supplierID, limit int32) ([]domain.TopProduct, error)
	TotalSales(ctx context.Context, supplierID int32) (decimal.Decimal, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	RecentSales(ctx context.Context) ([]domain.SaleRecord, error)
	TopPricedProducts(ctx context.Context, limit int32) ([]domain.Product, error)
	RecentUsers(ctx context.Context, limit int32) ([]domain.User, error)
	RecentProducts(ctx context.Context, limit int32) ([]domain.Product, error)
	RecentOrders(ctx context.Context, limit int32) ([]domain.SaleRecord, error)
}

type FavoriteRepository interface {
	Upsert(ctx context.Context, fav *domain.Favorite) error
	Get(ctx context.Context, userID, productID int32) (*domain.Favorite, error)
	ListProductsByUser(ctx context.Context, userID int32) ([]domain.Product, error)
}

type AddressRepository interface {
	Create(ctx context.Context, addr *domain.Address) error
	GetByID(ctx context.Context, id int32) (*domain.Address, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Address, error)
	Update(ctx context.Context, addr *domain.Address) error
	Delete(ctx context.Context, id int32) error
}
