package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"rentez-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, email, password string, role domain.UserRole) (*domain.User, string, string, error) // user, access, refresh
	Signin(ctx context.Context, email, password string) (*domain.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type ProductService interface {
	CreateProduct(ctx context.Context, actor domain.Actor, product *domain.Product) error
	GetProduct(ctx context.Context, id int32) (*domain.Product, error)
	UpdateProduct(ctx context.Context, actor domain.Actor, product *domain.Product) error
	DeleteProduct(ctx context.Context, actor domain.Actor, id int32) error
	ListAvailableProducts(ctx context.Context) ([]domain.Product, error)
	ListMyProducts(ctx context.Context, actor domain.Actor) ([]domain.Product, error)
	ListPopularProducts(ctx context.Context) ([]domain.Product, error)
	ListRelatedProducts(ctx context.Context, productID int32) ([]domain.Product, error)
	ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error)
	UnavailableDates(ctx context.Context, productID int32) ([]domain.DateRange, error)
}

type RentalService interface {
	CreateRequest(ctx context.Context, actor domain.Actor, productID int32, fromDate, endDate time.Time, address string) (*domain.RentalRequest, error)
	// UpdateStatus advances a request to the requested next status, enforcing
	// the transition table for the actor's role, and returns the updated
	// request. Illegal moves fail with domain.ErrInvalidTransition.
	UpdateStatus(ctx context.Context, actor domain.Actor, requestID int32, next domain.RequestStatus) (*domain.RentalRequest, error)
	GetRequest(ctx context.Context, actor domain.Actor, requestID int32) (*domain.RentalRequest, error)
	ListSupplierRequests(ctx context.Context, actor domain.Actor, status domain.RequestStatus) ([]domain.RentalRequest, error)
	ListCustomerRequests(ctx context.Context, actor domain.Actor, status domain.RequestStatus) ([]domain.RentalRequest, error)
}

type ReportService interface {
	DashboardStats(ctx context.Context, supplierID int32) ([]domain.DashboardStat, error)
	SalesData(ctx context.Context, supplierID int32) ([]domain.WeekdaySales, error)
	TopProducts(ctx context.Context, supplierID int32) ([]domain.TopProduct, error)
	TotalSales(ctx context.Context, supplierID int32) (decimal.Decimal, error)
	UserCount(ctx context.Context) (int32, error)
	UserCountForMonth(ctx context.Context, now time.Time) (int32, error)
	ReturnedSalesCount(ctx context.Context) (int32, error)
	RecentSales(ctx context.Context) ([]domain.SaleRecord, error)
	Revenue(ctx context.Context) (decimal.Decimal, error)
	TopPricedProducts(ctx context.Context) ([]domain.Product, error)
	RecentActivities(ctx context.Context) ([]domain.Activity, error)
}

type FavoriteService interface {
	SetFavorite(ctx context.Context, actor domain.Actor, productID int32, isFavorite bool) error
	GetFavorite(ctx context.Context, actor domain.Actor, productID int32) (*domain.Favorite, error)
	ListFavorites(ctx context.Context, actor domain.Actor) ([]domain.Product, error)
}

type AddressService interface {
	CreateAddress(ctx context.Context, actor domain.Actor, addr *domain.Address) error
	ListAddresses(ctx context.Context, actor domain.Actor) ([]domain.Address, error)
	UpdateAddress(ctx context.Context, actor domain.Actor, addr *domain.Address) error
	DeleteAddress(ctx context.Context, actor domain.Actor, id int32) error
}

type EmailService interface {
	SendRequestReceived(ctx context.Context, supplierEmail, customerName, productName string) error
	SendStatusChanged(ctx context.Context, customerEmail, productName string, status domain.RequestStatus) error
	SendReturnReminder(ctx context.Context, customerEmail, productName string, endDate time.Time) error
}
