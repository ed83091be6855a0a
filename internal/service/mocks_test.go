package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"rentez-backend/internal/domain"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id int32) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockProductRepo
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) GetByID(ctx context.Context, id int32) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}
func (m *MockProductRepo) Update(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}
func (m *MockProductRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockProductRepo) ListAvailable(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListBySupplier(ctx context.Context, supplierID int32) ([]domain.Product, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListByCategory(ctx context.Context, category string, excludeID int32) ([]domain.Product, error) {
	args := m.Called(ctx, category, excludeID)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) ListPopular(ctx context.Context, limit int32) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockProductRepo) IncrementRentalCount(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRentalRequestRepo
type MockRentalRequestRepo struct {
	mock.Mock
}

func (m *MockRentalRequestRepo) Create(ctx context.Context, req *domain.RentalRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) GetByID(ctx context.Context, id int32) (*domain.RentalRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestRepo) ListBySupplier(ctx context.Context, supplierID int32, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, supplierID, status)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestRepo) ListByCustomer(ctx context.Context, customerID int32, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	args := m.Called(ctx, customerID, status)
	return args.Get(0).([]domain.RentalRequest), args.Error(1)
}
func (m *MockRentalRequestRepo) UpdateStatus(ctx context.Context, id int32, current, next domain.RequestStatus) error {
	args := m.Called(ctx, id, current, next)
	return args.Error(0)
}
func (m *MockRentalRequestRepo) ActiveRanges(ctx context.Context, productID int32) ([]domain.DateRange, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]domain.DateRange), args.Error(1)
}

// MockReportRepo
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) CountProducts(ctx context.Context, supplierID int32) (int32, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReportRepo) CountRequests(ctx context.Context, supplierID int32, status domain.RequestStatus) (int32, error) {
	args := m.Called(ctx, supplierID, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReportRepo) CountUsers(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReportRepo) CountUsersCreatedBetween(ctx context.Context, from, to time.Time) (int32, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReportRepo) CountRequestsByStatus(ctx context.Context, status domain.RequestStatus) (int32, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockReportRepo) SalesByWeekday(ctx context.Context, supplierID int32) ([]domain.WeekdaySales, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]domain.WeekdaySales), args.Error(1)
}
func (m *MockReportRepo) TopProducts(ctx context.Context, supplierID, limit int32) ([]domain.TopProduct, error) {
	args := m.Called(ctx, supplierID, limit)
	return args.Get(0).([]domain.TopProduct), args.Error(1)
}
func (m *MockReportRepo) TotalSales(ctx context.Context, supplierID int32) (decimal.Decimal, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockReportRepo) Revenue(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockReportRepo) RecentSales(ctx context.Context) ([]domain.SaleRecord, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}
func (m *MockReportRepo) TopPricedProducts(ctx context.Context, limit int32) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockReportRepo) RecentUsers(ctx context.Context, limit int32) ([]domain.User, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.User), args.Error(1)
}
func (m *MockReportRepo) RecentProducts(ctx context.Context, limit int32) ([]domain.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Product), args.Error(1)
}
func (m *MockReportRepo) RecentOrders(ctx context.Context, limit int32) ([]domain.SaleRecord, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.SaleRecord), args.Error(1)
}

// MockFavoriteRepo
type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Upsert(ctx context.Context, fav *domain.Favorite) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}
func (m *MockFavoriteRepo) Get(ctx context.Context, userID, productID int32) (*domain.Favorite, error) {
	args := m.Called(ctx, userID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Favorite), args.Error(1)
}
func (m *MockFavoriteRepo) ListProductsByUser(ctx context.Context, userID int32) ([]domain.Product, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Product), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestReceived(ctx context.Context, supplierEmail, customerName, productName string) error {
	args := m.Called(ctx, supplierEmail, customerName, productName)
	return args.Error(0)
}
func (m *MockEmailService) SendStatusChanged(ctx context.Context, customerEmail, productName string, status domain.RequestStatus) error {
	args := m.Called(ctx, customerEmail, productName, status)
	return args.Error(0)
}
func (m *MockEmailService) SendReturnReminder(ctx context.Context, customerEmail, productName string, endDate time.Time) error {
	args := m.Called(ctx, customerEmail, productName, endDate)
	return args.Error(0)
}
