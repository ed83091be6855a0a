package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

const (
	topProductLimit     = 5
	recentActivityLimit = 5
	topPricedLimit      = 6
)

type reportService struct {
	reportRepo repository.ReportRepository
}

func NewReportService(reportRepo repository.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

// DashboardStats assembles the four supplier dashboard tiles. Tiles always
// come back in the same order with their fixed labels and images.
func (s *reportService) DashboardStats(ctx context.Context, supplierID int32) ([]domain.DashboardStat, error) {
	totalProducts, err := s.reportRepo.CountProducts(ctx, supplierID)
	if err != nil {
		return nil, err
	}
	totalOrders, err := s.reportRepo.CountRequests(ctx, supplierID, "")
	if err != nil {
		return nil, err
	}
	rented, err := s.reportRepo.CountRequests(ctx, supplierID, domain.RequestStatusDelivered)
	if err != nil {
		return nil, err
	}
	pending, err := s.reportRepo.CountRequests(ctx, supplierID, domain.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	return []domain.DashboardStat{
		{Label: "Total Products", Value: totalProducts, Image: "/index-1.jpg"},
		{Label: "Total Orders", Value: totalOrders, Image: "/index-2.jpg"},
		{Label: "Products Rented", Value: rented, Image: "/index-3.jpg"},
		{Label: "Tasks Pending", Value: pending, Image: "/index-4.jpg"},
	}, nil
}

func (s *reportService) SalesData(ctx context.Context, supplierID int32) ([]domain.WeekdaySales, error) {
	return s.reportRepo.SalesByWeekday(ctx, supplierID)
}

func (s *reportService) TopProducts(ctx context.Context, supplierID int32) ([]domain.TopProduct, error) {
	return s.reportRepo.TopProducts(ctx, supplierID, topProductLimit)
}

func (s *reportService) TotalSales(ctx context.Context, supplierID int32) (decimal.Decimal, error) {
	return s.reportRepo.TotalSales(ctx, supplierID)
}

func (s *reportService) UserCount(ctx context.Context) (int32, error) {
	return s.reportRepo.CountUsers(ctx)
}

// UserCountForMonth counts users created during the calendar month that
// contains now. The window is [first day 00:00, first day of next month).
func (s *reportService) UserCountForMonth(ctx context.Context, now time.Time) (int32, error) {
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	to := from.AddDate(0, 1, 0)
	return s.reportRepo.CountUsersCreatedBetween(ctx, from, to)
}

func (s *reportService) ReturnedSalesCount(ctx context.Context) (int32, error) {
	return s.reportRepo.CountRequestsByStatus(ctx, domain.RequestStatusReturned)
}

func (s *reportService) RecentSales(ctx context.Context) ([]domain.SaleRecord, error) {
	sales, err := s.reportRepo.RecentSales(ctx)
	if err != nil {
		return nil, err
	}
	if len(sales) == 0 {
		return nil, fmt.Errorf("no sales recorded yet: %w", domain.ErrNotFound)
	}
	return sales, nil
}

func (s *reportService) Revenue(ctx context.Context) (decimal.Decimal, error) {
	return s.reportRepo.Revenue(ctx)
}

func (s *reportService) TopPricedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.reportRepo.TopPricedProducts(ctx, topPricedLimit)
}

// RecentActivities merges the newest users, products and orders into a single
// feed, newest first.
func (s *reportService) RecentActivities(ctx context.Context) ([]domain.Activity, error) {
	users, err := s.reportRepo.RecentUsers(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	products, err := s.reportRepo.RecentProducts(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}
	orders, err := s.reportRepo.RecentOrders(ctx, recentActivityLimit)
	if err != nil {
		return nil, err
	}

	activities := make([]domain.Activity, 0, len(users)+len(products)+len(orders))
	for _, u := range users {
		activities = append(activities, domain.Activity{
			Time:        u.CreatedOn,
			Type:        "User",
			Description: fmt.Sprintf("User account created: %s", u.Username),
		})
	}
	for _, p := range products {
		activities = append(activities, domain.Activity{
			Time:        p.CreatedOn,
			Type:        "Product",
			Description: fmt.Sprintf("Product added: %s", p.Name),
		})
	}
	for _, o := range orders {
		activities = append(activities, domain.Activity{
			Time:        o.Request.OrderDate,
			Type:        "Order",
			Description: fmt.Sprintf("Order %s is %s (Product: %s)", o.Request.OrderID, o.Request.Status, o.ProductName),
		})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Time.After(activities[j].Time)
	})
	return activities, nil
}
