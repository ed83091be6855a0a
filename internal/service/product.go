package service

import (
	"context"
	"fmt"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

const popularProductLimit = 8

type productService struct {
	productRepo repository.ProductRepository
	requestRepo repository.RentalRequestRepository
}

func NewProductService(productRepo repository.ProductRepository, requestRepo repository.RentalRequestRepository) ProductService {
	return &productService{productRepo: productRepo, requestRepo: requestRepo}
}

func (s *productService) CreateProduct(ctx context.Context, actor domain.Actor, p *domain.Product) error {
	if actor.Role != domain.UserRoleSupplier {
		return fmt.Errorf("only suppliers can list products: %w", domain.ErrUnauthorized)
	}
	p.SupplierID = actor.UserID
	if err := p.Validate(); err != nil {
		return err
	}
	return s.productRepo.Create(ctx, p)
}

func (s *productService) GetProduct(ctx context.Context, id int32) (*domain.Product, error) {
	return s.productRepo.GetByID(ctx, id)
}

func (s *productService) UpdateProduct(ctx context.Context, actor domain.Actor, p *domain.Product) error {
	existing, err := s.productRepo.GetByID(ctx, p.ID)
	if err != nil {
		return err
	}
	if existing.SupplierID != actor.UserID {
		return fmt.Errorf("product %d is not owned by the caller: %w", p.ID, domain.ErrUnauthorized)
	}
	p.SupplierID = existing.SupplierID
	if err := p.Validate(); err != nil {
		return err
	}
	return s.productRepo.Update(ctx, p)
}

func (s *productService) DeleteProduct(ctx context.Context, actor domain.Actor, id int32) error {
	existing, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.SupplierID != actor.UserID {
		return fmt.Errorf("product %d is not owned by the caller: %w", id, domain.ErrUnauthorized)
	}
	return s.productRepo.Delete(ctx, id)
}

func (s *productService) ListAvailableProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListAvailable(ctx)
}

func (s *productService) ListMyProducts(ctx context.Context, actor domain.Actor) ([]domain.Product, error) {
	return s.productRepo.ListBySupplier(ctx, actor.UserID)
}

func (s *productService) ListPopularProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.ListPopular(ctx, popularProductLimit)
}

func (s *productService) ListRelatedProducts(ctx context.Context, productID int32) ([]domain.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	return s.productRepo.ListByCategory(ctx, product.Category, productID)
}

func (s *productService) ListProductsByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return s.productRepo.ListByCategory(ctx, category, 0)
}

func (s *productService) UnavailableDates(ctx context.Context, productID int32) ([]domain.DateRange, error) {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return nil, err
	}
	return s.requestRepo.ActiveRanges(ctx, productID)
}
