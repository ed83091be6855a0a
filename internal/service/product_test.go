package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"rentez-backend/internal/domain"
)

func validProduct() *domain.Product {
	return &domain.Product{
		Name:            "Excavator",
		Description:     "20-ton crawler excavator",
		Category:        "Earthmoving",
		Price:           decimal.NewFromInt(500),
		Quantity:        1,
		Available:       true,
		Pincode:         "600001",
		SupplierContact: "9876543210",
	}
}

func TestProductService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Supplier Creates", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo, new(MockRentalRequestRepo))

		productRepo.On("Create", ctx, mock.AnythingOfType("*domain.Product")).Return(nil)

		p := validProduct()
		err := svc.CreateProduct(ctx, domain.Actor{UserID: 10, Role: domain.UserRoleSupplier}, p)
		assert.NoError(t, err)
		assert.Equal(t, int32(10), p.SupplierID)
	})

	t.Run("Customer Cannot Create", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo, new(MockRentalRequestRepo))

		err := svc.CreateProduct(ctx, domain.Actor{UserID: 1, Role: domain.UserRoleCustomer}, validProduct())
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("Invalid Contact Rejected", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		svc := NewProductService(productRepo, new(MockRentalRequestRepo))

		p := validProduct()
		p.SupplierContact = "12345"
		err := svc.CreateProduct(ctx, domain.Actor{UserID: 10, Role: domain.UserRoleSupplier}, p)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProductService_UpdateProduct_Ownership(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepo)
	svc := NewProductService(productRepo, new(MockRentalRequestRepo))

	existing := validProduct()
	existing.ID = 2
	existing.SupplierID = 10
	productRepo.On("GetByID", ctx, int32(2)).Return(existing, nil)

	p := validProduct()
	p.ID = 2
	err := svc.UpdateProduct(ctx, domain.Actor{UserID: 99, Role: domain.UserRoleSupplier}, p)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestProductService_ListRelatedProducts(t *testing.T) {
	ctx := context.Background()
	productRepo := new(MockProductRepo)
	svc := NewProductService(productRepo, new(MockRentalRequestRepo))

	product := validProduct()
	product.ID = 2
	productRepo.On("GetByID", ctx, int32(2)).Return(product, nil)
	// Related products share the category but exclude the product itself.
	productRepo.On("ListByCategory", ctx, "Earthmoving", int32(2)).
		Return([]domain.Product{{ID: 3, Category: "Earthmoving"}}, nil)

	related, err := svc.ListRelatedProducts(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, related, 1)
	assert.Equal(t, int32(3), related[0].ID)
	productRepo.AssertExpectations(t)
}

func TestProductService_UnavailableDates(t *testing.T) {
	ctx := context.Background()

	t.Run("Unknown Product", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		requestRepo := new(MockRentalRequestRepo)
		svc := NewProductService(productRepo, requestRepo)

		productRepo.On("GetByID", ctx, int32(99)).Return(nil, domain.ErrNotFound)

		_, err := svc.UnavailableDates(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Ranges Returned", func(t *testing.T) {
		productRepo := new(MockProductRepo)
		requestRepo := new(MockRentalRequestRepo)
		svc := NewProductService(productRepo, requestRepo)

		product := validProduct()
		product.ID = 2
		productRepo.On("GetByID", ctx, int32(2)).Return(product, nil)
		requestRepo.On("ActiveRanges", ctx, int32(2)).Return([]domain.DateRange{{}}, nil)

		ranges, err := svc.UnavailableDates(ctx, 2)
		assert.NoError(t, err)
		assert.Len(t, ranges, 1)
	})
}
