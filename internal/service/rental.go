package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/logger"
	"rentez-backend/internal/pricing"
	"rentez-backend/internal/repository"
)

// ReturnedHook is invoked after a request reaches Returned, with the id of
// the rented product. The rental service never mutates products itself; the
// wiring decides what a return means for the product (rental counter, etc).
type ReturnedHook func(ctx context.Context, productID int32) error

type rentalService struct {
	requestRepo repository.RentalRequestRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	emailSvc    EmailService
	onReturned  ReturnedHook
}

func NewRentalService(
	requestRepo repository.RentalRequestRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
	emailSvc EmailService,
	onReturned ReturnedHook,
) RentalService {
	return &rentalService{
		requestRepo: requestRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
		emailSvc:    emailSvc,
		onReturned:  onReturned,
	}
}

func (s *rentalService) CreateRequest(ctx context.Context, actor domain.Actor, productID int32, fromDate, endDate time.Time, address string) (*domain.RentalRequest, error) {
	if actor.Role != domain.UserRoleCustomer {
		return nil, fmt.Errorf("only customers can place rental requests: %w", domain.ErrUnauthorized)
	}
	if endDate.Before(fromDate) {
		return nil, fmt.Errorf("%w: end date must not be before from date", domain.ErrValidation)
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available || product.Quantity <= 0 {
		return nil, fmt.Errorf("%w: product %d is not available", domain.ErrValidation, productID)
	}
	if product.RentalDays > 0 && pricing.RentalDays(fromDate, endDate) < int64(product.RentalDays) {
		return nil, fmt.Errorf("%w: minimum rental length for this product is %d days", domain.ErrValidation, product.RentalDays)
	}

	request := &domain.RentalRequest{
		OrderID:    newOrderID(),
		ProductID:  productID,
		CustomerID: actor.UserID,
		SupplierID: product.SupplierID,
		FromDate:   fromDate,
		EndDate:    endDate,
		Status:     domain.RequestStatusPending,
		OrderDate:  time.Now(),
		Address:    address,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	request.Product = product
	request.Days = pricing.RentalDays(fromDate, endDate)
	request.Total = pricing.OrderTotal(product.Price, fromDate, endDate)

	// Notify the supplier, best effort
	supplier, err := s.userRepo.GetByID(ctx, product.SupplierID)
	customer, cerr := s.userRepo.GetByID(ctx, actor.UserID)
	if cerr == nil {
		request.Customer = customer
	}
	if err == nil && cerr == nil {
		if err := s.emailSvc.SendRequestReceived(ctx, supplier.Email, customer.Username, product.Name); err != nil {
			logger.Warn("Failed to send rental request notification", "order_id", request.OrderID, "error", err)
		}
	}

	return request, nil
}

func (s *rentalService) UpdateStatus(ctx context.Context, actor domain.Actor, requestID int32, next domain.RequestStatus) (*domain.RentalRequest, error) {
	if !domain.ValidStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}

	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}

	switch actor.Role {
	case domain.UserRoleSupplier:
		if request.SupplierID != actor.UserID {
			return nil, fmt.Errorf("request %d does not belong to supplier %d: %w", requestID, actor.UserID, domain.ErrUnauthorized)
		}
	case domain.UserRoleCustomer:
		if request.CustomerID != actor.UserID {
			return nil, fmt.Errorf("request %d does not belong to customer %d: %w", requestID, actor.UserID, domain.ErrUnauthorized)
		}
	default:
		return nil, domain.ErrUnauthorized
	}

	if !domain.CanTransition(request.Status, next, actor.Role) {
		return nil, fmt.Errorf("%s cannot move request from %s to %s: %w", actor.Role, request.Status, next, domain.ErrInvalidTransition)
	}

	// Conditional write: lose the race, lose the transition.
	if err := s.requestRepo.UpdateStatus(ctx, requestID, request.Status, next); err != nil {
		return nil, err
	}
	previous := request.Status
	request.Status = next

	if next == domain.RequestStatusReturned && s.onReturned != nil {
		if err := s.onReturned(ctx, request.ProductID); err != nil {
			logger.Error("Returned hook failed", "order_id", request.OrderID, "product_id", request.ProductID, "error", err)
		}
	}

	s.notifyStatusChange(ctx, request, actor.Role)

	logger.Info("Rental request status updated",
		"order_id", request.OrderID, "from", previous, "to", next, "actor_role", actor.Role)
	return request, nil
}

func (s *rentalService) GetRequest(ctx context.Context, actor domain.Actor, requestID int32) (*domain.RentalRequest, error) {
	request, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.SupplierID != actor.UserID && request.CustomerID != actor.UserID {
		return nil, fmt.Errorf("request %d does not involve user %d: %w", requestID, actor.UserID, domain.ErrUnauthorized)
	}

	view := []domain.RentalRequest{*request}
	if err := s.decorate(ctx, view); err != nil {
		return nil, err
	}
	return &view[0], nil
}

func (s *rentalService) ListSupplierRequests(ctx context.Context, actor domain.Actor, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	requests, err := s.requestRepo.ListBySupplier(ctx, actor.UserID, status)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

func (s *rentalService) ListCustomerRequests(ctx context.Context, actor domain.Actor, status domain.RequestStatus) ([]domain.RentalRequest, error) {
	if status != "" && !domain.ValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}
	requests, err := s.requestRepo.ListByCustomer(ctx, actor.UserID, status)
	if err != nil {
		return nil, err
	}
	if err := s.decorate(ctx, requests); err != nil {
		return nil, err
	}
	return requests, nil
}

// decorate attaches the read-time view of each request: the product and
// customer rows it references, plus days and total derived from the pricing
// policy. Nothing here is stored; every read recomputes it.
func (s *rentalService) decorate(ctx context.Context, requests []domain.RentalRequest) error {
	products := make(map[int32]*domain.Product)
	customers := make(map[int32]*domain.User)
	for i := range requests {
		rr := &requests[i]

		product, ok := products[rr.ProductID]
		if !ok {
			var err error
			product, err = s.productRepo.GetByID(ctx, rr.ProductID)
			if err != nil {
				return err
			}
			products[rr.ProductID] = product
		}
		customer, ok := customers[rr.CustomerID]
		if !ok {
			var err error
			customer, err = s.userRepo.GetByID(ctx, rr.CustomerID)
			if err != nil {
				return err
			}
			customers[rr.CustomerID] = customer
		}

		rr.Product = product
		rr.Customer = customer
		rr.Days = pricing.RentalDays(rr.FromDate, rr.EndDate)
		rr.Total = pricing.OrderTotal(product.Price, rr.FromDate, rr.EndDate)
	}
	return nil
}

// notifyStatusChange emails the party that did not drive the transition.
func (s *rentalService) notifyStatusChange(ctx context.Context, request *domain.RentalRequest, actorRole domain.UserRole) {
	recipientID := request.CustomerID
	if actorRole == domain.UserRoleCustomer {
		recipientID = request.SupplierID
	}

	recipient, err := s.userRepo.GetByID(ctx, recipientID)
	if err != nil {
		logger.Warn("Failed to load status-change recipient", "order_id", request.OrderID, "error", err)
		return
	}
	product, err := s.productRepo.GetByID(ctx, request.ProductID)
	if err != nil {
		logger.Warn("Failed to load product for status-change email", "order_id", request.OrderID, "error", err)
		return
	}
	if err := s.emailSvc.SendStatusChanged(ctx, recipient.Email, product.Name, request.Status); err != nil {
		logger.Warn("Failed to send status-change email", "order_id", request.OrderID, "error", err)
	}
}

// newOrderID builds the human-facing order reference, e.g. "ORD-1A2B3C4D".
func newOrderID() string {
	id := uuid.New().String()
	return "ORD-" + strings.ToUpper(id[:8])
}
