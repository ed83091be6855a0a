package service

import (
	"context"
	"fmt"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

type addressService struct {
	addressRepo repository.AddressRepository
}

func NewAddressService(addressRepo repository.AddressRepository) AddressService {
	return &addressService{addressRepo: addressRepo}
}

func (s *addressService) CreateAddress(ctx context.Context, actor domain.Actor, addr *domain.Address) error {
	addr.UserID = actor.UserID
	if err := addr.Validate(); err != nil {
		return err
	}
	return s.addressRepo.Create(ctx, addr)
}

func (s *addressService) ListAddresses(ctx context.Context, actor domain.Actor) ([]domain.Address, error) {
	return s.addressRepo.ListByUser(ctx, actor.UserID)
}

func (s *addressService) UpdateAddress(ctx context.Context, actor domain.Actor, addr *domain.Address) error {
	existing, err := s.addressRepo.GetByID(ctx, addr.ID)
	if err != nil {
		return err
	}
	if existing.UserID != actor.UserID {
		return fmt.Errorf("address %d is not owned by the caller: %w", addr.ID, domain.ErrUnauthorized)
	}
	addr.UserID = existing.UserID
	if err := addr.Validate(); err != nil {
		return err
	}
	return s.addressRepo.Update(ctx, addr)
}

func (s *addressService) DeleteAddress(ctx context.Context, actor domain.Actor, id int32) error {
	existing, err := s.addressRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if existing.UserID != actor.UserID {
		return fmt.Errorf("address %d is not owned by the caller: %w", id, domain.ErrUnauthorized)
	}
	return s.addressRepo.Delete(ctx, id)
}
