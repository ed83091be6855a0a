package service

import (
	"context"
	"errors"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

type favoriteService struct {
	favoriteRepo repository.FavoriteRepository
	productRepo  repository.ProductRepository
}

func NewFavoriteService(favoriteRepo repository.FavoriteRepository, productRepo repository.ProductRepository) FavoriteService {
	return &favoriteService{favoriteRepo: favoriteRepo, productRepo: productRepo}
}

func (s *favoriteService) SetFavorite(ctx context.Context, actor domain.Actor, productID int32, isFavorite bool) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		return err
	}
	return s.favoriteRepo.Upsert(ctx, &domain.Favorite{
		UserID:     actor.UserID,
		ProductID:  productID,
		IsFavorite: isFavorite,
	})
}

// GetFavorite reports the flag for one product. A user who never touched the
// product gets a not-favorite record rather than an error.
func (s *favoriteService) GetFavorite(ctx context.Context, actor domain.Actor, productID int32) (*domain.Favorite, error) {
	fav, err := s.favoriteRepo.Get(ctx, actor.UserID, productID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Favorite{UserID: actor.UserID, ProductID: productID, IsFavorite: false}, nil
		}
		return nil, err
	}
	return fav, nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, actor domain.Actor) ([]domain.Product, error) {
	return s.favoriteRepo.ListProductsByUser(ctx, actor.UserID)
}
