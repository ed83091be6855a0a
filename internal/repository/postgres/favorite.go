package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rentez-backend/internal/domain"
	"rentez-backend/internal/repository"
)

type favoriteRepository struct {
	db *sql.DB
}

func NewFavoriteRepository(db *sql.DB) repository.FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Upsert(ctx context.Context, fav *domain.Favorite) error {
	query := `INSERT INTO favorites (user_id, product_id, is_favorite, updated_on)
	          VALUES ($1, $2, $3, $4)
	          ON CONFLICT (user_id, product_id) DO UPDATE SET is_favorite = $3, updated_on = $4`
	_, err := r.db.ExecContext(ctx, query, fav.UserID, fav.ProductID, fav.IsFavorite, time.Now())
	return err
}

func (r *favoriteRepository) Get(ctx context.Context, userID, productID int32) (*domain.Favorite, error) {
	fav := &domain.Favorite{}
	query := `SELECT user_id, product_id, is_favorite, updated_on FROM favorites WHERE user_id = $1 AND product_id = $2`
	err := r.db.QueryRowContext(ctx, query, userID, productID).Scan(&fav.UserID, &fav.ProductID, &fav.IsFavorite, &fav.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("favorite for product %d: %w", productID, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return fav, nil
}

func (r *favoriteRepository) ListProductsByUser(ctx context.Context, userID int32) ([]domain.Product, error) {
	query := `SELECT ` + qualifiedProductColumns + `
	          FROM products p
	          JOIN favorites f ON f.product_id = p.id
	          WHERE f.user_id = $1 AND f.is_favorite = TRUE
	          ORDER BY f.updated_on DESC`
	repo := &productRepository{db: r.db}
	return repo.queryProducts(ctx, query, userID)
}
