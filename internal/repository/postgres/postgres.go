package postgres

import (
	"database/sql"

	"rentez-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ProductRepository
	repository.RentalRequestRepository
	repository.ReportRepository
	repository.FavoriteRepository
	repository.AddressRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                      db,
		UserRepository:          NewUserRepository(db),
		ProductRepository:       NewProductRepository(db),
		RentalRequestRepository: NewRentalRequestRepository(db),
		ReportRepository:        NewReportRepository(db),
		FavoriteRepository:      NewFavoriteRepository(db),
		AddressRepository:       NewAddressRepository(db),
	}
}
