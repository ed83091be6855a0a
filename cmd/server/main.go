package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "rentez-backend/internal/api/http"
	"rentez-backend/internal/config"
	"rentez-backend/internal/logger"
	"rentez-backend/internal/repository/postgres"
	"rentez-backend/internal/security"
	"rentez-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting RentEZ Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)
	logger.Info("SMTP configuration", "host", cfg.SMTP.Host, "port", cfg.SMTP.Port)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.SMTP)
	authSvc := service.NewAuthService(store.UserRepository, tokenManager)
	productSvc := service.NewProductService(store.ProductRepository, store.RentalRequestRepository)
	rentalSvc := service.NewRentalService(
		store.RentalRequestRepository,
		store.ProductRepository,
		store.UserRepository,
		emailSvc,
		store.ProductRepository.IncrementRentalCount,
	)
	reportSvc := service.NewReportService(store.ReportRepository)
	favoriteSvc := service.NewFavoriteService(store.FavoriteRepository, store.ProductRepository)
	addressSvc := service.NewAddressService(store.AddressRepository)

	// Initialize HTTP router
	router := httpapi.NewRouter(httpapi.Services{
		Auth:     authSvc,
		Product:  productSvc,
		Rental:   rentalSvc,
		Report:   reportSvc,
		Favorite: favoriteSvc,
		Address:  addressSvc,
		Tokens:   tokenManager,
	})

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server stopped", "error", err)
		log.Fatalf("HTTP server stopped: %v", err)
	}
}
