package http

import (
	"github.com/gorilla/mux"

	"rentez-backend/internal/security"
	"rentez-backend/internal/service"
)

// Services bundles everything the router needs.
type Services struct {
	Auth     service.AuthService
	Product  service.ProductService
	Rental   service.RentalService
	Report   service.ReportService
	Favorite service.FavoriteService
	Address  service.AddressService
	Tokens   security.TokenManager
}

// NewRouter builds the full API surface under /api. Anything outside the
// public subrouter requires a valid access token.
func NewRouter(svcs Services) *mux.Router {
	root := mux.NewRouter()
	root.Use(LoggingMiddleware)

	api := root.PathPrefix("/api").Subrouter()

	authHandler := NewAuthHandler(svcs.Auth)
	productHandler := NewProductHandler(svcs.Product)
	rentalHandler := NewRentalHandler(svcs.Rental)
	reportHandler := NewReportHandler(svcs.Report)
	favoriteHandler := NewFavoriteHandler(svcs.Favorite)
	addressHandler := NewAddressHandler(svcs.Address)

	// Public routes
	api.HandleFunc("/users/signup", authHandler.Signup).Methods("POST")
	api.HandleFunc("/users/signin", authHandler.Signin).Methods("POST")
	api.HandleFunc("/users/refresh", authHandler.Refresh).Methods("POST")

	api.HandleFunc("/products/available", productHandler.ListAvailable).Methods("GET")
	api.HandleFunc("/products/popular", productHandler.ListPopular).Methods("GET")
	api.HandleFunc("/products/category/{category}", productHandler.ListByCategory).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}", productHandler.Get).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}/related", productHandler.ListRelated).Methods("GET")
	api.HandleFunc("/products/{id:[0-9]+}/unavailable-dates", productHandler.UnavailableDates).Methods("GET")

	// Public admin aggregates
	api.HandleFunc("/user-count", reportHandler.UserCount).Methods("GET")
	api.HandleFunc("/user-count-month", reportHandler.UserCountForMonth).Methods("GET")
	api.HandleFunc("/sales/count", reportHandler.ReturnedSalesCount).Methods("GET")
	api.HandleFunc("/sales/recent", reportHandler.RecentSales).Methods("GET")
	api.HandleFunc("/products/top", reportHandler.TopPricedProducts).Methods("GET")
	api.HandleFunc("/products/revenue", reportHandler.Revenue).Methods("GET")
	api.HandleFunc("/activities/recent", reportHandler.RecentActivities).Methods("GET")

	// Authenticated routes
	auth := api.NewRoute().Subrouter()
	auth.Use(AuthMiddleware(svcs.Tokens))

	auth.HandleFunc("/products", productHandler.Create).Methods("POST")
	auth.HandleFunc("/products/my-products", productHandler.ListMine).Methods("GET")
	auth.HandleFunc("/products/{id:[0-9]+}", productHandler.Update).Methods("PUT")
	auth.HandleFunc("/products/{id:[0-9]+}", productHandler.Delete).Methods("DELETE")

	auth.HandleFunc("/products/rental-requests", rentalHandler.Create).Methods("POST")
	auth.HandleFunc("/products/rental-requests", rentalHandler.ListForSupplier).Methods("GET")
	auth.HandleFunc("/products/rental-requests/customer", rentalHandler.ListForCustomer).Methods("GET")
	auth.HandleFunc("/products/rental-requests/{id:[0-9]+}", rentalHandler.Get).Methods("GET")
	auth.HandleFunc("/products/rental-requests/{id:[0-9]+}/status", rentalHandler.UpdateStatus).Methods("PUT")

	auth.HandleFunc("/dashboard-stats", reportHandler.DashboardStats).Methods("GET")
	auth.HandleFunc("/sales-data", reportHandler.SalesData).Methods("GET")
	auth.HandleFunc("/top-products", reportHandler.TopProducts).Methods("GET")
	auth.HandleFunc("/total-sales", reportHandler.TotalSales).Methods("GET")

	auth.HandleFunc("/favorites", favoriteHandler.List).Methods("GET")
	auth.HandleFunc("/favorites/{productId:[0-9]+}", favoriteHandler.Get).Methods("GET")
	auth.HandleFunc("/favorites/{productId:[0-9]+}", favoriteHandler.Set).Methods("PUT")

	auth.HandleFunc("/addresses", addressHandler.Create).Methods("POST")
	auth.HandleFunc("/addresses", addressHandler.List).Methods("GET")
	auth.HandleFunc("/addresses/{id:[0-9]+}", addressHandler.Update).Methods("PUT")
	auth.HandleFunc("/addresses/{id:[0-9]+}", addressHandler.Delete).Methods("DELETE")

	return root
}
