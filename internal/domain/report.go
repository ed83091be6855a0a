package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStat is one tile of the supplier dashboard.
type DashboardStat struct {
	Label string `json:"label"`
	Value int32  `json:"value"`
	Image string `json:"image"`
}

// WeekdaySales is one bucket of the day-of-week sales histogram. The histogram
// is sparse: weekdays with no orders are absent, not present with zero.
type WeekdaySales struct {
	Day   string `json:"day"` // "Sun".."Sat"
	Sales int32  `json:"sales"`
}

// TopProduct is one row of the top-rented-products report.
type TopProduct struct {
	ProductID int32  `json:"product_id"`
	Name      string `json:"name"`
	Rentals   int32  `json:"rentals"`
}

// Activity is one entry of the recent-activity feed.
type Activity struct {
	Time        time.Time `json:"time"`
	Type        string    `json:"type"` // "User", "Product" or "Order"
	Description string    `json:"description"`
}

// SaleRecord is one row of the recent-sales admin listing, an order joined
// with the product and customer it references.
type SaleRecord struct {
	Request      RentalRequest   `json:"request"`
	ProductName  string          `json:"product_name"`
	ProductPrice decimal.Decimal `json:"product_price"`
	CustomerName string          `json:"customer_name"`
}
