// Package pricing is the single home for derived financial computation:
// rental day counts, order totals and the platform fee. Both the reporting
// queries and the API responses go through here so the rounding policy lives
// in exactly one place.
//
// Policy per field:
//   - customer-facing day counts and order totals use RentalDays, i.e.
//     ceil(milliseconds / 86,400,000);
//   - the total-sales aggregation uses FractionalDays, an exact (unrounded)
//     divide, matching the store-level computation it mirrors.
package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

const millisPerDay = 24 * 60 * 60 * 1000

// feeRate is the flat platform fee recognized as revenue per qualifying
// order: 10% of the product's per-day price, not of the rental total.
var feeRate = decimal.RequireFromString("0.10")

// RentalDays returns the billable day count for a date range:
// ceil((end - from) / 1 day). A range with from == end yields 0.
func RentalDays(from, end time.Time) int64 {
	diff := end.Sub(from).Milliseconds()
	if diff <= 0 {
		return 0
	}
	days := diff / millisPerDay
	if diff%millisPerDay > 0 {
		days++
	}
	return days
}

// FractionalDays returns the exact, unrounded day count for a date range.
func FractionalDays(from, end time.Time) decimal.Decimal {
	diff := decimal.NewFromInt(end.Sub(from).Milliseconds())
	return diff.Div(decimal.NewFromInt(millisPerDay))
}

// OrderTotal returns the customer-facing rental total: per-day price times
// the ceiling day count.
func OrderTotal(pricePerDay decimal.Decimal, from, end time.Time) decimal.Decimal {
	return pricePerDay.Mul(decimal.NewFromInt(RentalDays(from, end)))
}

// PlatformFee returns the revenue recognized for one qualifying order.
func PlatformFee(pricePerDay decimal.Decimal) decimal.Decimal {
	return pricePerDay.Mul(feeRate)
}

// SaleValue returns one order's contribution to the total-sales aggregate:
// per-day price times the fractional day count.
func SaleValue(pricePerDay decimal.Decimal, from, end time.Time) decimal.Decimal {
	return pricePerDay.Mul(FractionalDays(from, end))
}
