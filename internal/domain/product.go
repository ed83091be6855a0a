package domain

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

var (
	pincodeRe         = regexp.MustCompile(`^[0-9]{6}$`)
	supplierContactRe = regexp.MustCompile(`^[0-9]{10}$`)
)

// SpecificationItem is one key/value row of a product's spec sheet.
// Order is meaningful and preserved.
type SpecificationItem struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Product struct {
	ID              int32               `json:"id"`
	SupplierID      int32               `json:"supplier_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description"`
	Category        string              `json:"category"`
	SubCategory     string              `json:"sub_category"`
	RentalDays      int32               `json:"rental_days"` // minimum rental length
	Price           decimal.Decimal     `json:"price"`       // per-day rate
	CompareAtPrice  decimal.NullDecimal `json:"compare_at_price"`
	Location        string              `json:"location"`
	District        string              `json:"district"`
	City            string              `json:"city"`
	Pincode         string              `json:"pincode"`
	Available       bool                `json:"available"`
	Quantity        int32               `json:"quantity"`
	Images          []string            `json:"images"`
	Specification   []SpecificationItem `json:"specification"`
	SupplierContact string              `json:"supplier_contact"`
	RentalCount     int32               `json:"rental_count"`
	CreatedOn       time.Time           `json:"created_on"`
	UpdatedOn       time.Time           `json:"updated_on"`
}

// Validate checks the field constraints enforced on create and update.
func (p *Product) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("%w: product name is required", ErrValidation)
	}
	if p.Description == "" {
		return fmt.Errorf("%w: product description is required", ErrValidation)
	}
	if p.Price.IsNegative() {
		return fmt.Errorf("%w: price must be >= 0", ErrValidation)
	}
	if p.CompareAtPrice.Valid && p.CompareAtPrice.Decimal.IsNegative() {
		return fmt.Errorf("%w: compare-at price must be >= 0", ErrValidation)
	}
	if p.RentalDays < 0 {
		return fmt.Errorf("%w: rental days must be >= 0", ErrValidation)
	}
	if p.Quantity < 0 {
		return fmt.Errorf("%w: quantity must be >= 0", ErrValidation)
	}
	if p.Pincode != "" && !pincodeRe.MatchString(p.Pincode) {
		return fmt.Errorf("%w: pincode must be a 6-digit number", ErrValidation)
	}
	if !supplierContactRe.MatchString(p.SupplierContact) {
		return fmt.Errorf("%w: supplier contact must be a 10-digit number", ErrValidation)
	}
	for _, item := range p.Specification {
		if item.Key == "" || item.Value == "" {
			return fmt.Errorf("%w: specification entries need both key and value", ErrValidation)
		}
	}
	return nil
}
