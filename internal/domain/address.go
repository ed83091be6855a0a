package domain

import (
	"fmt"
	"time"
)

type Address struct {
	ID        int32     `json:"id"`
	UserID    int32     `json:"user_id"`
	Label     string    `json:"label"` // e.g. "Home", "Site office"
	Line1     string    `json:"line1"`
	Line2     string    `json:"line2"`
	City      string    `json:"city"`
	District  string    `json:"district"`
	Pincode   string    `json:"pincode"`
	Phone     string    `json:"phone"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

func (a *Address) Validate() error {
	if a.Line1 == "" {
		return fmt.Errorf("%w: address line1 is required", ErrValidation)
	}
	if a.City == "" {
		return fmt.Errorf("%w: address city is required", ErrValidation)
	}
	if a.Pincode != "" && !pincodeRe.MatchString(a.Pincode) {
		return fmt.Errorf("%w: pincode must be a 6-digit number", ErrValidation)
	}
	return nil
}

type Favorite struct {
	UserID     int32     `json:"user_id"`
	ProductID  int32     `json:"product_id"`
	IsFavorite bool      `json:"is_favorite"`
	UpdatedOn  time.Time `json:"updated_on"`
}
