package domain

import "time"

type UserRole string

const (
	UserRoleSupplier UserRole = "supplier"
	UserRoleCustomer UserRole = "customer"
)

type User struct {
	ID           int32     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         UserRole  `json:"role"`
	CreatedOn    time.Time `json:"created_on"`
	UpdatedOn    time.Time `json:"updated_on"`
}

// Actor is the authenticated caller identity passed explicitly into every
// operation that needs ownership scoping. Handlers build it from validated
// token claims; nothing below the API layer reads ambient auth state.
type Actor struct {
	UserID int32
	Role   UserRole
}
