package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "Pending"
	RequestStatusOrdered   RequestStatus = "Ordered"
	RequestStatusRejected  RequestStatus = "Rejected"
	RequestStatusPayment   RequestStatus = "Payment"
	RequestStatusShipped   RequestStatus = "Shipped"
	RequestStatusDelivered RequestStatus = "Delivered"
	RequestStatusReturned  RequestStatus = "Returned"
	RequestStatusCanceled  RequestStatus = "Canceled"
)

// AllRequestStatuses lists every status a request can carry, in lifecycle order.
var AllRequestStatuses = []RequestStatus{
	RequestStatusPending,
	RequestStatusOrdered,
	RequestStatusRejected,
	RequestStatusPayment,
	RequestStatusShipped,
	RequestStatusDelivered,
	RequestStatusReturned,
	RequestStatusCanceled,
}

// transitions encodes the legal next states per current status and actor role.
// The supplier advances the order; the customer pays once and may cancel any
// time before the order reaches a terminal or delivered state.
var transitions = map[RequestStatus]map[UserRole][]RequestStatus{
	RequestStatusPending: {
		UserRoleSupplier: {RequestStatusOrdered, RequestStatusRejected},
	},
	RequestStatusOrdered: {
		UserRoleCustomer: {RequestStatusPayment, RequestStatusCanceled},
	},
	RequestStatusPayment: {
		UserRoleSupplier: {RequestStatusShipped, RequestStatusRejected},
		UserRoleCustomer: {RequestStatusCanceled},
	},
	RequestStatusShipped: {
		UserRoleSupplier: {RequestStatusDelivered},
		UserRoleCustomer: {RequestStatusCanceled},
	},
	RequestStatusDelivered: {
		UserRoleSupplier: {RequestStatusReturned},
	},
}

// NextStatuses returns the statuses the given role may move a request with the
// given current status to. The slice is empty for terminal statuses.
func NextStatuses(current RequestStatus, role UserRole) []RequestStatus {
	return transitions[current][role]
}

// CanTransition reports whether the (current, next) pair is a legal move for
// the given actor role.
func CanTransition(current, next RequestStatus, role UserRole) bool {
	for _, s := range transitions[current][role] {
		if s == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is defined for the status.
func IsTerminal(status RequestStatus) bool {
	return status == RequestStatusRejected ||
		status == RequestStatusCanceled ||
		status == RequestStatusReturned
}

// ValidStatus reports whether s is a known request status.
func ValidStatus(s RequestStatus) bool {
	for _, known := range AllRequestStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// DateRange is a from/end pair, used for a product's unavailable dates.
type DateRange struct {
	FromDate time.Time `json:"from_date"`
	EndDate  time.Time `json:"end_date"`
}

type RentalRequest struct {
	ID         int32         `json:"id"`
	OrderID    string        `json:"order_id"` // human-facing order reference
	ProductID  int32         `json:"product_id"`
	CustomerID int32         `json:"customer_id"`
	SupplierID int32         `json:"supplier_id"`
	FromDate   time.Time     `json:"from_date"`
	EndDate    time.Time     `json:"end_date"`
	Status     RequestStatus `json:"status"`
	OrderDate  time.Time     `json:"order_date"`
	Address    string        `json:"address"` // delivery address snapshot
	CreatedOn  time.Time     `json:"created_on"`
	UpdatedOn  time.Time     `json:"updated_on"`

	// Derived at read time from the pricing policy, never stored.
	Days  int64           `json:"days"`
	Total decimal.Decimal `json:"total"`

	// Populated when reading with product/customer details
	Product  *Product `json:"product,omitempty"`
	Customer *User    `json:"customer,omitempty"`
}
