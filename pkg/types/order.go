package types

import (
	"fmt"
	"time"
)

// OrderStatus is the order lifecycle state. Values round-trip by exact
// name; matching is case-sensitive.
type OrderStatus string

// Recognized order statuses.
const (
	StatusPending   OrderStatus = "Pending"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// validOrderStatuses is the set of recognized status values.
var validOrderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusShipped:   true,
	StatusDelivered: true,
	StatusCancelled: true,
}

// ParseOrderStatus maps status text to an OrderStatus. An unrecognized
// name is a parse failure, never a sentinel default.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !validOrderStatuses[status] {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

// Valid reports whether the status is one of the recognized values.
func (s OrderStatus) Valid() bool {
	return validOrderStatuses[s]
}

// Order records a purchase of a product from a supplier. ProductID and
// SupplierID are soft references, like the ones on Product. Orders have no
// natural name, so no uniqueness constraint applies beyond the id.
type Order struct {
	ID         int         `json:"id"`
	ProductID  int         `json:"productId"`
	Quantity   int         `json:"quantity"`
	OrderDate  time.Time   `json:"orderDate"`
	SupplierID int         `json:"supplierId"`
	Status     OrderStatus `json:"status"`
}
