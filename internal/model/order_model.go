package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus moves along a fixed graph:
// INITIATED -> CONFIRMED -> PAID, or INITIATED -> CANCELLED.
// CANCELLED and PAID are terminal.
type OrderStatus int16

const (
	StatusInitiated OrderStatus = 1
	StatusConfirmed OrderStatus = 2
	StatusPaid      OrderStatus = 3
	StatusCancelled OrderStatus = -1
)

// Display returns the label rendered in API responses.
func (s OrderStatus) Display() string {
	switch s {
	case StatusInitiated:
		return "Initiated"
	case StatusConfirmed:
		return "Confirmed"
	case StatusPaid:
		return "Paid"
	case StatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Order.Key is assigned at creation but acts as a receipt code: it is
// only exposed to clients once the order is paid.
type Order struct {
	ID        int64       `json:"id"`
	Status    OrderStatus `json:"status"`
	Key       uuid.UUID   `json:"key"`
	UserID    int64       `json:"user_id"`
	Games     []Game      `json:"games"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// Price is the sum of the prices of the games in the order.
func (o *Order) Price() float64 {
	var total float64
	for _, g := range o.Games {
		total += g.Price
	}
	return total
}
