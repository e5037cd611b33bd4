package model

import "time"

// Order represents a submitted cake order
type Order struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Details   *string   `json:"details,omitempty"` // Pointer for optional field
	TotalCost int64     `json:"total_cost"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateOrderRequest is used for submitting a new order.
// Quantity and TotalCost intentionally carry no binding constraints:
// the storefront contract accepts zero and negative values.
type CreateOrderRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     string  `json:"phone" binding:"required"`
	Product   string  `json:"product" binding:"required"`
	Quantity  int     `json:"quantity"`
	Details   *string `json:"details"`
	TotalCost int64   `json:"total_cost"`
}
