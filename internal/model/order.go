package model

import "time"

// Order status values. Only "pending" is ever set by this workflow; there
// is no fulfilment state machine.
const OrderStatusPending = "pending"

// PaymentStatus is the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Order represents a customer order header.
type Order struct {
	ID                  int64         `json:"id" db:"id"`
	OrderNumber         string        `json:"order_number" db:"order_number"`
	CustomerName        string        `json:"customer_name" db:"customer_name"`
	CustomerEmail       string        `json:"customer_email" db:"customer_email"`
	CustomerPhone       *string       `json:"customer_phone,omitempty" db:"customer_phone"`
	TotalAmount         float64       `json:"total_amount" db:"total_amount"`
	PaymentMethod       *string       `json:"payment_method,omitempty" db:"payment_method"`
	PaymentStatus       PaymentStatus `json:"payment_status" db:"payment_status"`
	OrderStatus         string        `json:"order_status" db:"order_status"`
	AffiliateCode       *string       `json:"affiliate_code,omitempty" db:"affiliate_code"`
	AffiliateCommission float64       `json:"affiliate_commission" db:"affiliate_commission"`
	CreatedAt           time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at" db:"updated_at"`
}

// OrderItem represents a line item with the product name and price captured
// at order time. Created once with the order, never mutated.
type OrderItem struct {
	ID          int64   `json:"id" db:"id"`
	OrderID     int64   `json:"order_id" db:"order_id"`
	ProductID   int64   `json:"product_id" db:"product_id"`
	ProductName string  `json:"product_name" db:"product_name"`
	Price       float64 `json:"price" db:"price"`
	Quantity    int     `json:"quantity" db:"quantity"`
}

// OrderRequest represents the request payload for creating an order.
type OrderRequest struct {
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone *string            `json:"customer_phone,omitempty"`
	Items         []OrderItemRequest `json:"items"`
	AffiliateCode *string            `json:"affiliate_code,omitempty"`
}

// OrderItemRequest represents a single cart line in an order request.
type OrderItemRequest struct {
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// OrderResponse represents the response payload for a created order.
type OrderResponse struct {
	Success             bool    `json:"success"`
	OrderID             int64   `json:"order_id"`
	OrderNumber         string  `json:"order_number"`
	TotalAmount         float64 `json:"total_amount"`
	AffiliateCommission float64 `json:"affiliate_commission"`
}

// OrderDetail is an order header merged with its item list.
type OrderDetail struct {
	Order
	Items []OrderItem `json:"items"`
}
