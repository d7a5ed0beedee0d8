package model

import "time"

// PaymentLog is an append-only audit record of one payment attempt against
// an order. One row per attempt; rows are never updated.
type PaymentLog struct {
	ID            int64         `json:"id" db:"id"`
	OrderID       int64         `json:"order_id" db:"order_id"`
	PaymentMethod string        `json:"payment_method" db:"payment_method"`
	TransactionID string        `json:"transaction_id" db:"transaction_id"`
	Amount        float64       `json:"amount" db:"amount"`
	Status        PaymentStatus `json:"status" db:"status"`
	ResponseData  string        `json:"response_data" db:"response_data"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
}

// PaymentRequest represents the request payload for processing a payment.
type PaymentRequest struct {
	OrderID       int64  `json:"order_id"`
	PaymentMethod string `json:"payment_method"`
	CardNumber    string `json:"card_number,omitempty"`
	CardHolder    string `json:"card_holder,omitempty"`
	CardExpiry    string `json:"card_expiry,omitempty"`
	CardCVV       string `json:"card_cvv,omitempty"`
}

// PaymentResponse represents the result of a payment attempt.
type PaymentResponse struct {
	Success       bool          `json:"success"`
	TransactionID string        `json:"transaction_id"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	Amount        float64       `json:"amount"`
	Message       string        `json:"message"`
}

// PaymentMethodInfo describes one supported payment method for the static
// listing endpoint.
type PaymentMethodInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
