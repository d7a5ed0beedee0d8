package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInvalidPrice      = "INVALID_PRICE"
	ErrCodeInvalidCard       = "INVALID_CARD"
	ErrCodeInvalidRate       = "INVALID_COMMISSION_RATE"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeAffiliateNotFound = "AFFILIATE_NOT_FOUND"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// DomainError is a business-rule failure with a stable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrMissingRequiredFields = NewDomainError(ErrCodeMissingField, "Missing required fields")
	ErrInvalidQuantity       = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidPrice          = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrInvalidCardDetails    = NewDomainError(ErrCodeInvalidCard, "Invalid card details")
	ErrInvalidCommissionRate = NewDomainError(ErrCodeInvalidRate, "Commission rate must be between 0 and 100")
	ErrOrderNotFound         = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrProductNotFound       = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrAffiliateNotFound     = NewDomainError(ErrCodeAffiliateNotFound, "Affiliate not found")
)
