package model

import "time"

// DefaultCommissionRate is the commission percentage used when registration
// does not specify one.
const DefaultCommissionRate = 5

// Affiliate represents a referral partner. The commission rate is read at
// order-creation time only; a later rate change does not affect past orders.
type Affiliate struct {
	ID             int64     `json:"id" db:"id"`
	AffiliateCode  string    `json:"affiliate_code" db:"affiliate_code"`
	AffiliateName  string    `json:"affiliate_name" db:"affiliate_name"`
	AffiliateEmail string    `json:"affiliate_email" db:"affiliate_email"`
	CommissionRate float64   `json:"commission_rate" db:"commission_rate"`
	TotalEarnings  float64   `json:"total_earnings" db:"total_earnings"`
	Platform       string    `json:"platform" db:"platform"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// AffiliateClick records one tracked click for an affiliate code.
type AffiliateClick struct {
	ID            int64     `json:"id" db:"id"`
	AffiliateCode string    `json:"affiliate_code" db:"affiliate_code"`
	ProductID     *int64    `json:"product_id,omitempty" db:"product_id"`
	ClickedAt     time.Time `json:"clicked_at" db:"clicked_at"`
}

// AffiliateRegisterRequest represents the registration payload.
type AffiliateRegisterRequest struct {
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	Platform       string   `json:"platform"`
	CommissionRate *float64 `json:"commission_rate,omitempty"`
}

// AffiliateRegisterResponse carries the generated affiliate code.
type AffiliateRegisterResponse struct {
	Success       bool   `json:"success"`
	AffiliateCode string `json:"affiliate_code"`
	Message       string `json:"message"`
}

// AffiliateClickRequest represents a click-tracking payload.
type AffiliateClickRequest struct {
	AffiliateCode string `json:"affiliate_code"`
	ProductID     *int64 `json:"product_id,omitempty"`
}

// AffiliateStats aggregates tracking data for one affiliate code.
type AffiliateStats struct {
	Affiliate       Affiliate `json:"affiliate"`
	Clicks          int64     `json:"clicks"`
	Sales           int64     `json:"sales"`
	TotalCommission float64   `json:"total_commission"`
}
