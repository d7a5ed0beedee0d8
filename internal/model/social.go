package model

import "time"

// SocialShare records one tracked share of a product on a platform.
type SocialShare struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Platform  string    `json:"platform" db:"platform"`
	SharedBy  string    `json:"shared_by" db:"shared_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// SocialShareRequest represents a share-tracking payload.
type SocialShareRequest struct {
	ProductID int64  `json:"product_id"`
	Platform  string `json:"platform"`
	SharedBy  string `json:"shared_by,omitempty"`
}

// ShareCount is the per-platform share count for one product.
type ShareCount struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}
