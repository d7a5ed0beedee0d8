package service

import (
	"context"

	"shopfront/internal/model"
)

// ProductService defines operations for catalog reads and seeding.
type ProductService interface {
	// GetAll retrieves all products with pagination.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID. Returns nil when absent.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// Seed bulk-inserts the fixed sample product set.
	Seed(ctx context.Context) (int, error)
}

// OrderService defines operations for the order workflow.
type OrderService interface {
	// Create creates a new order from cart items with an optional affiliate
	// commission.
	Create(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order header merged with its item list. Returns
	// nil when the order does not exist.
	GetByID(ctx context.Context, id int64) (*model.OrderDetail, error)
}

// PaymentService defines operations for simulated payment processing.
type PaymentService interface {
	// Process records one payment attempt against an order and transitions
	// the order's payment status.
	Process(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResponse, error)

	// Methods returns the static list of supported payment methods.
	Methods() []model.PaymentMethodInfo
}

// AffiliateService defines operations for the affiliate registry.
type AffiliateService interface {
	// Register creates a new affiliate and returns its generated code.
	Register(ctx context.Context, req *model.AffiliateRegisterRequest) (*model.AffiliateRegisterResponse, error)

	// Stats aggregates clicks, completed sales and commission for a code.
	Stats(ctx context.Context, code string) (*model.AffiliateStats, error)

	// Click records one tracked click.
	Click(ctx context.Context, req *model.AffiliateClickRequest) error
}

// SocialService defines operations for social share tracking.
type SocialService interface {
	// Share records one tracked share.
	Share(ctx context.Context, req *model.SocialShareRequest) error

	// Counts returns per-platform share counts for a product.
	Counts(ctx context.Context, productID int64) ([]model.ShareCount, error)
}
