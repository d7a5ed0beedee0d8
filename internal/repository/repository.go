package repository

import (
	"context"
	"time"

	"shopfront/internal/model"

	"github.com/jackc/pgx/v5"
)

// ProductRepository defines the interface for catalog data access.
type ProductRepository interface {
	// GetAll retrieves all products with pagination support.
	GetAll(ctx context.Context, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID. Returns nil when the
	// product does not exist.
	GetByID(ctx context.Context, id int64) (*model.Product, error)

	// InsertAll bulk-inserts products in a single transaction. Used by the
	// development seed endpoint.
	InsertAll(ctx context.Context, products []model.Product) error
}

// OrderRepository defines the interface for order data access operations.
// Multi-step writes take a pgx.Tx so the service can commit header, items,
// payment log and status update as single atomic units.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order header within the provided transaction
	// and populates order.ID with the generated id.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts all order items within the provided
	// transaction. Any insert failure fails the whole batch.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items. Returns
	// nil, nil, nil when the order does not exist.
	GetByID(ctx context.Context, id int64) (*model.Order, []model.OrderItem, error)

	// UpdatePaymentStatus updates the order's payment status, payment method
	// and updated_at within the provided transaction.
	UpdatePaymentStatus(ctx context.Context, tx pgx.Tx, orderID int64, status model.PaymentStatus, method string, updatedAt time.Time) error
}

// PaymentRepository defines the interface for the append-only payment log.
type PaymentRepository interface {
	// RecordPayment inserts one payment log row within the provided
	// transaction.
	RecordPayment(ctx context.Context, tx pgx.Tx, log *model.PaymentLog) error
}

// AffiliateRepository defines the interface for the affiliate registry.
type AffiliateRepository interface {
	// Create inserts a new affiliate and populates affiliate.ID.
	Create(ctx context.Context, affiliate *model.Affiliate) error

	// GetByCode retrieves an affiliate by its code. Returns nil when the
	// code does not resolve.
	GetByCode(ctx context.Context, code string) (*model.Affiliate, error)

	// RecordClick appends one click row.
	RecordClick(ctx context.Context, click *model.AffiliateClick) error

	// CountClicks returns the number of recorded clicks for a code.
	CountClicks(ctx context.Context, code string) (int64, error)

	// CompletedSales returns the number of completed orders attributed to a
	// code and their summed commission.
	CompletedSales(ctx context.Context, code string) (int64, float64, error)
}

// SocialRepository defines the interface for social share tracking.
type SocialRepository interface {
	// RecordShare appends one share row.
	RecordShare(ctx context.Context, share *model.SocialShare) error

	// CountByPlatform returns per-platform share counts for a product.
	CountByPlatform(ctx context.Context, productID int64) ([]model.ShareCount, error)
}
