package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema is the full storefront schema. Statements are idempotent so the
// migration can run on every startup.
const Schema = `
	CREATE TABLE IF NOT EXISTS products (
		id BIGSERIAL PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		price NUMERIC(12, 2) NOT NULL CHECK (price >= 0),
		image_url TEXT NOT NULL DEFAULT '',
		stock INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		category VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS orders (
		id BIGSERIAL PRIMARY KEY,
		order_number VARCHAR(50) UNIQUE NOT NULL,
		customer_name VARCHAR(255) NOT NULL,
		customer_email VARCHAR(255) NOT NULL,
		customer_phone VARCHAR(50),
		total_amount NUMERIC(12, 2) NOT NULL CHECK (total_amount >= 0),
		payment_method VARCHAR(50),
		payment_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		order_status VARCHAR(20) NOT NULL DEFAULT 'pending',
		affiliate_code VARCHAR(50),
		affiliate_commission NUMERIC(12, 2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS order_items (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		product_id BIGINT NOT NULL,
		product_name VARCHAR(255) NOT NULL,
		price NUMERIC(12, 2) NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity > 0)
	);

	CREATE TABLE IF NOT EXISTS affiliates (
		id BIGSERIAL PRIMARY KEY,
		affiliate_code VARCHAR(50) UNIQUE NOT NULL,
		affiliate_name VARCHAR(255) NOT NULL,
		affiliate_email VARCHAR(255) NOT NULL DEFAULT '',
		commission_rate NUMERIC(5, 2) NOT NULL DEFAULT 5,
		total_earnings NUMERIC(12, 2) NOT NULL DEFAULT 0,
		platform VARCHAR(100) NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS affiliate_clicks (
		id BIGSERIAL PRIMARY KEY,
		affiliate_code VARCHAR(50) NOT NULL,
		product_id BIGINT,
		clicked_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS payment_logs (
		id BIGSERIAL PRIMARY KEY,
		order_id BIGINT NOT NULL REFERENCES orders(id),
		payment_method VARCHAR(50) NOT NULL,
		transaction_id VARCHAR(100) NOT NULL,
		amount NUMERIC(12, 2) NOT NULL,
		status VARCHAR(20) NOT NULL,
		response_data TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS social_shares (
		id BIGSERIAL PRIMARY KEY,
		product_id BIGINT NOT NULL,
		platform VARCHAR(100) NOT NULL,
		shared_by VARCHAR(255) NOT NULL DEFAULT 'anonymous',
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_order_items_order_id ON order_items(order_id);
	CREATE INDEX IF NOT EXISTS idx_orders_affiliate_code ON orders(affiliate_code);
	CREATE INDEX IF NOT EXISTS idx_affiliate_clicks_code ON affiliate_clicks(affiliate_code);
	CREATE INDEX IF NOT EXISTS idx_payment_logs_order_id ON payment_logs(order_id);
	CREATE INDEX IF NOT EXISTS idx_social_shares_product_id ON social_shares(product_id);
`

// Migrate creates the schema if it does not already exist.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to run schema migration: %w", err)
	}

	logger.Info().Msg("database schema up to date")
	return nil
}
