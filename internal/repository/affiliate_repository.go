package repository

import (
	"context"
	"fmt"

	"shopfront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// affiliateRepository implements the AffiliateRepository interface using PostgreSQL.
type affiliateRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewAffiliateRepository creates a new PostgreSQL-backed affiliate repository.
func NewAffiliateRepository(pool *pgxpool.Pool, logger zerolog.Logger) AffiliateRepository {
	return &affiliateRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "affiliate").Logger(),
	}
}

// Create inserts a new affiliate.
func (r *affiliateRepository) Create(ctx context.Context, affiliate *model.Affiliate) error {
	query := `
		INSERT INTO affiliates (affiliate_code, affiliate_name, affiliate_email, commission_rate, platform, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`

	err := r.pool.QueryRow(ctx, query,
		affiliate.AffiliateCode,
		affiliate.AffiliateName,
		affiliate.AffiliateEmail,
		affiliate.CommissionRate,
		affiliate.Platform,
		affiliate.CreatedAt,
	).Scan(&affiliate.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("affiliate_code", affiliate.AffiliateCode).
			Msg("failed to create affiliate")
		return fmt.Errorf("failed to create affiliate: %w", err)
	}

	r.logger.Debug().
		Str("affiliate_code", affiliate.AffiliateCode).
		Msg("affiliate created")

	return nil
}

// GetByCode retrieves an affiliate by its code.
func (r *affiliateRepository) GetByCode(ctx context.Context, code string) (*model.Affiliate, error) {
	query := `
		SELECT id, affiliate_code, affiliate_name, affiliate_email, commission_rate, total_earnings, platform, created_at
		FROM affiliates
		WHERE affiliate_code = $1
	`

	var a model.Affiliate
	err := r.pool.QueryRow(ctx, query, code).Scan(
		&a.ID,
		&a.AffiliateCode,
		&a.AffiliateName,
		&a.AffiliateEmail,
		&a.CommissionRate,
		&a.TotalEarnings,
		&a.Platform,
		&a.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Str("affiliate_code", code).Msg("affiliate not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("affiliate_code", code).Msg("failed to query affiliate")
		return nil, fmt.Errorf("failed to query affiliate: %w", err)
	}

	return &a, nil
}

// RecordClick appends one click row.
func (r *affiliateRepository) RecordClick(ctx context.Context, click *model.AffiliateClick) error {
	query := `
		INSERT INTO affiliate_clicks (affiliate_code, product_id, clicked_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.pool.Exec(ctx, query, click.AffiliateCode, click.ProductID, click.ClickedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("affiliate_code", click.AffiliateCode).
			Msg("failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}

	return nil
}

// CountClicks returns the number of recorded clicks for a code.
func (r *affiliateRepository) CountClicks(ctx context.Context, code string) (int64, error) {
	query := `SELECT COUNT(*) FROM affiliate_clicks WHERE affiliate_code = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, code).Scan(&count); err != nil {
		r.logger.Error().Err(err).Str("affiliate_code", code).Msg("failed to count clicks")
		return 0, fmt.Errorf("failed to count clicks: %w", err)
	}

	return count, nil
}

// CompletedSales returns the number of completed orders attributed to a code
// and their summed commission.
func (r *affiliateRepository) CompletedSales(ctx context.Context, code string) (int64, float64, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(affiliate_commission), 0)
		FROM orders
		WHERE affiliate_code = $1 AND payment_status = 'completed'
	`

	var count int64
	var commission float64
	if err := r.pool.QueryRow(ctx, query, code).Scan(&count, &commission); err != nil {
		r.logger.Error().Err(err).Str("affiliate_code", code).Msg("failed to query completed sales")
		return 0, 0, fmt.Errorf("failed to query completed sales: %w", err)
	}

	return count, commission, nil
}
