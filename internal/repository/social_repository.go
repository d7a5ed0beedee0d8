package repository

import (
	"context"
	"fmt"

	"shopfront/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// socialRepository implements the SocialRepository interface using PostgreSQL.
type socialRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewSocialRepository creates a new PostgreSQL-backed social share repository.
func NewSocialRepository(pool *pgxpool.Pool, logger zerolog.Logger) SocialRepository {
	return &socialRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "social").Logger(),
	}
}

// RecordShare appends one share row.
func (r *socialRepository) RecordShare(ctx context.Context, share *model.SocialShare) error {
	query := `
		INSERT INTO social_shares (product_id, platform, shared_by, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query, share.ProductID, share.Platform, share.SharedBy, share.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("product_id", share.ProductID).
			Str("platform", share.Platform).
			Msg("failed to record share")
		return fmt.Errorf("failed to record share: %w", err)
	}

	return nil
}

// CountByPlatform returns per-platform share counts for a product.
func (r *socialRepository) CountByPlatform(ctx context.Context, productID int64) ([]model.ShareCount, error) {
	query := `
		SELECT platform, COUNT(*)
		FROM social_shares
		WHERE product_id = $1
		GROUP BY platform
		ORDER BY platform
	`

	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		r.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to query share counts")
		return nil, fmt.Errorf("failed to query share counts: %w", err)
	}
	defer rows.Close()

	counts := []model.ShareCount{}
	for rows.Next() {
		var c model.ShareCount
		if err := rows.Scan(&c.Platform, &c.Count); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan share count row")
			return nil, fmt.Errorf("failed to scan share count: %w", err)
		}
		counts = append(counts, c)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating share count rows")
		return nil, fmt.Errorf("error iterating share counts: %w", err)
	}

	return counts, nil
}
