package service

import (
	"context"
	"fmt"
	"time"

	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/rs/zerolog"
)

// socialService implements SocialService.
type socialService struct {
	socialRepo repository.SocialRepository
	logger     zerolog.Logger
}

// NewSocialService creates a new social share service.
func NewSocialService(socialRepo repository.SocialRepository, logger zerolog.Logger) SocialService {
	return &socialService{
		socialRepo: socialRepo,
		logger:     logger.With().Str("service", "social").Logger(),
	}
}

// Share records one tracked share.
func (s *socialService) Share(ctx context.Context, req *model.SocialShareRequest) error {
	if req == nil || req.ProductID == 0 || req.Platform == "" {
		return model.ErrMissingRequiredFields
	}

	sharedBy := req.SharedBy
	if sharedBy == "" {
		sharedBy = "anonymous"
	}

	share := &model.SocialShare{
		ProductID: req.ProductID,
		Platform:  req.Platform,
		SharedBy:  sharedBy,
		CreatedAt: time.Now(),
	}

	if err := s.socialRepo.RecordShare(ctx, share); err != nil {
		s.logger.Error().
			Err(err).
			Int64("product_id", req.ProductID).
			Str("platform", req.Platform).
			Msg("failed to record share")
		return fmt.Errorf("failed to record share: %w", err)
	}

	return nil
}

// Counts returns per-platform share counts for a product.
func (s *socialService) Counts(ctx context.Context, productID int64) ([]model.ShareCount, error) {
	counts, err := s.socialRepo.CountByPlatform(ctx, productID)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", productID).Msg("failed to get share counts")
		return nil, fmt.Errorf("failed to get share counts: %w", err)
	}

	return counts, nil
}
