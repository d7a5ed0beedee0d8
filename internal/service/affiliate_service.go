package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// affiliateService implements AffiliateService.
type affiliateService struct {
	affiliateRepo repository.AffiliateRepository
	logger        zerolog.Logger
}

// NewAffiliateService creates a new affiliate service.
func NewAffiliateService(affiliateRepo repository.AffiliateRepository, logger zerolog.Logger) AffiliateService {
	return &affiliateService{
		affiliateRepo: affiliateRepo,
		logger:        logger.With().Str("service", "affiliate").Logger(),
	}
}

// Register creates a new affiliate with a generated code.
func (s *affiliateService) Register(ctx context.Context, req *model.AffiliateRegisterRequest) (*model.AffiliateRegisterResponse, error) {
	if req == nil || req.Name == "" || req.Email == "" {
		return nil, model.ErrMissingRequiredFields
	}

	rate := float64(model.DefaultCommissionRate)
	if req.CommissionRate != nil {
		rate = *req.CommissionRate
	}
	if rate < 0 || rate > 100 {
		return nil, model.ErrInvalidCommissionRate
	}

	affiliate := &model.Affiliate{
		AffiliateCode:  generateAffiliateCode(),
		AffiliateName:  req.Name,
		AffiliateEmail: req.Email,
		CommissionRate: rate,
		Platform:       req.Platform,
		CreatedAt:      time.Now(),
	}

	if err := s.affiliateRepo.Create(ctx, affiliate); err != nil {
		s.logger.Error().Err(err).Str("affiliate_code", affiliate.AffiliateCode).Msg("failed to register affiliate")
		return nil, fmt.Errorf("failed to register affiliate: %w", err)
	}

	s.logger.Info().
		Str("affiliate_code", affiliate.AffiliateCode).
		Float64("commission_rate", rate).
		Msg("affiliate registered")

	return &model.AffiliateRegisterResponse{
		Success:       true,
		AffiliateCode: affiliate.AffiliateCode,
		Message:       "Affiliate registered successfully",
	}, nil
}

// Stats aggregates clicks, completed sales and commission for a code.
func (s *affiliateService) Stats(ctx context.Context, code string) (*model.AffiliateStats, error) {
	affiliate, err := s.affiliateRepo.GetByCode(ctx, code)
	if err != nil {
		s.logger.Error().Err(err).Str("affiliate_code", code).Msg("failed to look up affiliate")
		return nil, fmt.Errorf("failed to get affiliate stats: %w", err)
	}
	if affiliate == nil {
		return nil, model.ErrAffiliateNotFound
	}

	clicks, err := s.affiliateRepo.CountClicks(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get affiliate stats: %w", err)
	}

	sales, commission, err := s.affiliateRepo.CompletedSales(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to get affiliate stats: %w", err)
	}

	return &model.AffiliateStats{
		Affiliate:       *affiliate,
		Clicks:          clicks,
		Sales:           sales,
		TotalCommission: commission,
	}, nil
}

// Click records one tracked click.
func (s *affiliateService) Click(ctx context.Context, req *model.AffiliateClickRequest) error {
	if req == nil || req.AffiliateCode == "" {
		return model.ErrMissingRequiredFields
	}

	click := &model.AffiliateClick{
		AffiliateCode: req.AffiliateCode,
		ProductID:     req.ProductID,
		ClickedAt:     time.Now(),
	}

	if err := s.affiliateRepo.RecordClick(ctx, click); err != nil {
		s.logger.Error().Err(err).Str("affiliate_code", req.AffiliateCode).Msg("failed to record click")
		return fmt.Errorf("failed to record click: %w", err)
	}

	return nil
}

// generateAffiliateCode returns a human-facing code like AFF_1A2B3C4D.
func generateAffiliateCode() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return "AFF_" + token[:8]
}
