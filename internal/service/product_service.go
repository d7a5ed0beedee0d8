package service

import (
	"context"
	"fmt"

	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/rs/zerolog"
)

// productService implements ProductService.
type productService struct {
	productRepo repository.ProductRepository
	logger      zerolog.Logger
}

// NewProductService creates a new product service.
func NewProductService(productRepo repository.ProductRepository, logger zerolog.Logger) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger.With().Str("service", "product").Logger(),
	}
}

// GetAll retrieves all products with pagination.
func (s *productService) GetAll(ctx context.Context, limit, offset int) ([]model.Product, error) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	products, err := s.productRepo.GetAll(ctx, limit, offset)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get products")
		return nil, fmt.Errorf("failed to get products: %w", err)
	}

	if products == nil {
		products = []model.Product{}
	}

	return products, nil
}

// GetByID retrieves a single product by ID.
func (s *productService) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("product_id", id).Msg("failed to get product")
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// Seed bulk-inserts the fixed sample product set and returns how many rows
// were written. Development convenience only.
func (s *productService) Seed(ctx context.Context) (int, error) {
	products := sampleProducts()

	if err := s.productRepo.InsertAll(ctx, products); err != nil {
		s.logger.Error().Err(err).Msg("failed to seed products")
		return 0, fmt.Errorf("failed to seed products: %w", err)
	}

	s.logger.Info().Int("count", len(products)).Msg("sample products seeded")

	return len(products), nil
}

// sampleProducts is the fixed development catalog.
func sampleProducts() []model.Product {
	return []model.Product{
		{
			Name:        "Premium Wireless Headphones",
			Description: "High-quality wireless headphones with noise cancellation",
			Price:       199.99,
			ImageURL:    "https://via.placeholder.com/300x300?text=Headphones",
			Stock:       50,
			Category:    "Electronics",
		},
		{
			Name:        "Smart Watch",
			Description: "Feature-rich smartwatch with health tracking",
			Price:       299.99,
			ImageURL:    "https://via.placeholder.com/300x300?text=Smartwatch",
			Stock:       30,
			Category:    "Electronics",
		},
		{
			Name:        "Premium Coffee Maker",
			Description: "Professional-grade coffee maker",
			Price:       149.99,
			ImageURL:    "https://via.placeholder.com/300x300?text=CoffeeMaker",
			Stock:       25,
			Category:    "Home Appliances",
		},
		{
			Name:        "4K Webcam",
			Description: "Ultra HD webcam for streaming and video calls",
			Price:       89.99,
			ImageURL:    "https://via.placeholder.com/300x300?text=Webcam",
			Stock:       40,
			Category:    "Electronics",
		},
		{
			Name:        "Portable Power Bank 30000mAh",
			Description: "Fast charging power bank with LED display",
			Price:       49.99,
			ImageURL:    "https://via.placeholder.com/300x300?text=PowerBank",
			Stock:       100,
			Category:    "Accessories",
		},
		{
			Name:        "USB-C Hub Pro",
			Description: "7-in-1 USB-C hub with multiple ports",
			Price:       79.99,
			ImageURL:    "https://via.placeholder.com/300x300?text=USBHub",
			Stock:       60,
			Category:    "Accessories",
		},
	}
}
