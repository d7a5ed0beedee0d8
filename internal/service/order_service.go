package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"shopfront/internal/events"
	"shopfront/internal/metrics"
	"shopfront/internal/model"
	"shopfront/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	orderRepo     repository.OrderRepository
	affiliateRepo repository.AffiliateRepository
	publisher     events.Publisher
	logger        zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(
	orderRepo repository.OrderRepository,
	affiliateRepo repository.AffiliateRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		orderRepo:     orderRepo,
		affiliateRepo: affiliateRepo,
		publisher:     publisher,
		logger:        logger.With().Str("service", "order").Logger(),
	}
}

// Create creates a new order from cart items. The total is computed from the
// caller-supplied price snapshot; the catalog is not re-read. If the
// affiliate code resolves, the commission is total * rate / 100; an unknown
// code yields zero commission and the order still proceeds. Header and items
// commit as one transaction.
func (s *orderService) Create(ctx context.Context, req *model.OrderRequest) (*model.OrderResponse, error) {
	start := time.Now()

	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	var totalAmount float64
	for _, item := range req.Items {
		totalAmount += item.Price * float64(item.Quantity)
	}

	// Commission rate is read at order time; later rate changes never affect
	// this order.
	var commission float64
	if req.AffiliateCode != nil && *req.AffiliateCode != "" {
		affiliate, err := s.affiliateRepo.GetByCode(ctx, *req.AffiliateCode)
		if err != nil {
			s.logger.Error().Err(err).Str("affiliate_code", *req.AffiliateCode).Msg("failed to look up affiliate")
			return nil, fmt.Errorf("failed to create order: %w", err)
		}
		if affiliate != nil {
			commission = totalAmount * affiliate.CommissionRate / 100
		} else {
			s.logger.Debug().
				Str("affiliate_code", *req.AffiliateCode).
				Msg("unknown affiliate code, order proceeds without commission")
		}
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	now := time.Now()
	order := &model.Order{
		OrderNumber:         "ORD_" + strconv.FormatInt(now.UnixMilli(), 10),
		CustomerName:        req.CustomerName,
		CustomerEmail:       req.CustomerEmail,
		CustomerPhone:       req.CustomerPhone,
		TotalAmount:         totalAmount,
		PaymentStatus:       model.PaymentStatusPending,
		OrderStatus:         model.OrderStatusPending,
		AffiliateCode:       req.AffiliateCode,
		AffiliateCommission: commission,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err = s.orderRepo.CreateOrder(ctx, tx, order); err != nil {
		s.logger.Error().Err(err).Str("order_number", order.OrderNumber).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	orderItems := make([]model.OrderItem, len(req.Items))
	for i, item := range req.Items {
		orderItems[i] = model.OrderItem{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
		}
	}

	if err = s.orderRepo.CreateOrderItems(ctx, tx, orderItems); err != nil {
		s.logger.Error().
			Err(err).
			Int64("order_id", order.ID).
			Int("item_count", len(orderItems)).
			Msg("failed to create order items")
		return nil, fmt.Errorf("failed to create order items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderCreateDuration.Observe(time.Since(start).Seconds())

	s.publish(ctx, events.TypeOrderCreated, strconv.FormatInt(order.ID, 10), events.OrderCreated{
		OrderID:             order.ID,
		OrderNumber:         order.OrderNumber,
		TotalAmount:         totalAmount,
		AffiliateCode:       derefString(req.AffiliateCode),
		AffiliateCommission: commission,
		ItemCount:           len(orderItems),
	})

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("order_number", order.OrderNumber).
		Float64("total_amount", totalAmount).
		Float64("affiliate_commission", commission).
		Int("item_count", len(orderItems)).
		Msg("order created successfully")

	return &model.OrderResponse{
		Success:             true,
		OrderID:             order.ID,
		OrderNumber:         order.OrderNumber,
		TotalAmount:         totalAmount,
		AffiliateCommission: commission,
	}, nil
}

// GetByID retrieves an order header merged with its item list.
func (s *orderService) GetByID(ctx context.Context, id int64) (*model.OrderDetail, error) {
	order, items, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", id).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	if order == nil {
		s.logger.Debug().Int64("order_id", id).Msg("order not found")
		return nil, nil
	}

	if items == nil {
		items = []model.OrderItem{}
	}

	return &model.OrderDetail{
		Order: *order,
		Items: items,
	}, nil
}

// validateOrderRequest validates the order request.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.ErrMissingRequiredFields
	}

	if req.CustomerName == "" || req.CustomerEmail == "" || len(req.Items) == 0 {
		return model.ErrMissingRequiredFields
	}

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}

		if item.Price < 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int64("product_id", item.ProductID).
				Float64("price", item.Price).
				Msg("invalid price")
			return model.ErrInvalidPrice
		}
	}

	return nil
}

// publish emits a workflow event best-effort. Failures are logged, never
// surfaced to the caller.
func (s *orderService) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.publisher.PublishEvent(ctx, eventType, key, payload); err != nil {
		s.logger.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish event")
	}
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
