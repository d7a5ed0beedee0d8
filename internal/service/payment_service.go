package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"shopfront/internal/events"
	"shopfront/internal/metrics"
	"shopfront/internal/model"
	"shopfront/internal/payment"
	"shopfront/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Human-readable payment outcome messages.
const (
	msgPaymentCompleted = "Payment successful!"
	msgPaymentPending   = "Payment pending. Please verify or wait for confirmation."
)

// paymentService implements PaymentService.
type paymentService struct {
	orderRepo   repository.OrderRepository
	paymentRepo repository.PaymentRepository
	publisher   events.Publisher
	logger      zerolog.Logger
}

// NewPaymentService creates a new payment service.
func NewPaymentService(
	orderRepo repository.OrderRepository,
	paymentRepo repository.PaymentRepository,
	publisher events.Publisher,
	logger zerolog.Logger,
) PaymentService {
	return &paymentService{
		orderRepo:   orderRepo,
		paymentRepo: paymentRepo,
		publisher:   publisher,
		logger:      logger.With().Str("service", "payment").Logger(),
	}
}

// Process records one payment attempt against an order. The outcome is a
// pure function of the method; the charged amount is always the order's
// stored total, never a client-supplied value. The payment log insert and
// the order status update commit as one transaction.
//
// There is no idempotency key: processing the same order again appends
// another log row and overwrites the order's status with the new outcome.
func (s *paymentService) Process(ctx context.Context, req *model.PaymentRequest) (*model.PaymentResponse, error) {
	if req == nil || req.OrderID == 0 || req.PaymentMethod == "" {
		return nil, model.ErrMissingRequiredFields
	}

	order, _, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		s.logger.Error().Err(err).Int64("order_id", req.OrderID).Msg("failed to look up order")
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}
	if order == nil {
		s.logger.Debug().Int64("order_id", req.OrderID).Msg("order not found")
		return nil, model.ErrOrderNotFound
	}

	method := payment.ParseMethod(req.PaymentMethod)

	if method.IsCard() {
		card := payment.Card{
			Number: req.CardNumber,
			Holder: req.CardHolder,
			Expiry: req.CardExpiry,
			CVV:    req.CardCVV,
		}
		if !card.Valid() {
			s.logger.Warn().
				Int64("order_id", req.OrderID).
				Str("method", method.String()).
				Msg("invalid card details")
			return nil, model.ErrInvalidCardDetails
		}
	}

	status := payment.Simulate(method)
	transactionID := "TXN_" + uuid.New().String()
	now := time.Now()

	responseData, err := json.Marshal(map[string]any{
		"timestamp": now.UTC().Format(time.RFC3339),
		"method":    req.PaymentMethod,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	tx, err := s.orderRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	// Ensure transaction is rolled back on error
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	log := &model.PaymentLog{
		OrderID:       order.ID,
		PaymentMethod: req.PaymentMethod,
		TransactionID: transactionID,
		Amount:        order.TotalAmount,
		Status:        status,
		ResponseData:  string(responseData),
		CreatedAt:     now,
	}

	if err = s.paymentRepo.RecordPayment(ctx, tx, log); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to record payment")
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	if err = s.orderRepo.UpdatePaymentStatus(ctx, tx, order.ID, status, req.PaymentMethod, now); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to update payment status")
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Int64("order_id", order.ID).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to process payment: %w", err)
	}

	metrics.PaymentAttemptsTotal.Inc()
	metrics.ObservePaymentOutcome(string(status))

	s.publish(ctx, events.TypePaymentProcessed, strconv.FormatInt(order.ID, 10), events.PaymentProcessed{
		OrderID:       order.ID,
		TransactionID: transactionID,
		PaymentMethod: req.PaymentMethod,
		Amount:        order.TotalAmount,
		Status:        string(status),
	})

	s.logger.Info().
		Int64("order_id", order.ID).
		Str("transaction_id", transactionID).
		Str("method", req.PaymentMethod).
		Str("status", string(status)).
		Float64("amount", order.TotalAmount).
		Msg("payment processed")

	message := msgPaymentPending
	if status == model.PaymentStatusCompleted {
		message = msgPaymentCompleted
	}

	return &model.PaymentResponse{
		Success:       true,
		TransactionID: transactionID,
		PaymentStatus: status,
		Amount:        order.TotalAmount,
		Message:       message,
	}, nil
}

// Methods returns the static list of supported payment methods.
func (s *paymentService) Methods() []model.PaymentMethodInfo {
	return payment.Methods()
}

// publish emits a workflow event best-effort.
func (s *paymentService) publish(ctx context.Context, eventType, key string, payload any) {
	if err := s.publisher.PublishEvent(ctx, eventType, key, payload); err != nil {
		s.logger.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish event")
	}
}
