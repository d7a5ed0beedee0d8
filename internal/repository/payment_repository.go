package repository

import (
	"context"
	"fmt"

	"shopfront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// paymentRepository implements the PaymentRepository interface using PostgreSQL.
type paymentRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPaymentRepository creates a new PostgreSQL-backed payment log repository.
func NewPaymentRepository(pool *pgxpool.Pool, logger zerolog.Logger) PaymentRepository {
	return &paymentRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "payment").Logger(),
	}
}

// RecordPayment inserts one payment log row within the provided transaction.
// The log is append-only; rows are never updated or deleted.
func (r *paymentRepository) RecordPayment(ctx context.Context, tx pgx.Tx, log *model.PaymentLog) error {
	query := `
		INSERT INTO payment_logs (order_id, payment_method, transaction_id, amount, status, response_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := tx.QueryRow(ctx, query,
		log.OrderID,
		log.PaymentMethod,
		log.TransactionID,
		log.Amount,
		log.Status,
		log.ResponseData,
		log.CreatedAt,
	).Scan(&log.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int64("order_id", log.OrderID).
			Str("transaction_id", log.TransactionID).
			Msg("failed to record payment")
		return fmt.Errorf("failed to record payment: %w", err)
	}

	r.logger.Debug().
		Int64("order_id", log.OrderID).
		Str("transaction_id", log.TransactionID).
		Str("status", string(log.Status)).
		Msg("payment recorded")

	return nil
}
