package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shopfront/internal/events"
	"shopfront/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPaymentRepository is a mock implementation of PaymentRepository.
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) RecordPayment(ctx context.Context, tx pgx.Tx, log *model.PaymentLog) error {
	args := m.Called(ctx, tx, log)
	return args.Error(0)
}

func testOrder() *model.Order {
	return &model.Order{
		ID:            10,
		OrderNumber:   "ORD_1700000000000",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		TotalAmount:   99.90,
		PaymentStatus: model.PaymentStatusPending,
		OrderStatus:   model.OrderStatusPending,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}
}

func TestPaymentService_Process_Outcomes(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name            string
		req             *model.PaymentRequest
		expectedStatus  model.PaymentStatus
		expectedMessage string
	}{
		{
			name: "E-wallet completes",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "e_wallet",
			},
			expectedStatus:  model.PaymentStatusCompleted,
			expectedMessage: "Payment successful!",
		},
		{
			name: "Credit card completes",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "credit_card",
				CardNumber:    "4111111111111111",
				CardHolder:    "Jane Doe",
				CardExpiry:    "12/27",
				CardCVV:       "123",
			},
			expectedStatus:  model.PaymentStatusCompleted,
			expectedMessage: "Payment successful!",
		},
		{
			name: "Bank transfer pends",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "bank_transfer",
			},
			expectedStatus:  model.PaymentStatusPending,
			expectedMessage: "Payment pending. Please verify or wait for confirmation.",
		},
		{
			name: "Crypto pends",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "crypto",
			},
			expectedStatus:  model.PaymentStatusPending,
			expectedMessage: "Payment pending. Please verify or wait for confirmation.",
		},
		{
			name: "Unknown method fails but is still logged",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "carrier_pigeon",
			},
			expectedStatus:  model.PaymentStatusFailed,
			expectedMessage: "Payment pending. Please verify or wait for confirmation.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := testOrder()

			mockOrderRepo := new(MockOrderRepository)
			mockPaymentRepo := new(MockPaymentRepository)
			mockTx := new(MockTx)

			svc := NewPaymentService(mockOrderRepo, mockPaymentRepo, events.NewNopPublisher(), logger)

			mockOrderRepo.On("GetByID", ctx, tt.req.OrderID).Return(order, []model.OrderItem{}, nil)
			mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
			mockPaymentRepo.On("RecordPayment", ctx, mockTx, mock.MatchedBy(func(log *model.PaymentLog) bool {
				return log.OrderID == order.ID &&
					log.Status == tt.expectedStatus &&
					log.Amount == order.TotalAmount &&
					log.PaymentMethod == tt.req.PaymentMethod
			})).Return(nil)
			mockOrderRepo.On("UpdatePaymentStatus", ctx, mockTx, order.ID, tt.expectedStatus, tt.req.PaymentMethod, mock.AnythingOfType("time.Time")).Return(nil)
			mockTx.On("Commit", ctx).Return(nil)

			resp, err := svc.Process(ctx, tt.req)

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.True(t, resp.Success)
			assert.Equal(t, tt.expectedStatus, resp.PaymentStatus)
			assert.Equal(t, tt.expectedMessage, resp.Message)
			// The charged amount is the stored order total, never client input.
			assert.InDelta(t, order.TotalAmount, resp.Amount, 0.001)
			assert.Contains(t, resp.TransactionID, "TXN_")

			mockOrderRepo.AssertExpectations(t)
			mockPaymentRepo.AssertExpectations(t)
			mockTx.AssertExpectations(t)
		})
	}
}

func TestPaymentService_Process_MissingFields(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockPaymentRepo := new(MockPaymentRepository)

	svc := NewPaymentService(mockOrderRepo, mockPaymentRepo, events.NewNopPublisher(), logger)

	tests := []struct {
		name string
		req  *model.PaymentRequest
	}{
		{name: "Nil request", req: nil},
		{name: "Zero order ID", req: &model.PaymentRequest{PaymentMethod: "e_wallet"}},
		{name: "Empty method", req: &model.PaymentRequest{OrderID: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := svc.Process(ctx, tt.req)

			require.Error(t, err)
			assert.Equal(t, model.ErrMissingRequiredFields, err)
			assert.Nil(t, resp)
		})
	}

	mockOrderRepo.AssertNotCalled(t, "GetByID")
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
}

func TestPaymentService_Process_OrderNotFound(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	mockOrderRepo := new(MockOrderRepository)
	mockPaymentRepo := new(MockPaymentRepository)

	svc := NewPaymentService(mockOrderRepo, mockPaymentRepo, events.NewNopPublisher(), logger)

	mockOrderRepo.On("GetByID", ctx, int64(999)).Return(nil, nil, nil)

	resp, err := svc.Process(ctx, &model.PaymentRequest{OrderID: 999, PaymentMethod: "e_wallet"})

	require.Error(t, err)
	assert.Equal(t, model.ErrOrderNotFound, err)
	assert.Nil(t, resp)

	mockOrderRepo.AssertExpectations(t)
	mockOrderRepo.AssertNotCalled(t, "BeginTx")
	mockPaymentRepo.AssertNotCalled(t, "RecordPayment")
}

func TestPaymentService_Process_InvalidCard(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	tests := []struct {
		name string
		req  *model.PaymentRequest
	}{
		{
			name: "Card number too short",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "credit_card",
				CardNumber:    "411111111111111", // 15 digits
				CardHolder:    "Jane Doe",
				CardExpiry:    "12/27",
				CardCVV:       "123",
			},
		},
		{
			name: "Missing CVV",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "debit_card",
				CardNumber:    "4111111111111111",
				CardHolder:    "Jane Doe",
				CardExpiry:    "12/27",
			},
		},
		{
			name: "Non-numeric card number",
			req: &model.PaymentRequest{
				OrderID:       10,
				PaymentMethod: "credit_card",
				CardNumber:    "4111-1111-1111-11",
				CardHolder:    "Jane Doe",
				CardExpiry:    "12/27",
				CardCVV:       "123",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockOrderRepo := new(MockOrderRepository)
			mockPaymentRepo := new(MockPaymentRepository)

			svc := NewPaymentService(mockOrderRepo, mockPaymentRepo, events.NewNopPublisher(), logger)

			mockOrderRepo.On("GetByID", ctx, tt.req.OrderID).Return(testOrder(), []model.OrderItem{}, nil)

			resp, err := svc.Process(ctx, tt.req)

			require.Error(t, err)
			assert.Equal(t, model.ErrInvalidCardDetails, err)
			assert.Nil(t, resp)

			// A rejected card never reaches storage.
			mockOrderRepo.AssertNotCalled(t, "BeginTx")
			mockPaymentRepo.AssertNotCalled(t, "RecordPayment")
		})
	}
}

func TestPaymentService_Process_TransactionRollback(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	order := testOrder()

	mockOrderRepo := new(MockOrderRepository)
	mockPaymentRepo := new(MockPaymentRepository)
	mockTx := new(MockTx)

	svc := NewPaymentService(mockOrderRepo, mockPaymentRepo, events.NewNopPublisher(), logger)

	// The status update fails after the log insert; both roll back together.
	mockOrderRepo.On("GetByID", ctx, order.ID).Return(order, []model.OrderItem{}, nil)
	mockOrderRepo.On("BeginTx", ctx).Return(mockTx, nil)
	mockPaymentRepo.On("RecordPayment", ctx, mockTx, mock.AnythingOfType("*model.PaymentLog")).Return(nil)
	mockOrderRepo.On("UpdatePaymentStatus", ctx, mockTx, order.ID, model.PaymentStatusCompleted, "e_wallet", mock.AnythingOfType("time.Time")).
		Return(errors.New("database error"))
	mockTx.On("Rollback", ctx).Return(nil)

	resp, err := svc.Process(ctx, &model.PaymentRequest{OrderID: order.ID, PaymentMethod: "e_wallet"})

	require.Error(t, err)
	assert.Nil(t, resp)
	assert.True(t, mockTx.rolledBack)
	assert.False(t, mockTx.committed)

	mockOrderRepo.AssertExpectations(t)
	mockPaymentRepo.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

func TestPaymentService_Methods(t *testing.T) {
	logger := zerolog.Nop()

	svc := NewPaymentService(new(MockOrderRepository), new(MockPaymentRepository), events.NewNopPublisher(), logger)

	methods := svc.Methods()

	require.Len(t, methods, 5)

	ids := make([]string, len(methods))
	for i, m := range methods {
		ids[i] = m.ID
		assert.NotEmpty(t, m.Name)
		assert.NotEmpty(t, m.Icon)
	}
	assert.Equal(t, []string{"credit_card", "debit_card", "bank_transfer", "e_wallet", "crypto"}, ids)
}
