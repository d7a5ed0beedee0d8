package integration

import (
	"context"
	"testing"

	"shopfront/internal/events"
	"shopfront/internal/model"
	"shopfront/internal/repository"
	"shopfront/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOrderPaymentWorkflow exercises the full storefront workflow against a
// real database: affiliate registration, order creation with commission, a
// simulated payment, and the resulting stats.
func TestOrderPaymentWorkflow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	orderRepo := repository.NewOrderRepository(db.Pool, logger)
	paymentRepo := repository.NewPaymentRepository(db.Pool, logger)
	affiliateRepo := repository.NewAffiliateRepository(db.Pool, logger)

	orderService := service.NewOrderService(orderRepo, affiliateRepo, events.NewNopPublisher(), logger)
	paymentService := service.NewPaymentService(orderRepo, paymentRepo, events.NewNopPublisher(), logger)
	affiliateService := service.NewAffiliateService(affiliateRepo, logger)

	productIDs := SeedProducts(t, db.Pool)
	t.Cleanup(func() { CleanupDB(t, db.Pool) })

	// Register an affiliate with a 10% rate.
	rate := 10.0
	regResp, err := affiliateService.Register(ctx, &model.AffiliateRegisterRequest{
		Name:           "Partner",
		Email:          "partner@example.com",
		Platform:       "youtube",
		CommissionRate: &rate,
	})
	require.NoError(t, err)
	require.True(t, regResp.Success)
	affiliateCode := regResp.AffiliateCode

	// Track a click for the code.
	require.NoError(t, affiliateService.Click(ctx, &model.AffiliateClickRequest{
		AffiliateCode: affiliateCode,
		ProductID:     &productIDs[0],
	}))

	// Create an order through the affiliate: 2 x 10.00 + 1 x 20.00 = 40.00.
	orderResp, err := orderService.Create(ctx, &model.OrderRequest{
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		AffiliateCode: &affiliateCode,
		Items: []model.OrderItemRequest{
			{ProductID: productIDs[0], ProductName: "Test Product 1", Price: 10.00, Quantity: 2},
			{ProductID: productIDs[1], ProductName: "Test Product 2", Price: 20.00, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.True(t, orderResp.Success)
	assert.InDelta(t, 40.00, orderResp.TotalAmount, 0.001)
	assert.InDelta(t, 4.00, orderResp.AffiliateCommission, 0.001)

	// The fresh order is pending with both items attached.
	detail, err := orderService.GetByID(ctx, orderResp.OrderID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, model.PaymentStatusPending, detail.PaymentStatus)
	assert.Len(t, detail.Items, 2)

	// Pay with an e-wallet; the simulator completes immediately.
	payResp, err := paymentService.Process(ctx, &model.PaymentRequest{
		OrderID:       orderResp.OrderID,
		PaymentMethod: "e_wallet",
	})
	require.NoError(t, err)
	require.True(t, payResp.Success)
	assert.Equal(t, model.PaymentStatusCompleted, payResp.PaymentStatus)
	assert.InDelta(t, 40.00, payResp.Amount, 0.001)

	// The order transitioned and exactly one payment log row exists.
	detail, err = orderService.GetByID(ctx, orderResp.OrderID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, model.PaymentStatusCompleted, detail.PaymentStatus)
	require.NotNil(t, detail.PaymentMethod)
	assert.Equal(t, "e_wallet", *detail.PaymentMethod)

	var logCount int
	require.NoError(t, db.Pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM payment_logs WHERE order_id = $1", orderResp.OrderID).Scan(&logCount))
	assert.Equal(t, 1, logCount)

	// Stats reflect the click and the completed sale.
	stats, err := affiliateService.Stats(ctx, affiliateCode)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Clicks)
	assert.Equal(t, int64(1), stats.Sales)
	assert.InDelta(t, 4.00, stats.TotalCommission, 0.001)
}

// TestPaymentPendingMethods verifies that deferred-settlement methods leave
// the order pending and still write a payment log.
func TestPaymentPendingMethods(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	orderRepo := repository.NewOrderRepository(db.Pool, logger)
	paymentRepo := repository.NewPaymentRepository(db.Pool, logger)
	affiliateRepo := repository.NewAffiliateRepository(db.Pool, logger)

	orderService := service.NewOrderService(orderRepo, affiliateRepo, events.NewNopPublisher(), logger)
	paymentService := service.NewPaymentService(orderRepo, paymentRepo, events.NewNopPublisher(), logger)

	productIDs := SeedProducts(t, db.Pool)
	t.Cleanup(func() { CleanupDB(t, db.Pool) })

	for _, method := range []string{"bank_transfer", "crypto"} {
		t.Run(method, func(t *testing.T) {
			orderResp, err := orderService.Create(ctx, &model.OrderRequest{
				CustomerName:  "Jane Doe",
				CustomerEmail: "jane@example.com",
				Items: []model.OrderItemRequest{
					{ProductID: productIDs[0], ProductName: "Test Product 1", Price: 10.00, Quantity: 1},
				},
			})
			require.NoError(t, err)

			payResp, err := paymentService.Process(ctx, &model.PaymentRequest{
				OrderID:       orderResp.OrderID,
				PaymentMethod: method,
			})
			require.NoError(t, err)
			assert.Equal(t, model.PaymentStatusPending, payResp.PaymentStatus)

			var status string
			require.NoError(t, db.Pool.QueryRow(ctx,
				"SELECT status FROM payment_logs WHERE order_id = $1", orderResp.OrderID).Scan(&status))
			assert.Equal(t, "pending", status)
		})
	}
}

// TestSocialShareTracking verifies share recording and per-platform counts.
func TestSocialShareTracking(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	socialRepo := repository.NewSocialRepository(db.Pool, logger)
	socialService := service.NewSocialService(socialRepo, logger)

	productIDs := SeedProducts(t, db.Pool)
	t.Cleanup(func() { CleanupDB(t, db.Pool) })

	shares := []model.SocialShareRequest{
		{ProductID: productIDs[0], Platform: "twitter", SharedBy: "jane"},
		{ProductID: productIDs[0], Platform: "twitter"},
		{ProductID: productIDs[0], Platform: "facebook"},
		{ProductID: productIDs[1], Platform: "twitter"},
	}
	for i := range shares {
		require.NoError(t, socialService.Share(ctx, &shares[i]))
	}

	counts, err := socialService.Counts(ctx, productIDs[0])
	require.NoError(t, err)
	require.Len(t, counts, 2)

	byPlatform := make(map[string]int64, len(counts))
	for _, c := range counts {
		byPlatform[c.Platform] = c.Count
	}
	assert.Equal(t, int64(2), byPlatform["twitter"])
	assert.Equal(t, int64(1), byPlatform["facebook"])
}

// TestProductSeedAndList verifies the seed endpoint path through the service
// layer and catalog reads.
func TestProductSeedAndList(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	ctx := context.Background()
	logger := zerolog.Nop()

	productRepo := repository.NewProductRepository(db.Pool, logger)
	productService := service.NewProductService(productRepo, logger)

	t.Cleanup(func() { CleanupDB(t, db.Pool) })

	count, err := productService.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	products, err := productService.GetAll(ctx, 0, 0)
	require.NoError(t, err)
	assert.Len(t, products, 6)

	single, err := productService.GetByID(ctx, products[0].ID)
	require.NoError(t, err)
	require.NotNil(t, single)
	assert.Equal(t, products[0].Name, single.Name)

	missing, err := productService.GetByID(ctx, 999999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
