package router

import (
	"net/http"

	"shopfront/internal/handler"
	"shopfront/internal/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	orderHandler *handler.OrderHandler,
	paymentHandler *handler.PaymentHandler,
	affiliateHandler *handler.AffiliateHandler,
	socialHandler *handler.SocialHandler,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Prometheus metrics endpoint
	mux.Handle("/metrics", promhttp.Handler())

	// Product routes
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" && r.URL.Path != "/api/products/" {
			productHandler.GetByID(w, r)
			return
		}
		productHandler.GetAll(w, r)
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Seed route (development convenience)
	mux.HandleFunc("/api/seed", productHandler.Seed)

	// Order routes
	mux.HandleFunc("/api/orders/create", orderHandler.Create)
	mux.HandleFunc("/api/orders/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/orders/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		orderHandler.GetByID(w, r)
	})

	// Payment routes
	mux.HandleFunc("/api/payment/process", paymentHandler.Process)
	mux.HandleFunc("/api/payment/methods", paymentHandler.Methods)

	// Affiliate routes
	mux.HandleFunc("/api/affiliate/register", affiliateHandler.Register)
	mux.HandleFunc("/api/affiliate/click", affiliateHandler.Click)
	mux.HandleFunc("/api/affiliate/stats/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/affiliate/stats/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		affiliateHandler.Stats(w, r)
	})

	// Social routes
	mux.HandleFunc("/api/social/share", socialHandler.Share)
	mux.HandleFunc("/api/social/shares/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/social/shares/" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		socialHandler.Shares(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS
	var h http.Handler = mux
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}

// Routes returns the route table for startup logging.
func Routes() []string {
	return []string{
		"GET    /api/products              - Get all products",
		"GET    /api/products/{id}         - Get single product",
		"GET    /api/seed                  - Seed database with sample data",
		"POST   /api/orders/create         - Create new order",
		"GET    /api/orders/{order_id}     - Get order details",
		"POST   /api/payment/process       - Process payment",
		"GET    /api/payment/methods       - Get available payment methods",
		"POST   /api/affiliate/register    - Register as affiliate",
		"GET    /api/affiliate/stats/{code} - Get affiliate statistics",
		"POST   /api/affiliate/click       - Track affiliate click",
		"POST   /api/social/share          - Track social media share",
		"GET    /api/social/shares/{id}    - Get share count",
	}
}
