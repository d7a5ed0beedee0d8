package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for monitoring the order/payment workflow
var (
	OrdersCreatedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total number of orders created",
		},
	)

	OrderCreateDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "order_create_duration_seconds",
			Help:    "Duration of order creation",
			Buckets: prometheus.DefBuckets,
		},
	)

	PaymentAttemptsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payment_attempts_total",
			Help: "Total number of payment attempts processed",
		},
	)

	PaymentsCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_completed_total",
			Help: "Total number of payments that completed",
		},
	)

	PaymentsPendingTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_pending_total",
			Help: "Total number of payments left pending confirmation",
		},
	)

	PaymentsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "payments_failed_total",
			Help: "Total number of payments that failed",
		},
	)

	HTTPRequestDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(OrdersCreatedTotal)
	prometheus.MustRegister(OrderCreateDuration)
	prometheus.MustRegister(PaymentAttemptsTotal)
	prometheus.MustRegister(PaymentsCompletedTotal)
	prometheus.MustRegister(PaymentsPendingTotal)
	prometheus.MustRegister(PaymentsFailedTotal)
	prometheus.MustRegister(HTTPRequestDuration)
}

// ObservePaymentOutcome increments the counter matching a payment status.
func ObservePaymentOutcome(status string) {
	switch status {
	case "completed":
		PaymentsCompletedTotal.Inc()
	case "pending":
		PaymentsPendingTotal.Inc()
	default:
		PaymentsFailedTotal.Inc()
	}
}
