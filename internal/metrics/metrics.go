package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "havenhues"

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	Settlements = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "settlements_total", Help: "Booking settlements by payment method and outcome."},
		[]string{"method", "outcome"},
	)
	CouponApplications = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "coupon_applications_total", Help: "Coupon applications by outcome."},
		[]string{"outcome"},
	)
	Cancellations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "cancellations_total", Help: "Cancellation lifecycle events."},
		[]string{"event"}, // requested|accepted|rejected
	)
	Reminders = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "reminders_total", Help: "Check-in reminders by outcome."},
		[]string{"outcome"}, // sent|failed|skipped
	)
	LedgerEntries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: namespace, Name: "ledger_entries_total", Help: "Wallet ledger entries appended."},
		[]string{"kind"}, // credit|debit
	)
	GatewayLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace, Name: "gateway_request_duration_seconds",
			Help:    "Payment gateway call duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "outcome"},
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		HTTPRequests, HTTPLatency,
		Settlements, CouponApplications, Cancellations, Reminders, LedgerEntries,
		GatewayLatency,
	)
	return reg
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveSettlement(method, outcome string) {
	Settlements.WithLabelValues(method, outcome).Inc()
}

func ObserveCoupon(outcome string) {
	CouponApplications.WithLabelValues(outcome).Inc()
}

func ObserveCancellation(event string) {
	Cancellations.WithLabelValues(event).Inc()
}

func ObserveReminder(outcome string) {
	Reminders.WithLabelValues(outcome).Inc()
}

func ObserveLedger(kind string) {
	LedgerEntries.WithLabelValues(kind).Inc()
}

func ObserveGateway(operation string, err error, dur time.Duration) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	GatewayLatency.WithLabelValues(operation, outcome).Observe(dur.Seconds())
}
