// Package metrics exposes prometheus collectors for the cart and checkout flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"qkart/config"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/service"
	"qkart/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "qkart"

// Metrics holds the service's collectors on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	requests       *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	cartOperations *prometheus.CounterVec
	checkouts      *prometheus.CounterVec
	checkoutAmount prometheus.Histogram
}

// New creates and registers the collectors.
func New(cfg *config.Config) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_ms",
			Help:      "HTTP request latency in milliseconds.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
		}, []string{"method", "route"}),
		cartOperations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_operations_total",
			Help:      "Cart mutations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		checkouts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_total",
			Help:      "Checkout attempts by outcome.",
		}, []string{"outcome"}),
		checkoutAmount: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "checkout_amount",
			Help:      "Wallet amount debited by successful checkouts.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}),
	}

	registry.MustRegister(
		m.requests,
		m.latency,
		m.cartOperations,
		m.checkouts,
		m.checkoutAmount,
	)

	if cfg != nil && cfg.Metrics != nil && cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return m
}

// RecordCheckout implements service.CheckoutRecorder.
func (m *Metrics) RecordCheckout(outcome service.CheckoutOutcome, amount decimal.Decimal) {
	m.checkouts.WithLabelValues(string(outcome)).Inc()
	if outcome == service.CheckoutSucceeded {
		m.checkoutAmount.Observe(amount.InexactFloat64())
	}
}

// RecordCartOperation implements service.CartRecorder.
func (m *Metrics) RecordCartOperation(operation string, success bool) {
	outcome := "success"
	if !success {
		outcome = "error"
	}
	m.cartOperations.WithLabelValues(operation, outcome).Inc()
}

// Middleware counts requests and observes latency per matched route.
func (m *Metrics) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil && !c.Response().Committed {
				status = statusOf(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			m.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			m.latency.WithLabelValues(method, route).Observe(float64(time.Since(start).Milliseconds()))

			return err
		}
	}
}

// statusOf predicts the status the HTTP error handler will write for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
