package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qkart/config"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_RecordCheckout(t *testing.T) {
	m := New(&config.Config{})

	m.RecordCheckout(service.CheckoutSucceeded, decimal.NewFromInt(400))
	m.RecordCheckout(service.CheckoutRejected, decimal.Zero)
	m.RecordCheckout(service.CheckoutRejected, decimal.Zero)

	assert.InDelta(t, 1, testutil.ToFloat64(m.checkouts.WithLabelValues("success")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.checkouts.WithLabelValues("rejected")), 0)
	assert.Equal(t, 1, testutil.CollectAndCount(m.checkoutAmount))
}

func TestMetrics_RecordCartOperation(t *testing.T) {
	m := New(&config.Config{})

	m.RecordCartOperation("add", true)
	m.RecordCartOperation("add", false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.cartOperations.WithLabelValues("add", "success")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.cartOperations.WithLabelValues("add", "error")), 0)
}

func TestMetrics_MiddlewareLabelsAppErrors(t *testing.T) {
	m := New(&config.Config{})
	e := echo.New()
	e.Use(m.Middleware())
	e.GET("/v1/cart", func(c echo.Context) error {
		return domainerrors.ErrCartNotFound
	})
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/v1/cart", "/health"} {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/v1/cart", "404")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/health", "200")), 0)
}

func TestMetrics_Handler(t *testing.T) {
	m := New(&config.Config{})
	m.RecordCheckout(service.CheckoutSucceeded, decimal.NewFromInt(10))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `qkart_checkout_total{outcome="success"} 1`))
}
