package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"qkart/config"
	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/constants"
	domainerrors "qkart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "client id kept", incoming: "checkout-7f3a", keep: true},
		{name: "missing id generated"},
		{name: "id with spaces replaced", incoming: "checkout 7f3a"},
		{name: "oversized id replaced", incoming: strings.Repeat("a", maxRequestIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Use(NewRequestIDMiddleware(slog.New(slog.DiscardHandler)).Process)

			var seen string
			e.GET("/v1/cart", func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
				assert.True(t, validRequestID(seen))
			}
		})
	}
}

func TestLoggerMiddleware_RecordsShopperAndErrorCode(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)
	e.PUT("/v1/cart/checkout", func(c echo.Context) error {
		deliverycontext.SetUserEmail(c, "crio-user@qkart.test")

		return domainerrors.ErrCartEmpty
	})

	req := httptest.NewRequest(http.MethodPut, "/v1/cart/checkout", nil)
	req.Header.Set(constants.HeaderIdempotencyKey, "order-2026-10-16")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "crio-user@qkart.test", entry["email"])
	assert.Equal(t, "CART_EMPTY", entry["error_code"])
	assert.Equal(t, "/v1/cart/checkout", entry["route"])
	assert.Equal(t, true, entry["idempotency_key"])
	assert.NotContains(t, buf.String(), "order-2026-10-16")
}

func TestLoggerMiddleware_SilentOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/health", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Zero(t, buf.Len())
}
