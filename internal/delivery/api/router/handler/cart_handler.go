package handler

import (
	"log/slog"
	"net/http"

	"qkart/config"
	"qkart/internal/delivery/api/response"
	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/constants"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC     usecase.CartUsecase
	CheckoutUC usecase.CheckoutUsecase
	Config     *config.Config
	Logger     *slog.Logger
}

// CartHandler serves the shopper's cart and checkout endpoints
type CartHandler struct {
	cartUC     usecase.CartUsecase
	checkoutUC usecase.CheckoutUsecase
	checkout   *config.CheckoutConfig
	logger     *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	checkoutCfg := &config.CheckoutConfig{}
	if params.Config != nil && params.Config.Checkout != nil {
		checkoutCfg = params.Config.Checkout
	}

	return &CartHandler{
		cartUC:     params.CartUC,
		checkoutUC: params.CheckoutUC,
		checkout:   checkoutCfg,
		logger:     params.Logger,
	}
}

// GetCart returns the shopper's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	email, ok := deliverycontext.GetUserEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), email)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart))
}

// AddToCart adds a new product to the cart, creating the cart on first use
func (h *CartHandler) AddToCart(c echo.Context) error {
	email, ok := deliverycontext.GetUserEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	var req AddToCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	cart, err := h.cartUC.AddToCart(c.Request().Context(), email, uuid.MustParse(req.ProductID), *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCartResponse(cart))
}

// UpdateCart changes the quantity of a line item, or removes it when the quantity is zero
func (h *CartHandler) UpdateCart(c echo.Context) error {
	email, ok := deliverycontext.GetUserEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	var req UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	productID := uuid.MustParse(req.ProductID)
	ctx := c.Request().Context()

	if *req.Quantity == 0 {
		if err := h.cartUC.RemoveFromCart(ctx, email, productID); err != nil {
			return response.HandleAppError(c, err)
		}

		return response.NoContent(c, http.StatusNoContent)
	}

	cart, err := h.cartUC.UpdateQuantity(ctx, email, productID, *req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCartResponse(cart))
}

// Checkout settles the cart against the wallet
func (h *CartHandler) Checkout(c echo.Context) error {
	email, ok := deliverycontext.GetUserEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	key := c.Request().Header.Get(constants.HeaderIdempotencyKey)
	if err := h.validateIdempotencyKey(key); err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.checkoutUC.Checkout(c.Request().Context(), email, key)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Checkout completed",
		slog.String("email", result.Email),
		slog.String("total", result.Total.StringFixed(2)),
		slog.Bool("replayed", result.Replayed),
	)

	return response.NoContent(c, http.StatusNoContent)
}

func (h *CartHandler) validateIdempotencyKey(key string) error {
	if key == "" {
		if h.checkout.RequireIdempotencyKey {
			return domainerrors.ErrIdempotencyKeyRequired
		}

		return nil
	}

	if h.checkout.MaxIdempotencyKeyLength > 0 && len(key) > h.checkout.MaxIdempotencyKeyLength {
		return domainerrors.ErrIdempotencyKeyInvalid.WithDetails("key is too long")
	}

	for _, r := range key {
		if r < 0x21 || r > 0x7e {
			return domainerrors.ErrIdempotencyKeyInvalid.WithDetails("key must be printable ASCII without spaces")
		}
	}

	return nil
}
