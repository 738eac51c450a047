package handler

import (
	"log/slog"
	"net/http"

	"qkart/internal/delivery/api/response"
	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// UserHandler serves the account endpoints the storefront needs at checkout
type UserHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// GetUser returns the account, or only its address when called with ?q=address
func (h *UserHandler) GetUser(c echo.Context) error {
	email, ok := deliverycontext.GetUserEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	user, err := h.accountUC.GetUser(c.Request().Context(), email, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if c.QueryParam("q") == "address" {
		return response.Success(c, http.StatusOK, AddressResponse{Address: addressLine(user.Address)})
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateAddress stores the shipping address on the account
func (h *UserHandler) UpdateAddress(c echo.Context) error {
	email, ok := deliverycontext.GetUserEmail(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user in token")
	}

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateAddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.accountUC.SetAddress(c.Request().Context(), email, userID, req.Address)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, AddressResponse{Address: address.Line})
}
