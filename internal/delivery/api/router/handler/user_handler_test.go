package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	mockusecase "qkart/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupUserHandler(t *testing.T) (*UserHandler, *mockusecase.MockAccountUsecase) {
	t.Helper()

	accountUC := mockusecase.NewMockAccountUsecase(t)

	return NewUserHandler(UserHandlerParams{
		AccountUC: accountUC,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}), accountUC
}

func TestUserHandler_GetUser(t *testing.T) {
	userID := uuid.New()
	user := &entity.User{
		ID:          userID,
		Email:       testEmail,
		Name:        "crio-user",
		WalletMoney: decimal.NewFromInt(500),
	}

	t.Run("full account", func(t *testing.T) {
		h, accountUC := setupUserHandler(t)
		accountUC.EXPECT().GetUser(mock.Anything, testEmail, userID).Return(user, nil)

		c, rec := newTestContext(http.MethodGet, "/v1/users/"+userID.String(), "")
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())
		require.NoError(t, h.GetUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body struct {
			Data UserResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, testEmail, body.Data.Email)
		assert.Equal(t, legacyUnsetAddress, body.Data.Address)
		assert.Equal(t, "UNSET", body.Data.AddressStatus)
	})

	t.Run("address only", func(t *testing.T) {
		h, accountUC := setupUserHandler(t)
		withAddress := *user
		withAddress.Address = entity.NewAddress("No. 2, Crio Street")
		accountUC.EXPECT().GetUser(mock.Anything, testEmail, userID).Return(&withAddress, nil)

		c, rec := newTestContext(http.MethodGet, "/v1/users/"+userID.String()+"?q=address", "")
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())
		require.NoError(t, h.GetUser(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"address":"No. 2, Crio Street"}`, dataOf(t, rec.Body.Bytes()))
	})

	t.Run("other user's account", func(t *testing.T) {
		h, accountUC := setupUserHandler(t)
		accountUC.EXPECT().GetUser(mock.Anything, testEmail, userID).Return(nil, domainerrors.ErrForbidden)

		c, rec := newTestContext(http.MethodGet, "/v1/users/"+userID.String(), "")
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())
		require.NoError(t, h.GetUser(c))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		h, _ := setupUserHandler(t)

		c, rec := newTestContext(http.MethodGet, "/v1/users/abc", "")
		c.SetParamNames("userId")
		c.SetParamValues("abc")
		require.NoError(t, h.GetUser(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_UpdateAddress(t *testing.T) {
	userID := uuid.New()

	t.Run("sets address", func(t *testing.T) {
		h, accountUC := setupUserHandler(t)
		accountUC.EXPECT().
			SetAddress(mock.Anything, testEmail, userID, "No. 2, Crio Street").
			Return(entity.NewAddress("No. 2, Crio Street"), nil)

		c, rec := newTestContext(http.MethodPut, "/v1/users/"+userID.String(), `{"address":"No. 2, Crio Street"}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())
		require.NoError(t, h.UpdateAddress(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"address":"No. 2, Crio Street"}`, dataOf(t, rec.Body.Bytes()))
	})

	t.Run("missing address", func(t *testing.T) {
		h, _ := setupUserHandler(t)

		c, rec := newTestContext(http.MethodPut, "/v1/users/"+userID.String(), `{}`)
		c.SetParamNames("userId")
		c.SetParamValues(userID.String())
		require.NoError(t, h.UpdateAddress(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})
}

func dataOf(t *testing.T, raw []byte) string {
	t.Helper()

	var body struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &body))

	return string(body.Data)
}
