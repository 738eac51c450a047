package impl

import (
	"context"
	"testing"

	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/domain/service"
	mockRepo "qkart/internal/mocks/repository"
	mockSvc "qkart/internal/mocks/service"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// checkoutServiceFixtures holds all test dependencies for checkout service tests.
type checkoutServiceFixtures struct {
	service         usecase.CheckoutUsecase
	txManager       *mockRepo.MockTransactionManager
	factory         *mockRepo.MockRepositoryFactory
	cartRepo        *mockRepo.MockCartRepository
	userRepo        *mockRepo.MockUserRepository
	idempotencyRepo *mockRepo.MockIdempotencyRepository
	publisher       *mockSvc.MockEventPublisher
	recorder        *mockSvc.MockCheckoutRecorder
}

func createTestCheckoutService(t *testing.T) checkoutServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	idempotencyRepo := mockRepo.NewMockIdempotencyRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	recorder := mockSvc.NewMockCheckoutRecorder(t)

	factory.EXPECT().NewCartRepository().Return(cartRepo).Maybe()
	factory.EXPECT().NewUserRepository().Return(userRepo).Maybe()
	factory.EXPECT().NewIdempotencyRepository().Return(idempotencyRepo).Maybe()
	expectTransaction(txManager, factory)

	service := NewCheckoutService(CheckoutServiceParams{
		TxManager: txManager,
		Publisher: publisher,
		Recorder:  recorder,
		Logger:    newDiscardLogger(),
	})

	return checkoutServiceFixtures{
		service:         service,
		txManager:       txManager,
		factory:         factory,
		cartRepo:        cartRepo,
		userRepo:        userRepo,
		idempotencyRepo: idempotencyRepo,
		publisher:       publisher,
		recorder:        recorder,
	}
}

func newShopper(wallet int64, address string) *entity.User {
	return &entity.User{
		ID:          uuid.New(),
		Email:       testEmail,
		Name:        "crio-user",
		WalletMoney: decimal.NewFromInt(wallet),
		Address:     entity.NewAddress(address),
	}
}

func TestCheckoutService_Checkout_Success(t *testing.T) {
	fx := createTestCheckoutService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	watch := newProduct(100)
	bag := newProduct(50)
	cart := newCart(lineItem(watch, 2), lineItem(bag, 1))

	fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(cart, nil)
	fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, "No. 2, Crio Street"), nil)
	fx.userRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
			return u.WalletMoney.Equal(decimal.NewFromInt(250))
		})).
		Return(nil)
	fx.cartRepo.EXPECT().
		Save(mock.Anything, mock.MatchedBy(func(c *entity.Cart) bool {
			return c.Items != nil && len(c.Items) == 0
		})).
		Return(nil)
	fx.recorder.EXPECT().
		RecordCheckout(service.CheckoutSucceeded, mock.MatchedBy(func(d decimal.Decimal) bool {
			return d.Equal(decimal.NewFromInt(250))
		})).
		Return()
	fx.publisher.EXPECT().
		PublishCheckoutEvent(mock.Anything, mock.MatchedBy(func(e *service.CheckoutEvent) bool {
			return e.Email == testEmail && e.Total == "250.00" && e.ItemCount == 2 && e.RequestID == "req-42"
		})).
		Return(nil)

	result, err := fx.service.Checkout(ctx, testEmail, "")

	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(250).Equal(result.Total))
	assert.Equal(t, 2, result.ItemCount)
	assert.False(t, result.Replayed)
}

func TestCheckoutService_Checkout_ExactBalanceSucceeds(t *testing.T) {
	fx := createTestCheckoutService(t)
	product := newProduct(250)

	fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 2)), nil)
	fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, "No. 2, Crio Street"), nil)
	fx.userRepo.EXPECT().
		Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool { return u.WalletMoney.IsZero() })).
		Return(nil)
	fx.cartRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Cart")).Return(nil)
	fx.recorder.EXPECT().RecordCheckout(service.CheckoutSucceeded, mock.Anything).Return()
	fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, mock.Anything).Return(nil)

	_, err := fx.service.Checkout(context.Background(), testEmail, "")

	require.NoError(t, err)
}

func TestCheckoutService_Checkout_Rejected(t *testing.T) {
	product := newProduct(300)

	tests := []struct {
		name    string
		setup   func(fx checkoutServiceFixtures)
		wantErr error
		kind    domainerrors.Kind
	}{
		{
			name: "no cart",
			setup: func(fx checkoutServiceFixtures) {
				fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(nil, repository.ErrCartNotFound)
			},
			wantErr: domainerrors.ErrCartNotFound,
			kind:    domainerrors.KindNotFound,
		},
		{
			name: "empty cart",
			setup: func(fx checkoutServiceFixtures) {
				fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(), nil)
			},
			wantErr: domainerrors.ErrCartEmpty,
			kind:    domainerrors.KindBadRequest,
		},
		{
			name: "address not set",
			setup: func(fx checkoutServiceFixtures) {
				fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
				fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, ""), nil)
			},
			wantErr: domainerrors.ErrAddressNotSet,
			kind:    domainerrors.KindBadRequest,
		},
		{
			name: "insufficient balance",
			setup: func(fx checkoutServiceFixtures) {
				fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 2)), nil)
				fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, "No. 2, Crio Street"), nil)
			},
			wantErr: domainerrors.ErrInsufficientBalance,
			kind:    domainerrors.KindBadRequest,
		},
		{
			name: "user missing",
			setup: func(fx checkoutServiceFixtures) {
				fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
				fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(nil, repository.ErrUserNotFound)
			},
			wantErr: domainerrors.ErrUserNotFound,
			kind:    domainerrors.KindNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCheckoutService(t)
			tt.setup(fx)
			fx.recorder.EXPECT().RecordCheckout(service.CheckoutRejected, mock.Anything).Return()

			result, err := fx.service.Checkout(context.Background(), testEmail, "")

			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.kind, domainerrors.KindOf(err))
		})
	}
}

func TestCheckoutService_Checkout_StorageFailure(t *testing.T) {
	fx := createTestCheckoutService(t)
	product := newProduct(100)

	fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
	fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, "No. 2, Crio Street"), nil)
	fx.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().
		Save(mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to save cart"))
	fx.recorder.EXPECT().RecordCheckout(service.CheckoutFailed, mock.Anything).Return()

	_, err := fx.service.Checkout(context.Background(), testEmail, "")

	require.Error(t, err)
	assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
}

func TestCheckoutService_Checkout_PublishFailureIsNotAnError(t *testing.T) {
	fx := createTestCheckoutService(t)
	product := newProduct(100)

	fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
	fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, "No. 2, Crio Street"), nil)
	fx.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
	fx.cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	fx.recorder.EXPECT().RecordCheckout(service.CheckoutSucceeded, mock.Anything).Return()
	fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, mock.Anything).Return(errors.New("broker unavailable"))

	result, err := fx.service.Checkout(context.Background(), testEmail, "")

	require.NoError(t, err)
	assert.NotNil(t, result)
}

func TestCheckoutService_Checkout_IdempotencyKey(t *testing.T) {
	t.Run("fresh key is claimed in the transaction", func(t *testing.T) {
		fx := createTestCheckoutService(t)
		product := newProduct(100)

		fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
		fx.idempotencyRepo.EXPECT().Claim(mock.Anything, testEmail, "key-1").Return(nil)
		fx.userRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newShopper(500, "No. 2, Crio Street"), nil)
		fx.userRepo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)
		fx.cartRepo.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
		fx.recorder.EXPECT().RecordCheckout(service.CheckoutSucceeded, mock.Anything).Return()
		fx.publisher.EXPECT().PublishCheckoutEvent(mock.Anything, mock.Anything).Return(nil)

		result, err := fx.service.Checkout(context.Background(), testEmail, "key-1")

		require.NoError(t, err)
		assert.False(t, result.Replayed)
	})

	t.Run("used key is replayed without debit", func(t *testing.T) {
		fx := createTestCheckoutService(t)

		fx.cartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(), nil)
		fx.idempotencyRepo.EXPECT().Claim(mock.Anything, testEmail, "key-1").Return(repository.ErrIdempotencyKeyUsed)
		fx.recorder.EXPECT().RecordCheckout(service.CheckoutReplayed, mock.Anything).Return()

		result, err := fx.service.Checkout(context.Background(), testEmail, "key-1")

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		fx.publisher.AssertNotCalled(t, "PublishCheckoutEvent", mock.Anything, mock.Anything)
	})
}
