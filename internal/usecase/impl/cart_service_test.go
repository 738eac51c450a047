package impl

import (
	"context"
	"testing"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	mockRepo "qkart/internal/mocks/repository"
	mockSvc "qkart/internal/mocks/service"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	cartRepo    *mockRepo.MockCartRepository
	txCartRepo  *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
	recorder    *mockSvc.MockCartRecorder
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	txCartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	recorder := mockSvc.NewMockCartRecorder(t)

	factory.EXPECT().NewCartRepository().Return(txCartRepo).Maybe()
	factory.EXPECT().NewProductRepository().Return(productRepo).Maybe()

	service := NewCartService(CartServiceParams{
		TxManager: txManager,
		CartRepo:  cartRepo,
		Recorder:  recorder,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return cartServiceFixtures{
		service:     service,
		txManager:   txManager,
		factory:     factory,
		cartRepo:    cartRepo,
		txCartRepo:  txCartRepo,
		productRepo: productRepo,
		recorder:    recorder,
	}
}

func TestCartService_GetCart(t *testing.T) {
	t.Run("returns cart", func(t *testing.T) {
		fx := createTestCartService(t)
		cart := newCart()
		fx.cartRepo.EXPECT().FindByEmail(mock.Anything, testEmail).Return(cart, nil)

		got, err := fx.service.GetCart(context.Background(), testEmail)

		require.NoError(t, err)
		assert.Same(t, cart, got)
	})

	t.Run("no cart", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.cartRepo.EXPECT().FindByEmail(mock.Anything, testEmail).Return(nil, repository.ErrCartNotFound)

		_, err := fx.service.GetCart(context.Background(), testEmail)

		assert.ErrorIs(t, err, domainerrors.ErrCartNotFound)
		assert.Equal(t, domainerrors.KindNotFound, domainerrors.KindOf(err))
	})
}

func TestCartService_AddToCart(t *testing.T) {
	product := newProduct(150)

	t.Run("first add creates cart and appends snapshot", func(t *testing.T) {
		fx := createTestCartService(t)
		ctx := context.Background()

		fx.cartRepo.EXPECT().FindOrCreate(mock.Anything, testEmail, "PAYMENT_OPTION_DEFAULT").Return(newCart(), nil)
		expectTransaction(fx.txManager, fx.factory)
		fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(), nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
		fx.txCartRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(c *entity.Cart) bool {
				return len(c.Items) == 1 && c.Items[0].Product.ID == product.ID && c.Items[0].Quantity == 2
			})).
			Return(nil)
		fx.recorder.EXPECT().RecordCartOperation("add", true).Return()

		cart, err := fx.service.AddToCart(ctx, testEmail, product.ID, 2)

		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.True(t, product.Cost.Equal(cart.Items[0].Product.Cost))
	})

	t.Run("duplicate product is a conflict", func(t *testing.T) {
		fx := createTestCartService(t)

		fx.cartRepo.EXPECT().FindOrCreate(mock.Anything, testEmail, mock.Anything).Return(newCart(lineItem(product, 1)), nil)
		expectTransaction(fx.txManager, fx.factory)
		fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
		fx.recorder.EXPECT().RecordCartOperation("add", false).Return()

		_, err := fx.service.AddToCart(context.Background(), testEmail, product.ID, 3)

		assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyInCart)
		assert.Equal(t, domainerrors.KindConflict, domainerrors.KindOf(err))
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCartService(t)
		unknown := uuid.New()

		fx.cartRepo.EXPECT().FindOrCreate(mock.Anything, testEmail, mock.Anything).Return(newCart(), nil)
		expectTransaction(fx.txManager, fx.factory)
		fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(), nil)
		fx.productRepo.EXPECT().FindByID(mock.Anything, unknown).Return(nil, repository.ErrProductNotFound)
		fx.recorder.EXPECT().RecordCartOperation("add", false).Return()

		_, err := fx.service.AddToCart(context.Background(), testEmail, unknown, 1)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
		assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	})

	t.Run("cart creation failure", func(t *testing.T) {
		fx := createTestCartService(t)

		fx.cartRepo.EXPECT().FindOrCreate(mock.Anything, testEmail, mock.Anything).Return(nil, errors.New("connection refused"))
		fx.recorder.EXPECT().RecordCartOperation("add", false).Return()

		_, err := fx.service.AddToCart(context.Background(), testEmail, product.ID, 1)

		assert.ErrorIs(t, err, domainerrors.ErrCartCreationFailed)
		assert.Equal(t, domainerrors.KindInternal, domainerrors.KindOf(err))
	})

	t.Run("non positive quantity", func(t *testing.T) {
		fx := createTestCartService(t)
		fx.recorder.EXPECT().RecordCartOperation("add", false).Return()

		_, err := fx.service.AddToCart(context.Background(), testEmail, product.ID, 0)

		assert.ErrorIs(t, err, domainerrors.ErrInvalidQuantity)
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	product := newProduct(80)
	other := newProduct(20)

	tests := []struct {
		name      string
		quantity  int
		productID uuid.UUID
		setup     func(fx cartServiceFixtures)
		wantErr   error
		wantQty   int
	}{
		{
			name:      "overwrites quantity",
			quantity:  5,
			productID: product.ID,
			setup: func(fx cartServiceFixtures) {
				expectTransaction(fx.txManager, fx.factory)
				fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
				fx.productRepo.EXPECT().FindByID(mock.Anything, product.ID).Return(product, nil)
				fx.txCartRepo.EXPECT().Save(mock.Anything, mock.AnythingOfType("*entity.Cart")).Return(nil)
				fx.recorder.EXPECT().RecordCartOperation("update", true).Return()
			},
			wantQty: 5,
		},
		{
			name:      "no cart",
			quantity:  2,
			productID: product.ID,
			setup: func(fx cartServiceFixtures) {
				expectTransaction(fx.txManager, fx.factory)
				fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(nil, repository.ErrCartNotFound)
				fx.recorder.EXPECT().RecordCartOperation("update", false).Return()
			},
			wantErr: domainerrors.ErrCartRequired,
		},
		{
			name:      "unknown product",
			quantity:  2,
			productID: other.ID,
			setup: func(fx cartServiceFixtures) {
				expectTransaction(fx.txManager, fx.factory)
				fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
				fx.productRepo.EXPECT().FindByID(mock.Anything, other.ID).Return(nil, repository.ErrProductNotFound)
				fx.recorder.EXPECT().RecordCartOperation("update", false).Return()
			},
			wantErr: domainerrors.ErrProductNotFound,
		},
		{
			name:      "product not in cart",
			quantity:  2,
			productID: other.ID,
			setup: func(fx cartServiceFixtures) {
				expectTransaction(fx.txManager, fx.factory)
				fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(product, 1)), nil)
				fx.productRepo.EXPECT().FindByID(mock.Anything, other.ID).Return(other, nil)
				fx.recorder.EXPECT().RecordCartOperation("update", false).Return()
			},
			wantErr: domainerrors.ErrProductNotInCart,
		},
		{
			name:      "zero quantity",
			quantity:  0,
			productID: product.ID,
			setup: func(fx cartServiceFixtures) {
				fx.recorder.EXPECT().RecordCartOperation("update", false).Return()
			},
			wantErr: domainerrors.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestCartService(t)
			tt.setup(fx)

			cart, err := fx.service.UpdateQuantity(context.Background(), testEmail, tt.productID, tt.quantity)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, cart)

				return
			}

			require.NoError(t, err)
			require.Len(t, cart.Items, 1)
			assert.Equal(t, tt.wantQty, cart.Items[0].Quantity)
		})
	}
}

func TestCartService_RemoveFromCart(t *testing.T) {
	product := newProduct(80)
	kept := newProduct(35)

	t.Run("removes item and keeps order", func(t *testing.T) {
		fx := createTestCartService(t)

		expectTransaction(fx.txManager, fx.factory)
		fx.txCartRepo.EXPECT().
			FindByEmailForUpdate(mock.Anything, testEmail).
			Return(newCart(lineItem(product, 1), lineItem(kept, 2)), nil)
		fx.txCartRepo.EXPECT().
			Save(mock.Anything, mock.MatchedBy(func(c *entity.Cart) bool {
				return len(c.Items) == 1 && c.Items[0].Product.ID == kept.ID
			})).
			Return(nil)
		fx.recorder.EXPECT().RecordCartOperation("remove", true).Return()

		require.NoError(t, fx.service.RemoveFromCart(context.Background(), testEmail, product.ID))
	})

	t.Run("no cart", func(t *testing.T) {
		fx := createTestCartService(t)

		expectTransaction(fx.txManager, fx.factory)
		fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(nil, repository.ErrCartNotFound)
		fx.recorder.EXPECT().RecordCartOperation("remove", false).Return()

		err := fx.service.RemoveFromCart(context.Background(), testEmail, product.ID)

		assert.ErrorIs(t, err, domainerrors.ErrCartMissing)
		assert.Equal(t, domainerrors.KindBadRequest, domainerrors.KindOf(err))
	})

	t.Run("product not in cart", func(t *testing.T) {
		fx := createTestCartService(t)

		expectTransaction(fx.txManager, fx.factory)
		fx.txCartRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(newCart(lineItem(kept, 1)), nil)
		fx.recorder.EXPECT().RecordCartOperation("remove", false).Return()

		err := fx.service.RemoveFromCart(context.Background(), testEmail, product.ID)

		assert.ErrorIs(t, err, domainerrors.ErrProductNotInCart)
	})
}
