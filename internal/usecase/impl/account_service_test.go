package impl

import (
	"context"
	"testing"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	mockRepo "qkart/internal/mocks/repository"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service    usecase.AccountUsecase
	txManager  *mockRepo.MockTransactionManager
	factory    *mockRepo.MockRepositoryFactory
	userRepo   *mockRepo.MockUserRepository
	txUserRepo *mockRepo.MockUserRepository
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	txUserRepo := mockRepo.NewMockUserRepository(t)

	factory.EXPECT().NewUserRepository().Return(txUserRepo).Maybe()

	return accountServiceFixtures{
		service: NewAccountService(AccountServiceParams{
			TxManager: txManager,
			UserRepo:  userRepo,
			Logger:    newDiscardLogger(),
		}),
		txManager:  txManager,
		factory:    factory,
		userRepo:   userRepo,
		txUserRepo: txUserRepo,
	}
}

func TestAccountService_GetUser(t *testing.T) {
	t.Run("own account", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := newShopper(500, "")
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		got, err := fx.service.GetUser(context.Background(), "Crio-User@qkart.test", user.ID)

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("someone else's account", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := newShopper(500, "")
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		_, err := fx.service.GetUser(context.Background(), "intruder@qkart.test", user.ID)

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("unknown account", func(t *testing.T) {
		fx := createTestAccountService(t)
		id := uuid.New()
		fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.GetUser(context.Background(), testEmail, id)

		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAccountService_SetAddress(t *testing.T) {
	t.Run("stores trimmed address under lock", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := newShopper(500, "")
		locked := newShopper(200, "")
		locked.ID = user.ID

		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)
		expectTransaction(fx.txManager, fx.factory)
		fx.txUserRepo.EXPECT().FindByEmailForUpdate(mock.Anything, testEmail).Return(locked, nil)
		fx.txUserRepo.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(u *entity.User) bool {
				return u.Address.IsSet() && u.Address.Line == "No. 2, Crio Street" && u.WalletMoney.Equal(locked.WalletMoney)
			})).
			Return(nil)

		address, err := fx.service.SetAddress(context.Background(), testEmail, user.ID, "  No. 2, Crio Street ")

		require.NoError(t, err)
		assert.Equal(t, entity.AddressSet, address.Status)
		assert.Equal(t, "No. 2, Crio Street", address.Line)
	})

	t.Run("blank address", func(t *testing.T) {
		fx := createTestAccountService(t)

		_, err := fx.service.SetAddress(context.Background(), testEmail, uuid.New(), "   ")

		assert.ErrorIs(t, err, domainerrors.ErrAddressInvalid)
	})

	t.Run("someone else's account", func(t *testing.T) {
		fx := createTestAccountService(t)
		user := newShopper(500, "")
		fx.userRepo.EXPECT().FindByID(mock.Anything, user.ID).Return(user, nil)

		_, err := fx.service.SetAddress(context.Background(), "intruder@qkart.test", user.ID, "Somewhere")

		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}
