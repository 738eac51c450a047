package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		logger:    params.Logger,
	}
}

// GetUser returns the requester's own account.
func (srv *accountService) GetUser(ctx context.Context, requesterEmail string, userID uuid.UUID) (*entity.User, error) {
	return srv.findOwned(ctx, requesterEmail, userID)
}

// SetAddress stores a shipping address on the requester's own account.
func (srv *accountService) SetAddress(ctx context.Context, requesterEmail string, userID uuid.UUID, address string) (entity.Address, error) {
	next := entity.NewAddress(address)
	if !next.IsSet() {
		return entity.Address{}, domainerrors.ErrAddressInvalid
	}

	owner, err := srv.findOwned(ctx, requesterEmail, userID)
	if err != nil {
		return entity.Address{}, err
	}

	// The row is re-read under lock so a concurrent checkout debit is not overwritten.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmailForUpdate(ctx, owner.Email)
		if err != nil {
			return errors.Wrap(err, "failed to lock user")
		}

		user.Address = next

		return errors.Wrap(userRepo.Update(ctx, user), "failed to update user")
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Error("Failed to update address",
			slog.String("user_id", userID.String()),
			slog.Any("error", err),
		)

		if errors.Is(err, repository.ErrUserNotFound) {
			return entity.Address{}, domainerrors.ErrUserNotFound
		}

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return entity.Address{}, errors.Wrap(err, "failed to set address")
		}

		return entity.Address{}, domainerrors.ErrUserUpdateFailed.WrapMessage(err.Error())
	}

	return next, nil
}

func (srv *accountService) findOwned(ctx context.Context, requesterEmail string, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if !strings.EqualFold(user.Email, requesterEmail) {
		return nil, domainerrors.ErrForbidden
	}

	return user, nil
}
