package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/domain/service"
	"qkart/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// checkoutService implements the CheckoutUsecase interface.
type checkoutService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	recorder  service.CheckoutRecorder
	now       func() time.Time
	logger    *slog.Logger
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher   `optional:"true"`
	Recorder  service.CheckoutRecorder `optional:"true"`
	Logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		recorder:  params.Recorder,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Checkout debits the cart total from the wallet and clears the cart in a single transaction.
func (srv *checkoutService) Checkout(ctx context.Context, email, idempotencyKey string) (*entity.CheckoutResult, error) {
	var result *entity.CheckoutResult

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		settled, err := srv.settle(ctx, repoFactory, email, idempotencyKey)
		if err != nil {
			return err
		}

		result = settled

		return nil
	})
	if err != nil {
		outcome := service.CheckoutRejected
		if domainerrors.KindOf(err) == domainerrors.KindInternal {
			outcome = service.CheckoutFailed
			srv.log(ctx).Error("Checkout transaction failed", slog.String("email", email), slog.Any("error", err))
		}
		srv.record(outcome, decimal.Zero)

		return nil, errors.Wrap(err, "failed to checkout")
	}

	if result.Replayed {
		srv.log(ctx).Info("Checkout replayed", slog.String("email", email))
		srv.record(service.CheckoutReplayed, decimal.Zero)

		return result, nil
	}

	srv.record(service.CheckoutSucceeded, result.Total)
	srv.publish(ctx, result)

	return result, nil
}

// settle runs the checkout steps on repositories bound to one transaction.
func (srv *checkoutService) settle(ctx context.Context, repoFactory repository.RepositoryFactory, email, idempotencyKey string) (*entity.CheckoutResult, error) {
	cartRepo := repoFactory.NewCartRepository()
	userRepo := repoFactory.NewUserRepository()

	cart, err := cartRepo.FindByEmailForUpdate(ctx, email)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock cart")
	}

	if idempotencyKey != "" {
		// The cart lock serialises retries, so a used key is seen only after its checkout committed.
		err := repoFactory.NewIdempotencyRepository().Claim(ctx, email, idempotencyKey)
		if errors.Is(err, repository.ErrIdempotencyKeyUsed) {
			return &entity.CheckoutResult{
				Email:         email,
				Total:         decimal.Zero,
				PaymentOption: cart.PaymentOption,
				Replayed:      true,
				CompletedAt:   srv.now(),
			}, nil
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to claim idempotency key")
		}
	}

	if cart.IsEmpty() {
		return nil, domainerrors.ErrCartEmpty
	}

	user, err := userRepo.FindByEmailForUpdate(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to lock user")
	}

	if !user.HasSetNonDefaultAddress() {
		return nil, domainerrors.ErrAddressNotSet
	}

	total := cart.Total()
	if !user.CanAfford(total) {
		return nil, domainerrors.ErrInsufficientBalance
	}

	user.Debit(total)
	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to debit wallet")
	}

	itemCount := cart.ItemCount()
	cart.Clear()
	if err := cartRepo.Save(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to clear cart")
	}

	return &entity.CheckoutResult{
		Email:         email,
		Total:         total,
		ItemCount:     itemCount,
		PaymentOption: cart.PaymentOption,
		CompletedAt:   srv.now(),
	}, nil
}

func (srv *checkoutService) record(outcome service.CheckoutOutcome, amount decimal.Decimal) {
	if srv.recorder != nil {
		srv.recorder.RecordCheckout(outcome, amount)
	}
}

// publish emits the checkout event. The checkout has committed, so failures are only logged.
func (srv *checkoutService) publish(ctx context.Context, result *entity.CheckoutResult) {
	if srv.publisher == nil {
		return
	}

	event := &service.CheckoutEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		Email:         result.Email,
		Total:         result.Total.StringFixed(2),
		ItemCount:     result.ItemCount,
		PaymentOption: result.PaymentOption,
		CompletedAt:   result.CompletedAt,
	}

	if err := srv.publisher.PublishCheckoutEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish checkout event", slog.String("email", result.Email), slog.Any("error", err))
	}
}
