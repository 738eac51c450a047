// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"qkart/config"
	deliverycontext "qkart/internal/delivery/context"
	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/domain/service"
	"qkart/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	opAddToCart      = "add"
	opUpdateQuantity = "update"
	opRemoveFromCart = "remove"
	defaultPayment   = "PAYMENT_OPTION_DEFAULT"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager     repository.TransactionManager
	cartRepo      repository.CartRepository
	recorder      service.CartRecorder
	paymentOption string
	logger        *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	CartRepo  repository.CartRepository
	Recorder  service.CartRecorder `optional:"true"`
	Config    *config.Config
	Logger    *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	paymentOption := defaultPayment
	if params.Config != nil && params.Config.Cart != nil && params.Config.Cart.DefaultPaymentOption != "" {
		paymentOption = params.Config.Cart.DefaultPaymentOption
	}

	return &cartService{
		txManager:     params.TxManager,
		cartRepo:      params.CartRepo,
		recorder:      params.Recorder,
		paymentOption: paymentOption,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *cartService) record(operation string, err error) {
	if srv.recorder != nil {
		srv.recorder.RecordCartOperation(operation, err == nil)
	}
}

// GetCart returns the shopper's cart.
func (srv *cartService) GetCart(ctx context.Context, email string) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrCartNotFound) {
		return nil, domainerrors.ErrCartNotFound.WrapMessage("failed to get cart")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return cart, nil
}

// AddToCart creates the cart on first use, then appends the product under the cart row lock.
func (srv *cartService) AddToCart(ctx context.Context, email string, productID uuid.UUID, quantity int) (cart *entity.Cart, err error) {
	defer func() { srv.record(opAddToCart, err) }()

	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	if _, err := srv.cartRepo.FindOrCreate(ctx, email, srv.paymentOption); err != nil {
		srv.log(ctx).Error("Failed to find or create cart", slog.String("email", email), slog.Any("error", err))

		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return nil, errors.Wrap(err, "failed to find or create cart")
		}

		return nil, domainerrors.ErrCartCreationFailed.WrapMessage(err.Error())
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		locked, err := cartRepo.FindByEmailForUpdate(ctx, email)
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		if locked.HasProduct(productID) {
			return domainerrors.ErrProductAlreadyInCart
		}

		product, err := findProduct(ctx, repoFactory.NewProductRepository(), productID)
		if err != nil {
			return err
		}

		locked.Append(product.Snapshot(), quantity)
		if err := cartRepo.Save(ctx, locked); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		cart = locked

		return nil
	})
	if err != nil {
		return nil, srv.wrapTxError(ctx, "add to cart", email, err)
	}

	srv.log(ctx).Debug("Product added to cart", slog.String("email", email), slog.String("product_id", productID.String()))

	return cart, nil
}

// UpdateQuantity overwrites the quantity of a product that is already in the cart.
func (srv *cartService) UpdateQuantity(ctx context.Context, email string, productID uuid.UUID, quantity int) (cart *entity.Cart, err error) {
	defer func() { srv.record(opUpdateQuantity, err) }()

	if quantity < 1 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		locked, err := cartRepo.FindByEmailForUpdate(ctx, email)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartRequired
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		if _, err := findProduct(ctx, repoFactory.NewProductRepository(), productID); err != nil {
			return err
		}

		if !locked.SetQuantity(productID, quantity) {
			return domainerrors.ErrProductNotInCart
		}

		if err := cartRepo.Save(ctx, locked); err != nil {
			return errors.Wrap(err, "failed to save cart")
		}

		cart = locked

		return nil
	})
	if err != nil {
		return nil, srv.wrapTxError(ctx, "update cart quantity", email, err)
	}

	return cart, nil
}

// RemoveFromCart deletes a product from the cart.
func (srv *cartService) RemoveFromCart(ctx context.Context, email string, productID uuid.UUID) (err error) {
	defer func() { srv.record(opRemoveFromCart, err) }()

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.NewCartRepository()

		locked, err := cartRepo.FindByEmailForUpdate(ctx, email)
		if errors.Is(err, repository.ErrCartNotFound) {
			return domainerrors.ErrCartMissing
		}
		if err != nil {
			return errors.Wrap(err, "failed to lock cart")
		}

		if !locked.Remove(productID) {
			return domainerrors.ErrProductNotInCart
		}

		return errors.Wrap(cartRepo.Save(ctx, locked), "failed to save cart")
	})
	if err != nil {
		return srv.wrapTxError(ctx, "remove from cart", email, err)
	}

	return nil
}

// findProduct resolves a product against the catalog table, never a cache, so a snapshot
// carries the current price and a withdrawn product is rejected.
func findProduct(ctx context.Context, productRepo repository.ProductRepository, productID uuid.UUID) (*entity.Product, error) {
	product, err := productRepo.FindByID(ctx, productID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// wrapTxError keeps business errors intact and logs unexpected failures.
func (srv *cartService) wrapTxError(ctx context.Context, action, email string, err error) error {
	if domainerrors.KindOf(err) == domainerrors.KindInternal {
		srv.log(ctx).Error("Cart transaction failed", slog.String("action", action), slog.String("email", email), slog.Any("error", err))
	}

	return errors.Wrapf(err, "failed to %s", action)
}
