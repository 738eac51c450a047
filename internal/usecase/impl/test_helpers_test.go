package impl

import (
	"context"
	"io"
	"log/slog"

	"qkart/config"
	"qkart/internal/domain/entity"
	"qkart/internal/domain/repository"
	mockRepo "qkart/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

const testEmail = "crio-user@qkart.test"

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Cart: &config.CartConfig{DefaultPaymentOption: "PAYMENT_OPTION_DEFAULT"},
	}
}

// expectTransaction makes txManager run the callback against factory.
func expectTransaction(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func newProduct(cost int64) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "The Minimalist Slim Leather Watch",
		Category: "Fashion",
		Cost:     decimal.NewFromInt(cost),
		Rating:   5,
		Image:    "https://i.imgur.com/lulqWzW.jpg",
	}
}

func newCart(items ...entity.CartItem) *entity.Cart {
	if items == nil {
		items = []entity.CartItem{}
	}

	return &entity.Cart{
		ID:            uuid.New(),
		Email:         testEmail,
		Items:         items,
		PaymentOption: "PAYMENT_OPTION_DEFAULT",
	}
}

func lineItem(product *entity.Product, quantity int) entity.CartItem {
	return entity.CartItem{Product: product.Snapshot(), Quantity: quantity}
}
