package postgres

import (
	"context"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// FindByEmail retrieves the cart owned by email.
func (repo *cartRepository) FindByEmail(ctx context.Context, email string) (*entity.Cart, error) {
	return repo.findByEmail(repo.db.WithContext(ctx), email)
}

// FindByEmailForUpdate retrieves the cart with a row lock held until the transaction ends.
func (repo *cartRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.Cart, error) {
	return repo.findByEmail(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), email)
}

func (repo *cartRepository) findByEmail(db *gorm.DB, email string) (*entity.Cart, error) {
	var cartM model.CartModel

	if err := db.Where("email = ?", email).First(&cartM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart by email")
	}

	return toCartDomain(&cartM), nil
}

// FindOrCreate inserts an empty cart unless one exists for email, then reads it back.
// INSERT ... ON CONFLICT (email) DO NOTHING makes concurrent first adds converge on one row.
func (repo *cartRepository) FindOrCreate(ctx context.Context, email, paymentOption string) (*entity.Cart, error) {
	cartM := &model.CartModel{
		Email:         email,
		CartItems:     datatypes.NewJSONType([]model.CartItemDocument{}),
		PaymentOption: paymentOption,
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(cartM).Error
	if err != nil && !isUniqueConstraintViolation(err) {
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.ErrCartCreationFailed.WrapMessage("missing required cart information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to create cart")
	}

	cart, err := repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read cart after create")
	}

	return cart, nil
}

// Save persists the cart's line items.
func (repo *cartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	cartM := fromCartDomain(cart)

	result := repo.db.WithContext(ctx).
		Model(&model.CartModel{}).
		Where("id = ?", cart.ID).
		Updates(map[string]any{
			"cart_items": cartM.CartItems,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to save cart")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartNotFound
	}

	return nil
}

// toCartDomain converts a GORM CartModel to a domain Cart entity.
func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	docs := data.CartItems.Data()
	items := make([]entity.CartItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, entity.CartItem{
			Product: entity.ProductSnapshot{
				ID:       doc.Product.ID,
				Name:     doc.Product.Name,
				Category: doc.Product.Category,
				Cost:     doc.Product.Cost,
				Rating:   doc.Product.Rating,
				Image:    doc.Product.Image,
			},
			Quantity: doc.Quantity,
		})
	}

	return &entity.Cart{
		ID:            data.ID,
		Email:         data.Email,
		Items:         items,
		PaymentOption: data.PaymentOption,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromCartDomain converts a domain Cart entity to a GORM CartModel for persistence.
func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	docs := make([]model.CartItemDocument, 0, len(data.Items))
	for _, item := range data.Items {
		docs = append(docs, model.CartItemDocument{
			Product: model.ProductDocument{
				ID:       item.Product.ID,
				Name:     item.Product.Name,
				Category: item.Product.Category,
				Cost:     item.Product.Cost,
				Rating:   item.Product.Rating,
				Image:    item.Product.Image,
			},
			Quantity: item.Quantity,
		})
	}

	return &model.CartModel{
		ID:            data.ID,
		Email:         data.Email,
		CartItems:     datatypes.NewJSONType(docs),
		PaymentOption: data.PaymentOption,
	}
}
