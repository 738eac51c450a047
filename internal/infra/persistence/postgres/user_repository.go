// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	"qkart/internal/domain/entity"
	domainerrors "qkart/internal/domain/errors"
	"qkart/internal/domain/repository"
	"qkart/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findByEmail(repo.db.WithContext(ctx), email)
}

// FindByEmailForUpdate retrieves a user with a row lock held until the transaction ends.
func (repo *userRepository) FindByEmailForUpdate(ctx context.Context, email string) (*entity.User, error) {
	return repo.findByEmail(repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), email)
}

func (repo *userRepository) findByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := db.Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Update persists the wallet balance and address of an existing user.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"wallet_money": userM.WalletMoney,
			"address":      userM.Address,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrUserUpdateFailed.WrapMessage("wallet balance would become negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update user")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:          data.ID,
		Email:       data.Email,
		Name:        data.Name,
		WalletMoney: data.WalletMoney,
		Address:     toAddressDomain(data.Address),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:          data.ID,
		Email:       data.Email,
		Name:        data.Name,
		WalletMoney: data.WalletMoney,
		Address:     fromAddressDomain(data.Address),
	}
}

// toAddressDomain maps the nullable column. NULL, blank and the legacy placeholder all mean unset.
func toAddressDomain(address *string) entity.Address {
	if address == nil {
		return entity.Address{Status: entity.AddressUnset}
	}

	line := strings.TrimSpace(*address)
	if line == model.LegacyAddressNotSet {
		return entity.Address{Status: entity.AddressUnset}
	}

	return entity.NewAddress(line)
}

func fromAddressDomain(address entity.Address) *string {
	if !address.IsSet() {
		return nil
	}
	line := address.Line

	return &line
}
