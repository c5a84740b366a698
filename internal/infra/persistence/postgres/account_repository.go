// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"
	"registrar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByEmail retrieves a single account by its normalized email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("email = ?", email).
		First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account. A row that already holds the same email and
// password hash is treated as this account, so a retried confirmation succeeds.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	err := repo.db.WithContext(ctx).Create(accountM).Error
	if err == nil {
		account.ID = accountM.ID
		account.CreatedAt = accountM.CreatedAt

		return nil
	}

	if isUniqueConstraintViolation(err) {
		existing, findErr := repo.FindByEmail(ctx, account.Email)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load conflicting account")
		}
		if existing.PasswordHash != account.PasswordHash {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		*account = *existing

		return nil
	}
	if isNotNullConstraintViolation(err) {
		return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
}

func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	return &entity.Account{
		ID:           accountM.ID,
		Email:        accountM.Email,
		FullName:     accountM.FullName,
		Username:     accountM.Username,
		PasswordHash: accountM.PasswordHash,
		CreatedAt:    accountM.CreatedAt,
	}
}

func fromAccountDomain(account *entity.Account) *model.AccountModel {
	return &model.AccountModel{
		ID:           account.ID,
		Email:        account.Email,
		FullName:     account.FullName,
		Username:     account.Username,
		PasswordHash: account.PasswordHash,
		CreatedAt:    account.CreatedAt,
	}
}
