package postgres

import (
	"context"
	"io"
	"log/slog"
	"regexp"
	"testing"
	"time"

	"registrar/config"
	"registrar/internal/domain/entity"
	domainerrors "registrar/internal/domain/errors"
	"registrar/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var accountColumns = []string{"id", "email", "full_name", "username", "password_hash", "created_at"}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{}),
	})
	require.NoError(t, err)

	return db, mock
}

func TestAccountRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), "jane@example.com", "Jane Doe", "jdoe", "$2a$10$hash", createdAt))

	account, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.NoError(t, err)

	assert.Equal(t, id, account.ID)
	assert.Equal(t, "jane@example.com", account.Email)
	assert.Equal(t, "Jane Doe", account.FullName)
	assert.Equal(t, "jdoe", account.Username)
	assert.Equal(t, "$2a$10$hash", account.PasswordHash)
	assert.True(t, createdAt.Equal(account.CreatedAt))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmailNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts"`)).
		WillReturnRows(sqlmock.NewRows(accountColumns))

	_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_FindByEmailDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts"`)).
		WillReturnError(assert.AnError)

	_, err := repo.FindByEmail(context.Background(), "jane@example.com")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAccountRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WithArgs("jane@example.com", "Jane Doe", "jdoe", "$2a$10$hash", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	account := &entity.Account{
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		Username:     "jdoe",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(context.Background(), account))

	assert.Equal(t, id, account.ID)
	assert.False(t, account.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateIsIdempotentForSameHash(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	id := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(id.String(), "jane@example.com", "Jane Doe", "jdoe", "$2a$10$hash", time.Now()))

	account := &entity.Account{
		Email:        "jane@example.com",
		FullName:     "Jane Doe",
		Username:     "jdoe",
		PasswordHash: "$2a$10$hash",
	}
	require.NoError(t, repo.Create(context.Background(), account))
	assert.Equal(t, id, account.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(&pgconn.PgError{Code: pgUniqueViolation})
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "accounts" WHERE email = $1`)).
		WillReturnRows(sqlmock.NewRows(accountColumns).
			AddRow(uuid.NewString(), "jane@example.com", "Someone Else", "other", "$2a$10$other", time.Now()))

	err := repo.Create(context.Background(), &entity.Account{
		Email:        "jane@example.com",
		PasswordHash: "$2a$10$hash",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepository_CreateDatabaseError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAccountRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "accounts"`)).
		WillReturnError(assert.AnError)

	err := repo.Create(context.Background(), &entity.Account{Email: "jane@example.com"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
}

func TestConstraintErrors(t *testing.T) {
	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
	assert.False(t, isUniqueConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(assert.AnError))
}
