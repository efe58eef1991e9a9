package accounts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func accountColumns() []string {
	return []string{"id", "email", "name", "password_hash", "role", "active", "created_at", "updated_at"}
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WithArgs("a@x.com", "Alice", "hash", models.RolePatient, true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("acc-1", time.Now(), time.Now()))

	account, err := repo.Create(context.Background(), &models.Account{
		Email: "a@x.com", Name: "Alice", PasswordHash: "hash",
		Role: models.RolePatient, Active: true,
	})
	require.NoError(t, err)
	require.Equal(t, "acc-1", account.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("INSERT INTO accounts").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_email_key"})

	_, err := repo.Create(context.Background(), &models.Account{Email: "a@x.com"})
	require.True(t, errors.Is(err, common.ErrDuplicateEmail))
}

func TestGetByEmail(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("a@x.com").
		WillReturnRows(sqlmock.NewRows(accountColumns()).
			AddRow("acc-1", "a@x.com", "Alice", "hash", "patient", true, time.Now(), time.Now()))

	account, err := repo.GetByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Equal(t, "acc-1", account.ID)
	require.Equal(t, models.RolePatient, account.Role)
	require.True(t, account.Active)
}

func TestGetByEmail_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM accounts").
		WithArgs("missing@x.com").
		WillReturnRows(sqlmock.NewRows(accountColumns()))

	_, err := repo.GetByEmail(context.Background(), "missing@x.com")
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestSetActive(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE accounts").
		WithArgs("acc-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetActive(context.Background(), "acc-1", false))
	require.NoError(t, mock.ExpectationsWereMet())
}
