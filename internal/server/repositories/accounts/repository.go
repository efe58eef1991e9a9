// Package accounts declares the repository contract for identity records.
package accounts

import (
	"context"

	"github.com/medibook/medibook/internal/server/models"
)

// Repository defines persistence operations for accounts. Emails are stored
// case-normalized; uniqueness is enforced by the database.
type Repository interface {
	// Create inserts a new account and returns it with its generated id.
	// A duplicate email returns common.ErrDuplicateEmail.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// GetByEmail looks up an account by its normalized email.
	// Returns common.ErrorNotFound when absent.
	GetByEmail(ctx context.Context, email string) (*models.Account, error)

	// GetByID looks up an account by id. Returns common.ErrorNotFound when absent.
	GetByID(ctx context.Context, id string) (*models.Account, error)

	// Update persists name and role changes for an existing account.
	Update(ctx context.Context, account *models.Account) error

	// SetActive flips the active flag. Accounts are deactivated, never deleted.
	SetActive(ctx context.Context, id string, active bool) error
}
