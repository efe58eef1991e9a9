// Package doctors declares the repository contract for practitioner profiles.
package doctors

import (
	"context"

	"github.com/medibook/medibook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	GetByID(ctx context.Context, id string) (*models.Doctor, error)

	// GetByAccountID resolves the doctor profile behind an account,
	// used when a logged-in doctor asks for their own calendar.
	GetByAccountID(ctx context.Context, accountID string) (*models.Doctor, error)

	// List returns doctors, optionally filtered by facility (empty id = all).
	List(ctx context.Context, facilityID string) ([]*models.Doctor, error)
}
