// Package facilities declares the repository contract for medical facilities.
package facilities

import (
	"context"

	"github.com/medibook/medibook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, facility *models.Facility) (*models.Facility, error)
	GetByID(ctx context.Context, id string) (*models.Facility, error)
	List(ctx context.Context) ([]*models.Facility, error)
}
