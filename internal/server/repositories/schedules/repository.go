// Package schedules declares the repository contract for doctors' weekly
// availability windows.
package schedules

import (
	"context"

	"github.com/medibook/medibook/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*models.Schedule, error)
	Delete(ctx context.Context, id string) error
}
