// Package appointments declares the repository contract for booked visits.
package appointments

import (
	"context"
	"time"

	"github.com/medibook/medibook/internal/server/models"
)

// Repository defines persistence operations for appointments. Booking runs
// CountOverlapping and Create inside one transaction (dbx.WithTx), so both
// must work against a transactional handle.
type Repository interface {
	Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error

	// CountOverlapping returns how many scheduled appointments for the doctor
	// intersect the [startsAt, endsAt) interval.
	CountOverlapping(ctx context.Context, doctorID string, startsAt, endsAt time.Time) (int, error)

	ListByPatient(ctx context.Context, patientID string) ([]*models.Appointment, error)
	ListByDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error)
}
