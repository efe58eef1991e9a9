package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/dbx"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/medibook/medibook/internal/server/repositories/repomanager"
)

// AppointmentService books and manages patient visits.
type AppointmentService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewAppointmentService constructs an AppointmentService.
func NewAppointmentService(db *sql.DB, repos repomanager.RepositoryManager) *AppointmentService {
	return &AppointmentService{db: db, repos: repos}
}

// Book creates a scheduled appointment for the patient with the doctor. The
// overlap check and the insert run in one transaction; a conflicting
// scheduled appointment yields common.ErrSlotTaken.
func (s *AppointmentService) Book(ctx context.Context, patientID, doctorID string,
	startsAt time.Time, durationMinutes int, notes string) (*models.Appointment, error) {

	if durationMinutes <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	doctor, err := s.repos.Doctors(s.db).GetByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		PatientID:  patientID,
		DoctorID:   doctorID,
		FacilityID: doctor.FacilityID,
		StartsAt:   startsAt,
		EndsAt:     startsAt.Add(time.Duration(durationMinutes) * time.Minute),
		Status:     models.AppointmentScheduled,
		Notes:      notes,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repos.Appointments(tx)

		count, err := repo.CountOverlapping(ctx, doctorID, appointment.StartsAt, appointment.EndsAt)
		if err != nil {
			return err
		}
		if count > 0 {
			return common.ErrSlotTaken
		}

		appointment, err = repo.Create(ctx, appointment)
		return err
	}); err != nil {
		return nil, err
	}

	return appointment, nil
}

// Cancel marks the appointment cancelled. Only the booking patient or an
// admin may cancel.
func (s *AppointmentService) Cancel(ctx context.Context, appointmentID, requesterID string, requesterRole models.Role) error {
	repo := s.repos.Appointments(s.db)

	appointment, err := repo.GetByID(ctx, appointmentID)
	if err != nil {
		return err
	}

	allowed := appointment.PatientID == requesterID ||
		requesterRole == models.RoleClinicAdmin ||
		requesterRole == models.RoleSystemAdmin
	if !allowed {
		return common.ErrForbidden
	}

	return repo.UpdateStatus(ctx, appointmentID, models.AppointmentCancelled)
}

func (s *AppointmentService) ListForPatient(ctx context.Context, patientID string) ([]*models.Appointment, error) {
	return s.repos.Appointments(s.db).ListByPatient(ctx, patientID)
}

func (s *AppointmentService) ListForDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error) {
	return s.repos.Appointments(s.db).ListByDoctor(ctx, doctorID)
}
