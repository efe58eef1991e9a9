package appointments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/dbx"
	"github.com/medibook/medibook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	query := `
		INSERT INTO appointments (patient_id, doctor_id, facility_id, starts_at, ends_at, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		appointment.PatientID, appointment.DoctorID, appointment.FacilityID,
		appointment.StartsAt, appointment.EndsAt, appointment.Status, appointment.Notes).
		Scan(&appointment.ID, &appointment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return appointment, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, facility_id, starts_at, ends_at, status, notes, created_at
		FROM appointments
		WHERE id = $1
	`
	appointment := &models.Appointment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&appointment.ID, &appointment.PatientID, &appointment.DoctorID, &appointment.FacilityID,
		&appointment.StartsAt, &appointment.EndsAt, &appointment.Status, &appointment.Notes,
		&appointment.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return appointment, nil
}

func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	query := `
		UPDATE appointments
		SET status = $2
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id, status); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) CountOverlapping(ctx context.Context, doctorID string, startsAt, endsAt time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM appointments
		WHERE doctor_id = $1
		  AND status = 'scheduled'
		  AND starts_at < $3
		  AND ends_at > $2
	`
	var count int
	if err := r.db.QueryRowContext(ctx, query, doctorID, startsAt, endsAt).Scan(&count); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return count, nil
}

func (r *PostgresRepository) ListByPatient(ctx context.Context, patientID string) ([]*models.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, facility_id, starts_at, ends_at, status, notes, created_at
		FROM appointments
		WHERE patient_id = $1
		ORDER BY starts_at DESC
	`
	return r.list(ctx, query, patientID)
}

func (r *PostgresRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error) {
	query := `
		SELECT id, patient_id, doctor_id, facility_id, starts_at, ends_at, status, notes, created_at
		FROM appointments
		WHERE doctor_id = $1
		ORDER BY starts_at
	`
	return r.list(ctx, query, doctorID)
}

func (r *PostgresRepository) list(ctx context.Context, query string, arg any) ([]*models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Appointment
	for rows.Next() {
		appointment := &models.Appointment{}
		if err := rows.Scan(
			&appointment.ID, &appointment.PatientID, &appointment.DoctorID, &appointment.FacilityID,
			&appointment.StartsAt, &appointment.EndsAt, &appointment.Status, &appointment.Notes,
			&appointment.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, appointment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
