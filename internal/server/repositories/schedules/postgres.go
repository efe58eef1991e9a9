package schedules

import (
	"context"
	"fmt"
	"time"

	"github.com/medibook/medibook/internal/dbx"
	"github.com/medibook/medibook/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	query := `
		INSERT INTO schedules (doctor_id, weekday, start_minute, end_minute, slot_minutes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		schedule.DoctorID, int(schedule.Weekday), schedule.StartMinute,
		schedule.EndMinute, schedule.SlotMinutes).
		Scan(&schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return schedule, nil
}

func (r *PostgresRepository) ListByDoctor(ctx context.Context, doctorID string) ([]*models.Schedule, error) {
	query := `
		SELECT id, doctor_id, weekday, start_minute, end_minute, slot_minutes
		FROM schedules
		WHERE doctor_id = $1
		ORDER BY weekday, start_minute
	`
	rows, err := r.db.QueryContext(ctx, query, doctorID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Schedule
	for rows.Next() {
		schedule := &models.Schedule{}
		var weekday int
		if err := rows.Scan(&schedule.ID, &schedule.DoctorID, &weekday,
			&schedule.StartMinute, &schedule.EndMinute, &schedule.SlotMinutes); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		schedule.Weekday = time.Weekday(weekday)
		result = append(result, schedule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM schedules
		WHERE id = $1
	`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
