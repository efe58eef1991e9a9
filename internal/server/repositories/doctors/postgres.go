package doctors

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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

func (r *PostgresRepository) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	query := `
		INSERT INTO doctors (account_id, facility_id, specialty, bio)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		doctor.AccountID, doctor.FacilityID, doctor.Specialty, doctor.Bio).
		Scan(&doctor.ID, &doctor.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doctor, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	query := `
		SELECT id, account_id, facility_id, specialty, bio, created_at
		FROM doctors
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, id))
}

func (r *PostgresRepository) GetByAccountID(ctx context.Context, accountID string) (*models.Doctor, error) {
	query := `
		SELECT id, account_id, facility_id, specialty, bio, created_at
		FROM doctors
		WHERE account_id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, query, accountID))
}

func (r *PostgresRepository) List(ctx context.Context, facilityID string) ([]*models.Doctor, error) {
	query := `
		SELECT id, account_id, facility_id, specialty, bio, created_at
		FROM doctors
		WHERE $1 = '' OR facility_id = $1
		ORDER BY specialty, id
	`
	rows, err := r.db.QueryContext(ctx, query, facilityID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var doctors []*models.Doctor
	for rows.Next() {
		doctor := &models.Doctor{}
		if err := rows.Scan(&doctor.ID, &doctor.AccountID, &doctor.FacilityID,
			&doctor.Specialty, &doctor.Bio, &doctor.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		doctors = append(doctors, doctor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doctors, nil
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.Doctor, error) {
	doctor := &models.Doctor{}
	err := row.Scan(&doctor.ID, &doctor.AccountID, &doctor.FacilityID,
		&doctor.Specialty, &doctor.Bio, &doctor.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return doctor, nil
}
