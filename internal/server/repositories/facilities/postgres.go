package facilities

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

func (r *PostgresRepository) Create(ctx context.Context, facility *models.Facility) (*models.Facility, error) {
	query := `
		INSERT INTO facilities (name, address, phone)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, facility.Name, facility.Address, facility.Phone).
		Scan(&facility.ID, &facility.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return facility, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	query := `
		SELECT id, name, address, phone, created_at
		FROM facilities
		WHERE id = $1
	`
	facility := &models.Facility{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&facility.ID, &facility.Name, &facility.Address, &facility.Phone, &facility.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return facility, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Facility, error) {
	query := `
		SELECT id, name, address, phone, created_at
		FROM facilities
		ORDER BY name
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var facilities []*models.Facility
	for rows.Next() {
		facility := &models.Facility{}
		if err := rows.Scan(&facility.ID, &facility.Name, &facility.Address, &facility.Phone, &facility.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		facilities = append(facilities, facility)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return facilities, nil
}
