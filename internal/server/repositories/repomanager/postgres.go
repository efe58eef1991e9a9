// Package repomanager provides a concrete RepositoryManager for PostgreSQL,
// wiring together repository constructors and database migrations (via goose).
package repomanager

import (
	"context"
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/medibook/medibook/internal/dbx"
	"github.com/medibook/medibook/internal/server/migrations"
	"github.com/medibook/medibook/internal/server/repositories/accounts"
	"github.com/medibook/medibook/internal/server/repositories/appointments"
	"github.com/medibook/medibook/internal/server/repositories/doctors"
	"github.com/medibook/medibook/internal/server/repositories/facilities"
	"github.com/medibook/medibook/internal/server/repositories/schedules"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repository implementations
// and exposes a schema migration hook.
type PostgresRepositoryManager struct{}

// NewPostgresRepositoryManager constructs a PostgreSQL-backed RepositoryManager.
func NewPostgresRepositoryManager() *PostgresRepositoryManager {
	return &PostgresRepositoryManager{}
}

func (m *PostgresRepositoryManager) Accounts(db dbx.DBTX) accounts.Repository {
	return accounts.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Facilities(db dbx.DBTX) facilities.Repository {
	return facilities.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Doctors(db dbx.DBTX) doctors.Repository {
	return doctors.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Schedules(db dbx.DBTX) schedules.Repository {
	return schedules.NewPostgresRepository(db)
}

func (m *PostgresRepositoryManager) Appointments(db dbx.DBTX) appointments.Repository {
	return appointments.NewPostgresRepository(db)
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, db, "."); err != nil {
		return err
	}
	return nil
}
