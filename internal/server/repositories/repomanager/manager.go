// Package repomanager declares the factory contract that vends repositories
// bound to a DB handle (plain connection or transaction) and runs schema
// migrations.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/medibook/medibook/internal/dbx"
	"github.com/medibook/medibook/internal/server/repositories/accounts"
	"github.com/medibook/medibook/internal/server/repositories/appointments"
	"github.com/medibook/medibook/internal/server/repositories/doctors"
	"github.com/medibook/medibook/internal/server/repositories/facilities"
	"github.com/medibook/medibook/internal/server/repositories/schedules"
)

// RepositoryManager vends repositories for the given DBTX. Passing a *sql.Tx
// yields repositories participating in that transaction.
type RepositoryManager interface {
	Accounts(db dbx.DBTX) accounts.Repository
	Facilities(db dbx.DBTX) facilities.Repository
	Doctors(db dbx.DBTX) doctors.Repository
	Schedules(db dbx.DBTX) schedules.Repository
	Appointments(db dbx.DBTX) appointments.Repository

	RunMigrations(ctx context.Context, db *sql.DB) error
}
