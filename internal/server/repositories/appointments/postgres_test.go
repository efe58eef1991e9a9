package appointments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

func appointmentColumns() []string {
	return []string{"id", "patient_id", "doctor_id", "facility_id", "starts_at", "ends_at", "status", "notes", "created_at"}
}

func TestCreate(t *testing.T) {
	repo, mock := newMock(t)
	startsAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO appointments").
		WithArgs("p1", "d1", "f1", startsAt, startsAt.Add(30*time.Minute), models.AppointmentScheduled, "checkup").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("apt-1", time.Now()))

	appointment, err := repo.Create(context.Background(), &models.Appointment{
		PatientID: "p1", DoctorID: "d1", FacilityID: "f1",
		StartsAt: startsAt, EndsAt: startsAt.Add(30 * time.Minute),
		Status: models.AppointmentScheduled, Notes: "checkup",
	})
	require.NoError(t, err)
	require.Equal(t, "apt-1", appointment.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()))

	_, err := repo.GetByID(context.Background(), "missing")
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCountOverlapping(t *testing.T) {
	repo, mock := newMock(t)
	startsAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	endsAt := startsAt.Add(30 * time.Minute)

	mock.ExpectQuery("SELECT COUNT").
		WithArgs("d1", startsAt, endsAt).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	count, err := repo.CountOverlapping(context.Background(), "d1", startsAt, endsAt)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestUpdateStatus(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec("UPDATE appointments").
		WithArgs("apt-1", models.AppointmentCancelled).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateStatus(context.Background(), "apt-1", models.AppointmentCancelled))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListByDoctor(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM appointments").
		WithArgs("d1").
		WillReturnRows(sqlmock.NewRows(appointmentColumns()).
			AddRow("apt-1", "p1", "d1", "f1", now, now.Add(30*time.Minute), "scheduled", "", now).
			AddRow("apt-2", "p2", "d1", "f1", now.Add(time.Hour), now.Add(90*time.Minute), "scheduled", "", now))

	list, err := repo.ListByDoctor(context.Background(), "d1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "apt-1", list[0].ID)
}
