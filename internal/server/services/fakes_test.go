package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/dbx"
	"github.com/medibook/medibook/internal/server/models"
	accountsrepo "github.com/medibook/medibook/internal/server/repositories/accounts"
	appointmentsrepo "github.com/medibook/medibook/internal/server/repositories/appointments"
	doctorsrepo "github.com/medibook/medibook/internal/server/repositories/doctors"
	facilitiesrepo "github.com/medibook/medibook/internal/server/repositories/facilities"
	schedulesrepo "github.com/medibook/medibook/internal/server/repositories/schedules"
)

// fakeRepoManager vends whichever fakes a test sets; unused repositories
// stay nil.
type fakeRepoManager struct {
	accounts     accountsrepo.Repository
	facilities   facilitiesrepo.Repository
	doctors      doctorsrepo.Repository
	schedules    schedulesrepo.Repository
	appointments appointmentsrepo.Repository
}

func (m *fakeRepoManager) Accounts(db dbx.DBTX) accountsrepo.Repository         { return m.accounts }
func (m *fakeRepoManager) Facilities(db dbx.DBTX) facilitiesrepo.Repository     { return m.facilities }
func (m *fakeRepoManager) Doctors(db dbx.DBTX) doctorsrepo.Repository           { return m.doctors }
func (m *fakeRepoManager) Schedules(db dbx.DBTX) schedulesrepo.Repository       { return m.schedules }
func (m *fakeRepoManager) Appointments(db dbx.DBTX) appointmentsrepo.Repository { return m.appointments }
func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error         { return nil }

type fakeDoctorsRepo struct {
	doctors map[string]*models.Doctor
	err     error
}

func (f *fakeDoctorsRepo) Create(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	return doctor, nil
}

func (f *fakeDoctorsRepo) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	if f.err != nil {
		return nil, f.err
	}
	if doctor, ok := f.doctors[id]; ok {
		return doctor, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeDoctorsRepo) GetByAccountID(ctx context.Context, accountID string) (*models.Doctor, error) {
	for _, doctor := range f.doctors {
		if doctor.AccountID == accountID {
			return doctor, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeDoctorsRepo) List(ctx context.Context, facilityID string) ([]*models.Doctor, error) {
	var out []*models.Doctor
	for _, doctor := range f.doctors {
		if facilityID == "" || doctor.FacilityID == facilityID {
			out = append(out, doctor)
		}
	}
	return out, nil
}

type fakeAppointmentsRepo struct {
	overlapCount int
	overlapErr   error

	created   *models.Appointment
	createErr error

	byID      map[string]*models.Appointment
	statusSet map[string]models.AppointmentStatus
}

func (f *fakeAppointmentsRepo) Create(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	appointment.ID = "apt-1"
	appointment.CreatedAt = time.Now()
	f.created = appointment
	return appointment, nil
}

func (f *fakeAppointmentsRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	if appointment, ok := f.byID[id]; ok {
		return appointment, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAppointmentsRepo) UpdateStatus(ctx context.Context, id string, status models.AppointmentStatus) error {
	if f.statusSet == nil {
		f.statusSet = map[string]models.AppointmentStatus{}
	}
	f.statusSet[id] = status
	return nil
}

func (f *fakeAppointmentsRepo) CountOverlapping(ctx context.Context, doctorID string, startsAt, endsAt time.Time) (int, error) {
	return f.overlapCount, f.overlapErr
}

func (f *fakeAppointmentsRepo) ListByPatient(ctx context.Context, patientID string) ([]*models.Appointment, error) {
	return nil, nil
}

func (f *fakeAppointmentsRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error) {
	return nil, nil
}
