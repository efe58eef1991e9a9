package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/stretchr/testify/require"
)

type fakeFacilitiesRepo struct {
	byID map[string]*models.Facility
}

func (f *fakeFacilitiesRepo) Create(ctx context.Context, facility *models.Facility) (*models.Facility, error) {
	facility.ID = "f-new"
	return facility, nil
}

func (f *fakeFacilitiesRepo) GetByID(ctx context.Context, id string) (*models.Facility, error) {
	if facility, ok := f.byID[id]; ok {
		return facility, nil
	}
	return nil, common.ErrorNotFound
}

func (f *fakeFacilitiesRepo) List(ctx context.Context) ([]*models.Facility, error) { return nil, nil }

type fakeSchedulesRepo struct {
	created *models.Schedule
}

func (f *fakeSchedulesRepo) Create(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	schedule.ID = "s-new"
	f.created = schedule
	return schedule, nil
}

func (f *fakeSchedulesRepo) ListByDoctor(ctx context.Context, doctorID string) ([]*models.Schedule, error) {
	return nil, nil
}

func (f *fakeSchedulesRepo) Delete(ctx context.Context, id string) error { return nil }

func directoryFixture() (*DirectoryService, *fakeSchedulesRepo) {
	schedules := &fakeSchedulesRepo{}
	rm := &fakeRepoManager{
		facilities: &fakeFacilitiesRepo{byID: map[string]*models.Facility{
			"f1": {ID: "f1", Name: "Downtown Clinic"},
		}},
		doctors: &fakeDoctorsRepo{doctors: map[string]*models.Doctor{
			"d1": {ID: "d1", FacilityID: "f1"},
		}},
		schedules: schedules,
	}
	return NewDirectoryService(nil, rm), schedules
}

func TestCreateFacility_RequiresName(t *testing.T) {
	service, _ := directoryFixture()

	_, err := service.CreateFacility(context.Background(), &models.Facility{})
	require.Error(t, err)
}

func TestCreateDoctor_UnknownFacility(t *testing.T) {
	service, _ := directoryFixture()

	_, err := service.CreateDoctor(context.Background(), &models.Doctor{FacilityID: "ghost"})
	require.True(t, errors.Is(err, common.ErrorNotFound))
}

func TestCreateSchedule(t *testing.T) {
	service, schedules := directoryFixture()

	created, err := service.CreateSchedule(context.Background(), &models.Schedule{
		DoctorID: "d1", Weekday: time.Monday, StartMinute: 9 * 60, EndMinute: 12 * 60, SlotMinutes: 30,
	})
	require.NoError(t, err)
	require.Equal(t, "s-new", created.ID)
	require.Equal(t, schedules.created, created)
}

func TestCreateSchedule_InvalidWindow(t *testing.T) {
	service, _ := directoryFixture()

	tests := []struct {
		name     string
		schedule models.Schedule
	}{
		{"end before start", models.Schedule{DoctorID: "d1", StartMinute: 600, EndMinute: 540, SlotMinutes: 30}},
		{"past midnight", models.Schedule{DoctorID: "d1", StartMinute: 1400, EndMinute: 1500, SlotMinutes: 30}},
		{"zero slot", models.Schedule{DoctorID: "d1", StartMinute: 540, EndMinute: 600, SlotMinutes: 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateSchedule(context.Background(), &tt.schedule)
			require.Error(t, err)
		})
	}
}
