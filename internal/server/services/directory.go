package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/medibook/medibook/internal/server/models"
	"github.com/medibook/medibook/internal/server/repositories/repomanager"
)

// DirectoryService manages facilities, doctor profiles, and weekly schedules.
type DirectoryService struct {
	db    *sql.DB
	repos repomanager.RepositoryManager
}

// NewDirectoryService constructs a DirectoryService.
func NewDirectoryService(db *sql.DB, repos repomanager.RepositoryManager) *DirectoryService {
	return &DirectoryService{db: db, repos: repos}
}

func (s *DirectoryService) CreateFacility(ctx context.Context, facility *models.Facility) (*models.Facility, error) {
	if facility.Name == "" {
		return nil, fmt.Errorf("facility name is required")
	}
	return s.repos.Facilities(s.db).Create(ctx, facility)
}

func (s *DirectoryService) GetFacility(ctx context.Context, id string) (*models.Facility, error) {
	return s.repos.Facilities(s.db).GetByID(ctx, id)
}

func (s *DirectoryService) ListFacilities(ctx context.Context) ([]*models.Facility, error) {
	return s.repos.Facilities(s.db).List(ctx)
}

func (s *DirectoryService) CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	// The facility must exist; the FK would catch it, but a clean not-found
	// beats a constraint violation at the API boundary.
	if _, err := s.repos.Facilities(s.db).GetByID(ctx, doctor.FacilityID); err != nil {
		return nil, err
	}
	return s.repos.Doctors(s.db).Create(ctx, doctor)
}

func (s *DirectoryService) GetDoctor(ctx context.Context, id string) (*models.Doctor, error) {
	return s.repos.Doctors(s.db).GetByID(ctx, id)
}

func (s *DirectoryService) GetDoctorByAccount(ctx context.Context, accountID string) (*models.Doctor, error) {
	return s.repos.Doctors(s.db).GetByAccountID(ctx, accountID)
}

func (s *DirectoryService) ListDoctors(ctx context.Context, facilityID string) ([]*models.Doctor, error) {
	return s.repos.Doctors(s.db).List(ctx, facilityID)
}

func (s *DirectoryService) CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error) {
	if schedule.StartMinute < 0 || schedule.EndMinute <= schedule.StartMinute || schedule.EndMinute > 24*60 {
		return nil, fmt.Errorf("invalid schedule window")
	}
	if schedule.SlotMinutes <= 0 {
		return nil, fmt.Errorf("slot length must be positive")
	}
	if _, err := s.repos.Doctors(s.db).GetByID(ctx, schedule.DoctorID); err != nil {
		return nil, err
	}
	return s.repos.Schedules(s.db).Create(ctx, schedule)
}

func (s *DirectoryService) ListSchedules(ctx context.Context, doctorID string) ([]*models.Schedule, error) {
	return s.repos.Schedules(s.db).ListByDoctor(ctx, doctorID)
}

func (s *DirectoryService) DeleteSchedule(ctx context.Context, id string) error {
	return s.repos.Schedules(s.db).Delete(ctx, id)
}
