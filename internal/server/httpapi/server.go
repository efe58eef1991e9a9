// Package httpapi exposes the REST API: session endpoints, the
// facility/doctor directory, and appointment booking.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/medibook/medibook/internal/logging"
	"github.com/medibook/medibook/internal/server/auth"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/medibook/medibook/internal/server/services"
)

// sessionService is the slice of services.SessionService the handlers use.
type sessionService interface {
	Login(ctx context.Context, email, password string) (*models.Account, *services.TokenPair, error)
	Register(ctx context.Context, draft services.RegisterDraft) (*models.Account, *services.TokenPair, error)
	Refresh(ctx context.Context, accountID, refreshToken string) (*models.Account, *services.TokenPair, error)
	Logout(ctx context.Context, accountID string) error
}

type directoryService interface {
	CreateFacility(ctx context.Context, facility *models.Facility) (*models.Facility, error)
	GetFacility(ctx context.Context, id string) (*models.Facility, error)
	ListFacilities(ctx context.Context) ([]*models.Facility, error)
	CreateDoctor(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error)
	GetDoctor(ctx context.Context, id string) (*models.Doctor, error)
	GetDoctorByAccount(ctx context.Context, accountID string) (*models.Doctor, error)
	ListDoctors(ctx context.Context, facilityID string) ([]*models.Doctor, error)
	CreateSchedule(ctx context.Context, schedule *models.Schedule) (*models.Schedule, error)
	ListSchedules(ctx context.Context, doctorID string) ([]*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error
}

type appointmentService interface {
	Book(ctx context.Context, patientID, doctorID string, startsAt time.Time, durationMinutes int, notes string) (*models.Appointment, error)
	Cancel(ctx context.Context, appointmentID, requesterID string, requesterRole models.Role) error
	ListForPatient(ctx context.Context, patientID string) ([]*models.Appointment, error)
	ListForDoctor(ctx context.Context, doctorID string) ([]*models.Appointment, error)
}

// Server hosts the REST API.
type Server struct {
	address      string
	sessions     sessionService
	directory    directoryService
	appointments appointmentService
	issuer       *auth.TokenIssuer
	logger       logging.Logger
}

// NewServer constructs a Server. The token issuer doubles as the verifier for
// the Bearer middleware.
func NewServer(address string, logger logging.Logger, sessions sessionService,
	directory directoryService, appointments appointmentService, issuer *auth.TokenIssuer) *Server {
	return &Server{
		address:      address,
		logger:       logger.With("module", "http_server"),
		sessions:     sessions,
		directory:    directory,
		appointments: appointments,
		issuer:       issuer,
	}
}

// Handler builds the gin engine with all routes attached.
func (s *Server) Handler() http.Handler {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:          12 * time.Hour,
	}))

	api := engine.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.POST("/register", s.handleRegister)
	authGroup.POST("/login", s.handleLogin)
	authGroup.POST("/refresh", s.handleRefresh)
	authGroup.POST("/logout", s.requireAuth(), s.handleLogout)

	api.GET("/facilities", s.handleListFacilities)
	api.GET("/facilities/:id", s.handleGetFacility)
	api.POST("/facilities", s.requireAuth(), s.requireRole(models.RoleClinicAdmin, models.RoleSystemAdmin), s.handleCreateFacility)

	api.GET("/doctors", s.handleListDoctors)
	api.GET("/doctors/:id", s.handleGetDoctor)
	api.POST("/doctors", s.requireAuth(), s.requireRole(models.RoleClinicAdmin, models.RoleSystemAdmin), s.handleCreateDoctor)

	api.GET("/doctors/:id/schedules", s.handleListSchedules)
	api.POST("/schedules", s.requireAuth(), s.requireRole(models.RoleClinicAdmin, models.RoleSystemAdmin), s.handleCreateSchedule)
	api.DELETE("/schedules/:id", s.requireAuth(), s.requireRole(models.RoleClinicAdmin, models.RoleSystemAdmin), s.handleDeleteSchedule)

	appointments := api.Group("/appointments", s.requireAuth())
	appointments.POST("", s.handleBookAppointment)
	appointments.GET("", s.handleListAppointments)
	appointments.DELETE("/:id", s.handleCancelAppointment)

	return engine
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
