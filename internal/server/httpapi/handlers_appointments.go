package httpapi

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
)

type bookAppointmentRequest struct {
	DoctorID        string    `json:"doctor_id" binding:"required"`
	StartsAt        time.Time `json:"starts_at" binding:"required"`
	DurationMinutes int       `json:"duration_minutes" binding:"required,min=1"`
	Notes           string    `json:"notes"`
}

// handleBookAppointment books a visit for the authenticated patient.
func (s *Server) handleBookAppointment(c *gin.Context) {
	var req bookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	appointment, err := s.appointments.Book(c.Request.Context(), accountID(c),
		req.DoctorID, req.StartsAt, req.DurationMinutes, req.Notes)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, appointment)
}

// handleListAppointments returns the caller's own appointments: a doctor sees
// their calendar, everyone else sees what they booked as a patient.
func (s *Server) handleListAppointments(c *gin.Context) {
	ctx := c.Request.Context()

	if accountRole(c) == models.RoleDoctor {
		doctor, err := s.directory.GetDoctorByAccount(ctx, accountID(c))
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			s.writeError(c, err)
			return
		}
		if doctor != nil {
			list, err := s.appointments.ListForDoctor(ctx, doctor.ID)
			if err != nil {
				s.writeError(c, err)
				return
			}
			c.JSON(http.StatusOK, list)
			return
		}
	}

	list, err := s.appointments.ListForPatient(ctx, accountID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) handleCancelAppointment(c *gin.Context) {
	err := s.appointments.Cancel(c.Request.Context(), c.Param("id"), accountID(c), accountRole(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
