package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/medibook/medibook/internal/server/models"
)

type createFacilityRequest struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
}

type createDoctorRequest struct {
	AccountID  string `json:"account_id" binding:"required"`
	FacilityID string `json:"facility_id" binding:"required"`
	Specialty  string `json:"specialty" binding:"required"`
	Bio        string `json:"bio"`
}

type createScheduleRequest struct {
	DoctorID    string `json:"doctor_id" binding:"required"`
	Weekday     int    `json:"weekday" binding:"min=0,max=6"`
	StartMinute int    `json:"start_minute" binding:"min=0,max=1439"`
	EndMinute   int    `json:"end_minute" binding:"required,max=1440"`
	SlotMinutes int    `json:"slot_minutes" binding:"required,min=1"`
}

func (s *Server) handleCreateFacility(c *gin.Context) {
	var req createFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	facility, err := s.directory.CreateFacility(c.Request.Context(), &models.Facility{
		Name: req.Name, Address: req.Address, Phone: req.Phone,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, facility)
}

func (s *Server) handleGetFacility(c *gin.Context) {
	facility, err := s.directory.GetFacility(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, facility)
}

func (s *Server) handleListFacilities(c *gin.Context) {
	facilities, err := s.directory.ListFacilities(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, facilities)
}

func (s *Server) handleCreateDoctor(c *gin.Context) {
	var req createDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doctor, err := s.directory.CreateDoctor(c.Request.Context(), &models.Doctor{
		AccountID: req.AccountID, FacilityID: req.FacilityID,
		Specialty: req.Specialty, Bio: req.Bio,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (s *Server) handleGetDoctor(c *gin.Context) {
	doctor, err := s.directory.GetDoctor(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (s *Server) handleListDoctors(c *gin.Context) {
	doctors, err := s.directory.ListDoctors(c.Request.Context(), c.Query("facility_id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

func (s *Server) handleCreateSchedule(c *gin.Context) {
	var req createScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	schedule, err := s.directory.CreateSchedule(c.Request.Context(), &models.Schedule{
		DoctorID:    req.DoctorID,
		Weekday:     time.Weekday(req.Weekday),
		StartMinute: req.StartMinute,
		EndMinute:   req.EndMinute,
		SlotMinutes: req.SlotMinutes,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, schedule)
}

func (s *Server) handleListSchedules(c *gin.Context) {
	schedules, err := s.directory.ListSchedules(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedules)
}

func (s *Server) handleDeleteSchedule(c *gin.Context) {
	if err := s.directory.DeleteSchedule(c.Request.Context(), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
