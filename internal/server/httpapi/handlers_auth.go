package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/medibook/medibook/internal/common"
	"github.com/medibook/medibook/internal/server/models"
	"github.com/medibook/medibook/internal/server/services"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=patient doctor clinic_admin system_admin"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type refreshRequest struct {
	AccountID    string `json:"account_id" binding:"required"`
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type accountResponse struct {
	ID     string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Active bool   `json:"active"`
}

type authResponse struct {
	User         accountResponse `json:"user"`
	AccessToken  string          `json:"access_token"`
	RefreshToken string          `json:"refresh_token"`
}

func toAccountResponse(account *models.Account) accountResponse {
	return accountResponse{
		ID:     account.ID,
		Email:  account.Email,
		Name:   account.Name,
		Role:   string(account.Role),
		Active: account.Active,
	}
}

func toAuthResponse(account *models.Account, pair *services.TokenPair) authResponse {
	return authResponse{
		User:         toAccountResponse(account),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, pair, err := s.sessions.Register(c.Request.Context(), services.RegisterDraft{
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     models.Role(req.Role),
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toAuthResponse(account, pair))
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, pair, err := s.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(account, pair))
}

func (s *Server) handleRefresh(c *gin.Context) {
	var req refreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	account, pair, err := s.sessions.Refresh(c.Request.Context(), req.AccountID, req.RefreshToken)
	if err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, toAuthResponse(account, pair))
}

func (s *Server) handleLogout(c *gin.Context) {
	if err := s.sessions.Logout(c.Request.Context(), accountID(c)); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// writeError maps service errors to HTTP responses. User-facing messages are
// stable and non-leaking; everything else is logged server-side with detail
// and returned as a generic failure.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrInvalidCredentials.Error()})
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
	case errors.Is(err, common.ErrAccountDisabled):
		c.JSON(http.StatusForbidden, gin.H{"error": common.ErrAccountDisabled.Error()})
	case errors.Is(err, common.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, common.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": common.ErrDuplicateEmail.Error()})
	case errors.Is(err, common.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": common.ErrSlotTaken.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, common.ErrInfrastructure):
		s.logger.Error(c.Request.Context(), "infrastructure failure", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "temporarily unavailable"})
	default:
		s.logger.Error(c.Request.Context(), "unhandled error", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
