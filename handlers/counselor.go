package handlers

import (
	"errors"
	"net/http"

	"quadralink/middleware"
	"quadralink/models"
	"quadralink/services/counselor"
	"quadralink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CounselorHandler exposes counselor profile management.
type CounselorHandler struct {
	Service counselor.CounselorService
	Logger  *zap.Logger
}

func NewCounselorHandler(svc counselor.CounselorService, logger *zap.Logger) *CounselorHandler {
	return &CounselorHandler{Service: svc, Logger: logger}
}

func (h *CounselorHandler) respondError(c *gin.Context, err error) {
	switch {
	case counselor.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, counselor.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("counselor operation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// CreateProfile handles POST /councillors. Admin only (route-level).
func (h *CounselorHandler) CreateProfile(c *gin.Context) {
	var req counselor.CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	profile, err := h.Service.CreateProfile(c.Request.Context(), req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, profile)
}

// List handles GET /councillors.
func (h *CounselorHandler) List(c *gin.Context) {
	counselors, err := h.Service.List(c.Request.Context())
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, counselors)
}

// GetByID handles GET /councillors/:id.
func (h *CounselorHandler) GetByID(c *gin.Context) {
	profile, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// mayManage allows moderators and admins to manage any profile, and a
// counselor to manage their own.
func (h *CounselorHandler) mayManage(c *gin.Context, counselorID string) bool {
	role := c.GetString(middleware.ContextRole)
	if models.HasRole(role, models.RoleModerator, models.RoleAdmin) {
		return true
	}
	profile, err := h.Service.GetByID(c.Request.Context(), counselorID)
	if err != nil {
		h.respondError(c, err)
		return false
	}
	if profile.UserID != c.GetString(middleware.ContextUserID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "can only manage own profile"})
		return false
	}
	return true
}

// UpdateAvailability handles PUT /councillors/:id/availability.
func (h *CounselorHandler) UpdateAvailability(c *gin.Context) {
	var input struct {
		Availability map[string][]string `json:"availability" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !h.mayManage(c, c.Param("id")) {
		return
	}

	if err := h.Service.UpdateAvailability(c.Request.Context(), c.Param("id"), input.Availability); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated"})
}

// SetStatus handles PATCH /councillors/:id/status.
func (h *CounselorHandler) SetStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !h.mayManage(c, c.Param("id")) {
		return
	}

	if err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Status updated"})
}

// SetLimits handles PATCH /councillors/:id/limits.
func (h *CounselorHandler) SetLimits(c *gin.Context) {
	var input struct {
		MaxSessions     int `json:"maxSessions" binding:"required"`
		SessionDuration int `json:"sessionDuration" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if !h.mayManage(c, c.Param("id")) {
		return
	}

	if err := h.Service.SetLimits(c.Request.Context(), c.Param("id"), input.MaxSessions, input.SessionDuration); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Limits updated"})
}
