package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"quadralink/middleware"
	"quadralink/services/booking"
	"quadralink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Engine booking.BookingEngine
	Logger *zap.Logger
}

func NewBookingHandler(engine booking.BookingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// statusForCode maps engine error codes to HTTP statuses.
func statusForCode(code string) int {
	switch code {
	case booking.CodeNotFound:
		return http.StatusNotFound
	case booking.CodeInvalidInput:
		return http.StatusBadRequest
	case booking.CodeConflict:
		return http.StatusConflict
	case booking.CodeForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// respondEngineError writes a validation failure as its mapped status, and
// anything else as an opaque 500.
func (h *BookingHandler) respondEngineError(c *gin.Context, err error) {
	var engineErr *booking.Error
	if errors.As(err, &engineErr) {
		c.JSON(statusForCode(engineErr.Code), gin.H{"error": engineErr.Message})
		return
	}
	h.Logger.Error("booking operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}

// BookSession handles POST /councillors/book.
func (h *BookingHandler) BookSession(c *gin.Context) {
	var input struct {
		CouncillorID string    `json:"councillorId" binding:"required"`
		StartTime    time.Time `json:"startTime" binding:"required"`
		EndTime      time.Time `json:"endTime" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	requesterID := c.GetString(middleware.ContextUserID)
	b, err := h.Engine.CreateBooking(c.Request.Context(), requesterID, input.CouncillorID, input.StartTime, input.EndTime)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// UpdateBooking handles PATCH /councillors/book/:id (accept/decline/reschedule).
// Route-level auth restricts it to moderator/admin.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	var input struct {
		Status       string     `json:"status" binding:"required"`
		NewStartTime *time.Time `json:"newStartTime"`
		NewEndTime   *time.Time `json:"newEndTime"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	b, err := h.Engine.UpdateBookingStatus(c.Request.Context(), c.Param("id"), input.Status, input.NewStartTime, input.NewEndTime)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking updated", "booking": b})
}

// CancelBooking handles DELETE /councillors/book/:id.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)
	role := c.GetString(middleware.ContextRole)

	b, err := h.Engine.CancelBooking(c.Request.Context(), c.Param("id"), actorID, role)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": b})
}

// GetSchedule handles GET /councillors/schedule/:id.
func (h *BookingHandler) GetSchedule(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	schedule, err := h.Engine.GetSchedule(c.Request.Context(), c.Param("id"), page, limit)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, schedule)
}
