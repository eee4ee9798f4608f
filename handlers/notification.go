package handlers

import (
	"net/http"

	"quadralink/middleware"
	"quadralink/services/notification"
	"quadralink/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the per-user notification inbox.
type NotificationHandler struct {
	Service notification.NotificationService
	Logger  *zap.Logger
}

func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Service: svc, Logger: logger}
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	notifications, err := h.Service.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("notification listing failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// MarkRead handles PATCH /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	userID := c.GetString(middleware.ContextUserID)
	if err := h.Service.MarkRead(c.Request.Context(), c.Param("id"), userID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification read"})
}
