package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// NotificationHandler 通知接口（只操作当前用户自己的通知）
type NotificationHandler struct {
	svc    service.NotificationService
	logger *zap.Logger
}

// List GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var req dto.NotificationListRequest
	if !bindQuery(c, &req) {
		return
	}
	notifications, total, err := h.svc.List(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, notifications, total, req.Page, req.Limit)
}

// Get GET /api/v1/notifications/:id
func (h *NotificationHandler) Get(c *gin.Context) {
	notification, err := h.svc.GetByID(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, notification)
}

// UnreadCount GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.svc.UnreadCount(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, count)
}

// MarkRead PATCH /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.svc.MarkRead(c.Request.Context(), actorFrom(c), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, notification)
}

// MarkAllRead PATCH /api/v1/notifications/mark-all-read
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.svc.MarkAllRead(c.Request.Context(), actorFrom(c)); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "all notifications marked as read"})
}
