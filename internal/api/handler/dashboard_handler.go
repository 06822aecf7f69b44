package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// DashboardHandler 仪表盘接口
type DashboardHandler struct {
	svc    service.DashboardService
	logger *zap.Logger
}

// Get GET /api/v1/events/dashboard
func (h *DashboardHandler) Get(c *gin.Context) {
	dashboard, err := h.svc.GetDashboard(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, dashboard)
}

// Stats GET /api/v1/events/dashboard/stats
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.svc.GetStats(c.Request.Context(), actorFrom(c))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, stats)
}

// Upcoming GET /api/v1/events/dashboard/upcoming
func (h *DashboardHandler) Upcoming(c *gin.Context) {
	h.bucket(c, model.EventStatusPublished)
}

// Drafts GET /api/v1/events/dashboard/drafts
func (h *DashboardHandler) Drafts(c *gin.Context) {
	h.bucket(c, model.EventStatusDraft)
}

// Completed GET /api/v1/events/dashboard/completed
func (h *DashboardHandler) Completed(c *gin.Context) {
	h.bucket(c, model.EventStatusCompleted)
}

// Cancelled GET /api/v1/events/dashboard/cancelled
func (h *DashboardHandler) Cancelled(c *gin.Context) {
	h.bucket(c, model.EventStatusCancelled)
}

func (h *DashboardHandler) bucket(c *gin.Context, status string) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	events, total, err := h.svc.GetBucket(c.Request.Context(), actorFrom(c), status, &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, events, total, page.Page, page.Limit)
}
