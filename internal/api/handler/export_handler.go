package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/service"
	"eventura/pkg/response"
)

// ExportHandler 数据导出接口（直接写出文件而非 JSON 信封）
type ExportHandler struct {
	svc    service.ExportService
	logger *zap.Logger
}

// AttendanceXLSX GET /api/v1/attendance/event/:eventId/export
func (h *ExportHandler) AttendanceXLSX(c *gin.Context) {
	content, filename, err := h.svc.AttendanceXLSX(c.Request.Context(), actorFrom(c), c.Param("eventId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", content)
}

// EventICS GET /api/v1/events/:id/calendar.ics
func (h *ExportHandler) EventICS(c *gin.Context) {
	content, filename, err := h.svc.EventICS(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", content)
}
