package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// AttendanceHandler 活动出席接口
// 复合键路由同时支持 /:userId/:eventId 两段形式
// 与 /:id 的 "userId:eventId" 单段文本形式
type AttendanceHandler struct {
	svc    service.AttendanceService
	logger *zap.Logger
}

// Create POST /api/v1/attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}
	attendance, err := h.svc.Create(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, attendance)
}

// attendanceKey 支持两段式 /:userId/:eventId 与单段 "userId:eventId" 两种路径形式
func attendanceKey(c *gin.Context) (dto.CompositeKey, bool) {
	if eventID := c.Param("eventId"); eventID != "" {
		return dto.CompositeKey{UserID: c.Param("userId"), EventID: eventID}, true
	}
	return compositeKeyFrom(c, "userId")
}

// Get GET /api/v1/attendance/:userId/:eventId
func (h *AttendanceHandler) Get(c *gin.Context) {
	key, ok := attendanceKey(c)
	if !ok {
		return
	}
	attendance, err := h.svc.Get(c.Request.Context(), actorFrom(c), key.UserID, key.EventID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, attendance)
}

// GetByToken GET /api/v1/attendance/record/:id（"userId:eventId" 形式）
func (h *AttendanceHandler) GetByToken(c *gin.Context) {
	key, ok := compositeKeyFrom(c, "id")
	if !ok {
		return
	}
	attendance, err := h.svc.Get(c.Request.Context(), actorFrom(c), key.UserID, key.EventID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, attendance)
}

// UpdateStatus PATCH /api/v1/attendance/:userId/:eventId
func (h *AttendanceHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}
	key, ok := attendanceKey(c)
	if !ok {
		return
	}
	attendance, err := h.svc.UpdateStatus(c.Request.Context(), actorFrom(c), key.UserID, key.EventID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, attendance)
}

// Delete DELETE /api/v1/attendance/:userId/:eventId
func (h *AttendanceHandler) Delete(c *gin.Context) {
	key, ok := attendanceKey(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), key.UserID, key.EventID); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "attendance record removed"})
}

// ListByEvent GET /api/v1/attendance/event/:eventId
func (h *AttendanceHandler) ListByEvent(c *gin.Context) {
	var req dto.AttendanceListRequest
	if !bindQuery(c, &req) {
		return
	}
	records, total, err := h.svc.ListByEvent(c.Request.Context(), c.Param("eventId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, records, total, req.Page, req.Limit)
}

// Stats GET /api/v1/attendance/event/:eventId/stats
func (h *AttendanceHandler) Stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, stats)
}

// BulkCheckIn POST /api/v1/attendance/event/:eventId/bulk-check-in
// 单个失败不中断其余，逐条结果在响应体中回报
func (h *AttendanceHandler) BulkCheckIn(c *gin.Context) {
	var req dto.BulkCheckInRequest
	if !bindJSON(c, &req) {
		return
	}
	result, err := h.svc.BulkCheckIn(c.Request.Context(), actorFrom(c), c.Param("eventId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}
