package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// VolunteerHandler 志愿者申请接口
type VolunteerHandler struct {
	svc    service.VolunteerService
	logger *zap.Logger
}

// Apply POST /api/v1/volunteers/apply
func (h *VolunteerHandler) Apply(c *gin.Context) {
	var req dto.ApplyVolunteerRequest
	if !bindJSON(c, &req) {
		return
	}
	volunteer, err := h.svc.Apply(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, volunteer)
}

// Get GET /api/v1/volunteers/:userId/:eventId
func (h *VolunteerHandler) Get(c *gin.Context) {
	volunteer, err := h.svc.Get(c.Request.Context(), c.Param("userId"), c.Param("eventId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, volunteer)
}

// UpdateStatus PATCH /api/v1/volunteers/:userId/:eventId
// 审批志愿者申请（组织者或超管）
func (h *VolunteerHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateVolunteerStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	volunteer, err := h.svc.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("userId"), c.Param("eventId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, volunteer)
}

// Withdraw DELETE /api/v1/volunteers/:userId/:eventId
func (h *VolunteerHandler) Withdraw(c *gin.Context) {
	if err := h.svc.Withdraw(c.Request.Context(), actorFrom(c), c.Param("userId"), c.Param("eventId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "volunteer record removed"})
}

// ListByEvent GET /api/v1/volunteers/event/:eventId
func (h *VolunteerHandler) ListByEvent(c *gin.Context) {
	var req dto.VolunteerListRequest
	if !bindQuery(c, &req) {
		return
	}
	volunteers, total, err := h.svc.ListByEvent(c.Request.Context(), c.Param("eventId"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, volunteers, total, req.Page, req.Limit)
}

// MyApplications GET /api/v1/volunteers/my-applications
func (h *VolunteerHandler) MyApplications(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	volunteers, total, err := h.svc.MyApplications(c.Request.Context(), actorFrom(c), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, volunteers, total, page.Page, page.Limit)
}
