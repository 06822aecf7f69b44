package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// AssignmentHandler 任务指派接口
type AssignmentHandler struct {
	svc    service.AssignmentService
	logger *zap.Logger
}

// Create POST /api/v1/assignments
func (h *AssignmentHandler) Create(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	assignment, err := h.svc.Create(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, assignment)
}

// Get GET /api/v1/assignments/:id
func (h *AssignmentHandler) Get(c *gin.Context) {
	assignment, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, assignment)
}

// UpdateStatus PATCH /api/v1/assignments/:id
func (h *AssignmentHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}
	assignment, err := h.svc.UpdateStatus(c.Request.Context(), actorFrom(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, assignment)
}

// Delete DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "assignment removed"})
}

// List GET /api/v1/assignments
func (h *AssignmentHandler) List(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	assignments, total, err := h.svc.List(c.Request.Context(), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, assignments, total, page.Page, page.Limit)
}

// ListByVolunteer GET /api/v1/assignments/volunteer/:volunteerId
func (h *AssignmentHandler) ListByVolunteer(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	assignments, total, err := h.svc.ListByVolunteer(c.Request.Context(), c.Param("volunteerId"), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, assignments, total, page.Page, page.Limit)
}

// ListByTask GET /api/v1/assignments/task/:taskId
func (h *AssignmentHandler) ListByTask(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	assignments, total, err := h.svc.ListByTask(c.Request.Context(), c.Param("taskId"), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, assignments, total, page.Page, page.Limit)
}

// MyAssignments GET /api/v1/assignments/my
func (h *AssignmentHandler) MyAssignments(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	actor := actorFrom(c)
	assignments, total, err := h.svc.ListByVolunteer(c.Request.Context(), actor.UserID, &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, assignments, total, page.Page, page.Limit)
}
