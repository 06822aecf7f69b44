package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// EventHandler 活动接口
type EventHandler struct {
	svc    service.EventService
	logger *zap.Logger
}

// Create POST /api/v1/events
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.svc.Create(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, event)
}

// Get GET /api/v1/events/:id
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, event)
}

// Update PATCH /api/v1/events/:id
func (h *EventHandler) Update(c *gin.Context) {
	var req dto.UpdateEventRequest
	if !bindJSON(c, &req) {
		return
	}
	event, err := h.svc.Update(c.Request.Context(), actorFrom(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, event)
}

// Delete DELETE /api/v1/events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "event deleted"})
}

// List GET /api/v1/events
func (h *EventHandler) List(c *gin.Context) {
	var req dto.EventListRequest
	if !bindQuery(c, &req) {
		return
	}
	events, total, err := h.svc.List(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, events, total, req.Page, req.Limit)
}

// ListByOrganizer GET /api/v1/events/dashboard/organizer/:organizerId
func (h *EventHandler) ListByOrganizer(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	events, total, err := h.svc.ListByOrganizer(c.Request.Context(), c.Param("organizerId"), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, events, total, page.Page, page.Limit)
}
