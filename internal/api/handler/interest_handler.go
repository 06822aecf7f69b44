package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// InterestHandler 活动关注接口
type InterestHandler struct {
	svc    service.InterestService
	logger *zap.Logger
}

// Add POST /api/v1/interests
func (h *InterestHandler) Add(c *gin.Context) {
	var req dto.AddInterestRequest
	if !bindJSON(c, &req) {
		return
	}
	interest, err := h.svc.Add(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, interest)
}

// Remove DELETE /api/v1/interests/event/:eventId
func (h *InterestHandler) Remove(c *gin.Context) {
	if err := h.svc.Remove(c.Request.Context(), actorFrom(c), c.Param("eventId")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "interest removed"})
}

// My GET /api/v1/interests/my-interests
func (h *InterestHandler) My(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	interests, total, err := h.svc.MyInterests(c.Request.Context(), actorFrom(c), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, interests, total, page.Page, page.Limit)
}

// EventUsers GET /api/v1/interests/event/:eventId/users
func (h *InterestHandler) EventUsers(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	interests, total, err := h.svc.EventUsers(c.Request.Context(), c.Param("eventId"), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, interests, total, page.Page, page.Limit)
}

// Check GET /api/v1/interests/check/:eventId
func (h *InterestHandler) Check(c *gin.Context) {
	result, err := h.svc.Check(c.Request.Context(), actorFrom(c), c.Param("eventId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, result)
}
