package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// CommentHandler 评论评分接口
type CommentHandler struct {
	svc    service.CommentService
	logger *zap.Logger
}

// Create POST /api/v1/comments-ratings
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.svc.Create(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, comment)
}

// Get GET /api/v1/comments-ratings/:id
func (h *CommentHandler) Get(c *gin.Context) {
	comment, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, comment)
}

// Update PATCH /api/v1/comments-ratings/:id
// 仅作者本人或管理员
func (h *CommentHandler) Update(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if !bindJSON(c, &req) {
		return
	}
	comment, err := h.svc.Update(c.Request.Context(), actorFrom(c), c.Param("id"), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, comment)
}

// Delete DELETE /api/v1/comments-ratings/:id
// 软删除，记录保留但从查询中消失
func (h *CommentHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), actorFrom(c), c.Param("id")); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "comment deleted"})
}

// ListByEvent GET /api/v1/comments-ratings/event/:eventId
func (h *CommentHandler) ListByEvent(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	comments, total, err := h.svc.ListByEvent(c.Request.Context(), c.Param("eventId"), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, comments, total, page.Page, page.Limit)
}

// EventStats GET /api/v1/comments-ratings/event/:eventId/stats
func (h *CommentHandler) EventStats(c *gin.Context) {
	stats, err := h.svc.EventStats(c.Request.Context(), c.Param("eventId"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, stats)
}

// MyComments GET /api/v1/comments-ratings/my-comments
func (h *CommentHandler) MyComments(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	comments, total, err := h.svc.MyComments(c.Request.Context(), actorFrom(c), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, comments, total, page.Page, page.Limit)
}

// ListByUser GET /api/v1/comments-ratings/user/:userId
func (h *CommentHandler) ListByUser(c *gin.Context) {
	var page dto.PaginationRequest
	if !bindQuery(c, &page) {
		return
	}
	comments, total, err := h.svc.ListByUser(c.Request.Context(), c.Param("userId"), &page)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OKPage(c, comments, total, page.Page, page.Limit)
}
