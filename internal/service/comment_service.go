package service

import (
	"context"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/permission"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
)

// CommentService 评论评分业务接口
type CommentService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CommentResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	ListByEvent(ctx context.Context, eventID string, page *dto.PaginationRequest) ([]dto.CommentResponse, int64, error)
	ListByUser(ctx context.Context, userID string, page *dto.PaginationRequest) ([]dto.CommentResponse, int64, error)
	MyComments(ctx context.Context, actor Actor, page *dto.PaginationRequest) ([]dto.CommentResponse, int64, error)
	EventStats(ctx context.Context, eventID string) (*dto.CommentStats, error)
}

type commentService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCommentService 创建 CommentService 实例
func NewCommentService(repo *repository.Repository, logger *zap.Logger) CommentService {
	return &commentService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 发表评论评分，Rating 取值 1-5
func (s *commentService) Create(ctx context.Context, actor Actor, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, apperror.Validationf("rating must be between 1 and 5")
	}
	if _, err := s.repo.Event.GetByID(ctx, req.EventID); err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", req.EventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}

	comment := &model.CommentRating{
		EventID:     req.EventID,
		UserID:      actor.UserID,
		CommentText: req.CommentText,
		Rating:      req.Rating,
		Status:      model.CommentStatusActive,
	}
	if err := s.repo.Comment.Create(ctx, comment); err != nil {
		s.logger.Error("创建评论失败", zap.Error(err))
		return nil, err
	}
	return s.toCommentResponse(comment), nil
}

// ────────────────────── GetByID ──────────────────────

// GetByID 查询单条评论，已删除的按不存在处理
func (s *commentService) GetByID(ctx context.Context, id string) (*dto.CommentResponse, error) {
	comment, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toCommentResponse(comment), nil
}

// ────────────────────── Update ──────────────────────

// Update 修改评论，仅作者本人或管理员
func (s *commentService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.getActive(ctx, id)
	if err != nil {
		return nil, err
	}
	if actor.UserID != comment.UserID && !permission.IsAdmin(actor.SystemRole) {
		return nil, apperror.Forbiddenf("You can only modify your own comments")
	}

	if req.CommentText != nil {
		comment.CommentText = *req.CommentText
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, apperror.Validationf("rating must be between 1 and 5")
		}
		comment.Rating = *req.Rating
	}

	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.logger.Error("更新评论失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.toCommentResponse(comment), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 软删除评论（状态置 DELETED，记录保留），仅作者本人或管理员
func (s *commentService) Delete(ctx context.Context, actor Actor, id string) error {
	comment, err := s.getActive(ctx, id)
	if err != nil {
		return err
	}
	if actor.UserID != comment.UserID && !permission.IsAdmin(actor.SystemRole) {
		return apperror.Forbiddenf("You can only delete your own comments")
	}

	comment.Status = model.CommentStatusDeleted
	if err := s.repo.Comment.Update(ctx, comment); err != nil {
		s.logger.Error("删除评论失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 列表查询 ──────────────────────

func (s *commentService) ListByEvent(ctx context.Context, eventID string, page *dto.PaginationRequest) ([]dto.CommentResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	if _, err := s.repo.Event.GetByID(ctx, eventID); err != nil {
		if isNotFound(err) {
			return nil, 0, apperror.NotFoundf("event %s not found", eventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, 0, err
	}
	comments, total, err := s.repo.Comment.ListByEvent(ctx, eventID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询活动评论失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toCommentResponses(comments), total, nil
}

func (s *commentService) ListByUser(ctx context.Context, userID string, page *dto.PaginationRequest) ([]dto.CommentResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	comments, total, err := s.repo.Comment.ListByUser(ctx, userID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询用户评论失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toCommentResponses(comments), total, nil
}

func (s *commentService) MyComments(ctx context.Context, actor Actor, page *dto.PaginationRequest) ([]dto.CommentResponse, int64, error) {
	return s.ListByUser(ctx, actor.UserID, page)
}

// ────────────────────── EventStats ──────────────────────

// EventStats 活动评论数与平均评分（仅统计 ACTIVE）
func (s *commentService) EventStats(ctx context.Context, eventID string) (*dto.CommentStats, error) {
	if _, err := s.repo.Event.GetByID(ctx, eventID); err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", eventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}
	count, avg, err := s.repo.Comment.StatsByEvent(ctx, eventID)
	if err != nil {
		s.logger.Error("统计评论失败", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return &dto.CommentStats{Count: count, AverageRating: avg}, nil
}

// ── 内部辅助方法 ──

func (s *commentService) getActive(ctx context.Context, id string) (*model.CommentRating, error) {
	comment, err := s.repo.Comment.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("comment %s not found", id)
		}
		s.logger.Error("查询评论失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if comment.Status == model.CommentStatusDeleted {
		return nil, apperror.NotFoundf("comment %s not found", id)
	}
	return comment, nil
}

func (s *commentService) toCommentResponse(comment *model.CommentRating) *dto.CommentResponse {
	resp := &dto.CommentResponse{
		ID:          comment.CommentID,
		EventID:     comment.EventID,
		UserID:      comment.UserID,
		CommentText: comment.CommentText,
		Rating:      comment.Rating,
		Status:      comment.Status,
		CreatedAt:   comment.CreatedAt.Format(timeLayout),
		UpdatedAt:   comment.UpdatedAt.Format(timeLayout),
	}
	if comment.User != nil {
		resp.UserName = comment.User.FullName
	}
	return resp
}

func (s *commentService) toCommentResponses(comments []model.CommentRating) []dto.CommentResponse {
	result := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		result = append(result, *s.toCommentResponse(&comments[i]))
	}
	return result
}
