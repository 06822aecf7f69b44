package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
)

// InterestService 活动关注业务接口
type InterestService interface {
	Add(ctx context.Context, actor Actor, req *dto.AddInterestRequest) (*dto.InterestResponse, error)
	Remove(ctx context.Context, actor Actor, eventID string) error
	MyInterests(ctx context.Context, actor Actor, page *dto.PaginationRequest) ([]dto.InterestResponse, int64, error)
	EventUsers(ctx context.Context, eventID string, page *dto.PaginationRequest) ([]dto.InterestResponse, int64, error)
	Check(ctx context.Context, actor Actor, eventID string) (*dto.InterestCheckResponse, error)
}

type interestService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInterestService 创建 InterestService 实例
func NewInterestService(repo *repository.Repository, logger *zap.Logger) InterestService {
	return &interestService{repo: repo, logger: logger}
}

// ────────────────────── Add ──────────────────────

// Add 关注活动，重复关注返回冲突
func (s *interestService) Add(ctx context.Context, actor Actor, req *dto.AddInterestRequest) (*dto.InterestResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, req.EventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", req.EventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}

	if _, err := s.repo.Interest.Get(ctx, actor.UserID, req.EventID); err == nil {
		return nil, apperror.Conflictf("already interested in this event")
	} else if !isNotFound(err) {
		s.logger.Error("查询关注记录失败", zap.Error(err))
		return nil, err
	}

	interest := &model.Interest{
		UserID:       actor.UserID,
		EventID:      req.EventID,
		InterestedAt: time.Now(),
	}
	if err := s.repo.Interest.Create(ctx, interest); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflictf("already interested in this event")
		}
		s.logger.Error("创建关注记录失败", zap.Error(err))
		return nil, err
	}

	interest.Event = event
	return s.toInterestResponse(interest), nil
}

// ────────────────────── Remove ──────────────────────

func (s *interestService) Remove(ctx context.Context, actor Actor, eventID string) error {
	if _, err := s.repo.Interest.Get(ctx, actor.UserID, eventID); err != nil {
		if isNotFound(err) {
			return apperror.NotFoundf("interest record %s:%s not found", actor.UserID, eventID)
		}
		s.logger.Error("查询关注记录失败", zap.Error(err))
		return err
	}
	if err := s.repo.Interest.Delete(ctx, actor.UserID, eventID); err != nil {
		s.logger.Error("删除关注记录失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── MyInterests ──────────────────────

func (s *interestService) MyInterests(ctx context.Context, actor Actor, page *dto.PaginationRequest) ([]dto.InterestResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	interests, total, err := s.repo.Interest.ListByUser(ctx, actor.UserID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询我的关注失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toInterestResponses(interests), total, nil
}

// ────────────────────── EventUsers ──────────────────────

func (s *interestService) EventUsers(ctx context.Context, eventID string, page *dto.PaginationRequest) ([]dto.InterestResponse, int64, error) {
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
	interests, total, err := s.repo.Interest.ListByEvent(ctx, eventID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询活动关注用户失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toInterestResponses(interests), total, nil
}

// ────────────────────── Check ──────────────────────

// Check 查询当前用户是否已关注给定活动
func (s *interestService) Check(ctx context.Context, actor Actor, eventID string) (*dto.InterestCheckResponse, error) {
	_, err := s.repo.Interest.Get(ctx, actor.UserID, eventID)
	if err != nil {
		if isNotFound(err) {
			return &dto.InterestCheckResponse{Interested: false}, nil
		}
		s.logger.Error("查询关注记录失败", zap.Error(err))
		return nil, err
	}
	return &dto.InterestCheckResponse{Interested: true}, nil
}

// ── 内部辅助方法 ──

func (s *interestService) toInterestResponse(interest *model.Interest) *dto.InterestResponse {
	resp := &dto.InterestResponse{
		UserID:       interest.UserID,
		EventID:      interest.EventID,
		InterestedAt: interest.InterestedAt.Format(timeLayout),
	}
	if interest.Event != nil {
		event := eventToDTO(interest.Event)
		resp.Event = &event
	}
	if interest.User != nil {
		user := userToDTO(interest.User)
		resp.User = &user
	}
	return resp
}

func (s *interestService) toInterestResponses(interests []model.Interest) []dto.InterestResponse {
	result := make([]dto.InterestResponse, 0, len(interests))
	for i := range interests {
		result = append(result, *s.toInterestResponse(&interests[i]))
	}
	return result
}
