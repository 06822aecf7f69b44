package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/permission"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
)

// VolunteerService 志愿者申请业务接口
type VolunteerService interface {
	Apply(ctx context.Context, actor Actor, req *dto.ApplyVolunteerRequest) (*dto.VolunteerResponse, error)
	Get(ctx context.Context, userID, eventID string) (*dto.VolunteerResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, userID, eventID string, req *dto.UpdateVolunteerStatusRequest) (*dto.VolunteerResponse, error)
	Withdraw(ctx context.Context, actor Actor, userID, eventID string) error
	ListByEvent(ctx context.Context, eventID string, req *dto.VolunteerListRequest) ([]dto.VolunteerResponse, int64, error)
	MyApplications(ctx context.Context, actor Actor, page *dto.PaginationRequest) ([]dto.VolunteerResponse, int64, error)
}

type volunteerService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewVolunteerService 创建 VolunteerService 实例
func NewVolunteerService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) VolunteerService {
	return &volunteerService{repo: repo, notification: notification, logger: logger}
}

// ────────────────────── Apply ──────────────────────

// Apply 申请成为活动志愿者
// 活动必须存在且开放招募，同一 (user, event) 重复申请返回冲突
func (s *volunteerService) Apply(ctx context.Context, actor Actor, req *dto.ApplyVolunteerRequest) (*dto.VolunteerResponse, error) {
	event, err := s.repo.Event.GetByID(ctx, req.EventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", req.EventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}
	if !event.AcceptingVolunteers {
		return nil, apperror.Validationf("event is not accepting volunteers")
	}

	if _, err := s.repo.Volunteer.Get(ctx, actor.UserID, req.EventID); err == nil {
		return nil, apperror.Conflictf("you have already applied to volunteer for this event")
	} else if !isNotFound(err) {
		s.logger.Error("查询志愿者记录失败", zap.Error(err))
		return nil, err
	}

	volunteer := &model.EventVolunteer{
		UserID:  actor.UserID,
		EventID: req.EventID,
		Status:  model.VolunteerStatusPending,
	}
	if err := s.repo.Volunteer.Create(ctx, volunteer); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflictf("you have already applied to volunteer for this event")
		}
		s.logger.Error("创建志愿者申请失败", zap.Error(err))
		return nil, err
	}

	volunteer.Event = event
	return s.toVolunteerResponse(volunteer), nil
}

// ────────────────────── Get ──────────────────────

func (s *volunteerService) Get(ctx context.Context, userID, eventID string) (*dto.VolunteerResponse, error) {
	volunteer, err := s.getVolunteer(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	return s.toVolunteerResponse(volunteer), nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus 审批志愿者申请（组织者或超管）
// 批准时写入 ApprovedAt，结果通过站内通知与邮件告知申请人
func (s *volunteerService) UpdateStatus(ctx context.Context, actor Actor, userID, eventID string, req *dto.UpdateVolunteerStatusRequest) (*dto.VolunteerResponse, error) {
	volunteer, err := s.getVolunteer(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	event := volunteer.Event
	if event == nil {
		event, err = s.repo.Event.GetByID(ctx, eventID)
		if err != nil {
			if isNotFound(err) {
				return nil, apperror.NotFoundf("event %s not found", eventID)
			}
			return nil, err
		}
	}

	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "review volunteers for"); err != nil {
		return nil, err
	}

	volunteer.Status = req.Status
	if req.Status == model.VolunteerStatusApproved {
		now := time.Now()
		volunteer.ApprovedAt = &now
	} else {
		volunteer.ApprovedAt = nil
	}

	if err := s.repo.Volunteer.Update(ctx, volunteer); err != nil {
		s.logger.Error("更新志愿者申请失败", zap.Error(err))
		return nil, err
	}

	s.notification.NotifyApplicationUpdate(ctx, volunteer, event, req.Status == model.VolunteerStatusApproved)

	return s.toVolunteerResponse(volunteer), nil
}

// ────────────────────── Withdraw ──────────────────────

// Withdraw 撤回申请（本人）或移除志愿者（组织者/超管）
func (s *volunteerService) Withdraw(ctx context.Context, actor Actor, userID, eventID string) error {
	volunteer, err := s.getVolunteer(ctx, userID, eventID)
	if err != nil {
		return err
	}

	if actor.UserID != volunteer.UserID {
		event := volunteer.Event
		if event == nil {
			event, err = s.repo.Event.GetByID(ctx, eventID)
			if err != nil {
				if isNotFound(err) {
					return apperror.NotFoundf("event %s not found", eventID)
				}
				return err
			}
		}
		if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "remove volunteers from"); err != nil {
			return err
		}
	}

	if err := s.repo.Volunteer.Delete(ctx, userID, eventID); err != nil {
		s.logger.Error("删除志愿者记录失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListByEvent ──────────────────────

func (s *volunteerService) ListByEvent(ctx context.Context, eventID string, req *dto.VolunteerListRequest) ([]dto.VolunteerResponse, int64, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	if req.Status != "" && !model.IsValidVolunteerStatus(req.Status) {
		return nil, 0, apperror.Validationf("invalid volunteer status: %s", req.Status)
	}
	if _, err := s.repo.Event.GetByID(ctx, eventID); err != nil {
		if isNotFound(err) {
			return nil, 0, apperror.NotFoundf("event %s not found", eventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, 0, err
	}

	volunteers, total, err := s.repo.Volunteer.ListByEvent(ctx, eventID, req.Status, req.Offset(), req.Limit)
	if err != nil {
		s.logger.Error("查询志愿者列表失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toVolunteerResponses(volunteers), total, nil
}

// ────────────────────── MyApplications ──────────────────────

func (s *volunteerService) MyApplications(ctx context.Context, actor Actor, page *dto.PaginationRequest) ([]dto.VolunteerResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	volunteers, total, err := s.repo.Volunteer.ListByUser(ctx, actor.UserID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询我的志愿申请失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toVolunteerResponses(volunteers), total, nil
}

// ── 内部辅助方法 ──

func (s *volunteerService) getVolunteer(ctx context.Context, userID, eventID string) (*model.EventVolunteer, error) {
	volunteer, err := s.repo.Volunteer.Get(ctx, userID, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("volunteer record %s:%s not found", userID, eventID)
		}
		s.logger.Error("查询志愿者记录失败", zap.Error(err))
		return nil, err
	}
	return volunteer, nil
}

func (s *volunteerService) toVolunteerResponse(v *model.EventVolunteer) *dto.VolunteerResponse {
	resp := &dto.VolunteerResponse{
		UserID:    v.UserID,
		EventID:   v.EventID,
		Status:    v.Status,
		CreatedAt: v.CreatedAt.Format(timeLayout),
	}
	if v.ApprovedAt != nil {
		resp.ApprovedAt = v.ApprovedAt.Format(timeLayout)
	}
	if v.User != nil {
		resp.UserName = v.User.FullName
	}
	if v.Event != nil {
		resp.EventName = v.Event.Name
	}
	return resp
}

func (s *volunteerService) toVolunteerResponses(volunteers []model.EventVolunteer) []dto.VolunteerResponse {
	result := make([]dto.VolunteerResponse, 0, len(volunteers))
	for i := range volunteers {
		result = append(result, *s.toVolunteerResponse(&volunteers[i]))
	}
	return result
}
