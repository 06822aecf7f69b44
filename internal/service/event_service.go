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

// EventService 活动业务接口
// 所有变更操作遵循固定顺序：存在性检查 → 权限判定 → 外键校验 → 写入
type EventService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	GetByID(ctx context.Context, id string) (*dto.EventResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventResponse, int64, error)
	ListByOrganizer(ctx context.Context, organizerID string, page *dto.PaginationRequest) ([]dto.EventResponse, int64, error)
}

type eventService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewEventService 创建 EventService 实例
func NewEventService(repo *repository.Repository, logger *zap.Logger) EventService {
	return &eventService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *eventService) Create(ctx context.Context, actor Actor, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if !permission.IsAdmin(actor.SystemRole) {
		return nil, apperror.Forbiddenf("You do not have permission to create events")
	}

	// 外键校验：分类必须存在
	if _, err := s.repo.Category.GetByID(ctx, req.CategoryID); err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("category %s not found", req.CategoryID)
		}
		s.logger.Error("查询分类失败", zap.Error(err))
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = model.EventStatusDraft
	}

	event := &model.Event{
		Name:                req.Name,
		Description:         req.Description,
		DateTime:            req.DateTime,
		LocationDesc:        req.LocationDesc,
		Status:              status,
		OrganizerID:         actor.UserID,
		CategoryID:          req.CategoryID,
		AcceptingVolunteers: req.AcceptingVolunteers,
	}

	if err := s.repo.Event.Create(ctx, event); err != nil {
		s.logger.Error("创建活动失败", zap.Error(err))
		return nil, err
	}

	return s.toEventResponse(event), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *eventService) GetByID(ctx context.Context, id string) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toEventResponse(event), nil
}

// ────────────────────── Update ──────────────────────

func (s *eventService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateEventRequest) (*dto.EventResponse, error) {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "update"); err != nil {
		return nil, err
	}

	// 外键重校验：更换分类时目标分类必须存在
	if req.CategoryID != nil && *req.CategoryID != event.CategoryID {
		if _, err := s.repo.Category.GetByID(ctx, *req.CategoryID); err != nil {
			if isNotFound(err) {
				return nil, apperror.NotFoundf("category %s not found", *req.CategoryID)
			}
			s.logger.Error("查询分类失败", zap.Error(err))
			return nil, err
		}
		event.CategoryID = *req.CategoryID
	}

	if req.Name != nil {
		event.Name = *req.Name
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.DateTime != nil {
		event.DateTime = *req.DateTime
	}
	if req.LocationDesc != nil {
		event.LocationDesc = *req.LocationDesc
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.AcceptingVolunteers != nil {
		event.AcceptingVolunteers = *req.AcceptingVolunteers
	}

	if err := s.repo.Event.Update(ctx, event); err != nil {
		s.logger.Error("更新活动失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toEventResponse(event), nil
}

// ────────────────────── Delete ──────────────────────

// Delete 软删除活动：置 deleted_at 并强制状态 CANCELLED
func (s *eventService) Delete(ctx context.Context, actor Actor, id string) error {
	event, err := s.getEvent(ctx, id)
	if err != nil {
		return err
	}

	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "delete"); err != nil {
		return err
	}

	if err := s.repo.Event.SoftDelete(ctx, id); err != nil {
		s.logger.Error("删除活动失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── List ──────────────────────

func (s *eventService) List(ctx context.Context, req *dto.EventListRequest) ([]dto.EventResponse, int64, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	filter := repository.EventFilter{
		Status:     req.Status,
		CategoryID: req.CategoryID,
		Search:     req.Search,
		DateFrom:   req.DateFrom,
		DateTo:     req.DateTo,
	}

	events, total, err := s.repo.Event.List(ctx, filter, req.Offset(), req.Limit)
	if err != nil {
		s.logger.Error("查询活动列表失败", zap.Error(err))
		return nil, 0, err
	}

	return s.toEventResponses(events), total, nil
}

// ────────────────────── ListByOrganizer ──────────────────────

func (s *eventService) ListByOrganizer(ctx context.Context, organizerID string, page *dto.PaginationRequest) ([]dto.EventResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	if _, err := s.repo.User.GetByID(ctx, organizerID); err != nil {
		if isNotFound(err) {
			return nil, 0, apperror.NotFoundf("organizer %s not found", organizerID)
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, 0, err
	}

	events, total, err := s.repo.Event.List(ctx, repository.EventFilter{OrganizerID: organizerID}, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询组织者活动失败", zap.Error(err))
		return nil, 0, err
	}

	return s.toEventResponses(events), total, nil
}

// ── 内部辅助方法 ──

func (s *eventService) getEvent(ctx context.Context, id string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", id)
		}
		s.logger.Error("查询活动失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *eventService) toEventResponse(event *model.Event) *dto.EventResponse {
	resp := eventToDTO(event)
	return &resp
}

func (s *eventService) toEventResponses(events []model.Event) []dto.EventResponse {
	return eventsToDTO(events)
}

// eventToDTO 活动模型 → 响应 DTO（仪表盘聚合等处共用）
func eventToDTO(event *model.Event) dto.EventResponse {
	resp := dto.EventResponse{
		ID:                  event.EventID,
		Name:                event.Name,
		Description:         event.Description,
		DateTime:            event.DateTime.Format(timeLayout),
		LocationDesc:        event.LocationDesc,
		Status:              event.Status,
		OrganizerID:         event.OrganizerID,
		CategoryID:          event.CategoryID,
		AcceptingVolunteers: event.AcceptingVolunteers,
		CreatedAt:           event.CreatedAt.Format(timeLayout),
		UpdatedAt:           event.UpdatedAt.Format(timeLayout),
	}
	if event.Organizer != nil {
		resp.OrganizerName = event.Organizer.FullName
	}
	if event.Category != nil {
		resp.CategoryName = event.Category.Name
	}
	return resp
}

func eventsToDTO(events []model.Event) []dto.EventResponse {
	result := make([]dto.EventResponse, 0, len(events))
	for i := range events {
		result = append(result, eventToDTO(&events[i]))
	}
	return result
}
