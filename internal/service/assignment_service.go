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

// AssignmentService 任务指派业务接口
type AssignmentService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context, page *dto.PaginationRequest) ([]dto.AssignmentResponse, int64, error)
	ListByVolunteer(ctx context.Context, volunteerID string, page *dto.PaginationRequest) ([]dto.AssignmentResponse, int64, error)
	ListByTask(ctx context.Context, taskID string, page *dto.PaginationRequest) ([]dto.AssignmentResponse, int64, error)
}

type assignmentService struct {
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, notification NotificationService, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, notification: notification, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 指派任务给志愿者
// 前置：任务存在 → 权限（归属活动组织者）→ 志愿者已 APPROVED → 不重复指派
func (s *assignmentService) Create(ctx context.Context, actor Actor, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	task, err := s.repo.Task.GetByID(ctx, req.TaskID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("task %s not found", req.TaskID)
		}
		s.logger.Error("查询任务失败", zap.Error(err))
		return nil, err
	}

	event, err := s.repo.Event.GetByID(ctx, task.EventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", task.EventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}

	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "assign tasks for"); err != nil {
		return nil, err
	}

	// 被指派者必须是该活动 APPROVED 的志愿者
	volunteer, err := s.repo.Volunteer.Get(ctx, req.VolunteerID, task.EventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.Validationf("user %s is not a volunteer of this event", req.VolunteerID)
		}
		s.logger.Error("查询志愿者记录失败", zap.Error(err))
		return nil, err
	}
	if volunteer.Status != model.VolunteerStatusApproved {
		return nil, apperror.Validationf("user %s is not an approved volunteer of this event", req.VolunteerID)
	}

	// (task_id, volunteer_id) 去重；数据库唯一约束兜底
	if _, err := s.repo.Assignment.GetByTaskAndVolunteer(ctx, req.TaskID, req.VolunteerID); err == nil {
		return nil, apperror.Conflictf("task is already assigned to this volunteer")
	} else if !isNotFound(err) {
		s.logger.Error("查询指派记录失败", zap.Error(err))
		return nil, err
	}

	assignment := &model.TaskAssignment{
		TaskID:       req.TaskID,
		VolunteerID:  req.VolunteerID,
		AssignedByID: actor.UserID,
		Status:       model.TaskStatusPending,
	}

	if err := s.repo.Assignment.Create(ctx, assignment); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflictf("task is already assigned to this volunteer")
		}
		s.logger.Error("创建指派失败", zap.Error(err))
		return nil, err
	}

	// 通知志愿者（失败不影响主流程）
	s.notification.NotifyTaskAssigned(ctx, req.VolunteerID, task, event)

	assignment.Task = task
	return s.toAssignmentResponse(assignment), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *assignmentService) GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toAssignmentResponse(assignment), nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus 更新指派状态
// 允许：被指派的志愿者本人，或归属活动的组织者/超管
func (s *assignmentService) UpdateStatus(ctx context.Context, actor Actor, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return nil, err
	}

	if actor.UserID != assignment.VolunteerID {
		ownerID, err := s.ownerOf(ctx, assignment)
		if err != nil {
			return nil, err
		}
		if err := permission.Evaluate(actor.SystemRole, actor.UserID, ownerID, "update assignments for"); err != nil {
			return nil, err
		}
	}

	assignment.Status = req.Status
	if err := s.repo.Assignment.Update(ctx, assignment); err != nil {
		s.logger.Error("更新指派失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toAssignmentResponse(assignment), nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, actor Actor, id string) error {
	assignment, err := s.getAssignment(ctx, id)
	if err != nil {
		return err
	}

	ownerID, err := s.ownerOf(ctx, assignment)
	if err != nil {
		return err
	}
	if err := permission.Evaluate(actor.SystemRole, actor.UserID, ownerID, "remove assignments for"); err != nil {
		return err
	}

	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		s.logger.Error("删除指派失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context, page *dto.PaginationRequest) ([]dto.AssignmentResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	assignments, total, err := s.repo.Assignment.List(ctx, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询指派列表失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toAssignmentResponses(assignments), total, nil
}

func (s *assignmentService) ListByVolunteer(ctx context.Context, volunteerID string, page *dto.PaginationRequest) ([]dto.AssignmentResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	assignments, total, err := s.repo.Assignment.ListByVolunteer(ctx, volunteerID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询志愿者指派失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toAssignmentResponses(assignments), total, nil
}

func (s *assignmentService) ListByTask(ctx context.Context, taskID string, page *dto.PaginationRequest) ([]dto.AssignmentResponse, int64, error) {
	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}
	if _, err := s.repo.Task.GetByID(ctx, taskID); err != nil {
		if isNotFound(err) {
			return nil, 0, apperror.NotFoundf("task %s not found", taskID)
		}
		s.logger.Error("查询任务失败", zap.Error(err))
		return nil, 0, err
	}
	assignments, total, err := s.repo.Assignment.ListByTask(ctx, taskID, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询任务指派失败", zap.Error(err))
		return nil, 0, err
	}
	return s.toAssignmentResponses(assignments), total, nil
}

// ── 内部辅助方法 ──

func (s *assignmentService) getAssignment(ctx context.Context, id string) (*model.TaskAssignment, error) {
	assignment, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("assignment %s not found", id)
		}
		s.logger.Error("查询指派失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return assignment, nil
}

func (s *assignmentService) ownerOf(ctx context.Context, assignment *model.TaskAssignment) (string, error) {
	taskID := assignment.TaskID
	task := assignment.Task
	if task == nil {
		var err error
		task, err = s.repo.Task.GetByID(ctx, taskID)
		if err != nil {
			if isNotFound(err) {
				return "", apperror.NotFoundf("task %s not found", taskID)
			}
			return "", err
		}
	}
	if task.Event != nil {
		return task.Event.OrganizerID, nil
	}
	event, err := s.repo.Event.GetByID(ctx, task.EventID)
	if err != nil {
		if isNotFound(err) {
			return "", apperror.NotFoundf("event %s not found", task.EventID)
		}
		return "", err
	}
	return event.OrganizerID, nil
}

func (s *assignmentService) toAssignmentResponse(assignment *model.TaskAssignment) *dto.AssignmentResponse {
	resp := &dto.AssignmentResponse{
		ID:           assignment.AssignmentID,
		TaskID:       assignment.TaskID,
		VolunteerID:  assignment.VolunteerID,
		AssignedByID: assignment.AssignedByID,
		Status:       assignment.Status,
		CreatedAt:    assignment.CreatedAt.Format(timeLayout),
	}
	if assignment.Task != nil {
		resp.TaskName = assignment.Task.Name
	}
	if assignment.Volunteer != nil {
		resp.VolunteerName = assignment.Volunteer.FullName
	}
	return resp
}

func (s *assignmentService) toAssignmentResponses(assignments []model.TaskAssignment) []dto.AssignmentResponse {
	result := make([]dto.AssignmentResponse, 0, len(assignments))
	for i := range assignments {
		result = append(result, *s.toAssignmentResponse(&assignments[i]))
	}
	return result
}
