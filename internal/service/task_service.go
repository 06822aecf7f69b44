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

// TaskService 任务业务接口
// 任务归属活动；变更权限以归属活动的组织者判定
type TaskService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TaskResponse, error)
	Update(ctx context.Context, actor Actor, id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error)
	Delete(ctx context.Context, actor Actor, id string) error
	List(ctx context.Context, req *dto.TaskListRequest) ([]dto.TaskResponse, int64, error)
}

type taskService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTaskService 创建 TaskService 实例
func NewTaskService(repo *repository.Repository, logger *zap.Logger) TaskService {
	return &taskService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *taskService) Create(ctx context.Context, actor Actor, req *dto.CreateTaskRequest) (*dto.TaskResponse, error) {
	// 先验证归属活动存在（缺失的父级对任何调用者都是 404）
	event, err := s.repo.Event.GetByID(ctx, req.EventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", req.EventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, err
	}

	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "create tasks for"); err != nil {
		return nil, err
	}

	task := &model.Task{
		EventID: req.EventID,
		Name:    req.Name,
		Type:    req.Type,
		DueDate: req.DueDate,
		Status:  model.TaskStatusPending,
	}

	if err := s.repo.Task.Create(ctx, task); err != nil {
		s.logger.Error("创建任务失败", zap.Error(err))
		return nil, err
	}

	return s.toTaskResponse(task), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *taskService) GetByID(ctx context.Context, id string) (*dto.TaskResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toTaskResponse(task), nil
}

// ────────────────────── Update ──────────────────────

func (s *taskService) Update(ctx context.Context, actor Actor, id string, req *dto.UpdateTaskRequest) (*dto.TaskResponse, error) {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return nil, err
	}

	ownerID, err := s.ownerOf(ctx, task)
	if err != nil {
		return nil, err
	}
	if err := permission.Evaluate(actor.SystemRole, actor.UserID, ownerID, "update tasks for"); err != nil {
		return nil, err
	}

	if req.Name != nil {
		task.Name = *req.Name
	}
	if req.Type != nil {
		task.Type = *req.Type
	}
	if req.DueDate != nil {
		task.DueDate = req.DueDate
	}
	if req.Status != nil {
		task.Status = *req.Status
	}

	if err := s.repo.Task.Update(ctx, task); err != nil {
		s.logger.Error("更新任务失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toTaskResponse(task), nil
}

// ────────────────────── Delete ──────────────────────

func (s *taskService) Delete(ctx context.Context, actor Actor, id string) error {
	task, err := s.getTask(ctx, id)
	if err != nil {
		return err
	}

	ownerID, err := s.ownerOf(ctx, task)
	if err != nil {
		return err
	}
	if err := permission.Evaluate(actor.SystemRole, actor.UserID, ownerID, "delete tasks for"); err != nil {
		return err
	}

	if err := s.repo.Task.Delete(ctx, id); err != nil {
		s.logger.Error("删除任务失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── List ──────────────────────

func (s *taskService) List(ctx context.Context, req *dto.TaskListRequest) ([]dto.TaskResponse, int64, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}

	tasks, total, err := s.repo.Task.List(ctx, req.EventID, req.Status, req.Offset(), req.Limit)
	if err != nil {
		s.logger.Error("查询任务列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		result = append(result, *s.toTaskResponse(&tasks[i]))
	}
	return result, total, nil
}

// ── 内部辅助方法 ──

func (s *taskService) getTask(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.repo.Task.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("task %s not found", id)
		}
		s.logger.Error("查询任务失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return task, nil
}

// ownerOf 取任务归属活动的组织者（Preload 缺失时回查）
func (s *taskService) ownerOf(ctx context.Context, task *model.Task) (string, error) {
	if task.Event != nil {
		return task.Event.OrganizerID, nil
	}
	event, err := s.repo.Event.GetByID(ctx, task.EventID)
	if err != nil {
		if isNotFound(err) {
			return "", apperror.NotFoundf("event %s not found", task.EventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return "", err
	}
	return event.OrganizerID, nil
}

func (s *taskService) toTaskResponse(task *model.Task) *dto.TaskResponse {
	resp := &dto.TaskResponse{
		ID:        task.TaskID,
		EventID:   task.EventID,
		Name:      task.Name,
		Type:      task.Type,
		Status:    task.Status,
		CreatedAt: task.CreatedAt.Format(timeLayout),
		UpdatedAt: task.UpdatedAt.Format(timeLayout),
	}
	if task.DueDate != nil {
		resp.DueDate = task.DueDate.Format(timeLayout)
	}
	return resp
}
