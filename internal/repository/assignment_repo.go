package repository

import (
	"context"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// AssignmentRepository 任务指派数据访问接口
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *model.TaskAssignment) error
	GetByID(ctx context.Context, id string) (*model.TaskAssignment, error)
	GetByTaskAndVolunteer(ctx context.Context, taskID, volunteerID string) (*model.TaskAssignment, error)
	Update(ctx context.Context, assignment *model.TaskAssignment) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, offset, limit int) ([]model.TaskAssignment, int64, error)
	ListByVolunteer(ctx context.Context, volunteerID string, offset, limit int) ([]model.TaskAssignment, int64, error)
	ListByTask(ctx context.Context, taskID string, offset, limit int) ([]model.TaskAssignment, int64, error)
}

// assignmentRepo AssignmentRepository 的 GORM 实现
type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) Create(ctx context.Context, assignment *model.TaskAssignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepo) GetByID(ctx context.Context, id string) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := r.db.WithContext(ctx).
		Preload("Task").
		Preload("Volunteer").
		Where("assignment_id = ?", id).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) GetByTaskAndVolunteer(ctx context.Context, taskID, volunteerID string) (*model.TaskAssignment, error) {
	var assignment model.TaskAssignment
	err := r.db.WithContext(ctx).
		Where("task_id = ? AND volunteer_id = ?", taskID, volunteerID).
		First(&assignment).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

func (r *assignmentRepo) Update(ctx context.Context, assignment *model.TaskAssignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("assignment_id = ?", id).
		Delete(&model.TaskAssignment{}).Error
}

func (r *assignmentRepo) List(ctx context.Context, offset, limit int) ([]model.TaskAssignment, int64, error) {
	return r.list(ctx, "", "", offset, limit)
}

func (r *assignmentRepo) ListByVolunteer(ctx context.Context, volunteerID string, offset, limit int) ([]model.TaskAssignment, int64, error) {
	return r.list(ctx, "volunteer_id = ?", volunteerID, offset, limit)
}

func (r *assignmentRepo) ListByTask(ctx context.Context, taskID string, offset, limit int) ([]model.TaskAssignment, int64, error) {
	return r.list(ctx, "task_id = ?", taskID, offset, limit)
}

func (r *assignmentRepo) list(ctx context.Context, cond, arg string, offset, limit int) ([]model.TaskAssignment, int64, error) {
	var assignments []model.TaskAssignment
	var total int64

	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&model.TaskAssignment{})
		if cond != "" {
			db = db.Where(cond, arg)
		}
		return db
	}

	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query().
		Preload("Task").
		Preload("Volunteer").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&assignments).Error; err != nil {
		return nil, 0, err
	}

	return assignments, total, nil
}
