package repository

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// EventFilter 活动列表过滤条件
// 零值字段不参与过滤；软删除行由 gorm.DeletedAt 始终排除
type EventFilter struct {
	Status      string
	OrganizerID string
	CategoryID  string
	Search      string // 对 name/description 的大小写不敏感子串匹配（OR 组合）
	DateFrom    *time.Time
	DateTo      *time.Time
}

// EventRepository 活动数据访问接口
type EventRepository interface {
	Create(ctx context.Context, event *model.Event) error
	GetByID(ctx context.Context, id string) (*model.Event, error)
	Update(ctx context.Context, event *model.Event) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter EventFilter, offset, limit int) ([]model.Event, int64, error)
	CountByStatus(ctx context.Context, status, organizerID string) (int64, error)
	Count(ctx context.Context, organizerID string) (int64, error)
	ListRecent(ctx context.Context, organizerID string, n int) ([]model.Event, error)
	CountByCategory(ctx context.Context, categoryID, organizerID string) (int64, error)
}

// eventRepo EventRepository 的 GORM 实现
type eventRepo struct {
	db *gorm.DB
}

// NewEventRepo 创建 EventRepository 实例
func NewEventRepo(db *gorm.DB) EventRepository {
	return &eventRepo{db: db}
}

func (r *eventRepo) Create(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*model.Event, error) {
	var event model.Event
	err := r.db.WithContext(ctx).
		Preload("Organizer").
		Preload("Category").
		Where("event_id = ?", id).
		First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *eventRepo) Update(ctx context.Context, event *model.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// SoftDelete 软删除：置 deleted_at 并强制状态为 CANCELLED
func (r *eventRepo) SoftDelete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).
		Model(&model.Event{}).
		Where("event_id = ?", id).
		Update("status", model.EventStatusCancelled).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).
		Where("event_id = ?", id).
		Delete(&model.Event{}).Error
}

// filtered 构造带过滤条件的查询（每次调用生成独立会话，便于并发执行）
func (r *eventRepo) filtered(ctx context.Context, f EventFilter) *gorm.DB {
	db := r.db.WithContext(ctx).Model(&model.Event{})

	if f.Status != "" {
		db = db.Where("status = ?", f.Status)
	}
	if f.OrganizerID != "" {
		db = db.Where("organizer_id = ?", f.OrganizerID)
	}
	if f.CategoryID != "" {
		db = db.Where("category_id = ?", f.CategoryID)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		db = db.Where("name ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if f.DateFrom != nil {
		db = db.Where("date_time >= ?", *f.DateFrom)
	}
	if f.DateTo != nil {
		db = db.Where("date_time <= ?", *f.DateTo)
	}

	return db
}

// List 分页查询：count 与 fetch 互不依赖，并发执行后汇合
// 排序规则：PUBLISHED 按 date_time 降序，其余状态按 updated_at 降序
func (r *eventRepo) List(ctx context.Context, f EventFilter, offset, limit int) ([]model.Event, int64, error) {
	order := "updated_at DESC"
	if f.Status == model.EventStatusPublished {
		order = "date_time DESC"
	}

	var (
		events   []model.Event
		total    int64
		countErr error
		findErr  error
		wg       sync.WaitGroup
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		countErr = r.filtered(ctx, f).Count(&total).Error
	}()
	go func() {
		defer wg.Done()
		findErr = r.filtered(ctx, f).
			Preload("Organizer").
			Preload("Category").
			Order(order).
			Offset(offset).Limit(limit).
			Find(&events).Error
	}()
	wg.Wait()

	if countErr != nil {
		return nil, 0, countErr
	}
	if findErr != nil {
		return nil, 0, findErr
	}
	return events, total, nil
}

func (r *eventRepo) CountByStatus(ctx context.Context, status, organizerID string) (int64, error) {
	var total int64
	err := r.filtered(ctx, EventFilter{Status: status, OrganizerID: organizerID}).
		Count(&total).Error
	return total, err
}

func (r *eventRepo) Count(ctx context.Context, organizerID string) (int64, error) {
	var total int64
	err := r.filtered(ctx, EventFilter{OrganizerID: organizerID}).
		Count(&total).Error
	return total, err
}

func (r *eventRepo) ListRecent(ctx context.Context, organizerID string, n int) ([]model.Event, error) {
	var events []model.Event
	err := r.filtered(ctx, EventFilter{OrganizerID: organizerID}).
		Preload("Category").
		Order("created_at DESC").
		Limit(n).
		Find(&events).Error
	return events, err
}

func (r *eventRepo) CountByCategory(ctx context.Context, categoryID, organizerID string) (int64, error) {
	var total int64
	err := r.filtered(ctx, EventFilter{CategoryID: categoryID, OrganizerID: organizerID}).
		Count(&total).Error
	return total, err
}
