package repository

import (
	"context"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// VolunteerRepository 活动志愿者数据访问接口
type VolunteerRepository interface {
	Create(ctx context.Context, volunteer *model.EventVolunteer) error
	Get(ctx context.Context, userID, eventID string) (*model.EventVolunteer, error)
	Update(ctx context.Context, volunteer *model.EventVolunteer) error
	Delete(ctx context.Context, userID, eventID string) error
	ListByEvent(ctx context.Context, eventID, status string, offset, limit int) ([]model.EventVolunteer, int64, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.EventVolunteer, int64, error)
	CountApproved(ctx context.Context, organizerID string) (int64, error)
	HasApproved(ctx context.Context, userID string) (bool, error)
}

// volunteerRepo VolunteerRepository 的 GORM 实现
type volunteerRepo struct {
	db *gorm.DB
}

// NewVolunteerRepo 创建 VolunteerRepository 实例
func NewVolunteerRepo(db *gorm.DB) VolunteerRepository {
	return &volunteerRepo{db: db}
}

func (r *volunteerRepo) Create(ctx context.Context, volunteer *model.EventVolunteer) error {
	return r.db.WithContext(ctx).Create(volunteer).Error
}

func (r *volunteerRepo) Get(ctx context.Context, userID, eventID string) (*model.EventVolunteer, error) {
	var volunteer model.EventVolunteer
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Event").
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&volunteer).Error
	if err != nil {
		return nil, err
	}
	return &volunteer, nil
}

func (r *volunteerRepo) Update(ctx context.Context, volunteer *model.EventVolunteer) error {
	return r.db.WithContext(ctx).Save(volunteer).Error
}

func (r *volunteerRepo) Delete(ctx context.Context, userID, eventID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.EventVolunteer{}).Error
}

func (r *volunteerRepo) ListByEvent(ctx context.Context, eventID, status string, offset, limit int) ([]model.EventVolunteer, int64, error) {
	var volunteers []model.EventVolunteer
	var total int64

	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&model.EventVolunteer{}).Where("event_id = ?", eventID)
		if status != "" {
			db = db.Where("status = ?", status)
		}
		return db
	}

	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query().
		Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&volunteers).Error; err != nil {
		return nil, 0, err
	}

	return volunteers, total, nil
}

func (r *volunteerRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.EventVolunteer, int64, error) {
	var volunteers []model.EventVolunteer
	var total int64

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.EventVolunteer{}).Where("user_id = ?", userID)
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base().
		Preload("Event").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&volunteers).Error; err != nil {
		return nil, 0, err
	}

	return volunteers, total, nil
}

// CountApproved 统计 APPROVED 志愿者数，已软删活动的记录一律不计
// organizerID 非空时仅统计该组织者名下活动（仪表盘 ADMIN 口径）
func (r *volunteerRepo) CountApproved(ctx context.Context, organizerID string) (int64, error) {
	var total int64
	db := r.db.WithContext(ctx).Model(&model.EventVolunteer{}).
		Where("event_volunteers.status = ?", model.VolunteerStatusApproved).
		Joins("JOIN events ON events.event_id = event_volunteers.event_id").
		Where("events.deleted_at IS NULL")
	if organizerID != "" {
		db = db.Where("events.organizer_id = ?", organizerID)
	}
	err := db.Count(&total).Error
	return total, err
}

// HasApproved 用户是否至少拥有一条 APPROVED 志愿者记录（角色切换前置校验）
func (r *volunteerRepo) HasApproved(ctx context.Context, userID string) (bool, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.EventVolunteer{}).
		Where("user_id = ? AND status = ?", userID, model.VolunteerStatusApproved).
		Count(&total).Error
	return total > 0, err
}
