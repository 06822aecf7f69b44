package repository

import (
	"context"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// AttendanceRepository 活动出席数据访问接口
type AttendanceRepository interface {
	Create(ctx context.Context, attendance *model.EventAttendance) error
	Get(ctx context.Context, userID, eventID string) (*model.EventAttendance, error)
	Update(ctx context.Context, attendance *model.EventAttendance) error
	Delete(ctx context.Context, userID, eventID string) error
	ListByEvent(ctx context.Context, eventID, status, search string, offset, limit int) ([]model.EventAttendance, int64, error)
	CountByEventStatus(ctx context.Context, eventID, status string) (int64, error)
	Count(ctx context.Context, organizerID string) (int64, error)
}

// attendanceRepo AttendanceRepository 的 GORM 实现
type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, attendance *model.EventAttendance) error {
	return r.db.WithContext(ctx).Create(attendance).Error
}

func (r *attendanceRepo) Get(ctx context.Context, userID, eventID string) (*model.EventAttendance, error) {
	var attendance model.EventAttendance
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&attendance).Error
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *attendanceRepo) Update(ctx context.Context, attendance *model.EventAttendance) error {
	return r.db.WithContext(ctx).Save(attendance).Error
}

func (r *attendanceRepo) Delete(ctx context.Context, userID, eventID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.EventAttendance{}).Error
}

func (r *attendanceRepo) ListByEvent(ctx context.Context, eventID, status, search string, offset, limit int) ([]model.EventAttendance, int64, error) {
	var records []model.EventAttendance
	var total int64

	query := func() *gorm.DB {
		db := r.db.WithContext(ctx).Model(&model.EventAttendance{}).
			Where("event_attendance.event_id = ?", eventID)
		if status != "" {
			db = db.Where("event_attendance.status = ?", status)
		}
		if search != "" {
			pattern := "%" + search + "%"
			db = db.Joins("JOIN users ON users.user_id = event_attendance.user_id").
				Where("users.full_name ILIKE ? OR users.email ILIKE ?", pattern, pattern)
		}
		return db
	}

	if err := query().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := query().
		Preload("User").
		Order("event_attendance.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *attendanceRepo) CountByEventStatus(ctx context.Context, eventID, status string) (int64, error) {
	var total int64
	db := r.db.WithContext(ctx).Model(&model.EventAttendance{}).Where("event_id = ?", eventID)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Count(&total).Error
	return total, err
}

// Count 统计出席记录总数，已软删活动的记录一律不计
// organizerID 非空时仅统计该组织者名下活动（仪表盘 ADMIN 口径）
func (r *attendanceRepo) Count(ctx context.Context, organizerID string) (int64, error) {
	var total int64
	db := r.db.WithContext(ctx).Model(&model.EventAttendance{}).
		Joins("JOIN events ON events.event_id = event_attendance.event_id").
		Where("events.deleted_at IS NULL")
	if organizerID != "" {
		db = db.Where("events.organizer_id = ?", organizerID)
	}
	err := db.Count(&total).Error
	return total, err
}
