package repository

import (
	"context"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// InterestRepository 活动关注数据访问接口
type InterestRepository interface {
	Create(ctx context.Context, interest *model.Interest) error
	Get(ctx context.Context, userID, eventID string) (*model.Interest, error)
	Delete(ctx context.Context, userID, eventID string) error
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Interest, int64, error)
	ListByEvent(ctx context.Context, eventID string, offset, limit int) ([]model.Interest, int64, error)
}

// interestRepo InterestRepository 的 GORM 实现
type interestRepo struct {
	db *gorm.DB
}

// NewInterestRepo 创建 InterestRepository 实例
func NewInterestRepo(db *gorm.DB) InterestRepository {
	return &interestRepo{db: db}
}

func (r *interestRepo) Create(ctx context.Context, interest *model.Interest) error {
	return r.db.WithContext(ctx).Create(interest).Error
}

func (r *interestRepo) Get(ctx context.Context, userID, eventID string) (*model.Interest, error) {
	var interest model.Interest
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		First(&interest).Error
	if err != nil {
		return nil, err
	}
	return &interest, nil
}

func (r *interestRepo) Delete(ctx context.Context, userID, eventID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND event_id = ?", userID, eventID).
		Delete(&model.Interest{}).Error
}

func (r *interestRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.Interest, int64, error) {
	var interests []model.Interest
	var total int64

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Interest{}).Where("user_id = ?", userID)
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base().
		Preload("Event").
		Order("interested_at DESC").
		Offset(offset).Limit(limit).
		Find(&interests).Error; err != nil {
		return nil, 0, err
	}

	return interests, total, nil
}

func (r *interestRepo) ListByEvent(ctx context.Context, eventID string, offset, limit int) ([]model.Interest, int64, error) {
	var interests []model.Interest
	var total int64

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.Interest{}).Where("event_id = ?", eventID)
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base().
		Preload("User").
		Order("interested_at DESC").
		Offset(offset).Limit(limit).
		Find(&interests).Error; err != nil {
		return nil, 0, err
	}

	return interests, total, nil
}
