package repository

import (
	"context"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// CategoryRepository 活动分类数据访问接口
type CategoryRepository interface {
	Create(ctx context.Context, category *model.EventCategory) error
	GetByID(ctx context.Context, id string) (*model.EventCategory, error)
	GetByName(ctx context.Context, name string) (*model.EventCategory, error)
	List(ctx context.Context) ([]model.EventCategory, error)
	Update(ctx context.Context, category *model.EventCategory) error
	Delete(ctx context.Context, id string) error
}

// categoryRepo CategoryRepository 的 GORM 实现
type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepo 创建 CategoryRepository 实例
func NewCategoryRepo(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, category *model.EventCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.EventCategory, error) {
	var category model.EventCategory
	err := r.db.WithContext(ctx).
		Where("category_id = ?", id).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) GetByName(ctx context.Context, name string) (*model.EventCategory, error) {
	var category model.EventCategory
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&category).Error
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.EventCategory, error) {
	var categories []model.EventCategory
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *categoryRepo) Update(ctx context.Context, category *model.EventCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

func (r *categoryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("category_id = ?", id).
		Delete(&model.EventCategory{}).Error
}
