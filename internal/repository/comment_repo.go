package repository

import (
	"context"

	"gorm.io/gorm"

	"eventura/internal/model"
)

// CommentRepository 评论评分数据访问接口
type CommentRepository interface {
	Create(ctx context.Context, comment *model.CommentRating) error
	GetByID(ctx context.Context, id string) (*model.CommentRating, error)
	Update(ctx context.Context, comment *model.CommentRating) error
	ListByEvent(ctx context.Context, eventID string, offset, limit int) ([]model.CommentRating, int64, error)
	ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CommentRating, int64, error)
	StatsByEvent(ctx context.Context, eventID string) (int64, float64, error)
}

// commentRepo CommentRepository 的 GORM 实现
type commentRepo struct {
	db *gorm.DB
}

// NewCommentRepo 创建 CommentRepository 实例
func NewCommentRepo(db *gorm.DB) CommentRepository {
	return &commentRepo{db: db}
}

func (r *commentRepo) Create(ctx context.Context, comment *model.CommentRating) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *commentRepo) GetByID(ctx context.Context, id string) (*model.CommentRating, error) {
	var comment model.CommentRating
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("comment_id = ?", id).
		First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepo) Update(ctx context.Context, comment *model.CommentRating) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// ListByEvent 列出活动下的 ACTIVE 评论
func (r *commentRepo) ListByEvent(ctx context.Context, eventID string, offset, limit int) ([]model.CommentRating, int64, error) {
	var comments []model.CommentRating
	var total int64

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.CommentRating{}).
			Where("event_id = ? AND status = ?", eventID, model.CommentStatusActive)
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base().
		Preload("User").
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

func (r *commentRepo) ListByUser(ctx context.Context, userID string, offset, limit int) ([]model.CommentRating, int64, error) {
	var comments []model.CommentRating
	var total int64

	base := func() *gorm.DB {
		return r.db.WithContext(ctx).Model(&model.CommentRating{}).
			Where("user_id = ? AND status = ?", userID, model.CommentStatusActive)
	}

	if err := base().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base().
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&comments).Error; err != nil {
		return nil, 0, err
	}

	return comments, total, nil
}

// StatsByEvent 统计活动的 ACTIVE 评论数与平均评分
func (r *commentRepo) StatsByEvent(ctx context.Context, eventID string) (int64, float64, error) {
	var result struct {
		Count int64
		Avg   float64
	}
	err := r.db.WithContext(ctx).Model(&model.CommentRating{}).
		Select("COUNT(*) AS count, COALESCE(AVG(rating), 0) AS avg").
		Where("event_id = ? AND status = ?", eventID, model.CommentStatusActive).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Count, result.Avg, nil
}
