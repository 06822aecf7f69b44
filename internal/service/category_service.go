package service

import (
	"context"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
)

// CategoryService 活动分类业务接口
type CategoryService interface {
	Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error)
	List(ctx context.Context) ([]dto.CategoryResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewCategoryService 创建 CategoryService 实例
func NewCategoryService(repo *repository.Repository, logger *zap.Logger) CategoryService {
	return &categoryService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *categoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if _, err := s.repo.Category.GetByName(ctx, req.Name); err == nil {
		return nil, apperror.Conflictf("category %q already exists", req.Name)
	} else if !isNotFound(err) {
		s.logger.Error("查询分类失败", zap.Error(err))
		return nil, err
	}

	category := &model.EventCategory{
		Name:  req.Name,
		Image: req.Image,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflictf("category %q already exists", req.Name)
		}
		s.logger.Error("创建分类失败", zap.Error(err))
		return nil, err
	}

	return s.toCategoryResponse(ctx, category)
}

// ────────────────────── GetByID ──────────────────────

func (s *categoryService) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.toCategoryResponse(ctx, category)
}

// ────────────────────── List ──────────────────────

func (s *categoryService) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	categories, err := s.repo.Category.List(ctx)
	if err != nil {
		s.logger.Error("查询分类列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		resp, err := s.toCategoryResponse(ctx, &categories[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *resp)
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *categoryService) Update(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.getCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != category.Name {
		if _, err := s.repo.Category.GetByName(ctx, *req.Name); err == nil {
			return nil, apperror.Conflictf("category %q already exists", *req.Name)
		} else if !isNotFound(err) {
			s.logger.Error("查询分类失败", zap.Error(err))
			return nil, err
		}
		category.Name = *req.Name
	}
	if req.Image != nil {
		category.Image = *req.Image
	}

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.logger.Error("更新分类失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toCategoryResponse(ctx, category)
}

// ────────────────────── Delete ──────────────────────

// Delete 删除分类；被 ≥1 个活动引用时拒绝
func (s *categoryService) Delete(ctx context.Context, id string) error {
	if _, err := s.getCategory(ctx, id); err != nil {
		return err
	}

	n, err := s.repo.Event.CountByCategory(ctx, id, "")
	if err != nil {
		s.logger.Error("统计分类活动数失败", zap.Error(err))
		return err
	}
	if n > 0 {
		return apperror.Conflictf("category is referenced by %d event(s) and cannot be deleted", n)
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		s.logger.Error("删除分类失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── 内部辅助方法 ──

func (s *categoryService) getCategory(ctx context.Context, id string) (*model.EventCategory, error) {
	category, err := s.repo.Category.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("category %s not found", id)
		}
		s.logger.Error("查询分类失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return category, nil
}

func (s *categoryService) toCategoryResponse(ctx context.Context, category *model.EventCategory) (*dto.CategoryResponse, error) {
	n, err := s.repo.Event.CountByCategory(ctx, category.CategoryID, "")
	if err != nil {
		s.logger.Error("统计分类活动数失败", zap.Error(err))
		return nil, err
	}
	return &dto.CategoryResponse{
		ID:         category.CategoryID,
		Name:       category.Name,
		Image:      category.Image,
		EventCount: n,
		CreatedAt:  category.CreatedAt.Format(timeLayout),
		UpdatedAt:  category.UpdatedAt.Format(timeLayout),
	}, nil
}
