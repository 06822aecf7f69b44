package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/permission"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
	"eventura/pkg/response"
)

// 仪表盘分桶固定取第 1 页、每页 20 条
const (
	dashboardBucketPage  = 1
	dashboardBucketLimit = 20
	dashboardRecentCount = 10
)

// DashboardService 仪表盘聚合业务接口
// SUPER_ADMIN 为全系统口径，ADMIN 仅统计 organizer_id=本人 的活动
type DashboardService interface {
	GetDashboard(ctx context.Context, actor Actor) (*dto.DashboardResponse, error)
	GetStats(ctx context.Context, actor Actor) (*dto.DashboardStats, error)
	GetBucket(ctx context.Context, actor Actor, status string, page *dto.PaginationRequest) ([]dto.EventResponse, int64, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// scope 依据调用者角色决定统计口径；非管理员无权访问
func (s *dashboardService) scope(actor Actor) (string, error) {
	switch {
	case permission.IsSuperAdmin(actor.SystemRole):
		return "", nil
	case permission.IsAdmin(actor.SystemRole):
		return actor.UserID, nil
	default:
		return "", apperror.Forbiddenf("You do not have permission to view the dashboard")
	}
}

// ────────────────────── GetDashboard ──────────────────────

// GetDashboard 聚合仪表盘
// 所有子查询互不依赖，并发发起后在屏障处汇合；任一子查询失败则整体失败，
// 不返回部分结果。
func (s *dashboardService) GetDashboard(ctx context.Context, actor Actor) (*dto.DashboardResponse, error) {
	organizerID, err := s.scope(actor)
	if err != nil {
		return nil, err
	}

	var (
		resp    dto.DashboardResponse
		buckets = map[string]*dto.EventBucket{
			model.EventStatusPublished: &resp.UpcomingEvents,
			model.EventStatusDraft:     &resp.DraftEvents,
			model.EventStatusCompleted: &resp.CompletedEvents,
			model.EventStatusCancelled: &resp.CancelledEvents,
		}
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	fail := func(err error) {
		mu.Lock()
		errs = append(errs, err)
		mu.Unlock()
	}

	// 1. 总览计数
	wg.Add(1)
	go func() {
		defer wg.Done()
		stats, err := s.collectStats(ctx, organizerID)
		if err != nil {
			fail(err)
			return
		}
		resp.Stats = *stats
	}()

	// 2-5. 各状态分桶（每桶各自带分页元数据）
	for status, bucket := range buckets {
		wg.Add(1)
		go func(status string, bucket *dto.EventBucket) {
			defer wg.Done()
			filter := repository.EventFilter{Status: status, OrganizerID: organizerID}
			events, total, err := s.repo.Event.List(ctx, filter, 0, dashboardBucketLimit)
			if err != nil {
				fail(err)
				return
			}
			bucket.Data = eventsToDTO(events)
			bucket.Meta = response.NewPageMeta(total, dashboardBucketPage, dashboardBucketLimit)
		}(status, bucket)
	}

	// 6. 分类及活动数
	wg.Add(1)
	go func() {
		defer wg.Done()
		counts, err := s.collectCategoryCounts(ctx, organizerID)
		if err != nil {
			fail(err)
			return
		}
		resp.Categories = counts
	}()

	// 7. 最近创建的活动
	wg.Add(1)
	go func() {
		defer wg.Done()
		events, err := s.repo.Event.ListRecent(ctx, organizerID, dashboardRecentCount)
		if err != nil {
			fail(err)
			return
		}
		resp.RecentEvents = eventsToDTO(events)
	}()

	wg.Wait()

	if len(errs) > 0 {
		s.logger.Error("仪表盘子查询失败", zap.Errors("errors", errs))
		return nil, apperror.Internalf(errs[0], "failed to retrieve statistics")
	}

	return &resp, nil
}

// ────────────────────── GetStats ──────────────────────

func (s *dashboardService) GetStats(ctx context.Context, actor Actor) (*dto.DashboardStats, error) {
	organizerID, err := s.scope(actor)
	if err != nil {
		return nil, err
	}

	stats, err := s.collectStats(ctx, organizerID)
	if err != nil {
		s.logger.Error("仪表盘统计失败", zap.Error(err))
		return nil, apperror.Internalf(err, "failed to retrieve statistics")
	}
	return stats, nil
}

// ────────────────────── GetBucket ──────────────────────

func (s *dashboardService) GetBucket(ctx context.Context, actor Actor, status string, page *dto.PaginationRequest) ([]dto.EventResponse, int64, error) {
	organizerID, err := s.scope(actor)
	if err != nil {
		return nil, 0, err
	}

	if !model.IsValidEventStatus(status) {
		return nil, 0, apperror.Validationf("invalid event status %q", status)
	}

	page.Normalize()
	if err := page.Validate(); err != nil {
		return nil, 0, err
	}

	filter := repository.EventFilter{Status: status, OrganizerID: organizerID}
	events, total, err := s.repo.Event.List(ctx, filter, page.Offset(), page.Limit)
	if err != nil {
		s.logger.Error("查询状态分桶失败", zap.String("status", status), zap.Error(err))
		return nil, 0, err
	}

	return eventsToDTO(events), total, nil
}

// ── 内部辅助方法 ──

// collectStats 并发发起 7 个计数子查询后汇合
func (s *dashboardService) collectStats(ctx context.Context, organizerID string) (*dto.DashboardStats, error) {
	var (
		stats dto.DashboardStats
		wg    sync.WaitGroup
		mu    sync.Mutex
		errs  []error
	)

	run := func(target *int64, query func() (int64, error)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n, err := query()
			if err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
				return
			}
			*target = n
		}()
	}

	run(&stats.TotalEvents, func() (int64, error) {
		return s.repo.Event.Count(ctx, organizerID)
	})
	run(&stats.DraftEvents, func() (int64, error) {
		return s.repo.Event.CountByStatus(ctx, model.EventStatusDraft, organizerID)
	})
	run(&stats.PublishedEvents, func() (int64, error) {
		return s.repo.Event.CountByStatus(ctx, model.EventStatusPublished, organizerID)
	})
	run(&stats.CompletedEvents, func() (int64, error) {
		return s.repo.Event.CountByStatus(ctx, model.EventStatusCompleted, organizerID)
	})
	run(&stats.CancelledEvents, func() (int64, error) {
		return s.repo.Event.CountByStatus(ctx, model.EventStatusCancelled, organizerID)
	})
	run(&stats.TotalAttendees, func() (int64, error) {
		return s.repo.Attendance.Count(ctx, organizerID)
	})
	run(&stats.TotalVolunteers, func() (int64, error) {
		return s.repo.Volunteer.CountApproved(ctx, organizerID)
	})

	wg.Wait()

	if len(errs) > 0 {
		return nil, errs[0]
	}
	return &stats, nil
}

// collectCategoryCounts 分类活动数与其余子查询同口径：ADMIN 仅计本人的活动
func (s *dashboardService) collectCategoryCounts(ctx context.Context, organizerID string) ([]dto.CategoryCount, error) {
	categories, err := s.repo.Category.List(ctx)
	if err != nil {
		return nil, err
	}

	counts := make([]dto.CategoryCount, 0, len(categories))
	for i := range categories {
		n, err := s.repo.Event.CountByCategory(ctx, categories[i].CategoryID, organizerID)
		if err != nil {
			return nil, err
		}
		counts = append(counts, dto.CategoryCount{
			CategoryID: categories[i].CategoryID,
			Name:       categories[i].Name,
			Image:      categories[i].Image,
			EventCount: n,
		})
	}
	return counts, nil
}
