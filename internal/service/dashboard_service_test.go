package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/pkg/apperror"
)

func setupTestDashboardService() (DashboardService, *testRepos) {
	repos := newTestRepos()
	return NewDashboardService(repos.repo, zap.NewNop()), repos
}

func seedDashboardData(repos *testRepos) {
	seedCategory(repos, "cat-1", "Music")
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedEvent(repos, "event-2", "admin-1", model.EventStatusDraft, false)
	seedEvent(repos, "event-3", "admin-2", model.EventStatusPublished, false)
	seedAttendance(repos, "user-1", "event-1", model.AttendanceStatusJoined)
	seedAttendance(repos, "user-2", "event-3", model.AttendanceStatusRegistered)
	seedVolunteer(repos, "user-1", "event-1", model.VolunteerStatusApproved)
	seedVolunteer(repos, "user-2", "event-3", model.VolunteerStatusApproved)
	seedVolunteer(repos, "user-3", "event-1", model.VolunteerStatusPending)
}

func TestDashboardService_GetStats_ScopedForAdmin(t *testing.T) {
	svc, repos := setupTestDashboardService()
	ctx := context.Background()
	seedDashboardData(repos)

	// ADMIN 仅统计自己组织的活动
	admin := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}
	stats, err := svc.GetStats(ctx, admin)
	if err != nil {
		t.Fatalf("GetStats 应成功: %v", err)
	}
	if stats.TotalEvents != 2 {
		t.Errorf("ADMIN 口径活动总数应为 2, got %d", stats.TotalEvents)
	}
	if stats.PublishedEvents != 1 || stats.DraftEvents != 1 {
		t.Errorf("分状态计数不符: %+v", stats)
	}
	if stats.TotalAttendees != 1 {
		t.Errorf("ADMIN 口径出席数应为 1, got %d", stats.TotalAttendees)
	}
	if stats.TotalVolunteers != 1 {
		t.Errorf("ADMIN 口径 APPROVED 志愿者应为 1, got %d", stats.TotalVolunteers)
	}
}

func TestDashboardService_GetStats_GlobalForSuperAdmin(t *testing.T) {
	svc, repos := setupTestDashboardService()
	ctx := context.Background()
	seedDashboardData(repos)

	super := Actor{UserID: "root-1", SystemRole: model.SystemRoleSuperAdmin}
	stats, err := svc.GetStats(ctx, super)
	if err != nil {
		t.Fatalf("GetStats 应成功: %v", err)
	}
	if stats.TotalEvents != 3 {
		t.Errorf("SUPER_ADMIN 口径活动总数应为 3, got %d", stats.TotalEvents)
	}
	if stats.TotalAttendees != 2 {
		t.Errorf("SUPER_ADMIN 口径出席数应为 2, got %d", stats.TotalAttendees)
	}
	if stats.TotalVolunteers != 2 {
		t.Errorf("SUPER_ADMIN 口径 APPROVED 志愿者应为 2, got %d", stats.TotalVolunteers)
	}
}

func TestDashboardService_GetStats_ExcludesDeletedEvents(t *testing.T) {
	svc, repos := setupTestDashboardService()
	ctx := context.Background()
	seedDashboardData(repos)

	// 软删活动后，其出席记录在全局口径下也不再计入
	repos.event.deleted["event-3"] = true

	super := Actor{UserID: "root-1", SystemRole: model.SystemRoleSuperAdmin}
	stats, err := svc.GetStats(ctx, super)
	if err != nil {
		t.Fatalf("GetStats 应成功: %v", err)
	}
	if stats.TotalEvents != 2 {
		t.Errorf("软删后活动总数应为 2, got %d", stats.TotalEvents)
	}
	if stats.TotalAttendees != 1 {
		t.Errorf("软删活动的出席记录不应计入, got %d", stats.TotalAttendees)
	}
	if stats.TotalVolunteers != 1 {
		t.Errorf("软删活动的志愿者不应计入, got %d", stats.TotalVolunteers)
	}
}

func TestDashboardService_GetStats_ForbiddenForUser(t *testing.T) {
	svc, _ := setupTestDashboardService()
	ctx := context.Background()

	user := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}
	if _, err := svc.GetStats(ctx, user); apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("普通用户访问仪表盘应被拒绝, got %v", err)
	}
}

func TestDashboardService_GetDashboard_Buckets(t *testing.T) {
	svc, repos := setupTestDashboardService()
	ctx := context.Background()
	seedDashboardData(repos)

	admin := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}
	resp, err := svc.GetDashboard(ctx, admin)
	if err != nil {
		t.Fatalf("GetDashboard 应成功: %v", err)
	}
	if len(resp.UpcomingEvents.Data) != 1 {
		t.Errorf("PUBLISHED 桶应有 1 条, got %d", len(resp.UpcomingEvents.Data))
	}
	if len(resp.DraftEvents.Data) != 1 {
		t.Errorf("DRAFT 桶应有 1 条, got %d", len(resp.DraftEvents.Data))
	}
	if resp.UpcomingEvents.Meta.Total != 1 {
		t.Errorf("桶分页元数据 total 应为 1, got %d", resp.UpcomingEvents.Meta.Total)
	}
	if len(resp.RecentEvents) != 2 {
		t.Errorf("最近活动应为本人的 2 条, got %d", len(resp.RecentEvents))
	}
}

func TestDashboardService_GetDashboard_CategoryCountScoped(t *testing.T) {
	svc, repos := setupTestDashboardService()
	ctx := context.Background()
	seedDashboardData(repos)

	// 分类活动数与其余口径一致：ADMIN 仅计本人的活动
	admin := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}
	resp, err := svc.GetDashboard(ctx, admin)
	if err != nil {
		t.Fatalf("GetDashboard 应成功: %v", err)
	}
	if len(resp.Categories) != 1 {
		t.Fatalf("分类应为 1 个, got %d", len(resp.Categories))
	}
	if resp.Categories[0].EventCount != 2 {
		t.Errorf("ADMIN 口径分类活动数应为 2, got %d", resp.Categories[0].EventCount)
	}

	super := Actor{UserID: "root-1", SystemRole: model.SystemRoleSuperAdmin}
	resp, err = svc.GetDashboard(ctx, super)
	if err != nil {
		t.Fatalf("GetDashboard 应成功: %v", err)
	}
	if resp.Categories[0].EventCount != 3 {
		t.Errorf("SUPER_ADMIN 口径分类活动数应为 3, got %d", resp.Categories[0].EventCount)
	}
}

func TestDashboardService_GetBucket_InvalidStatus(t *testing.T) {
	svc, _ := setupTestDashboardService()
	ctx := context.Background()

	admin := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}
	_, _, err := svc.GetBucket(ctx, admin, "BOGUS", &dto.PaginationRequest{})
	if apperror.KindOf(err) != apperror.KindValidation {
		t.Fatalf("非法状态应返回 Validation, got %v", err)
	}
}
