package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/pkg/apperror"
)

func setupTestInterestService() (InterestService, *testRepos) {
	repos := newTestRepos()
	return NewInterestService(repos.repo, zap.NewNop()), repos
}

func TestInterestService_AddRemoveCycle(t *testing.T) {
	svc, repos := setupTestInterestService()
	ctx := context.Background()
	seedUser(repos, "user-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)
	actor := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}

	if _, err := svc.Add(ctx, actor, &dto.AddInterestRequest{EventID: "event-1"}); err != nil {
		t.Fatalf("Add 应成功: %v", err)
	}
	if _, err := svc.Add(ctx, actor, &dto.AddInterestRequest{EventID: "event-1"}); apperror.KindOf(err) != apperror.KindConflict {
		t.Fatalf("重复关注应返回 Conflict, got %v", err)
	}

	check, err := svc.Check(ctx, actor, "event-1")
	if err != nil {
		t.Fatalf("Check 应成功: %v", err)
	}
	if !check.Interested {
		t.Error("关注后 Check 应为 true")
	}

	if err := svc.Remove(ctx, actor, "event-1"); err != nil {
		t.Fatalf("Remove 应成功: %v", err)
	}
	check, err = svc.Check(ctx, actor, "event-1")
	if err != nil {
		t.Fatalf("Check 应成功: %v", err)
	}
	if check.Interested {
		t.Error("取消后 Check 应为 false")
	}

	// 取消后可重新关注
	if _, err := svc.Add(ctx, actor, &dto.AddInterestRequest{EventID: "event-1"}); err != nil {
		t.Errorf("取消后重新关注应成功: %v", err)
	}
}

func TestInterestService_Remove_NotFound(t *testing.T) {
	svc, repos := setupTestInterestService()
	ctx := context.Background()
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)
	actor := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}

	if err := svc.Remove(ctx, actor, "event-1"); apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("未关注时取消应返回 NotFound, got %v", err)
	}
}

func TestInterestService_Add_EventNotFound(t *testing.T) {
	svc, _ := setupTestInterestService()
	ctx := context.Background()
	actor := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}

	_, err := svc.Add(ctx, actor, &dto.AddInterestRequest{EventID: "event-missing"})
	if apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("活动不存在应返回 NotFound, got %v", err)
	}
}

func TestInterestService_MyInterests(t *testing.T) {
	svc, repos := setupTestInterestService()
	ctx := context.Background()
	seedUser(repos, "user-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)
	seedEvent(repos, "event-2", "admin-1", model.EventStatusPublished, false)
	actor := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}

	for _, id := range []string{"event-1", "event-2"} {
		if _, err := svc.Add(ctx, actor, &dto.AddInterestRequest{EventID: id}); err != nil {
			t.Fatalf("Add %s 应成功: %v", id, err)
		}
	}

	list, total, err := svc.MyInterests(ctx, actor, &dto.PaginationRequest{})
	if err != nil {
		t.Fatalf("MyInterests 应成功: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("应返回 2 条关注, got total=%d len=%d", total, len(list))
	}
}
