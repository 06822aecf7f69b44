package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/pkg/apperror"
)

func setupTestEventService() (EventService, *testRepos) {
	repos := newTestRepos()
	return NewEventService(repos.repo, zap.NewNop()), repos
}

func TestEventService_Create_Success(t *testing.T) {
	svc, repos := setupTestEventService()
	ctx := context.Background()
	seedCategory(repos, "cat-1", "Music")
	actor := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	resp, err := svc.Create(ctx, actor, &dto.CreateEventRequest{
		Name:       "Summer Gala",
		DateTime:   time.Now().Add(48 * time.Hour),
		CategoryID: "cat-1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Status != model.EventStatusDraft {
		t.Errorf("缺省状态应为 DRAFT, got %s", resp.Status)
	}
	if resp.OrganizerID != "admin-1" {
		t.Errorf("OrganizerID 应为调用者, got %s", resp.OrganizerID)
	}
}

func TestEventService_Create_ForbiddenForUser(t *testing.T) {
	svc, repos := setupTestEventService()
	ctx := context.Background()
	seedCategory(repos, "cat-1", "Music")
	actor := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}

	_, err := svc.Create(ctx, actor, &dto.CreateEventRequest{
		Name:       "Summer Gala",
		DateTime:   time.Now().Add(48 * time.Hour),
		CategoryID: "cat-1",
	})
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("普通用户创建活动应被拒绝, got %v", err)
	}
}

func TestEventService_Create_CategoryNotFound(t *testing.T) {
	svc, _ := setupTestEventService()
	ctx := context.Background()
	actor := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	_, err := svc.Create(ctx, actor, &dto.CreateEventRequest{
		Name:       "Summer Gala",
		DateTime:   time.Now().Add(48 * time.Hour),
		CategoryID: "cat-missing",
	})
	if apperror.KindOf(err) != apperror.KindNotFound {
		t.Fatalf("分类不存在应返回 NotFound, got %v", err)
	}
}

func TestEventService_Update_Ownership(t *testing.T) {
	svc, repos := setupTestEventService()
	ctx := context.Background()
	seedCategory(repos, "cat-1", "Music")
	seedEvent(repos, "event-1", "admin-1", model.EventStatusDraft, false)

	name := "Renamed"
	otherAdmin := Actor{UserID: "admin-2", SystemRole: model.SystemRoleAdmin}
	_, err := svc.Update(ctx, otherAdmin, "event-1", &dto.UpdateEventRequest{Name: &name})
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("非组织者 ADMIN 更新应被拒绝, got %v", err)
	}

	super := Actor{UserID: "root-1", SystemRole: model.SystemRoleSuperAdmin}
	resp, err := svc.Update(ctx, super, "event-1", &dto.UpdateEventRequest{Name: &name})
	if err != nil {
		t.Fatalf("SUPER_ADMIN 更新应成功: %v", err)
	}
	if resp.Name != "Renamed" {
		t.Errorf("名称应被更新, got %s", resp.Name)
	}
}

func TestEventService_Delete_SoftDeleteForcesCancelled(t *testing.T) {
	svc, repos := setupTestEventService()
	ctx := context.Background()
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	if err := svc.Delete(ctx, owner, "event-1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if repos.event.events["event-1"].Status != model.EventStatusCancelled {
		t.Errorf("软删除应强制置为 CANCELLED, got %s", repos.event.events["event-1"].Status)
	}
	if _, err := svc.GetByID(ctx, "event-1"); apperror.KindOf(err) != apperror.KindNotFound {
		t.Errorf("软删除后的活动应按不存在处理, got %v", err)
	}
}

func TestEventService_List_Pagination(t *testing.T) {
	svc, repos := setupTestEventService()
	ctx := context.Background()
	for _, id := range []string{"event-1", "event-2", "event-3"} {
		seedEvent(repos, id, "admin-1", model.EventStatusPublished, false)
	}

	req := &dto.EventListRequest{Status: model.EventStatusPublished}
	req.Page = 1
	req.Limit = 2
	events, total, err := svc.List(ctx, req)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if total != 3 {
		t.Errorf("total 应为 3, got %d", total)
	}
	if len(events) != 2 {
		t.Errorf("每页应返回 2 条, got %d", len(events))
	}

	bad := &dto.EventListRequest{}
	bad.Limit = 101
	if _, _, err := svc.List(ctx, bad); apperror.KindOf(err) != apperror.KindValidation {
		t.Errorf("limit 超过 100 应返回 Validation, got %v", err)
	}
}
