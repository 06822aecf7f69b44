package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/pkg/apperror"
)

func setupTestAssignmentService() (AssignmentService, *testRepos) {
	repos := newTestRepos()
	return NewAssignmentService(repos.repo, newTestNotificationService(repos), zap.NewNop()), repos
}

func TestAssignmentService_Create_Success(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	ctx := context.Background()
	seedUser(repos, "vol-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedTask(repos, "task-1", "event-1")
	seedVolunteer(repos, "vol-1", "event-1", model.VolunteerStatusApproved)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	resp, err := svc.Create(ctx, owner, &dto.CreateAssignmentRequest{
		TaskID:      "task-1",
		VolunteerID: "vol-1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if resp.Status != model.TaskStatusPending {
		t.Errorf("新指派状态应为 PENDING, got %s", resp.Status)
	}
	if resp.AssignedByID != "admin-1" {
		t.Errorf("AssignedByID 应为指派人, got %s", resp.AssignedByID)
	}

	var notified bool
	for _, n := range repos.notif.notifications {
		if n.UserID == "vol-1" && n.Type == model.NotificationTypeTaskAssignment {
			notified = true
		}
	}
	if !notified {
		t.Error("指派应产生 TASK_ASSIGNMENT 通知")
	}
}

func TestAssignmentService_Create_RequiresApprovedVolunteer(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	ctx := context.Background()
	seedUser(repos, "vol-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedTask(repos, "task-1", "event-1")
	seedVolunteer(repos, "vol-1", "event-1", model.VolunteerStatusPending)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	_, err := svc.Create(ctx, owner, &dto.CreateAssignmentRequest{
		TaskID:      "task-1",
		VolunteerID: "vol-1",
	})
	if apperror.KindOf(err) != apperror.KindValidation {
		t.Fatalf("未批准的志愿者应返回 Validation, got %v", err)
	}
}

func TestAssignmentService_Create_Duplicate(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	ctx := context.Background()
	seedUser(repos, "vol-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedTask(repos, "task-1", "event-1")
	seedVolunteer(repos, "vol-1", "event-1", model.VolunteerStatusApproved)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	req := &dto.CreateAssignmentRequest{TaskID: "task-1", VolunteerID: "vol-1"}
	if _, err := svc.Create(ctx, owner, req); err != nil {
		t.Fatalf("首次指派应成功: %v", err)
	}
	if _, err := svc.Create(ctx, owner, req); apperror.KindOf(err) != apperror.KindConflict {
		t.Fatalf("重复指派应返回 Conflict, got %v", err)
	}
}

func TestAssignmentService_Create_ForbiddenForNonOwner(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	ctx := context.Background()
	seedUser(repos, "vol-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedTask(repos, "task-1", "event-1")
	seedVolunteer(repos, "vol-1", "event-1", model.VolunteerStatusApproved)

	otherAdmin := Actor{UserID: "admin-2", SystemRole: model.SystemRoleAdmin}
	_, err := svc.Create(ctx, otherAdmin, &dto.CreateAssignmentRequest{
		TaskID:      "task-1",
		VolunteerID: "vol-1",
	})
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("非组织者 ADMIN 指派应被拒绝, got %v", err)
	}
}

func TestAssignmentService_UpdateStatus_ByAssignee(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	ctx := context.Background()
	seedUser(repos, "vol-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedTask(repos, "task-1", "event-1")
	seedVolunteer(repos, "vol-1", "event-1", model.VolunteerStatusApproved)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	created, err := svc.Create(ctx, owner, &dto.CreateAssignmentRequest{
		TaskID:      "task-1",
		VolunteerID: "vol-1",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	assignee := Actor{UserID: "vol-1", SystemRole: model.SystemRoleUser, CurrentRole: model.CurrentRoleVolunteer}
	resp, err := svc.UpdateStatus(ctx, assignee, created.ID, &dto.UpdateAssignmentRequest{
		Status: model.TaskStatusInProgress,
	})
	if err != nil {
		t.Fatalf("被指派志愿者更新状态应成功: %v", err)
	}
	if resp.Status != model.TaskStatusInProgress {
		t.Errorf("状态应为 IN_PROGRESS, got %s", resp.Status)
	}

	stranger := Actor{UserID: "user-9", SystemRole: model.SystemRoleUser}
	if _, err := svc.UpdateStatus(ctx, stranger, created.ID, &dto.UpdateAssignmentRequest{
		Status: model.TaskStatusCompleted,
	}); apperror.KindOf(err) != apperror.KindForbidden {
		t.Errorf("无关用户更新状态应被拒绝, got %v", err)
	}
}

func TestAssignmentService_ListByVolunteer(t *testing.T) {
	svc, repos := setupTestAssignmentService()
	ctx := context.Background()
	seedUser(repos, "vol-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedVolunteer(repos, "vol-1", "event-1", model.VolunteerStatusApproved)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}
	for _, taskID := range []string{"task-1", "task-2"} {
		seedTask(repos, taskID, "event-1")
		if _, err := svc.Create(ctx, owner, &dto.CreateAssignmentRequest{
			TaskID:      taskID,
			VolunteerID: "vol-1",
		}); err != nil {
			t.Fatalf("指派 %s 应成功: %v", taskID, err)
		}
	}

	page := &dto.PaginationRequest{}
	list, total, err := svc.ListByVolunteer(ctx, "vol-1", page)
	if err != nil {
		t.Fatalf("ListByVolunteer 应成功: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Errorf("应返回 2 条指派, got total=%d len=%d", total, len(list))
	}
}
