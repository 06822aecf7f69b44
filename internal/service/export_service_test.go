package service

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"eventura/config"
	"eventura/internal/model"
	"eventura/pkg/apperror"
)

func setupTestExportService() (ExportService, *testRepos) {
	repos := newTestRepos()
	return NewExportService(&config.Config{}, repos.repo, zap.NewNop()), repos
}

func TestExportService_AttendanceXLSX_Success(t *testing.T) {
	svc, repos := setupTestExportService()
	ctx := context.Background()
	seedUser(repos, "user-1", model.SystemRoleUser)
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)
	seedAttendance(repos, "user-1", "event-1", model.AttendanceStatusJoined)
	owner := Actor{UserID: "admin-1", SystemRole: model.SystemRoleAdmin}

	data, filename, err := svc.AttendanceXLSX(ctx, owner, "event-1")
	if err != nil {
		t.Fatalf("AttendanceXLSX 应成功: %v", err)
	}
	if filename != "attendance-event-1.xlsx" {
		t.Errorf("文件名不符, got %s", filename)
	}
	// xlsx 是 zip 容器，以 PK 魔数开头
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("导出内容应为合法 xlsx")
	}
}

func TestExportService_AttendanceXLSX_ForbiddenForUser(t *testing.T) {
	svc, repos := setupTestExportService()
	ctx := context.Background()
	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)

	user := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser}
	if _, _, err := svc.AttendanceXLSX(ctx, user, "event-1"); apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("普通用户导出应被拒绝, got %v", err)
	}
}

func TestExportService_EventICS_Success(t *testing.T) {
	svc, repos := setupTestExportService()
	ctx := context.Background()
	event := seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, false)
	event.Description = "Annual gathering"
	event.LocationDesc = "Main hall"

	data, filename, err := svc.EventICS(ctx, "event-1")
	if err != nil {
		t.Fatalf("EventICS 应成功: %v", err)
	}
	if filename != "event-event-1.ics" {
		t.Errorf("文件名不符, got %s", filename)
	}
	text := string(data)
	if !strings.Contains(text, "BEGIN:VCALENDAR") || !strings.Contains(text, "SUMMARY:Event event-1") {
		t.Errorf("日历内容不符:\n%s", text)
	}
	if !strings.Contains(text, "LOCATION:Main hall") {
		t.Error("日历应包含地点")
	}
}

func TestExportService_EventICS_RejectsUnpublished(t *testing.T) {
	svc, repos := setupTestExportService()
	ctx := context.Background()
	seedEvent(repos, "event-1", "admin-1", model.EventStatusDraft, false)

	if _, _, err := svc.EventICS(ctx, "event-1"); apperror.KindOf(err) != apperror.KindValidation {
		t.Fatalf("未发布活动导出日历应被拒绝, got %v", err)
	}
}
