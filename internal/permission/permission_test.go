package permission

import (
	"strings"
	"testing"

	"eventura/pkg/apperror"
)

func TestEvaluate_SuperAdminAlwaysAllowed(t *testing.T) {
	if err := Evaluate("SUPER_ADMIN", "other", "owner", "delete"); err != nil {
		t.Errorf("SUPER_ADMIN 应无条件放行，实际: %v", err)
	}
}

func TestEvaluate_AdminOwnerAllowed(t *testing.T) {
	if err := Evaluate("ADMIN", "admin-a", "admin-a", "update"); err != nil {
		t.Errorf("ADMIN 操作自己组织的活动应放行，实际: %v", err)
	}
}

func TestEvaluate_AdminNonOwnerDenied(t *testing.T) {
	err := Evaluate("ADMIN", "admin-b", "admin-a", "update")
	if err == nil {
		t.Fatal("ADMIN 操作他人活动应被拒绝")
	}
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Errorf("期望 KindForbidden，实际: %v", apperror.KindOf(err))
	}
	if !strings.Contains(err.Error(), "update") {
		t.Errorf("拒绝文案应包含动作名，实际: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "that you organize") {
		t.Errorf("拒绝文案应说明归属限制，实际: %s", err.Error())
	}
}

func TestEvaluate_UserDenied(t *testing.T) {
	err := Evaluate("USER", "u1", "u1", "create")
	if err == nil {
		t.Fatal("USER 应被拒绝（即使是归属者）")
	}
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Errorf("期望 KindForbidden，实际: %v", apperror.KindOf(err))
	}
	if !strings.Contains(err.Error(), "do not have permission") {
		t.Errorf("拒绝文案不符，实际: %s", err.Error())
	}
}

func TestEvaluate_ActionInterpolated(t *testing.T) {
	err := Evaluate("ADMIN", "b", "a", "cancel")
	if err == nil || !strings.Contains(err.Error(), "cancel") {
		t.Errorf("动作名应被插入文案，实际: %v", err)
	}
}

func TestIsAdmin(t *testing.T) {
	cases := map[string]bool{
		"SUPER_ADMIN": true,
		"ADMIN":       true,
		"USER":        false,
		"":            false,
	}
	for role, want := range cases {
		if got := IsAdmin(role); got != want {
			t.Errorf("IsAdmin(%q)=%v，期望%v", role, got, want)
		}
	}
}
