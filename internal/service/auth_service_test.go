package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"eventura/config"
	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/pkg/apperror"
	"eventura/pkg/jwt"
)

func setupTestAuthService() (AuthService, *testRepos) {
	repos := newTestRepos()
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-0123456789abcdef",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	jwtMgr := jwt.NewManager(&cfg.Auth)
	return NewAuthService(cfg, repos.repo, jwtMgr, nil, zap.NewNop()), repos
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	resp, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Zhang",
		Password: "supersecret1",
	})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if resp.SystemRole != model.SystemRoleUser {
		t.Errorf("新用户角色应为 USER, got %s", resp.SystemRole)
	}
	if resp.CurrentRole != model.CurrentRoleAttendee {
		t.Errorf("新用户活跃角色应为 ATTENDEE, got %s", resp.CurrentRole)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Zhang",
		Password: "supersecret1",
	}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("首次注册应成功: %v", err)
	}
	req.Username = "alice2"
	if _, err := svc.Register(ctx, req); apperror.KindOf(err) != apperror.KindConflict {
		t.Fatalf("重复邮箱应返回 Conflict, got %v", err)
	}
}

func TestAuthService_Login_RoundTrip(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Zhang",
		Password: "supersecret1",
	}); err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "alice@example.com", Password: "supersecret1"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatal("登录应签发 Token 对")
	}
	if tokens.ExpiresIn != int((15 * time.Minute).Seconds()) {
		t.Errorf("expires_in 应为 Access TTL 秒数, got %d", tokens.ExpiresIn)
	}

	// 刷新令牌换新 Token 对
	refreshed, err := svc.RefreshToken(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if refreshed.User.Email != "alice@example.com" {
		t.Errorf("刷新后用户不符, got %s", refreshed.User.Email)
	}

	// Access Token 不能用于刷新
	if _, err := svc.RefreshToken(ctx, tokens.AccessToken); apperror.KindOf(err) != apperror.KindUnauthorized {
		t.Errorf("Access Token 用于刷新应被拒绝, got %v", err)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		FullName: "Alice Zhang",
		Password: "supersecret1",
	}); err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}

	if _, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "wrong-password",
	}); apperror.KindOf(err) != apperror.KindUnauthorized {
		t.Fatalf("错误密码应返回 Unauthorized, got %v", err)
	}
}

func TestAuthService_SwitchRole_RequiresApprovedVolunteer(t *testing.T) {
	svc, repos := setupTestAuthService()
	ctx := context.Background()
	seedUser(repos, "user-1", model.SystemRoleUser)
	actor := Actor{UserID: "user-1", SystemRole: model.SystemRoleUser, CurrentRole: model.CurrentRoleAttendee}

	// 没有 APPROVED 志愿者记录时拒绝切换
	_, err := svc.SwitchRole(ctx, actor, &dto.SwitchRoleRequest{CurrentRole: model.CurrentRoleVolunteer})
	if apperror.KindOf(err) != apperror.KindForbidden {
		t.Fatalf("无 APPROVED 记录切换 VOLUNTEER 应被拒绝, got %v", err)
	}

	seedEvent(repos, "event-1", "admin-1", model.EventStatusPublished, true)
	seedVolunteer(repos, "user-1", "event-1", model.VolunteerStatusApproved)

	tokens, err := svc.SwitchRole(ctx, actor, &dto.SwitchRoleRequest{CurrentRole: model.CurrentRoleVolunteer})
	if err != nil {
		t.Fatalf("有 APPROVED 记录时切换应成功: %v", err)
	}
	if tokens.User.CurrentRole != model.CurrentRoleVolunteer {
		t.Errorf("活跃角色应为 VOLUNTEER, got %s", tokens.User.CurrentRole)
	}
	if repos.user.users["user-1"].CurrentRole != model.CurrentRoleVolunteer {
		t.Error("活跃角色应落库")
	}
}

func TestAuthService_Logout_DegradesWithoutRedis(t *testing.T) {
	svc, _ := setupTestAuthService()
	ctx := context.Background()

	// Redis 不可用时注销静默降级
	if err := svc.Logout(ctx, "some-jti", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("无 Redis 时 Logout 应降级成功: %v", err)
	}
}
