package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"eventura/config"
	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
	"eventura/pkg/jwt"
	"eventura/pkg/redis"
)

// AuthService 认证业务接口
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error)
	SwitchRole(ctx context.Context, actor Actor, req *dto.SwitchRoleRequest) (*dto.TokenResponse, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.Config, repo *repository.Repository, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, jwtMgr: jwtMgr, rdb: rdb, logger: logger}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if _, err := s.repo.User.GetByEmail(ctx, req.Email); err == nil {
		return nil, apperror.Conflictf("email %s is already registered", req.Email)
	} else if !isNotFound(err) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}
	if _, err := s.repo.User.GetByUsername(ctx, req.Username); err == nil {
		return nil, apperror.Conflictf("username %s is already taken", req.Username)
	} else if !isNotFound(err) {
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("密码哈希失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Username:     req.Username,
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: string(hash),
		SystemRole:   model.SystemRoleUser,
		CurrentRole:  model.CurrentRoleAttendee,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflictf("email or username already registered")
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	resp := userToDTO(user)
	return &resp, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByEmail(ctx, req.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.Unauthorized("invalid email or password")
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperror.Unauthorized("invalid email or password")
	}

	return s.issueTokens(user)
}

// ────────────────────── RefreshToken ──────────────────────

func (s *authService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, apperror.Unauthorized("refresh token is invalid or expired")
	}
	if claims.TokenType != "refresh" {
		return nil, apperror.Unauthorized("token is not a refresh token")
	}

	if s.rdb != nil {
		blacklisted, err := s.rdb.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Warn("黑名单查询失败，降级放行", zap.Error(err))
		} else if blacklisted {
			return nil, apperror.Unauthorized("refresh token has been revoked")
		}
	}

	// 重新加载用户，角色变更立即生效
	user, err := s.repo.User.GetByID(ctx, claims.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.Unauthorized("user no longer exists")
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	return s.issueTokens(user)
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil // Redis 不可用时静默降级
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Error("加入 Token 黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── GetCurrentUser ──────────────────────

func (s *authService) GetCurrentUser(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.repo.User.GetByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("user %s not found", userID)
		}
		s.logger.Error("查询用户失败", zap.String("id", userID), zap.Error(err))
		return nil, err
	}

	resp := userToDTO(user)
	resp.CreatedAt = user.CreatedAt.Format(timeLayout)
	return &resp, nil
}

// ────────────────────── SwitchRole ──────────────────────

// SwitchRole 切换活跃角色
// 切换到 VOLUNTEER 要求至少存在一条 APPROVED 志愿者记录
func (s *authService) SwitchRole(ctx context.Context, actor Actor, req *dto.SwitchRoleRequest) (*dto.TokenResponse, error) {
	user, err := s.repo.User.GetByID(ctx, actor.UserID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("user %s not found", actor.UserID)
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	if req.CurrentRole == model.CurrentRoleVolunteer {
		ok, err := s.repo.Volunteer.HasApproved(ctx, actor.UserID)
		if err != nil {
			s.logger.Error("查询志愿者记录失败", zap.Error(err))
			return nil, err
		}
		if !ok {
			return nil, apperror.Forbiddenf("You must be an approved volunteer to switch to volunteer mode")
		}
	}

	user.CurrentRole = req.CurrentRole
	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("更新用户失败", zap.Error(err))
		return nil, err
	}

	return s.issueTokens(user)
}

// ── 内部辅助方法 ──

func (s *authService) issueTokens(user *model.User) (*dto.TokenResponse, error) {
	accessToken, err := s.jwtMgr.GenerateAccessToken(user.UserID, user.SystemRole, user.CurrentRole)
	if err != nil {
		s.logger.Error("生成 Access Token 失败", zap.Error(err))
		return nil, err
	}
	refreshToken, err := s.jwtMgr.GenerateRefreshToken(user.UserID, user.SystemRole, user.CurrentRole)
	if err != nil {
		s.logger.Error("生成 Refresh Token 失败", zap.Error(err))
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		User:         userToDTO(user),
	}, nil
}

func userToDTO(user *model.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		FullName:    user.FullName,
		SystemRole:  user.SystemRole,
		CurrentRole: user.CurrentRole,
	}
}
