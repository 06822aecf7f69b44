package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eventura/internal/api/middleware"
	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// AuthHandler 认证接口
type AuthHandler struct {
	svc    service.AuthService
	logger *zap.Logger
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}
	user, err := h.svc.Register(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Created(c, user)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	tokens, err := h.svc.Login(c.Request.Context(), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tokens)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	tokens, err := h.svc.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tokens)
}

// Logout POST /api/v1/auth/logout
// 将当前 Access Token 加入黑名单
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenID)
	expiresAt, _ := c.Get(middleware.ContextTokenExp)
	exp, ok := expiresAt.(time.Time)
	if !ok {
		exp = time.Now()
	}
	if err := h.svc.Logout(c.Request.Context(), jti, exp); err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, gin.H{"message": "logged out"})
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	actor := actorFrom(c)
	user, err := h.svc.GetCurrentUser(c.Request.Context(), actor.UserID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, user)
}

// SwitchRole POST /api/v1/auth/switch-role
// 切换活跃角色并签发新 Token 对
func (h *AuthHandler) SwitchRole(c *gin.Context) {
	var req dto.SwitchRoleRequest
	if !bindJSON(c, &req) {
		return
	}
	tokens, err := h.svc.SwitchRole(c.Request.Context(), actorFrom(c), &req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.OK(c, tokens)
}
