package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"eventura/internal/permission"
	"eventura/pkg/jwt"
	"eventura/pkg/redis"
	"eventura/pkg/response"
)

// gin.Context 中注入的认证信息键
const (
	ContextUserID      = "user_id"
	ContextSystemRole  = "system_role"
	ContextCurrentRole = "current_role"
	ContextTokenID     = "token_jti"
	ContextTokenExp    = "token_exp"
)

// JWTAuth JWT 认证中间件
// 校验 Bearer Access Token 并将用户身份注入 gin.Context；
// rdb 非 nil 时额外检查黑名单（登出后的 Token 被拒绝），
// Redis 故障时降级放行，避免缓存不可用拖垮认证。
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10002, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Unauthorized(c, 10002, "token has expired")
			} else {
				response.Unauthorized(c, 10002, "invalid token")
			}
			c.Abort()
			return
		}
		if claims.TokenType != "access" {
			response.Unauthorized(c, 10002, "access token required")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, 10002, "token has been revoked")
				c.Abort()
				return
			}
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextSystemRole, claims.SystemRole)
		c.Set(ContextCurrentRole, claims.CurrentRole)
		c.Set(ContextTokenID, claims.ID)
		if claims.ExpiresAt != nil {
			c.Set(ContextTokenExp, claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// AdminOnly 要求 ADMIN 或 SUPER_ADMIN 授权级别
// 必须挂载在 JWTAuth 之后
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextSystemRole)
		if !permission.IsAdmin(role) {
			response.Forbidden(c, 10003, "admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// SuperAdminOnly 仅允许 SUPER_ADMIN
func SuperAdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextSystemRole)
		if !permission.IsSuperAdmin(role) {
			response.Forbidden(c, 10003, "super admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
