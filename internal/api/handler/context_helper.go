package handler

import (
	"github.com/gin-gonic/gin"

	"eventura/internal/api/middleware"
	"eventura/internal/dto"
	"eventura/internal/service"
	"eventura/pkg/response"
)

// actorFrom 从 gin.Context 还原调用者身份
// JWTAuth 中间件保证这些键存在；未认证路由不应调用本函数
func actorFrom(c *gin.Context) service.Actor {
	return service.Actor{
		UserID:      c.GetString(middleware.ContextUserID),
		SystemRole:  c.GetString(middleware.ContextSystemRole),
		CurrentRole: c.GetString(middleware.ContextCurrentRole),
	}
}

// bindJSON 绑定 JSON 请求体，失败时直接写出 400
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		response.BadRequest(c, 10001, "invalid request body: "+err.Error())
		return false
	}
	return true
}

// bindQuery 绑定查询参数，失败时直接写出 400
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		response.BadRequest(c, 10001, "invalid query parameters: "+err.Error())
		return false
	}
	return true
}

// compositeKeyFrom 解析路径中的 "userId:eventId" 复合键，失败时写出 400
func compositeKeyFrom(c *gin.Context, param string) (dto.CompositeKey, bool) {
	key, err := dto.ParseCompositeKey(c.Param(param))
	if err != nil {
		response.FromError(c, err)
		return dto.CompositeKey{}, false
	}
	return key, true
}
