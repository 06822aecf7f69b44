package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventura/pkg/apperror"
)

// Response 统一响应结构（与 API 文档约定一致）
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Details string      `json:"details,omitempty"`
}

// PageMeta 分页元数据
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
	Skip       int   `json:"skip"`
	Take       int   `json:"take"`
	HasMore    bool  `json:"hasMore"`
}

// NewPageMeta 由总数与分页参数计算元数据
// totalPages = ceil(total/limit)，hasMore = page*limit < total
func NewPageMeta(total int64, page, limit int) PageMeta {
	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}
	return PageMeta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		Skip:       (page - 1) * limit,
		Take:       limit,
		HasMore:    int64(page*limit) < total,
	}
}

// PageData 分页响应数据
type PageData struct {
	Data interface{} `json:"data"`
	Meta PageMeta    `json:"meta"`
}

// ── 成功响应 ──

// OK 200 成功响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// Created 201 创建成功
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    0,
		Message: "success",
		Data:    data,
	})
}

// OKPage 200 分页成功
func OKPage(c *gin.Context, list interface{}, total int64, page, limit int) {
	c.JSON(http.StatusOK, Response{
		Code:    0,
		Message: "success",
		Data: PageData{
			Data: list,
			Meta: NewPageMeta(total, page, limit),
		},
	})
}

// ── 错误响应 ──

// Error 通用错误响应
func Error(c *gin.Context, httpStatus int, code int, message string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
	})
}

// ErrorWithDetails 带详情的错误响应
func ErrorWithDetails(c *gin.Context, httpStatus int, code int, message, details string) {
	c.JSON(httpStatus, Response{
		Code:    code,
		Message: message,
		Details: details,
	})
}

// FromError 依据业务错误分类写出响应
// Service 层的 apperror.Kind 在此统一映射为 HTTP 状态码
func FromError(c *gin.Context, err error) {
	message := apperror.MessageOf(err)
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		Error(c, http.StatusBadRequest, 10001, message)
	case apperror.KindUnauthorized:
		Error(c, http.StatusUnauthorized, 10002, message)
	case apperror.KindForbidden:
		Error(c, http.StatusForbidden, 10003, message)
	case apperror.KindNotFound:
		Error(c, http.StatusNotFound, 10004, message)
	case apperror.KindConflict:
		Error(c, http.StatusConflict, 10005, message)
	default:
		InternalError(c)
	}
}

// ── 常见快捷方式 ──

// BadRequest 400
func BadRequest(c *gin.Context, code int, message string) {
	Error(c, http.StatusBadRequest, code, message)
}

// Unauthorized 401
func Unauthorized(c *gin.Context, code int, message string) {
	Error(c, http.StatusUnauthorized, code, message)
}

// Forbidden 403
func Forbidden(c *gin.Context, code int, message string) {
	Error(c, http.StatusForbidden, code, message)
}

// NotFound 404
func NotFound(c *gin.Context, code int, message string) {
	Error(c, http.StatusNotFound, code, message)
}

// Conflict 409
func Conflict(c *gin.Context, code int, message string) {
	Error(c, http.StatusConflict, code, message)
}

// InternalError 500
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, 50000, "服务器内部错误")
}
