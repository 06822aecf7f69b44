package dto

import (
	"strings"

	"eventura/pkg/apperror"
)

// ── 通用分页参数 ──

// PaginationRequest 通用分页参数
// 缺省值 page=1、limit=20；limit 上限 100 为硬限制
type PaginationRequest struct {
	Page  int `form:"page"  binding:"omitempty,min=1"`
	Limit int `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Normalize 填充缺省值（未传参时 Page/Limit 为零值）
func (p *PaginationRequest) Normalize() {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.Limit == 0 {
		p.Limit = 20
	}
}

// Validate 硬性边界校验；Service 层在发起任何查询前调用
func (p *PaginationRequest) Validate() error {
	if p.Page <= 0 {
		return apperror.Validationf("page must be greater than 0")
	}
	if p.Limit <= 0 {
		return apperror.Validationf("limit must be greater than 0")
	}
	if p.Limit > 100 {
		return apperror.Validationf("limit must not exceed 100")
	}
	return nil
}

// Offset 计算偏移量
func (p *PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// ── 复合键 ──

// CompositeKey 强类型的 (userID, eventID) 复合键
// 文本形式 "userId:eventId" 仅在边界解析，内部始终以结构体传递
type CompositeKey struct {
	UserID  string
	EventID string
}

// ParseCompositeKey 解析 "userId:eventId" 文本形式
// 必须恰好分成两个非空段，否则立即拒绝
func ParseCompositeKey(token string) (CompositeKey, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return CompositeKey{}, apperror.Validationf("invalid composite key %q, expected \"userId:eventId\"", token)
	}
	return CompositeKey{UserID: parts[0], EventID: parts[1]}, nil
}
