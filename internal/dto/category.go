package dto

// ── 活动分类模块 DTO ──

// CreateCategoryRequest 创建分类请求
type CreateCategoryRequest struct {
	Name  string `json:"name"  binding:"required,min=2,max=100"`
	Image string `json:"image" binding:"omitempty,max=500"`
}

// UpdateCategoryRequest 更新分类请求
type UpdateCategoryRequest struct {
	Name  *string `json:"name"  binding:"omitempty,min=2,max=100"`
	Image *string `json:"image" binding:"omitempty,max=500"`
}

// CategoryResponse 分类信息响应
type CategoryResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	EventCount int64  `json:"event_count"`
	CreatedAt  string `json:"created_at"`
	UpdatedAt  string `json:"updated_at"`
}
