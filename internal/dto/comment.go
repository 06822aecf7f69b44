package dto

// ── 评论评分模块 DTO ──

// CreateCommentRequest 发表评论评分
type CreateCommentRequest struct {
	EventID     string `json:"event_id"     binding:"required,uuid"`
	CommentText string `json:"comment_text" binding:"required,min=1,max=2000"`
	Rating      int    `json:"rating"       binding:"required,min=1,max=5"`
}

// UpdateCommentRequest 修改评论评分
type UpdateCommentRequest struct {
	CommentText *string `json:"comment_text" binding:"omitempty,min=1,max=2000"`
	Rating      *int    `json:"rating"       binding:"omitempty,min=1,max=5"`
}

// CommentListRequest 评论列表查询参数
type CommentListRequest struct {
	PaginationRequest
}

// CommentResponse 评论信息响应
type CommentResponse struct {
	ID          string `json:"id"`
	EventID     string `json:"event_id"`
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name,omitempty"`
	CommentText string `json:"comment_text"`
	Rating      int    `json:"rating"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CommentStats 活动评论统计
type CommentStats struct {
	Count         int64   `json:"count"`
	AverageRating float64 `json:"average_rating"`
}
