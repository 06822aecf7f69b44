package dto

// ── 活动关注模块 DTO ──

// AddInterestRequest 添加关注请求
type AddInterestRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

// InterestResponse 关注信息响应
type InterestResponse struct {
	UserID       string         `json:"user_id"`
	EventID      string         `json:"event_id"`
	InterestedAt string         `json:"interested_at"`
	Event        *EventResponse `json:"event,omitempty"`
	User         *UserResponse  `json:"user,omitempty"`
}

// InterestCheckResponse 关注状态查询响应
type InterestCheckResponse struct {
	Interested bool `json:"interested"`
}
