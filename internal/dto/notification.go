package dto

// ── 通知模块 DTO ──

// NotificationListRequest 通知列表查询参数
type NotificationListRequest struct {
	PaginationRequest
	UnreadOnly bool `form:"unread_only"`
}

// NotificationResponse 通知信息响应
type NotificationResponse struct {
	ID             string `json:"id"`
	Type           string `json:"type"`
	Message        string `json:"message"`
	EventID        string `json:"event_id,omitempty"`
	AnnouncementID string `json:"announcement_id,omitempty"`
	ApplicationID  string `json:"application_id,omitempty"`
	IsRead         bool   `json:"is_read"`
	SentAt         string `json:"sent_at"`
}

// UnreadCountResponse 未读通知数响应
type UnreadCountResponse struct {
	Count int64 `json:"count"`
}
