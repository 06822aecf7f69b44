package dto

// ── 志愿者模块 DTO ──

// ApplyVolunteerRequest 申请成为活动志愿者
type ApplyVolunteerRequest struct {
	EventID string `json:"event_id" binding:"required,uuid"`
}

// UpdateVolunteerStatusRequest 审批志愿者申请
type UpdateVolunteerStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=APPROVED REJECTED"`
}

// VolunteerListRequest 志愿者列表查询参数
type VolunteerListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

// VolunteerResponse 志愿者申请信息响应
type VolunteerResponse struct {
	UserID     string `json:"user_id"`
	UserName   string `json:"user_name,omitempty"`
	EventID    string `json:"event_id"`
	EventName  string `json:"event_name,omitempty"`
	Status     string `json:"status"`
	ApprovedAt string `json:"approved_at,omitempty"`
	CreatedAt  string `json:"created_at"`
}
