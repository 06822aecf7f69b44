package dto

// ── 出席模块 DTO ──

// CreateAttendanceRequest 登记出席记录
type CreateAttendanceRequest struct {
	UserID  string `json:"user_id"  binding:"required,uuid"`
	EventID string `json:"event_id" binding:"required,uuid"`
	Status  string `json:"status"   binding:"omitempty,oneof=REGISTERED JOINED NO_SHOW LEFT_EARLY"`
}

// UpdateAttendanceRequest 更新出席状态
type UpdateAttendanceRequest struct {
	Status string `json:"status" binding:"required,oneof=REGISTERED JOINED NO_SHOW LEFT_EARLY"`
}

// AttendanceListRequest 活动出席列表查询参数
type AttendanceListRequest struct {
	PaginationRequest
	Status string `form:"status" binding:"omitempty,oneof=REGISTERED JOINED NO_SHOW LEFT_EARLY"`
	Search string `form:"search" binding:"omitempty,max=200"`
}

// AttendanceResponse 出席信息响应
type AttendanceResponse struct {
	UserID      string `json:"user_id"`
	UserName    string `json:"user_name,omitempty"`
	EventID     string `json:"event_id"`
	Status      string `json:"status"`
	CheckedInAt string `json:"checked_in_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// AttendanceStats 活动出席统计
type AttendanceStats struct {
	Total      int64 `json:"total"`
	Registered int64 `json:"registered"`
	Joined     int64 `json:"joined"`
	NoShow     int64 `json:"no_show"`
	LeftEarly  int64 `json:"left_early"`
}

// ── 批量签到 ──

// BulkCheckInRequest 批量签到请求
type BulkCheckInRequest struct {
	UserIDs []string `json:"userIds" binding:"required,min=1,dive,uuid"`
}

// BulkCheckInResult 单个用户的签到结果
type BulkCheckInResult struct {
	Success      bool   `json:"success"`
	UserID       string `json:"userId,omitempty"`
	AttendanceID string `json:"attendanceId,omitempty"` // "userId:eventId" 复合键文本
	UserName     string `json:"userName,omitempty"`
	Error        string `json:"error,omitempty"`
}

// BulkCheckInResponse 批量签到汇总
// checkedInCount 与 failedCount 是对 results 的完整划分
type BulkCheckInResponse struct {
	CheckedInCount int                 `json:"checkedInCount"`
	FailedCount    int                 `json:"failedCount"`
	Results        []BulkCheckInResult `json:"results"`
}
