package dto

import "eventura/pkg/response"

// ── 仪表盘模块 DTO ──

// DashboardStats 仪表盘总览计数
// SUPER_ADMIN 为全系统口径，ADMIN 为 organizer_id=本人 口径
type DashboardStats struct {
	TotalEvents     int64 `json:"total_events"`
	DraftEvents     int64 `json:"draft_events"`
	PublishedEvents int64 `json:"published_events"`
	CompletedEvents int64 `json:"completed_events"`
	CancelledEvents int64 `json:"cancelled_events"`
	TotalAttendees  int64 `json:"total_attendees"`
	TotalVolunteers int64 `json:"total_volunteers"` // APPROVED 志愿者总数
}

// EventBucket 单个状态分桶（自带分页元数据）
type EventBucket struct {
	Data []EventResponse   `json:"data"`
	Meta response.PageMeta `json:"meta"`
}

// CategoryCount 分类及其活动数
type CategoryCount struct {
	CategoryID string `json:"category_id"`
	Name       string `json:"name"`
	Image      string `json:"image,omitempty"`
	EventCount int64  `json:"event_count"`
}

// DashboardResponse 仪表盘聚合响应
// 各状态分桶固定为第 1 页、每页 20 条
type DashboardResponse struct {
	Stats           DashboardStats  `json:"stats"`
	UpcomingEvents  EventBucket     `json:"upcoming_events"`  // PUBLISHED
	DraftEvents     EventBucket     `json:"draft_events"`
	CompletedEvents EventBucket     `json:"completed_events"`
	CancelledEvents EventBucket     `json:"cancelled_events"`
	Categories      []CategoryCount `json:"categories"`
	RecentEvents    []EventResponse `json:"recent_events"` // 最近创建的 10 个
}
