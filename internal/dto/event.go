package dto

import "time"

// ── 活动模块 DTO ──

// CreateEventRequest 创建活动请求
// status 省略时默认 DRAFT
type CreateEventRequest struct {
	Name                string    `json:"name"                 binding:"required,min=2,max=200"`
	Description         string    `json:"description"          binding:"omitempty,max=5000"`
	DateTime            time.Time `json:"date_time"            binding:"required"`
	LocationDesc        string    `json:"location_desc"        binding:"omitempty,max=500"`
	Status              string    `json:"status"               binding:"omitempty,oneof=DRAFT PUBLISHED COMPLETED CANCELLED"`
	CategoryID          string    `json:"category_id"          binding:"required,uuid"`
	AcceptingVolunteers bool      `json:"accepting_volunteers"`
}

// UpdateEventRequest 更新活动请求（指针字段表示可选更新）
type UpdateEventRequest struct {
	Name                *string    `json:"name"                 binding:"omitempty,min=2,max=200"`
	Description         *string    `json:"description"          binding:"omitempty,max=5000"`
	DateTime            *time.Time `json:"date_time"`
	LocationDesc        *string    `json:"location_desc"        binding:"omitempty,max=500"`
	Status              *string    `json:"status"               binding:"omitempty,oneof=DRAFT PUBLISHED COMPLETED CANCELLED"`
	CategoryID          *string    `json:"category_id"          binding:"omitempty,uuid"`
	AcceptingVolunteers *bool      `json:"accepting_volunteers"`
}

// EventListRequest 活动列表查询参数
type EventListRequest struct {
	PaginationRequest
	Status     string     `form:"status"      binding:"omitempty,oneof=DRAFT PUBLISHED COMPLETED CANCELLED"`
	CategoryID string     `form:"category_id" binding:"omitempty,uuid"`
	Search     string     `form:"search"      binding:"omitempty,max=200"`
	DateFrom   *time.Time `form:"date_from"   time_format:"2006-01-02T15:04:05Z07:00"`
	DateTo     *time.Time `form:"date_to"     time_format:"2006-01-02T15:04:05Z07:00"`
}

// EventResponse 活动信息响应
type EventResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Description         string  `json:"description,omitempty"`
	DateTime            string  `json:"date_time"`
	LocationDesc        string  `json:"location_desc,omitempty"`
	Status              string  `json:"status"`
	OrganizerID         string  `json:"organizer_id"`
	OrganizerName       string  `json:"organizer_name,omitempty"`
	CategoryID          string  `json:"category_id"`
	CategoryName        string  `json:"category_name,omitempty"`
	AcceptingVolunteers bool    `json:"accepting_volunteers"`
	CreatedAt           string  `json:"created_at"`
	UpdatedAt           string  `json:"updated_at"`
}
