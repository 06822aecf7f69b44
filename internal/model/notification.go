package model

import "time"

// ── 通知类型 ──

const (
	NotificationTypeAnnouncement      = "ANNOUNCEMENT"
	NotificationTypeApplicationUpdate = "APPLICATION_UPDATE"
	NotificationTypeSystemAlert       = "SYSTEM_ALERT"
	NotificationTypeTaskAssignment    = "TASK_ASSIGNMENT"
)

// Notification 通知消息表 — 对应 notifications
type Notification struct {
	NotificationID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	UserID         string    `gorm:"type:uuid;not null"                             json:"user_id"`
	Type           string    `gorm:"type:varchar(50);not null"                      json:"type"`
	Message        string    `gorm:"type:text;not null"                             json:"message"`
	EventID        *string   `gorm:"type:uuid"                                      json:"event_id,omitempty"`
	AnnouncementID *string   `gorm:"type:uuid"                                      json:"announcement_id,omitempty"`
	ApplicationID  *string   `gorm:"type:uuid"                                      json:"application_id,omitempty"`
	IsRead         bool      `gorm:"not null;default:false"                         json:"is_read"`
	SentAt         time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"sent_at"`
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }
