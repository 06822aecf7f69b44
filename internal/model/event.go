package model

import "time"

// ── 活动状态 ──
// 软删除（DeletedAt 置位）的活动同时被强制置为 CANCELLED，
// 不引入独立的 DELETED 状态。

const (
	EventStatusDraft     = "DRAFT"
	EventStatusPublished = "PUBLISHED"
	EventStatusCompleted = "COMPLETED"
	EventStatusCancelled = "CANCELLED"
)

// EventStatuses 全部合法状态（校验与仪表盘分桶共用）
var EventStatuses = []string{
	EventStatusDraft,
	EventStatusPublished,
	EventStatusCompleted,
	EventStatusCancelled,
}

// IsValidEventStatus 校验状态枚举
func IsValidEventStatus(s string) bool {
	for _, v := range EventStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Event 活动表 — 对应 events
type Event struct {
	EventID             string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"event_id"`
	Name                string    `gorm:"type:varchar(200);not null"                     json:"name"`
	Description         string    `gorm:"type:text"                                      json:"description"`
	DateTime            time.Time `gorm:"not null"                                       json:"date_time"`
	LocationDesc        string    `gorm:"type:varchar(500)"                              json:"location_desc"`
	Status              string    `gorm:"type:varchar(20);not null;default:'DRAFT'"      json:"status"`
	OrganizerID         string    `gorm:"type:uuid;not null"                             json:"organizer_id"`
	CategoryID          string    `gorm:"type:uuid;not null"                             json:"category_id"`
	AcceptingVolunteers bool      `gorm:"not null;default:false"                         json:"accepting_volunteers"`
	SoftDeleteModel

	// 关联
	Organizer *User          `gorm:"foreignKey:OrganizerID;references:UserID"      json:"organizer,omitempty"`
	Category  *EventCategory `gorm:"foreignKey:CategoryID;references:CategoryID"   json:"category,omitempty"`
}

// TableName 指定表名
func (Event) TableName() string { return "events" }

// EventCategory 活动分类表 — 对应 event_categories
// 被 ≥1 个活动引用时不可删除
type EventCategory struct {
	CategoryID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"category_id"`
	Name       string `gorm:"type:varchar(100);not null;uniqueIndex"         json:"name"`
	Image      string `gorm:"type:varchar(500)"                              json:"image"`
	BaseModel
}

// TableName 指定表名
func (EventCategory) TableName() string { return "event_categories" }
