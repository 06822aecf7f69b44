package model

import "time"

// ── 志愿者申请状态 ──

const (
	VolunteerStatusPending  = "PENDING"
	VolunteerStatusApproved = "APPROVED"
	VolunteerStatusRejected = "REJECTED"
)

// IsValidVolunteerStatus 校验志愿者状态枚举
func IsValidVolunteerStatus(s string) bool {
	return s == VolunteerStatusPending || s == VolunteerStatusApproved || s == VolunteerStatusRejected
}

// EventVolunteer 活动志愿者表 — 对应 event_volunteers
// 复合主键 (user_id, event_id)；APPROVED 记录用于志愿者专属操作的放行
type EventVolunteer struct {
	UserID     string     `gorm:"type:uuid;primaryKey" json:"user_id"`
	EventID    string     `gorm:"type:uuid;primaryKey" json:"event_id"`
	Status     string     `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	BaseModel

	// 关联
	User  *User  `gorm:"foreignKey:UserID;references:UserID"    json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID"  json:"event,omitempty"`
}

// TableName 指定表名
func (EventVolunteer) TableName() string { return "event_volunteers" }
