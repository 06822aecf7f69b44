package model

import "time"

// ── 出席状态 ──

const (
	AttendanceStatusRegistered = "REGISTERED"
	AttendanceStatusJoined     = "JOINED"
	AttendanceStatusNoShow     = "NO_SHOW"
	AttendanceStatusLeftEarly  = "LEFT_EARLY"
)

// IsValidAttendanceStatus 校验出席状态枚举
func IsValidAttendanceStatus(s string) bool {
	switch s {
	case AttendanceStatusRegistered, AttendanceStatusJoined, AttendanceStatusNoShow, AttendanceStatusLeftEarly:
		return true
	}
	return false
}

// EventAttendance 活动出席表 — 对应 event_attendance
// 复合主键 (user_id, event_id)；CheckedInAt 仅在首次进入 JOINED 时写入一次
type EventAttendance struct {
	UserID      string     `gorm:"type:uuid;primaryKey" json:"user_id"`
	EventID     string     `gorm:"type:uuid;primaryKey" json:"event_id"`
	Status      string     `gorm:"type:varchar(20);not null;default:'REGISTERED'" json:"status"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	BaseModel

	// 关联
	User  *User  `gorm:"foreignKey:UserID;references:UserID"   json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName 指定表名
func (EventAttendance) TableName() string { return "event_attendance" }
