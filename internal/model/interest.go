package model

import "time"

// Interest 活动关注表 — 对应 interests
// 复合主键 (user_id, event_id)，重复添加触发唯一约束冲突
type Interest struct {
	UserID       string    `gorm:"type:uuid;primaryKey" json:"user_id"`
	EventID      string    `gorm:"type:uuid;primaryKey" json:"event_id"`
	InterestedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"interested_at"`

	// 关联
	User  *User  `gorm:"foreignKey:UserID;references:UserID"   json:"user,omitempty"`
	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName 指定表名
func (Interest) TableName() string { return "interests" }
