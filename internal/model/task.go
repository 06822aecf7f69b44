package model

import "time"

// ── 任务状态 ──

const (
	TaskStatusPending    = "PENDING"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusCompleted  = "COMPLETED"
)

// IsValidTaskStatus 校验任务状态枚举
func IsValidTaskStatus(s string) bool {
	return s == TaskStatusPending || s == TaskStatusInProgress || s == TaskStatusCompleted
}

// Task 任务表 — 对应 tasks（归属于单个活动）
type Task struct {
	TaskID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"task_id"`
	EventID  string     `gorm:"type:uuid;not null"                             json:"event_id"`
	Name     string     `gorm:"type:varchar(200);not null"                     json:"name"`
	Type     string     `gorm:"type:varchar(50)"                               json:"type"`
	DueDate  *time.Time `json:"due_date,omitempty"`
	Status   string     `gorm:"type:varchar(20);not null;default:'PENDING'"    json:"status"`
	BaseModel

	// 关联
	Event *Event `gorm:"foreignKey:EventID;references:EventID" json:"event,omitempty"`
}

// TableName 指定表名
func (Task) TableName() string { return "tasks" }

// TaskAssignment 任务指派表 — 对应 task_assignments
// (task_id, volunteer_id) 由数据库唯一约束保证不重复，Service 层同样先行校验
type TaskAssignment struct {
	AssignmentID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"assignment_id"`
	TaskID       string `gorm:"type:uuid;not null;uniqueIndex:uq_task_assignment" json:"task_id"`
	VolunteerID  string `gorm:"type:uuid;not null;uniqueIndex:uq_task_assignment" json:"volunteer_id"`
	AssignedByID string `gorm:"type:uuid;not null"                             json:"assigned_by_id"`
	Status       string `gorm:"type:varchar(20);not null;default:'PENDING'"    json:"status"`
	BaseModel

	// 关联
	Task      *Task `gorm:"foreignKey:TaskID;references:TaskID"       json:"task,omitempty"`
	Volunteer *User `gorm:"foreignKey:VolunteerID;references:UserID"  json:"volunteer,omitempty"`
}

// TableName 指定表名
func (TaskAssignment) TableName() string { return "task_assignments" }
