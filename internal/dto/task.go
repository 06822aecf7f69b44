package dto

import "time"

// ── 任务模块 DTO ──

// CreateTaskRequest 创建任务请求
type CreateTaskRequest struct {
	EventID string     `json:"event_id" binding:"required,uuid"`
	Name    string     `json:"name"     binding:"required,min=2,max=200"`
	Type    string     `json:"type"     binding:"omitempty,max=50"`
	DueDate *time.Time `json:"due_date"`
}

// UpdateTaskRequest 更新任务请求
type UpdateTaskRequest struct {
	Name    *string    `json:"name"     binding:"omitempty,min=2,max=200"`
	Type    *string    `json:"type"     binding:"omitempty,max=50"`
	DueDate *time.Time `json:"due_date"`
	Status  *string    `json:"status"   binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// TaskListRequest 任务列表查询参数
type TaskListRequest struct {
	PaginationRequest
	EventID string `form:"event_id" binding:"omitempty,uuid"`
	Status  string `form:"status"   binding:"omitempty,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// TaskResponse 任务信息响应
type TaskResponse struct {
	ID        string `json:"id"`
	EventID   string `json:"event_id"`
	Name      string `json:"name"`
	Type      string `json:"type,omitempty"`
	DueDate   string `json:"due_date,omitempty"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ── 任务指派 DTO ──

// CreateAssignmentRequest 创建任务指派请求
type CreateAssignmentRequest struct {
	TaskID      string `json:"task_id"      binding:"required,uuid"`
	VolunteerID string `json:"volunteer_id" binding:"required,uuid"`
}

// UpdateAssignmentRequest 更新指派状态请求
type UpdateAssignmentRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING IN_PROGRESS COMPLETED"`
}

// AssignmentResponse 指派信息响应
type AssignmentResponse struct {
	ID            string `json:"id"`
	TaskID        string `json:"task_id"`
	TaskName      string `json:"task_name,omitempty"`
	VolunteerID   string `json:"volunteer_id"`
	VolunteerName string `json:"volunteer_name,omitempty"`
	AssignedByID  string `json:"assigned_by_id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
}
