package handler

import (
	"go.uber.org/zap"

	"eventura/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth         *AuthHandler
	Event        *EventHandler
	Dashboard    *DashboardHandler
	Category     *CategoryHandler
	Task         *TaskHandler
	Assignment   *AssignmentHandler
	Volunteer    *VolunteerHandler
	Attendance   *AttendanceHandler
	Interest     *InterestHandler
	Notification *NotificationHandler
	Comment      *CommentHandler
	Upload       *UploadHandler
	Export       *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, logger *zap.Logger) *Handler {
	return &Handler{
		Auth:         &AuthHandler{svc: svc.Auth, logger: logger},
		Event:        &EventHandler{svc: svc.Event, logger: logger},
		Dashboard:    &DashboardHandler{svc: svc.Dashboard, logger: logger},
		Category:     &CategoryHandler{svc: svc.Category, logger: logger},
		Task:         &TaskHandler{svc: svc.Task, logger: logger},
		Assignment:   &AssignmentHandler{svc: svc.Assignment, logger: logger},
		Volunteer:    &VolunteerHandler{svc: svc.Volunteer, logger: logger},
		Attendance:   &AttendanceHandler{svc: svc.Attendance, logger: logger},
		Interest:     &InterestHandler{svc: svc.Interest, logger: logger},
		Notification: &NotificationHandler{svc: svc.Notification, logger: logger},
		Comment:      &CommentHandler{svc: svc.Comment, logger: logger},
		Upload:       &UploadHandler{svc: svc.Upload, logger: logger},
		Export:       &ExportHandler{svc: svc.Export, logger: logger},
	}
}
