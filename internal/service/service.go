package service

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eventura/config"
	"eventura/internal/repository"
	"eventura/pkg/jwt"
	"eventura/pkg/mailer"
	"eventura/pkg/redis"
	"eventura/pkg/storage"
)

// Actor 已认证调用者（由 JWT 中间件解析后显式传入每个业务调用）
type Actor struct {
	UserID      string
	SystemRole  string
	CurrentRole string
}

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Event        EventService
	Dashboard    DashboardService
	Category     CategoryService
	Task         TaskService
	Assignment   AssignmentService
	Volunteer    VolunteerService
	Attendance   AttendanceService
	Interest     InterestService
	Notification NotificationService
	Comment      CommentService
	Export       ExportService
	Upload       UploadService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	store *storage.Client,
	mail *mailer.Mailer,
	logger *zap.Logger,
) *Service {
	notificationSvc := NewNotificationService(repo, mail, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Event:        NewEventService(repo, logger),
		Dashboard:    NewDashboardService(repo, logger),
		Category:     NewCategoryService(repo, logger),
		Task:         NewTaskService(repo, logger),
		Assignment:   NewAssignmentService(repo, notificationSvc, logger),
		Volunteer:    NewVolunteerService(repo, notificationSvc, logger),
		Attendance:   NewAttendanceService(repo, logger),
		Interest:     NewInterestService(repo, logger),
		Notification: notificationSvc,
		Comment:      NewCommentService(repo, logger),
		Export:       NewExportService(cfg, repo, logger),
		Upload:       NewUploadService(cfg, store, logger),
	}
}

// isNotFound gorm 记录缺失判定的简写
func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// isDuplicate 唯一约束冲突判定的简写
func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

const timeLayout = "2006-01-02T15:04:05Z07:00"
