package repository

import "gorm.io/gorm"

// Repository 所有 Repository 的聚合入口
type Repository struct {
	User         UserRepository
	Event        EventRepository
	Category     CategoryRepository
	Task         TaskRepository
	Assignment   AssignmentRepository
	Volunteer    VolunteerRepository
	Attendance   AttendanceRepository
	Interest     InterestRepository
	Notification NotificationRepository
	Comment      CommentRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Event:        NewEventRepo(db),
		Category:     NewCategoryRepo(db),
		Task:         NewTaskRepo(db),
		Assignment:   NewAssignmentRepo(db),
		Volunteer:    NewVolunteerRepo(db),
		Attendance:   NewAttendanceRepo(db),
		Interest:     NewInterestRepo(db),
		Notification: NewNotificationRepo(db),
		Comment:      NewCommentRepo(db),
	}
}
