package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
	"eventura/pkg/mailer"
)

// NotificationService 通知业务接口
// Notify* 系列供其他 Service 内部调用，失败只记日志不向上传播
type NotificationService interface {
	List(ctx context.Context, actor Actor, req *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error)
	GetByID(ctx context.Context, actor Actor, id string) (*dto.NotificationResponse, error)
	UnreadCount(ctx context.Context, actor Actor) (*dto.UnreadCountResponse, error)
	MarkRead(ctx context.Context, actor Actor, id string) (*dto.NotificationResponse, error)
	MarkAllRead(ctx context.Context, actor Actor) error

	NotifyTaskAssigned(ctx context.Context, volunteerID string, task *model.Task, event *model.Event)
	NotifyApplicationUpdate(ctx context.Context, volunteer *model.EventVolunteer, event *model.Event, approved bool)
}

type notificationService struct {
	repo   *repository.Repository
	mail   *mailer.Mailer
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, mail *mailer.Mailer, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, mail: mail, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *notificationService) List(ctx context.Context, actor Actor, req *dto.NotificationListRequest) ([]dto.NotificationResponse, int64, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	notifications, total, err := s.repo.Notification.ListByUser(ctx, actor.UserID, req.UnreadOnly, req.Offset(), req.Limit)
	if err != nil {
		s.logger.Error("查询通知列表失败", zap.Error(err))
		return nil, 0, err
	}
	result := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		result = append(result, *toNotificationResponse(&notifications[i]))
	}
	return result, total, nil
}

// ────────────────────── GetByID ──────────────────────

// GetByID 只允许查看自己的通知；他人的通知按不存在处理
func (s *notificationService) GetByID(ctx context.Context, actor Actor, id string) (*dto.NotificationResponse, error) {
	notification, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	return toNotificationResponse(notification), nil
}

// ────────────────────── UnreadCount ──────────────────────

func (s *notificationService) UnreadCount(ctx context.Context, actor Actor) (*dto.UnreadCountResponse, error) {
	count, err := s.repo.Notification.CountUnread(ctx, actor.UserID)
	if err != nil {
		s.logger.Error("统计未读通知失败", zap.Error(err))
		return nil, err
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}

// ────────────────────── MarkRead ──────────────────────

func (s *notificationService) MarkRead(ctx context.Context, actor Actor, id string) (*dto.NotificationResponse, error) {
	notification, err := s.getOwned(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if !notification.IsRead {
		notification.IsRead = true
		if err := s.repo.Notification.Update(ctx, notification); err != nil {
			s.logger.Error("更新通知失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}
	return toNotificationResponse(notification), nil
}

func (s *notificationService) MarkAllRead(ctx context.Context, actor Actor) error {
	if err := s.repo.Notification.MarkAllRead(ctx, actor.UserID); err != nil {
		s.logger.Error("批量标记已读失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── 内部投递 ──────────────────────

// NotifyTaskAssigned 任务指派通知（站内 + 邮件）
func (s *notificationService) NotifyTaskAssigned(ctx context.Context, volunteerID string, task *model.Task, event *model.Event) {
	message := fmt.Sprintf("You have been assigned the task %q for event %q.", task.Name, event.Name)
	s.deliver(ctx, &model.Notification{
		UserID:  volunteerID,
		Type:    model.NotificationTypeTaskAssignment,
		Message: message,
		EventID: &event.EventID,
	}, "New task assigned", message)
}

// NotifyApplicationUpdate 志愿者审批结果通知（站内 + 邮件）
func (s *notificationService) NotifyApplicationUpdate(ctx context.Context, volunteer *model.EventVolunteer, event *model.Event, approved bool) {
	verdict := "approved"
	if !approved {
		verdict = "rejected"
	}
	message := fmt.Sprintf("Your volunteer application for event %q has been %s.", event.Name, verdict)
	s.deliver(ctx, &model.Notification{
		UserID:  volunteer.UserID,
		Type:    model.NotificationTypeApplicationUpdate,
		Message: message,
		EventID: &event.EventID,
	}, "Volunteer application update", message)
}

// deliver 写站内通知并尽力发送邮件，两步任一失败均不影响主流程
func (s *notificationService) deliver(ctx context.Context, notification *model.Notification, subject, body string) {
	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Error("写入通知失败", zap.String("user_id", notification.UserID), zap.Error(err))
		return
	}

	user, err := s.repo.User.GetByID(ctx, notification.UserID)
	if err != nil {
		s.logger.Warn("通知收件人查询失败，跳过邮件", zap.String("user_id", notification.UserID), zap.Error(err))
		return
	}
	html := fmt.Sprintf("<p>Hi %s,</p><p>%s</p>", user.FullName, body)
	if err := s.mail.Send([]string{user.Email}, subject, html); err != nil {
		s.logger.Warn("通知邮件发送失败", zap.String("user_id", notification.UserID), zap.Error(err))
	}
}

// ── 内部辅助方法 ──

func (s *notificationService) getOwned(ctx context.Context, actor Actor, id string) (*model.Notification, error) {
	notification, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("notification %s not found", id)
		}
		s.logger.Error("查询通知失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	if notification.UserID != actor.UserID {
		return nil, apperror.NotFoundf("notification %s not found", id)
	}
	return notification, nil
}

func toNotificationResponse(n *model.Notification) *dto.NotificationResponse {
	resp := &dto.NotificationResponse{
		ID:      n.NotificationID,
		Type:    n.Type,
		Message: n.Message,
		IsRead:  n.IsRead,
		SentAt:  n.SentAt.Format(timeLayout),
	}
	if n.EventID != nil {
		resp.EventID = *n.EventID
	}
	if n.AnnouncementID != nil {
		resp.AnnouncementID = *n.AnnouncementID
	}
	if n.ApplicationID != nil {
		resp.ApplicationID = *n.ApplicationID
	}
	return resp
}
