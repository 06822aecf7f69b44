package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"eventura/internal/dto"
	"eventura/internal/model"
	"eventura/internal/permission"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
)

// AttendanceService 活动出席业务接口
type AttendanceService interface {
	Create(ctx context.Context, actor Actor, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	Get(ctx context.Context, actor Actor, userID, eventID string) (*dto.AttendanceResponse, error)
	UpdateStatus(ctx context.Context, actor Actor, userID, eventID string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, actor Actor, userID, eventID string) error
	ListByEvent(ctx context.Context, eventID string, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error)
	Stats(ctx context.Context, eventID string) (*dto.AttendanceStats, error)
	BulkCheckIn(ctx context.Context, actor Actor, eventID string, req *dto.BulkCheckInRequest) (*dto.BulkCheckInResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── Create ──────────────────────

// Create 登记出席记录，状态缺省 REGISTERED
// 直接登记为 JOINED 受与 check-in 相同的 PUBLISHED 约束
func (s *attendanceService) Create(ctx context.Context, actor Actor, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	event, err := s.getEvent(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if _, err := s.repo.User.GetByID(ctx, req.UserID); err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("user %s not found", req.UserID)
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 本人登记自己，或组织者/超管代为登记
	if actor.UserID != req.UserID {
		if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "manage attendance for"); err != nil {
			return nil, err
		}
	}

	status := req.Status
	if status == "" {
		status = model.AttendanceStatusRegistered
	}

	attendance := &model.EventAttendance{
		UserID:  req.UserID,
		EventID: req.EventID,
		Status:  status,
	}
	if status == model.AttendanceStatusJoined {
		if event.Status != model.EventStatusPublished {
			return nil, apperror.Validationf("check-in is only allowed for published events")
		}
		now := time.Now()
		attendance.CheckedInAt = &now
	}

	if _, err := s.repo.Attendance.Get(ctx, req.UserID, req.EventID); err == nil {
		return nil, apperror.Conflictf("attendance record already exists for this user and event")
	} else if !isNotFound(err) {
		s.logger.Error("查询出席记录失败", zap.Error(err))
		return nil, err
	}

	if err := s.repo.Attendance.Create(ctx, attendance); err != nil {
		if isDuplicate(err) {
			return nil, apperror.Conflictf("attendance record already exists for this user and event")
		}
		s.logger.Error("创建出席记录失败", zap.Error(err))
		return nil, err
	}

	return s.toAttendanceResponse(attendance), nil
}

// ────────────────────── Get ──────────────────────

// Get 读取单条出席记录
// 放行路径：本人、该活动的 APPROVED 志愿者、组织者/超管
func (s *attendanceService) Get(ctx context.Context, actor Actor, userID, eventID string) (*dto.AttendanceResponse, error) {
	attendance, err := s.getAttendance(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if err := s.canView(ctx, actor, userID, eventID); err != nil {
		return nil, err
	}
	return s.toAttendanceResponse(attendance), nil
}

func (s *attendanceService) canView(ctx context.Context, actor Actor, userID, eventID string) error {
	if actor.UserID == userID {
		return nil
	}
	volunteer, err := s.repo.Volunteer.Get(ctx, actor.UserID, eventID)
	if err == nil && volunteer.Status == model.VolunteerStatusApproved {
		return nil
	}
	if err != nil && !isNotFound(err) {
		s.logger.Error("查询志愿者记录失败", zap.Error(err))
		return err
	}
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return err
	}
	return permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "view attendance for")
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus 更新出席状态
// 切到 JOINED 要求活动 PUBLISHED；CheckedInAt 只在首次签到写入，
// 之后状态往返（JOINED → LEFT_EARLY → JOINED）保留原始签到时间
func (s *attendanceService) UpdateStatus(ctx context.Context, actor Actor, userID, eventID string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	attendance, err := s.getAttendance(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}

	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if actor.UserID != userID {
		if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "manage attendance for"); err != nil {
			return nil, err
		}
	}

	if req.Status == model.AttendanceStatusJoined {
		if event.Status != model.EventStatusPublished {
			return nil, apperror.Validationf("check-in is only allowed for published events")
		}
		if attendance.CheckedInAt == nil {
			now := time.Now()
			attendance.CheckedInAt = &now
		}
	}

	attendance.Status = req.Status
	if err := s.repo.Attendance.Update(ctx, attendance); err != nil {
		s.logger.Error("更新出席记录失败", zap.Error(err))
		return nil, err
	}

	return s.toAttendanceResponse(attendance), nil
}

// ────────────────────── Delete ──────────────────────

func (s *attendanceService) Delete(ctx context.Context, actor Actor, userID, eventID string) error {
	if _, err := s.getAttendance(ctx, userID, eventID); err != nil {
		return err
	}

	if actor.UserID != userID {
		event, err := s.getEvent(ctx, eventID)
		if err != nil {
			return err
		}
		if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "manage attendance for"); err != nil {
			return err
		}
	}

	if err := s.repo.Attendance.Delete(ctx, userID, eventID); err != nil {
		s.logger.Error("删除出席记录失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── ListByEvent ──────────────────────

func (s *attendanceService) ListByEvent(ctx context.Context, eventID string, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, int64, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, 0, err
	}
	if req.Status != "" && !model.IsValidAttendanceStatus(req.Status) {
		return nil, 0, apperror.Validationf("invalid attendance status: %s", req.Status)
	}
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, 0, err
	}

	records, total, err := s.repo.Attendance.ListByEvent(ctx, eventID, req.Status, req.Search, req.Offset(), req.Limit)
	if err != nil {
		s.logger.Error("查询出席列表失败", zap.Error(err))
		return nil, 0, err
	}

	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, *s.toAttendanceResponse(&records[i]))
	}
	return result, total, nil
}

// ────────────────────── Stats ──────────────────────

func (s *attendanceService) Stats(ctx context.Context, eventID string) (*dto.AttendanceStats, error) {
	if _, err := s.getEvent(ctx, eventID); err != nil {
		return nil, err
	}

	stats := &dto.AttendanceStats{}
	buckets := []struct {
		status string
		target *int64
	}{
		{"", &stats.Total},
		{model.AttendanceStatusRegistered, &stats.Registered},
		{model.AttendanceStatusJoined, &stats.Joined},
		{model.AttendanceStatusNoShow, &stats.NoShow},
		{model.AttendanceStatusLeftEarly, &stats.LeftEarly},
	}
	for _, b := range buckets {
		count, err := s.repo.Attendance.CountByEventStatus(ctx, eventID, b.status)
		if err != nil {
			s.logger.Error("统计出席失败", zap.String("event_id", eventID), zap.Error(err))
			return nil, err
		}
		*b.target = count
	}
	return stats, nil
}

// ────────────────────── BulkCheckIn ──────────────────────

// BulkCheckIn 批量签到
// 活动 PUBLISHED 在处理前校验一次，不满足则整体拒绝；
// 之后逐个处理 userIds，单个失败不中断其余，结果逐条回报
func (s *attendanceService) BulkCheckIn(ctx context.Context, actor Actor, eventID string, req *dto.BulkCheckInRequest) (*dto.BulkCheckInResponse, error) {
	event, err := s.getEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "manage attendance for"); err != nil {
		return nil, err
	}
	if event.Status != model.EventStatusPublished {
		return nil, apperror.Validationf("bulk check-in is only allowed for published events")
	}

	resp := &dto.BulkCheckInResponse{
		Results: make([]dto.BulkCheckInResult, 0, len(req.UserIDs)),
	}
	for _, userID := range req.UserIDs {
		result := s.checkInOne(ctx, userID, eventID)
		if result.Success {
			resp.CheckedInCount++
		} else {
			resp.FailedCount++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp, nil
}

// checkInOne 单个用户签到，失败以结果项表达而非错误返回
func (s *attendanceService) checkInOne(ctx context.Context, userID, eventID string) dto.BulkCheckInResult {
	result := dto.BulkCheckInResult{UserID: userID}

	attendance, err := s.repo.Attendance.Get(ctx, userID, eventID)
	if err != nil {
		if isNotFound(err) {
			result.Error = "attendance record not found"
		} else {
			s.logger.Error("批量签到查询失败", zap.String("user_id", userID), zap.Error(err))
			result.Error = "failed to load attendance record"
		}
		return result
	}

	if attendance.Status != model.AttendanceStatusJoined {
		attendance.Status = model.AttendanceStatusJoined
		if attendance.CheckedInAt == nil {
			now := time.Now()
			attendance.CheckedInAt = &now
		}
		if err := s.repo.Attendance.Update(ctx, attendance); err != nil {
			s.logger.Error("批量签到更新失败", zap.String("user_id", userID), zap.Error(err))
			result.Error = "failed to update attendance record"
			return result
		}
	}

	result.Success = true
	result.AttendanceID = userID + ":" + eventID
	if attendance.User != nil {
		result.UserName = attendance.User.FullName
	}
	return result
}

// ── 内部辅助方法 ──

func (s *attendanceService) getEvent(ctx context.Context, eventID string) (*model.Event, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("event %s not found", eventID)
		}
		s.logger.Error("查询活动失败", zap.String("event_id", eventID), zap.Error(err))
		return nil, err
	}
	return event, nil
}

func (s *attendanceService) getAttendance(ctx context.Context, userID, eventID string) (*model.EventAttendance, error) {
	attendance, err := s.repo.Attendance.Get(ctx, userID, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, apperror.NotFoundf("attendance record %s:%s not found", userID, eventID)
		}
		s.logger.Error("查询出席记录失败", zap.Error(err))
		return nil, err
	}
	return attendance, nil
}

func (s *attendanceService) toAttendanceResponse(a *model.EventAttendance) *dto.AttendanceResponse {
	resp := &dto.AttendanceResponse{
		UserID:    a.UserID,
		EventID:   a.EventID,
		Status:    a.Status,
		CreatedAt: a.CreatedAt.Format(timeLayout),
	}
	if a.CheckedInAt != nil {
		resp.CheckedInAt = a.CheckedInAt.Format(timeLayout)
	}
	if a.User != nil {
		resp.UserName = a.User.FullName
	}
	return resp
}
