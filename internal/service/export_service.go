package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"eventura/config"
	"eventura/internal/model"
	"eventura/internal/permission"
	"eventura/internal/repository"
	"eventura/pkg/apperror"
)

const (
	// 导出分批大小，避免一次性拉全表
	exportBatchSize = 500
	// 日历条目缺少结束时间时的缺省活动时长
	defaultEventDuration = 2 * time.Hour
)

// ExportService 数据导出业务接口
type ExportService interface {
	AttendanceXLSX(ctx context.Context, actor Actor, eventID string) ([]byte, string, error)
	EventICS(ctx context.Context, eventID string) ([]byte, string, error)
}

type exportService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── AttendanceXLSX ──────────────────────

// AttendanceXLSX 导出活动出席名单为 xlsx
// 仅活动组织者或超管可导出；返回 (文件内容, 文件名)
func (s *exportService) AttendanceXLSX(ctx context.Context, actor Actor, eventID string) ([]byte, string, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperror.NotFoundf("event %s not found", eventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, "", err
	}
	if err := permission.Evaluate(actor.SystemRole, actor.UserID, event.OrganizerID, "export attendance for"); err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Attendance"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"No.", "Full Name", "Email", "Status", "Checked In At", "Registered At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, "", apperror.Internalf(err, "failed to build export file")
		}
	}

	row := 2
	for offset := 0; ; offset += exportBatchSize {
		records, _, err := s.repo.Attendance.ListByEvent(ctx, eventID, "", "", offset, exportBatchSize)
		if err != nil {
			s.logger.Error("导出查询出席记录失败", zap.Error(err))
			return nil, "", err
		}
		if len(records) == 0 {
			break
		}
		for i := range records {
			if err := s.writeAttendanceRow(f, sheet, row, &records[i]); err != nil {
				return nil, "", apperror.Internalf(err, "failed to build export file")
			}
			row++
		}
		if len(records) < exportBatchSize {
			break
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, "", apperror.Internalf(err, "failed to build export file")
	}

	filename := fmt.Sprintf("attendance-%s.xlsx", eventID)
	return buf.Bytes(), filename, nil
}

func (s *exportService) writeAttendanceRow(f *excelize.File, sheet string, row int, record *model.EventAttendance) error {
	fullName, email := "", ""
	if record.User != nil {
		fullName = record.User.FullName
		email = record.User.Email
	}
	checkedIn := ""
	if record.CheckedInAt != nil {
		checkedIn = record.CheckedInAt.Format(timeLayout)
	}
	values := []interface{}{
		row - 1,
		fullName,
		email,
		record.Status,
		checkedIn,
		record.CreatedAt.Format(timeLayout),
	}
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

// ────────────────────── EventICS ──────────────────────

// EventICS 导出单个活动为 iCalendar 文件（默认时长两小时）
// 仅 PUBLISHED 活动可导出
func (s *exportService) EventICS(ctx context.Context, eventID string) ([]byte, string, error) {
	event, err := s.repo.Event.GetByID(ctx, eventID)
	if err != nil {
		if isNotFound(err) {
			return nil, "", apperror.NotFoundf("event %s not found", eventID)
		}
		s.logger.Error("查询活动失败", zap.Error(err))
		return nil, "", err
	}
	if event.Status != model.EventStatusPublished {
		return nil, "", apperror.Validationf("only published events can be exported to calendar")
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//eventura//event-calendar//EN")

	vevent := cal.AddEvent(event.EventID)
	vevent.SetCreatedTime(event.CreatedAt)
	vevent.SetModifiedAt(event.UpdatedAt)
	vevent.SetStartAt(event.DateTime)
	vevent.SetEndAt(event.DateTime.Add(defaultEventDuration))
	vevent.SetSummary(event.Name)
	if event.Description != "" {
		vevent.SetDescription(event.Description)
	}
	if event.LocationDesc != "" {
		vevent.SetLocation(event.LocationDesc)
	}

	filename := fmt.Sprintf("event-%s.ics", eventID)
	return []byte(cal.Serialize()), filename, nil
}
