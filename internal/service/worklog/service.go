package worklog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/email"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/geofence"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/sse"
	"github.com/geoattend/geoattend-backend-go/internal/repository/postgresql"
	"github.com/geoattend/geoattend-backend-go/internal/service/file"
)

type WorkLogServiceImpl struct {
	db *database.DB
	worklog.WorkLogRepository
	settings.SettingsRepository
	employee.EmployeeRepository
	fileService  file.FileService
	emailService email.EmailService
	hub          *sse.Hub
	loc          *time.Location
	now          func() time.Time
}

func NewWorkLogService(
	db *database.DB,
	workLogRepository worklog.WorkLogRepository,
	settingsRepository settings.SettingsRepository,
	employeeRepository employee.EmployeeRepository,
	fileService file.FileService,
	emailService email.EmailService,
	hub *sse.Hub,
	loc *time.Location,
) worklog.WorkLogService {
	return &WorkLogServiceImpl{
		db:                 db,
		WorkLogRepository:  workLogRepository,
		SettingsRepository: settingsRepository,
		EmployeeRepository: employeeRepository,
		fileService:        fileService,
		emailService:       emailService,
		hub:                hub,
		loc:                loc,
		now:                time.Now,
	}
}

func (s *WorkLogServiceImpl) officeSettings(ctx context.Context) (settings.OfficeSettings, error) {
	cfg, err := s.SettingsRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.OfficeSettings{}, settings.ErrSettingsNotFound
		}
		return settings.OfficeSettings{}, fmt.Errorf("failed to get office settings: %w", err)
	}
	return cfg, nil
}

func (s *WorkLogServiceImpl) notifyChanged() {
	s.hub.Broadcast(sse.Event{Event: "worklog.changed"})
}

// discardProof removes an evidence photo whose attendance record was
// rejected after the upload, so failed attempts leave no orphaned files.
func (s *WorkLogServiceImpl) discardProof(ctx context.Context, path string) {
	if path == "" {
		return
	}
	if err := s.fileService.DeleteFile(ctx, path); err != nil {
		slog.Warn("Failed to remove unused attendance proof", "path", path, "error", err)
	}
}

// CheckIn implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) CheckIn(ctx context.Context, req worklog.CheckInRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	cfg, err := s.officeSettings(ctx)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	distance, admitted := geofence.Evaluate(req.Latitude, req.Longitude, cfg.Latitude, cfg.Longitude, float64(cfg.RadiusMeters))
	if !admitted {
		return worklog.WorkLogResponse{}, worklog.ErrOutsideAllowedRadius
	}

	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(s.loc)

	status, err := worklog.ClassifyCheckIn(cfg, nowLocal)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	dateLocal := nowLocal.Format(worklog.DateFormat)

	var photoURL *string
	var photoPath string
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadAttendanceProof(ctx, req.EmployeeID, dateLocal, req.File, req.FileHeader.Filename, "check_in")
		if err != nil {
			return worklog.WorkLogResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
		}
		photoPath = path
		url, err := s.fileService.GetFileURL(ctx, path)
		if err != nil {
			return worklog.WorkLogResponse{}, err
		}
		photoURL = &url
	}

	created, err := s.WorkLogRepository.CreateIfAbsent(ctx, worklog.WorkLog{
		ID:                  uuid.New().String(),
		EmployeeID:          req.EmployeeID,
		Date:                dateLocal,
		Status:              status,
		CheckInTime:         &nowUTC,
		CheckInLatitude:     &req.Latitude,
		CheckInLongitude:    &req.Longitude,
		CheckInPhotoURL:     photoURL,
		LeaveApprovalStatus: worklog.ApprovalNA,
	})
	if err != nil {
		s.discardProof(ctx, photoPath)
		return worklog.WorkLogResponse{}, err
	}

	s.notifyChanged()

	resp := worklog.ToResponse(created)
	resp.DistanceMeters = &distance
	return resp, nil
}

// CheckOut implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) CheckOut(ctx context.Context, req worklog.CheckOutRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	cfg, err := s.officeSettings(ctx)
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	distance, admitted := geofence.Evaluate(req.Latitude, req.Longitude, cfg.Latitude, cfg.Longitude, float64(cfg.RadiusMeters))
	if !admitted {
		return worklog.WorkLogResponse{}, worklog.ErrOutsideAllowedRadius
	}

	nowUTC := s.now().UTC()
	nowLocal := nowUTC.In(s.loc)
	dateLocal := nowLocal.Format(worklog.DateFormat)

	logData, err := s.WorkLogRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, dateLocal)
	if err != nil {
		return worklog.WorkLogResponse{}, fmt.Errorf("failed to get today's work log: %w", err)
	}
	if logData == nil {
		return worklog.WorkLogResponse{}, worklog.ErrNotCheckedIn
	}

	var photoURL string
	var photoPath string
	if req.File != nil && req.FileHeader != nil {
		path, err := s.fileService.UploadAttendanceProof(ctx, req.EmployeeID, dateLocal, req.File, req.FileHeader.Filename, "check_out")
		if err != nil {
			return worklog.WorkLogResponse{}, fmt.Errorf("failed to upload attendance proof: %w", err)
		}
		photoPath = path
		photoURL, err = s.fileService.GetFileURL(ctx, path)
		if err != nil {
			return worklog.WorkLogResponse{}, err
		}
	}

	if err := logData.ApplyCheckOut(nowUTC, req.Latitude, req.Longitude, photoURL); err != nil {
		s.discardProof(ctx, photoPath)
		return worklog.WorkLogResponse{}, err
	}

	if err := s.WorkLogRepository.Update(ctx, *logData); err != nil {
		s.discardProof(ctx, photoPath)
		return worklog.WorkLogResponse{}, err
	}

	s.notifyChanged()

	resp := worklog.ToResponse(*logData)
	resp.DistanceMeters = &distance

	// Leaving before the end of the work window is flagged, never blocked
	if cfg.HasWorkHours() {
		if _, end, werr := cfg.WorkWindow(nowLocal); werr == nil {
			early := nowLocal.Before(end)
			resp.EarlyCheckOut = &early
		}
	}

	return resp, nil
}

// RequestLeave implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) RequestLeave(ctx context.Context, req worklog.LeaveRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	nowLocal := s.now().UTC().In(s.loc)
	note := req.Note

	created, err := s.WorkLogRepository.CreateIfAbsent(ctx, worklog.WorkLog{
		ID:                  uuid.New().String(),
		EmployeeID:          req.EmployeeID,
		Date:                nowLocal.Format(worklog.DateFormat),
		Status:              req.LeaveType,
		LeaveNote:           &note,
		LeaveApprovalStatus: worklog.ApprovalPending,
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	s.notifyChanged()
	return worklog.ToResponse(created), nil
}

// DecideLeave implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) DecideLeave(ctx context.Context, req worklog.LeaveDecisionRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	var logData worklog.WorkLog
	var leaveType string
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		logData, err = s.WorkLogRepository.GetByID(txCtx, req.WorkLogID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return worklog.ErrWorkLogNotFound
			}
			return fmt.Errorf("failed to get work log: %w", err)
		}

		leaveType = logData.Status
		if err := logData.ApplyLeaveDecision(req.Decision); err != nil {
			return err
		}

		return s.WorkLogRepository.Update(txCtx, logData)
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	s.notifyChanged()
	s.sendLeaveDecisionEmail(ctx, logData, leaveType, req.Decision)

	return worklog.ToResponse(logData), nil
}

func (s *WorkLogServiceImpl) sendLeaveDecisionEmail(ctx context.Context, logData worklog.WorkLog, leaveType, decision string) {
	emp, err := s.EmployeeRepository.GetByID(ctx, logData.EmployeeID)
	if err != nil {
		slog.Error("Failed to load employee for leave notification", "employee_id", logData.EmployeeID, "error", err)
		return
	}

	go func() {
		if err := s.emailService.SendLeaveDecision(emp.Email, emp.Name, leaveType, decision, logData.Date); err != nil {
			slog.Error("Failed to send leave decision email", "employee_id", emp.ID, "error", err)
		}
	}()
}

// CorrectCheckOut implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) CorrectCheckOut(ctx context.Context, req worklog.CorrectionRequest) (worklog.WorkLogResponse, error) {
	if err := req.Validate(); err != nil {
		return worklog.WorkLogResponse{}, err
	}

	var logData worklog.WorkLog
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		logData, err = s.WorkLogRepository.GetByID(txCtx, req.WorkLogID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return worklog.ErrWorkLogNotFound
			}
			return fmt.Errorf("failed to get work log: %w", err)
		}

		checkOutAt, err := anchorClockOnDate(req.CheckOutClock, logData.Date, s.loc)
		if err != nil {
			return err
		}

		if err := logData.ApplyCorrection(checkOutAt.UTC(), req.Note); err != nil {
			return err
		}

		return s.WorkLogRepository.Update(txCtx, logData)
	})
	if err != nil {
		return worklog.WorkLogResponse{}, err
	}

	s.notifyChanged()
	return worklog.ToResponse(logData), nil
}

// anchorClockOnDate places an "HH:MM" clock reading on a calendar day in
// the office timezone.
func anchorClockOnDate(clock, date string, loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(worklog.DateFormat, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid work log date %q: %w", date, err)
	}
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid clock %q: %w", clock, err)
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, loc), nil
}

// GetToday implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) GetToday(ctx context.Context, employeeID string) (*worklog.WorkLogResponse, error) {
	nowLocal := s.now().UTC().In(s.loc)

	logData, err := s.WorkLogRepository.GetByEmployeeAndDate(ctx, employeeID, nowLocal.Format(worklog.DateFormat))
	if err != nil {
		return nil, fmt.Errorf("failed to get today's work log: %w", err)
	}
	if logData == nil {
		return nil, nil
	}

	resp := worklog.ToResponse(*logData)
	return &resp, nil
}

// List implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) List(ctx context.Context, filter worklog.ListFilter) ([]worklog.WorkLogResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	logs, err := s.WorkLogRepository.ListByDateRange(ctx, filter.From, filter.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}

	responses := make([]worklog.WorkLogResponse, 0, len(logs))
	for _, l := range logs {
		if filter.EmployeeID != "" && l.EmployeeID != filter.EmployeeID {
			continue
		}
		responses = append(responses, worklog.ToResponse(l))
	}
	return responses, nil
}

// ResetAll implements worklog.WorkLogService.
func (s *WorkLogServiceImpl) ResetAll(ctx context.Context) error {
	deleted, err := s.WorkLogRepository.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to reset work logs: %w", err)
	}

	slog.Warn("All work logs deleted", "count", deleted)
	s.notifyChanged()
	return nil
}
