package report

import (
	"context"
	"fmt"

	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/report"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/export"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

type ReportServiceImpl struct {
	worklog.WorkLogRepository
	employee.EmployeeRepository
}

func NewReportService(workLogRepository worklog.WorkLogRepository, employeeRepository employee.EmployeeRepository) report.ReportService {
	return &ReportServiceImpl{
		WorkLogRepository:  workLogRepository,
		EmployeeRepository: employeeRepository,
	}
}

func (s *ReportServiceImpl) rangeLogs(ctx context.Context, q report.RangeQuery) ([]worklog.WorkLog, error) {
	if err := q.Validate(); err != nil {
		return nil, err
	}
	logs, err := s.WorkLogRepository.ListByDateRange(ctx, q.From, q.To)
	if err != nil {
		return nil, fmt.Errorf("failed to list work logs: %w", err)
	}
	return logs, nil
}

// AttendanceRecap implements report.ReportService.
func (s *ReportServiceImpl) AttendanceRecap(ctx context.Context, q report.RangeQuery) ([]report.RecapRow, error) {
	logs, err := s.rangeLogs(ctx, q)
	if err != nil {
		return nil, err
	}
	roster, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return BuildRecap(roster, logs), nil
}

// Lateness implements report.ReportService.
func (s *ReportServiceImpl) Lateness(ctx context.Context, q report.RangeQuery) ([]report.LatenessRow, error) {
	logs, err := s.rangeLogs(ctx, q)
	if err != nil {
		return nil, err
	}
	return BuildLateness(logs), nil
}

// WorkHours implements report.ReportService.
func (s *ReportServiceImpl) WorkHours(ctx context.Context, q report.RangeQuery) ([]report.WorkHoursRow, error) {
	logs, err := s.rangeLogs(ctx, q)
	if err != nil {
		return nil, err
	}
	roster, err := s.EmployeeRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return BuildWorkHours(roster, logs), nil
}

// Leave implements report.ReportService.
func (s *ReportServiceImpl) Leave(ctx context.Context, q report.RangeQuery) ([]report.LeaveRow, error) {
	logs, err := s.rangeLogs(ctx, q)
	if err != nil {
		return nil, err
	}
	return BuildLeave(logs), nil
}

// Export implements report.ReportService.
func (s *ReportServiceImpl) Export(ctx context.Context, tab string, q report.RangeQuery) (string, []byte, error) {
	var content []byte
	var err error

	switch tab {
	case "recap":
		var rows []report.RecapRow
		if rows, err = s.AttendanceRecap(ctx, q); err == nil {
			content, err = export.RecapWorkbook(q, rows)
		}
	case "lateness":
		var rows []report.LatenessRow
		if rows, err = s.Lateness(ctx, q); err == nil {
			content, err = export.LatenessWorkbook(q, rows)
		}
	case "work_hours":
		var rows []report.WorkHoursRow
		if rows, err = s.WorkHours(ctx, q); err == nil {
			content, err = export.WorkHoursWorkbook(q, rows)
		}
	case "leave":
		var rows []report.LeaveRow
		if rows, err = s.Leave(ctx, q); err == nil {
			content, err = export.LeaveWorkbook(q, rows)
		}
	default:
		return "", nil, validator.ValidationErrors{
			{Field: "tab", Message: "must be recap, lateness, work_hours or leave"},
		}
	}

	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("%s_%s_%s.xlsx", tab, q.From, q.To)
	return filename, content, nil
}
