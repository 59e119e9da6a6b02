package dashboard

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/geoattend/geoattend-backend-go/internal/domain/dashboard"
	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

const recentLogLimit = 5

type DashboardServiceImpl struct {
	worklog.WorkLogRepository
	employee.EmployeeRepository
	loc *time.Location
}

func NewDashboardService(workLogRepository worklog.WorkLogRepository, employeeRepository employee.EmployeeRepository, loc *time.Location) dashboard.DashboardService {
	return &DashboardServiceImpl{
		WorkLogRepository:  workLogRepository,
		EmployeeRepository: employeeRepository,
		loc:                loc,
	}
}

// GetDashboard implements dashboard.DashboardService.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context) (*dashboard.DashboardResponse, error) {
	nowLocal := time.Now().UTC().In(s.loc)
	today := nowLocal.Format(worklog.DateFormat)
	weekStart := nowLocal.AddDate(0, 0, -6).Format(worklog.DateFormat)

	var (
		roster   []employee.Employee
		weekLogs []worklog.WorkLog
		allLogs  []worklog.WorkLog
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		roster, err = s.EmployeeRepository.List(gctx)
		if err != nil {
			return fmt.Errorf("failed to list employees: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		weekLogs, err = s.WorkLogRepository.ListByDateRange(gctx, weekStart, today)
		if err != nil {
			return fmt.Errorf("failed to list weekly work logs: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		allLogs, err = s.WorkLogRepository.ListByDateRange(gctx, "", "")
		if err != nil {
			return fmt.Errorf("failed to list work logs: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	todayLogs := make([]worklog.WorkLog, 0)
	for _, l := range weekLogs {
		if l.Date == today {
			todayLogs = append(todayLogs, l)
		}
	}

	return &dashboard.DashboardResponse{
		Summary:       BuildDailySummary(len(roster), todayLogs, today),
		WeeklySeries:  BuildWeeklySeries(len(roster), weekLogs, nowLocal),
		RecentLogs:    toResponses(SelectRecent(allLogs, recentLogLimit)),
		PendingLeaves: toResponses(SelectPendingLeaves(allLogs)),
	}, nil
}

func toResponses(logs []worklog.WorkLog) []worklog.WorkLogResponse {
	responses := make([]worklog.WorkLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, worklog.ToResponse(l))
	}
	return responses
}
