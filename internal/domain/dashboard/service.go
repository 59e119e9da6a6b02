package dashboard

import "context"

// DashboardService computes advisory dashboard views from roster/work-log
// snapshots. Reads may run concurrently with mutations; a consistent
// cross-entity snapshot is not required.
type DashboardService interface {
	// GetDashboard returns today's summary, the trailing 7-day series,
	// recent logs and pending leave requests
	GetDashboard(ctx context.Context) (*DashboardResponse, error)
}
