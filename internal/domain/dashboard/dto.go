package dashboard

import "github.com/geoattend/geoattend-backend-go/internal/domain/worklog"

// ========== DAILY SUMMARY ==========

// DailySummaryResponse covers today's headline numbers. Absence is a
// derived complement, never read from stored rows.
type DailySummaryResponse struct {
	TotalEmployees int `json:"total_employees"`
	OnTime         int `json:"on_time"`
	Late           int `json:"late"`
	OnLeave        int `json:"on_leave"` // approved only
	Absent         int `json:"absent"`

	OnTimePercentage int `json:"on_time_percentage"` // of present (on-time + late)
	LatePercentage   int `json:"late_percentage"`    // of present
	AbsentPercentage int `json:"absent_percentage"`  // of total employees

	TotalWorkHoursToday     float64 `json:"total_work_hours_today"`
	TotalOvertimeHoursToday float64 `json:"total_overtime_hours_today"`

	Date string `json:"date"` // YYYY-MM-DD
}

// ========== WEEKLY SERIES (bar chart) ==========

// WeeklyPoint is one calendar day in the trailing 7-day series.
type WeeklyPoint struct {
	Day     string `json:"day"`  // weekday abbreviation, e.g. "Mon"
	Date    string `json:"date"` // YYYY-MM-DD
	OnTime  int    `json:"on_time"`
	Late    int    `json:"late"`
	OnLeave int    `json:"on_leave"` // approved only
	Absent  int    `json:"absent"`
}

// ========== COMBINED DASHBOARD ==========

// DashboardResponse is the combined payload for the admin dashboard.
type DashboardResponse struct {
	Summary       DailySummaryResponse      `json:"summary"`
	WeeklySeries  []WeeklyPoint             `json:"weekly_series"`
	RecentLogs    []worklog.WorkLogResponse `json:"recent_logs"`    // 5 latest by date
	PendingLeaves []worklog.WorkLogResponse `json:"pending_leaves"` // awaiting a decision
}
