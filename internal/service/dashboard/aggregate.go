package dashboard

import (
	"math"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/dashboard"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

// Aggregation over work-log snapshots. Every function here is a pure fold:
// no clock reads, no store access, deterministic for a given input.

const standardWorkDayHours = 8.0

// percentRound computes round(part/whole*100), with 0 for an empty whole.
func percentRound(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(whole) * 100))
}

// countsFor tallies one day's logs. Only approved leave counts as leave;
// a pending request counts nowhere and a rejected one falls through to
// the absent complement.
func countsFor(logs []worklog.WorkLog) (onTime, late, onLeave int) {
	for _, l := range logs {
		switch {
		case l.Status == worklog.StatusOnTime && !l.IsLeave():
			onTime++
		case l.Status == worklog.StatusLate && !l.IsLeave():
			late++
		case l.IsLeave() && l.LeaveApprovalStatus == worklog.ApprovalApproved:
			onLeave++
		}
	}
	return onTime, late, onLeave
}

// BuildDailySummary folds one day's logs into the headline numbers.
// Absence is the roster complement of everyone accounted for, floored
// at zero so stale logs can never produce a negative count.
func BuildDailySummary(totalEmployees int, logs []worklog.WorkLog, date string) dashboard.DailySummaryResponse {
	onTime, late, onLeave := countsFor(logs)

	absent := totalEmployees - onTime - late - onLeave
	if absent < 0 {
		absent = 0
	}

	present := onTime + late

	var totalHours, totalOvertime float64
	for _, l := range logs {
		if l.IsLeave() || l.CheckOutTime == nil {
			continue
		}
		totalHours += l.DurationHours
		if l.DurationHours > standardWorkDayHours {
			totalOvertime += l.DurationHours - standardWorkDayHours
		}
	}

	return dashboard.DailySummaryResponse{
		TotalEmployees: totalEmployees,
		OnTime:         onTime,
		Late:           late,
		OnLeave:        onLeave,
		Absent:         absent,

		OnTimePercentage: percentRound(onTime, present),
		LatePercentage:   percentRound(late, present),
		AbsentPercentage: percentRound(absent, totalEmployees),

		TotalWorkHoursToday:     math.Round(totalHours*100) / 100,
		TotalOvertimeHoursToday: math.Round(totalOvertime*100) / 100,

		Date: date,
	}
}

// BuildWeeklySeries folds logs into the trailing 7-day bar chart ending
// on today. Days with no logs still get a point, all absent.
func BuildWeeklySeries(totalEmployees int, logs []worklog.WorkLog, today time.Time) []dashboard.WeeklyPoint {
	byDate := make(map[string][]worklog.WorkLog)
	for _, l := range logs {
		byDate[l.Date] = append(byDate[l.Date], l)
	}

	series := make([]dashboard.WeeklyPoint, 0, 7)
	for i := 6; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		date := day.Format(worklog.DateFormat)

		onTime, late, onLeave := countsFor(byDate[date])
		absent := totalEmployees - onTime - late - onLeave
		if absent < 0 {
			absent = 0
		}

		series = append(series, dashboard.WeeklyPoint{
			Day:     day.Format("Mon"),
			Date:    date,
			OnTime:  onTime,
			Late:    late,
			OnLeave: onLeave,
			Absent:  absent,
		})
	}
	return series
}

// SelectRecent returns up to limit logs, assuming newest-first input.
func SelectRecent(logs []worklog.WorkLog, limit int) []worklog.WorkLog {
	if len(logs) <= limit {
		return logs
	}
	return logs[:limit]
}

// SelectPendingLeaves returns leave requests still awaiting a decision.
func SelectPendingLeaves(logs []worklog.WorkLog) []worklog.WorkLog {
	pending := make([]worklog.WorkLog, 0)
	for _, l := range logs {
		if l.LeaveApprovalStatus == worklog.ApprovalPending {
			pending = append(pending, l)
		}
	}
	return pending
}
