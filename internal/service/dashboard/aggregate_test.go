package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

func attendanceLog(employeeID, date, status string, hours float64) worklog.WorkLog {
	checkIn := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC)
	return worklog.WorkLog{
		ID:                  employeeID + "-" + date,
		EmployeeID:          employeeID,
		Date:                date,
		Status:              status,
		CheckInTime:         &checkIn,
		DurationHours:       hours,
		LeaveApprovalStatus: worklog.ApprovalNA,
	}
}

func leaveLog(employeeID, date, leaveType, approval string) worklog.WorkLog {
	l := worklog.WorkLog{
		ID:                  employeeID + "-" + date,
		EmployeeID:          employeeID,
		Date:                date,
		Status:              leaveType,
		LeaveApprovalStatus: approval,
	}
	if approval == worklog.ApprovalRejected {
		l.Status = worklog.StatusAbsent
	}
	return l
}

func TestBuildDailySummary(t *testing.T) {
	const date = "2026-03-02"

	t.Run("mixed day", func(t *testing.T) {
		logs := []worklog.WorkLog{
			attendanceLog("e1", date, worklog.StatusOnTime, 8.5),
			attendanceLog("e2", date, worklog.StatusOnTime, 8),
			attendanceLog("e3", date, worklog.StatusOnTime, 9.5),
			attendanceLog("e4", date, worklog.StatusOnTime, 7),
			attendanceLog("e5", date, worklog.StatusLate, 8),
			attendanceLog("e6", date, worklog.StatusLate, 8),
			attendanceLog("e7", date, worklog.StatusLate, 6.5),
			leaveLog("e8", date, worklog.StatusOnLeave, worklog.ApprovalApproved),
			leaveLog("e9", date, worklog.StatusSick, worklog.ApprovalPending),
			leaveLog("e10", date, worklog.StatusOnLeave, worklog.ApprovalRejected),
		}

		got := BuildDailySummary(10, logs, date)

		assert.Equal(t, 4, got.OnTime)
		assert.Equal(t, 3, got.Late)
		assert.Equal(t, 1, got.OnLeave)
		assert.Equal(t, 2, got.Absent)
		assert.Equal(t, got.TotalEmployees, got.OnTime+got.Late+got.OnLeave+got.Absent)

		// present = 7; 4/7 and 3/7 round to 57 and 43
		assert.Equal(t, 57, got.OnTimePercentage)
		assert.Equal(t, 43, got.LatePercentage)
		assert.Equal(t, 20, got.AbsentPercentage)
	})

	t.Run("work hours and overtime", func(t *testing.T) {
		day1 := attendanceLog("e1", date, worklog.StatusOnTime, 9.5)
		out := time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC)
		day1.CheckOutTime = &out
		day2 := attendanceLog("e2", date, worklog.StatusOnTime, 7)
		day2.CheckOutTime = &out

		got := BuildDailySummary(2, []worklog.WorkLog{day1, day2}, date)

		assert.InDelta(t, 16.5, got.TotalWorkHoursToday, 0.001)
		assert.InDelta(t, 1.5, got.TotalOvertimeHoursToday, 0.001)
	})

	t.Run("open logs contribute no hours", func(t *testing.T) {
		got := BuildDailySummary(1, []worklog.WorkLog{
			attendanceLog("e1", date, worklog.StatusOnTime, 0),
		}, date)

		assert.Zero(t, got.TotalWorkHoursToday)
		assert.Zero(t, got.TotalOvertimeHoursToday)
	})

	t.Run("empty roster divides nothing", func(t *testing.T) {
		got := BuildDailySummary(0, nil, date)

		assert.Zero(t, got.OnTimePercentage)
		assert.Zero(t, got.LatePercentage)
		assert.Zero(t, got.AbsentPercentage)
		assert.Zero(t, got.Absent)
	})

	t.Run("stale logs never go negative", func(t *testing.T) {
		logs := []worklog.WorkLog{
			attendanceLog("e1", date, worklog.StatusOnTime, 8),
			attendanceLog("e2", date, worklog.StatusOnTime, 8),
		}
		got := BuildDailySummary(1, logs, date)
		assert.Zero(t, got.Absent)
	})
}

func TestBuildWeeklySeries(t *testing.T) {
	today := time.Date(2026, 3, 8, 12, 0, 0, 0, time.UTC) // Sunday

	logs := []worklog.WorkLog{
		attendanceLog("e1", "2026-03-02", worklog.StatusOnTime, 8),
		attendanceLog("e2", "2026-03-02", worklog.StatusLate, 8),
		leaveLog("e1", "2026-03-05", worklog.StatusSick, worklog.ApprovalApproved),
		attendanceLog("e1", "2026-03-08", worklog.StatusOnTime, 8),
	}

	series := BuildWeeklySeries(2, logs, today)

	require.Len(t, series, 7)
	assert.Equal(t, "2026-03-02", series[0].Date)
	assert.Equal(t, "Mon", series[0].Day)
	assert.Equal(t, "2026-03-08", series[6].Date)
	assert.Equal(t, "Sun", series[6].Day)

	assert.Equal(t, 1, series[0].OnTime)
	assert.Equal(t, 1, series[0].Late)
	assert.Equal(t, 0, series[0].Absent)

	// day without any logs is all absent
	assert.Equal(t, 2, series[1].Absent)

	assert.Equal(t, 1, series[3].OnLeave)
	assert.Equal(t, 1, series[3].Absent)

	assert.Equal(t, 1, series[6].OnTime)
	assert.Equal(t, 1, series[6].Absent)
}

func TestSelectRecent(t *testing.T) {
	logs := []worklog.WorkLog{
		attendanceLog("e1", "2026-03-08", worklog.StatusOnTime, 8),
		attendanceLog("e2", "2026-03-07", worklog.StatusOnTime, 8),
		attendanceLog("e3", "2026-03-06", worklog.StatusOnTime, 8),
	}

	assert.Len(t, SelectRecent(logs, 5), 3)
	got := SelectRecent(logs, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "2026-03-08", got[0].Date)
}

func TestSelectPendingLeaves(t *testing.T) {
	logs := []worklog.WorkLog{
		attendanceLog("e1", "2026-03-08", worklog.StatusOnTime, 8),
		leaveLog("e2", "2026-03-08", worklog.StatusSick, worklog.ApprovalPending),
		leaveLog("e3", "2026-03-08", worklog.StatusOnLeave, worklog.ApprovalApproved),
	}

	pending := SelectPendingLeaves(logs)
	require.Len(t, pending, 1)
	assert.Equal(t, "e2", pending[0].EmployeeID)
}
