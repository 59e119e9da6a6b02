package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

func namedLog(employeeID, name, date, status string, hours float64, completed bool) worklog.WorkLog {
	checkIn := time.Date(2026, 3, 2, 1, 10, 0, 0, time.UTC)
	l := worklog.WorkLog{
		EmployeeID:          employeeID,
		EmployeeName:        &name,
		Date:                date,
		Status:              status,
		CheckInTime:         &checkIn,
		DurationHours:       hours,
		LeaveApprovalStatus: worklog.ApprovalNA,
	}
	if completed {
		out := checkIn.Add(time.Duration(hours * float64(time.Hour)))
		l.CheckOutTime = &out
	}
	return l
}

func namedLeave(employeeID, name, date, leaveType, approval string) worklog.WorkLog {
	note := "family matters"
	l := worklog.WorkLog{
		EmployeeID:          employeeID,
		EmployeeName:        &name,
		Date:                date,
		Status:              leaveType,
		LeaveNote:           &note,
		LeaveApprovalStatus: approval,
	}
	if approval == worklog.ApprovalRejected {
		l.Status = worklog.StatusAbsent
	}
	return l
}

var roster = []employee.Employee{
	{ID: "e1", Name: "Ana"},
	{ID: "e2", Name: "Budi"},
	{ID: "e3", Name: "Citra"},
}

func TestBuildRecap(t *testing.T) {
	logs := []worklog.WorkLog{
		namedLog("e1", "Ana", "2026-03-02", worklog.StatusOnTime, 8, true),
		namedLog("e1", "Ana", "2026-03-03", worklog.StatusLate, 7.5, true),
		namedLeave("e2", "Budi", "2026-03-02", worklog.StatusSick, worklog.ApprovalApproved),
		namedLeave("e2", "Budi", "2026-03-03", worklog.StatusOnLeave, worklog.ApprovalRejected),
	}

	rows := BuildRecap(roster, logs)
	require.Len(t, rows, 3)

	assert.Equal(t, "Ana", rows[0].EmployeeName)
	assert.Equal(t, 1, rows[0].Present)
	assert.Equal(t, 1, rows[0].Late)

	assert.Equal(t, 1, rows[1].Leave)
	assert.Equal(t, 1, rows[1].Absent, "rejected leave counts as absence")

	// no logs at all still yields a zeroed row
	assert.Equal(t, "Citra", rows[2].EmployeeName)
	assert.Zero(t, rows[2].Present+rows[2].Late+rows[2].Leave+rows[2].Absent)
}

func TestBuildRecapSkipsPendingLeave(t *testing.T) {
	rows := BuildRecap(roster, []worklog.WorkLog{
		namedLeave("e1", "Ana", "2026-03-02", worklog.StatusSick, worklog.ApprovalPending),
	})

	require.Len(t, rows, 3)
	assert.Zero(t, rows[0].Present+rows[0].Late+rows[0].Leave+rows[0].Absent)
}

func TestBuildLateness(t *testing.T) {
	logs := []worklog.WorkLog{
		namedLog("e1", "Ana", "2026-03-02", worklog.StatusOnTime, 8, true),
		namedLog("e2", "Budi", "2026-03-02", worklog.StatusLate, 8, false),
	}

	rows := BuildLateness(logs)
	require.Len(t, rows, 1)
	assert.Equal(t, "Budi", rows[0].EmployeeName)
	assert.Equal(t, "2026-03-02", rows[0].Date)
	require.NotNil(t, rows[0].CheckInTime)
}

func TestBuildWorkHours(t *testing.T) {
	logs := []worklog.WorkLog{
		namedLog("e1", "Ana", "2026-03-02", worklog.StatusOnTime, 9.5, true),
		namedLog("e1", "Ana", "2026-03-03", worklog.StatusOnTime, 8, true),
		namedLog("e2", "Budi", "2026-03-02", worklog.StatusLate, 8, false), // still checked in
		namedLeave("e3", "Citra", "2026-03-02", worklog.StatusSick, worklog.ApprovalApproved),
	}

	rows := BuildWorkHours(roster, logs)
	require.Len(t, rows, 1, "open logs and leave days carry no hours")

	assert.Equal(t, "e1", rows[0].EmployeeID)
	assert.InDelta(t, 17.5, rows[0].TotalHours, 0.001)
	assert.InDelta(t, 1.5, rows[0].Overtime, 0.001)
}

func TestBuildLeave(t *testing.T) {
	logs := []worklog.WorkLog{
		namedLeave("e1", "Ana", "2026-03-02", worklog.StatusOnLeave, worklog.ApprovalApproved),
		namedLeave("e2", "Budi", "2026-03-02", worklog.StatusSick, worklog.ApprovalPending),
		namedLeave("e3", "Citra", "2026-03-02", worklog.StatusSick, worklog.ApprovalRejected),
	}

	rows := BuildLeave(logs)
	require.Len(t, rows, 1)
	assert.Equal(t, "Ana", rows[0].EmployeeName)
	assert.Equal(t, worklog.StatusOnLeave, rows[0].Status)
	require.NotNil(t, rows[0].Note)
	assert.Equal(t, "family matters", *rows[0].Note)
}
