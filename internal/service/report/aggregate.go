package report

import (
	"math"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/report"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

// Report folds. Pure functions over a roster/work-log snapshot; the
// service fetches the range and delegates here.

// BuildRecap tallies per-employee counts over the range. Every roster
// member gets a row, zero counts included; rejected leave counts as an
// absence alongside explicit Absent logs.
func BuildRecap(roster []employee.Employee, logs []worklog.WorkLog) []report.RecapRow {
	index := make(map[string]int, len(roster))
	rows := make([]report.RecapRow, 0, len(roster))
	for i, e := range roster {
		index[e.ID] = i
		rows = append(rows, report.RecapRow{EmployeeID: e.ID, EmployeeName: e.Name})
	}

	for _, l := range logs {
		i, ok := index[l.EmployeeID]
		if !ok {
			continue
		}
		switch {
		case l.Status == worklog.StatusOnTime && !l.IsLeave():
			rows[i].Present++
		case l.Status == worklog.StatusLate && !l.IsLeave():
			rows[i].Late++
		case l.IsLeave() && l.LeaveApprovalStatus == worklog.ApprovalApproved:
			rows[i].Leave++
		case l.Status == worklog.StatusAbsent || l.LeaveApprovalStatus == worklog.ApprovalRejected:
			rows[i].Absent++
		}
	}

	return rows
}

// BuildLateness returns one row per Late log in the range.
func BuildLateness(logs []worklog.WorkLog) []report.LatenessRow {
	rows := make([]report.LatenessRow, 0)
	for _, l := range logs {
		if l.Status != worklog.StatusLate || l.IsLeave() {
			continue
		}
		rows = append(rows, report.LatenessRow{
			EmployeeID:   l.EmployeeID,
			EmployeeName: employeeName(l),
			Date:         l.Date,
			CheckInTime:  formatClock(l.CheckInTime),
		})
	}
	return rows
}

// BuildWorkHours totals completed attendance hours per employee.
// Employees with no qualifying hours in the range are omitted.
func BuildWorkHours(roster []employee.Employee, logs []worklog.WorkLog) []report.WorkHoursRow {
	totals := make(map[string]*report.WorkHoursRow, len(roster))
	for _, l := range logs {
		if l.IsLeave() || l.CheckOutTime == nil {
			continue
		}
		row, ok := totals[l.EmployeeID]
		if !ok {
			row = &report.WorkHoursRow{EmployeeID: l.EmployeeID, EmployeeName: employeeName(l)}
			totals[l.EmployeeID] = row
		}
		row.TotalHours += l.DurationHours
		if l.DurationHours > 8 {
			row.Overtime += l.DurationHours - 8
		}
	}

	// roster order, zero totals dropped
	rows := make([]report.WorkHoursRow, 0, len(totals))
	for _, e := range roster {
		row, ok := totals[e.ID]
		if !ok || row.TotalHours == 0 {
			continue
		}
		if row.EmployeeName == "" {
			row.EmployeeName = e.Name
		}
		row.TotalHours = math.Round(row.TotalHours*100) / 100
		row.Overtime = math.Round(row.Overtime*100) / 100
		rows = append(rows, *row)
	}
	return rows
}

// BuildLeave returns one row per approved leave log in the range.
func BuildLeave(logs []worklog.WorkLog) []report.LeaveRow {
	rows := make([]report.LeaveRow, 0)
	for _, l := range logs {
		if !l.IsLeave() || l.LeaveApprovalStatus != worklog.ApprovalApproved {
			continue
		}
		rows = append(rows, report.LeaveRow{
			EmployeeID:   l.EmployeeID,
			EmployeeName: employeeName(l),
			Date:         l.Date,
			Status:       l.Status,
			Note:         l.LeaveNote,
		})
	}
	return rows
}

func employeeName(l worklog.WorkLog) string {
	if l.EmployeeName != nil {
		return *l.EmployeeName
	}
	return ""
}

func formatClock(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
