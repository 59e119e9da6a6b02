package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/geoattend/geoattend-backend-go/internal/domain/report"
)

// Workbook builds a single-sheet report workbook: a merged title row,
// a styled header row, then data rows.
type Workbook struct {
	file    *excelize.File
	sheet   string
	nextRow int
}

func newWorkbook(sheet, title string, headers []string) (*Workbook, error) {
	f := excelize.NewFile()

	index, err := f.NewSheet(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11, Color: "#FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	wb := &Workbook{file: f, sheet: sheet}

	lastCol, err := excelize.ColumnNumberToName(len(headers))
	if err != nil {
		f.Close()
		return nil, err
	}

	f.SetCellValue(sheet, "A1", title)
	f.MergeCell(sheet, "A1", lastCol+"1")
	f.SetCellStyle(sheet, "A1", lastCol+"1", headerStyle)

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 3)
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}
	f.SetColWidth(sheet, "A", lastCol, 18)

	wb.nextRow = 4
	return wb, nil
}

func (wb *Workbook) addRow(values ...interface{}) {
	for i, v := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, wb.nextRow)
		wb.file.SetCellValue(wb.sheet, cell, v)
	}
	wb.nextRow++
}

func (wb *Workbook) bytes() ([]byte, error) {
	defer wb.file.Close()
	buf, err := wb.file.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// RecapWorkbook renders the attendance recap rows
func RecapWorkbook(q report.RangeQuery, rows []report.RecapRow) ([]byte, error) {
	wb, err := newWorkbook("Attendance Recap",
		fmt.Sprintf("Attendance Recap %s to %s", q.From, q.To),
		[]string{"Employee", "On-Time", "Late", "Leave", "Absent"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		wb.addRow(r.EmployeeName, r.Present, r.Late, r.Leave, r.Absent)
	}
	return wb.bytes()
}

// LatenessWorkbook renders the lateness rows
func LatenessWorkbook(q report.RangeQuery, rows []report.LatenessRow) ([]byte, error) {
	wb, err := newWorkbook("Lateness",
		fmt.Sprintf("Lateness Report %s to %s", q.From, q.To),
		[]string{"Employee", "Date", "Check-In Time"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		checkIn := ""
		if r.CheckInTime != nil {
			checkIn = *r.CheckInTime
		}
		wb.addRow(r.EmployeeName, r.Date, checkIn)
	}
	return wb.bytes()
}

// WorkHoursWorkbook renders the work-hours rows
func WorkHoursWorkbook(q report.RangeQuery, rows []report.WorkHoursRow) ([]byte, error) {
	wb, err := newWorkbook("Work Hours",
		fmt.Sprintf("Work Hours Report %s to %s", q.From, q.To),
		[]string{"Employee", "Total Hours", "Overtime Hours"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		wb.addRow(r.EmployeeName, fmt.Sprintf("%.2f", r.TotalHours), fmt.Sprintf("%.2f", r.Overtime))
	}
	return wb.bytes()
}

// LeaveWorkbook renders the approved leave rows
func LeaveWorkbook(q report.RangeQuery, rows []report.LeaveRow) ([]byte, error) {
	wb, err := newWorkbook("Leave",
		fmt.Sprintf("Leave Report %s to %s", q.From, q.To),
		[]string{"Employee", "Date", "Type", "Note"})
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		note := ""
		if r.Note != nil {
			note = *r.Note
		}
		wb.addRow(r.EmployeeName, r.Date, r.Status, note)
	}
	return wb.bytes()
}
