package report

import "context"

// ReportService rolls the work-log set in an admin-selected date range up
// into HR report rows. All four views apply the same classification rules.
type ReportService interface {
	// AttendanceRecap returns per-employee present/late/leave/absent counts
	AttendanceRecap(ctx context.Context, q RangeQuery) ([]RecapRow, error)

	// Lateness returns every Late log in the range
	Lateness(ctx context.Context, q RangeQuery) ([]LatenessRow, error)

	// WorkHours returns per-employee hour and overtime totals
	WorkHours(ctx context.Context, q RangeQuery) ([]WorkHoursRow, error)

	// Leave returns every approved leave log in the range
	Leave(ctx context.Context, q RangeQuery) ([]LeaveRow, error)

	// Export renders one of the report tabs ("recap", "lateness",
	// "work_hours", "leave") to a spreadsheet
	Export(ctx context.Context, tab string, q RangeQuery) (filename string, content []byte, err error)
}
