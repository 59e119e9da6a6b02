package worklog

import "context"

// WorkLogService governs the attendance record lifecycle.
type WorkLogService interface {
	// CheckIn creates today's record for an employee after geofence and
	// work-window admission
	CheckIn(ctx context.Context, req CheckInRequest) (WorkLogResponse, error)

	// CheckOut completes today's record; early check-out is flagged in the
	// response but never blocked
	CheckOut(ctx context.Context, req CheckOutRequest) (WorkLogResponse, error)

	// RequestLeave creates a pending leave record for today
	RequestLeave(ctx context.Context, req LeaveRequest) (WorkLogResponse, error)

	// DecideLeave approves or rejects a pending leave request (admin)
	DecideLeave(ctx context.Context, req LeaveDecisionRequest) (WorkLogResponse, error)

	// CorrectCheckOut backfills a missing check-out with a note (admin)
	CorrectCheckOut(ctx context.Context, req CorrectionRequest) (WorkLogResponse, error)

	// GetToday returns the employee's record for today, or nil
	GetToday(ctx context.Context, employeeID string) (*WorkLogResponse, error)

	// List retrieves records in a date range (admin)
	List(ctx context.Context, filter ListFilter) ([]WorkLogResponse, error)

	// ResetAll deletes every work log (administrative bulk reset)
	ResetAll(ctx context.Context) error
}
