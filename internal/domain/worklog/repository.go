package worklog

import "context"

// WorkLogRepository defines data access methods for attendance records.
// The store enforces UNIQUE (employee_id, date); CreateIfAbsent relies on it.
type WorkLogRepository interface {
	// CreateIfAbsent inserts a new record unless one already exists for
	// the same (employeeID, date); returns ErrAlreadyRecorded on conflict.
	CreateIfAbsent(ctx context.Context, w WorkLog) (WorkLog, error)

	// GetByID retrieves a record by id
	GetByID(ctx context.Context, id string) (WorkLog, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// calendar day, or nil when none exists
	GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*WorkLog, error)

	// Update persists mutations made by a state-machine transition
	Update(ctx context.Context, w WorkLog) error

	// ListByDateRange retrieves records with date in [from, to] inclusive,
	// newest first; empty bounds are unbounded
	ListByDateRange(ctx context.Context, from, to string) ([]WorkLog, error)

	// ListByEmployee retrieves an employee's records, newest first
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]WorkLog, error)

	// DeleteAll removes every record (administrative bulk reset)
	DeleteAll(ctx context.Context) (int64, error)
}
