package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/database"
)

type workLogRepositoryImpl struct {
	db *database.DB
}

func NewWorkLogRepository(db *database.DB) worklog.WorkLogRepository {
	return &workLogRepositoryImpl{db: db}
}

const workLogColumns = `
	w.id, w.employee_id, w.date, w.status,
	w.check_in_time, w.check_out_time,
	w.check_in_latitude, w.check_in_longitude, w.check_in_photo_url,
	w.check_out_latitude, w.check_out_longitude, w.check_out_photo_url,
	w.duration_hours, w.leave_note, w.leave_approval_status, w.correction_note,
	w.created_at, w.updated_at, e.name
`

func scanWorkLog(row pgx.Row) (worklog.WorkLog, error) {
	var w worklog.WorkLog
	err := row.Scan(
		&w.ID,
		&w.EmployeeID,
		&w.Date,
		&w.Status,
		&w.CheckInTime,
		&w.CheckOutTime,
		&w.CheckInLatitude,
		&w.CheckInLongitude,
		&w.CheckInPhotoURL,
		&w.CheckOutLatitude,
		&w.CheckOutLongitude,
		&w.CheckOutPhotoURL,
		&w.DurationHours,
		&w.LeaveNote,
		&w.LeaveApprovalStatus,
		&w.CorrectionNote,
		&w.CreatedAt,
		&w.UpdatedAt,
		&w.EmployeeName,
	)
	return w, err
}

// wrapStoreError translates store-level failures that have a domain
// meaning; everything else passes through wrapped.
func wrapStoreError(op string, err error) error {
	if database.IsPermissionDenied(err) {
		return worklog.ErrPermissionDenied
	}
	return fmt.Errorf("%s: %w", op, err)
}

// CreateIfAbsent implements worklog.WorkLogRepository. The UNIQUE
// (employee_id, date) index arbitrates concurrent same-day submissions;
// losing a conflict surfaces as ErrAlreadyRecorded.
func (r *workLogRepositoryImpl) CreateIfAbsent(ctx context.Context, w worklog.WorkLog) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		WITH inserted AS (
			INSERT INTO work_logs (
				id, employee_id, date, status,
				check_in_time, check_in_latitude, check_in_longitude, check_in_photo_url,
				leave_note, leave_approval_status,
				created_at, updated_at
			)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
			ON CONFLICT (employee_id, date) DO NOTHING
			RETURNING *
		)
		SELECT ` + workLogColumns + `
		FROM inserted w
		JOIN employees e ON e.id = w.employee_id
	`

	created, err := scanWorkLog(q.QueryRow(ctx, query,
		w.ID,
		w.EmployeeID,
		w.Date,
		w.Status,
		w.CheckInTime,
		w.CheckInLatitude,
		w.CheckInLongitude,
		w.CheckInPhotoURL,
		w.LeaveNote,
		w.LeaveApprovalStatus,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklog.WorkLog{}, worklog.ErrAlreadyRecorded
		}
		return worklog.WorkLog{}, wrapStoreError("failed to create work log", err)
	}

	return created, nil
}

// GetByID implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) GetByID(ctx context.Context, id string) (worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs w
		JOIN employees e ON e.id = w.employee_id
		WHERE w.id = $1
	`

	found, err := scanWorkLog(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return worklog.WorkLog{}, err
		}
		return worklog.WorkLog{}, wrapStoreError("failed to get work log", err)
	}

	return found, nil
}

// GetByEmployeeAndDate implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID, date string) (*worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs w
		JOIN employees e ON e.id = w.employee_id
		WHERE w.employee_id = $1 AND w.date = $2
	`

	found, err := scanWorkLog(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, wrapStoreError("failed to get work log", err)
	}

	return &found, nil
}

// Update implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) Update(ctx context.Context, w worklog.WorkLog) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE work_logs
		SET status = $1,
			check_out_time = $2,
			check_out_latitude = $3,
			check_out_longitude = $4,
			check_out_photo_url = $5,
			duration_hours = $6,
			leave_approval_status = $7,
			correction_note = $8,
			updated_at = NOW()
		WHERE id = $9
	`

	tag, err := q.Exec(ctx, query,
		w.Status,
		w.CheckOutTime,
		w.CheckOutLatitude,
		w.CheckOutLongitude,
		w.CheckOutPhotoURL,
		w.DurationHours,
		w.LeaveApprovalStatus,
		w.CorrectionNote,
		w.ID,
	)
	if err != nil {
		return wrapStoreError("failed to update work log", err)
	}
	if tag.RowsAffected() == 0 {
		return worklog.ErrWorkLogNotFound
	}

	return nil
}

// ListByDateRange implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) ListByDateRange(ctx context.Context, from, to string) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs w
		JOIN employees e ON e.id = w.employee_id
		WHERE ($1 = '' OR w.date >= $1)
		  AND ($2 = '' OR w.date <= $2)
		ORDER BY w.date DESC, w.created_at DESC
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, wrapStoreError("failed to list work logs", err)
	}
	defer rows.Close()

	return collectWorkLogs(rows)
}

// ListByEmployee implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]worklog.WorkLog, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + workLogColumns + `
		FROM work_logs w
		JOIN employees e ON e.id = w.employee_id
		WHERE w.employee_id = $1
		ORDER BY w.date DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, employeeID, limit)
	if err != nil {
		return nil, wrapStoreError("failed to list work logs", err)
	}
	defer rows.Close()

	return collectWorkLogs(rows)
}

// DeleteAll implements worklog.WorkLogRepository.
func (r *workLogRepositoryImpl) DeleteAll(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM work_logs`)
	if err != nil {
		return 0, wrapStoreError("failed to delete work logs", err)
	}

	return tag.RowsAffected(), nil
}

func collectWorkLogs(rows pgx.Rows) ([]worklog.WorkLog, error) {
	logs := make([]worklog.WorkLog, 0)
	for rows.Next() {
		w, err := scanWorkLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, w)
	}
	return logs, rows.Err()
}
