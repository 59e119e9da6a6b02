package worklog

import (
	"time"
)

// Attendance statuses. A record's status is derived-but-stored: the leave
// rejection transition overwrites it to Absent.
const (
	StatusOnTime  = "On-Time"
	StatusLate    = "Late"
	StatusOnLeave = "On-Leave"
	StatusSick    = "Sick"
	StatusAbsent  = "Absent"
)

// Leave approval statuses. Ordinary attendance records stay at "n/a".
const (
	ApprovalNA       = "n/a"
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"
)

// DateFormat is the calendar-day key format; string form orders correctly.
const DateFormat = "2006-01-02"

// DefaultCorrectionNote is recorded when the admin leaves the note empty.
const DefaultCorrectionNote = "Manual check-out time added by admin."

// WorkLog is the per-employee, per-day attendance record. At most one
// exists per (EmployeeID, Date) pair.
type WorkLog struct {
	ID                  string
	EmployeeID          string
	Date                string // YYYY-MM-DD
	Status              string
	CheckInTime         *time.Time
	CheckOutTime        *time.Time
	CheckInLatitude     *float64
	CheckInLongitude    *float64
	CheckInPhotoURL     *string
	CheckOutLatitude    *float64
	CheckOutLongitude   *float64
	CheckOutPhotoURL    *string
	DurationHours       float64
	LeaveNote           *string
	LeaveApprovalStatus string
	CorrectionNote      *string
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// DTO
	EmployeeName *string
}

// State is the lifecycle position of a record.
type State string

const (
	StateCheckedIn     State = "checked_in"
	StateCheckedOut    State = "checked_out"
	StateLeavePending  State = "leave_pending"
	StateLeaveApproved State = "leave_approved"
	StateLeaveRejected State = "leave_rejected"
)

// IsLeave reports whether the record travels the leave branch.
func (w WorkLog) IsLeave() bool {
	return w.LeaveApprovalStatus != ApprovalNA && w.LeaveApprovalStatus != ""
}

// State derives the lifecycle state from the stored fields.
func (w WorkLog) State() State {
	if w.IsLeave() {
		switch w.LeaveApprovalStatus {
		case ApprovalApproved:
			return StateLeaveApproved
		case ApprovalRejected:
			return StateLeaveRejected
		default:
			return StateLeavePending
		}
	}
	if w.CheckOutTime != nil {
		return StateCheckedOut
	}
	return StateCheckedIn
}

// ApplyCheckOut advances a CheckedIn record to CheckedOut, capturing the
// check-out coordinates and evidence reference and recomputing the
// duration. The record is immutable afterwards except by correction.
func (w *WorkLog) ApplyCheckOut(at time.Time, lat, lon float64, photoURL string) error {
	if err := w.checkOutPreconditions(at); err != nil {
		return err
	}

	out := at
	w.CheckOutTime = &out
	w.CheckOutLatitude = &lat
	w.CheckOutLongitude = &lon
	w.CheckOutPhotoURL = &photoURL
	w.DurationHours = RoundHours(out.Sub(*w.CheckInTime))
	return nil
}

// ApplyCorrection force-advances a CheckedIn record to CheckedOut with an
// admin-supplied time. No geofence check, no evidence photo; the record is
// tagged with the correction note instead.
func (w *WorkLog) ApplyCorrection(at time.Time, note string) error {
	if err := w.checkOutPreconditions(at); err != nil {
		return err
	}

	if note == "" {
		note = DefaultCorrectionNote
	}
	out := at
	w.CheckOutTime = &out
	w.CheckOutPhotoURL = nil
	w.CorrectionNote = &note
	w.DurationHours = RoundHours(out.Sub(*w.CheckInTime))
	return nil
}

func (w *WorkLog) checkOutPreconditions(at time.Time) error {
	if w.IsLeave() || w.CheckInTime == nil {
		return ErrNotCheckedIn
	}
	if w.CheckOutTime != nil {
		return ErrAlreadyCheckedOut
	}
	if at.Before(*w.CheckInTime) {
		return ErrInvalidTimeOrder
	}
	return nil
}

// ApplyLeaveDecision resolves a pending leave request. Rejection converts
// the record to an absence for reporting purposes.
func (w *WorkLog) ApplyLeaveDecision(decision string) error {
	if !w.IsLeave() {
		return ErrNotLeaveRequest
	}
	if w.LeaveApprovalStatus != ApprovalPending {
		return ErrLeaveAlreadyProcessed
	}

	switch decision {
	case ApprovalApproved:
		w.LeaveApprovalStatus = ApprovalApproved
	case ApprovalRejected:
		w.LeaveApprovalStatus = ApprovalRejected
		w.Status = StatusAbsent
	default:
		return ErrInvalidDecision
	}
	return nil
}
