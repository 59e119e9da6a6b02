package worklog

import "errors"

// Work-log domain errors. Every state-machine precondition violation maps
// to one of these so callers can render an actionable message.
var (
	// Check-in errors
	ErrAlreadyRecorded      = errors.New("you already completed today's attendance")
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed radius")
	ErrWindowClosed         = errors.New("attendance window closed")

	// Check-out errors
	ErrNotCheckedIn      = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut = errors.New("you have already checked out")
	ErrInvalidTimeOrder  = errors.New("check-out time must not be before check-in time")

	// Leave errors
	ErrNotLeaveRequest       = errors.New("work log is not a leave request")
	ErrLeaveAlreadyProcessed = errors.New("leave request has already been approved or rejected")
	ErrInvalidDecision       = errors.New("decision must be approved or rejected")

	// General errors
	ErrWorkLogNotFound  = errors.New("work log not found")
	ErrPermissionDenied = errors.New("permission denied by data store")
)
