package response

import (
	"errors"
	"net/http"

	"github.com/geoattend/geoattend-backend-go/internal/domain/auth"
	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
	"github.com/geoattend/geoattend-backend-go/internal/domain/user"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Settings domain errors
	case errors.Is(err, settings.ErrSettingsNotFound):
		NotFound(w, "Office settings not configured")
	case errors.Is(err, settings.ErrWorkHoursNotConfigured):
		BadRequest(w, err.Error(), nil)

	// Work-log preconditions. Each failure keeps its own message so the
	// check-in kiosk can tell the employee what actually went wrong.
	case errors.Is(err, worklog.ErrAlreadyRecorded):
		Conflict(w, err.Error())
	case errors.Is(err, worklog.ErrOutsideAllowedRadius):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrWindowClosed):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, worklog.ErrInvalidTimeOrder):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrNotLeaveRequest):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrLeaveAlreadyProcessed):
		Conflict(w, err.Error())
	case errors.Is(err, worklog.ErrInvalidDecision):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, worklog.ErrWorkLogNotFound):
		NotFound(w, "Work log not found")
	case errors.Is(err, worklog.ErrPermissionDenied):
		Forbidden(w, "Permission denied by data store")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
