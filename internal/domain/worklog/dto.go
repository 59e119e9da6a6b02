package worklog

import (
	"mime/multipart"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	// Evidence photo, attached by the handler from the multipart form
	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r CheckInRequest) Validate() error {
	return validateAttendanceAction(r.EmployeeID, r.Latitude, r.Longitude)
}

type CheckOutRequest struct {
	EmployeeID string  `json:"employee_id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`

	File       multipart.File        `json:"-"`
	FileHeader *multipart.FileHeader `json:"-"`
}

func (r CheckOutRequest) Validate() error {
	return validateAttendanceAction(r.EmployeeID, r.Latitude, r.Longitude)
}

func validateAttendanceAction(employeeID string, lat, lon float64) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsValidLatitude(lat) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be a finite value between -90 and 90"})
	}
	if !validator.IsValidLongitude(lon) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be a finite value between -180 and 180"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveRequest struct {
	EmployeeID string `json:"employee_id"`
	LeaveType  string `json:"leave_type"` // On-Leave or Sick
	Note       string `json:"note"`
}

func (r LeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if !validator.IsInSlice(r.LeaveType, []string{StatusOnLeave, StatusSick}) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "must be On-Leave or Sick"})
	}
	if validator.IsEmpty(r.Note) {
		errs = append(errs, validator.ValidationError{Field: "note", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveDecisionRequest struct {
	WorkLogID string `json:"-"`
	Decision  string `json:"decision"` // approved or rejected
}

func (r LeaveDecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkLogID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if !validator.IsInSlice(r.Decision, []string{ApprovalApproved, ApprovalRejected}) {
		errs = append(errs, validator.ValidationError{Field: "decision", Message: "must be approved or rejected"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CorrectionRequest struct {
	WorkLogID     string `json:"-"`
	CheckOutClock string `json:"check_out_time"` // "HH:MM", anchored on the log's date
	Note          string `json:"note"`
}

func (r CorrectionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkLogID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "is required"})
	}
	if !validator.IsValidClock(r.CheckOutClock) {
		errs = append(errs, validator.ValidationError{Field: "check_out_time", Message: "must be HH:MM (24-hour)"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter bounds admin work-log queries to an inclusive date range.
type ListFilter struct {
	From       string // YYYY-MM-DD
	To         string // YYYY-MM-DD
	EmployeeID string
}

func (f ListFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.From != "" {
		if _, ok := validator.IsValidDate(f.From); !ok {
			errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.To != "" {
		if _, ok := validator.IsValidDate(f.To); !ok {
			errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD"})
		}
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkLogResponse struct {
	ID                  string   `json:"id"`
	EmployeeID          string   `json:"employee_id"`
	EmployeeName        *string  `json:"employee_name,omitempty"`
	Date                string   `json:"date"`
	Status              string   `json:"status"`
	CheckInTime         *string  `json:"check_in_time"`
	CheckOutTime        *string  `json:"check_out_time"`
	CheckInLatitude     *float64 `json:"check_in_latitude,omitempty"`
	CheckInLongitude    *float64 `json:"check_in_longitude,omitempty"`
	CheckOutLatitude    *float64 `json:"check_out_latitude,omitempty"`
	CheckOutLongitude   *float64 `json:"check_out_longitude,omitempty"`
	CheckInPhotoURL     *string  `json:"check_in_photo_url,omitempty"`
	CheckOutPhotoURL    *string  `json:"check_out_photo_url,omitempty"`
	DurationHours       float64  `json:"duration_hours"`
	LeaveNote           *string  `json:"leave_note,omitempty"`
	LeaveApprovalStatus string   `json:"leave_approval_status"`
	CorrectionNote      *string  `json:"correction_note,omitempty"`

	// Advisory fields on attendance actions
	DistanceMeters *float64 `json:"distance_meters,omitempty"`
	EarlyCheckOut  *bool    `json:"early_check_out,omitempty"`
}

// timePtrToString safely converts a *time.Time to a string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func ToResponse(w WorkLog) WorkLogResponse {
	return WorkLogResponse{
		ID:                  w.ID,
		EmployeeID:          w.EmployeeID,
		EmployeeName:        w.EmployeeName,
		Date:                w.Date,
		Status:              w.Status,
		CheckInTime:         timePtrToString(w.CheckInTime),
		CheckOutTime:        timePtrToString(w.CheckOutTime),
		CheckInLatitude:     w.CheckInLatitude,
		CheckInLongitude:    w.CheckInLongitude,
		CheckOutLatitude:    w.CheckOutLatitude,
		CheckOutLongitude:   w.CheckOutLongitude,
		CheckInPhotoURL:     w.CheckInPhotoURL,
		CheckOutPhotoURL:    w.CheckOutPhotoURL,
		DurationHours:       w.DurationHours,
		LeaveNote:           w.LeaveNote,
		LeaveApprovalStatus: w.LeaveApprovalStatus,
		CorrectionNote:      w.CorrectionNote,
	}
}
