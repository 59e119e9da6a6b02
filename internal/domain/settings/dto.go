package settings

import (
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

type UpdateSettingsRequest struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	RadiusMeters         int     `json:"radius"`
	WorkStart            string  `json:"work_start"`
	WorkEnd              string  `json:"work_end"`
	LateToleranceMinutes int     `json:"late_tolerance"`
}

func (r UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{Field: "latitude", Message: "must be a finite value between -90 and 90"})
	}
	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{Field: "longitude", Message: "must be a finite value between -180 and 180"})
	}
	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{Field: "radius", Message: "must not be negative"})
	}
	if r.LateToleranceMinutes < 0 {
		errs = append(errs, validator.ValidationError{Field: "late_tolerance", Message: "must not be negative"})
	}
	if !validator.IsValidClock(r.WorkStart) {
		errs = append(errs, validator.ValidationError{Field: "work_start", Message: "must be HH:MM (24-hour)"})
	}
	if !validator.IsValidClock(r.WorkEnd) {
		errs = append(errs, validator.ValidationError{Field: "work_end", Message: "must be HH:MM (24-hour)"})
	}
	// Zero-padded HH:MM compares correctly as a string
	if validator.IsValidClock(r.WorkStart) && validator.IsValidClock(r.WorkEnd) && r.WorkStart >= r.WorkEnd {
		errs = append(errs, validator.ValidationError{Field: "work_end", Message: "must be after work_start"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	Latitude             float64 `json:"latitude"`
	Longitude            float64 `json:"longitude"`
	RadiusMeters         int     `json:"radius"`
	WorkStart            string  `json:"work_start"`
	WorkEnd              string  `json:"work_end"`
	LateToleranceMinutes int     `json:"late_tolerance"`
	UpdatedAt            string  `json:"updated_at"`
}
