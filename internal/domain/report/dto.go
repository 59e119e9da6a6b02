package report

import (
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

// RangeQuery selects logs with date in [From, To], both inclusive.
type RangeQuery struct {
	From string // YYYY-MM-DD
	To   string // YYYY-MM-DD
}

func (q RangeQuery) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(q.From); !ok {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(q.To); !ok {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be YYYY-MM-DD"})
	}
	if len(errs) == 0 && q.From > q.To {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must not precede from"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecapRow holds per-employee counts for the attendance recap. Every
// roster member gets a row, zero counts included.
type RecapRow struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Present      int    `json:"present"` // On-Time logs
	Late         int    `json:"late"`
	Leave        int    `json:"leave"`  // approved leave only
	Absent       int    `json:"absent"` // explicit Absent plus rejected leave
}

// LatenessRow is one Late log in the range.
type LatenessRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	CheckInTime  *string `json:"check_in_time"`
}

// WorkHoursRow is the per-employee hour totals. Employees with no
// qualifying hours in the range are omitted.
type WorkHoursRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	TotalHours   float64 `json:"total_hours"`
	Overtime     float64 `json:"overtime"` // sum of max(0, hours-8) per log
}

// LeaveRow is one approved leave log in the range.
type LeaveRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Date         string  `json:"date"`
	Status       string  `json:"status"` // On-Leave or Sick
	Note         *string `json:"note"`
}
