package settings

import (
	"fmt"
	"time"
)

// OfficeSettings is the singleton deployment configuration read by every
// check-in/check-out decision. There is exactly one row per deployment.
type OfficeSettings struct {
	ID                   string
	Latitude             float64
	Longitude            float64
	RadiusMeters         int
	WorkStart            string // "HH:MM"
	WorkEnd              string // "HH:MM"
	LateToleranceMinutes int
	UpdatedAt            time.Time
}

// HasWorkHours reports whether the admin has configured the work-hours
// window. Attendance actions are rejected until both bounds are set.
func (s OfficeSettings) HasWorkHours() bool {
	return s.WorkStart != "" && s.WorkEnd != ""
}

// WorkWindow anchors the configured work-hours window on the calendar day
// of at, in at's location.
func (s OfficeSettings) WorkWindow(at time.Time) (start, end time.Time, err error) {
	start, err = anchorClock(s.WorkStart, at)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid work_start %q: %w", s.WorkStart, err)
	}
	end, err = anchorClock(s.WorkEnd, at)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid work_end %q: %w", s.WorkEnd, err)
	}
	return start, end, nil
}

// LateBoundary is the last instant on at's calendar day that still
// classifies as On-Time: work_start plus the late tolerance.
func (s OfficeSettings) LateBoundary(at time.Time) (time.Time, error) {
	start, err := anchorClock(s.WorkStart, at)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid work_start %q: %w", s.WorkStart, err)
	}
	return start.Add(time.Duration(s.LateToleranceMinutes) * time.Minute), nil
}

func anchorClock(clock string, day time.Time) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}
