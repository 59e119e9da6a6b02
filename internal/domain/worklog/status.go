package worklog

import (
	"math"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
)

// ClassifyCheckIn labels a check-in at the given instant against the
// configured work hours. A check-in at exactly work_start + late_tolerance
// is still On-Time; one attempted after work_end is rejected outright.
func ClassifyCheckIn(s settings.OfficeSettings, at time.Time) (string, error) {
	if !s.HasWorkHours() {
		return "", settings.ErrWorkHoursNotConfigured
	}

	_, end, err := s.WorkWindow(at)
	if err != nil {
		return "", err
	}
	if at.After(end) {
		return "", ErrWindowClosed
	}

	boundary, err := s.LateBoundary(at)
	if err != nil {
		return "", err
	}
	if at.After(boundary) {
		return StatusLate, nil
	}
	return StatusOnTime, nil
}

// RoundHours converts a duration to hours rounded to 2 decimals.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}
