package worklog

import (
	"testing"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func officeSettings() settings.OfficeSettings {
	return settings.OfficeSettings{
		Latitude:             -6.930917,
		Longitude:            107.620422,
		RadiusMeters:         50,
		WorkStart:            "08:00",
		WorkEnd:              "17:00",
		LateToleranceMinutes: 15,
	}
}

func at(hour, min, sec int) time.Time {
	return time.Date(2025, 3, 10, hour, min, sec, 0, time.UTC)
}

func TestClassifyCheckIn(t *testing.T) {
	cases := []struct {
		name    string
		at      time.Time
		want    string
		wantErr error
	}{
		{"well before boundary", at(7, 45, 0), StatusOnTime, nil},
		{"within tolerance", at(8, 10, 0), StatusOnTime, nil},
		{"exactly at boundary", at(8, 15, 0), StatusOnTime, nil},
		{"one second past boundary", at(8, 15, 1), StatusLate, nil},
		{"late morning", at(11, 30, 0), StatusLate, nil},
		{"exactly at work end", at(17, 0, 0), StatusLate, nil},
		{"after work end", at(17, 0, 1), "", ErrWindowClosed},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ClassifyCheckIn(officeSettings(), c.at)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClassifyCheckIn_WorkHoursNotConfigured(t *testing.T) {
	s := officeSettings()
	s.WorkStart = ""
	s.WorkEnd = ""

	_, err := ClassifyCheckIn(s, at(8, 0, 0))
	assert.ErrorIs(t, err, settings.ErrWorkHoursNotConfigured)
}

func TestRoundHours(t *testing.T) {
	cases := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"8h55m rounds up", 8*time.Hour + 55*time.Minute, 8.92},
		{"exact 8h", 8 * time.Hour, 8.0},
		{"9h", 9 * time.Hour, 9.0},
		{"zero", 0, 0.0},
		{"30m", 30 * time.Minute, 0.5},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, RoundHours(c.d))
		})
	}
}
