package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() UpdateSettingsRequest {
	return UpdateSettingsRequest{
		Latitude:             -6.930917,
		Longitude:            107.620422,
		RadiusMeters:         50,
		WorkStart:            "08:00",
		WorkEnd:              "17:00",
		LateToleranceMinutes: 15,
	}
}

func TestUpdateSettingsRequest_Validate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	cases := []struct {
		name   string
		mutate func(*UpdateSettingsRequest)
	}{
		{"negative radius", func(r *UpdateSettingsRequest) { r.RadiusMeters = -1 }},
		{"negative tolerance", func(r *UpdateSettingsRequest) { r.LateToleranceMinutes = -5 }},
		{"end before start", func(r *UpdateSettingsRequest) { r.WorkStart = "17:00"; r.WorkEnd = "08:00" }},
		{"end equals start", func(r *UpdateSettingsRequest) { r.WorkEnd = r.WorkStart }},
		{"bad clock", func(r *UpdateSettingsRequest) { r.WorkStart = "8am" }},
		{"latitude out of range", func(r *UpdateSettingsRequest) { r.Latitude = 91 }},
		{"longitude out of range", func(r *UpdateSettingsRequest) { r.Longitude = -181 }},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := validRequest()
			c.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestOfficeSettings_LateBoundary(t *testing.T) {
	s := OfficeSettings{WorkStart: "08:00", WorkEnd: "17:00", LateToleranceMinutes: 15}
	day := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	boundary, err := s.LateBoundary(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 15, 0, 0, time.UTC), boundary)
}

func TestOfficeSettings_WorkWindow(t *testing.T) {
	s := OfficeSettings{WorkStart: "08:00", WorkEnd: "17:00"}
	day := time.Date(2025, 3, 10, 23, 59, 0, 0, time.UTC)

	start, end, err := s.WorkWindow(day)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 10, 17, 0, 0, 0, time.UTC), end)
	assert.True(t, start.Before(end))
}
