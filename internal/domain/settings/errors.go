package settings

import "errors"

var (
	ErrSettingsNotFound       = errors.New("office settings not found")
	ErrWorkHoursNotConfigured = errors.New("admin has not configured work hours")
)
