package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoattend/geoattend-backend-go/internal/domain/auth"
	"github.com/geoattend/geoattend-backend-go/internal/domain/employee"
	"github.com/geoattend/geoattend-backend-go/internal/domain/settings"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
	"github.com/geoattend/geoattend-backend-go/internal/pkg/validator"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"duplicate attendance", worklog.ErrAlreadyRecorded, http.StatusConflict, "CONFLICT"},
		{"outside radius", worklog.ErrOutsideAllowedRadius, http.StatusBadRequest, "BAD_REQUEST"},
		{"window closed", worklog.ErrWindowClosed, http.StatusBadRequest, "BAD_REQUEST"},
		{"not checked in", worklog.ErrNotCheckedIn, http.StatusBadRequest, "BAD_REQUEST"},
		{"already checked out", worklog.ErrAlreadyCheckedOut, http.StatusConflict, "CONFLICT"},
		{"check-out before check-in", worklog.ErrInvalidTimeOrder, http.StatusBadRequest, "BAD_REQUEST"},
		{"leave already processed", worklog.ErrLeaveAlreadyProcessed, http.StatusConflict, "CONFLICT"},
		{"work log missing", worklog.ErrWorkLogNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"store privilege failure", worklog.ErrPermissionDenied, http.StatusForbidden, "FORBIDDEN"},
		{"work hours unset", settings.ErrWorkHoursNotConfigured, http.StatusBadRequest, "BAD_REQUEST"},
		{"bad credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{"employee missing", employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{"unknown error stays opaque", errors.New("pool exhausted"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.False(t, body.Success)
		})
	}
}

func TestHandleErrorValidation(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "latitude", Message: "must be a finite value between -90 and 90"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_ERROR", body.Error.Code)
	assert.Contains(t, body.Error.Details, "latitude")
}
