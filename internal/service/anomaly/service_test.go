package anomaly

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoattend/geoattend-backend-go/internal/domain/anomaly"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

type fakeWorkLogRepo struct {
	worklog.WorkLogRepository
	logs []worklog.WorkLog
}

func (f *fakeWorkLogRepo) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]worklog.WorkLog, error) {
	return f.logs, nil
}

type fakeAnalyzer struct {
	called  bool
	records []anomaly.Record
	result  anomaly.Result
}

func (f *fakeAnalyzer) DetectAnomaly(ctx context.Context, employeeID string, records []anomaly.Record) (anomaly.Result, error) {
	f.called = true
	f.records = records
	return f.result, nil
}

func historyLogs(n int) []worklog.WorkLog {
	logs := make([]worklog.WorkLog, 0, n)
	for i := 0; i < n; i++ {
		checkIn := time.Date(2026, 3, 2, 1, 0, 0, 0, time.UTC).AddDate(0, 0, i)
		logs = append(logs, worklog.WorkLog{
			EmployeeID:          "e1",
			Status:              worklog.StatusLate,
			CheckInTime:         &checkIn,
			LeaveApprovalStatus: worklog.ApprovalNA,
		})
	}
	return logs
}

func TestAnalyzeRequiresMinimumHistory(t *testing.T) {
	analyzer := &fakeAnalyzer{}
	svc := NewAnomalyService(&fakeWorkLogRepo{logs: historyLogs(anomaly.MinRecords - 1)}, analyzer)

	got, err := svc.Analyze(context.Background(), "e1")
	require.NoError(t, err)

	assert.False(t, got.AnomalyDetected)
	assert.False(t, analyzer.called, "model must not be called with a short history")
}

func TestAnalyzeCallsModel(t *testing.T) {
	analyzer := &fakeAnalyzer{result: anomaly.Result{
		AnomalyDetected:    true,
		AnomalyDescription: "Consistent lateness streak over the last week.",
	}}
	svc := NewAnomalyService(&fakeWorkLogRepo{logs: historyLogs(7)}, analyzer)

	got, err := svc.Analyze(context.Background(), "e1")
	require.NoError(t, err)

	assert.True(t, analyzer.called)
	assert.Len(t, analyzer.records, 7)
	assert.True(t, got.AnomalyDetected)
}

func TestAnalyzeSkipsLeaveDays(t *testing.T) {
	logs := historyLogs(6)
	logs = append(logs, worklog.WorkLog{
		EmployeeID:          "e1",
		Status:              worklog.StatusSick,
		LeaveApprovalStatus: worklog.ApprovalApproved,
	})

	analyzer := &fakeAnalyzer{}
	svc := NewAnomalyService(&fakeWorkLogRepo{logs: logs}, analyzer)

	_, err := svc.Analyze(context.Background(), "e1")
	require.NoError(t, err)
	assert.Len(t, analyzer.records, 6)
}
