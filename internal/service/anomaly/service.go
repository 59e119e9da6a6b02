package anomaly

import (
	"context"
	"fmt"
	"time"

	"github.com/geoattend/geoattend-backend-go/internal/domain/anomaly"
	"github.com/geoattend/geoattend-backend-go/internal/domain/worklog"
)

// historyLimit bounds how much history is sent to the model.
const historyLimit = 30

type AnomalyServiceImpl struct {
	worklog.WorkLogRepository
	analyzer anomaly.Analyzer
}

func NewAnomalyService(workLogRepository worklog.WorkLogRepository, analyzer anomaly.Analyzer) anomaly.AnomalyService {
	return &AnomalyServiceImpl{
		WorkLogRepository: workLogRepository,
		analyzer:          analyzer,
	}
}

// Analyze implements anomaly.AnomalyService.
func (s *AnomalyServiceImpl) Analyze(ctx context.Context, employeeID string) (anomaly.Result, error) {
	logs, err := s.WorkLogRepository.ListByEmployee(ctx, employeeID, historyLimit)
	if err != nil {
		return anomaly.Result{}, fmt.Errorf("failed to list work logs: %w", err)
	}

	records := toRecords(logs)
	if len(records) < anomaly.MinRecords {
		return anomaly.Result{
			AnomalyDetected:    false,
			AnomalyDescription: "Not enough attendance history to analyze.",
		}, nil
	}

	return s.analyzer.DetectAnomaly(ctx, employeeID, records)
}

// toRecords keeps only logs with an actual check-in; leave days carry no
// timing signal.
func toRecords(logs []worklog.WorkLog) []anomaly.Record {
	records := make([]anomaly.Record, 0, len(logs))
	for _, l := range logs {
		if l.CheckInTime == nil {
			continue
		}
		records = append(records, anomaly.Record{
			Timestamp: l.CheckInTime.UTC().Format(time.RFC3339),
			Status:    l.Status,
		})
	}
	return records
}
