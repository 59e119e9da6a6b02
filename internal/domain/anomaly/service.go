package anomaly

import "context"

// MinRecords is the minimum history length an analysis requires.
const MinRecords = 5

// AnomalyService runs advisory anomaly analysis over an employee's
// attendance history.
type AnomalyService interface {
	// Analyze fetches the employee's recent records and asks the model
	// for unusual patterns; with fewer than MinRecords records it returns
	// a negative result without calling the model
	Analyze(ctx context.Context, employeeID string) (Result, error)
}

// Analyzer is the external-model boundary. Implementations call a
// generative API; failures surface as labeled errors, never retried here.
type Analyzer interface {
	DetectAnomaly(ctx context.Context, employeeID string, records []Record) (Result, error)
}
