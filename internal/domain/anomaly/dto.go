package anomaly

// Record is one (timestamp, status) pair from an employee's history.
type Record struct {
	Timestamp string `json:"timestamp"`
	Status    string `json:"status"`
}

// Result is the advisory outcome of an analysis. It never alters the
// attendance state machine.
type Result struct {
	AnomalyDetected    bool   `json:"anomaly_detected"`
	AnomalyDescription string `json:"anomaly_description"`
}
