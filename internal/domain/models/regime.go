package models

// RegimeSnapshot is the current macro-regime call served to the dashboard.
// Built fresh on every request, never persisted.
type RegimeSnapshot struct {
	Timestamp        string             `json:"timestamp"`
	Regime           string             `json:"regime"`
	Probabilities    map[string]float64 `json:"probabilities"`
	Conviction       int                `json:"conviction"`
	Weights          map[string]float64 `json:"weights"`
	BenchmarkWeights map[string]float64 `json:"benchmark_weights"`
}

// BacktestPoint is one monthly observation of the synthetic return indices:
// tactical (taa), strategic (saa) and the 60/40 benchmark.
type BacktestPoint struct {
	Date       string  `json:"date"`
	TAA        float64 `json:"taa"`
	SAA        float64 `json:"saa"`
	SixtyForty float64 `json:"sixty_forty"`
}

// BacktestResponse pairs the equity curve with the per-point allocation
// weights. Both slices always have the same length.
type BacktestResponse struct {
	EquityCurve     []BacktestPoint      `json:"equity_curve"`
	WeightsOverTime []map[string]float64 `json:"weights_over_time"`
}

// StressTestResult carries the adjusted call for a submitted scenario.
// ScenarioID is null when the audit write failed or no store is configured.
type StressTestResult struct {
	ScenarioID *string            `json:"scenario_id"`
	Conviction int                `json:"conviction"`
	Weights    map[string]float64 `json:"weights"`
}

// DiagnosticReport is the /test response. Status strings mirror the
// dashboard's expectations; env var values are never echoed, only presence.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
