package models

// Requests for the dashboard HTTP endpoints. Defined in domain for
// consistency and reuse.

// BacktestRequest is accepted for contract compatibility. The synthetic
// generator currently ignores all three fields; an empty End means "today".
type BacktestRequest struct {
	Start     string `query:"start" json:"start" default:"2005-01-01" validate:"omitempty,datetime=2006-01-02"`
	End       string `query:"end" json:"end" validate:"omitempty,datetime=2006-01-02"`
	Benchmark string `query:"benchmark" json:"benchmark" default:"60_40"`
}

// StressTestRequest is a user-submitted named set of assumption overrides.
type StressTestRequest struct {
	Name        string             `json:"name" validate:"required"`
	Assumptions map[string]float64 `json:"assumptions"`
}
