package models

// Persistence document shapes. Each maps to a store collection named after
// the lowercase struct name.

// Scenario is a stress-test scenario submitted by a user. Collection: "scenario".
type Scenario struct {
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Assumptions map[string]float64 `json:"assumptions"`
	CreatedBy   string             `json:"created_by,omitempty"`
}

// PortfolioHolding is a single position inside a shadow portfolio.
type PortfolioHolding struct {
	Symbol string  `json:"symbol" validate:"required"`
	Weight float64 `json:"weight" validate:"gte=0,lte=1"`
}

// Portfolio is a shadow portfolio uploaded by a user. Collection: "portfolio".
// Declared for the persistence contract; nothing reads or writes it yet.
type Portfolio struct {
	Name     string             `json:"name" validate:"required"`
	Owner    string             `json:"owner,omitempty"`
	Holdings []PortfolioHolding `json:"holdings"`
}

// BacktestRun records a backtest request for later reproduction.
// Collection: "backtestrun". Declared for the persistence contract; nothing
// reads or writes it yet.
type BacktestRun struct {
	Start     string `json:"start" validate:"required,datetime=2006-01-02"`
	End       string `json:"end" validate:"required,datetime=2006-01-02"`
	Benchmark string `json:"benchmark" default:"60_40"`
	Notes     string `json:"notes,omitempty"`
}
