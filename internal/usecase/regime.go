package usecase

import (
	"RegimeEye/internal/domain/models"
	xutil "RegimeEye/pkg/util"
)

// RegimeService builds the current regime call. Mocked signal for the MVP
// visual; replace with model outputs later.
type RegimeService struct{}

func NewRegimeService() *RegimeService {
	return &RegimeService{}
}

// Snapshot returns the current regime call, dated at the wall clock.
func (s *RegimeService) Snapshot() *models.RegimeSnapshot {
	return &models.RegimeSnapshot{
		Timestamp: xutil.Today(),
		Regime:    "Slowdown",
		Probabilities: map[string]float64{
			"Expansion":   0.22,
			"Slowdown":    0.53,
			"Contraction": 0.18,
			"Recovery":    0.07,
		},
		Conviction: 84,
		Weights: map[string]float64{
			"SPY": 0.35, "IEF": 0.35, "GLD": 0.15, "DBC": 0.10, "SHY": 0.05,
		},
		BenchmarkWeights: map[string]float64{
			"SPY": 0.60, "IEF": 0.40,
		},
	}
}
