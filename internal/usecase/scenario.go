package usecase

import (
	"context"
	"time"

	"RegimeEye/internal/domain/models"
	domrepo "RegimeEye/internal/domain/repository"
	applogger "RegimeEye/pkg/logger"
)

const scenarioCollection = "scenario"

// ScenarioService persists stress-test scenarios for audit and computes the
// adjusted call. The audit write is best-effort: a store failure is logged
// and the caller gets a null scenario id, never an error.
type ScenarioService struct {
	store        domrepo.DocumentStore
	metrics      domrepo.Metrics
	logger       *applogger.Logger
	writeTimeout time.Duration
}

func NewScenarioService(store domrepo.DocumentStore, m domrepo.Metrics, l *applogger.Logger, writeTimeout time.Duration) *ScenarioService {
	if writeTimeout <= 0 {
		writeTimeout = 3 * time.Second
	}
	return &ScenarioService{store: store, metrics: m, logger: l, writeTimeout: writeTimeout}
}

// StressTest stores the scenario and returns the adjusted conviction and
// weights.
func (s *ScenarioService) StressTest(ctx context.Context, req *models.StressTestRequest) *models.StressTestResult {
	var scenarioID *string
	if s.store != nil {
		wctx, cancel := context.WithTimeout(ctx, s.writeTimeout)
		id, err := s.store.Create(wctx, scenarioCollection, models.Scenario{
			Name:        req.Name,
			Assumptions: req.Assumptions,
		})
		cancel()
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("scenario audit write failed", applogger.Error(err))
			}
			if s.metrics != nil {
				s.metrics.RecordError("scenario_store")
			}
		} else {
			scenarioID = &id
			if s.metrics != nil {
				s.metrics.RecordScenarioStored()
			}
		}
	}

	var shift float64
	for _, v := range req.Assumptions {
		shift += v
	}

	// Illustrative reactivity: a negative aggregate shift nudges conviction
	// up, anything else down. Weights do not vary with the assumptions.
	adj := -5
	if shift < 0 {
		adj = 5
	}
	conviction := 70 + adj
	if conviction < 0 {
		conviction = 0
	}
	if conviction > 100 {
		conviction = 100
	}

	return &models.StressTestResult{
		ScenarioID: scenarioID,
		Conviction: conviction,
		Weights: map[string]float64{
			"SPY": 0.30, "IEF": 0.45, "GLD": 0.15, "DBC": 0.07, "SHY": 0.03,
		},
	}
}
