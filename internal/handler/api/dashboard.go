package api

import (
	"net/http"
	"os"

	"RegimeEye/internal/domain/models"
	domrepo "RegimeEye/internal/domain/repository"
	"RegimeEye/internal/usecase"
	xhttp "RegimeEye/pkg/http"
	xlogger "RegimeEye/pkg/logger"

	"github.com/labstack/echo/v4"
)

// DashboardHandler implements the Echo-based HTTP surface of the regime
// dashboard. Success responses are bare payloads per the frontend contract.
type DashboardHandler struct {
	logger    *xlogger.Logger
	regime    *usecase.RegimeService
	backtest  *usecase.BacktestService
	scenarios *usecase.ScenarioService
	store     domrepo.DocumentStore // nil when no database is configured
}

func NewDashboardHandler(
	logger *xlogger.Logger,
	regime *usecase.RegimeService,
	backtest *usecase.BacktestService,
	scenarios *usecase.ScenarioService,
	store domrepo.DocumentStore,
) *DashboardHandler {
	return &DashboardHandler{
		logger:    logger,
		regime:    regime,
		backtest:  backtest,
		scenarios: scenarios,
		store:     store,
	}
}

func (h *DashboardHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/test", h.Diagnostics)

	g := e.Group("/api")
	g.GET("/regime-now", h.RegimeNow)
	g.GET("/backtest", h.Backtest)
	g.POST("/stress-test", h.StressTest)
}

// Root is the liveness probe for the dashboard.
func (h *DashboardHandler) Root(c echo.Context) error {
	return xhttp.JSONResponse(c, http.StatusOK, map[string]string{
		"message": "RegimeEye API ready",
	})
}

// RegimeNow serves the current regime snapshot.
func (h *DashboardHandler) RegimeNow(c echo.Context) error {
	return xhttp.JSONResponse(c, http.StatusOK, h.regime.Snapshot())
}

// Backtest serves the synthetic equity curve.
func (h *DashboardHandler) Backtest(c echo.Context) error {
	req := &models.BacktestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.backtest.EquityCurve(c.Request().Context(), req)
	return xhttp.JSONResponse(c, http.StatusOK, res)
}

// StressTest stores a scenario and returns the adjusted call.
func (h *DashboardHandler) StressTest(c echo.Context) error {
	req := &models.StressTestRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.scenarios.StressTest(c.Request().Context(), req)
	return xhttp.JSONResponse(c, http.StatusOK, res)
}

// Diagnostics reports backend liveness and best-effort store reachability.
// Never fails: probe errors are rendered as truncated status text.
func (h *DashboardHandler) Diagnostics(c echo.Context) error {
	report := models.DiagnosticReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if h.store != nil {
		report.ConnectionStatus = "Connected"
		names, err := h.store.ListCollections(c.Request().Context(), 10)
		if err != nil {
			report.Database = "⚠️  Connected but Error: " + truncate(err.Error(), 50)
			if h.logger != nil {
				h.logger.Warn("store reachability probe failed", xlogger.Error(err))
			}
		} else {
			report.Database = "✅ Connected & Working"
			if names != nil {
				report.Collections = names
			}
		}
	}

	// Presence only; values are never echoed.
	report.DatabaseURL = envStatus("DATABASE_URL")
	report.DatabaseName = envStatus("DATABASE_NAME")

	return xhttp.JSONResponse(c, http.StatusOK, report)
}

func envStatus(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
