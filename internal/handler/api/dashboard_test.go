package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"RegimeEye/internal/domain/models"
	domrepo "RegimeEye/internal/domain/repository"
	"RegimeEye/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore is a test double for the scenario audit store.
type stubStore struct {
	id          string
	createErr   error
	collections []string
	listErr     error
}

func (s *stubStore) Create(context.Context, string, interface{}) (string, error) {
	return s.id, s.createErr
}

func (s *stubStore) ListCollections(context.Context, int) ([]string, error) {
	return s.collections, s.listErr
}

func (s *stubStore) Health(context.Context) error {
	return nil
}

func newTestServer(store domrepo.DocumentStore) *echo.Echo {
	e := echo.New()
	h := NewDashboardHandler(
		nil,
		usecase.NewRegimeService(),
		usecase.NewBacktestService(nil, nil, 0),
		usecase.NewScenarioService(store, nil, nil, 0),
		store,
	)
	h.RegisterRoutes(e)
	return e
}

func doRequest(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRootReady(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, http.MethodGet, "/", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "RegimeEye API ready", body["message"])
}

func TestRegimeNow(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, http.MethodGet, "/api/regime-now", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var snap models.RegimeSnapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	assert.Equal(t, "Slowdown", snap.Regime)
	assert.Equal(t, 84, snap.Conviction)
	assert.Equal(t, time.Now().Format("2006-01-02"), snap.Timestamp)
	assert.Len(t, snap.Probabilities, 4)
	assert.Len(t, snap.Weights, 5)
	assert.Len(t, snap.BenchmarkWeights, 2)
}

func TestBacktest(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, http.MethodGet, "/api/backtest", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var res models.BacktestResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.EquityCurve, 240)
	require.Len(t, res.WeightsOverTime, 240)
	assert.Equal(t, "2005-01-01", res.EquityCurve[0].Date)
	assert.Equal(t, "2024-12-01", res.EquityCurve[239].Date)
	assert.Equal(t, 100.0, res.EquityCurve[0].TAA)
}

func TestBacktestIgnoresQueryInputs(t *testing.T) {
	e := newTestServer(nil)
	base := doRequest(e, http.MethodGet, "/api/backtest", "")
	other := doRequest(e, http.MethodGet, "/api/backtest?start=2010-01-01&end=2012-01-01&benchmark=all_weather", "")

	require.Equal(t, http.StatusOK, base.Code)
	require.Equal(t, http.StatusOK, other.Code)
	assert.Equal(t, base.Body.String(), other.Body.String())
}

func TestBacktestRejectsMalformedDate(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, http.MethodGet, "/api/backtest?start=yesterday", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

type stressTestBody struct {
	ScenarioID *string            `json:"scenario_id"`
	Conviction int                `json:"conviction"`
	Weights    map[string]float64 `json:"weights"`
}

func TestStressTestWithStore(t *testing.T) {
	e := newTestServer(&stubStore{id: "doc-1"})
	rec := doRequest(e, http.MethodPost, "/api/stress-test", `{"name":"10y to 6%","assumptions":{"us10y":-1.0}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res stressTestBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.ScenarioID)
	assert.Equal(t, "doc-1", *res.ScenarioID)
	assert.Equal(t, 75, res.Conviction)
	assert.Equal(t, map[string]float64{
		"SPY": 0.30, "IEF": 0.45, "GLD": 0.15, "DBC": 0.07, "SHY": 0.03,
	}, res.Weights)
}

func TestStressTestStoreUnreachable(t *testing.T) {
	e := newTestServer(&stubStore{createErr: errors.New("dial tcp: connection refused")})
	rec := doRequest(e, http.MethodPost, "/api/stress-test", `{"name":"crash","assumptions":{"a":1.0}}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var res stressTestBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Nil(t, res.ScenarioID)
	assert.Equal(t, 65, res.Conviction)
}

func TestStressTestRequiresName(t *testing.T) {
	e := newTestServer(nil)
	rec := doRequest(e, http.MethodPost, "/api/stress-test", `{"assumptions":{"a":1.0}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDiagnosticsWithoutStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")

	e := newTestServer(nil)
	rec := doRequest(e, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var report models.DiagnosticReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "✅ Running", report.Backend)
	assert.Equal(t, "❌ Not Available", report.Database)
	assert.Equal(t, "Not Connected", report.ConnectionStatus)
	assert.Equal(t, "❌ Not Set", report.DatabaseURL)
	assert.Equal(t, "❌ Not Set", report.DatabaseName)
	assert.Empty(t, report.Collections)
}

func TestDiagnosticsWithStore(t *testing.T) {
	t.Setenv("DATABASE_URL", "clickhouse://localhost:9000/regimeeye")
	t.Setenv("DATABASE_NAME", "regimeeye")

	e := newTestServer(&stubStore{collections: []string{"scenario"}})
	rec := doRequest(e, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var report models.DiagnosticReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "✅ Connected & Working", report.Database)
	assert.Equal(t, "Connected", report.ConnectionStatus)
	assert.Equal(t, []string{"scenario"}, report.Collections)
	assert.Equal(t, "✅ Set", report.DatabaseURL)
	assert.Equal(t, "✅ Set", report.DatabaseName)
}

func TestDiagnosticsProbeErrorTruncated(t *testing.T) {
	longErr := errors.New(strings.Repeat("x", 120))
	e := newTestServer(&stubStore{listErr: longErr})
	rec := doRequest(e, http.MethodGet, "/test", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var report models.DiagnosticReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, "⚠️  Connected but Error: "+strings.Repeat("x", 50), report.Database)
}
