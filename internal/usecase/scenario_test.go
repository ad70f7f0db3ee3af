package usecase

import (
	"context"
	"errors"
	"testing"

	"RegimeEye/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is a test double for the scenario audit store.
type fakeStore struct {
	id          string
	err         error
	collections []string
	listErr     error
	created     []interface{}
}

func (f *fakeStore) Create(_ context.Context, _ string, doc interface{}) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.created = append(f.created, doc)
	return f.id, nil
}

func (f *fakeStore) ListCollections(context.Context, int) ([]string, error) {
	return f.collections, f.listErr
}

func (f *fakeStore) Health(context.Context) error {
	return f.err
}

func TestStressTestConviction(t *testing.T) {
	svc := NewScenarioService(nil, nil, nil, 0)

	tests := []struct {
		name        string
		assumptions map[string]float64
		want        int
	}{
		{"negative shift raises", map[string]float64{"a": -1.0}, 75},
		{"positive shift lowers", map[string]float64{"a": 1.0}, 65},
		{"no assumptions lowers", nil, 65},
		{"mixed net negative", map[string]float64{"us10y": -2.0, "cpi": 0.5}, 75},
		{"zero shift lowers", map[string]float64{"a": 0.0}, 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := svc.StressTest(context.Background(), &models.StressTestRequest{
				Name:        "case",
				Assumptions: tt.assumptions,
			})
			assert.Equal(t, tt.want, res.Conviction)
		})
	}
}

func TestStressTestFixedWeights(t *testing.T) {
	svc := NewScenarioService(nil, nil, nil, 0)
	res := svc.StressTest(context.Background(), &models.StressTestRequest{
		Name:        "10y to 6%",
		Assumptions: map[string]float64{"us10y": 6.0},
	})

	assert.Equal(t, map[string]float64{
		"SPY": 0.30, "IEF": 0.45, "GLD": 0.15, "DBC": 0.07, "SHY": 0.03,
	}, res.Weights)
}

func TestStressTestPersistsScenario(t *testing.T) {
	store := &fakeStore{id: "a3f1"}
	m := newCountingMetrics()
	svc := NewScenarioService(store, m, nil, 0)

	res := svc.StressTest(context.Background(), &models.StressTestRequest{
		Name:        "10y to 6%",
		Assumptions: map[string]float64{"us10y": 6.0},
	})

	require.NotNil(t, res.ScenarioID)
	assert.Equal(t, "a3f1", *res.ScenarioID)
	assert.Equal(t, 1, m.stored)

	require.Len(t, store.created, 1)
	doc, ok := store.created[0].(models.Scenario)
	require.True(t, ok)
	assert.Equal(t, "10y to 6%", doc.Name)
	assert.Equal(t, map[string]float64{"us10y": 6.0}, doc.Assumptions)
}

func TestStressTestStoreFailureAbsorbed(t *testing.T) {
	store := &fakeStore{err: errors.New("connection refused")}
	m := newCountingMetrics()
	svc := NewScenarioService(store, m, nil, 0)

	res := svc.StressTest(context.Background(), &models.StressTestRequest{
		Name:        "crash",
		Assumptions: map[string]float64{"a": -1.0},
	})

	assert.Nil(t, res.ScenarioID)
	assert.Equal(t, 75, res.Conviction)
	assert.Equal(t, 1, m.errors["scenario_store"])
}

func TestStressTestWithoutStore(t *testing.T) {
	svc := NewScenarioService(nil, nil, nil, 0)
	res := svc.StressTest(context.Background(), &models.StressTestRequest{Name: "no store"})

	assert.Nil(t, res.ScenarioID)
	assert.Equal(t, 65, res.Conviction)
}
