package calculation

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/rpgo/strategy-simulator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingLogger captures formatted log lines per level.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (r *recordingLogger) add(level, format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, level+": "+fmt.Sprintf(format, args...))
}

func (r *recordingLogger) Debugf(format string, args ...any) { r.add("debug", format, args...) }
func (r *recordingLogger) Infof(format string, args ...any)  { r.add("info", format, args...) }
func (r *recordingLogger) Warnf(format string, args ...any)  { r.add("warn", format, args...) }
func (r *recordingLogger) Errorf(format string, args ...any) { r.add("error", format, args...) }

func testPlanInput() *domain.PlanInput {
	return &domain.PlanInput{
		Strategy: domain.StrategyPlan{
			Goal:      "Expand reach",
			Timeline:  domain.TimelineOneYear,
			Budget:    decimal.NewFromInt(1000),
			Resources: "Team, tools, marketing",
		},
		Risks:    domain.RiskSliders{MarketRisk: 30, FinancialRisk: 40, ExecutionRisk: 20},
		Scenario: domain.ScenarioPessimistic,
		Market:   domain.MarketOutlook{MarketSize: 1.5, GrowthRate: 0.1, Competition: domain.CompetitionMedium},
		Simulation: domain.SimulationSettings{
			SimulationParameters: domain.SimulationParameters{StrategyFactor: 1.0, MarketVolatility: 0.3, Iterations: 500},
			Seed:                 2025,
			HistogramBins:        10,
		},
	}
}

func TestPlanningEngine_Run(t *testing.T) {
	fixed := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	SetNowFunc(func() time.Time { return fixed })
	defer SetNowFunc(time.Now)

	engine := NewPlanningEngine()
	report, err := engine.Run(context.Background(), testPlanInput())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, fixed, report.GeneratedAt)
	assert.Equal(t, "Expand reach", report.Strategy.Goal)
	assert.InDelta(t, 30.0, report.Risks.TotalRisk, 1e-12)
	assert.Equal(t, domain.ScenarioPessimistic, report.Scenario.Scenario)
	assert.Equal(t, "700.00", report.Scenario.AdjustedBudget.StringFixed(2))
	assert.Greater(t, report.BudgetScore, 0.0)

	require.NotNil(t, report.Simulation)
	assert.Equal(t, report.RunID, report.Simulation.RunID)
	assert.Equal(t, int64(2025), report.Simulation.Seed)
	assert.Len(t, report.Simulation.Samples, 500)
	assert.Equal(t, 500, report.Simulation.Statistics.Count)
	assert.Len(t, report.Simulation.Histogram.Counts, 10)
}

func TestPlanningEngine_RunIsReproducibleWithSeed(t *testing.T) {
	engine := NewPlanningEngine()
	a, err := engine.Run(context.Background(), testPlanInput())
	require.NoError(t, err)
	b, err := engine.Run(context.Background(), testPlanInput())
	require.NoError(t, err)

	assert.Equal(t, a.Simulation.Samples, b.Simulation.Samples)
	assert.Equal(t, a.Simulation.Statistics, b.Simulation.Statistics)
	assert.NotEqual(t, a.RunID, b.RunID)
}

func TestPlanningEngine_RunErrors(t *testing.T) {
	engine := NewPlanningEngine()

	_, err := engine.Run(context.Background(), nil)
	assert.True(t, errors.Is(err, ErrInvalidArgument))

	input := testPlanInput()
	input.Simulation.Iterations = -5
	_, err = engine.Run(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, err.Error(), "simulation stage failed")

	input = testPlanInput()
	input.Scenario = "Unknown"
	_, err = engine.Run(context.Background(), input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scenario stage failed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = engine.Run(ctx, testPlanInput())
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestPlanningEngine_ScenarioNeedsStrategy(t *testing.T) {
	engine := NewPlanningEngine()
	var pc domain.PlanContext

	_, err := engine.ApplyScenario(pc, domain.ScenarioNeutral)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIncompleteContext))
	assert.Contains(t, err.Error(), "strategy")
}

func TestPlanningEngine_SummarizeNeedsAllSections(t *testing.T) {
	logger := &recordingLogger{}
	engine := NewPlanningEngine()
	engine.SetLogger(logger)

	var pc domain.PlanContext
	pc = engine.BuildStrategy(pc, testPlanInput().Strategy)

	_, err := engine.Summarize(pc, testPlanInput().Market)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrIncompleteContext))
	assert.Contains(t, err.Error(), "risks, scenario")
	require.NotEmpty(t, logger.lines)
	assert.Contains(t, logger.lines[len(logger.lines)-1], "warn: summary unavailable")
}

func TestPlanningEngine_SummarizeWithoutSimulation(t *testing.T) {
	engine := NewPlanningEngine()
	input := testPlanInput()

	var pc domain.PlanContext
	pc = engine.BuildStrategy(pc, input.Strategy)
	pc = engine.AssessRisks(pc, input.Risks)
	pc, err := engine.ApplyScenario(pc, domain.ScenarioOptimistic)
	require.NoError(t, err)

	report, err := engine.Summarize(pc, input.Market)
	require.NoError(t, err)
	assert.Nil(t, report.Simulation)
	assert.Equal(t, "1200.00", report.Scenario.AdjustedBudget.StringFixed(2))
}

func TestPlanningEngine_RunSimulationDefaultsBins(t *testing.T) {
	engine := NewPlanningEngine()
	result, err := engine.RunSimulation(domain.SimulationSettings{
		SimulationParameters: domain.SimulationParameters{StrategyFactor: 0.8, MarketVolatility: 0.5, Iterations: 300},
		Seed:                 11,
	})
	require.NoError(t, err)
	assert.Len(t, result.Histogram.Counts, DefaultHistogramBins)
	assert.Equal(t, int64(11), result.Seed)
}

func TestPlanningEngine_RunSimulationInfiniteFactor(t *testing.T) {
	engine := NewPlanningEngine()
	result, err := engine.RunSimulation(domain.SimulationSettings{
		SimulationParameters: domain.SimulationParameters{StrategyFactor: math.Inf(1), MarketVolatility: 0.2, Iterations: 10},
		Seed:                 3,
	})
	require.NoError(t, err)
	assert.True(t, math.IsInf(result.Statistics.Max, 1))
	assert.Equal(t, []int{10}, result.Histogram.Counts)

	logger := &recordingLogger{}
	engine.SetLogger(logger)
	_, err = engine.RunSimulation(domain.SimulationSettings{
		SimulationParameters: domain.SimulationParameters{StrategyFactor: math.Inf(1), MarketVolatility: 1.5, Iterations: 200},
		Seed:                 3,
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.Contains(t, logger.lines[len(logger.lines)-1], "error: histogram failed")
}

func TestPlanningEngine_SetLoggerNil(t *testing.T) {
	engine := NewPlanningEngine()
	engine.SetLogger(nil)
	assert.IsType(t, NopLogger{}, engine.Logger)
}
