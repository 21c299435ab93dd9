package calculation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rpgo/strategy-simulator/internal/domain"
)

// PlanningEngine orchestrates the planning stages:
// strategy, risks, scenario, simulation and summary.
type PlanningEngine struct {
	Logger Logger
}

// NewPlanningEngine creates a new planning engine
func NewPlanningEngine() *PlanningEngine {
	return &PlanningEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the planning engine. If nil is provided, a no-op logger is used.
func (pe *PlanningEngine) SetLogger(l Logger) {
	if l == nil {
		pe.Logger = NopLogger{}
		return
	}
	pe.Logger = l
}

// Run executes every stage for the given input and returns the summary report.
func (pe *PlanningEngine) Run(ctx context.Context, input *domain.PlanInput) (*domain.PlanReport, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: plan input is nil", ErrInvalidArgument)
	}

	var pc domain.PlanContext
	pc = pe.BuildStrategy(pc, input.Strategy)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pc = pe.AssessRisks(pc, input.Risks)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pc, err := pe.ApplyScenario(pc, input.Scenario)
	if err != nil {
		return nil, fmt.Errorf("scenario stage failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pc, err = pe.Simulate(pc, input.Simulation)
	if err != nil {
		return nil, fmt.Errorf("simulation stage failed: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return pe.Summarize(pc, input.Market)
}

// BuildStrategy records the strategy definition.
func (pe *PlanningEngine) BuildStrategy(pc domain.PlanContext, plan domain.StrategyPlan) domain.PlanContext {
	pe.Logger.Debugf("strategy saved: goal=%q timeline=%s budget=%s", plan.Goal, plan.Timeline, plan.Budget.StringFixed(2))
	return pc.WithStrategy(plan)
}

// AssessRisks records the risk ratings and their overall level.
func (pe *PlanningEngine) AssessRisks(pc domain.PlanContext, sliders domain.RiskSliders) domain.PlanContext {
	assessment := AssessRisks(sliders)
	pe.Logger.Debugf("overall risk level %.1f%%", assessment.TotalRisk)
	return pc.WithRisks(assessment)
}

// ApplyScenario adjusts the saved strategy's budget for a market scenario.
// It needs the strategy stage to have run.
func (pe *PlanningEngine) ApplyScenario(pc domain.PlanContext, scenario domain.MarketScenario) (domain.PlanContext, error) {
	strategy, ok := pc.Strategy()
	if !ok {
		return pc, pc.Require(domain.StageStrategy)
	}
	outcome, err := ApplyScenario(strategy.Budget, scenario)
	if err != nil {
		return pc, err
	}
	pe.Logger.Debugf("scenario %s: impact=%s adjusted budget=%s", outcome.Scenario, outcome.ImpactFactor, outcome.AdjustedBudget.StringFixed(2))
	return pc.WithScenario(outcome), nil
}

// Simulate runs the Monte Carlo stage and stores its result in the context.
func (pe *PlanningEngine) Simulate(pc domain.PlanContext, settings domain.SimulationSettings) (domain.PlanContext, error) {
	result, err := pe.RunSimulation(settings)
	if err != nil {
		return pc, err
	}
	return pc.WithSimulation(*result), nil
}

// RunSimulation samples a distribution with a freshly seeded simulator and
// derives its statistics and histogram.
func (pe *PlanningEngine) RunSimulation(settings domain.SimulationSettings) (*domain.SimulationResult, error) {
	bins := settings.HistogramBins
	if bins == 0 {
		bins = DefaultHistogramBins
	}

	sim := NewMonteCarloSimulator(MonteCarloConfig{Seed: settings.Seed})
	samples, err := sim.RunSimulation(settings.SimulationParameters)
	if err != nil {
		pe.Logger.Errorf("simulation rejected: %v", err)
		return nil, err
	}

	hist, err := BuildHistogram(samples, bins)
	if err != nil {
		pe.Logger.Errorf("histogram failed: %v", err)
		return nil, err
	}

	result := &domain.SimulationResult{
		RunID:      uuid.New(),
		Parameters: settings.SimulationParameters,
		Seed:       sim.Seed,
		Samples:    samples,
		Statistics: Summarize(samples),
		Histogram:  hist,
	}
	pe.Logger.Infof("simulation %s: %d iterations, seed=%d, mean=%.2f", result.RunID, result.Statistics.Count, result.Seed, result.Statistics.Mean)
	return result, nil
}

// Summarize builds the final report. Strategy, risks and scenario must all be present;
// the simulation is optional.
func (pe *PlanningEngine) Summarize(pc domain.PlanContext, outlook domain.MarketOutlook) (*domain.PlanReport, error) {
	if err := pc.Require(domain.StageStrategy, domain.StageRisks, domain.StageScenario); err != nil {
		pe.Logger.Warnf("summary unavailable: %v", err)
		return nil, err
	}
	strategy, _ := pc.Strategy()
	risks, _ := pc.Risks()
	scenario, _ := pc.Scenario()

	score, err := BudgetScore(outlook, strategy.Budget)
	if err != nil {
		return nil, fmt.Errorf("budget score failed: %w", err)
	}

	report := &domain.PlanReport{
		RunID:       uuid.New(),
		GeneratedAt: nowFunc(),
		Strategy:    strategy,
		Risks:       risks,
		Scenario:    scenario,
		Market:      outlook,
		BudgetScore: score,
	}
	if sim, ok := pc.Simulation(); ok {
		report.RunID = sim.RunID
		report.Simulation = &sim
	}
	return report, nil
}
