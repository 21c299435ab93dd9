package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrIncompleteContext is returned when a stage needs output from a stage that has not run.
var ErrIncompleteContext = errors.New("plan context incomplete")

// PlanInput is everything a user supplies for one planning session
type PlanInput struct {
	Strategy   StrategyPlan       `yaml:"strategy" json:"strategy"`
	Risks      RiskSliders        `yaml:"risks" json:"risks"`
	Scenario   MarketScenario     `yaml:"scenario" json:"scenario"`
	Market     MarketOutlook      `yaml:"market" json:"market"`
	Simulation SimulationSettings `yaml:"simulation" json:"simulation"`
}

// Stage identifies one step of the planning pipeline
type Stage string

const (
	StageStrategy   Stage = "strategy"
	StageRisks      Stage = "risks"
	StageScenario   Stage = "scenario"
	StageSimulation Stage = "simulation"
)

// PlanContext carries stage outputs between pipeline steps. The zero value is an
// empty context; every With method returns a new context and leaves the receiver untouched.
type PlanContext struct {
	strategy   *StrategyPlan
	risks      *RiskAssessment
	scenario   *ScenarioOutcome
	simulation *SimulationResult
}

func (pc PlanContext) WithStrategy(s StrategyPlan) PlanContext {
	pc.strategy = &s
	return pc
}

func (pc PlanContext) WithRisks(r RiskAssessment) PlanContext {
	pc.risks = &r
	return pc
}

func (pc PlanContext) WithScenario(s ScenarioOutcome) PlanContext {
	pc.scenario = &s
	return pc
}

func (pc PlanContext) WithSimulation(r SimulationResult) PlanContext {
	r = detachResult(r)
	pc.simulation = &r
	return pc
}

// detachResult gives r its own copies of every slice it holds.
func detachResult(r SimulationResult) SimulationResult {
	r.Samples = append(PerformanceDistribution(nil), r.Samples...)
	r.Histogram.Edges = append([]float64(nil), r.Histogram.Edges...)
	r.Histogram.Counts = append([]int(nil), r.Histogram.Counts...)
	return r
}

func (pc PlanContext) Strategy() (StrategyPlan, bool) {
	if pc.strategy == nil {
		return StrategyPlan{}, false
	}
	return *pc.strategy, true
}

func (pc PlanContext) Risks() (RiskAssessment, bool) {
	if pc.risks == nil {
		return RiskAssessment{}, false
	}
	return *pc.risks, true
}

func (pc PlanContext) Scenario() (ScenarioOutcome, bool) {
	if pc.scenario == nil {
		return ScenarioOutcome{}, false
	}
	return *pc.scenario, true
}

// Simulation returns a deep copy of the stored result; changes to its samples or
// histogram never reach the context.
func (pc PlanContext) Simulation() (SimulationResult, bool) {
	if pc.simulation == nil {
		return SimulationResult{}, false
	}
	return detachResult(*pc.simulation), true
}

// Missing lists which of the given stages have no output yet.
func (pc PlanContext) Missing(stages ...Stage) []Stage {
	var missing []Stage
	for _, s := range stages {
		var present bool
		switch s {
		case StageStrategy:
			present = pc.strategy != nil
		case StageRisks:
			present = pc.risks != nil
		case StageScenario:
			present = pc.scenario != nil
		case StageSimulation:
			present = pc.simulation != nil
		}
		if !present {
			missing = append(missing, s)
		}
	}
	return missing
}

// Require returns ErrIncompleteContext naming the absent stages, or nil.
func (pc PlanContext) Require(stages ...Stage) error {
	missing := pc.Missing(stages...)
	if len(missing) == 0 {
		return nil
	}
	names := make([]string, len(missing))
	for i, s := range missing {
		names[i] = string(s)
	}
	return fmt.Errorf("%w: missing %s", ErrIncompleteContext, strings.Join(names, ", "))
}

// PlanReport is the final summary of a planning session
type PlanReport struct {
	RunID       uuid.UUID         `json:"run_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Strategy    StrategyPlan      `json:"strategy"`
	Risks       RiskAssessment    `json:"risks"`
	Scenario    ScenarioOutcome   `json:"scenario"`
	Market      MarketOutlook     `json:"market"`
	BudgetScore float64           `json:"budget_score"`
	Simulation  *SimulationResult `json:"simulation,omitempty"`
}
