package config

import (
	"fmt"
	"os"

	"github.com/rpgo/strategy-simulator/internal/domain"
	money "github.com/rpgo/strategy-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Form limits for the simulation inputs.
const (
	MinStrategyFactor = 0.5
	MaxStrategyFactor = 2.0
	MaxIterations     = 1_000_000
)

// InputParser handles parsing of plan input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a plan from a YAML or JSON file. Fields the file leaves
// out keep their form defaults.
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanInput, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a plan document.
func (ip *InputParser) Parse(data []byte) (*domain.PlanInput, error) {
	input := DefaultPlanInput()
	if err := yaml.Unmarshal(data, input); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if input.Scenario != "" {
		scenario, err := domain.ParseMarketScenario(string(input.Scenario))
		if err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
		input.Scenario = scenario
	}

	if err := ip.ValidateConfiguration(input); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return input, nil
}

// ValidateConfiguration validates a plan against the input form limits
func (ip *InputParser) ValidateConfiguration(input *domain.PlanInput) error {
	if err := ip.validateStrategy(&input.Strategy); err != nil {
		return fmt.Errorf("strategy validation failed: %w", err)
	}
	if err := ip.validateRisks(&input.Risks); err != nil {
		return fmt.Errorf("risk validation failed: %w", err)
	}
	if _, ok := input.Scenario.ImpactFactor(); !ok {
		return fmt.Errorf("scenario must be 'Optimistic', 'Neutral', or 'Pessimistic'")
	}
	if err := ip.validateMarket(&input.Market); err != nil {
		return fmt.Errorf("market validation failed: %w", err)
	}
	if err := ip.ValidateSimulation(&input.Simulation); err != nil {
		return fmt.Errorf("simulation validation failed: %w", err)
	}
	return nil
}

func (ip *InputParser) validateStrategy(plan *domain.StrategyPlan) error {
	if plan.Goal == "" {
		return fmt.Errorf("goal is required")
	}
	if !plan.Timeline.Valid() {
		return fmt.Errorf("timeline must be one of %q", domain.Timelines)
	}
	if money.NewMoneyFromDecimal(plan.Budget).IsNegative() {
		return fmt.Errorf("budget cannot be negative")
	}
	return nil
}

func (ip *InputParser) validateRisks(r *domain.RiskSliders) error {
	sliders := []struct {
		name  string
		value int
	}{
		{"market risk", r.MarketRisk},
		{"financial risk", r.FinancialRisk},
		{"execution risk", r.ExecutionRisk},
	}
	for _, s := range sliders {
		if s.value < 0 || s.value > 100 {
			return fmt.Errorf("%s must be between 0 and 100", s.name)
		}
	}
	return nil
}

func (ip *InputParser) validateMarket(m *domain.MarketOutlook) error {
	if m.MarketSize < 0 {
		return fmt.Errorf("market size cannot be negative")
	}
	if m.GrowthRate < -1 {
		return fmt.Errorf("growth rate cannot be less than -100%%")
	}
	if _, ok := m.Competition.Multiplier(); !ok {
		return fmt.Errorf("competition must be 'low', 'medium', or 'high'")
	}
	return nil
}

// ValidateSimulation checks simulation settings against the form limits.
func (ip *InputParser) ValidateSimulation(s *domain.SimulationSettings) error {
	if s.StrategyFactor < MinStrategyFactor || s.StrategyFactor > MaxStrategyFactor {
		return fmt.Errorf("strategy factor must be between %.1f and %.1f", MinStrategyFactor, MaxStrategyFactor)
	}
	if s.MarketVolatility < 0 || s.MarketVolatility > 1 {
		return fmt.Errorf("market volatility must be between 0 and 1")
	}
	if s.Iterations < 0 || s.Iterations > MaxIterations {
		return fmt.Errorf("iterations must be between 0 and %d", MaxIterations)
	}
	if s.HistogramBins < 0 {
		return fmt.Errorf("histogram bins cannot be negative")
	}
	return nil
}

// DefaultPlanInput returns the values the input form starts with.
func DefaultPlanInput() *domain.PlanInput {
	return &domain.PlanInput{
		Strategy: domain.StrategyPlan{
			Goal:      "Increase revenue / Improve efficiency / Expand reach",
			Timeline:  domain.TimelineOneMonth,
			Budget:    decimal.NewFromInt(1000),
			Resources: "Team, tools, marketing, etc.",
		},
		Risks: domain.RiskSliders{
			MarketRisk:    30,
			FinancialRisk: 40,
			ExecutionRisk: 20,
		},
		Scenario: domain.ScenarioOptimistic,
		Market: domain.MarketOutlook{
			MarketSize:  1.0,
			GrowthRate:  0.05,
			Competition: domain.CompetitionMedium,
		},
		Simulation: domain.SimulationSettings{
			SimulationParameters: domain.SimulationParameters{
				StrategyFactor:   1.0,
				MarketVolatility: 0.2,
				Iterations:       1000,
			},
		},
	}
}

// CreateExampleConfiguration creates an example plan for users to start from
func (ip *InputParser) CreateExampleConfiguration() *domain.PlanInput {
	return &domain.PlanInput{
		Strategy: domain.StrategyPlan{
			Goal:      "Launch regional delivery service",
			Timeline:  domain.TimelineOneYear,
			Budget:    decimal.NewFromInt(25000),
			Resources: "Two drivers, routing software, local ads",
		},
		Risks: domain.RiskSliders{
			MarketRisk:    45,
			FinancialRisk: 35,
			ExecutionRisk: 25,
		},
		Scenario: domain.ScenarioNeutral,
		Market: domain.MarketOutlook{
			MarketSize:  2.5,
			GrowthRate:  0.08,
			Competition: domain.CompetitionHigh,
		},
		Simulation: domain.SimulationSettings{
			SimulationParameters: domain.SimulationParameters{
				StrategyFactor:   1.2,
				MarketVolatility: 0.35,
				Iterations:       1000,
			},
			Seed:          42,
			HistogramBins: 20,
		},
	}
}

// MarshalConfiguration renders a plan as YAML.
func MarshalConfiguration(input *domain.PlanInput) ([]byte, error) {
	return yaml.Marshal(input)
}
