package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Timeline is the planning horizon selected for a strategy
type Timeline string

const (
	TimelineOneMonth    Timeline = "1 Month"
	TimelineThreeMonths Timeline = "3 Months"
	TimelineSixMonths   Timeline = "6 Months"
	TimelineOneYear     Timeline = "1 Year"
	TimelineMultiYear   Timeline = "3+ Years"
)

// Timelines lists the selectable horizons in display order.
var Timelines = []Timeline{
	TimelineOneMonth,
	TimelineThreeMonths,
	TimelineSixMonths,
	TimelineOneYear,
	TimelineMultiYear,
}

// Valid reports whether t is one of the selectable horizons.
func (t Timeline) Valid() bool {
	for _, candidate := range Timelines {
		if t == candidate {
			return true
		}
	}
	return false
}

// MarketScenario names the market condition a strategy is stress-tested against
type MarketScenario string

const (
	ScenarioOptimistic  MarketScenario = "Optimistic"
	ScenarioNeutral     MarketScenario = "Neutral"
	ScenarioPessimistic MarketScenario = "Pessimistic"
)

// MarketScenarios lists the selectable scenarios in display order.
var MarketScenarios = []MarketScenario{ScenarioOptimistic, ScenarioNeutral, ScenarioPessimistic}

var scenarioImpact = map[MarketScenario]decimal.Decimal{
	ScenarioOptimistic:  decimal.NewFromFloat(1.2),
	ScenarioNeutral:     decimal.NewFromInt(1),
	ScenarioPessimistic: decimal.NewFromFloat(0.7),
}

// ParseMarketScenario resolves a scenario name case-insensitively.
func ParseMarketScenario(name string) (MarketScenario, error) {
	n := strings.TrimSpace(name)
	for _, s := range MarketScenarios {
		if strings.EqualFold(string(s), n) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown market scenario %q", name)
}

// ImpactFactor returns the budget multiplier applied under the scenario.
func (s MarketScenario) ImpactFactor() (decimal.Decimal, bool) {
	f, ok := scenarioImpact[s]
	return f, ok
}

// CompetitionLevel describes how crowded the target market is
type CompetitionLevel string

const (
	CompetitionLow    CompetitionLevel = "low"
	CompetitionMedium CompetitionLevel = "medium"
	CompetitionHigh   CompetitionLevel = "high"
)

var competitionMultiplier = map[CompetitionLevel]float64{
	CompetitionLow:    1.2,
	CompetitionMedium: 1.0,
	CompetitionHigh:   0.8,
}

// Multiplier returns the score multiplier for the competition level.
func (c CompetitionLevel) Multiplier() (float64, bool) {
	m, ok := competitionMultiplier[CompetitionLevel(strings.ToLower(string(c)))]
	return m, ok
}

// StrategyPlan holds the core elements of a strategy
type StrategyPlan struct {
	Goal      string          `yaml:"goal" json:"goal"`
	Timeline  Timeline        `yaml:"timeline" json:"timeline"`
	Budget    decimal.Decimal `yaml:"budget" json:"budget"`
	Resources string          `yaml:"resources" json:"resources"`
}

// RiskSliders are the raw 0-100 risk ratings entered for a strategy
type RiskSliders struct {
	MarketRisk    int `yaml:"market_risk" json:"market_risk"`
	FinancialRisk int `yaml:"financial_risk" json:"financial_risk"`
	ExecutionRisk int `yaml:"execution_risk" json:"execution_risk"`
}

// RiskAssessment is the evaluated risk profile, including the overall level
type RiskAssessment struct {
	RiskSliders `yaml:",inline"`
	TotalRisk   float64 `yaml:"total_risk" json:"total_risk"`
}

// ScenarioOutcome captures the effect of a market scenario on the budget
type ScenarioOutcome struct {
	Scenario       MarketScenario  `json:"scenario"`
	ImpactFactor   decimal.Decimal `json:"impact_factor"`
	AdjustedBudget decimal.Decimal `json:"adjusted_budget"`
}

// MarketOutlook feeds the budget score
type MarketOutlook struct {
	MarketSize  float64          `yaml:"market_size" json:"market_size"`
	GrowthRate  float64          `yaml:"growth_rate" json:"growth_rate"`
	Competition CompetitionLevel `yaml:"competition" json:"competition"`
}
