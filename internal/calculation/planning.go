package calculation

import (
	"fmt"
	"math"

	"github.com/rpgo/strategy-simulator/internal/domain"
	money "github.com/rpgo/strategy-simulator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AverageRisk returns the arithmetic mean of the three risk ratings.
func AverageRisk(s domain.RiskSliders) float64 {
	return float64(s.MarketRisk+s.FinancialRisk+s.ExecutionRisk) / 3
}

// AssessRisks evaluates the overall risk level for the given ratings.
func AssessRisks(s domain.RiskSliders) domain.RiskAssessment {
	return domain.RiskAssessment{RiskSliders: s, TotalRisk: AverageRisk(s)}
}

// ApplyScenario scales the budget by the scenario's impact factor.
func ApplyScenario(budget decimal.Decimal, scenario domain.MarketScenario) (domain.ScenarioOutcome, error) {
	impact, ok := scenario.ImpactFactor()
	if !ok {
		return domain.ScenarioOutcome{}, fmt.Errorf("%w: unknown market scenario %q", ErrInvalidArgument, scenario)
	}
	adjusted := money.NewMoneyFromDecimal(budget).Scale(impact).Round()
	return domain.ScenarioOutcome{
		Scenario:       scenario,
		ImpactFactor:   impact,
		AdjustedBudget: adjusted.Decimal,
	}, nil
}

// BudgetScore rates a budget against the market outlook:
// market size x growth rate x competition multiplier x log1p(budget).
func BudgetScore(outlook domain.MarketOutlook, budget decimal.Decimal) (float64, error) {
	multiplier, ok := outlook.Competition.Multiplier()
	if !ok {
		return 0, fmt.Errorf("%w: unknown competition level %q", ErrInvalidArgument, outlook.Competition)
	}
	return outlook.MarketSize * outlook.GrowthRate * multiplier * math.Log1p(budget.InexactFloat64()), nil
}
