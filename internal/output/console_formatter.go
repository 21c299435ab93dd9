package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/strategy-simulator/internal/domain"
)

// histogramWidth is the length of the longest histogram bar.
const histogramWidth = 40

// ConsoleFormatter renders a plain-text summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "STRATEGY SUMMARY")
	fmt.Fprintln(&buf, "================================")
	fmt.Fprintf(&buf, "Run: %s\n", report.RunID)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Strategy")
	fmt.Fprintf(&buf, "  Goal:      %s\n", report.Strategy.Goal)
	fmt.Fprintf(&buf, "  Timeline:  %s\n", report.Strategy.Timeline)
	fmt.Fprintf(&buf, "  Budget:    %s\n", FormatCurrency(report.Strategy.Budget))
	fmt.Fprintf(&buf, "  Resources: %s\n", report.Strategy.Resources)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Risks")
	fmt.Fprintf(&buf, "  Market Risk:    %d\n", report.Risks.MarketRisk)
	fmt.Fprintf(&buf, "  Financial Risk: %d\n", report.Risks.FinancialRisk)
	fmt.Fprintf(&buf, "  Execution Risk: %d\n", report.Risks.ExecutionRisk)
	fmt.Fprintf(&buf, "  Overall Risk Level: %s\n", FormatPercentage(report.Risks.TotalRisk))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "Scenario")
	fmt.Fprintf(&buf, "  Scenario:        %s\n", report.Scenario.Scenario)
	fmt.Fprintf(&buf, "  Impact Factor:   %s\n", report.Scenario.ImpactFactor.StringFixed(1))
	fmt.Fprintf(&buf, "  Adjusted Budget: %s\n", FormatCurrency(report.Scenario.AdjustedBudget))
	fmt.Fprintf(&buf, "  Budget Score:    %s\n", FormatNumber(report.BudgetScore))

	if report.Simulation != nil {
		fmt.Fprintln(&buf)
		writeSimulation(&buf, report.Simulation)
	}
	return buf.Bytes(), nil
}

func (c ConsoleFormatter) FormatSimulation(result *domain.SimulationResult) ([]byte, error) {
	var buf bytes.Buffer
	writeSimulation(&buf, result)
	return buf.Bytes(), nil
}

func writeSimulation(buf *bytes.Buffer, result *domain.SimulationResult) {
	p := result.Parameters
	fmt.Fprintln(buf, "MONTE CARLO SIMULATION")
	fmt.Fprintln(buf, "================================")
	fmt.Fprintf(buf, "Strategy Effectiveness: %s  Market Volatility: %s  Iterations: %d  Seed: %d\n",
		FormatNumber(p.StrategyFactor), FormatNumber(p.MarketVolatility), p.Iterations, result.Seed)
	fmt.Fprintln(buf)

	s := result.Statistics
	fmt.Fprintln(buf, "Performance")
	rows := []struct {
		label string
		value string
	}{
		{"count", fmt.Sprintf("%d", s.Count)},
		{"mean", FormatNumber(s.Mean)},
		{"std", FormatNumber(s.StdDev)},
		{"min", FormatNumber(s.Min)},
		{"25%", FormatNumber(s.P25)},
		{"50%", FormatNumber(s.P50)},
		{"75%", FormatNumber(s.P75)},
		{"max", FormatNumber(s.Max)},
	}
	for _, r := range rows {
		fmt.Fprintf(buf, "  %-5s %12s\n", r.label, r.value)
	}

	if len(result.Histogram.Counts) == 0 {
		return
	}
	fmt.Fprintln(buf)
	fmt.Fprintln(buf, "Distribution")
	writeHistogram(buf, result.Histogram)
}

func writeHistogram(buf *bytes.Buffer, h domain.Histogram) {
	peak := 0
	for _, c := range h.Counts {
		if c > peak {
			peak = c
		}
	}
	for i, c := range h.Counts {
		bar := 0
		if peak > 0 {
			bar = c * histogramWidth / peak
		}
		fmt.Fprintf(buf, "  [%8s, %8s] %6d %s\n", FormatNumber(h.Edges[i]), FormatNumber(h.Edges[i+1]), c, strings.Repeat("#", bar))
	}
}
