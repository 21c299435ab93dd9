package main

import (
	"fmt"

	"github.com/rpgo/strategy-simulator/internal/calculation"
	"github.com/rpgo/strategy-simulator/internal/config"
	"github.com/rpgo/strategy-simulator/internal/domain"
	"github.com/rpgo/strategy-simulator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSimulateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run a Monte Carlo simulation of strategy performance",
		Long: `Sample strategy performance under randomized effectiveness and market
volatility, then print descriptive statistics and a histogram.

Examples:
  stratsim simulate
  stratsim simulate --strategy-factor 1.5 --volatility 0.4 --iterations 5000
  stratsim simulate --seed 42 --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			factor, _ := cmd.Flags().GetFloat64("strategy-factor")
			volatility, _ := cmd.Flags().GetFloat64("volatility")
			iterations, _ := cmd.Flags().GetInt("iterations")
			seed, _ := cmd.Flags().GetInt64("seed")
			bins, _ := cmd.Flags().GetInt("bins")

			settings := domain.SimulationSettings{
				SimulationParameters: domain.SimulationParameters{
					StrategyFactor:   factor,
					MarketVolatility: volatility,
					Iterations:       iterations,
				},
				Seed:          seed,
				HistogramBins: bins,
			}
			if err := config.NewInputParser().ValidateSimulation(&settings); err != nil {
				return fmt.Errorf("invalid simulation settings: %w", err)
			}

			engine := calculation.NewPlanningEngine()
			engine.SetLogger(a.logger.Sugar())

			result, err := engine.RunSimulation(settings)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			a.logger.Debug("simulation complete",
				zap.String("run_id", result.RunID.String()),
				zap.Int("iterations", result.Statistics.Count),
				zap.Int64("seed", result.Seed),
			)
			return output.GenerateSimulationReport(cmd.OutOrStdout(), result, format)
		},
	}

	cmd.Flags().Float64("strategy-factor", 1.0, "Strategy effectiveness multiplier (0.5-2.0)")
	cmd.Flags().Float64("volatility", 0.2, "Market volatility (0.0-1.0)")
	cmd.Flags().Int("iterations", 1000, "Number of Monte Carlo trials")
	cmd.Flags().Int64("seed", 0, "Random seed (0 picks one from the clock)")
	cmd.Flags().Int("bins", calculation.DefaultHistogramBins, "Histogram bin count")

	return cmd
}
