package main

import (
	"context"
	"fmt"

	"github.com/rpgo/strategy-simulator/internal/calculation"
	"github.com/rpgo/strategy-simulator/internal/config"
	"github.com/rpgo/strategy-simulator/internal/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlanCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <config.yaml>",
		Short: "Evaluate a full strategy plan from a YAML file",
		Long: `Load a strategy plan, then run every stage: risk assessment, market
scenario, budget score and Monte Carlo simulation. Print the summary.

Run 'stratsim example' for a starting file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")

			parser := config.NewInputParser()
			input, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("seed") {
				input.Simulation.Seed, _ = cmd.Flags().GetInt64("seed")
			}
			if cmd.Flags().Changed("iterations") {
				input.Simulation.Iterations, _ = cmd.Flags().GetInt("iterations")
				if err := parser.ValidateSimulation(&input.Simulation); err != nil {
					return fmt.Errorf("invalid simulation settings: %w", err)
				}
			}

			a.logger.Info("running plan", zap.String("config", args[0]), zap.String("scenario", string(input.Scenario)))

			engine := calculation.NewPlanningEngine()
			engine.SetLogger(a.logger.Sugar())

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			report, err := engine.Run(ctx, input)
			if err != nil {
				return fmt.Errorf("plan failed: %w", err)
			}
			return output.GenerateReport(cmd.OutOrStdout(), report, format)
		},
	}

	cmd.Flags().Int64("seed", 0, "Override the simulation seed")
	cmd.Flags().Int("iterations", 0, "Override the simulation iteration count")

	return cmd
}
