package main

import (
	"fmt"

	"github.com/rpgo/strategy-simulator/internal/config"
	"github.com/spf13/cobra"
)

func newExampleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example plan file",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.MarshalConfiguration(config.NewInputParser().CreateExampleConfiguration())
			if err != nil {
				return fmt.Errorf("failed to render example: %w", err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}
