package output

import (
	"encoding/json"

	"github.com/rpgo/strategy-simulator/internal/domain"
)

// JSONFormatter serializes reports as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *domain.PlanReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}

func (j JSONFormatter) FormatSimulation(result *domain.SimulationResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}
