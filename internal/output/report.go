package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpgo/strategy-simulator/internal/domain"
)

// ErrUnsupportedFormat is returned for format names with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported output format")

func lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// GenerateReport renders a plan report in the named format to w.
func GenerateReport(w io.Writer, report *domain.PlanReport, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateSimulationReport renders a standalone simulation run in the named format to w.
func GenerateSimulationReport(w io.Writer, result *domain.SimulationResult, format string) error {
	f, err := lookup(format)
	if err != nil {
		return err
	}
	data, err := f.FormatSimulation(result)
	if err != nil {
		return fmt.Errorf("%s formatter failed: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}
