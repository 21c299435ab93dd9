package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args and returns what it printed.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writePlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewRootCmd(t *testing.T) {
	root := newRootCmd()
	assert.Equal(t, "stratsim", root.Use)

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"version", "simulate", "plan", "example"} {
		assert.Contains(t, names, want)
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "stratsim version "+version+"\n", out)
}

func TestSimulateCmd_Console(t *testing.T) {
	out, err := runCmd(t, "simulate", "--iterations", "50", "--seed", "7", "--bins", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "MONTE CARLO SIMULATION")
	assert.Contains(t, out, "Seed: 7")
	assert.Contains(t, out, "count")
}

func TestSimulateCmd_JSONIsReproducible(t *testing.T) {
	args := []string{"simulate", "--iterations", "25", "--seed", "99", "--format", "json"}

	first, err := runCmd(t, args...)
	require.NoError(t, err)
	second, err := runCmd(t, args...)
	require.NoError(t, err)

	var a, b struct {
		Samples []float64 `json:"samples"`
	}
	require.NoError(t, json.Unmarshal([]byte(first), &a))
	require.NoError(t, json.Unmarshal([]byte(second), &b))
	assert.Len(t, a.Samples, 25)
	assert.Equal(t, a.Samples, b.Samples)
}

func TestSimulateCmd_RejectsOutOfRange(t *testing.T) {
	_, err := runCmd(t, "simulate", "--volatility", "1.5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "market volatility must be between 0 and 1")

	_, err = runCmd(t, "simulate", "--iterations=-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "iterations must be between 0")
}

func TestSimulateCmd_UnknownFormat(t *testing.T) {
	_, err := runCmd(t, "simulate", "--iterations", "5", "--format", "pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported output format")
}

func TestPlanCmd(t *testing.T) {
	plan := writePlan(t, "strategy:\n"+
		"  goal: \"Open pop-up shop\"\n"+
		"  timeline: \"3 Months\"\n"+
		"  budget: 2000\n"+
		"scenario: Pessimistic\n"+
		"simulation:\n"+
		"  iterations: 100\n"+
		"  seed: 3\n")

	out, err := runCmd(t, "plan", plan)
	require.NoError(t, err)
	assert.Contains(t, out, "STRATEGY SUMMARY")
	assert.Contains(t, out, "Open pop-up shop")
	assert.Contains(t, out, "Adjusted Budget: $1,400.00")
	assert.Contains(t, out, "Overall Risk Level: 30.0%")
}

func TestPlanCmd_Overrides(t *testing.T) {
	plan := writePlan(t, "simulation:\n  iterations: 100\n  seed: 3\n")

	out, err := runCmd(t, "plan", plan, "--iterations", "12", "--seed", "8", "--format", "json")
	require.NoError(t, err)

	var report struct {
		Simulation struct {
			Seed    int64     `json:"seed"`
			Samples []float64 `json:"samples"`
		} `json:"simulation"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, int64(8), report.Simulation.Seed)
	assert.Len(t, report.Simulation.Samples, 12)
}

func TestPlanCmd_Errors(t *testing.T) {
	_, err := runCmd(t, "plan")
	require.Error(t, err)

	_, err = runCmd(t, "plan", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestExampleCmd_LoadsBack(t *testing.T) {
	out, err := runCmd(t, "example")
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "strategy:"))

	report, err := runCmd(t, "plan", writePlan(t, out))
	require.NoError(t, err)
	assert.Contains(t, report, "Launch regional delivery service")
}
