package domain

import "github.com/google/uuid"

// SimulationParameters is the input triple for one Monte Carlo run.
// StrategyFactor is expected in [0.5, 2.0] and MarketVolatility in [0, 1];
// range checks belong to whoever collects the input.
type SimulationParameters struct {
	StrategyFactor   float64 `yaml:"strategy_factor" json:"strategy_factor"`
	MarketVolatility float64 `yaml:"market_volatility" json:"market_volatility"`
	Iterations       int     `yaml:"iterations" json:"iterations"`
}

// SimulationSettings pairs the run parameters with the generator seed.
// A zero seed asks for a fresh time-based seed.
type SimulationSettings struct {
	SimulationParameters `yaml:",inline"`
	Seed                 int64 `yaml:"seed,omitempty" json:"seed,omitempty"`
	HistogramBins        int   `yaml:"histogram_bins,omitempty" json:"histogram_bins,omitempty"`
}

// PerformanceDistribution is the ordered set of samples from one run
type PerformanceDistribution []float64

// SummaryStatistics are the descriptive statistics of a distribution
type SummaryStatistics struct {
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
	Min    float64 `json:"min"`
	P25    float64 `json:"p25"`
	P50    float64 `json:"p50"`
	P75    float64 `json:"p75"`
	Max    float64 `json:"max"`
}

// Histogram holds equal-width bin counts. Edges has len(Counts)+1 entries.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// SimulationResult bundles a run's samples with what was derived from them
type SimulationResult struct {
	RunID      uuid.UUID               `json:"run_id"`
	Parameters SimulationParameters    `json:"parameters"`
	Seed       int64                   `json:"seed"`
	Samples    PerformanceDistribution `json:"samples"`
	Statistics SummaryStatistics       `json:"statistics"`
	Histogram  Histogram               `json:"histogram"`
}
