package calculation

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/rpgo/strategy-simulator/internal/domain"
)

// ErrInvalidArgument marks inputs the engine refuses to compute with.
var ErrInvalidArgument = errors.New("invalid argument")

// UniformSource yields independent uniform values in [0, 1). *rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// MonteCarloConfig holds configuration for a Monte Carlo simulator
type MonteCarloConfig struct {
	Seed   int64         // zero means pick a seed via seedFunc
	Source UniformSource // overrides Seed when set
}

// MonteCarloSimulator samples strategy performance under randomized
// effectiveness and volatility. It owns its generator; concurrent calls are
// serialized on it.
type MonteCarloSimulator struct {
	Seed int64

	mu  sync.Mutex
	src UniformSource
}

// NewMonteCarloSimulator creates a new Monte Carlo simulator
func NewMonteCarloSimulator(config MonteCarloConfig) *MonteCarloSimulator {
	if config.Source != nil {
		return &MonteCarloSimulator{Seed: config.Seed, src: config.Source}
	}
	if config.Seed == 0 {
		config.Seed = seedFunc()
	}
	return &MonteCarloSimulator{
		Seed: config.Seed,
		src:  rand.New(rand.NewSource(config.Seed)),
	}
}

// RunSimulation draws params.Iterations independent performance samples.
// Factor and volatility are used as given; only a negative iteration count is rejected.
func (mcs *MonteCarloSimulator) RunSimulation(params domain.SimulationParameters) (domain.PerformanceDistribution, error) {
	if params.Iterations < 0 {
		return nil, fmt.Errorf("%w: iteration count must not be negative, got %d", ErrInvalidArgument, params.Iterations)
	}

	samples := make(domain.PerformanceDistribution, 0, params.Iterations)

	mcs.mu.Lock()
	defer mcs.mu.Unlock()
	for i := 0; i < params.Iterations; i++ {
		u1 := mcs.src.Float64()
		u2 := mcs.src.Float64()
		samples = append(samples, PerformanceSample(params.StrategyFactor, params.MarketVolatility, u1, u2))
	}
	return samples, nil
}

// PerformanceSample computes one trial outcome from the two uniform draws.
// effectivenessDraw spreads the strategy factor over [0.9x, 1.1x];
// volatilityDraw scales the downside applied by market volatility.
func PerformanceSample(strategyFactor, marketVolatility, effectivenessDraw, volatilityDraw float64) float64 {
	actualFactor := strategyFactor * (0.9 + 0.2*effectivenessDraw)
	volatilityEffect := 1 - marketVolatility*volatilityDraw
	return actualFactor * volatilityEffect * 100
}
