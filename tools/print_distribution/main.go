package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/rpgo/strategy-simulator/internal/calculation"
	"github.com/rpgo/strategy-simulator/internal/domain"
)

// Prints the first samples of a seeded run; handy when refreshing golden values in tests.
func main() {
	seed := flag.Int64("seed", 777, "generator seed")
	factor := flag.Float64("factor", 1.5, "strategy factor")
	volatility := flag.Float64("volatility", 0.4, "market volatility")
	n := flag.Int("n", 10, "number of samples")
	flag.Parse()

	sim := calculation.NewMonteCarloSimulator(calculation.MonteCarloConfig{Seed: *seed})
	samples, err := sim.RunSimulation(domain.SimulationParameters{
		StrategyFactor:   *factor,
		MarketVolatility: *volatility,
		Iterations:       *n,
	})
	if err != nil {
		log.Fatal(err)
	}

	for i, s := range samples {
		fmt.Printf("%3d  %.6f\n", i, s)
	}
	stats := calculation.Summarize(samples)
	fmt.Printf("mean=%.6f std=%.6f min=%.6f max=%.6f\n", stats.Mean, stats.StdDev, stats.Min, stats.Max)
}
