package calculation

import (
	"fmt"
	"math"
	"sort"

	"github.com/rpgo/strategy-simulator/internal/domain"
)

// DefaultHistogramBins is used when a run does not ask for a bin count.
const DefaultHistogramBins = 20

// Summarize computes descriptive statistics for a distribution.
// StdDev is the sample standard deviation (n-1); quartiles interpolate
// linearly between closest ranks.
func Summarize(samples domain.PerformanceDistribution) domain.SummaryStatistics {
	n := len(samples)
	if n == 0 {
		return domain.SummaryStatistics{}
	}

	sorted := append([]float64(nil), samples...)
	sort.Float64s(sorted)

	var sum float64
	for _, v := range sorted {
		sum += v
	}
	mean := sum / float64(n)

	var stdDev float64
	if n > 1 {
		var sq float64
		for _, v := range sorted {
			d := v - mean
			sq += d * d
		}
		stdDev = math.Sqrt(sq / float64(n-1))
	}

	return domain.SummaryStatistics{
		Count:  n,
		Mean:   mean,
		StdDev: stdDev,
		Min:    sorted[0],
		P25:    quantile(sorted, 0.25),
		P50:    quantile(sorted, 0.50),
		P75:    quantile(sorted, 0.75),
		Max:    sorted[n-1],
	}
}

// quantile expects sorted input with at least one element.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}

// BuildHistogram buckets samples into equal-width bins spanning [min, max].
// The last bin is closed so the maximum is counted. A range with no finite
// width is rejected.
func BuildHistogram(samples domain.PerformanceDistribution, bins int) (domain.Histogram, error) {
	if bins <= 0 {
		return domain.Histogram{}, fmt.Errorf("%w: histogram needs at least one bin, got %d", ErrInvalidArgument, bins)
	}
	if len(samples) == 0 {
		return domain.Histogram{Edges: []float64{}, Counts: []int{}}, nil
	}

	lo, hi := samples[0], samples[0]
	for _, v := range samples[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if lo == hi {
		return domain.Histogram{Edges: []float64{lo, hi}, Counts: []int{len(samples)}}, nil
	}

	width := (hi - lo) / float64(bins)
	if math.IsNaN(width) || math.IsInf(width, 0) {
		return domain.Histogram{}, fmt.Errorf("%w: cannot bin samples spanning [%g, %g]", ErrInvalidArgument, lo, hi)
	}
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + width*float64(i)
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range samples {
		idx := int((v - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return domain.Histogram{Edges: edges, Counts: counts}, nil
}
