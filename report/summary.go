// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates one series of per-run latencies (milliseconds).
type Summary struct {
	N      int
	Mean   float64
	StdDev float64 // sample standard deviation; 0 for a single run
	Min    float64
	Max    float64
	Median float64 // empirical 0.5 quantile
	P95    float64 // empirical 0.95 quantile
}

// String renders the summary on one line.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.4fms sd=%.4fms min=%.4fms median=%.4fms p95=%.4fms max=%.4fms",
		s.N, s.Mean, s.StdDev, s.Min, s.Median, s.P95, s.Max)
}

// Summarize computes descriptive statistics of ms. The input is not modified.
//
// Errors: ErrEmpty when ms has no elements.
// Complexity: O(n log n) for the quantiles.
func Summarize(ms []float64) (Summary, error) {
	if len(ms) == 0 {
		return Summary{}, fmt.Errorf("Summarize: %w", ErrEmpty)
	}

	sorted := slices.Clone(ms)
	slices.Sort(sorted)

	s := Summary{
		N:      len(ms),
		Mean:   stat.Mean(ms, nil),
		Min:    floats.Min(ms),
		Max:    floats.Max(ms),
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		P95:    stat.Quantile(0.95, stat.Empirical, sorted, nil),
	}
	if len(ms) > 1 {
		s.StdDev = stat.StdDev(ms, nil)
	}

	return s, nil
}
