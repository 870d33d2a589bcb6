// Package posterior reduces posterior sample arrays to summary statistics.
// Everything here is post-hoc arithmetic on samples; no closed-form
// posterior quantities are computed.
package posterior

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// #region summary

// Summary describes one posterior sample array.
type Summary struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	SD     float64 `json:"sd"`
	Median float64 `json:"median"`
	// Central interval at Mass, equal tail probability on each side.
	CentralLow  float64 `json:"central_low"`
	CentralHigh float64 `json:"central_high"`
	// Highest-posterior-density interval at Mass: the narrowest window
	// containing that fraction of samples.
	HPDLow  float64 `json:"hpd_low"`
	HPDHigh float64 `json:"hpd_high"`
	Mass    float64 `json:"mass"`
}

// Summarize reduces a sample array at the given interval mass (e.g. 0.95).
func Summarize(samples []float64, mass float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, fmt.Errorf("summarize: empty sample array")
	}
	if mass <= 0 || mass >= 1 {
		return Summary{}, fmt.Errorf("summarize: mass %v outside (0,1)", mass)
	}

	sorted := make([]float64, len(samples))
	copy(sorted, samples)
	sort.Float64s(sorted)

	tail := (1 - mass) / 2
	lo, hi := hpd(sorted, mass)
	return Summary{
		N:           len(samples),
		Mean:        stat.Mean(samples, nil),
		SD:          stat.StdDev(samples, nil),
		Median:      stat.Quantile(0.5, stat.Empirical, sorted, nil),
		CentralLow:  stat.Quantile(tail, stat.Empirical, sorted, nil),
		CentralHigh: stat.Quantile(1-tail, stat.Empirical, sorted, nil),
		HPDLow:      lo,
		HPDHigh:     hi,
		Mass:        mass,
	}, nil
}

// hpd scans sorted samples for the narrowest window holding mass.
func hpd(sorted []float64, mass float64) (lo, hi float64) {
	n := len(sorted)
	window := int(float64(n)*mass + 0.5)
	if window < 1 {
		window = 1
	}
	if window >= n {
		return sorted[0], sorted[n-1]
	}

	bestLo := 0
	bestWidth := sorted[window-1] - sorted[0]
	for i := 1; i+window <= n; i++ {
		width := sorted[i+window-1] - sorted[i]
		if width < bestWidth {
			bestWidth = width
			bestLo = i
		}
	}
	return sorted[bestLo], sorted[bestLo+window-1]
}

// #endregion summary

// #region probabilities

// ProbGreater is the sample-wise estimate of P(b > a).
func ProbGreater(a, b []float64) float64 {
	n := min(len(a), len(b))
	if n == 0 {
		return 0
	}
	count := 0
	for i := 0; i < n; i++ {
		if b[i] > a[i] {
			count++
		}
	}
	return float64(count) / float64(n)
}

// ProbAbove is the fraction of samples exceeding x.
func ProbAbove(samples []float64, x float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	count := 0
	for _, s := range samples {
		if s > x {
			count++
		}
	}
	return float64(count) / float64(len(samples))
}

// #endregion probabilities
