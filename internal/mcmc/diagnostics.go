package mcmc

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// #region types

// Diagnostics summarizes convergence checks for one sampled parameter.
type Diagnostics struct {
	RHat float64 // split-chain potential scale reduction
	ESS  float64 // effective sample size across all chains
}

// Healthy reports whether the run passes the usual convergence bar.
func (d Diagnostics) Healthy() bool {
	return d.RHat < 1.01 && d.ESS >= 400
}

// #endregion types

// #region diagnose

// Diagnose computes split R-hat and effective sample size for a parameter.
func Diagnose(s ScalarChains) Diagnostics {
	split := splitChains(s.Chains)
	return Diagnostics{
		RHat: splitRHat(split),
		ESS:  effectiveSampleSize(split),
	}
}

// splitChains halves each chain, dropping the middle element of odd chains.
func splitChains(chains [][]float64) [][]float64 {
	var out [][]float64
	for _, c := range chains {
		n := len(c) / 2
		if n == 0 {
			continue
		}
		out = append(out, c[:n], c[len(c)-n:])
	}
	return out
}

// #endregion diagnose

// #region rhat

// splitRHat computes the potential scale reduction factor over split chains.
// Degenerate inputs (one chain, constant samples) report 1.
func splitRHat(chains [][]float64) float64 {
	m := len(chains)
	if m < 2 {
		return 1
	}
	n := len(chains[0])
	if n < 2 {
		return 1
	}

	means := make([]float64, m)
	vars := make([]float64, m)
	for i, c := range chains {
		means[i] = stat.Mean(c, nil)
		vars[i] = stat.Variance(c, nil)
	}

	w := stat.Mean(vars, nil)
	b := float64(n) * stat.Variance(means, nil)
	if w == 0 {
		return 1
	}

	varPlus := float64(n-1)/float64(n)*w + b/float64(n)
	return math.Sqrt(varPlus / w)
}

// #endregion rhat

// #region ess

// effectiveSampleSize estimates ESS with Geyer's initial positive sequence
// over chain-averaged autocorrelations.
func effectiveSampleSize(chains [][]float64) float64 {
	m := len(chains)
	if m == 0 {
		return 0
	}
	n := len(chains[0])
	total := float64(m * n)
	if n < 4 {
		return total
	}

	w := 0.0
	for _, c := range chains {
		w += stat.Variance(c, nil)
	}
	w /= float64(m)
	if w == 0 {
		return total
	}

	// Chain-averaged autocovariance at each lag.
	acov := func(lag int) float64 {
		sum := 0.0
		for _, c := range chains {
			mean := stat.Mean(c, nil)
			s := 0.0
			for t := 0; t < n-lag; t++ {
				s += (c[t] - mean) * (c[t+lag] - mean)
			}
			sum += s / float64(n)
		}
		return sum / float64(m)
	}

	// Sum paired autocorrelations while the pair sums stay positive.
	var rhoSum float64
	for lag := 1; lag+1 < n; lag += 2 {
		pair := (acov(lag) + acov(lag+1)) / w
		if pair <= 0 {
			break
		}
		rhoSum += pair
	}

	ess := total / (1 + 2*rhoSum)
	if ess > total {
		ess = total
	}
	return ess
}

// #endregion ess
