package posterior

import "fmt"

// #region pairwise

// Diff is the sample-wise difference b - a.
func Diff(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = b[i] - a[i]
	}
	return out
}

// Lift is the sample-wise relative lift b/a - 1.
func Lift(a, b []float64) []float64 {
	n := min(len(a), len(b))
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = b[i]/a[i] - 1
	}
	return out
}

// #endregion pairwise

// #region revenue

// Revenue is the sample-wise expected revenue per impression:
// CTR sample times the payoff-weighted conversion mix sample.
func Revenue(ctr []float64, mix [][]float64, payoffs []float64) ([]float64, error) {
	n := min(len(ctr), len(mix))
	if n == 0 {
		return nil, fmt.Errorf("revenue: empty sample arrays")
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		if len(mix[i]) != len(payoffs) {
			return nil, fmt.Errorf("revenue: draw %d has %d components but %d payoffs", i, len(mix[i]), len(payoffs))
		}
		var value float64
		for k, w := range mix[i] {
			value += w * payoffs[k]
		}
		out[i] = ctr[i] * value
	}
	return out, nil
}

// #endregion revenue
