// Package freq computes maximum-likelihood point estimates for banner data,
// the frequentist side of the comparison report.
package freq

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// #region types

// Estimate is an MLE with its Wald confidence interval.
type Estimate struct {
	Point float64 `json:"point"`
	SE    float64 `json:"se"`
	Low   float64 `json:"low"`
	High  float64 `json:"high"`
}

// VariantMLE holds all point estimates for one variant.
type VariantMLE struct {
	Impressions int64     `json:"impressions"`
	Clicks      int64     `json:"clicks"`
	CTR         Estimate  `json:"ctr"`
	Mix         []float64 `json:"mix"`     // outcome proportions among clicks
	Revenue     float64   `json:"revenue"` // per impression, point estimate
}

// #endregion types

// #region ctr

// CTR computes the maximum-likelihood click-through rate with a Wald
// interval at the given confidence level.
func CTR(impressions, clicks int64, level float64) (Estimate, error) {
	if impressions <= 0 {
		return Estimate{}, fmt.Errorf("ctr: need positive impressions, got %d", impressions)
	}
	if clicks < 0 || clicks > impressions {
		return Estimate{}, fmt.Errorf("ctr: %d clicks out of range for %d impressions", clicks, impressions)
	}
	if level <= 0 || level >= 1 {
		return Estimate{}, fmt.Errorf("ctr: confidence level %v outside (0,1)", level)
	}

	p := float64(clicks) / float64(impressions)
	se := math.Sqrt(p * (1 - p) / float64(impressions))
	z := distuv.Normal{Mu: 0, Sigma: 1}.Quantile(1 - (1-level)/2)

	e := Estimate{
		Point: p,
		SE:    se,
		Low:   p - z*se,
		High:  p + z*se,
	}
	if e.Low < 0 {
		e.Low = 0
	}
	if e.High > 1 {
		e.High = 1
	}
	return e, nil
}

// #endregion ctr

// #region mix

// Mix computes maximum-likelihood outcome proportions among clicks.
// With zero clicks every proportion is reported as zero.
func Mix(outcomes []int64, clicks int64) []float64 {
	out := make([]float64, len(outcomes))
	if clicks <= 0 {
		return out
	}
	for i, n := range outcomes {
		out[i] = float64(n) / float64(clicks)
	}
	return out
}

// #endregion mix

// #region variant

// Variant assembles the full MLE summary for one variant.
func Variant(impressions, clicks int64, outcomes []int64, payoffs []float64, level float64) (VariantMLE, error) {
	ctr, err := CTR(impressions, clicks, level)
	if err != nil {
		return VariantMLE{}, err
	}
	mix := Mix(outcomes, clicks)
	if len(mix) != len(payoffs) {
		return VariantMLE{}, fmt.Errorf("variant: %d outcomes but %d payoffs", len(mix), len(payoffs))
	}

	var perClick float64
	for i, w := range mix {
		perClick += w * payoffs[i]
	}
	return VariantMLE{
		Impressions: impressions,
		Clicks:      clicks,
		CTR:         ctr,
		Mix:         mix,
		Revenue:     ctr.Point * perClick,
	}, nil
}

// #endregion variant

// #region comparison

// DiffAndLift returns the naive point-estimate CTR difference and lift of
// b over a. Lift is NaN when a's CTR is zero.
func DiffAndLift(a, b VariantMLE) (diff, lift float64) {
	diff = b.CTR.Point - a.CTR.Point
	if a.CTR.Point == 0 {
		return diff, math.NaN()
	}
	return diff, b.CTR.Point/a.CTR.Point - 1
}

// #endregion comparison
