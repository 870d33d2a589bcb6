// Package simulate generates synthetic banner traffic from known true
// parameters, so posterior recovery can be checked against ground truth.
package simulate

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// #region config

// VariantParams are the generating parameters for one banner arm.
type VariantParams struct {
	CTR float64   // true click probability
	Mix []float64 // true conversion-outcome proportions, sums to 1
}

// Config controls one simulation run.
type Config struct {
	Days            int
	MeanImpressions float64 // per day, Poisson distributed
	Seed            uint64
}

// DefaultConfig returns the standard two-week simulation.
func DefaultConfig() Config {
	return Config{
		Days:            14,
		MeanImpressions: 5000,
		Seed:            1,
	}
}

func (c Config) validate() error {
	if c.Days < 1 {
		return fmt.Errorf("need at least 1 day, got %d", c.Days)
	}
	if c.MeanImpressions <= 0 {
		return fmt.Errorf("mean impressions must be positive, got %v", c.MeanImpressions)
	}
	return nil
}

func (p VariantParams) validate() error {
	if p.CTR < 0 || p.CTR > 1 {
		return fmt.Errorf("ctr %v outside [0,1]", p.CTR)
	}
	if len(p.Mix) < 2 {
		return fmt.Errorf("need at least 2 outcome proportions, got %d", len(p.Mix))
	}
	var sum float64
	for i, w := range p.Mix {
		if w < 0 {
			return fmt.Errorf("mix[%d] is negative: %v", i, w)
		}
		sum += w
	}
	if sum < 0.999 || sum > 1.001 {
		return fmt.Errorf("mix sums to %v, want 1", sum)
	}
	return nil
}

// #endregion config

// #region types

// DayLog is one simulated day for one variant.
type DayLog struct {
	Day         int
	Impressions int64
	Clicks      int64
	Outcomes    []int64
}

// #endregion types

// #region simulator

// Simulator draws synthetic banner logs from true parameters.
type Simulator struct {
	config Config
	src    rand.Source
}

// NewSimulator creates a seeded simulator.
func NewSimulator(config Config) (*Simulator, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("simulate config: %w", err)
	}
	return &Simulator{
		config: config,
		src:    rand.NewSource(config.Seed),
	}, nil
}

// Run generates the full daily log for one variant. Impressions are
// Poisson, clicks Binomial given impressions, outcomes Multinomial given
// clicks (drawn as conditional Binomial splits).
func (s *Simulator) Run(params VariantParams) ([]DayLog, error) {
	if err := params.validate(); err != nil {
		return nil, fmt.Errorf("variant params: %w", err)
	}

	poisson := distuv.Poisson{Lambda: s.config.MeanImpressions, Src: s.src}
	logs := make([]DayLog, s.config.Days)
	for d := range logs {
		impressions := int64(poisson.Rand())
		clicks := s.binomial(impressions, params.CTR)
		logs[d] = DayLog{
			Day:         d + 1,
			Impressions: impressions,
			Clicks:      clicks,
			Outcomes:    s.multinomial(clicks, params.Mix),
		}
	}
	return logs, nil
}

// Bernoulli draws n independent click indicators with probability p.
func (s *Simulator) Bernoulli(n int, p float64) []bool {
	dist := distuv.Bernoulli{P: p, Src: s.src}
	out := make([]bool, n)
	for i := range out {
		out[i] = dist.Rand() != 0
	}
	return out
}

func (s *Simulator) binomial(n int64, p float64) int64 {
	if n == 0 || p == 0 {
		return 0
	}
	if p >= 1 {
		return n
	}
	dist := distuv.Binomial{N: float64(n), P: p, Src: s.src}
	return int64(dist.Rand())
}

// multinomial splits n trials over proportions via conditional binomials.
func (s *Simulator) multinomial(n int64, mix []float64) []int64 {
	out := make([]int64, len(mix))
	remaining := n
	remainingP := 1.0
	for k := 0; k < len(mix)-1 && remaining > 0; k++ {
		p := mix[k] / remainingP
		if p > 1 {
			p = 1
		}
		out[k] = s.binomial(remaining, p)
		remaining -= out[k]
		remainingP -= mix[k]
		if remainingP <= 0 {
			break
		}
	}
	out[len(mix)-1] += remaining
	return out
}

// #endregion simulator
