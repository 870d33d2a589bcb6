package mcmc

import "fmt"

// #region beta-binomial

// BetaBinomial is a model spec: Beta prior over a success probability,
// Binomial likelihood over observed counts.
type BetaBinomial struct {
	PriorAlpha float64
	PriorBeta  float64
	Trials     int64
	Successes  int64
}

// Posterior returns the conjugate posterior Beta parameters.
func (m BetaBinomial) Posterior() (alpha, beta float64) {
	return m.PriorAlpha + float64(m.Successes),
		m.PriorBeta + float64(m.Trials-m.Successes)
}

func (m BetaBinomial) validate() error {
	if m.PriorAlpha <= 0 || m.PriorBeta <= 0 {
		return fmt.Errorf("beta prior parameters must be positive, got (%v, %v)", m.PriorAlpha, m.PriorBeta)
	}
	if m.Trials < 0 || m.Successes < 0 {
		return fmt.Errorf("counts must be non-negative, got %d/%d", m.Successes, m.Trials)
	}
	if m.Successes > m.Trials {
		return fmt.Errorf("%d successes exceed %d trials", m.Successes, m.Trials)
	}
	return nil
}

// #endregion beta-binomial

// #region dirichlet-multinomial

// DirichletMultinomial is a model spec: Dirichlet prior over outcome
// proportions, Multinomial likelihood over observed counts.
type DirichletMultinomial struct {
	Concentration []float64
	Counts        []int64
}

// Posterior returns the conjugate posterior concentration vector.
func (m DirichletMultinomial) Posterior() []float64 {
	post := make([]float64, len(m.Concentration))
	for i, c := range m.Concentration {
		post[i] = c + float64(m.Counts[i])
	}
	return post
}

func (m DirichletMultinomial) validate() error {
	if len(m.Concentration) < 2 {
		return fmt.Errorf("need at least 2 outcome components, got %d", len(m.Concentration))
	}
	if len(m.Counts) != len(m.Concentration) {
		return fmt.Errorf("%d counts but %d concentration components", len(m.Counts), len(m.Concentration))
	}
	for i, c := range m.Concentration {
		if c <= 0 {
			return fmt.Errorf("concentration[%d] must be positive, got %v", i, c)
		}
		if m.Counts[i] < 0 {
			return fmt.Errorf("counts[%d] must be non-negative, got %d", i, m.Counts[i])
		}
	}
	return nil
}

// #endregion dirichlet-multinomial
