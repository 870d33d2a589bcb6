package mcmc

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// #region config

// Config controls a sampling run.
type Config struct {
	Chains int
	Draws  int // retained draws per chain
	BurnIn int // leading draws discarded per chain
	Thin   int // keep every Thin-th draw after burn-in
	Seed   uint64
}

// DefaultConfig returns the standard 4-chain engine configuration.
func DefaultConfig() Config {
	return Config{
		Chains: 4,
		Draws:  2000,
		BurnIn: 500,
		Thin:   1,
		Seed:   1,
	}
}

func (c Config) validate() error {
	if c.Chains < 1 {
		return fmt.Errorf("need at least 1 chain, got %d", c.Chains)
	}
	if c.Draws < 1 {
		return fmt.Errorf("need at least 1 draw, got %d", c.Draws)
	}
	if c.BurnIn < 0 {
		return fmt.Errorf("burn-in must be non-negative, got %d", c.BurnIn)
	}
	if c.Thin < 1 {
		return fmt.Errorf("thinning interval must be at least 1, got %d", c.Thin)
	}
	return nil
}

// #endregion config

// #region chain-types

// ScalarChains holds per-chain sample arrays for a scalar parameter.
type ScalarChains struct {
	Chains [][]float64
}

// Flat concatenates all chains into a single sample array.
func (s ScalarChains) Flat() []float64 {
	var n int
	for _, c := range s.Chains {
		n += len(c)
	}
	out := make([]float64, 0, n)
	for _, c := range s.Chains {
		out = append(out, c...)
	}
	return out
}

// MixChains holds per-chain sample arrays for a K-vector parameter.
// Chains[i][j] is the j-th retained draw of chain i, a length-K simplex point.
type MixChains struct {
	K      int
	Chains [][][]float64
}

// Flat concatenates all chains into a single array of K-vector draws.
func (m MixChains) Flat() [][]float64 {
	var n int
	for _, c := range m.Chains {
		n += len(c)
	}
	out := make([][]float64, 0, n)
	for _, c := range m.Chains {
		out = append(out, c...)
	}
	return out
}

// Component extracts the scalar chains of one mix component, for diagnostics.
func (m MixChains) Component(k int) ScalarChains {
	chains := make([][]float64, len(m.Chains))
	for i, c := range m.Chains {
		chains[i] = make([]float64, len(c))
		for j, draw := range c {
			chains[i][j] = draw[k]
		}
	}
	return ScalarChains{Chains: chains}
}

// #endregion chain-types

// #region engine

// Engine draws posterior samples for conjugate models. Callers hand it a
// model spec and get back sample arrays; every derived quantity downstream
// is arithmetic on those arrays.
type Engine struct {
	config Config
}

// NewEngine creates an engine with the given configuration.
func NewEngine(config Config) *Engine {
	return &Engine{config: config}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// #endregion engine

// #region sample-ctr

// SampleCTR draws posterior CTR samples for a Beta-Binomial model.
// Each chain runs on its own deterministically seeded source, so equal
// seeds and inputs reproduce identical sample arrays.
func (e *Engine) SampleCTR(m BetaBinomial) (ScalarChains, error) {
	if err := e.config.validate(); err != nil {
		return ScalarChains{}, fmt.Errorf("engine config: %w", err)
	}
	if err := m.validate(); err != nil {
		return ScalarChains{}, fmt.Errorf("beta-binomial model: %w", err)
	}

	alpha, beta := m.Posterior()
	chains := make([][]float64, e.config.Chains)
	for i := range chains {
		src := rand.NewSource(e.config.Seed + uint64(i))
		dist := distuv.Beta{Alpha: alpha, Beta: beta, Src: src}

		total := e.config.BurnIn + e.config.Draws*e.config.Thin
		kept := make([]float64, 0, e.config.Draws)
		for step := 0; step < total; step++ {
			x := dist.Rand()
			if step < e.config.BurnIn {
				continue
			}
			if (step-e.config.BurnIn)%e.config.Thin == 0 {
				kept = append(kept, x)
			}
		}
		chains[i] = kept
	}
	return ScalarChains{Chains: chains}, nil
}

// #endregion sample-ctr

// #region sample-mix

// SampleMix draws posterior conversion-mix samples for a
// Dirichlet-Multinomial model. Dirichlet draws come from normalized
// independent Gamma draws.
func (e *Engine) SampleMix(m DirichletMultinomial) (MixChains, error) {
	if err := e.config.validate(); err != nil {
		return MixChains{}, fmt.Errorf("engine config: %w", err)
	}
	if err := m.validate(); err != nil {
		return MixChains{}, fmt.Errorf("dirichlet-multinomial model: %w", err)
	}

	post := m.Posterior()
	k := len(post)
	chains := make([][][]float64, e.config.Chains)
	for i := range chains {
		src := rand.NewSource(e.config.Seed + uint64(i))
		gammas := make([]distuv.Gamma, k)
		for j := range gammas {
			gammas[j] = distuv.Gamma{Alpha: post[j], Beta: 1, Src: src}
		}

		total := e.config.BurnIn + e.config.Draws*e.config.Thin
		kept := make([][]float64, 0, e.config.Draws)
		for step := 0; step < total; step++ {
			draw := make([]float64, k)
			var sum float64
			for j := range draw {
				draw[j] = gammas[j].Rand()
				sum += draw[j]
			}
			for j := range draw {
				draw[j] /= sum
			}
			if step < e.config.BurnIn {
				continue
			}
			if (step-e.config.BurnIn)%e.config.Thin == 0 {
				kept = append(kept, draw)
			}
		}
		chains[i] = kept
	}
	return MixChains{K: k, Chains: chains}, nil
}

// #endregion sample-mix
