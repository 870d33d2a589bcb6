package mcmc

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/stat"
)

func testConfig() Config {
	c := DefaultConfig()
	c.Draws = 4000
	c.Seed = 42
	return c
}

func TestSampleCTRPosteriorMean(t *testing.T) {
	e := NewEngine(testConfig())
	m := BetaBinomial{PriorAlpha: 1, PriorBeta: 1, Trials: 10000, Successes: 400}

	chains, err := e.SampleCTR(m)
	if err != nil {
		t.Fatalf("SampleCTR: %v", err)
	}
	flat := chains.Flat()
	if len(flat) != 4*4000 {
		t.Fatalf("expected %d samples, got %d", 4*4000, len(flat))
	}

	// Posterior mean is (1+400)/(2+10000) ≈ 0.0401.
	want := 401.0 / 10002.0
	got := stat.Mean(flat, nil)
	if math.Abs(got-want) > 0.001 {
		t.Fatalf("posterior mean %v too far from %v", got, want)
	}
	for _, x := range flat {
		if x <= 0 || x >= 1 {
			t.Fatalf("sample %v outside (0,1)", x)
		}
	}
}

func TestSampleCTRDeterministicForSeed(t *testing.T) {
	m := BetaBinomial{PriorAlpha: 2, PriorBeta: 50, Trials: 500, Successes: 20}

	a, err := NewEngine(testConfig()).SampleCTR(m)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	b, err := NewEngine(testConfig()).SampleCTR(m)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	fa, fb := a.Flat(), b.Flat()
	for i := range fa {
		if fa[i] != fb[i] {
			t.Fatalf("sample %d differs: %v vs %v", i, fa[i], fb[i])
		}
	}

	cfg := testConfig()
	cfg.Seed = 43
	c, err := NewEngine(cfg).SampleCTR(m)
	if err != nil {
		t.Fatalf("third run: %v", err)
	}
	if c.Flat()[0] == fa[0] {
		t.Fatal("different seeds produced identical first sample")
	}
}

func TestSampleCTRThinningAndBurnIn(t *testing.T) {
	cfg := Config{Chains: 2, Draws: 100, BurnIn: 50, Thin: 3, Seed: 7}
	chains, err := NewEngine(cfg).SampleCTR(BetaBinomial{PriorAlpha: 1, PriorBeta: 1, Trials: 10, Successes: 5})
	if err != nil {
		t.Fatalf("SampleCTR: %v", err)
	}
	for i, c := range chains.Chains {
		if len(c) != 100 {
			t.Fatalf("chain %d: expected 100 retained draws, got %d", i, len(c))
		}
	}
}

func TestSampleCTRValidation(t *testing.T) {
	e := NewEngine(DefaultConfig())
	if _, err := e.SampleCTR(BetaBinomial{PriorAlpha: 0, PriorBeta: 1, Trials: 10, Successes: 1}); err == nil {
		t.Fatal("expected error for zero prior alpha")
	}
	if _, err := e.SampleCTR(BetaBinomial{PriorAlpha: 1, PriorBeta: 1, Trials: 10, Successes: 11}); err == nil {
		t.Fatal("expected error for successes > trials")
	}
	if _, err := NewEngine(Config{Chains: 0, Draws: 1, Thin: 1}).SampleCTR(BetaBinomial{PriorAlpha: 1, PriorBeta: 1}); err == nil {
		t.Fatal("expected error for zero chains")
	}
}

func TestSampleMixPosteriorMeans(t *testing.T) {
	e := NewEngine(testConfig())
	m := DirichletMultinomial{
		Concentration: []float64{1, 1, 1},
		Counts:        []int64{700, 200, 100},
	}

	mix, err := e.SampleMix(m)
	if err != nil {
		t.Fatalf("SampleMix: %v", err)
	}
	draws := mix.Flat()
	if len(draws) != 4*4000 {
		t.Fatalf("expected %d draws, got %d", 4*4000, len(draws))
	}

	// Posterior means are (c_k + n_k) / sum.
	want := []float64{701.0 / 1003.0, 201.0 / 1003.0, 101.0 / 1003.0}
	for k := range want {
		comp := mix.Component(k).Flat()
		got := stat.Mean(comp, nil)
		if math.Abs(got-want[k]) > 0.002 {
			t.Fatalf("component %d mean %v too far from %v", k, got, want[k])
		}
	}

	for i, d := range draws {
		var sum float64
		for _, x := range d {
			if x < 0 {
				t.Fatalf("draw %d has negative component %v", i, x)
			}
			sum += x
		}
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("draw %d sums to %v, not 1", i, sum)
		}
	}
}

func TestSampleMixValidation(t *testing.T) {
	e := NewEngine(DefaultConfig())
	if _, err := e.SampleMix(DirichletMultinomial{Concentration: []float64{1}, Counts: []int64{1}}); err == nil {
		t.Fatal("expected error for single component")
	}
	if _, err := e.SampleMix(DirichletMultinomial{Concentration: []float64{1, 1}, Counts: []int64{1}}); err == nil {
		t.Fatal("expected error for count/concentration length mismatch")
	}
	if _, err := e.SampleMix(DirichletMultinomial{Concentration: []float64{1, 0}, Counts: []int64{1, 1}}); err == nil {
		t.Fatal("expected error for zero concentration component")
	}
}
