package simulate

import (
	"math"
	"testing"
)

func testParams() VariantParams {
	return VariantParams{
		CTR: 0.05,
		Mix: []float64{0.7, 0.2, 0.1},
	}
}

func TestRunShapeAndConsistency(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	sim, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}

	logs, err := sim.Run(testParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(logs) != cfg.Days {
		t.Fatalf("expected %d days, got %d", cfg.Days, len(logs))
	}

	for _, d := range logs {
		if d.Clicks > d.Impressions {
			t.Fatalf("day %d: %d clicks exceed %d impressions", d.Day, d.Clicks, d.Impressions)
		}
		var sum int64
		for _, n := range d.Outcomes {
			if n < 0 {
				t.Fatalf("day %d: negative outcome count", d.Day)
			}
			sum += n
		}
		if sum != d.Clicks {
			t.Fatalf("day %d: outcomes sum to %d, want %d clicks", d.Day, sum, d.Clicks)
		}
	}
}

func TestRunRecoversTrueRates(t *testing.T) {
	cfg := Config{Days: 50, MeanImpressions: 10000, Seed: 3}
	sim, err := NewSimulator(cfg)
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	logs, err := sim.Run(testParams())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	var impressions, clicks int64
	outcomes := make([]int64, 3)
	for _, d := range logs {
		impressions += d.Impressions
		clicks += d.Clicks
		for i, n := range d.Outcomes {
			outcomes[i] += n
		}
	}

	ctr := float64(clicks) / float64(impressions)
	if math.Abs(ctr-0.05) > 0.005 {
		t.Fatalf("empirical CTR %v too far from 0.05", ctr)
	}
	mix0 := float64(outcomes[0]) / float64(clicks)
	if math.Abs(mix0-0.7) > 0.03 {
		t.Fatalf("empirical mix[0] %v too far from 0.7", mix0)
	}
}

func TestRunDeterministicForSeed(t *testing.T) {
	run := func() []DayLog {
		cfg := DefaultConfig()
		cfg.Seed = 7
		sim, err := NewSimulator(cfg)
		if err != nil {
			t.Fatalf("NewSimulator: %v", err)
		}
		logs, err := sim.Run(testParams())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return logs
	}

	a, b := run(), run()
	for i := range a {
		if a[i].Impressions != b[i].Impressions || a[i].Clicks != b[i].Clicks {
			t.Fatalf("day %d differs between identically seeded runs", i+1)
		}
	}
}

func TestBernoulliFrequency(t *testing.T) {
	sim, err := NewSimulator(Config{Days: 1, MeanImpressions: 1, Seed: 5})
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	draws := sim.Bernoulli(20000, 0.3)
	count := 0
	for _, d := range draws {
		if d {
			count++
		}
	}
	freq := float64(count) / float64(len(draws))
	if math.Abs(freq-0.3) > 0.02 {
		t.Fatalf("empirical frequency %v too far from 0.3", freq)
	}
}

func TestValidation(t *testing.T) {
	if _, err := NewSimulator(Config{Days: 0, MeanImpressions: 100}); err == nil {
		t.Fatal("expected error for zero days")
	}
	sim, err := NewSimulator(DefaultConfig())
	if err != nil {
		t.Fatalf("NewSimulator: %v", err)
	}
	if _, err := sim.Run(VariantParams{CTR: 1.5, Mix: []float64{0.5, 0.5}}); err == nil {
		t.Fatal("expected error for CTR > 1")
	}
	if _, err := sim.Run(VariantParams{CTR: 0.1, Mix: []float64{0.5, 0.4}}); err == nil {
		t.Fatal("expected error for mix not summing to 1")
	}
	if _, err := sim.Run(VariantParams{CTR: 0.1, Mix: []float64{1}}); err == nil {
		t.Fatal("expected error for single-outcome mix")
	}
}
