package pipeline

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/priors"
)

func testAnalyzer(t *testing.T) (*Analyzer, *experiment.Store) {
	t.Helper()
	store, err := experiment.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	priorStore, err := priors.NewPriorStore(store.DB())
	if err != nil {
		t.Fatalf("NewPriorStore: %v", err)
	}
	if err := priorStore.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	cfg := DefaultConfig()
	cfg.Engine.Draws = 1000
	cfg.Engine.Seed = 17
	return NewAnalyzer(store, priorStore, cfg), store
}

// seedClearWinner loads five days where B's CTR (6%) clearly beats A's (4%).
func seedClearWinner(t *testing.T, store *experiment.Store) {
	t.Helper()
	exp, err := store.CreateExperiment("clear-winner", []string{"none", "signup", "purchase"}, []float64{0, 1.5, 20})
	if err != nil {
		t.Fatalf("CreateExperiment: %v", err)
	}
	variants, err := store.Variants(exp.ID)
	if err != nil {
		t.Fatalf("Variants: %v", err)
	}

	// B also converts better, so the revenue guard stays quiet.
	clicks := map[string]int64{"A": 400, "B": 600}
	outcomes := map[string][]int64{
		"A": {300, 70, 30},
		"B": {480, 80, 40},
	}
	for _, v := range variants {
		for day := 1; day <= 5; day++ {
			err := store.RecordBatch(experiment.Batch{
				VariantID:   v.ID,
				Day:         day,
				Impressions: 10000,
				Clicks:      clicks[v.Name],
				Outcomes:    append([]int64(nil), outcomes[v.Name]...),
			})
			if err != nil {
				t.Fatalf("RecordBatch %s day %d: %v", v.Name, day, err)
			}
		}
	}
}

func TestRunAdoptsClearWinner(t *testing.T) {
	a, store := testAnalyzer(t)
	seedClearWinner(t, store)

	result, err := a.Run("clear-winner")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if result.Champion.Name != "A" || result.Challenger.Name != "B" {
		t.Fatalf("arm ordering broken: %s vs %s", result.Champion.Name, result.Challenger.Name)
	}

	// Posterior CTR means should recover the empirical rates.
	if math.Abs(result.Champion.CTR.Mean-0.04) > 0.003 {
		t.Fatalf("champion CTR posterior mean %v too far from 0.04", result.Champion.CTR.Mean)
	}
	if math.Abs(result.Challenger.CTR.Mean-0.06) > 0.003 {
		t.Fatalf("challenger CTR posterior mean %v too far from 0.06", result.Challenger.CTR.Mean)
	}

	// MLE side must match the raw counts exactly.
	if result.Champion.MLE.CTR.Point != 0.04 {
		t.Fatalf("champion MLE %v != 0.04", result.Champion.MLE.CTR.Point)
	}
	if math.Abs(result.PointLift-0.5) > 1e-9 {
		t.Fatalf("point lift %v != 0.5", result.PointLift)
	}

	if result.ProbBeats < 0.99 {
		t.Fatalf("expected near-certain P(B>A), got %v", result.ProbBeats)
	}
	if result.Decision.Action != "adopt" {
		t.Fatalf("expected adopt, got %s: %s", result.Decision.Action, result.Decision.Reason)
	}
	if !result.Champion.Diagnostics.Healthy() {
		t.Fatalf("unhealthy diagnostics: %+v", result.Champion.Diagnostics)
	}

	// Diff summary must straddle the empirical difference of 0.02.
	if result.Diff.HPDLow > 0.02 || result.Diff.HPDHigh < 0.02 {
		t.Fatalf("diff HPD [%v, %v] excludes 0.02", result.Diff.HPDLow, result.Diff.HPDHigh)
	}
}

func TestRunIsPersisted(t *testing.T) {
	a, store := testAnalyzer(t)
	seedClearWinner(t, store)

	result, err := a.Run("clear-winner")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	rec, err := store.GetRun(result.RunID)
	if err != nil {
		t.Fatalf("GetRun: %v", err)
	}
	if len(rec.DiffSamples) == 0 || len(rec.LiftSamples) == 0 {
		t.Fatal("expected persisted sample arrays")
	}

	exp, err := store.GetExperiment("clear-winner")
	if err != nil {
		t.Fatalf("GetExperiment: %v", err)
	}
	entries, err := store.ListRuns(exp.ID, 5)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(entries) != 1 || entries[0].Decision != "adopt" {
		t.Fatalf("unexpected run log: %+v", entries)
	}
}

func TestRunDeterministicForSeed(t *testing.T) {
	a, store := testAnalyzer(t)
	seedClearWinner(t, store)

	r1, err := a.Run("clear-winner")
	if err != nil {
		t.Fatalf("first Run: %v", err)
	}
	r2, err := a.Run("clear-winner")
	if err != nil {
		t.Fatalf("second Run: %v", err)
	}
	if r1.ProbBeats != r2.ProbBeats {
		t.Fatalf("identical seeds diverged: %v vs %v", r1.ProbBeats, r2.ProbBeats)
	}
	if r1.Diff.Mean != r2.Diff.Mean {
		t.Fatalf("diff means diverged: %v vs %v", r1.Diff.Mean, r2.Diff.Mean)
	}
}

func TestRunErrors(t *testing.T) {
	a, store := testAnalyzer(t)

	if _, err := a.Run("missing"); err == nil {
		t.Fatal("expected error for unknown experiment")
	}

	// Experiment exists but has no observations.
	if _, err := store.CreateExperiment("empty", []string{"none", "buy"}, []float64{0, 1}); err != nil {
		t.Fatalf("CreateExperiment: %v", err)
	}
	if _, err := a.Run("empty"); err == nil {
		t.Fatal("expected error for experiment without batches")
	}
}

func TestMonitorTrajectory(t *testing.T) {
	a, store := testAnalyzer(t)
	seedClearWinner(t, store)

	points, err := a.Monitor("clear-winner")
	if err != nil {
		t.Fatalf("Monitor: %v", err)
	}
	if len(points) != 5 {
		t.Fatalf("expected 5 day points, got %d", len(points))
	}
	for i, p := range points {
		if p.Day != i+1 {
			t.Fatalf("point %d has day %d", i, p.Day)
		}
	}
	// Cumulative impressions must grow.
	if points[4].Impressions <= points[0].Impressions {
		t.Fatalf("impressions did not accumulate: %d..%d", points[0].Impressions, points[4].Impressions)
	}
	// With this margin the final call is adopt.
	if points[4].Action != "adopt" {
		t.Fatalf("expected final adopt, got %s", points[4].Action)
	}
}
