package experiment

import "time"

// #region experiment
// Experiment is a banner comparison with a fixed set of conversion outcomes.
type Experiment struct {
	ID            string
	Name          string
	OutcomeLabels []string  // e.g. ["none", "signup", "purchase"]
	Payoffs       []float64 // revenue per click for each outcome, same order
	CreatedAt     time.Time
}
// #endregion experiment

// #region variant
// Variant is one banner arm within an experiment.
type Variant struct {
	ID           string
	ExperimentID string
	Name         string
	Role         string // "champion" | "challenger"
	// TrueCTR and TrueMix are set only for simulated variants, so reports
	// can show recovery of the generating parameters. Nil otherwise.
	TrueCTR *float64
	TrueMix []float64
	CreatedAt time.Time
}
// #endregion variant

// #region batch
// Batch is one day of observed traffic for a variant.
type Batch struct {
	ID           int64
	VariantID    string
	Day          int
	Impressions  int64
	Clicks       int64
	// Outcomes holds per-outcome conversion counts in the experiment's
	// label order. Must sum to Clicks.
	Outcomes  []int64
	CreatedAt time.Time
}
// #endregion batch

// #region totals
// Totals is the cumulative count state of a variant.
type Totals struct {
	Impressions int64
	Clicks      int64
	Outcomes    []int64
}

// Add folds a batch into the running totals.
func (t *Totals) Add(b Batch) {
	t.Impressions += b.Impressions
	t.Clicks += b.Clicks
	if len(t.Outcomes) < len(b.Outcomes) {
		grown := make([]int64, len(b.Outcomes))
		copy(grown, t.Outcomes)
		t.Outcomes = grown
	}
	for i, n := range b.Outcomes {
		t.Outcomes[i] += n
	}
}
// #endregion totals

// #region run-record
// RunRecord is a persisted analysis run: engine settings, posterior
// summaries, and the raw derived sample arrays.
type RunRecord struct {
	RunID        string
	ExperimentID string
	PriorName    string
	EngineJSON   string
	SummaryJSON  string
	DiffSamples  []float64 // sample-wise CTR(B) - CTR(A)
	LiftSamples  []float64 // sample-wise CTR(B)/CTR(A) - 1
	CreatedAt    time.Time
}
// #endregion run-record

// #region run-log-entry
// RunLogEntry records the provenance of one analysis decision.
type RunLogEntry struct {
	RunID        string
	ExperimentID string
	PriorName    string
	Decision     string // "adopt" | "keep" | "continue"
	Reason       string
	GuardsJSON   string
	CreatedAt    time.Time
}
// #endregion run-log-entry
