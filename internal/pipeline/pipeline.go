// Package pipeline wires the stages of one analysis run: load counts,
// fit posteriors, reduce samples, decide, persist.
package pipeline

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/decision"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/freq"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/mcmc"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/posterior"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/priors"
)

// #region config

// Config bundles the settings of every pipeline stage.
type Config struct {
	PriorName string
	Mass      float64 // credible interval mass
	Level     float64 // frequentist confidence level
	Engine    mcmc.Config
	Decision  decision.Config
}

// DefaultConfig returns sensible defaults for all stages.
func DefaultConfig() Config {
	return Config{
		PriorName: "uniform",
		Mass:      0.95,
		Level:     0.95,
		Engine:    mcmc.DefaultConfig(),
		Decision:  decision.DefaultConfig(),
	}
}

// Variant seed offsets keep the two arms (and the CTR vs mix models of one
// arm) on disjoint random streams while staying reproducible.
const (
	variantSeedStride = 9973
	mixSeedOffset     = 4999
)

// #endregion config

// #region result-types

// VariantResult is the fitted output for one banner arm.
type VariantResult struct {
	Name        string              `json:"name"`
	Role        string              `json:"role"`
	Totals      experiment.Totals   `json:"totals"`
	MLE         freq.VariantMLE     `json:"mle"`
	CTR         posterior.Summary   `json:"ctr_posterior"`
	Mix         []posterior.Summary `json:"mix_posterior"`
	Revenue     posterior.Summary   `json:"revenue_posterior"`
	Diagnostics mcmc.Diagnostics    `json:"diagnostics"`
	TrueCTR     *float64            `json:"true_ctr,omitempty"`
}

// RunResult is the full outcome of one analysis run.
type RunResult struct {
	RunID          string            `json:"run_id"`
	ExperimentName string            `json:"experiment_name"`
	OutcomeLabels  []string          `json:"outcome_labels"`
	PriorName      string            `json:"prior_name"`
	Champion       VariantResult     `json:"champion"`
	Challenger     VariantResult     `json:"challenger"`
	Diff           posterior.Summary `json:"ctr_diff"`
	Lift           posterior.Summary `json:"ctr_lift"`
	RevenueDiff    posterior.Summary `json:"revenue_diff"`
	ProbBeats      float64           `json:"prob_challenger_beats"`
	ProbRevLoss    float64           `json:"prob_revenue_loss"`
	PointDiff      float64           `json:"point_diff"`
	PointLift      float64           `json:"point_lift"`
	Decision       decision.Decision `json:"decision"`
	CreatedAt      time.Time         `json:"created_at"`

	diffSamples []float64
	liftSamples []float64
}

// #endregion result-types

// #region analyzer

// Analyzer runs the analysis pipeline against a store.
type Analyzer struct {
	store  *experiment.Store
	priors *priors.PriorStore
	config Config
}

// NewAnalyzer creates an analyzer over the given stores.
func NewAnalyzer(store *experiment.Store, priorStore *priors.PriorStore, config Config) *Analyzer {
	return &Analyzer{store: store, priors: priorStore, config: config}
}

// Run analyzes an experiment end to end and persists the run.
func (a *Analyzer) Run(experimentName string) (RunResult, error) {
	result, err := a.fit(experimentName, nil)
	if err != nil {
		return RunResult{}, err
	}
	if err := a.persist(&result); err != nil {
		return RunResult{}, err
	}
	return result, nil
}

// #endregion analyzer

// #region fit

// fit runs the statistical stages. When maxDay is non-nil only batches
// up to that day are included, which Monitor uses for sequential replay.
func (a *Analyzer) fit(experimentName string, maxDay *int) (RunResult, error) {
	exp, err := a.store.GetExperiment(experimentName)
	if err != nil {
		return RunResult{}, err
	}
	variants, err := a.store.Variants(exp.ID)
	if err != nil {
		return RunResult{}, err
	}
	if len(variants) != 2 {
		return RunResult{}, fmt.Errorf("experiment %s has %d variants, want 2", experimentName, len(variants))
	}

	prior, err := a.priors.Get(a.config.PriorName)
	if err != nil {
		return RunResult{}, err
	}

	result := RunResult{
		RunID:          uuid.New().String(),
		ExperimentName: exp.Name,
		OutcomeLabels:  exp.OutcomeLabels,
		PriorName:      prior.Name,
		CreatedAt:      time.Now().UTC(),
	}

	var ctrSamples [2][]float64
	var revSamples [2][]float64
	fitted := make([]VariantResult, 2)
	for i, v := range variants {
		totals, err := a.totalsUpTo(v.ID, len(exp.OutcomeLabels), maxDay)
		if err != nil {
			return RunResult{}, err
		}
		vr, ctr, rev, err := a.fitVariant(v, totals, exp, prior, uint64(i))
		if err != nil {
			return RunResult{}, fmt.Errorf("variant %s: %w", v.Name, err)
		}
		fitted[i] = vr
		ctrSamples[i] = ctr
		revSamples[i] = rev
	}
	result.Champion = fitted[0]
	result.Challenger = fitted[1]

	// Post-hoc arithmetic on the sample arrays.
	result.diffSamples = posterior.Diff(ctrSamples[0], ctrSamples[1])
	result.liftSamples = posterior.Lift(ctrSamples[0], ctrSamples[1])
	revDiff := posterior.Diff(revSamples[0], revSamples[1])

	if result.Diff, err = posterior.Summarize(result.diffSamples, a.config.Mass); err != nil {
		return RunResult{}, fmt.Errorf("summarize diff: %w", err)
	}
	if result.Lift, err = posterior.Summarize(result.liftSamples, a.config.Mass); err != nil {
		return RunResult{}, fmt.Errorf("summarize lift: %w", err)
	}
	if result.RevenueDiff, err = posterior.Summarize(revDiff, a.config.Mass); err != nil {
		return RunResult{}, fmt.Errorf("summarize revenue diff: %w", err)
	}
	result.ProbBeats = posterior.ProbGreater(ctrSamples[0], ctrSamples[1])
	result.ProbRevLoss = posterior.ProbGreater(revSamples[1], revSamples[0])
	result.PointDiff, result.PointLift = freq.DiffAndLift(result.Champion.MLE, result.Challenger.MLE)

	rule := decision.NewRule(a.config.Decision)
	result.Decision = rule.Evaluate(decision.Input{
		ChampionImpressions:   result.Champion.Totals.Impressions,
		ChallengerImpressions: result.Challenger.Totals.Impressions,
		ChallengerCTR:         result.Challenger.CTR,
		ProbChallengerBeats:   result.ProbBeats,
		MeanLift:              result.Lift.Mean,
		ProbRevenueLoss:       result.ProbRevLoss,
	})
	return result, nil
}

// fitVariant fits both models for one arm and reduces their samples.
func (a *Analyzer) fitVariant(
	v experiment.Variant,
	totals experiment.Totals,
	exp experiment.Experiment,
	prior priors.Prior,
	arm uint64,
) (VariantResult, []float64, []float64, error) {
	mle, err := freq.Variant(totals.Impressions, totals.Clicks, totals.Outcomes, exp.Payoffs, a.config.Level)
	if err != nil {
		return VariantResult{}, nil, nil, err
	}

	ctrCfg := a.config.Engine
	ctrCfg.Seed += arm * variantSeedStride
	ctrChains, err := mcmc.NewEngine(ctrCfg).SampleCTR(mcmc.BetaBinomial{
		PriorAlpha: prior.Alpha,
		PriorBeta:  prior.Beta,
		Trials:     totals.Impressions,
		Successes:  totals.Clicks,
	})
	if err != nil {
		return VariantResult{}, nil, nil, err
	}

	mixCfg := a.config.Engine
	mixCfg.Seed += arm*variantSeedStride + mixSeedOffset
	mixChains, err := mcmc.NewEngine(mixCfg).SampleMix(mcmc.DirichletMultinomial{
		Concentration: prior.ConcentrationFor(len(exp.OutcomeLabels)),
		Counts:        totals.Outcomes,
	})
	if err != nil {
		return VariantResult{}, nil, nil, err
	}

	ctrFlat := ctrChains.Flat()
	mixFlat := mixChains.Flat()
	revenue, err := posterior.Revenue(ctrFlat, mixFlat, exp.Payoffs)
	if err != nil {
		return VariantResult{}, nil, nil, err
	}

	vr := VariantResult{
		Name:        v.Name,
		Role:        v.Role,
		Totals:      totals,
		MLE:         mle,
		Diagnostics: mcmc.Diagnose(ctrChains),
		TrueCTR:     v.TrueCTR,
	}
	if vr.CTR, err = posterior.Summarize(ctrFlat, a.config.Mass); err != nil {
		return VariantResult{}, nil, nil, err
	}
	vr.Mix = make([]posterior.Summary, len(exp.OutcomeLabels))
	for k := range vr.Mix {
		if vr.Mix[k], err = posterior.Summarize(mixChains.Component(k).Flat(), a.config.Mass); err != nil {
			return VariantResult{}, nil, nil, err
		}
	}
	if vr.Revenue, err = posterior.Summarize(revenue, a.config.Mass); err != nil {
		return VariantResult{}, nil, nil, err
	}
	return vr, ctrFlat, revenue, nil
}

func (a *Analyzer) totalsUpTo(variantID string, numOutcomes int, maxDay *int) (experiment.Totals, error) {
	batches, err := a.store.Batches(variantID)
	if err != nil {
		return experiment.Totals{}, err
	}
	t := experiment.Totals{Outcomes: make([]int64, numOutcomes)}
	for _, b := range batches {
		if maxDay != nil && b.Day > *maxDay {
			continue
		}
		t.Add(b)
	}
	if t.Impressions == 0 {
		return experiment.Totals{}, fmt.Errorf("variant %s has no observations", variantID)
	}
	return t, nil
}

// #endregion fit

// #region persist

func (a *Analyzer) persist(result *RunResult) error {
	exp, err := a.store.GetExperiment(result.ExperimentName)
	if err != nil {
		return err
	}
	summaryJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	engineJSON, err := json.Marshal(a.config.Engine)
	if err != nil {
		return fmt.Errorf("marshal engine config: %w", err)
	}
	guardsJSON := ""
	if len(result.Decision.Guards) > 0 {
		b, err := json.Marshal(result.Decision.Guards)
		if err != nil {
			return fmt.Errorf("marshal guards: %w", err)
		}
		guardsJSON = string(b)
	}

	rec := experiment.RunRecord{
		RunID:        result.RunID,
		ExperimentID: exp.ID,
		PriorName:    result.PriorName,
		EngineJSON:   string(engineJSON),
		SummaryJSON:  string(summaryJSON),
		DiffSamples:  result.diffSamples,
		LiftSamples:  result.liftSamples,
		CreatedAt:    result.CreatedAt,
	}
	entry := experiment.RunLogEntry{
		RunID:        result.RunID,
		ExperimentID: exp.ID,
		PriorName:    result.PriorName,
		Decision:     result.Decision.Action,
		Reason:       result.Decision.Reason,
		GuardsJSON:   guardsJSON,
		CreatedAt:    result.CreatedAt,
	}
	if err := a.store.SaveRun(rec, entry); err != nil {
		return fmt.Errorf("persist run: %w", err)
	}
	return nil
}

// #endregion persist
