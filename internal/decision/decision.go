// Package decision turns posterior summaries for two banner variants into
// an adopt/keep/continue call with explicit guard reasons.
package decision

import (
	"fmt"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/posterior"
)

// #region config

// Config holds the thresholds for the champion/challenger rule.
type Config struct {
	// ProbToBeat is the posterior probability the challenger must reach.
	ProbToBeat float64
	// MinLift is the minimum posterior-mean relative CTR lift.
	MinLift float64
	// MinImpressions is the per-variant sample floor before any call is made.
	MinImpressions int64
	// MaxIntervalWidth caps the challenger's CTR HPD width; wider means the
	// posterior is still too diffuse to act on.
	MaxIntervalWidth float64
	// MaxRevenueDownside is the largest acceptable posterior probability
	// that the challenger loses revenue per impression.
	MaxRevenueDownside float64
}

// DefaultConfig returns the standard decision thresholds.
func DefaultConfig() Config {
	return Config{
		ProbToBeat:         0.95,
		MinLift:            0.02,
		MinImpressions:     1000,
		MaxIntervalWidth:   0.02,
		MaxRevenueDownside: 0.20,
	}
}

// #endregion config

// #region types

// GuardType labels why a decision was held back.
type GuardType string

const (
	GuardSampleFloor   GuardType = "sample_floor"
	GuardIntervalWidth GuardType = "interval_width"
	GuardRevenueRisk   GuardType = "revenue_risk"
)

// Guard is one tripped hold-back condition.
type Guard struct {
	Type   GuardType `json:"type"`
	Reason string    `json:"reason"`
}

// Input bundles the posterior evidence the rule acts on.
type Input struct {
	ChampionImpressions   int64
	ChallengerImpressions int64
	ChallengerCTR         posterior.Summary
	// ProbChallengerBeats is the sample-wise P(CTR_B > CTR_A).
	ProbChallengerBeats float64
	// MeanLift is the mean of the sample-wise lift array.
	MeanLift float64
	// ProbRevenueLoss is the sample-wise P(revenue_B < revenue_A).
	ProbRevenueLoss float64
}

// Decision is the outcome of one evaluation.
type Decision struct {
	Action string  `json:"action"` // "adopt" | "keep" | "continue"
	Reason string  `json:"reason"`
	Held   bool    `json:"held"`
	Guards []Guard `json:"guards,omitempty"`
}

// #endregion types

// #region rule

// Rule evaluates challenger evidence against configured thresholds.
type Rule struct {
	config Config
}

// NewRule creates a rule with the given configuration.
func NewRule(config Config) *Rule {
	return &Rule{config: config}
}

// Evaluate checks hold-back guards first, then applies the adopt/keep call.
func (r *Rule) Evaluate(in Input) Decision {
	var guards []Guard

	// --- Guard pass ---

	// 1. Sample floor on both arms
	if in.ChampionImpressions < r.config.MinImpressions || in.ChallengerImpressions < r.config.MinImpressions {
		guards = append(guards, Guard{
			Type: GuardSampleFloor,
			Reason: fmt.Sprintf("impressions %d/%d below floor %d",
				in.ChampionImpressions, in.ChallengerImpressions, r.config.MinImpressions),
		})
	}

	// 2. Posterior still too diffuse
	width := in.ChallengerCTR.HPDHigh - in.ChallengerCTR.HPDLow
	if width > r.config.MaxIntervalWidth {
		guards = append(guards, Guard{
			Type:   GuardIntervalWidth,
			Reason: fmt.Sprintf("challenger HPD width %.4f exceeds cap %.4f", width, r.config.MaxIntervalWidth),
		})
	}

	// 3. Revenue downside risk
	if in.ProbRevenueLoss > r.config.MaxRevenueDownside {
		guards = append(guards, Guard{
			Type:   GuardRevenueRisk,
			Reason: fmt.Sprintf("P(revenue loss) %.3f exceeds cap %.3f", in.ProbRevenueLoss, r.config.MaxRevenueDownside),
		})
	}

	// Any tripped guard holds the experiment open
	if len(guards) > 0 {
		return Decision{
			Action: "continue",
			Reason: fmt.Sprintf("held: %s", guards[0].Reason),
			Held:   true,
			Guards: guards,
		}
	}

	// --- Adopt/keep call ---

	if in.ProbChallengerBeats >= r.config.ProbToBeat && in.MeanLift >= r.config.MinLift {
		return Decision{
			Action: "adopt",
			Reason: fmt.Sprintf("P(B>A)=%.3f with mean lift %.3f", in.ProbChallengerBeats, in.MeanLift),
		}
	}
	if in.ProbChallengerBeats <= 1-r.config.ProbToBeat {
		return Decision{
			Action: "keep",
			Reason: fmt.Sprintf("challenger credibly worse: P(B>A)=%.3f", in.ProbChallengerBeats),
		}
	}
	return Decision{
		Action: "continue",
		Reason: fmt.Sprintf("inconclusive: P(B>A)=%.3f, mean lift %.3f", in.ProbChallengerBeats, in.MeanLift),
	}
}

// #endregion rule
