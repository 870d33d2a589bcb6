package decision

import (
	"testing"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/posterior"
)

func makeInput() Input {
	return Input{
		ChampionImpressions:   50000,
		ChallengerImpressions: 50000,
		ChallengerCTR: posterior.Summary{
			HPDLow:  0.048,
			HPDHigh: 0.054,
		},
		ProbChallengerBeats: 0.98,
		MeanLift:            0.12,
		ProbRevenueLoss:     0.02,
	}
}

func TestAdoptOnStrongEvidence(t *testing.T) {
	r := NewRule(DefaultConfig())
	d := r.Evaluate(makeInput())

	if d.Action != "adopt" {
		t.Fatalf("expected adopt, got %s: %s", d.Action, d.Reason)
	}
	if d.Held {
		t.Fatal("should not be held")
	}
}

func TestKeepWhenChallengerCrediblyWorse(t *testing.T) {
	in := makeInput()
	in.ProbChallengerBeats = 0.01
	in.MeanLift = -0.1

	d := NewRule(DefaultConfig()).Evaluate(in)
	if d.Action != "keep" {
		t.Fatalf("expected keep, got %s: %s", d.Action, d.Reason)
	}
}

func TestContinueWhenInconclusive(t *testing.T) {
	in := makeInput()
	in.ProbChallengerBeats = 0.6

	d := NewRule(DefaultConfig()).Evaluate(in)
	if d.Action != "continue" {
		t.Fatalf("expected continue, got %s", d.Action)
	}
	if d.Held {
		t.Fatal("inconclusive is not a guard hold")
	}
}

func TestContinueOnLowLiftDespiteHighProb(t *testing.T) {
	in := makeInput()
	in.MeanLift = 0.001

	d := NewRule(DefaultConfig()).Evaluate(in)
	if d.Action != "continue" {
		t.Fatalf("expected continue below minimum lift, got %s", d.Action)
	}
}

func TestGuardSampleFloor(t *testing.T) {
	in := makeInput()
	in.ChallengerImpressions = 200

	d := NewRule(DefaultConfig()).Evaluate(in)
	if d.Action != "continue" || !d.Held {
		t.Fatalf("expected held continue, got %+v", d)
	}
	if len(d.Guards) == 0 || d.Guards[0].Type != GuardSampleFloor {
		t.Fatalf("expected sample floor guard, got %+v", d.Guards)
	}
}

func TestGuardIntervalWidth(t *testing.T) {
	in := makeInput()
	in.ChallengerCTR.HPDLow = 0.01
	in.ChallengerCTR.HPDHigh = 0.09

	d := NewRule(DefaultConfig()).Evaluate(in)
	if !d.Held {
		t.Fatal("expected hold for diffuse posterior")
	}
	if d.Guards[0].Type != GuardIntervalWidth {
		t.Fatalf("expected interval width guard, got %s", d.Guards[0].Type)
	}
}

func TestGuardRevenueRisk(t *testing.T) {
	in := makeInput()
	in.ProbRevenueLoss = 0.4

	d := NewRule(DefaultConfig()).Evaluate(in)
	if !d.Held {
		t.Fatal("expected hold for revenue risk")
	}
	if d.Guards[0].Type != GuardRevenueRisk {
		t.Fatalf("expected revenue risk guard, got %s", d.Guards[0].Type)
	}
}

func TestMultipleGuardsReported(t *testing.T) {
	in := makeInput()
	in.ChampionImpressions = 10
	in.ProbRevenueLoss = 0.9

	d := NewRule(DefaultConfig()).Evaluate(in)
	if len(d.Guards) != 2 {
		t.Fatalf("expected 2 guards, got %d", len(d.Guards))
	}
}
