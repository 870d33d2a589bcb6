package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/decision"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/freq"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/posterior"
)

func makeResult() pipeline.RunResult {
	mkVariant := func(name, role string, ctr float64) pipeline.VariantResult {
		return pipeline.VariantResult{
			Name: name,
			Role: role,
			MLE: freq.VariantMLE{
				Impressions: 10000,
				Clicks:      int64(ctr * 10000),
				CTR:         freq.Estimate{Point: ctr, Low: ctr - 0.004, High: ctr + 0.004},
				Mix:         []float64{0.8, 0.2},
				Revenue:     ctr * 2,
			},
			CTR: posterior.Summary{Mean: ctr, HPDLow: ctr - 0.004, HPDHigh: ctr + 0.004},
			Mix: []posterior.Summary{{Mean: 0.8}, {Mean: 0.2}},
		}
	}
	return pipeline.RunResult{
		RunID:          "run-42",
		ExperimentName: "banner-test",
		OutcomeLabels:  []string{"none", "purchase"},
		PriorName:      "uniform",
		Champion:       mkVariant("A", "champion", 0.04),
		Challenger:     mkVariant("B", "challenger", 0.05),
		Diff:           posterior.Summary{Mean: 0.01},
		Lift:           posterior.Summary{Mean: 0.25},
		ProbBeats:      0.98,
		PointDiff:      0.01,
		PointLift:      0.25,
		Decision: decision.Decision{
			Action: "adopt",
			Reason: "P(B>A)=0.980 with mean lift 0.250",
		},
	}
}

func TestRenderContainsKeyFigures(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, makeResult()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"experiment: banner-test",
		"A (champion)",
		"B (challenger)",
		"0.0400",
		"0.0500",
		"ctr lift",
		"purchase",
		"P(B > A) = 0.980",
		"decision: adopt",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRenderShowsGuards(t *testing.T) {
	r := makeResult()
	r.Decision = decision.Decision{
		Action: "continue",
		Reason: "held: sample floor",
		Held:   true,
		Guards: []decision.Guard{{Type: decision.GuardSampleFloor, Reason: "too few impressions"}},
	}

	var buf bytes.Buffer
	if err := Render(&buf, r); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "guard [sample_floor]") {
		t.Fatalf("output missing guard line:\n%s", buf.String())
	}
}

func TestRenderTrajectory(t *testing.T) {
	points := []pipeline.DayPoint{
		{Day: 1, Impressions: 2000, ChampionCTR: 0.04, ChallengerCTR: 0.05, ProbBeats: 0.7, Action: "continue"},
		{Day: 2, Impressions: 4000, ChampionCTR: 0.04, ChallengerCTR: 0.05, ProbBeats: 0.97, Action: "adopt"},
	}
	var buf bytes.Buffer
	if err := RenderTrajectory(&buf, points); err != nil {
		t.Fatalf("RenderTrajectory: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "adopt") || !strings.Contains(out, "0.970") {
		t.Fatalf("trajectory output incomplete:\n%s", out)
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, makeResult()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if decoded["run_id"] != "run-42" {
		t.Fatalf("expected run_id run-42, got %v", decoded["run_id"])
	}
}
