// Package report renders analysis results as text tables or JSON.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
)

// #region render

// Render writes the side-by-side MLE vs posterior comparison as text.
func Render(w io.Writer, result pipeline.RunResult) error {
	fmt.Fprintf(w, "experiment: %s   prior: %s   run: %s\n\n",
		result.ExperimentName, result.PriorName, result.RunID)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "variant\timpressions\tclicks\tMLE ctr\twald 95%\tpost mean\thpd\tR-hat\tESS")
	for _, v := range []pipeline.VariantResult{result.Champion, result.Challenger} {
		fmt.Fprintf(tw, "%s (%s)\t%d\t%d\t%.4f\t[%.4f, %.4f]\t%.4f\t[%.4f, %.4f]\t%.3f\t%.0f\n",
			v.Name, v.Role,
			v.Totals.Impressions, v.Totals.Clicks,
			v.MLE.CTR.Point, v.MLE.CTR.Low, v.MLE.CTR.High,
			v.CTR.Mean, v.CTR.HPDLow, v.CTR.HPDHigh,
			v.Diagnostics.RHat, v.Diagnostics.ESS)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush variant table: %w", err)
	}

	fmt.Fprintln(w)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "quantity\tpoint\tpost mean\thpd")
	fmt.Fprintf(tw, "ctr diff (B-A)\t%.4f\t%.4f\t[%.4f, %.4f]\n",
		result.PointDiff, result.Diff.Mean, result.Diff.HPDLow, result.Diff.HPDHigh)
	fmt.Fprintf(tw, "ctr lift\t%.4f\t%.4f\t[%.4f, %.4f]\n",
		result.PointLift, result.Lift.Mean, result.Lift.HPDLow, result.Lift.HPDHigh)
	fmt.Fprintf(tw, "revenue diff\t%.4f\t%.4f\t[%.4f, %.4f]\n",
		result.Challenger.MLE.Revenue-result.Champion.MLE.Revenue,
		result.RevenueDiff.Mean, result.RevenueDiff.HPDLow, result.RevenueDiff.HPDHigh)
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush comparison table: %w", err)
	}

	fmt.Fprintln(w)
	renderMix(w, result)

	fmt.Fprintf(w, "\nP(B > A) = %.3f   P(revenue loss) = %.3f\n", result.ProbBeats, result.ProbRevLoss)
	fmt.Fprintf(w, "decision: %s (%s)\n", result.Decision.Action, result.Decision.Reason)
	for _, g := range result.Decision.Guards {
		fmt.Fprintf(w, "  guard [%s]: %s\n", g.Type, g.Reason)
	}
	return nil
}

func renderMix(w io.Writer, result pipeline.RunResult) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "outcome\tA mle\tA post\tB mle\tB post")
	for k, label := range result.OutcomeLabels {
		fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			label,
			result.Champion.MLE.Mix[k], result.Champion.Mix[k].Mean,
			result.Challenger.MLE.Mix[k], result.Challenger.Mix[k].Mean)
	}
	tw.Flush()
}

// #endregion render

// #region trajectory

// RenderTrajectory writes the sequential monitoring table.
func RenderTrajectory(w io.Writer, points []pipeline.DayPoint) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "day\timpressions\tA ctr\tB ctr\tP(B>A)\taction")
	for _, p := range points {
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%.3f\t%s\n",
			p.Day, p.Impressions, p.ChampionCTR, p.ChallengerCTR, p.ProbBeats, p.Action)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("flush trajectory table: %w", err)
	}
	return nil
}

// #endregion trajectory

// #region json

// WriteJSON writes the result as indented JSON.
func WriteJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

// #endregion json
