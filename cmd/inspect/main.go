package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/report"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to banner_bayes.db")
	last := flag.Int("last", 20, "show N most recent runs per experiment")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/banner_bayes.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := experiment.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	Experiment  string `json:"experiment"`
	Impressions int64  `json:"impressions"`
	Clicks      int64  `json:"clicks"`
	RunID       string `json:"run_id,omitempty"`
	Prior       string `json:"prior,omitempty"`
	Decision    string `json:"decision,omitempty"`
	Reason      string `json:"reason,omitempty"`
	RunAt       string `json:"run_at,omitempty"`
}

func runListMode(store *experiment.Store, last int, jsonOut bool) error {
	exps, err := store.ListExperiments()
	if err != nil {
		return err
	}
	if len(exps) == 0 {
		fmt.Fprintln(os.Stderr, "no experiments found")
		return nil
	}

	var rows []listRow
	for _, exp := range exps {
		variants, err := store.Variants(exp.ID)
		if err != nil {
			return err
		}
		var impressions, clicks int64
		for _, v := range variants {
			t, err := store.VariantTotals(v.ID, len(exp.OutcomeLabels))
			if err != nil {
				return err
			}
			impressions += t.Impressions
			clicks += t.Clicks
		}

		runs, err := store.ListRuns(exp.ID, last)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			rows = append(rows, listRow{Experiment: exp.Name, Impressions: impressions, Clicks: clicks})
			continue
		}
		for _, r := range runs {
			rows = append(rows, listRow{
				Experiment:  exp.Name,
				Impressions: impressions,
				Clicks:      clicks,
				RunID:       shortID(r.RunID),
				Prior:       r.PriorName,
				Decision:    r.Decision,
				Reason:      r.Reason,
				RunAt:       r.CreatedAt.Format("2006-01-02T15:04:05Z"),
			})
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "experiment\timpressions\tclicks\trun\tprior\tdecision\tat")
	for _, r := range rows {
		run := r.RunID
		if run == "" {
			run = "-"
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%s\t%s\t%s\t%s\n",
			r.Experiment, r.Impressions, r.Clicks, run, r.Prior, r.Decision, r.RunAt)
	}
	return tw.Flush()
}

// #endregion list-mode

// #region detail-mode

func runDetailMode(store *experiment.Store, runID string, jsonOut bool) error {
	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	var result pipeline.RunResult
	if err := json.Unmarshal([]byte(rec.SummaryJSON), &result); err != nil {
		return fmt.Errorf("decode run summary: %w", err)
	}

	if jsonOut {
		return printJSON(result)
	}
	return report.Render(os.Stdout, result)
}

// #endregion detail-mode

// #region output

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
