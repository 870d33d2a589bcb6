package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/ingest"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/priors"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/report"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to banner_bayes.db (DB mode)")
	fixturePath := flag.String("fixture", "", "path to CSV banner log (fixture mode)")
	name := flag.String("experiment", "", "experiment name (DB mode)")
	prior := flag.String("prior", "uniform", "prior preset name")
	payoffs := flag.String("payoffs", "", "comma-separated payoffs (fixture mode)")
	seed := flag.Uint64("seed", 1, "sampling seed")
	monitor := flag.Bool("monitor", false, "print the day-by-day decision trajectory")
	jsonOut := flag.Bool("json", false, "output as JSON instead of tables")
	flag.Parse()

	if (*dbPath == "" && *fixturePath == "") || (*dbPath != "" && *fixturePath != "") {
		fmt.Fprintln(os.Stderr, "usage: analyze --db path/to/banner_bayes.db --experiment name")
		fmt.Fprintln(os.Stderr, "       analyze --fixture path/to/log.csv --payoffs 0,1.5,20")
		os.Exit(2)
	}

	var exitCode int
	if *fixturePath != "" {
		exitCode = runFixtureMode(*fixturePath, *payoffs, *prior, *seed, *monitor, *jsonOut)
	} else {
		exitCode = runDBMode(*dbPath, *name, *prior, *seed, *monitor, *jsonOut)
	}
	os.Exit(exitCode)
}

// #endregion main

// #region db-mode

func runDBMode(dbPath, name, prior string, seed uint64, monitor, jsonOut bool) int {
	if name == "" {
		fmt.Fprintln(os.Stderr, "DB mode requires --experiment")
		return 2
	}
	store, err := experiment.NewStore(dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		return 2
	}
	defer store.Close()

	return analyze(store, name, prior, seed, monitor, jsonOut)
}

// #endregion db-mode

// #region fixture-mode

// runFixtureMode loads a CSV log into a throwaway in-memory database and
// analyzes it. The variant named first in the log becomes the champion.
func runFixtureMode(fixturePath, payoffsFlag, prior string, seed uint64, monitor, jsonOut bool) int {
	f, err := os.Open(fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open fixture: %v\n", err)
		return 2
	}
	defer f.Close()

	log, err := ingest.ReadLog(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse fixture: %v\n", err)
		return 2
	}

	payoffs := make([]float64, len(log.OutcomeLabels))
	if payoffsFlag != "" {
		if payoffs, err = parseFloats(payoffsFlag); err != nil {
			fmt.Fprintf(os.Stderr, "bad --payoffs: %v\n", err)
			return 2
		}
		if len(payoffs) != len(log.OutcomeLabels) {
			fmt.Fprintf(os.Stderr, "%d payoffs for %d outcome columns\n", len(payoffs), len(log.OutcomeLabels))
			return 2
		}
	}

	store, err := experiment.NewStore(":memory:")
	if err != nil {
		fmt.Fprintf(os.Stderr, "open in-memory db: %v\n", err)
		return 2
	}
	defer store.Close()

	exp, err := store.CreateExperiment("fixture", log.OutcomeLabels, payoffs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create experiment: %v\n", err)
		return 2
	}
	variants, err := store.Variants(exp.ID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "variants: %v\n", err)
		return 2
	}

	grouped := log.ByVariant()
	if len(grouped) != 2 {
		fmt.Fprintf(os.Stderr, "fixture has %d variants, want 2\n", len(grouped))
		return 2
	}
	ids := map[string]string{}
	for i, logName := range variantOrder(log) {
		ids[logName] = variants[i].ID
	}
	for logName, rows := range grouped {
		for _, row := range rows {
			err := store.RecordBatch(experiment.Batch{
				VariantID:   ids[logName],
				Day:         row.Day,
				Impressions: row.Impressions,
				Clicks:      row.Clicks,
				Outcomes:    row.Outcomes,
			})
			if err != nil {
				fmt.Fprintf(os.Stderr, "record %s day %d: %v\n", logName, row.Day, err)
				return 2
			}
		}
	}

	return analyze(store, "fixture", prior, seed, monitor, jsonOut)
}

// variantOrder returns the variant names in first-appearance order.
func variantOrder(log ingest.Log) []string {
	var order []string
	seen := map[string]bool{}
	for _, row := range log.Rows {
		if !seen[row.Variant] {
			seen[row.Variant] = true
			order = append(order, row.Variant)
		}
	}
	return order
}

// #endregion fixture-mode

// #region analyze

func analyze(store *experiment.Store, name, prior string, seed uint64, monitor, jsonOut bool) int {
	priorStore, err := priors.NewPriorStore(store.DB())
	if err != nil {
		fmt.Fprintf(os.Stderr, "prior store: %v\n", err)
		return 1
	}
	if err := priorStore.SeedDefaults(); err != nil {
		fmt.Fprintf(os.Stderr, "seed priors: %v\n", err)
		return 1
	}

	cfg := pipeline.DefaultConfig()
	cfg.PriorName = prior
	cfg.Engine.Seed = seed
	analyzer := pipeline.NewAnalyzer(store, priorStore, cfg)

	if monitor {
		points, err := analyzer.Monitor(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "monitor: %v\n", err)
			return 1
		}
		if jsonOut {
			if err := report.WriteJSON(os.Stdout, points); err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				return 1
			}
			return 0
		}
		if err := report.RenderTrajectory(os.Stdout, points); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}

	result, err := analyzer.Run(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "analyze: %v\n", err)
		return 1
	}
	if jsonOut {
		if err := report.WriteJSON(os.Stdout, result); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return 1
		}
		return 0
	}
	if err := report.Render(os.Stdout, result); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

// #endregion analyze

// #region helpers

func parseFloats(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", p)
		}
		out[i] = v
	}
	return out, nil
}

// #endregion helpers
