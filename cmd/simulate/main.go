package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/simulate"
)

// #region main

func main() {
	dbPath := flag.String("db", "banner_bayes.db", "path to banner_bayes.db")
	name := flag.String("name", "simulated", "experiment name")
	days := flag.Int("days", 14, "number of days to simulate")
	impressions := flag.Float64("impressions", 5000, "mean daily impressions per variant")
	seed := flag.Uint64("seed", 1, "random seed")
	ctrA := flag.Float64("ctr-a", 0.04, "true CTR of champion A")
	ctrB := flag.Float64("ctr-b", 0.05, "true CTR of challenger B")
	labels := flag.String("labels", "none,signup,purchase", "comma-separated outcome labels")
	payoffs := flag.String("payoffs", "0,1.5,20", "comma-separated payoff per outcome")
	mixA := flag.String("mix-a", "0.75,0.18,0.07", "true conversion mix of A")
	mixB := flag.String("mix-b", "0.7,0.2,0.1", "true conversion mix of B")
	flag.Parse()

	opts := options{
		dbPath: *dbPath,
		name:   *name,
		config: simulate.Config{Days: *days, MeanImpressions: *impressions, Seed: *seed},
		labels: strings.Split(*labels, ","),
	}

	var err error
	if opts.payoffs, err = parseFloats(*payoffs); err != nil {
		fmt.Fprintf(os.Stderr, "bad --payoffs: %v\n", err)
		os.Exit(2)
	}
	var mixAVals, mixBVals []float64
	if mixAVals, err = parseFloats(*mixA); err != nil {
		fmt.Fprintf(os.Stderr, "bad --mix-a: %v\n", err)
		os.Exit(2)
	}
	if mixBVals, err = parseFloats(*mixB); err != nil {
		fmt.Fprintf(os.Stderr, "bad --mix-b: %v\n", err)
		os.Exit(2)
	}
	opts.params = map[string]simulate.VariantParams{
		"A": {CTR: *ctrA, Mix: mixAVals},
		"B": {CTR: *ctrB, Mix: mixBVals},
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	dbPath  string
	name    string
	config  simulate.Config
	labels  []string
	payoffs []float64
	params  map[string]simulate.VariantParams
}

// #endregion main

// #region run

func run(opts options) error {
	store, err := experiment.NewStore(opts.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()

	exp, err := store.CreateExperiment(opts.name, opts.labels, opts.payoffs)
	if err != nil {
		return err
	}
	variants, err := store.Variants(exp.ID)
	if err != nil {
		return err
	}

	for i, v := range variants {
		params, ok := opts.params[v.Name]
		if !ok {
			return fmt.Errorf("no parameters for variant %s", v.Name)
		}

		// Distinct stream per arm, reproducible from the base seed.
		cfg := opts.config
		cfg.Seed += uint64(i) * 7919
		sim, err := simulate.NewSimulator(cfg)
		if err != nil {
			return err
		}
		logs, err := sim.Run(params)
		if err != nil {
			return fmt.Errorf("simulate variant %s: %w", v.Name, err)
		}

		var impressions, clicks int64
		for _, d := range logs {
			err := store.RecordBatch(experiment.Batch{
				VariantID:   v.ID,
				Day:         d.Day,
				Impressions: d.Impressions,
				Clicks:      d.Clicks,
				Outcomes:    d.Outcomes,
			})
			if err != nil {
				return fmt.Errorf("record %s day %d: %w", v.Name, d.Day, err)
			}
			impressions += d.Impressions
			clicks += d.Clicks
		}
		if err := store.SetTrueParams(v.ID, params.CTR, params.Mix); err != nil {
			return err
		}

		fmt.Printf("%s (%s): %d days, %d impressions, %d clicks (true ctr %.4f)\n",
			v.Name, v.Role, opts.config.Days, impressions, clicks, params.CTR)
	}

	fmt.Printf("experiment %q written to %s\n", opts.name, opts.dbPath)
	return nil
}

// #endregion run

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
