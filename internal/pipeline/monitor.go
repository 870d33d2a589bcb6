package pipeline

import "fmt"

// #region types

// DayPoint is the posterior trajectory sample after one day of data.
type DayPoint struct {
	Day           int     `json:"day"`
	Impressions   int64   `json:"impressions"` // both arms combined
	ChampionCTR   float64 `json:"champion_ctr"`
	ChallengerCTR float64 `json:"challenger_ctr"`
	ProbBeats     float64 `json:"prob_challenger_beats"`
	Action        string  `json:"action"`
}

// #endregion types

// #region monitor

// Monitor replays the stored batches day by day, refitting after each day
// and recording the decision trajectory. Runs are not persisted; this is a
// read-only view of how the call would have evolved.
func (a *Analyzer) Monitor(experimentName string) ([]DayPoint, error) {
	exp, err := a.store.GetExperiment(experimentName)
	if err != nil {
		return nil, err
	}
	variants, err := a.store.Variants(exp.ID)
	if err != nil {
		return nil, err
	}

	lastDay := 0
	for _, v := range variants {
		batches, err := a.store.Batches(v.ID)
		if err != nil {
			return nil, err
		}
		for _, b := range batches {
			if b.Day > lastDay {
				lastDay = b.Day
			}
		}
	}
	if lastDay == 0 {
		return nil, fmt.Errorf("experiment %s has no batches to replay", experimentName)
	}

	var points []DayPoint
	for day := 1; day <= lastDay; day++ {
		d := day
		result, err := a.fit(experimentName, &d)
		if err != nil {
			// Early days may have no data yet for one arm; skip them.
			continue
		}
		points = append(points, DayPoint{
			Day:           day,
			Impressions:   result.Champion.Totals.Impressions + result.Challenger.Totals.Impressions,
			ChampionCTR:   result.Champion.CTR.Mean,
			ChallengerCTR: result.Challenger.CTR.Mean,
			ProbBeats:     result.ProbBeats,
			Action:        result.Decision.Action,
		})
	}
	if len(points) == 0 {
		return nil, fmt.Errorf("experiment %s produced no fittable days", experimentName)
	}
	return points, nil
}

// #endregion monitor
