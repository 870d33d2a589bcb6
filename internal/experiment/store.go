package experiment

import (
	"database/sql"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// #region schema
const schema = `
CREATE TABLE IF NOT EXISTS experiments (
	experiment_id  TEXT PRIMARY KEY,
	name           TEXT NOT NULL UNIQUE,
	outcome_labels TEXT NOT NULL,
	payoffs        TEXT NOT NULL,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS variants (
	variant_id    TEXT PRIMARY KEY,
	experiment_id TEXT NOT NULL,
	name          TEXT NOT NULL,
	role          TEXT NOT NULL,
	true_ctr      REAL,
	true_mix      TEXT,
	created_at    TEXT NOT NULL,
	UNIQUE(experiment_id, name),
	FOREIGN KEY (experiment_id) REFERENCES experiments(experiment_id)
);

CREATE TABLE IF NOT EXISTS batches (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	variant_id  TEXT NOT NULL,
	day         INTEGER NOT NULL,
	impressions INTEGER NOT NULL,
	clicks      INTEGER NOT NULL,
	outcomes    TEXT NOT NULL,
	created_at  TEXT NOT NULL,
	UNIQUE(variant_id, day),
	FOREIGN KEY (variant_id) REFERENCES variants(variant_id)
);

CREATE TABLE IF NOT EXISTS analysis_runs (
	run_id        TEXT PRIMARY KEY,
	experiment_id TEXT NOT NULL,
	prior_name    TEXT NOT NULL,
	engine_json   TEXT NOT NULL,
	summary_json  TEXT NOT NULL,
	diff_samples  BLOB,
	lift_samples  BLOB,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (experiment_id) REFERENCES experiments(experiment_id)
);

CREATE TABLE IF NOT EXISTS run_log (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	experiment_id TEXT NOT NULL,
	prior_name    TEXT NOT NULL,
	decision      TEXT NOT NULL,
	reason        TEXT,
	guards_json   TEXT,
	created_at    TEXT NOT NULL,
	FOREIGN KEY (run_id) REFERENCES analysis_runs(run_id)
);
`
// #endregion schema

// #region store-struct
// Store manages experiments, observations, and analysis runs in SQLite.
type Store struct {
	db *sql.DB
}
// #endregion store-struct

// #region constructor
// NewStore opens a SQLite database and runs migrations.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return nil, fmt.Errorf("pragma fk: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}
// #endregion constructor

// #region close
// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
// #endregion close

// #region db-accessor
// DB returns the underlying *sql.DB for use by other packages (e.g. priors).
func (s *Store) DB() *sql.DB {
	return s.db
}
// #endregion db-accessor

// #region create-experiment
// CreateExperiment inserts an experiment with exactly two variants named
// "A" (champion) and "B" (challenger).
func (s *Store) CreateExperiment(name string, labels []string, payoffs []float64) (Experiment, error) {
	if len(labels) != len(payoffs) {
		return Experiment{}, fmt.Errorf("create experiment: %d labels but %d payoffs", len(labels), len(payoffs))
	}
	exp := Experiment{
		ID:            uuid.New().String(),
		Name:          name,
		OutcomeLabels: labels,
		Payoffs:       payoffs,
		CreatedAt:     time.Now().UTC(),
	}

	labelsJSON, err := json.Marshal(labels)
	if err != nil {
		return Experiment{}, fmt.Errorf("marshal labels: %w", err)
	}
	payoffsJSON, err := json.Marshal(payoffs)
	if err != nil {
		return Experiment{}, fmt.Errorf("marshal payoffs: %w", err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return Experiment{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO experiments (experiment_id, name, outcome_labels, payoffs, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		exp.ID, exp.Name, string(labelsJSON), string(payoffsJSON),
		exp.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Experiment{}, fmt.Errorf("insert experiment: %w", err)
	}

	for _, v := range []struct{ name, role string }{{"A", "champion"}, {"B", "challenger"}} {
		_, err = tx.Exec(
			`INSERT INTO variants (variant_id, experiment_id, name, role, created_at)
			 VALUES (?, ?, ?, ?, ?)`,
			uuid.New().String(), exp.ID, v.name, v.role,
			exp.CreatedAt.Format(time.RFC3339Nano),
		)
		if err != nil {
			return Experiment{}, fmt.Errorf("insert variant %s: %w", v.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Experiment{}, fmt.Errorf("commit: %w", err)
	}
	return exp, nil
}
// #endregion create-experiment

// #region get-experiment
// GetExperiment retrieves an experiment by name.
func (s *Store) GetExperiment(name string) (Experiment, error) {
	var exp Experiment
	var labelsJSON, payoffsJSON, createdStr string

	err := s.db.QueryRow(
		`SELECT experiment_id, name, outcome_labels, payoffs, created_at
		 FROM experiments WHERE name = ?`, name,
	).Scan(&exp.ID, &exp.Name, &labelsJSON, &payoffsJSON, &createdStr)
	if err != nil {
		return Experiment{}, fmt.Errorf("get experiment %s: %w", name, err)
	}

	if err := json.Unmarshal([]byte(labelsJSON), &exp.OutcomeLabels); err != nil {
		return Experiment{}, fmt.Errorf("unmarshal labels: %w", err)
	}
	if err := json.Unmarshal([]byte(payoffsJSON), &exp.Payoffs); err != nil {
		return Experiment{}, fmt.Errorf("unmarshal payoffs: %w", err)
	}
	exp.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return exp, nil
}
// #endregion get-experiment

// #region list-experiments
// ListExperiments returns all experiments, most recent first.
func (s *Store) ListExperiments() ([]Experiment, error) {
	rows, err := s.db.Query(
		`SELECT experiment_id, name, outcome_labels, payoffs, created_at
		 FROM experiments ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list experiments: %w", err)
	}
	defer rows.Close()

	var exps []Experiment
	for rows.Next() {
		var exp Experiment
		var labelsJSON, payoffsJSON, createdStr string
		if err := rows.Scan(&exp.ID, &exp.Name, &labelsJSON, &payoffsJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(labelsJSON), &exp.OutcomeLabels); err != nil {
			return nil, fmt.Errorf("unmarshal labels: %w", err)
		}
		if err := json.Unmarshal([]byte(payoffsJSON), &exp.Payoffs); err != nil {
			return nil, fmt.Errorf("unmarshal payoffs: %w", err)
		}
		exp.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		exps = append(exps, exp)
	}
	return exps, rows.Err()
}
// #endregion list-experiments

// #region variants
// Variants returns the variants of an experiment ordered by name, so the
// champion "A" always precedes the challenger "B".
func (s *Store) Variants(experimentID string) ([]Variant, error) {
	rows, err := s.db.Query(
		`SELECT variant_id, experiment_id, name, role, true_ctr, true_mix, created_at
		 FROM variants WHERE experiment_id = ? ORDER BY name ASC`, experimentID,
	)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()

	var variants []Variant
	for rows.Next() {
		var v Variant
		var trueCTR sql.NullFloat64
		var trueMix sql.NullString
		var createdStr string
		if err := rows.Scan(&v.ID, &v.ExperimentID, &v.Name, &v.Role, &trueCTR, &trueMix, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if trueCTR.Valid {
			ctr := trueCTR.Float64
			v.TrueCTR = &ctr
		}
		if trueMix.Valid {
			if err := json.Unmarshal([]byte(trueMix.String), &v.TrueMix); err != nil {
				return nil, fmt.Errorf("unmarshal true mix: %w", err)
			}
		}
		v.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// SetTrueParams records the generating parameters of a simulated variant.
func (s *Store) SetTrueParams(variantID string, ctr float64, mix []float64) error {
	mixJSON, err := json.Marshal(mix)
	if err != nil {
		return fmt.Errorf("marshal true mix: %w", err)
	}
	_, err = s.db.Exec(
		`UPDATE variants SET true_ctr = ?, true_mix = ? WHERE variant_id = ?`,
		ctr, string(mixJSON), variantID,
	)
	if err != nil {
		return fmt.Errorf("set true params: %w", err)
	}
	return nil
}
// #endregion variants

// #region record-batch
// RecordBatch appends one day of observations for a variant.
func (s *Store) RecordBatch(b Batch) error {
	if b.Clicks > b.Impressions {
		return fmt.Errorf("record batch: %d clicks exceed %d impressions", b.Clicks, b.Impressions)
	}
	var sum int64
	for _, n := range b.Outcomes {
		if n < 0 {
			return fmt.Errorf("record batch: negative outcome count %d", n)
		}
		sum += n
	}
	if sum != b.Clicks {
		return fmt.Errorf("record batch: outcome counts sum to %d, want %d clicks", sum, b.Clicks)
	}

	outcomesJSON, err := json.Marshal(b.Outcomes)
	if err != nil {
		return fmt.Errorf("marshal outcomes: %w", err)
	}
	created := b.CreatedAt
	if created.IsZero() {
		created = time.Now().UTC()
	}
	_, err = s.db.Exec(
		`INSERT INTO batches (variant_id, day, impressions, clicks, outcomes, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.VariantID, b.Day, b.Impressions, b.Clicks, string(outcomesJSON),
		created.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert batch: %w", err)
	}
	return nil
}
// #endregion record-batch

// #region batches
// Batches returns all batches for a variant in day order.
func (s *Store) Batches(variantID string) ([]Batch, error) {
	rows, err := s.db.Query(
		`SELECT id, variant_id, day, impressions, clicks, outcomes, created_at
		 FROM batches WHERE variant_id = ? ORDER BY day ASC`, variantID,
	)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var batches []Batch
	for rows.Next() {
		var b Batch
		var outcomesJSON, createdStr string
		if err := rows.Scan(&b.ID, &b.VariantID, &b.Day, &b.Impressions, &b.Clicks, &outcomesJSON, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if err := json.Unmarshal([]byte(outcomesJSON), &b.Outcomes); err != nil {
			return nil, fmt.Errorf("unmarshal outcomes: %w", err)
		}
		b.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		batches = append(batches, b)
	}
	return batches, rows.Err()
}

// VariantTotals folds every batch of a variant into cumulative totals.
func (s *Store) VariantTotals(variantID string, numOutcomes int) (Totals, error) {
	batches, err := s.Batches(variantID)
	if err != nil {
		return Totals{}, err
	}
	t := Totals{Outcomes: make([]int64, numOutcomes)}
	for _, b := range batches {
		t.Add(b)
	}
	return t, nil
}
// #endregion batches

// #region save-run
// SaveRun inserts an analysis run and its provenance entry atomically.
func (s *Store) SaveRun(rec RunRecord, entry RunLogEntry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO analysis_runs (run_id, experiment_id, prior_name, engine_json, summary_json, diff_samples, lift_samples, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.ExperimentID, rec.PriorName, rec.EngineJSON, rec.SummaryJSON,
		encodeSamples(rec.DiffSamples), encodeSamples(rec.LiftSamples),
		rec.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO run_log (run_id, experiment_id, prior_name, decision, reason, guards_json, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		entry.RunID, entry.ExperimentID, entry.PriorName, entry.Decision,
		nullIfEmpty(entry.Reason), nullIfEmpty(entry.GuardsJSON),
		entry.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert run log: %w", err)
	}

	return tx.Commit()
}
// #endregion save-run

// #region get-run
// GetRun retrieves a single analysis run by ID.
func (s *Store) GetRun(runID string) (RunRecord, error) {
	var rec RunRecord
	var diffBlob, liftBlob []byte
	var createdStr string

	err := s.db.QueryRow(
		`SELECT run_id, experiment_id, prior_name, engine_json, summary_json, diff_samples, lift_samples, created_at
		 FROM analysis_runs WHERE run_id = ?`, runID,
	).Scan(&rec.RunID, &rec.ExperimentID, &rec.PriorName, &rec.EngineJSON,
		&rec.SummaryJSON, &diffBlob, &liftBlob, &createdStr)
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run %s: %w", runID, err)
	}
	rec.DiffSamples = decodeSamples(diffBlob)
	rec.LiftSamples = decodeSamples(liftBlob)
	rec.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return rec, nil
}

// ListRuns returns the most recent runs for an experiment, summaries only.
func (s *Store) ListRuns(experimentID string, limit int) ([]RunLogEntry, error) {
	rows, err := s.db.Query(
		`SELECT run_id, experiment_id, prior_name, decision, reason, guards_json, created_at
		 FROM run_log WHERE experiment_id = ? ORDER BY created_at DESC LIMIT ?`,
		experimentID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	var entries []RunLogEntry
	for rows.Next() {
		var e RunLogEntry
		var reason, guards sql.NullString
		var createdStr string
		if err := rows.Scan(&e.RunID, &e.ExperimentID, &e.PriorName, &e.Decision, &reason, &guards, &createdStr); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		if reason.Valid {
			e.Reason = reason.String
		}
		if guards.Valid {
			e.GuardsJSON = guards.String
		}
		e.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
// #endregion get-run

// #region sample-encoding
func encodeSamples(v []float64) []byte {
	buf := make([]byte, len(v)*8)
	for i, f := range v {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(f))
	}
	return buf
}

func decodeSamples(b []byte) []float64 {
	v := make([]float64, len(b)/8)
	for i := range v {
		v[i] = math.Float64frombits(binary.LittleEndian.Uint64(b[i*8:]))
	}
	return v
}
// #endregion sample-encoding

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
// #endregion helpers
