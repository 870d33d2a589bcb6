package priors

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// #region types

// Prior is a named prior configuration for the click and conversion models.
type Prior struct {
	Name string
	// Alpha and Beta parameterize the Beta prior on CTR.
	Alpha float64
	Beta  float64
	// Concentration parameterizes the Dirichlet prior on the conversion mix.
	// When shorter than the experiment's outcome count it is cycled; a
	// single element therefore means a symmetric Dirichlet.
	Concentration []float64
	Description   string
	CreatedAt     time.Time
}

// ConcentrationFor expands the stored concentration to k components.
func (p Prior) ConcentrationFor(k int) []float64 {
	out := make([]float64, k)
	for i := range out {
		out[i] = p.Concentration[i%len(p.Concentration)]
	}
	return out
}

// #endregion types

// #region store

// PriorStore manages named prior presets in SQLite.
type PriorStore struct {
	db *sql.DB
}

// NewPriorStore creates the priors table if needed and returns a store.
func NewPriorStore(db *sql.DB) (*PriorStore, error) {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS priors (
		name          TEXT PRIMARY KEY,
		alpha         REAL NOT NULL,
		beta          REAL NOT NULL,
		concentration TEXT NOT NULL,
		description   TEXT,
		created_at    TEXT NOT NULL
	)`)
	if err != nil {
		return nil, fmt.Errorf("create priors table: %w", err)
	}
	return &PriorStore{db: db}, nil
}

// Put stores a prior preset, replacing any existing preset with the same name.
func (s *PriorStore) Put(p Prior) error {
	if p.Alpha <= 0 || p.Beta <= 0 {
		return fmt.Errorf("prior %s: alpha and beta must be positive", p.Name)
	}
	if len(p.Concentration) == 0 {
		return fmt.Errorf("prior %s: empty concentration", p.Name)
	}
	for _, c := range p.Concentration {
		if c <= 0 {
			return fmt.Errorf("prior %s: concentration must be positive", p.Name)
		}
	}
	concJSON, err := json.Marshal(p.Concentration)
	if err != nil {
		return fmt.Errorf("marshal concentration: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO priors (name, alpha, beta, concentration, description, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   alpha = excluded.alpha,
		   beta = excluded.beta,
		   concentration = excluded.concentration,
		   description = excluded.description`,
		p.Name, p.Alpha, p.Beta, string(concJSON), p.Description,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert prior: %w", err)
	}
	return nil
}

// Get retrieves a prior preset by name.
func (s *PriorStore) Get(name string) (Prior, error) {
	var p Prior
	var concJSON string
	var desc sql.NullString
	var createdStr string

	err := s.db.QueryRow(
		`SELECT name, alpha, beta, concentration, description, created_at
		 FROM priors WHERE name = ?`, name,
	).Scan(&p.Name, &p.Alpha, &p.Beta, &concJSON, &desc, &createdStr)
	if err != nil {
		return Prior{}, fmt.Errorf("get prior %s: %w", name, err)
	}
	if err := json.Unmarshal([]byte(concJSON), &p.Concentration); err != nil {
		return Prior{}, fmt.Errorf("unmarshal concentration: %w", err)
	}
	if desc.Valid {
		p.Description = desc.String
	}
	p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
	return p, nil
}

// List returns all prior presets ordered by name.
func (s *PriorStore) List() ([]Prior, error) {
	rows, err := s.db.Query(
		`SELECT name, alpha, beta, concentration, description, created_at FROM priors ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list priors: %w", err)
	}
	defer rows.Close()

	var out []Prior
	for rows.Next() {
		var p Prior
		var concJSON string
		var desc sql.NullString
		var createdStr string
		if err := rows.Scan(&p.Name, &p.Alpha, &p.Beta, &concJSON, &desc, &createdStr); err != nil {
			return nil, fmt.Errorf("scan prior: %w", err)
		}
		if err := json.Unmarshal([]byte(concJSON), &p.Concentration); err != nil {
			return nil, fmt.Errorf("unmarshal concentration: %w", err)
		}
		if desc.Valid {
			p.Description = desc.String
		}
		p.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		out = append(out, p)
	}
	return out, rows.Err()
}

// #endregion store

// #region defaults

// Defaults are the built-in prior presets.
func Defaults() []Prior {
	return []Prior{
		{
			Name:          "uniform",
			Alpha:         1, Beta: 1,
			Concentration: []float64{1},
			Description:   "flat Beta(1,1) on CTR, symmetric Dirichlet(1) on mix",
		},
		{
			Name:          "jeffreys",
			Alpha:         0.5, Beta: 0.5,
			Concentration: []float64{0.5},
			Description:   "Jeffreys Beta(1/2,1/2) on CTR, Dirichlet(1/2) on mix",
		},
		{
			Name:          "weak-ctr",
			Alpha:         2, Beta: 50,
			Concentration: []float64{1},
			Description:   "weakly informative: centers CTR near 4%",
		},
	}
}

// SeedDefaults inserts any built-in presets that are missing. Existing
// rows are left untouched so operator edits survive restarts.
func (s *PriorStore) SeedDefaults() error {
	for _, p := range Defaults() {
		var count int
		if err := s.db.QueryRow(`SELECT COUNT(*) FROM priors WHERE name = ?`, p.Name).Scan(&count); err != nil {
			return fmt.Errorf("check prior %s: %w", p.Name, err)
		}
		if count > 0 {
			continue
		}
		if err := s.Put(p); err != nil {
			return err
		}
	}
	return nil
}

// #endregion defaults
