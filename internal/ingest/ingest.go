// Package ingest parses CSV banner logs into daily observation batches.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// #region types

// Row is one parsed log line: a day of counts for one variant.
type Row struct {
	Day         int
	Variant     string
	Impressions int64
	Clicks      int64
	Outcomes    []int64
}

// Log is a fully parsed banner log.
type Log struct {
	// OutcomeLabels come from the trailing header columns.
	OutcomeLabels []string
	Rows          []Row
}

// #endregion types

// #region read

// fixedColumns are the leading required header fields, in order.
var fixedColumns = []string{"day", "variant", "impressions", "clicks"}

// ReadLog parses a CSV banner log. The header must start with
// day,variant,impressions,clicks; every remaining column is an outcome
// label. Row errors carry 1-based line numbers.
func ReadLog(r io.Reader) (Log, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return Log{}, fmt.Errorf("read header: %w", err)
	}
	if len(header) < len(fixedColumns)+2 {
		return Log{}, fmt.Errorf("header has %d columns, need at least %d (two outcome labels)", len(header), len(fixedColumns)+2)
	}
	for i, want := range fixedColumns {
		if header[i] != want {
			return Log{}, fmt.Errorf("header column %d is %q, want %q", i+1, header[i], want)
		}
	}

	log := Log{OutcomeLabels: header[len(fixedColumns):]}
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return Log{}, fmt.Errorf("line %d: %w", line, err)
		}
		row, err := parseRow(record, len(log.OutcomeLabels))
		if err != nil {
			return Log{}, fmt.Errorf("line %d: %w", line, err)
		}
		log.Rows = append(log.Rows, row)
	}
	if len(log.Rows) == 0 {
		return Log{}, fmt.Errorf("log has no data rows")
	}
	return log, nil
}

func parseRow(record []string, numOutcomes int) (Row, error) {
	if len(record) != len(fixedColumns)+numOutcomes {
		return Row{}, fmt.Errorf("%d fields, want %d", len(record), len(fixedColumns)+numOutcomes)
	}

	day, err := strconv.Atoi(record[0])
	if err != nil || day < 1 {
		return Row{}, fmt.Errorf("bad day %q", record[0])
	}
	if record[1] == "" {
		return Row{}, fmt.Errorf("empty variant name")
	}
	impressions, err := strconv.ParseInt(record[2], 10, 64)
	if err != nil || impressions < 0 {
		return Row{}, fmt.Errorf("bad impressions %q", record[2])
	}
	clicks, err := strconv.ParseInt(record[3], 10, 64)
	if err != nil || clicks < 0 {
		return Row{}, fmt.Errorf("bad clicks %q", record[3])
	}
	if clicks > impressions {
		return Row{}, fmt.Errorf("%d clicks exceed %d impressions", clicks, impressions)
	}

	outcomes := make([]int64, numOutcomes)
	var sum int64
	for i := range outcomes {
		n, err := strconv.ParseInt(record[len(fixedColumns)+i], 10, 64)
		if err != nil || n < 0 {
			return Row{}, fmt.Errorf("bad outcome count %q", record[len(fixedColumns)+i])
		}
		outcomes[i] = n
		sum += n
	}
	if sum != clicks {
		return Row{}, fmt.Errorf("outcome counts sum to %d, want %d clicks", sum, clicks)
	}

	return Row{
		Day:         day,
		Variant:     record[1],
		Impressions: impressions,
		Clicks:      clicks,
		Outcomes:    outcomes,
	}, nil
}

// #endregion read

// #region group

// ByVariant groups rows by variant name, preserving day order within each.
func (l Log) ByVariant() map[string][]Row {
	out := make(map[string][]Row)
	for _, row := range l.Rows {
		out[row.Variant] = append(out[row.Variant], row)
	}
	return out
}

// #endregion group
