package ingest

import (
	"strings"
	"testing"
)

const sampleLog = `day,variant,impressions,clicks,none,signup,purchase
1,A,1000,40,30,7,3
1,B,1000,55,40,10,5
2,A,1200,50,40,6,4
2,B,1100,60,45,10,5
`

func TestReadLog(t *testing.T) {
	log, err := ReadLog(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	if len(log.OutcomeLabels) != 3 || log.OutcomeLabels[2] != "purchase" {
		t.Fatalf("wrong labels: %v", log.OutcomeLabels)
	}
	if len(log.Rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(log.Rows))
	}

	first := log.Rows[0]
	if first.Day != 1 || first.Variant != "A" || first.Impressions != 1000 || first.Clicks != 40 {
		t.Fatalf("wrong first row: %+v", first)
	}
	if first.Outcomes[1] != 7 {
		t.Fatalf("expected 7 signups, got %d", first.Outcomes[1])
	}
}

func TestByVariant(t *testing.T) {
	log, err := ReadLog(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("ReadLog: %v", err)
	}
	grouped := log.ByVariant()
	if len(grouped) != 2 {
		t.Fatalf("expected 2 variants, got %d", len(grouped))
	}
	if len(grouped["A"]) != 2 || grouped["A"][1].Day != 2 {
		t.Fatalf("variant A rows wrong: %+v", grouped["A"])
	}
}

func TestReadLogHeaderErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
	}{
		{"wrong column", "day,banner,impressions,clicks,a,b\n1,A,10,1,1,0\n"},
		{"too few columns", "day,variant,impressions,clicks,only\n1,A,10,1,1\n"},
		{"empty input", ""},
	}
	for _, tc := range cases {
		if _, err := ReadLog(strings.NewReader(tc.in)); err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
	}
}

func TestReadLogRowErrors(t *testing.T) {
	header := "day,variant,impressions,clicks,none,signup\n"
	cases := []struct {
		name string
		row  string
	}{
		{"bad day", "zero,A,10,1,1,0\n"},
		{"negative impressions", "1,A,-5,1,1,0\n"},
		{"clicks exceed impressions", "1,A,10,11,11,0\n"},
		{"outcome sum mismatch", "1,A,100,5,2,2\n"},
		{"bad outcome", "1,A,100,5,five,0\n"},
		{"empty variant", "1,,100,5,5,0\n"},
	}
	for _, tc := range cases {
		_, err := ReadLog(strings.NewReader(header + tc.row))
		if err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !strings.Contains(err.Error(), "line 2") {
			t.Fatalf("%s: error %q missing line number", tc.name, err)
		}
	}
}

func TestReadLogRejectsEmptyBody(t *testing.T) {
	if _, err := ReadLog(strings.NewReader("day,variant,impressions,clicks,a,b\n")); err == nil {
		t.Fatal("expected error for header-only log")
	}
}
