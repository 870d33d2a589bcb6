package rpc

import (
	"context"
	"path/filepath"
	"testing"

	pb "github.com/danielpatrickdp/banner-bayes/go-analyzer/gen/bannerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/priors"
)

func testServer(t *testing.T) (*Server, *experiment.Store) {
	t.Helper()
	store, err := experiment.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	priorStore, err := priors.NewPriorStore(store.DB())
	if err != nil {
		t.Fatalf("NewPriorStore: %v", err)
	}
	if err := priorStore.SeedDefaults(); err != nil {
		t.Fatalf("SeedDefaults: %v", err)
	}

	cfg := pipeline.DefaultConfig()
	cfg.Engine.Draws = 500
	return NewServer(store, priorStore, cfg), store
}

func seedServerData(t *testing.T, store *experiment.Store) {
	t.Helper()
	exp, err := store.CreateExperiment("srv-test", []string{"none", "buy"}, []float64{0, 10})
	if err != nil {
		t.Fatalf("CreateExperiment: %v", err)
	}
	variants, err := store.Variants(exp.ID)
	if err != nil {
		t.Fatalf("Variants: %v", err)
	}
	clicks := map[string]int64{"A": 400, "B": 600}
	for _, v := range variants {
		for day := 1; day <= 3; day++ {
			c := clicks[v.Name]
			err := store.RecordBatch(experiment.Batch{
				VariantID: v.ID, Day: day, Impressions: 10000, Clicks: c,
				Outcomes: []int64{c - 50, 50},
			})
			if err != nil {
				t.Fatalf("RecordBatch: %v", err)
			}
		}
	}
}

func TestServerRecordBatch(t *testing.T) {
	s, store := testServer(t)
	if _, err := store.CreateExperiment("srv-test", []string{"none", "buy"}, []float64{0, 10}); err != nil {
		t.Fatalf("CreateExperiment: %v", err)
	}

	_, err := s.RecordBatch(context.Background(), &pb.RecordBatchRequest{
		Experiment: "srv-test", Variant: "A", Day: 1,
		Impressions: 500, Clicks: 20, Outcomes: []int64{15, 5},
	})
	if err != nil {
		t.Fatalf("RecordBatch: %v", err)
	}

	exp, _ := store.GetExperiment("srv-test")
	variants, _ := store.Variants(exp.ID)
	totals, err := store.VariantTotals(variants[0].ID, 2)
	if err != nil {
		t.Fatalf("VariantTotals: %v", err)
	}
	if totals.Impressions != 500 || totals.Clicks != 20 {
		t.Fatalf("batch not stored: %+v", totals)
	}
}

func TestServerRecordBatchErrors(t *testing.T) {
	s, store := testServer(t)
	if _, err := store.CreateExperiment("srv-test", []string{"none", "buy"}, []float64{0, 10}); err != nil {
		t.Fatalf("CreateExperiment: %v", err)
	}

	_, err := s.RecordBatch(context.Background(), &pb.RecordBatchRequest{
		Experiment: "missing", Variant: "A", Day: 1, Impressions: 10, Clicks: 1, Outcomes: []int64{1, 0},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound for unknown experiment, got %v", err)
	}

	_, err = s.RecordBatch(context.Background(), &pb.RecordBatchRequest{
		Experiment: "srv-test", Variant: "C", Day: 1, Impressions: 10, Clicks: 1, Outcomes: []int64{1, 0},
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound for unknown variant, got %v", err)
	}

	_, err = s.RecordBatch(context.Background(), &pb.RecordBatchRequest{
		Experiment: "srv-test", Variant: "A", Day: 1, Impressions: 10, Clicks: 20, Outcomes: []int64{20, 0},
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument for bad counts, got %v", err)
	}
}

func TestServerRunAnalysisAndGetSummary(t *testing.T) {
	s, store := testServer(t)
	seedServerData(t, store)

	reply, err := s.RunAnalysis(context.Background(), &pb.RunAnalysisRequest{Experiment: "srv-test"})
	if err != nil {
		t.Fatalf("RunAnalysis: %v", err)
	}
	if reply.RunId == "" {
		t.Fatal("expected run ID")
	}
	if reply.ProbChallengerBeats < 0.99 {
		t.Fatalf("expected near-certain P(B>A), got %v", reply.ProbChallengerBeats)
	}
	if reply.SummaryJson == "" {
		t.Fatal("expected summary JSON")
	}

	got, err := s.GetSummary(context.Background(), &pb.GetSummaryRequest{RunId: reply.RunId})
	if err != nil {
		t.Fatalf("GetSummary: %v", err)
	}
	if got.Decision != reply.Decision || got.ProbChallengerBeats != reply.ProbChallengerBeats {
		t.Fatalf("persisted summary differs: %+v vs %+v", got, reply)
	}
}

func TestServerGetSummaryNotFound(t *testing.T) {
	s, _ := testServer(t)
	_, err := s.GetSummary(context.Background(), &pb.GetSummaryRequest{RunId: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
}

func TestServerListExperiments(t *testing.T) {
	s, store := testServer(t)
	seedServerData(t, store)

	reply, err := s.ListExperiments(context.Background(), &pb.ListExperimentsRequest{})
	if err != nil {
		t.Fatalf("ListExperiments: %v", err)
	}
	if len(reply.Experiments) != 1 || reply.Experiments[0].Name != "srv-test" {
		t.Fatalf("wrong experiments: %+v", reply.Experiments)
	}
}
