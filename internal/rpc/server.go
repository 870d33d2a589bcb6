package rpc

import (
	"context"
	"encoding/json"
	"time"

	pb "github.com/danielpatrickdp/banner-bayes/go-analyzer/gen/bannerpb"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/experiment"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/pipeline"
	"github.com/danielpatrickdp/banner-bayes/go-analyzer/internal/priors"
)

// #region server
// Server implements the BannerAnalysis service over an experiment store.
type Server struct {
	pb.UnimplementedBannerAnalysisServer

	store  *experiment.Store
	priors *priors.PriorStore
	config pipeline.Config
}

// NewServer creates a server with the given stores and pipeline defaults.
func NewServer(store *experiment.Store, priorStore *priors.PriorStore, config pipeline.Config) *Server {
	return &Server{store: store, priors: priorStore, config: config}
}
// #endregion server

// #region record-batch
// RecordBatch appends one day of observations for a named variant.
func (s *Server) RecordBatch(ctx context.Context, req *pb.RecordBatchRequest) (*pb.RecordBatchReply, error) {
	exp, err := s.store.GetExperiment(req.Experiment)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "experiment %s: %v", req.Experiment, err)
	}
	variants, err := s.store.Variants(exp.ID)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "variants: %v", err)
	}

	var variantID string
	for _, v := range variants {
		if v.Name == req.Variant {
			variantID = v.ID
			break
		}
	}
	if variantID == "" {
		return nil, status.Errorf(codes.NotFound, "variant %s not in experiment %s", req.Variant, req.Experiment)
	}

	err = s.store.RecordBatch(experiment.Batch{
		VariantID:   variantID,
		Day:         int(req.Day),
		Impressions: req.Impressions,
		Clicks:      req.Clicks,
		Outcomes:    req.Outcomes,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "record batch: %v", err)
	}
	return &pb.RecordBatchReply{}, nil
}
// #endregion record-batch

// #region run-analysis
// RunAnalysis fits both models, decides, persists, and returns the result.
func (s *Server) RunAnalysis(ctx context.Context, req *pb.RunAnalysisRequest) (*pb.AnalysisReply, error) {
	cfg := s.config
	if req.Prior != "" {
		cfg.PriorName = req.Prior
	}

	analyzer := pipeline.NewAnalyzer(s.store, s.priors, cfg)
	result, err := analyzer.Run(req.Experiment)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "analyze %s: %v", req.Experiment, err)
	}

	summaryJSON, err := json.Marshal(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "marshal summary: %v", err)
	}
	return &pb.AnalysisReply{
		RunId:               result.RunID,
		Decision:            result.Decision.Action,
		Reason:              result.Decision.Reason,
		ProbChallengerBeats: result.ProbBeats,
		MeanLift:            result.Lift.Mean,
		SummaryJson:         string(summaryJSON),
	}, nil
}
// #endregion run-analysis

// #region get-summary
// GetSummary returns a persisted run.
func (s *Server) GetSummary(ctx context.Context, req *pb.GetSummaryRequest) (*pb.AnalysisReply, error) {
	rec, err := s.store.GetRun(req.RunId)
	if err != nil {
		return nil, status.Errorf(codes.NotFound, "run %s: %v", req.RunId, err)
	}

	var result pipeline.RunResult
	if err := json.Unmarshal([]byte(rec.SummaryJSON), &result); err != nil {
		return nil, status.Errorf(codes.Internal, "decode summary: %v", err)
	}
	return &pb.AnalysisReply{
		RunId:               rec.RunID,
		Decision:            result.Decision.Action,
		Reason:              result.Decision.Reason,
		ProbChallengerBeats: result.ProbBeats,
		MeanLift:            result.Lift.Mean,
		SummaryJson:         rec.SummaryJSON,
	}, nil
}
// #endregion get-summary

// #region list-experiments
// ListExperiments returns all experiments in the store.
func (s *Server) ListExperiments(ctx context.Context, _ *pb.ListExperimentsRequest) (*pb.ListExperimentsReply, error) {
	exps, err := s.store.ListExperiments()
	if err != nil {
		return nil, status.Errorf(codes.Internal, "list experiments: %v", err)
	}

	reply := &pb.ListExperimentsReply{}
	for _, e := range exps {
		reply.Experiments = append(reply.Experiments, &pb.ExperimentInfo{
			ExperimentId:  e.ID,
			Name:          e.Name,
			OutcomeLabels: e.OutcomeLabels,
			CreatedAt:     e.CreatedAt.Format(time.RFC3339Nano),
		})
	}
	return reply, nil
}
// #endregion list-experiments
