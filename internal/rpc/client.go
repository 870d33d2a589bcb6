package rpc

import (
	"context"
	"fmt"

	pb "github.com/danielpatrickdp/banner-bayes/go-analyzer/gen/bannerpb"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// #region types
// AnalysisResult holds the response from a RunAnalysis or GetSummary call.
type AnalysisResult struct {
	RunID       string
	Decision    string
	Reason      string
	ProbBeats   float64
	MeanLift    float64
	SummaryJSON string
}

// ExperimentInfo describes one experiment known to the daemon.
type ExperimentInfo struct {
	ID            string
	Name          string
	OutcomeLabels []string
	CreatedAt     string
}
// #endregion types

// #region client-struct
// AnalysisClient wraps the gRPC connection to the analyzer daemon.
type AnalysisClient struct {
	conn   *grpc.ClientConn
	client pb.BannerAnalysisClient
}
// #endregion client-struct

// #region constructor
// NewAnalysisClient connects to the analyzer daemon.
func NewAnalysisClient(addr string) (*AnalysisClient, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("grpc dial %s: %w", addr, err)
	}
	return &AnalysisClient{
		conn:   conn,
		client: pb.NewBannerAnalysisClient(conn),
	}, nil
}

// NewAnalysisClientWithService creates an AnalysisClient with an injected
// service implementation. Used for testing without a real gRPC connection.
func NewAnalysisClientWithService(svc pb.BannerAnalysisClient) *AnalysisClient {
	return &AnalysisClient{client: svc}
}
// #endregion constructor

// #region close
// Close shuts down the gRPC connection.
func (c *AnalysisClient) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
// #endregion close

// #region record-batch
// RecordBatch appends one day of observations for a variant.
func (c *AnalysisClient) RecordBatch(ctx context.Context, experiment, variant string, day int, impressions, clicks int64, outcomes []int64) error {
	_, err := c.client.RecordBatch(ctx, &pb.RecordBatchRequest{
		Experiment:  experiment,
		Variant:     variant,
		Day:         int32(day),
		Impressions: impressions,
		Clicks:      clicks,
		Outcomes:    outcomes,
	})
	if err != nil {
		return fmt.Errorf("record batch rpc: %w", err)
	}
	return nil
}
// #endregion record-batch

// #region run-analysis
// RunAnalysis triggers a full analysis run on the daemon.
func (c *AnalysisClient) RunAnalysis(ctx context.Context, experiment, prior string) (AnalysisResult, error) {
	resp, err := c.client.RunAnalysis(ctx, &pb.RunAnalysisRequest{
		Experiment: experiment,
		Prior:      prior,
	})
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("run analysis rpc: %w", err)
	}
	return analysisResult(resp), nil
}

// GetSummary retrieves a previously persisted run.
func (c *AnalysisClient) GetSummary(ctx context.Context, runID string) (AnalysisResult, error) {
	resp, err := c.client.GetSummary(ctx, &pb.GetSummaryRequest{RunId: runID})
	if err != nil {
		return AnalysisResult{}, fmt.Errorf("get summary rpc: %w", err)
	}
	return analysisResult(resp), nil
}

func analysisResult(resp *pb.AnalysisReply) AnalysisResult {
	return AnalysisResult{
		RunID:       resp.RunId,
		Decision:    resp.Decision,
		Reason:      resp.Reason,
		ProbBeats:   resp.ProbChallengerBeats,
		MeanLift:    resp.MeanLift,
		SummaryJSON: resp.SummaryJson,
	}
}
// #endregion run-analysis

// #region list-experiments
// ListExperiments returns the experiments known to the daemon.
func (c *AnalysisClient) ListExperiments(ctx context.Context) ([]ExperimentInfo, error) {
	resp, err := c.client.ListExperiments(ctx, &pb.ListExperimentsRequest{})
	if err != nil {
		return nil, fmt.Errorf("list experiments rpc: %w", err)
	}
	out := make([]ExperimentInfo, 0, len(resp.Experiments))
	for _, e := range resp.Experiments {
		out = append(out, ExperimentInfo{
			ID:            e.ExperimentId,
			Name:          e.Name,
			OutcomeLabels: e.OutcomeLabels,
			CreatedAt:     e.CreatedAt,
		})
	}
	return out, nil
}
// #endregion list-experiments
