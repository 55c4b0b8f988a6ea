package predictor

import (
	"context"

	"ai-process-scheduler/backend/internal/scheduler"
)

// Features is the vector the burst-time regression model was trained on.
// Field names match the model-serving contract.
type Features struct {
	Priority       int     `json:"priority"`
	CPUBurstEst    float64 `json:"cpu_burst_est"`
	IOBurstEst     float64 `json:"io_burst_est"`
	ArrivalTime    float64 `json:"arrival_time"`
	MemoryReq      float64 `json:"memory_req"`
	TotalCPUUsed   float64 `json:"total_cpu_used"`
	WaitingTime    float64 `json:"waiting_time"`
	TurnaroundTime float64 `json:"turnaround_time"`
}

// BurstPredictor estimates the best CPU time slice in milliseconds for a
// process described by its feature vector.
type BurstPredictor interface {
	Predict(ctx context.Context, f Features) (float64, error)
}

// Static always predicts the same slice. Useful in tests and as a degraded
// mode when no model endpoint is configured.
type Static float64

func (s Static) Predict(context.Context, Features) (float64, error) {
	return float64(s), nil
}

// Estimator adapts a BurstPredictor plus the feature pipeline to the
// scheduler's per-process predictor interface.
type Estimator struct {
	model   BurstPredictor
	builder *Builder
}

func NewEstimator(model BurstPredictor, builder *Builder) *Estimator {
	return &Estimator{model: model, builder: builder}
}

func (e *Estimator) Predict(ctx context.Context, p scheduler.Process) (float64, error) {
	return e.model.Predict(ctx, e.builder.Build(p))
}
