package scheduler

import (
	"context"
	"fmt"
)

const (
	AlgorithmFCFS       = "fcfs"
	AlgorithmSJF        = "sjf"
	AlgorithmPriority   = "priority"
	AlgorithmRoundRobin = "round-robin"
	AlgorithmHybrid     = "hybrid"
)

// Config carries the knobs one scheduling cycle runs with.
type Config struct {
	Algorithm string
	Quantum   float64 // round-robin slice; 0 means DefaultQuantum
	Priority  PrioritySource
	Predictor Predictor
}

// Schedule runs the configured policy over one admitted batch and returns a
// new, metric-annotated ordering. The input is never modified.
func Schedule(ctx context.Context, cfg Config, ps []Process) ([]Process, error) {
	switch cfg.Algorithm {
	case AlgorithmFCFS:
		return FCFS(ps), nil
	case AlgorithmSJF:
		return SJF(ps), nil
	case AlgorithmPriority:
		return Priority(ps, cfg.Priority), nil
	case AlgorithmRoundRobin:
		q := cfg.Quantum
		if q == 0 {
			q = DefaultQuantum
		}
		return RoundRobin(ps, q)
	case AlgorithmHybrid:
		return Hybrid(ctx, ps, cfg.Predictor), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Algorithm)
	}
}

func AvailableAlgorithms() []string {
	return []string{
		AlgorithmFCFS,
		AlgorithmSJF,
		AlgorithmPriority,
		AlgorithmRoundRobin,
		AlgorithmHybrid,
	}
}
