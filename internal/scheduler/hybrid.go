package scheduler

import (
	"context"
	"log"
	"math"
	"sort"
)

// Predictor estimates the best time slice in milliseconds for one candidate.
// The caller owns the predictor's lifetime; the engine only consumes it.
type Predictor interface {
	Predict(ctx context.Context, p Process) (float64, error)
}

// Hybrid orders the batch by the predictor's estimated slice, shortest
// first, and computes metrics over the prediction instead of the raw burst.
// With no predictor it degrades to plain SJF. The predictor is untrusted: a
// failed or unusable prediction becomes zero for that item and the rest of
// the batch still schedules.
func Hybrid(ctx context.Context, ps []Process, pred Predictor) []Process {
	if pred == nil {
		return SJF(ps)
	}

	out := clone(ps)
	for i := range out {
		v, err := pred.Predict(ctx, out[i])
		switch {
		case err != nil:
			log.Printf("[scheduler] predict pid=%d: %v", out[i].PID, err)
			v = 0
		case v < 0 || math.IsNaN(v) || math.IsInf(v, 0):
			log.Printf("[scheduler] predict pid=%d: unusable value %v", out[i].PID, v)
			v = 0
		}
		out[i].PredictedBurst = v
		out[i].predicted = true
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PredictedBurst < out[j].PredictedBurst
	})
	applyMetrics(out, predictedBurst, zeroArrival)
	return out
}
