package scheduler

// Slice bands for the display label. Classification only: policy choice
// never reads the label.
const (
	sjfBand      = 100
	priorityBand = 200
)

// AlgorithmLabel classifies a batch's mean predicted slice into the policy
// family it resembles.
func AlgorithmLabel(meanSlice float64) string {
	switch {
	case meanSlice < sjfBand:
		return "SJF"
	case meanSlice < priorityBand:
		return "PRIORITY"
	default:
		return "ROUND ROBIN"
	}
}

// MeanSlice averages the predicted slice over a scheduled batch. Items that
// went through a predictor contribute their prediction even when a failure
// substituted zero; items that never saw one fall back to the admission-time
// burst (round-robin drains the live burst to zero).
func MeanSlice(ps []Process) float64 {
	if len(ps) == 0 {
		return 0
	}
	total := 0.0
	for i := range ps {
		switch {
		case ps[i].predicted:
			total += ps[i].PredictedBurst
		case ps[i].OriginalBurst > 0:
			total += ps[i].OriginalBurst
		default:
			total += ps[i].Burst
		}
	}
	return total / float64(len(ps))
}

// MeanWait averages waiting time over a scheduled batch.
func MeanWait(ps []Process) float64 {
	if len(ps) == 0 {
		return 0
	}
	total := 0.0
	for i := range ps {
		total += ps[i].WaitingTime
	}
	return total / float64(len(ps))
}
