package scheduler

import "sort"

// SJF orders by estimated burst, shortest first. This is the non-preemptive
// batch variant: every item is assumed present at time zero, so waiting time
// is simply the burst of everything scheduled before it.
func SJF(ps []Process) []Process {
	out := clone(ps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Burst < out[j].Burst
	})
	applyMetrics(out, actualBurst, zeroArrival)
	return out
}
