package scheduler

import "sort"

// FCFS schedules in arrival order. The sort is stable so arrival ties keep
// their input order and repeated runs over the same snapshot stay identical.
func FCFS(ps []Process) []Process {
	out := clone(ps)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ArrivalTime < out[j].ArrivalTime
	})
	applyMetrics(out, actualBurst, actualArrival)
	return out
}
