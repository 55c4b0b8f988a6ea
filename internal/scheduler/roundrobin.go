package scheduler

// DefaultQuantum is the time slice granted per round-robin pass when none is
// configured.
const DefaultQuantum = 100.0

// RoundRobin cycles through the batch in admission order, granting each
// runnable item up to quantum units per pass. An item finishes when its
// remaining burst fits inside the slice; its turnaround is the elapsed time
// at that moment and its waiting time is turnaround minus the burst recorded
// at admission, so OriginalBurst must be set before calling. The loop runs
// at most ceil(total burst / quantum) passes.
func RoundRobin(ps []Process, quantum float64) ([]Process, error) {
	if quantum <= 0 {
		return nil, ErrInvalidQuantum
	}

	out := clone(ps)
	remaining := 0
	for i := range out {
		if out[i].Burst > 0 {
			remaining++
		}
	}

	elapsed := 0.0
	for remaining > 0 {
		for i := range out {
			p := &out[i]
			if p.Burst <= 0 {
				continue
			}
			if p.Burst > quantum {
				p.Burst -= quantum
				elapsed += quantum
				continue
			}
			elapsed += p.Burst
			p.Burst = 0
			p.TurnaroundTime = elapsed
			p.WaitingTime = p.TurnaroundTime - p.OriginalBurst
			remaining--
		}
	}

	return out, nil
}
