package scheduler

import "unicode/utf8"

// maxNameLen bounds externally sourced display names.
const maxNameLen = 25

// Process is one scheduling candidate: a snapshot row from the process
// source plus the timing metrics the policies fill in. All time-like
// quantities are milliseconds.
type Process struct {
	PID            int32   `json:"pid"`
	Name           string  `json:"name"`
	CPUUsage       float64 `json:"cpu"`
	MemoryUsage    float64 `json:"memory"`
	Burst          float64 `json:"burst"`
	OriginalBurst  float64 `json:"-"`
	ArrivalTime    float64 `json:"arrival_time"`
	Priority       int     `json:"priority"`
	PredictedBurst float64 `json:"predicted_time_slice,omitempty"`
	WaitingTime    float64 `json:"waiting_time"`
	TurnaroundTime float64 `json:"turnaround_time"`

	// predicted is set when a predictor produced PredictedBurst, so the
	// zero substituted for a failed prediction still counts in averages.
	predicted bool
}

// NewProcess builds an admitted candidate from a raw snapshot row. The CPU
// reading doubles as the burst estimate when nothing better is known.
func NewProcess(pid int32, name string, cpuUsage, memoryMB float64) Process {
	p := Process{
		PID:         pid,
		Name:        name,
		CPUUsage:    cpuUsage,
		MemoryUsage: memoryMB,
		Burst:       cpuUsage,
	}
	admit(&p)
	return p
}

// Admit prepares a batch for scheduling: display names are bounded, a
// missing burst falls back to the CPU reading, and the admission-time burst
// is recorded once so round-robin can account waiting time after it drains
// the live burst. The input is not modified.
func Admit(ps []Process) []Process {
	out := clone(ps)
	for i := range out {
		admit(&out[i])
	}
	return out
}

func admit(p *Process) {
	if p.Name == "" {
		p.Name = "Unknown"
	}
	if len(p.Name) > maxNameLen {
		// Back off to a rune start so the cut never leaves invalid UTF-8.
		cut := maxNameLen
		for cut > 0 && !utf8.RuneStart(p.Name[cut]) {
			cut--
		}
		p.Name = p.Name[:cut]
	}
	if p.Burst == 0 {
		p.Burst = p.CPUUsage
	}
	p.OriginalBurst = p.Burst
}

func clone(ps []Process) []Process {
	out := make([]Process, len(ps))
	copy(out, ps)
	return out
}
