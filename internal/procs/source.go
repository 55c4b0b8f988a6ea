package procs

import (
	"context"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v4/process"

	"ai-process-scheduler/backend/internal/scheduler"
)

// Source supplies one snapshot of runnable work per scheduling cycle.
type Source interface {
	Snapshot(ctx context.Context) ([]scheduler.Process, error)
}

// SystemSource reads live processes through gopsutil. The snapshot is best
// effort: processes that vanish or refuse their stats mid-read are skipped
// here, so the scheduler only ever sees rows with usable usage values.
type SystemSource struct{}

func NewSystemSource() SystemSource { return SystemSource{} }

func (SystemSource) Snapshot(ctx context.Context) ([]scheduler.Process, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("list processes: %w", err)
	}

	out := make([]scheduler.Process, 0, len(procs))
	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		cpu, err := p.CPUPercentWithContext(ctx)
		if err != nil {
			continue
		}
		mem, err := p.MemoryInfoWithContext(ctx)
		if err != nil || mem == nil {
			continue
		}

		memMB := math.Round(float64(mem.RSS)/(1024*1024)*100) / 100
		out = append(out, scheduler.NewProcess(p.Pid, name, cpu, memMB))
	}
	return out, nil
}

// StaticSource returns a fixed batch on every snapshot. Used by tests and
// the demo mode of the CLI.
type StaticSource []scheduler.Process

func (s StaticSource) Snapshot(context.Context) ([]scheduler.Process, error) {
	out := make([]scheduler.Process, len(s))
	copy(out, s)
	return out, nil
}
