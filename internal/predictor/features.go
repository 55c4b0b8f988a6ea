package predictor

import (
	"math/rand"
	"sync"

	"ai-process-scheduler/backend/internal/scheduler"
)

// Builder assembles feature vectors from process snapshots. Several fields
// the snapshot cannot supply (io burst, arrival, historic waiting and
// turnaround) are drawn at random in the same ranges the model was trained
// against. The rand source is injected so runs can be reproduced.
type Builder struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBuilder(seed int64) *Builder {
	return &Builder{rng: rand.New(rand.NewSource(seed))}
}

func (b *Builder) Build(p scheduler.Process) Features {
	b.mu.Lock()
	defer b.mu.Unlock()

	cpu := p.CPUUsage
	if cpu < 1 {
		cpu = 1
	}
	prio := p.Priority
	if prio == 0 {
		prio = b.intn(1, 10)
	}

	return Features{
		Priority:       prio,
		CPUBurstEst:    cpu,
		IOBurstEst:     float64(b.intn(50, 300)),
		ArrivalTime:    float64(b.intn(1000, 90000)),
		MemoryReq:      p.MemoryUsage,
		TotalCPUUsed:   cpu,
		WaitingTime:    float64(b.intn(1000, 5000)),
		TurnaroundTime: float64(b.intn(3000, 8000)),
	}
}

// intn draws uniformly from [lo, hi] inclusive.
func (b *Builder) intn(lo, hi int) int {
	return b.rng.Intn(hi-lo+1) + lo
}
