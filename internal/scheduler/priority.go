package scheduler

import (
	"math/rand"
	"sort"
)

// PrioritySource supplies a priority for items admitted without one.
// Injecting it keeps the policy deterministic under test.
type PrioritySource interface {
	NextPriority() int
}

type randPriority struct {
	rng *rand.Rand
}

func (s randPriority) NextPriority() int { return s.rng.Intn(10) + 1 }

// NewRandPriority returns a seeded source that draws missing priorities
// uniformly from 1..10.
func NewRandPriority(seed int64) PrioritySource {
	return randPriority{rng: rand.New(rand.NewSource(seed))}
}

// Priority orders by priority value, lowest (most urgent) first. Items with
// no assigned priority get one from src before the sort; with a nil src the
// zero value stands and those items schedule first.
func Priority(ps []Process, src PrioritySource) []Process {
	out := clone(ps)
	for i := range out {
		if out[i].Priority == 0 && src != nil {
			out[i].Priority = src.NextPriority()
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority < out[j].Priority
	})
	applyMetrics(out, actualBurst, zeroArrival)
	return out
}
