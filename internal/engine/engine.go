package engine

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"ai-process-scheduler/backend/internal/actuator"
	"ai-process-scheduler/backend/internal/audit"
	"ai-process-scheduler/backend/internal/procs"
	"ai-process-scheduler/backend/internal/scheduler"
	"ai-process-scheduler/backend/internal/storage"
)

// Actuator emits one OS scheduling request per item.
type Actuator interface {
	Apply(pid int32, slice float64) actuator.Outcome
}

// Result is one completed scheduling cycle.
type Result struct {
	CycleID   uuid.UUID           `json:"cycle_id"`
	Algorithm string              `json:"algorithm"`
	Processes []scheduler.Process `json:"processes"`
	MeanSlice float64             `json:"mean_slice"`
	MeanWait  float64             `json:"mean_wait"`
	Timestamp time.Time           `json:"timestamp"`
}

// Engine owns one scheduling pipeline: snapshot, admit, order, label, and
// optionally actuate. The core policies are pure; everything stateful or
// privileged lives here, at the collaborator boundary.
type Engine struct {
	source   procs.Source
	cfg      scheduler.Config
	actuator Actuator
	audit    *audit.Logger
	history  *storage.History
	onResult func(Result)
}

func New(source procs.Source, cfg scheduler.Config) *Engine {
	return &Engine{source: source, cfg: cfg}
}

// WithActuator attaches the OS actuator used when a cycle runs with
// actuation enabled.
func (e *Engine) WithActuator(a Actuator) *Engine {
	e.actuator = a
	return e
}

func (e *Engine) WithAudit(l *audit.Logger) *Engine {
	e.audit = l
	return e
}

func (e *Engine) WithHistory(h *storage.History) *Engine {
	e.history = h
	return e
}

// OnResult registers a callback invoked after every completed cycle, e.g.
// the live websocket hub.
func (e *Engine) OnResult(fn func(Result)) *Engine {
	e.onResult = fn
	return e
}

// RunCycle processes one immutable snapshot to completion. Each cycle
// constructs fresh work items and discards them; nothing is shared between
// cycles.
func (e *Engine) RunCycle(ctx context.Context, actuate bool) (*Result, error) {
	snap, err := e.source.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	batch := scheduler.Admit(snap)
	ordered, err := scheduler.Schedule(ctx, e.cfg, batch)
	if err != nil {
		return nil, err
	}

	res := &Result{
		CycleID:   uuid.New(),
		Algorithm: scheduler.AlgorithmLabel(scheduler.MeanSlice(ordered)),
		Processes: ordered,
		MeanSlice: scheduler.MeanSlice(ordered),
		MeanWait:  scheduler.MeanWait(ordered),
		Timestamp: time.Now().UTC(),
	}

	if actuate && e.actuator != nil {
		for i := range ordered {
			p := &ordered[i]
			slice := p.PredictedBurst
			if slice == 0 {
				slice = p.OriginalBurst
			}
			outcome := e.actuator.Apply(p.PID, slice)
			if e.audit != nil {
				e.audit.LogActuation(res.CycleID, p.PID, slice, outcome.String())
			}
		}
	}

	if e.audit != nil {
		e.audit.LogCycle(res.CycleID, res.Algorithm, len(res.Processes))
	}
	if e.history != nil {
		rec := storage.CycleRecord{
			ID:        res.CycleID,
			Algorithm: res.Algorithm,
			Processes: len(res.Processes),
			MeanSlice: res.MeanSlice,
			MeanWait:  res.MeanWait,
			CreatedAt: res.Timestamp,
		}
		if err := e.history.SaveCycle(ctx, rec); err != nil {
			log.Printf("[engine] save cycle %s: %v", res.CycleID, err)
		}
	}
	if e.onResult != nil {
		e.onResult(*res)
	}
	return res, nil
}

// Run polls RunCycle on the given interval until the context is canceled.
// The core never loops; this is the caller-side loop the console monitor
// and the live stream feed off.
func (e *Engine) Run(ctx context.Context, interval time.Duration, actuate bool) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := e.RunCycle(ctx, actuate); err != nil {
				log.Printf("[engine] cycle failed: %v", err)
			}
		}
	}
}
