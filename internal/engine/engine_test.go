package engine

import (
	"context"
	"testing"

	"ai-process-scheduler/backend/internal/actuator"
	"ai-process-scheduler/backend/internal/procs"
	"ai-process-scheduler/backend/internal/scheduler"
)

type fakeActuator struct {
	applied []int32
}

func (f *fakeActuator) Apply(pid int32, slice float64) actuator.Outcome {
	f.applied = append(f.applied, pid)
	return actuator.OutcomeApplied
}

func testSource() procs.StaticSource {
	return procs.StaticSource{
		{PID: 1, Name: "a", CPUUsage: 10},
		{PID: 2, Name: "b", CPUUsage: 2},
		{PID: 3, Name: "c", CPUUsage: 7},
	}
}

func TestRunCycleOrdersAndLabels(t *testing.T) {
	e := New(testSource(), scheduler.Config{Algorithm: scheduler.AlgorithmSJF})

	res, err := e.RunCycle(context.Background(), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(res.Processes) != 3 {
		t.Fatalf("expected 3 processes, got %d", len(res.Processes))
	}
	if res.Processes[0].PID != 2 || res.Processes[2].PID != 1 {
		t.Fatalf("expected SJF order [2 3 1], got %v", res.Processes)
	}
	// Mean burst (10+2+7)/3 < 100 classifies as SJF.
	if res.Algorithm != "SJF" {
		t.Fatalf("expected label SJF, got %q", res.Algorithm)
	}
	if res.CycleID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("cycle id not assigned")
	}
}

func TestRunCycleActuation(t *testing.T) {
	fa := &fakeActuator{}
	e := New(testSource(), scheduler.Config{Algorithm: scheduler.AlgorithmSJF}).WithActuator(fa)

	if _, err := e.RunCycle(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fa.applied) != 0 {
		t.Fatalf("actuation off: expected no requests, got %d", len(fa.applied))
	}

	if _, err := e.RunCycle(context.Background(), true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fa.applied) != 3 {
		t.Fatalf("actuation on: expected 3 requests, got %d", len(fa.applied))
	}
}

func TestRunCycleEmptySnapshot(t *testing.T) {
	e := New(procs.StaticSource{}, scheduler.Config{Algorithm: scheduler.AlgorithmFCFS})

	res, err := e.RunCycle(context.Background(), false)
	if err != nil {
		t.Fatalf("an empty snapshot is not an error: %v", err)
	}
	if len(res.Processes) != 0 {
		t.Fatalf("expected empty result, got %d processes", len(res.Processes))
	}
}

func TestRunCycleNotifiesListener(t *testing.T) {
	var got []Result
	e := New(testSource(), scheduler.Config{Algorithm: scheduler.AlgorithmSJF}).
		OnResult(func(r Result) { got = append(got, r) })

	if _, err := e.RunCycle(context.Background(), false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(got))
	}
	if len(got[0].Processes) != 3 {
		t.Fatalf("listener saw %d processes, expected 3", len(got[0].Processes))
	}
}

func TestRunCyclePropagatesConfigErrors(t *testing.T) {
	e := New(testSource(), scheduler.Config{Algorithm: scheduler.AlgorithmRoundRobin, Quantum: -1})

	if _, err := e.RunCycle(context.Background(), false); err == nil {
		t.Fatal("expected invalid quantum to fail the cycle")
	}
}
