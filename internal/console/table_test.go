package console

import (
	"strings"
	"testing"

	"ai-process-scheduler/backend/internal/engine"
	"ai-process-scheduler/backend/internal/scheduler"
)

func TestRender(t *testing.T) {
	res := engine.Result{
		Algorithm: "PRIORITY",
		Processes: []scheduler.Process{
			{PID: 100, Name: "chrome", CPUUsage: 12.5, MemoryUsage: 256, PredictedBurst: 150, WaitingTime: 0, TurnaroundTime: 150},
			{PID: 200, Name: "sshd", CPUUsage: 0.5, MemoryUsage: 8, PredictedBurst: 175, WaitingTime: 150, TurnaroundTime: 325},
		},
		MeanSlice: 162.5,
		MeanWait:  75,
	}

	var b strings.Builder
	Render(&b, res, 10)
	out := b.String()

	for _, want := range []string{"PRIORITY", "chrome", "sshd", "100", "256 MiB"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestRenderLimitsRows(t *testing.T) {
	res := engine.Result{Algorithm: "SJF"}
	for i := 0; i < 30; i++ {
		res.Processes = append(res.Processes, scheduler.Process{PID: int32(i + 1), Name: "p"})
	}

	var b strings.Builder
	Render(&b, res, 10)

	// Title + header + 10 rows + footer.
	if lines := strings.Count(b.String(), "\n"); lines != 13 {
		t.Fatalf("expected 13 lines for a truncated table, got %d", lines)
	}
}
