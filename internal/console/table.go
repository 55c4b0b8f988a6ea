package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"ai-process-scheduler/backend/internal/engine"
)

// Render writes one cycle result as an aligned table, top limit rows. This
// is the console counterpart of the web presenter.
func Render(w io.Writer, res engine.Result, limit int) {
	fmt.Fprintf(w, "AI Process Scheduler  |  Active Algorithm: %s  |  %d processes\n",
		res.Algorithm, len(res.Processes))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "PID\tNAME\tCPU %\tMEMORY\tSLICE (ms)\tWAIT (ms)\tTURNAROUND (ms)")

	rows := res.Processes
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	for _, p := range rows {
		slice := p.PredictedBurst
		if slice == 0 {
			slice = p.OriginalBurst
		}
		if slice == 0 {
			slice = p.Burst
		}
		mem := humanize.IBytes(uint64(p.MemoryUsage * 1024 * 1024))
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%s\t%.2f\t%.2f\t%.2f\n",
			p.PID, p.Name, p.CPUUsage, mem, slice, p.WaitingTime, p.TurnaroundTime)
	}
	tw.Flush()

	fmt.Fprintf(w, "mean slice %.2f ms  |  mean wait %.2f ms\n", res.MeanSlice, res.MeanWait)
}
