package scheduler

type fieldFunc func(p *Process) float64

func actualBurst(p *Process) float64    { return p.Burst }
func predictedBurst(p *Process) float64 { return p.PredictedBurst }

func actualArrival(p *Process) float64 { return p.ArrivalTime }
func zeroArrival(*Process) float64     { return 0 }

// applyMetrics fills waiting and turnaround time for a batch already in
// execution order. served accumulates the burst of everything scheduled
// strictly before the current item; waiting is the gap between that and the
// item's own arrival, never negative. Batch policies that assume every item
// is present at time zero pass zeroArrival.
func applyMetrics(ps []Process, burst, arrival fieldFunc) {
	served := 0.0
	for i := range ps {
		p := &ps[i]
		wait := served - arrival(p)
		if wait < 0 {
			wait = 0
		}
		p.WaitingTime = wait
		p.TurnaroundTime = wait + burst(p)
		served += burst(p)
	}
}
