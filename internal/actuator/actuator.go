package actuator

import (
	"errors"
	"log"

	"golang.org/x/sys/unix"
)

// Slice bands mirror the predictor's output contract: short predicted slices
// get real-time FIFO, medium ones real-time round-robin, long ones a lowered
// niceness under the normal class.
const (
	fifoBand = 100
	rrBand   = 200
)

// Outcome classifies what happened to one actuation request.
type Outcome int

const (
	OutcomeApplied Outcome = iota
	OutcomeSkipped
	OutcomeNoSuchProcess
	OutcomePermissionDenied
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeSkipped:
		return "skipped"
	case OutcomeNoSuchProcess:
		return "no-such-process"
	case OutcomePermissionDenied:
		return "permission-denied"
	default:
		return "failed"
	}
}

// Config carries the OS-level knobs for the three bands.
type Config struct {
	Enabled      bool
	FIFOPriority int
	RRPriority   int
	NiceValue    int
}

func DefaultConfig() Config {
	return Config{FIFOPriority: 50, RRPriority: 30, NiceValue: 10}
}

// syscalls is the thin boundary to the kernel, injectable for tests.
type syscalls interface {
	SetScheduler(pid, policy, priority int) error
	SetNice(pid, nice int) error
}

type unixSyscalls struct{}

func (unixSyscalls) SetScheduler(pid, policy, priority int) error {
	attr := &unix.SchedAttr{
		Size:     unix.SizeofSchedAttr,
		Policy:   uint32(policy),
		Priority: uint32(priority),
	}
	return unix.SchedSetAttr(pid, attr, 0)
}

func (unixSyscalls) SetNice(pid, nice int) error {
	return unix.Setpriority(unix.PRIO_PROCESS, pid, nice)
}

// Actuator asks the kernel to honor the predicted slices. It is privileged
// and fallible: requests are emitted, never verified, and no failure aborts
// the scheduling cycle.
type Actuator struct {
	cfg Config
	sys syscalls
}

func New(cfg Config) *Actuator {
	return &Actuator{cfg: cfg, sys: unixSyscalls{}}
}

// Apply emits one scheduling request for pid based on its predicted slice.
func (a *Actuator) Apply(pid int32, slice float64) Outcome {
	if !a.cfg.Enabled {
		return OutcomeSkipped
	}

	var err error
	switch {
	case slice < fifoBand:
		err = a.sys.SetScheduler(int(pid), unix.SCHED_FIFO, a.cfg.FIFOPriority)
	case slice < rrBand:
		err = a.sys.SetScheduler(int(pid), unix.SCHED_RR, a.cfg.RRPriority)
	default:
		err = a.sys.SetNice(int(pid), a.cfg.NiceValue)
	}

	out := classify(err)
	switch out {
	case OutcomePermissionDenied:
		log.Printf("[actuator] permission denied for pid %d", pid)
	case OutcomeFailed:
		log.Printf("[actuator] pid %d: %v", pid, err)
	}
	return out
}

func classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.Is(err, unix.ESRCH):
		// Target exited between snapshot and actuation; not an error.
		return OutcomeNoSuchProcess
	case errors.Is(err, unix.EPERM), errors.Is(err, unix.EACCES):
		return OutcomePermissionDenied
	default:
		return OutcomeFailed
	}
}
