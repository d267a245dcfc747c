package sampler

import (
	"context"
	"errors"
)

// ErrProcessGone is returned by an Accountant when the target has exited.
var ErrProcessGone = errors.New("process is no longer running")

// Counters is the result of one accounting read. CPU time is cumulative since the
// process started and expressed in clock ticks.
type Counters struct {
	// StartTime identifies the process instance behind the pid; its unit is
	// accountant-specific and it is only compared for equality.
	StartTime  uint64
	CPUTicks   uint64
	ClockTicks uint64
	RSSBytes   uint64
	ReadBytes  uint64
	WriteBytes uint64
}

// Accountant performs per-process accounting reads keyed by process id.
type Accountant interface {
	Read(ctx context.Context, pid int) (Counters, error)
}

// AccountantFunc adapts a function to the Accountant interface.
type AccountantFunc func(ctx context.Context, pid int) (Counters, error)

func (f AccountantFunc) Read(ctx context.Context, pid int) (Counters, error) {
	return f(ctx, pid)
}
