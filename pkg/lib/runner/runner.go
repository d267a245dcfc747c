package runner

import (
	"os/exec"
	"sync"
	"sync/atomic"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	"github.com/rs/zerolog"
)

// Runner launches processes on behalf of metrics requests. It keeps no registry of the
// processes it starts: each Process is owned by the request that spawned it.
type Runner struct {
	logger  zerolog.Logger
	spawned atomic.Int64
}

// Process is a handle to a launched OS process. The child is reaped by a waiter
// goroutine; Done is closed once it has exited.
type Process struct {
	Pid       int
	StartTime time.Time
	Command   lib.Command

	cmd  *exec.Cmd
	done chan struct{}

	// status fields
	mu       sync.RWMutex
	state    lib.ProcessState
	exitCode *int
	end      *time.Time
}

// NewRunner creates a new Runner.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger.With().Str("component", "runner").Logger()}
}

// Spawned returns the number of processes successfully started by this Runner.
func (runner *Runner) Spawned() int64 {
	return runner.spawned.Load()
}

// Done is closed when the process has exited and been reaped.
func (p *Process) Done() <-chan struct{} {
	return p.done
}

// Status returns the current process state.
func (p *Process) Status() lib.ProcessStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()

	st := lib.ProcessStatus{State: p.state, StartTime: p.StartTime}
	if p.exitCode != nil {
		st.ExitCode = new(int)
		*st.ExitCode = *p.exitCode
	}
	if p.end != nil {
		t := *p.end
		st.EndTime = &t
	}
	return st
}
