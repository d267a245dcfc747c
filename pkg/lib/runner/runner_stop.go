package runner

import (
	"time"

	"golang.org/x/sys/unix"
)

// Terminate kills the process group of p and waits up to one second for the child to be
// reaped. It is a no-op for a process that has already exited.
func (p *Process) Terminate() error {
	select {
	case <-p.done:
		return nil
	default:
	}

	// Negative pid addresses the process group created by Setpgid
	if err := unix.Kill(-p.Pid, unix.SIGKILL); err != nil && err != unix.ESRCH {
		return err
	}

	select {
	case <-p.done:
	case <-time.After(1 * time.Second):
	}
	return nil
}
