package runner

import (
	"errors"
	"os/exec"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
)

// Spawn parses raw into an executable and arguments and starts it.
// It returns a *lib.ValidationError for an empty command and a *lib.SpawnError when
// the OS refuses to start the process.
func (runner *Runner) Spawn(raw string) (*Process, error) {
	command, err := lib.ParseCommand(raw)
	if err != nil {
		return nil, err
	}

	cmd := exec.Command(command.Command, command.Args...)
	// Stdin, Stdout and Stderr are left nil, so they are connected to /dev/null
	cmd.SysProcAttr = sysProcAttr()

	runner.logger.Debug().Str("command", command.String()).Msg("Starting process")
	if err := cmd.Start(); err != nil {
		runner.logger.Debug().Err(err).Str("command", command.Command).Msg("Failed to start process")
		return nil, &lib.SpawnError{Command: command, Err: err}
	}
	runner.spawned.Add(1)

	process := &Process{
		Pid:       cmd.Process.Pid,
		StartTime: time.Now(),
		Command:   command,
		cmd:       cmd,
		done:      make(chan struct{}),
		state:     lib.ProcessStateRunning,
	}

	// Waiter
	go func() {
		err := cmd.Wait()

		process.mu.Lock()
		if err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code := exitErr.ExitCode()
				process.exitCode = &code
			}
		} else {
			code := 0
			process.exitCode = &code
		}
		now := time.Now()
		process.end = &now
		process.state = lib.ProcessStateStopped
		process.mu.Unlock()

		runner.logger.Debug().Int("pid", process.Pid).Err(err).Msg("Process finished")
		close(process.done)
	}()

	return process, nil
}
