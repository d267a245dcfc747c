package runner

import (
	"errors"
	"testing"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	"github.com/rs/zerolog"
)

func waitDone(t *testing.T, p *Process, d time.Duration) {
	t.Helper()
	select {
	case <-p.Done():
	case <-time.After(d):
		t.Fatalf("process %d did not exit in time", p.Pid)
	}
}

func TestSpawnAndExit(t *testing.T) {
	runner := NewRunner(zerolog.Nop())

	start := time.Now()
	p, err := runner.Spawn("sh -c exit")
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if p.Pid <= 0 {
		t.Fatalf("expected positive pid, got %d", p.Pid)
	}
	if p.StartTime.Before(start) {
		t.Fatalf("start time %v before request start %v", p.StartTime, start)
	}
	if p.Command.Command != "sh" || len(p.Command.Args) != 2 {
		t.Fatalf("unexpected parsed command: %+v", p.Command)
	}

	waitDone(t, p, 2*time.Second)

	st := p.Status()
	if st.State != lib.ProcessStateStopped {
		t.Fatalf("expected state Stopped, got %v", st.State)
	}
	if st.ExitCode == nil || *st.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %v", st.ExitCode)
	}
	if st.EndTime == nil {
		t.Fatalf("expected end time after exit")
	}
	if runner.Spawned() != 1 {
		t.Fatalf("expected 1 spawn, got %d", runner.Spawned())
	}
}

func TestSpawnNonZeroExit(t *testing.T) {
	runner := NewRunner(zerolog.Nop())

	p, err := runner.Spawn("false")
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	waitDone(t, p, 2*time.Second)

	st := p.Status()
	if st.ExitCode == nil || *st.ExitCode == 0 {
		t.Fatalf("expected non-zero exit code, got %v", st.ExitCode)
	}
}

func TestSpawnInvalidCommand(t *testing.T) {
	runner := NewRunner(zerolog.Nop())

	for _, raw := range []string{"", "   ", "\t"} {
		_, err := runner.Spawn(raw)
		if !errors.Is(err, lib.ErrInvalidCommand) {
			t.Fatalf("expected ErrInvalidCommand for %q, got %v", raw, err)
		}
	}
	if runner.Spawned() != 0 {
		t.Fatalf("expected no process to be spawned, got %d", runner.Spawned())
	}
}

func TestSpawnMissingBinary(t *testing.T) {
	runner := NewRunner(zerolog.Nop())

	_, err := runner.Spawn("definitely-not-a-real-binary-5c1f --flag")
	var spawnErr *lib.SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("expected SpawnError, got %v", err)
	}
	if spawnErr.Command.Command != "definitely-not-a-real-binary-5c1f" {
		t.Fatalf("unexpected command in error: %+v", spawnErr.Command)
	}
	if errors.Is(err, lib.ErrInvalidCommand) {
		t.Fatalf("spawn failure must not be reported as a validation error")
	}
	if runner.Spawned() != 0 {
		t.Fatalf("expected no process to be spawned, got %d", runner.Spawned())
	}
}

func TestTerminateKillsProcess(t *testing.T) {
	runner := NewRunner(zerolog.Nop())

	p, err := runner.Spawn("sleep 10")
	if err != nil {
		t.Fatalf("Spawn failed: %v", err)
	}
	if st := p.Status(); st.State != lib.ProcessStateRunning {
		t.Fatalf("expected Running, got %v", st.State)
	}

	if err := p.Terminate(); err != nil {
		t.Fatalf("Terminate failed: %v", err)
	}
	waitDone(t, p, 3*time.Second)

	st := p.Status()
	if st.State != lib.ProcessStateStopped || st.EndTime == nil {
		t.Fatalf("process did not stop: %+v", st)
	}

	// Second call on an exited process is a no-op
	if err := p.Terminate(); err != nil {
		t.Fatalf("Terminate on exited process failed: %v", err)
	}
}
