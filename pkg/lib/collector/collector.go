package collector

import (
	"context"
	"fmt"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/runner"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/sampler"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/snapshot"
	"github.com/rs/zerolog"
)

// DegradedPolicy selects the response when the observation window ends without a sample.
type DegradedPolicy string

const (
	// DegradedZero responds with all metric fields zero and Sampled false.
	DegradedZero DegradedPolicy = "zero"
	// DegradedError fails the request with lib.ErrNoSample.
	DegradedError DegradedPolicy = "error"
)

const (
	DefaultWindow         = 2000 * time.Millisecond
	DefaultSampleInterval = 300 * time.Millisecond
)

// Config holds the request handler tunables.
type Config struct {
	// Window is how long a request observes the launched process.
	Window time.Duration
	// SampleInterval is the period between accounting reads.
	SampleInterval time.Duration
	// DegradedResponse is applied when no sample exists at the end of the window.
	DegradedResponse DegradedPolicy
	// FinishOnExit ends the window early when the process exits.
	FinishOnExit bool
	// TerminateOnComplete kills the process group once the request completes.
	TerminateOnComplete bool
}

func DefaultConfig() Config {
	return Config{
		Window:           DefaultWindow,
		SampleInterval:   DefaultSampleInterval,
		DegradedResponse: DegradedZero,
	}
}

// Collector serves metrics requests: it launches the requested command, samples it in
// the background for the observation window and composes one Metrics snapshot.
// Requests share nothing but the Collector's immutable configuration.
type Collector struct {
	cfg     Config
	runner  *runner.Runner
	sampler *sampler.Sampler
	logger  zerolog.Logger
}

// New creates a Collector reading process accounting through accountant.
func New(cfg Config, accountant sampler.Accountant, logger zerolog.Logger) *Collector {
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.SampleInterval <= 0 {
		cfg.SampleInterval = DefaultSampleInterval
	}
	if cfg.DegradedResponse == "" {
		cfg.DegradedResponse = DegradedZero
	}

	return &Collector{
		cfg:     cfg,
		runner:  runner.NewRunner(logger),
		sampler: sampler.New(accountant, cfg.SampleInterval, logger),
		logger:  logger.With().Str("component", "collector").Logger(),
	}
}

// Config returns the effective configuration.
func (c *Collector) Config() Config {
	return c.cfg
}

// Spawned returns the number of processes launched so far.
func (c *Collector) Spawned() int64 {
	return c.runner.Spawned()
}

// Collect runs one metrics request for the raw command string.
//
// It returns a *lib.ValidationError if the command is empty, a *lib.SpawnError if it
// cannot be started, and ctx.Err() if ctx ends before the observation window does.
// When no sample was taken the result is all-zero with Sampled false, or lib.ErrNoSample
// under the DegradedError policy.
func (c *Collector) Collect(ctx context.Context, raw string) (*lib.Metrics, error) {
	logger := c.requestLogger(ctx)
	state := lib.RequestStatePending
	transition := func(next lib.RequestState) {
		logger.Debug().Stringer("from", state).Stringer("to", next).Msg("Request state")
		state = next
	}

	process, err := c.runner.Spawn(raw)
	if err != nil {
		transition(lib.RequestStateFailed)
		return nil, err
	}
	transition(lib.RequestStateLaunched)
	logger = logger.With().Int("pid", process.Pid).Logger()

	if c.cfg.TerminateOnComplete {
		defer func() {
			if err := process.Terminate(); err != nil {
				logger.Warn().Err(err).Msg("Failed to terminate process")
			}
		}()
	}

	store := snapshot.New()
	handle := c.sampler.Start(ctx, process.Pid, process.Done(), store)
	defer handle.Stop()
	transition(lib.RequestStateSampling)

	var exited <-chan struct{}
	if c.cfg.FinishOnExit {
		exited = process.Done()
	}

	timer := time.NewTimer(c.cfg.Window)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-exited:
		logger.Debug().Msg("Process exited before the window elapsed")
	case <-ctx.Done():
		transition(lib.RequestStateFailed)
		return nil, ctx.Err()
	}
	transition(lib.RequestStateWindowElapsed)

	// Stop before reading so the result is not raced by a late tick.
	handle.Stop()

	if st := process.Status(); st.State == lib.ProcessStateStopped {
		ev := logger.Debug()
		if st.ExitCode != nil {
			ev = ev.Int("exit_code", *st.ExitCode)
		}
		if st.EndTime != nil {
			ev = ev.Dur("runtime", st.EndTime.Sub(st.StartTime))
		}
		ev.Msg("Process exited within the window")
	}

	metrics := &lib.Metrics{
		ProcessID:       process.Pid,
		Timestamp:       process.StartTime,
		NetBytesRead:    lib.NetBytesReadPlaceholder,
		NetBytesWritten: lib.NetBytesWrittenPlaceholder,
	}

	sample, ok := store.Get()
	if !ok {
		if c.cfg.DegradedResponse == DegradedError {
			transition(lib.RequestStateFailed)
			return nil, fmt.Errorf("pid %d: %w", process.Pid, lib.ErrNoSample)
		}
		logger.Debug().Msg("No sample collected, responding with zero metrics")
	} else {
		metrics.Sampled = true
		metrics.SampleCount = store.Count()
		metrics.CPUUsagePercent = sample.CPUUsagePercent
		metrics.MemoryRSSBytes = sample.MemoryRSSBytes
		metrics.IOBytesRead = sample.IOBytesRead
		metrics.IOBytesWritten = sample.IOBytesWritten
	}

	transition(lib.RequestStateResponded)
	return metrics, nil
}

// requestLogger prefers the logger carried by ctx, which holds the request id.
func (c *Collector) requestLogger(ctx context.Context) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l.GetLevel() != zerolog.Disabled {
		return l.With().Str("component", "collector").Logger()
	}
	return c.logger
}
