package sampler

import (
	"context"
	"sync"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/snapshot"
	"github.com/rs/zerolog"
)

// Sampler periodically reads accounting for one process and publishes the derived
// Sample into a snapshot.Store. A single Sampler can serve any number of concurrent
// requests; all per-target state lives in the goroutine started by Start.
type Sampler struct {
	accountant Accountant
	interval   time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

// Handle controls one running sampling goroutine.
type Handle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// New creates a Sampler reading through accountant every interval.
func New(accountant Accountant, interval time.Duration, logger zerolog.Logger) *Sampler {
	return &Sampler{
		accountant: accountant,
		interval:   interval,
		logger:     logger.With().Str("component", "sampler").Logger(),
		now:        time.Now,
	}
}

// Start begins sampling pid into store. The first read only establishes a CPU baseline;
// every following tick publishes one Sample. Sampling stops silently on the first
// failed read, when exited is closed, when ctx is done, or when the returned Handle is
// stopped. Once the process is reaped its pid may be reused, so a read is discarded if
// exited was closed by the time it completes or if the process start time changed.
func (s *Sampler) Start(ctx context.Context, pid int, exited <-chan struct{}, store *snapshot.Store) *Handle {
	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{cancel: cancel, done: make(chan struct{})}

	go func() {
		defer close(h.done)
		s.run(ctx, pid, exited, store)
	}()

	return h
}

func (s *Sampler) run(ctx context.Context, pid int, exited <-chan struct{}, store *snapshot.Store) {
	logger := s.logger.With().Int("pid", pid).Logger()

	prev, err := s.accountant.Read(ctx, pid)
	if err != nil {
		logger.Debug().Err(err).Msg("Baseline read failed, not sampling")
		return
	}
	prevAt := s.now()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-exited:
			logger.Debug().Msg("Process exited, stopping sampler")
			return
		case <-ticker.C:
		}

		cur, err := s.accountant.Read(ctx, pid)
		if err != nil {
			logger.Debug().Err(err).Msg("Read failed, stopping sampler")
			return
		}
		if isClosed(exited) || cur.StartTime != prev.StartTime {
			logger.Debug().Msg("Pid no longer refers to the sampled process, stopping sampler")
			return
		}
		at := s.now()

		sample := lib.Sample{
			CPUUsagePercent: cpuPercent(prev, cur, at.Sub(prevAt)),
			MemoryRSSBytes:  cur.RSSBytes,
			IOBytesRead:     cur.ReadBytes,
			IOBytesWritten:  cur.WriteBytes,
			SampledAt:       at,
		}
		// A cancelled request must not observe writes made after it stopped waiting.
		if ctx.Err() != nil {
			return
		}
		store.Set(sample)
		logger.Trace().Float64("cpu", sample.CPUUsagePercent).Uint64("rss", sample.MemoryRSSBytes).Msg("Sample")

		prev, prevAt = cur, at
	}
}

func isClosed(ch <-chan struct{}) bool {
	select {
	case <-ch:
		return true
	default:
		return false
	}
}

// Stop cancels sampling and waits for the goroutine to exit. It is safe to call more
// than once and from several goroutines.
func (h *Handle) Stop() {
	h.once.Do(h.cancel)
	<-h.done
}

// Done is closed when the sampling goroutine has exited.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}
