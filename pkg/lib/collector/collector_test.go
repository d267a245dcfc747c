package collector

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/sampler"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestHelperProcess is not a real test. The collector tests launch the test binary
// itself with "-test.run=^TestHelperProcess$ -- <mode> <arg>" to get a child process
// with a known behaviour.
func TestHelperProcess(t *testing.T) {
	args := flag.Args()
	if len(args) == 0 {
		t.Skip("helper process only")
	}

	switch args[0] {
	case "alloc":
		mb, _ := strconv.Atoi(args[1])
		buf := make([]byte, mb<<20)
		for i := 0; i < len(buf); i += 4096 {
			buf[i] = 1
		}
		time.Sleep(10 * time.Second)
		runtime.KeepAlive(buf)
	case "burn":
		// Saturate every core
		deadline := time.Now().Add(10 * time.Second)
		spin := func() {
			for time.Now().Before(deadline) {
			}
		}
		for i := 0; i < runtime.NumCPU()-1; i++ {
			go spin()
		}
		spin()
	case "pidfile":
		_ = os.WriteFile(args[1], []byte(strconv.Itoa(os.Getpid())), 0o600)
		time.Sleep(10 * time.Second)
	}
	os.Exit(0)
}

func helperCommand(t *testing.T, mode, arg string) string {
	t.Helper()
	exe, err := os.Executable()
	require.NoError(t, err)
	if strings.ContainsAny(exe+arg, " \t") {
		t.Skip("helper path contains whitespace")
	}
	return strings.Join([]string{exe, "-test.run=^TestHelperProcess$", "--", mode, arg}, " ")
}

func newTestCollector(t *testing.T, cfg Config) *Collector {
	t.Helper()
	acc, err := sampler.NewAccountant()
	require.NoError(t, err)
	return New(cfg, acc, zerolog.Nop())
}

func fastConfig() Config {
	return Config{
		Window:              time.Second,
		SampleInterval:      100 * time.Millisecond,
		DegradedResponse:    DegradedZero,
		TerminateOnComplete: true,
	}
}

func TestCollectReportsSpawnedProcess(t *testing.T) {
	c := newTestCollector(t, fastConfig())
	pidFile := filepath.Join(t.TempDir(), "pid")

	before := time.Now().Unix()
	m, err := c.Collect(context.Background(), helperCommand(t, "pidfile", pidFile))
	after := time.Now().Unix()
	require.NoError(t, err)

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	pid, err := strconv.Atoi(string(data))
	require.NoError(t, err)

	assert.Equal(t, pid, m.ProcessID)
	assert.GreaterOrEqual(t, m.Timestamp.Unix(), before)
	assert.LessOrEqual(t, m.Timestamp.Unix(), after)
	assert.True(t, m.Sampled)
	assert.Positive(t, m.SampleCount)
	assert.Positive(t, m.MemoryRSSBytes)
	assert.Equal(t, uint64(lib.NetBytesReadPlaceholder), m.NetBytesRead)
	assert.Equal(t, uint64(lib.NetBytesWrittenPlaceholder), m.NetBytesWritten)
	assert.Equal(t, int64(1), c.Spawned())
}

func TestCollectInvalidCommand(t *testing.T) {
	c := newTestCollector(t, fastConfig())

	for _, raw := range []string{"", "   ", "\t \n"} {
		m, err := c.Collect(context.Background(), raw)
		assert.Nil(t, m)

		var vErr *lib.ValidationError
		require.ErrorAs(t, err, &vErr, "command %q", raw)
		assert.ErrorIs(t, err, lib.ErrInvalidCommand)
	}
	assert.Zero(t, c.Spawned())
}

func TestCollectMissingBinary(t *testing.T) {
	c := newTestCollector(t, fastConfig())

	start := time.Now()
	_, err := c.Collect(context.Background(), "no-such-binary-7f3a9 --version")
	elapsed := time.Since(start)

	var spawnErr *lib.SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.Less(t, elapsed, c.Config().Window, "launch failure must not wait for the window")
	assert.Zero(t, c.Spawned())
}

func TestCollectEarlyExitZeroResponse(t *testing.T) {
	cfg := fastConfig()
	cfg.Window = 500 * time.Millisecond
	c := newTestCollector(t, cfg)

	start := time.Now()
	m, err := c.Collect(context.Background(), "true")
	elapsed := time.Since(start)
	require.NoError(t, err)

	assert.Positive(t, m.ProcessID)
	assert.False(t, m.Sampled)
	assert.Zero(t, m.SampleCount)
	assert.Zero(t, m.CPUUsagePercent)
	assert.Zero(t, m.MemoryRSSBytes)
	assert.Zero(t, m.IOBytesRead)
	assert.Zero(t, m.IOBytesWritten)
	assert.Equal(t, uint64(lib.NetBytesReadPlaceholder), m.NetBytesRead)

	// The full window is waited even though the process is gone, and nothing more
	assert.GreaterOrEqual(t, elapsed, cfg.Window)
	assert.Less(t, elapsed, cfg.Window+time.Second)
}

func TestCollectFinishOnExit(t *testing.T) {
	cfg := fastConfig()
	cfg.Window = 5 * time.Second
	cfg.FinishOnExit = true
	c := newTestCollector(t, cfg)

	start := time.Now()
	m, err := c.Collect(context.Background(), "true")
	require.NoError(t, err)
	assert.False(t, m.Sampled)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestCollectDegradedError(t *testing.T) {
	cfg := fastConfig()
	cfg.Window = 300 * time.Millisecond
	cfg.DegradedResponse = DegradedError
	c := newTestCollector(t, cfg)

	m, err := c.Collect(context.Background(), "true")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, lib.ErrNoSample)
}

func TestCollectCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.Window = 5 * time.Second
	c := newTestCollector(t, cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.Collect(ctx, "sleep 10")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 3*time.Second)
}

func TestCollectConcurrentRequestsAreIsolated(t *testing.T) {
	c := newTestCollector(t, fastConfig())

	var (
		mu      sync.Mutex
		results = map[string]*lib.Metrics{}
	)
	commands := map[string]string{
		"1":   helperCommand(t, "alloc", "1"),
		"128": helperCommand(t, "alloc", "128"),
	}
	g, ctx := errgroup.WithContext(context.Background())
	for mb, command := range commands {
		mb, command := mb, command
		g.Go(func() error {
			m, err := c.Collect(ctx, command)
			if err != nil {
				return err
			}
			mu.Lock()
			results[mb] = m
			mu.Unlock()
			return nil
		})
	}
	require.NoError(t, g.Wait())

	small, big := results["1"], results["128"]
	require.True(t, small.Sampled)
	require.True(t, big.Sampled)
	assert.NotEqual(t, small.ProcessID, big.ProcessID)
	assert.Greater(t, big.MemoryRSSBytes, uint64(96<<20))
	assert.Less(t, small.MemoryRSSBytes, uint64(64<<20))
	assert.Equal(t, int64(2), c.Spawned())
}

func TestCollectCPUBounds(t *testing.T) {
	cfg := fastConfig()
	cfg.SampleInterval = 300 * time.Millisecond
	cfg.Window = 1500 * time.Millisecond
	c := newTestCollector(t, cfg)

	m, err := c.Collect(context.Background(), helperCommand(t, "burn", "1"))
	require.NoError(t, err)
	require.True(t, m.Sampled)

	limit := float64(runtime.NumCPU()) * 100
	assert.Greater(t, m.CPUUsagePercent, 10.0)
	assert.LessOrEqual(t, m.CPUUsagePercent, limit)
}

func TestNewAppliesDefaults(t *testing.T) {
	c := New(Config{}, sampler.AccountantFunc(func(context.Context, int) (sampler.Counters, error) {
		return sampler.Counters{}, errors.New("unused")
	}), zerolog.Nop())

	assert.Equal(t, DefaultConfig(), c.Config())
}

func TestCollectLogsExitStatus(t *testing.T) {
	cfg := fastConfig()
	cfg.Window = 300 * time.Millisecond

	acc, err := sampler.NewAccountant()
	require.NoError(t, err)
	var buf bytes.Buffer
	c := New(cfg, acc, zerolog.New(zerolog.SyncWriter(&buf)).Level(zerolog.DebugLevel))

	_, err = c.Collect(context.Background(), "false")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Process exited within the window")
	assert.Contains(t, buf.String(), `"exit_code":1`)

	buf.Reset()
	_, err = c.Collect(context.Background(), "sleep 5")
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "Process exited within the window")
}
