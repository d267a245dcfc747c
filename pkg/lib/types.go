package lib

import (
	"strings"
	"time"
)

// Placeholder network counters reported with every response. Per-process network
// attribution is not measured.
const (
	NetBytesReadPlaceholder    = 512
	NetBytesWrittenPlaceholder = 256
)

// RequestState tracks a metrics request through its lifecycle.
type RequestState int

const (
	RequestStatePending RequestState = iota
	RequestStateLaunched
	RequestStateSampling
	RequestStateWindowElapsed
	RequestStateResponded
	RequestStateFailed
)

func (s RequestState) String() string {
	switch s {
	case RequestStatePending:
		return "pending"
	case RequestStateLaunched:
		return "launched"
	case RequestStateSampling:
		return "sampling"
	case RequestStateWindowElapsed:
		return "window_elapsed"
	case RequestStateResponded:
		return "responded"
	case RequestStateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ProcessState mirrors the high-level state of a launched process.
type ProcessState int

const (
	ProcessStateUnspecified ProcessState = iota
	ProcessStateRunning
	ProcessStateStopped
)

// ProcessStatus captures runtime state and timestamps.
type ProcessStatus struct {
	State     ProcessState
	ExitCode  *int
	StartTime time.Time
	EndTime   *time.Time
}

// Command captures command metadata used to start a process.
type Command struct {
	Command string
	Args    []string
}

// ParseCommand splits raw on whitespace into an executable and its arguments.
func ParseCommand(raw string) (Command, error) {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return Command{}, NewValidationError("command", raw, ErrInvalidCommand)
	}
	return Command{Command: fields[0], Args: fields[1:]}, nil
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Command}, c.Args...), " ")
}

// Sample is one point-in-time measurement of a process. Never mutated after creation.
type Sample struct {
	CPUUsagePercent float64
	MemoryRSSBytes  uint64
	IOBytesRead     uint64
	IOBytesWritten  uint64
	SampledAt       time.Time
}

// Metrics is the result of one metrics request.
type Metrics struct {
	ProcessID       int
	Timestamp       time.Time
	CPUUsagePercent float64
	MemoryRSSBytes  uint64
	IOBytesRead     uint64
	IOBytesWritten  uint64
	NetBytesRead    uint64
	NetBytesWritten uint64

	// Sampled is false when the response carries the zero-valued fallback.
	Sampled     bool
	SampleCount uint32
}
