//go:build !linux

package sampler

import (
	"context"

	"github.com/shirou/gopsutil/v3/process"
)

// gopsutil reports CPU time in seconds; it is converted to ticks at this rate so that
// the sampler arithmetic is identical on every platform.
const nominalClockTicks = 100

type psutilAccountant struct{}

// NewAccountant returns an Accountant backed by gopsutil.
func NewAccountant() (Accountant, error) {
	return psutilAccountant{}, nil
}

func (psutilAccountant) Read(ctx context.Context, pid int) (Counters, error) {
	p, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return Counters{}, err
	}

	created, err := p.CreateTimeWithContext(ctx)
	if err != nil {
		return Counters{}, err
	}

	times, err := p.TimesWithContext(ctx)
	if err != nil {
		return Counters{}, err
	}

	mem, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return Counters{}, err
	}

	c := Counters{
		StartTime:  uint64(created),
		CPUTicks:   uint64((times.User + times.System) * nominalClockTicks),
		ClockTicks: nominalClockTicks,
		RSSBytes:   mem.RSS,
	}

	// Not implemented on darwin; counters stay zero there.
	if io, err := p.IOCountersWithContext(ctx); err == nil {
		c.ReadBytes = io.ReadBytes
		c.WriteBytes = io.WriteBytes
	}

	return c, nil
}
