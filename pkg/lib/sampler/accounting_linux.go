//go:build linux

package sampler

import (
	"context"
	"errors"
	"io/fs"

	"github.com/prometheus/procfs"
	"github.com/tklauser/go-sysconf"
)

// Used when sysconf(_SC_CLK_TCK) is unavailable. 100 Hz is the configured value on
// virtually every Linux system.
const defaultClockTicks = 100

type procfsAccountant struct {
	fs         procfs.FS
	clockTicks uint64
}

// NewAccountant returns an Accountant reading /proc.
func NewAccountant() (Accountant, error) {
	procFS, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, err
	}

	return &procfsAccountant{fs: procFS, clockTicks: clockTicks()}, nil
}

func clockTicks() uint64 {
	tck, err := sysconf.Sysconf(sysconf.SC_CLK_TCK)
	if err != nil || tck <= 0 {
		return defaultClockTicks
	}
	return uint64(tck)
}

func (a *procfsAccountant) Read(_ context.Context, pid int) (Counters, error) {
	proc, err := a.fs.Proc(pid)
	if err != nil {
		return Counters{}, err
	}

	stat, err := proc.Stat()
	if err != nil {
		return Counters{}, err
	}
	// Zombie or dead: the process has exited but is not reaped yet
	if stat.State == "Z" || stat.State == "X" {
		return Counters{}, ErrProcessGone
	}

	c := Counters{
		StartTime:  stat.Starttime,
		CPUTicks:   uint64(stat.UTime + stat.STime),
		ClockTicks: a.clockTicks,
	}
	if rss := stat.ResidentMemory(); rss > 0 {
		c.RSSBytes = uint64(rss)
	}

	// /proc/<pid>/io may be unreadable under ptrace restrictions while stat is not;
	// stat stays the liveness signal and I/O counters are reported as zero.
	pio, err := proc.IO()
	switch {
	case err == nil:
		c.ReadBytes = pio.ReadBytes
		c.WriteBytes = pio.WriteBytes
	case errors.Is(err, fs.ErrPermission):
	default:
		return Counters{}, err
	}

	return c, nil
}
