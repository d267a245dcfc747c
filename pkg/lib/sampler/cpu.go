package sampler

import (
	"runtime"
	"time"
)

// maxCPUPercent is the usage of every core being fully busy.
var maxCPUPercent = float64(runtime.NumCPU()) * 100

// cpuPercent returns the CPU usage between two accounting reads taken elapsed apart:
//
//	(ticks_cur - ticks_prev) / clock_ticks / elapsed_seconds * 100
//
// Deltas are always between consecutive reads, never against the sampler start, so each
// Sample reflects only the last interval. 100 means one fully used core.
//
// The result is clamped to [0, NumCPU*100]. CPU time is accounted in whole clock ticks
// while elapsed is wall time measured after each read, so a process saturating every
// core can otherwise overshoot the limit by a tick.
func cpuPercent(prev, cur Counters, elapsed time.Duration) float64 {
	if elapsed <= 0 || cur.ClockTicks == 0 || cur.CPUTicks < prev.CPUTicks {
		return 0
	}

	cpuSecs := float64(cur.CPUTicks-prev.CPUTicks) / float64(cur.ClockTicks)
	return min(cpuSecs/elapsed.Seconds()*100, maxCPUPercent)
}
