package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	apiv1 "github.com/SanjoDeundiak/process-metrics/api/v1"
)

func printMetricsTable(w io.Writer, command string, resp *apiv1.MetricsResponse) {
	rows := [][2]string{
		{"COMMAND", command},
		{"PID", strconv.FormatInt(resp.GetProcessId(), 10)},
		{"STARTED", time.Unix(resp.GetTimestamp(), 0).UTC().Format(time.RFC3339)},
		{"CPU %", strconv.FormatFloat(resp.GetCpuUsagePercent(), 'f', 2, 64)},
		{"RSS BYTES", strconv.FormatInt(resp.GetMemoryRssBytes(), 10)},
		{"IO READ BYTES", strconv.FormatInt(resp.GetIoBytesRead(), 10)},
		{"IO WRITTEN BYTES", strconv.FormatInt(resp.GetIoBytesWritten(), 10)},
		{"NET READ BYTES", strconv.FormatInt(resp.GetNetBytesRead(), 10)},
		{"NET WRITTEN BYTES", strconv.FormatInt(resp.GetNetBytesWritten(), 10)},
		{"SAMPLES", strconv.FormatUint(uint64(resp.GetSampleCount()), 10)},
	}
	if !resp.GetSampled() {
		// Process exited or could not be read before the first sample
		rows = append(rows, [2]string{"NOTE", "no sample collected"})
	}

	// Determine column widths
	keyW, valW := len("FIELD"), len("VALUE")
	for _, r := range rows {
		keyW = maxInt(keyW, len(r[0]))
		valW = maxInt(valW, len(r[1]))
	}

	sep := fmt.Sprintf("+-%s-+-%s-+\n", strings.Repeat("-", keyW), strings.Repeat("-", valW))
	_, _ = fmt.Fprint(w, sep)
	_, _ = fmt.Fprintf(w, "| %s | %s |\n", pad("FIELD", keyW), pad("VALUE", valW))
	_, _ = fmt.Fprint(w, sep)
	for _, r := range rows {
		_, _ = fmt.Fprintf(w, "| %s | %s |\n", pad(r[0], keyW), pad(r[1], valW))
	}
	_, _ = fmt.Fprint(w, sep)
}

func pad(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
