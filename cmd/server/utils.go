package main

import (
	apiv1 "github.com/SanjoDeundiak/process-metrics/api/v1"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
)

func toProtoMetrics(m *lib.Metrics) *apiv1.MetricsResponse {
	return &apiv1.MetricsResponse{
		ProcessId:       int64(m.ProcessID),
		Timestamp:       m.Timestamp.Unix(),
		CpuUsagePercent: m.CPUUsagePercent,
		MemoryRssBytes:  int64(m.MemoryRSSBytes),
		IoBytesRead:     int64(m.IOBytesRead),
		IoBytesWritten:  int64(m.IOBytesWritten),
		NetBytesRead:    int64(m.NetBytesRead),
		NetBytesWritten: int64(m.NetBytesWritten),
		Sampled:         m.Sampled,
		SampleCount:     m.SampleCount,
	}
}
