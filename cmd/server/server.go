package main

import (
	"fmt"

	apiv1 "github.com/SanjoDeundiak/process-metrics/api/v1"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/collector"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/config"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/sampler"
	"github.com/rs/zerolog"
)

type MetricsServiceServer struct {
	apiv1.UnimplementedMetricsServiceServer
	collector *collector.Collector
}

func NewMetricsServiceServer(cfg config.CollectorConfig, logger zerolog.Logger) (*MetricsServiceServer, error) {
	accountant, err := sampler.NewAccountant()
	if err != nil {
		return nil, fmt.Errorf("failed to open process accounting: %w", err)
	}

	return &MetricsServiceServer{
		collector: collector.New(toCollectorConfig(cfg), accountant, logger),
	}, nil
}

func toCollectorConfig(cfg config.CollectorConfig) collector.Config {
	return collector.Config{
		Window:              cfg.Window,
		SampleInterval:      cfg.SampleInterval,
		DegradedResponse:    collector.DegradedPolicy(cfg.DegradedResponse),
		FinishOnExit:        cfg.FinishOnExit,
		TerminateOnComplete: cfg.TerminateOnComplete,
	}
}
