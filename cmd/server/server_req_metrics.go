package main

import (
	"context"
	"errors"

	apiv1 "github.com/SanjoDeundiak/process-metrics/api/v1"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (s *MetricsServiceServer) ReqMetrics(ctx context.Context, request *apiv1.MetricsRequest) (*apiv1.MetricsResponse, error) {
	logger := zerolog.Ctx(ctx)
	logger.Info().Str("command", request.GetCommand()).Msg("Collecting metrics")

	metrics, err := s.collector.Collect(ctx, request.GetCommand())
	if err != nil {
		return nil, toStatusError(err)
	}

	logger.Info().
		Int("pid", metrics.ProcessID).
		Bool("sampled", metrics.Sampled).
		Float64("cpu", metrics.CPUUsagePercent).
		Uint64("rss", metrics.MemoryRSSBytes).
		Msg("Collected metrics")

	return toProtoMetrics(metrics), nil
}

func toStatusError(err error) error {
	var spawnErr *lib.SpawnError
	switch {
	case errors.Is(err, lib.ErrInvalidCommand):
		return status.Errorf(codes.InvalidArgument, "invalid command: %s", err)
	case errors.As(err, &spawnErr):
		return status.Errorf(codes.Internal, "error starting process: %s", err)
	case errors.Is(err, lib.ErrNoSample):
		return status.Errorf(codes.Unavailable, "%s", err)
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Errorf(codes.Internal, "%s", err)
	}
}
