package main

import (
	"context"
	"time"

	"github.com/SanjoDeundiak/process-metrics/pkg/lib"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// loggingUnary attaches a request-scoped logger carrying a fresh request id to ctx and
// logs the outcome of every call.
func loggingUnary(logger zerolog.Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		reqLogger := logger.With().
			Str("request_id", lib.NewID()).
			Str("method", info.FullMethod).
			Logger()
		ctx = reqLogger.WithContext(ctx)

		start := time.Now()
		resp, err := handler(ctx, req)

		// Inner interceptors may have added fields, e.g. the caller's trust domain
		reqLogger = *zerolog.Ctx(ctx)
		code := status.Code(err)
		ev := reqLogger.Info()
		if code != codes.OK {
			ev = reqLogger.Warn().Err(err)
		}
		ev.Dur("duration", time.Since(start)).Stringer("code", code).Msg("Request finished")

		return resp, err
	}
}

func recoveryUnary() grpc.UnaryServerInterceptor {
	return grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandlerContext(
		func(ctx context.Context, p interface{}) error {
			zerolog.Ctx(ctx).Error().Interface("panic", p).Msg("Recovered from panic in handler")
			return status.Error(codes.Internal, "internal error")
		},
	))
}
