package main

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"os"

	apiv1 "github.com/SanjoDeundiak/process-metrics/api/v1"
	"github.com/SanjoDeundiak/process-metrics/pkg/lib/config"
	grpc_middleware "github.com/grpc-ecosystem/go-grpc-middleware"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const (
	envTLSKey    = "PMS_TLS_KEY"
	envTLSCert   = "PMS_TLS_CERT"
	envCATLSCert = "PMS_CA_TLS_CERT"
)

// GRPCServer encapsulates the optional mTLS configuration, gRPC server instance and listener.
type GRPCServer struct {
	lis    net.Listener
	s      *grpc.Server
	health *health.Server
	tls    bool
}

// NewGRPCServer listens on the configured address and builds a server for the metrics
// service. mTLS is enabled when the PMS_TLS_* variables are set.
func NewGRPCServer(cfg *config.Config, logger zerolog.Logger) (*GRPCServer, error) {
	tlsConfig, err := loadTLSConfig()
	if err != nil {
		return nil, err
	}

	lis, err := net.Listen("tcp", cfg.Server.Address)
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	srv, err := newGRPCServer(lis, cfg.Collector, tlsConfig, logger)
	if err != nil {
		_ = lis.Close()
		return nil, err
	}
	return srv, nil
}

func newGRPCServer(lis net.Listener, cfg config.CollectorConfig, tlsConfig *tls.Config, logger zerolog.Logger) (*GRPCServer, error) {
	unary := []grpc.UnaryServerInterceptor{loggingUnary(logger)}
	var opts []grpc.ServerOption
	if tlsConfig != nil {
		opts = append(opts,
			grpc.Creds(credentials.NewTLS(tlsConfig)),
			grpc.StreamInterceptor(authenticateStream),
		)
		unary = append(unary, authenticateUnary)
	}
	unary = append(unary, recoveryUnary())
	opts = append(opts, grpc.UnaryInterceptor(grpc_middleware.ChainUnaryServer(unary...)))

	s := grpc.NewServer(opts...)

	server, err := NewMetricsServiceServer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create service server: %w", err)
	}
	apiv1.RegisterMetricsServiceServer(s, server)

	hs := health.NewServer()
	hs.SetServingStatus(apiv1.MetricsService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(s, hs)

	return &GRPCServer{lis: lis, s: s, health: hs, tls: tlsConfig != nil}, nil
}

// loadTLSConfig returns nil when none of the TLS variables are set.
func loadTLSConfig() (*tls.Config, error) {
	keyPEM := os.Getenv(envTLSKey)
	certPEM := os.Getenv(envTLSCert)
	caPEM := os.Getenv(envCATLSCert)
	if keyPEM == "" && certPEM == "" && caPEM == "" {
		return nil, nil
	}
	if keyPEM == "" || certPEM == "" || caPEM == "" {
		return nil, fmt.Errorf("incomplete TLS environment; require all of %s, %s, %s", envTLSKey, envTLSCert, envCATLSCert)
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to load server key pair: %w", err)
	}

	caPool := x509.NewCertPool()
	if ok := caPool.AppendCertsFromPEM([]byte(caPEM)); !ok {
		return nil, fmt.Errorf("failed to append CA certificate to pool")
	}

	return &tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      caPool,
		ClientCAs:    caPool,
		ClientAuth:   tls.RequireAndVerifyClientCert,
		MinVersion:   tls.VersionTLS13,
	}, nil
}

// Serve starts serving gRPC on the configured listener.
func (g *GRPCServer) Serve() error {
	return g.s.Serve(g.lis)
}

// Addr returns the network address the server is bound to.
func (g *GRPCServer) Addr() net.Addr { return g.lis.Addr() }

// TLS reports whether the server requires client certificates.
func (g *GRPCServer) TLS() bool { return g.tls }

// Stop marks the service as not serving and gracefully stops the gRPC server. In-flight
// requests are allowed to finish their observation window.
func (g *GRPCServer) Stop() {
	g.health.Shutdown()
	g.s.GracefulStop()
}
