package main

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
)

const defaultAddress = "127.0.0.1:50051"

func dial(ctx context.Context) (*grpc.ClientConn, error) {
	addr := os.Getenv("PMS_ADDRESS")
	if strings.TrimSpace(addr) == "" {
		addr = defaultAddress
	}

	creds, err := transportCredentials()
	if err != nil {
		return nil, err
	}

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(creds))
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// transportCredentials uses mTLS when PMS_TLS_KEY, PMS_TLS_CERT and PMS_CA_TLS_CERT are all
// set and plaintext when none are.
func transportCredentials() (credentials.TransportCredentials, error) {
	keyPEM := strings.TrimSpace(os.Getenv("PMS_TLS_KEY"))
	certPEM := strings.TrimSpace(os.Getenv("PMS_TLS_CERT"))
	caPEM := strings.TrimSpace(os.Getenv("PMS_CA_TLS_CERT"))
	if keyPEM == "" && certPEM == "" && caPEM == "" {
		return insecure.NewCredentials(), nil
	}
	if keyPEM == "" || certPEM == "" || caPEM == "" {
		return nil, fmt.Errorf("incomplete TLS environment; require all of PMS_TLS_KEY, PMS_TLS_CERT, PMS_CA_TLS_CERT")
	}

	cert, err := tls.X509KeyPair([]byte(certPEM), []byte(keyPEM))
	if err != nil {
		return nil, fmt.Errorf("failed to parse TLS cert/key from env: %w", err)
	}

	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM([]byte(caPEM)) {
		return nil, fmt.Errorf("failed to parse CA cert from env")
	}

	return credentials.NewTLS(&tls.Config{
		Certificates: []tls.Certificate{cert},
		RootCAs:      pool,
		MinVersion:   tls.VersionTLS13,
	}), nil
}
