package main

import (
	"context"

	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

// trustDomainFromPeer reads the first SPIFFE URI SAN of the verified client certificate,
// e.g. spiffe://client1 -> "client1".
func trustDomainFromPeer(ctx context.Context) (string, bool) {
	p, ok := peer.FromContext(ctx)
	if !ok || p == nil {
		return "", false
	}

	ti, ok := p.AuthInfo.(credentials.TLSInfo)
	if !ok || len(ti.State.PeerCertificates) == 0 || ti.State.PeerCertificates[0] == nil {
		return "", false
	}

	for _, uri := range ti.State.PeerCertificates[0].URIs {
		if uri != nil && uri.Scheme == "spiffe" && uri.Host != "" {
			return uri.Host, true
		}
	}
	return "", false
}

// withCaller adds the trust domain to the request logger in ctx, so every line logged for
// the request, including the final outcome, names its caller.
func withCaller(ctx context.Context, domain string) context.Context {
	zerolog.Ctx(ctx).UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("spiffe_id", domain)
	})
	return ctx
}

// authenticateUnary rejects callers without a SPIFFE identity. Installed only with mTLS.
func authenticateUnary(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	domain, ok := trustDomainFromPeer(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	return handler(withCaller(ctx, domain), req)
}

// authenticateStream guards the health Watch stream, the only streaming RPC served.
func authenticateStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	if _, ok := trustDomainFromPeer(ss.Context()); !ok {
		return status.Error(codes.Unauthenticated, "client must have SPIFFE ID")
	}

	return handler(srv, ss)
}
