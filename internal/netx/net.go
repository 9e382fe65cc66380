// Package netx extracts the client network address recorded in audit rows.
package netx

import (
	"context"
	"strings"

	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
)

// ForwardedForHeader is honoured when the server sits behind a proxy that
// sets it.
const ForwardedForHeader = "x-forwarded-for"

// ClientAddr returns the caller's address for an incoming gRPC context: the
// first x-forwarded-for hop when present, the transport peer otherwise, or
// "" when neither is known.
func ClientAddr(ctx context.Context) string {
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(ForwardedForHeader); len(v) > 0 {
			first, _, _ := strings.Cut(v[0], ",")
			if first = strings.TrimSpace(first); first != "" {
				return first
			}
		}
	}
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return ""
}
