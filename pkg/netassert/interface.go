package netassert

import (
	"context"
	"net"
)

//go:generate mockgen -destination=../../internal/mock/netassert/mock_netassert.go -package=mock_netassert . Resolver,Dialer

// Resolver interface for dns lookups, satisfied by *net.Resolver
type Resolver interface {
	LookupHost(ctx context.Context, host string) ([]string, error)
	LookupMX(ctx context.Context, name string) ([]*net.MX, error)
	LookupTXT(ctx context.Context, name string) ([]string, error)
	LookupNS(ctx context.Context, name string) ([]*net.NS, error)
}

// Dialer interface for tcp connections, satisfied by *net.Dialer
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}
