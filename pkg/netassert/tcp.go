package netassert

import (
	"context"
	"fmt"
	"net"
	"strconv"
)

// SocketOpen asserts a tcp connection to host:port is established within
// the timeout
func (a *Asserter) SocketOpen(ctx context.Context, host string, port int, description string) bool {
	address, err := a.connect(ctx, host, port)

	if err != nil {
		return a.report(false, description, fmt.Sprintf("connection to %s failed: %s", address, err))
	}

	return a.report(true, description, "")
}

// SocketClosed asserts no tcp connection to host:port can be established
// within the timeout. Refusal, timeout and any other error all count as
// closed.
func (a *Asserter) SocketClosed(ctx context.Context, host string, port int, description string) bool {
	address, err := a.connect(ctx, host, port)

	if err != nil {
		a.log.Debug().Err(err).Str("address", address).Msg("socket closed")
		return a.report(true, description, "")
	}

	return a.report(false, description, fmt.Sprintf("connection to %s succeeded", address))
}

func (a *Asserter) connect(ctx context.Context, host string, port int) (string, error) {
	address := net.JoinHostPort(host, strconv.Itoa(port))

	if err := validateHost(host); err != nil {
		return address, err
	}

	if err := validatePort(port); err != nil {
		return address, err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	conn, err := a.dialer.DialContext(ctx, "tcp", address)

	if err != nil {
		if dErr := deadlineErr(ctx); dErr != nil {
			return address, dErr
		}

		return address, err
	}

	defer conn.Close()

	// a dialer that ignores ctx may hand back a connection late
	if err := deadlineErr(ctx); err != nil {
		return address, err
	}

	a.log.Debug().Str("address", address).Msg("socket open")

	return address, nil
}
