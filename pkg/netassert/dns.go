package netassert

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/robgonnella/netassert/internal/exception"
)

func newResolver(conf DNSConfig) Resolver {
	if conf.Server == "" {
		return net.DefaultResolver
	}

	server := conf.Server

	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}

	return &net.Resolver{
		PreferGo: true,
		Dial: func(ctx context.Context, network, address string) (net.Conn, error) {
			d := net.Dialer{}
			return d.DialContext(ctx, network, server)
		},
	}
}

// Resolves asserts a dns query for host returns at least one answer
func (a *Asserter) Resolves(ctx context.Context, host, description string) bool {
	if host == "" {
		return a.report(false, description, fmt.Sprintf("%s: empty host", exception.ErrInvalidTarget))
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	count, err := countAnswers(ctx, a.resolver, host)

	a.log.Debug().Str("host", host).Int("answers", count).Err(err).Msg("dns query finished")

	if err != nil {
		return a.report(false, description, fmt.Sprintf("failed to resolve %s: %s", host, err))
	}

	return a.report(true, description, "")
}

// countAnswers approximates an ANY query: addresses first, then mx, txt and
// ns records, all under the same deadline
func countAnswers(ctx context.Context, r Resolver, host string) (int, error) {
	addrs, firstErr := r.LookupHost(ctx, host)

	if len(addrs) > 0 {
		return len(addrs), nil
	}

	if err := deadlineErr(ctx); err != nil {
		return 0, err
	}

	lookups := []func() (int, error){
		func() (int, error) {
			mxs, err := r.LookupMX(ctx, host)
			return len(mxs), err
		},
		func() (int, error) {
			txts, err := r.LookupTXT(ctx, host)
			return len(txts), err
		},
		func() (int, error) {
			nss, err := r.LookupNS(ctx, host)
			return len(nss), err
		},
	}

	for _, lookup := range lookups {
		n, err := lookup()

		if n > 0 {
			return n, nil
		}

		if err := deadlineErr(ctx); err != nil {
			return 0, err
		}

		if firstErr == nil {
			firstErr = err
		}
	}

	if firstErr != nil {
		return 0, firstErr
	}

	return 0, exception.ErrNoAnswers
}

func deadlineErr(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return fmt.Errorf("%w: %w", exception.ErrProbeTimeout, err)
		}

		return err
	}

	return nil
}
