package netassert

import (
	"context"
	"fmt"
)

// PingOK asserts host answers a single IPv4 echo request
func (a *Asserter) PingOK(ctx context.Context, host, description string) bool {
	return a.ping(ctx, a.conf.Ping.Command, a.conf.Ping.Args, host, description)
}

// Ping6OK asserts host answers a single IPv6 echo request
func (a *Asserter) Ping6OK(ctx context.Context, host, description string) bool {
	return a.ping(ctx, a.conf.Ping.Command6, a.conf.Ping.Args6, host, description)
}

// the utility's own per-packet timeout bounds the probe, no deadline is
// added here
func (a *Asserter) ping(ctx context.Context, command string, flags []string, host, description string) bool {
	if err := validateHost(host); err != nil {
		return a.report(false, description, err.Error())
	}

	args := make([]string, 0, len(flags)+1)
	args = append(args, flags...)
	args = append(args, host)

	result, err := a.runner.Run(ctx, command, args)

	if err != nil {
		a.log.Debug().Err(err).Str("host", host).Msg("ping failed to run")
		return a.report(false, description, fmt.Sprintf("%s %s: %s", command, host, err))
	}

	a.log.Debug().
		Str("host", host).
		Int("exitCode", result.ExitCode).
		Msg("ping finished")

	if result.ExitCode != 0 {
		return a.report(
			false,
			description,
			fmt.Sprintf("%s %s exited with status %d", command, host, result.ExitCode),
		)
	}

	return a.report(true, description, "")
}
