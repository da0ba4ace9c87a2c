package netassert

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/robgonnella/netassert/internal/exception"
)

// matches the advertised list in "Permission denied (publickey,password)."
var authMethodsRegexp = regexp.MustCompile(`\(([\w@.\-]+(?:,[\w@.\-]+)*)\)`)

// SSHAuthMethods returns the authentication methods advertised by the ssh
// server at target. The list is empty when the negotiation produces none.
func (a *Asserter) SSHAuthMethods(ctx context.Context, target string) ([]string, error) {
	t, err := ParseTarget(target, a.conf.SSH.Port)

	if err != nil {
		return []string{}, err
	}

	ctx, cancel := a.withTimeout(ctx)
	defer cancel()

	result, err := a.runner.Run(ctx, a.conf.SSH.Command, a.sshArgs(t))

	if err != nil {
		return []string{}, err
	}

	methods := parseAuthMethods(string(result.Output))

	a.log.Debug().
		Str("target", t.String()).
		Int("exitCode", result.ExitCode).
		Strs("methods", methods).
		Msg("ssh negotiation finished")

	if len(methods) == 0 {
		return methods, fmt.Errorf(
			"%w: %s exited with status %d",
			exception.ErrNoAuthMethods,
			a.conf.SSH.Command,
			result.ExitCode,
		)
	}

	return methods, nil
}

// SSHAuthEnabled asserts method is advertised by the ssh server at target
func (a *Asserter) SSHAuthEnabled(ctx context.Context, target, method, description string) bool {
	methods, err := a.SSHAuthMethods(ctx, target)

	if slices.Contains(methods, method) {
		return a.report(true, description, "")
	}

	if err != nil {
		return a.report(false, description, fmt.Sprintf("%s: %s", target, err))
	}

	return a.report(
		false,
		description,
		fmt.Sprintf("%s not advertised by %s (%s)", method, target, strings.Join(methods, ",")),
	)
}

// SSHAuthDisabled asserts method is not advertised by the ssh server at
// target. It passes when no methods could be observed at all, including
// when the host is unreachable.
func (a *Asserter) SSHAuthDisabled(ctx context.Context, target, method, description string) bool {
	methods, err := a.SSHAuthMethods(ctx, target)

	if slices.Contains(methods, method) {
		return a.report(
			false,
			description,
			fmt.Sprintf("%s advertised by %s (%s)", method, target, strings.Join(methods, ",")),
		)
	}

	if len(methods) == 0 {
		a.log.Warn().
			Err(err).
			Str("target", target).
			Str("method", method).
			Msg("no auth methods observed, treating method as disabled")
	}

	return a.report(true, description, "")
}

// every authentication method is disabled so the server must answer with
// its supported list before the client gives up
func (a *Asserter) sshArgs(t Target) []string {
	connectTimeout := int(math.Ceil(a.conf.Timeout.Seconds()))

	if connectTimeout < 1 {
		connectTimeout = 1
	}

	args := []string{
		"-o", "BatchMode=yes",
		"-o", "PreferredAuthentications=none",
		"-o", "StrictHostKeyChecking=no",
		"-o", "UserKnownHostsFile=/dev/null",
		"-o", "LogLevel=ERROR",
		"-o", "ConnectTimeout=" + strconv.Itoa(connectTimeout),
		"-p", strconv.Itoa(t.Port),
	}

	if a.conf.SSH.User != "" {
		args = append(args, "-l", a.conf.SSH.User)
	}

	for _, o := range a.conf.SSH.Options {
		args = append(args, "-o", o)
	}

	return append(args, t.Host, "true")
}

// parseAuthMethods returns the tokens of the last parenthesized list found
func parseAuthMethods(output string) []string {
	methods := []string{}

	for _, line := range strings.Split(output, "\n") {
		matches := authMethodsRegexp.FindAllStringSubmatch(line, -1)

		if len(matches) == 0 {
			continue
		}

		methods = methods[:0]

		for _, m := range strings.Split(matches[len(matches)-1][1], ",") {
			if m = strings.TrimSpace(m); m != "" {
				methods = append(methods, m)
			}
		}
	}

	return methods
}
