package core

import (
	"context"
	"fmt"

	"github.com/robgonnella/netassert/internal/config"
	"github.com/robgonnella/netassert/internal/exception"
	"github.com/robgonnella/netassert/internal/logger"
	"github.com/robgonnella/netassert/pkg/netassert"
	"github.com/robgonnella/netassert/pkg/report"
)

// Core runs plan checks through an Asserter
type Core struct {
	asserter *netassert.Asserter
	reporter report.Reporter
	log      logger.Logger
}

// New returns new core module. reporter must be the one the asserter
// reports to.
func New(asserter *netassert.Asserter, reporter report.Reporter) *Core {
	return &Core{
		asserter: asserter,
		reporter: reporter,
		log:      logger.New(),
	}
}

// Run executes every check in order and returns how many failed. Each
// check reports exactly one outcome through the asserter's reporter.
func (c *Core) Run(ctx context.Context, checks []config.Check) int {
	failed := 0

	for _, check := range checks {
		c.log.Debug().
			Str("type", string(check.Type)).
			Str("host", check.Host).
			Str("target", check.Target).
			Msg("running check")

		if !c.assert(ctx, check) {
			failed++
		}
	}

	c.log.Debug().
		Int("total", len(checks)).
		Int("failed", failed).
		Msg("plan finished")

	return failed
}

func (c *Core) assert(ctx context.Context, check config.Check) bool {
	a := c.asserter

	switch check.Type {
	case config.CheckPing:
		return a.PingOK(ctx, check.Host, check.Description)
	case config.CheckPing6:
		return a.Ping6OK(ctx, check.Host, check.Description)
	case config.CheckResolves:
		return a.Resolves(ctx, check.Host, check.Description)
	case config.CheckSocketOpen:
		return a.SocketOpen(ctx, check.Host, check.Port, check.Description)
	case config.CheckSocketClosed:
		return a.SocketClosed(ctx, check.Host, check.Port, check.Description)
	case config.CheckSSHAuthEnabled:
		return a.SSHAuthEnabled(ctx, check.Target, check.Method, check.Description)
	case config.CheckSSHAuthDisabled:
		return a.SSHAuthDisabled(ctx, check.Target, check.Method, check.Description)
	default:
		c.reporter.Report(report.Outcome{
			Passed:      false,
			Description: check.Description,
			Diagnostic:  fmt.Sprintf("%s: %q", exception.ErrUnknownCheck, check.Type),
		})
		return false
	}
}
