package netassert

import (
	"context"
	"net"
	"os"
	"time"

	"github.com/imdario/mergo"
	"github.com/robgonnella/netassert/internal/logger"
	"github.com/robgonnella/netassert/pkg/report"
	"github.com/robgonnella/netassert/pkg/runner"
)

// Option customizes the collaborators used by an Asserter
type Option func(a *Asserter)

// WithRunner sets the process runner used for ping and ssh probes
func WithRunner(r runner.Runner) Option {
	return func(a *Asserter) {
		a.runner = r
	}
}

// WithResolver sets the resolver used for dns probes
func WithResolver(r Resolver) Option {
	return func(a *Asserter) {
		a.resolver = r
	}
}

// WithDialer sets the dialer used for tcp probes
func WithDialer(d Dialer) Option {
	return func(a *Asserter) {
		a.dialer = d
	}
}

// Asserter runs network assertions and reports one Outcome per call. It
// is not safe for concurrent use.
type Asserter struct {
	conf     Config
	reporter report.Reporter
	runner   runner.Runner
	resolver Resolver
	dialer   Dialer
	log      logger.Logger
}

// New returns a new Asserter. Zero valued fields in conf are filled from
// Default and a nil reporter writes TAP to stdout.
func New(conf Config, reporter report.Reporter, opts ...Option) *Asserter {
	defaults := Default()

	if err := mergo.Merge(&conf, defaults); err != nil {
		conf = defaults
	}

	if reporter == nil {
		reporter = report.NewTAPReporter(os.Stdout)
	}

	a := &Asserter{
		conf:     conf,
		reporter: reporter,
		runner:   runner.NewExecRunner(),
		dialer:   &net.Dialer{},
		log:      logger.New(),
	}

	a.resolver = newResolver(conf.DNS)

	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Config returns a copy of the current configuration
func (a *Asserter) Config() Config {
	return a.conf
}

// Timeout returns the deadline applied to subsequent probes
func (a *Asserter) Timeout() time.Duration {
	return a.conf.Timeout
}

// SetTimeout changes the deadline for all subsequent assertions
func (a *Asserter) SetTimeout(timeout time.Duration) {
	a.conf.Timeout = timeout
}

func (a *Asserter) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.conf.Timeout)
}

func (a *Asserter) report(passed bool, description, diagnostic string) bool {
	outcome := report.Outcome{
		Passed:      passed,
		Description: description,
	}

	if !passed {
		outcome.Diagnostic = diagnostic
	}

	a.reporter.Report(outcome)

	return passed
}
