package netassert

import "github.com/robgonnella/netassert/internal/exception"

// Errors returned by SSHAuthMethods and wrapped in outcome diagnostics,
// for use with errors.Is
var (
	ErrInvalidTarget = exception.ErrInvalidTarget
	ErrProbeTimeout  = exception.ErrProbeTimeout
	ErrNoAnswers     = exception.ErrNoAnswers
	ErrNoAuthMethods = exception.ErrNoAuthMethods
)
