package exception

import "errors"

// ErrInvalidTarget returned when a host or host:port string cannot be used
var ErrInvalidTarget = errors.New("invalid target")

// ErrProbeTimeout returned when a probe exceeds its deadline
var ErrProbeTimeout = errors.New("probe timed out")

// ErrNoAnswers returned when a dns query succeeds without any answers
var ErrNoAnswers = errors.New("no answers")

// ErrUnknownCheck returned when a plan references an unsupported check type
var ErrUnknownCheck = errors.New("unknown check type")

// ErrNoAuthMethods returned when an ssh negotiation yields no advertised
// authentication methods
var ErrNoAuthMethods = errors.New("no authentication methods advertised")
