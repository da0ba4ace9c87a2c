package runner

import "context"

//go:generate mockgen -destination=../../internal/mock/runner/mock_runner.go -package=mock_runner . Runner

// Result represents the outcome of a finished subprocess
type Result struct {
	ExitCode int
	Output   []byte
}

// Runner interface for invoking external utilities. Implementations must
// stop the process when ctx expires.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (*Result, error)
}
