package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/robgonnella/netassert/internal/exception"
	"github.com/robgonnella/netassert/internal/logger"
)

// ExecRunner is an implementation of the Runner interface using os/exec
type ExecRunner struct {
	// TempDir directory for output capture files, os.TempDir when empty
	TempDir string
	// WaitDelay how long to wait on output after the process is killed
	WaitDelay time.Duration
}

// NewExecRunner returns a new instance of ExecRunner
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		WaitDelay: time.Millisecond * 500,
	}
}

// Run executes name with args, capturing combined stdout and stderr in a
// temporary file that is removed before returning
func (r *ExecRunner) Run(ctx context.Context, name string, args []string) (*Result, error) {
	capture, err := os.CreateTemp(r.TempDir, "netassert-*.out")

	if err != nil {
		return nil, fmt.Errorf("failed to create capture file: %w", err)
	}

	defer func() {
		capture.Close()
		os.Remove(capture.Name())
	}()

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = capture
	cmd.Stderr = capture
	cmd.WaitDelay = r.WaitDelay

	logger.New().Debug().Str("cmd", name).Strs("args", args).Msg("running command")

	err = cmd.Run()

	if ctxErr := ctx.Err(); ctxErr != nil {
		if errors.Is(ctxErr, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %s: %w", exception.ErrProbeTimeout, name, ctxErr)
		}

		return nil, fmt.Errorf("%s: %w", name, ctxErr)
	}

	exitCode := 0

	if err != nil {
		var exitErr *exec.ExitError

		if !errors.As(err, &exitErr) {
			return nil, err
		}

		exitCode = exitErr.ExitCode()
	}

	if _, err := capture.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}

	output, err := io.ReadAll(capture)

	if err != nil {
		return nil, err
	}

	return &Result{
		ExitCode: exitCode,
		Output:   output,
	}, nil
}
