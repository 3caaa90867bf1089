package executor

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"strings"

	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/rs/zerolog"
)

// OSExecutor implements types.Executor using os/exec
type OSExecutor struct {
	logger zerolog.Logger
}

// New creates a new OS backed executor
func New() *OSExecutor {
	return &OSExecutor{
		logger: logging.GetLogger("executor"),
	}
}

var _ types.Executor = (*OSExecutor)(nil)

// LookPath resolves name on PATH
func (e *OSExecutor) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

// Output runs a command and returns its combined output
func (e *OSExecutor) Output(ctx context.Context, name string, args ...string) (string, int, error) {
	logging.LogCommand(e.logger, name, args)

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.CombinedOutput()
	output := strings.TrimSpace(string(out))

	exitCode, err := exitStatus(err)
	if err != nil {
		return output, -1, err
	}
	return output, exitCode, nil
}

// Run runs a command attached to the given streams, defaulting to the
// process's own stdin, stdout and stderr
func (e *OSExecutor) Run(ctx context.Context, c types.Command) (int, error) {
	logging.LogCommand(e.logger, c.Name, c.Args)

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	exitCode, err := exitStatus(cmd.Run())
	if err != nil {
		e.logger.Debug().Err(err).Str("command", c.Name).Msg("Command failed to start")
		return -1, err
	}
	e.logger.Debug().Str("command", c.Name).Int("exitCode", exitCode).Msg("Command finished")
	return exitCode, nil
}

// exitStatus splits a run error into an exit code and a start failure
func exitStatus(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
