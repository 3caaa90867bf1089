// Package launch starts the GUI application under a probed Python interpreter.
package launch

import (
	"context"
	"io"
	"strings"

	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/arthur-debert/packsmith/pkg/logging"
	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/rs/zerolog"
)

// Reporter receives the human-readable launcher messages
type Reporter interface {
	RenderMessage(msg string) error
	RenderMarkdown(md string) error
}

// LaunchOptions defines the options for the Launch command.
type LaunchOptions struct {
	// Interpreters are tried in order; the first answering the version query wins.
	Interpreters []string
	// VersionFlag is passed to each candidate during the probe.
	VersionFlag string
	// EntryPoint is the script handed to the interpreter.
	EntryPoint string
	// Args are appended after the entry point.
	Args []string
	// WorkingDir is where the application runs. Empty inherits ours.
	WorkingDir string
	// DryRun probes the interpreter and reports the command without running it.
	DryRun bool

	Executor types.Executor
	Reporter Reporter

	// Streams forwarded to the application. Nil falls back to the process streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Launch probes for an interpreter and runs the entry point under it,
// blocking until the application exits. An ENV_MISSING error means the
// application was never started; APP_FAILURE carries its exit code.
func Launch(ctx context.Context, opts LaunchOptions) (*types.LaunchResult, error) {
	logger := logging.GetLogger("commands.launch")
	defer logging.LogOperationStart(logger, "launch")()

	result := &types.LaunchResult{EntryPoint: opts.EntryPoint, DryRun: opts.DryRun}

	if opts.Executor == nil {
		return result, errors.New(errors.ErrInvalidInput, "launch requires an executor")
	}
	if opts.EntryPoint == "" {
		return result, errors.New(errors.ErrInvalidInput, "launch requires an entry point")
	}

	data := messageData{
		Interpreters: opts.Interpreters,
		VersionFlag:  opts.VersionFlag,
		EntryPoint:   opts.EntryPoint,
		WorkingDir:   opts.WorkingDir,
	}

	interpreter, version, ok := probe(ctx, logger, opts)
	if !ok {
		report(logger, opts.Reporter, msgEnvMissing, data)
		return result, errors.New(errors.ErrEnvironmentMissing, "no Python interpreter found").
			WithDetail("interpreters", strings.Join(opts.Interpreters, ","))
	}
	result.Interpreter = interpreter
	result.Version = version
	data.Interpreter = interpreter

	args := append([]string{opts.EntryPoint}, opts.Args...)
	logging.LogCommand(logger, interpreter, args)

	if opts.DryRun {
		data.CommandLine = strings.Join(append([]string{interpreter}, args...), " ")
		logger.Info().Str("command", data.CommandLine).Msg("Dry run, application not started")
		report(logger, opts.Reporter, msgDryRun, data)
		return result, nil
	}

	exitCode, err := opts.Executor.Run(ctx, types.Command{
		Name:   interpreter,
		Args:   args,
		Dir:    opts.WorkingDir,
		Stdin:  opts.Stdin,
		Stdout: opts.Stdout,
		Stderr: opts.Stderr,
	})
	if err != nil {
		logger.Error().Err(err).Str("interpreter", interpreter).Msg("Application could not be started")
		exitCode = 1
	}
	result.ExitCode = exitCode
	data.ExitCode = exitCode

	if exitCode != 0 {
		report(logger, opts.Reporter, msgAppFailure, data)
		appErr := errors.Newf(errors.ErrApplicationFailure, "%s exited with code %d", opts.EntryPoint, exitCode)
		if err != nil {
			appErr = errors.Wrapf(err, errors.ErrApplicationFailure, "failed to start %s", opts.EntryPoint)
		}
		return result, appErr.WithDetail(errors.DetailExitCode, exitCode)
	}

	logger.Info().Str("interpreter", interpreter).Msg("Application exited normally")
	report(logger, opts.Reporter, msgAppExited, data)
	return result, nil
}

// probe returns the first candidate that resolves on PATH and exits 0 on the
// version query
func probe(ctx context.Context, logger zerolog.Logger, opts LaunchOptions) (string, string, bool) {
	for _, candidate := range opts.Interpreters {
		path, err := opts.Executor.LookPath(candidate)
		if err != nil {
			logger.Debug().Str("interpreter", candidate).Msg("Not found on PATH")
			continue
		}

		args := []string{}
		if opts.VersionFlag != "" {
			args = append(args, opts.VersionFlag)
		}
		out, code, err := opts.Executor.Output(ctx, candidate, args...)
		if err != nil || code != 0 {
			logger.Debug().Str("interpreter", candidate).Int("exitCode", code).Err(err).
				Msg("Version query failed")
			continue
		}

		logger.Info().Str("interpreter", candidate).Str("path", path).Str("version", out).
			Msg("Interpreter found")
		return candidate, out, true
	}
	return "", "", false
}

func report(logger zerolog.Logger, r Reporter, name string, data messageData) {
	if r == nil {
		return
	}
	msg, err := renderMessage(name, data)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to render launcher message")
		return
	}

	if name == msgAppExited || name == msgDryRun {
		err = r.RenderMessage(strings.TrimSpace(msg))
	} else {
		err = r.RenderMarkdown(msg)
	}
	if err != nil {
		logger.Warn().Err(err).Msg("Failed to print launcher message")
	}
}
