package types

import (
	"context"
	"io"
	"io/fs"
)

// FS is an interface for filesystem operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	ReadDir(name string) ([]fs.DirEntry, error)
}

// Command describes one external process invocation
type Command struct {
	Name   string
	Args   []string
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Executor abstracts external command execution for testing.
// err is non-nil only when a command could not be started (e.g. binary not
// found); a command that ran and failed reports it through exitCode.
type Executor interface {
	// LookPath resolves a command on the execution search path
	LookPath(name string) (string, error)

	// Output runs a command to completion capturing stdout and stderr together
	Output(ctx context.Context, name string, args ...string) (output string, exitCode int, err error)

	// Run runs a command attached to the streams in cmd and waits for it
	Run(ctx context.Context, cmd Command) (exitCode int, err error)
}
