package testutil

import (
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/arthur-debert/packsmith/pkg/types"
)

// FakeProgram describes how a fake command behaves
type FakeProgram struct {
	// VersionOutput and VersionExitCode answer Output calls
	VersionOutput   string
	VersionExitCode int

	// RunExitCode and RunOutput answer Run calls
	RunExitCode int
	RunOutput   string
}

// FakeExecutor implements types.Executor from a table of programs.
// Unknown programs are not found on the search path.
type FakeExecutor struct {
	Programs map[string]FakeProgram
	// RunErr makes Run fail to start
	RunErr error

	Probed []string
	Runs   []types.Command
}

// NewFakeExecutor creates an executor knowing the given programs
func NewFakeExecutor(programs map[string]FakeProgram) *FakeExecutor {
	if programs == nil {
		programs = map[string]FakeProgram{}
	}
	return &FakeExecutor{Programs: programs}
}

var _ types.Executor = (*FakeExecutor)(nil)

// LookPath resolves known programs to a fake location
func (f *FakeExecutor) LookPath(name string) (string, error) {
	if _, ok := f.Programs[name]; !ok {
		return "", &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return "/fake/bin/" + name, nil
}

// Output answers with the program's version output
func (f *FakeExecutor) Output(_ context.Context, name string, args ...string) (string, int, error) {
	f.Probed = append(f.Probed, name)
	prog, ok := f.Programs[name]
	if !ok {
		return "", -1, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	return prog.VersionOutput, prog.VersionExitCode, nil
}

// Run records the invocation and answers with the program's run exit code
func (f *FakeExecutor) Run(_ context.Context, cmd types.Command) (int, error) {
	f.Runs = append(f.Runs, cmd)
	if f.RunErr != nil {
		return -1, f.RunErr
	}
	prog, ok := f.Programs[cmd.Name]
	if !ok {
		return -1, fmt.Errorf("fake: %s not found", cmd.Name)
	}
	if prog.RunOutput != "" && cmd.Stdout != nil {
		_, _ = io.WriteString(cmd.Stdout, prog.RunOutput)
	}
	return prog.RunExitCode, nil
}
