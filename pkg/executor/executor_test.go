package executor

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestOSExecutorOutput(t *testing.T) {
	requireShell(t)
	e := New()

	out, code, err := e.Output(context.Background(), "sh", "-c", "echo Python 3.12.1")
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "Python 3.12.1", out)

	_, code, err = e.Output(context.Background(), "sh", "-c", "exit 9")
	require.NoError(t, err)
	assert.Equal(t, 9, code)
}

func TestOSExecutorOutputMissingBinary(t *testing.T) {
	e := New()

	_, code, err := e.Output(context.Background(), "packsmith-definitely-not-installed")
	assert.Error(t, err)
	assert.Equal(t, -1, code)
}

func TestOSExecutorRun(t *testing.T) {
	requireShell(t)
	e := New()
	dir := t.TempDir()

	var stdout, stderr bytes.Buffer
	code, err := e.Run(context.Background(), types.Command{
		Name:   "sh",
		Args:   []string{"-c", "pwd; echo oops >&2; exit 4"},
		Dir:    dir,
		Stdin:  bytes.NewReader(nil),
		Stdout: &stdout,
		Stderr: &stderr,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, code)
	assert.Contains(t, stdout.String(), dir)
	assert.Equal(t, "oops\n", stderr.String())
}

func TestOSExecutorLookPath(t *testing.T) {
	e := New()
	_, err := e.LookPath("packsmith-definitely-not-installed")
	assert.Error(t, err)
}
