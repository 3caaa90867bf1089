package testutil

import (
	"path/filepath"
	"testing"

	"github.com/arthur-debert/packsmith/pkg/filesystem"
	"github.com/arthur-debert/packsmith/pkg/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment holds a project directory with a content root beneath it
type TestEnvironment struct {
	ProjectDir  string
	ContentRoot string
	FS          types.FS
	Type        EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}
	switch envType {
	case EnvMemoryOnly:
		env.ProjectDir = "/virtual/project"
		env.FS = NewTestFS()
	case EnvIsolated:
		env.ProjectDir = filepath.Join(t.TempDir(), "project")
		env.FS = filesystem.NewOS()
	}
	env.ContentRoot = filepath.Join(env.ProjectDir, "content_packs")

	require.NoError(t, env.FS.MkdirAll(env.ProjectDir, 0755))
	return env
}

// NewTestFS creates a new in-memory filesystem for testing.
func NewTestFS() types.FS {
	return filesystem.NewAferoFS(afero.NewMemMapFs())
}

// WriteFile writes content at a path relative to the project directory,
// creating parents as needed, and returns the full path
func (env *TestEnvironment) WriteFile(rel, content string) string {
	env.t.Helper()
	full := filepath.Join(env.ProjectDir, filepath.FromSlash(rel))
	require.NoError(env.t, env.FS.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(env.t, env.FS.WriteFile(full, []byte(content), 0644))
	return full
}

// ReadFile reads a path relative to the project directory
func (env *TestEnvironment) ReadFile(rel string) string {
	env.t.Helper()
	data, err := env.FS.ReadFile(filepath.Join(env.ProjectDir, filepath.FromSlash(rel)))
	require.NoError(env.t, err)
	return string(data)
}

// Exists reports whether a path relative to the project directory exists
func (env *TestEnvironment) Exists(rel string) bool {
	_, err := env.FS.Stat(filepath.Join(env.ProjectDir, filepath.FromSlash(rel)))
	return err == nil
}
