package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/packsmith/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{
		WorkingDir:    t.TempDir(),
		UserConfigDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, "content_packs", cfg.Content.Root)
	assert.Equal(t, []string{"python", "python3", "py"}, cfg.Launcher.Interpreters)
	assert.Equal(t, "--version", cfg.Launcher.VersionFlag)
	assert.Equal(t, "gui_app.py", cfg.Launcher.EntryPoint)
	assert.Empty(t, cfg.Launcher.WorkingDir)
	assert.True(t, cfg.Launcher.PauseOnError)
}

func TestLoadLayering(t *testing.T) {
	t.Run("user config overrides defaults", func(t *testing.T) {
		userDir := t.TempDir()
		writeConfig(t, userDir, UserConfigFile, "[content]\nroot = \"/srv/packs\"\n")

		cfg, err := Load(LoadOptions{WorkingDir: t.TempDir(), UserConfigDir: userDir})
		require.NoError(t, err)
		assert.Equal(t, "/srv/packs", cfg.Content.Root)
		assert.Equal(t, "gui_app.py", cfg.Launcher.EntryPoint)
	})

	t.Run("project config overrides user config", func(t *testing.T) {
		userDir := t.TempDir()
		workDir := t.TempDir()
		writeConfig(t, userDir, UserConfigFile, "[content]\nroot = \"/srv/packs\"\n")
		writeConfig(t, workDir, ProjectConfigFile, "[content]\nroot = \"packs\"\n\n[launcher]\ninterpreters = [\"python3\"]\n")

		cfg, err := Load(LoadOptions{WorkingDir: workDir, UserConfigDir: userDir})
		require.NoError(t, err)
		assert.Equal(t, "packs", cfg.Content.Root)
		assert.Equal(t, []string{"python3"}, cfg.Launcher.Interpreters)
	})

	t.Run("environment overrides files", func(t *testing.T) {
		workDir := t.TempDir()
		writeConfig(t, workDir, ProjectConfigFile, "[launcher]\nentry_point = \"main.py\"\n")
		t.Setenv("PACKSMITH_LAUNCHER__ENTRY_POINT", "studio.py")
		t.Setenv("PACKSMITH_LAUNCHER__PAUSE_ON_ERROR", "false")
		t.Setenv("PACKSMITH_LAUNCHER__INTERPRETERS", "python3.12,python3")

		cfg, err := Load(LoadOptions{WorkingDir: workDir, UserConfigDir: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, "studio.py", cfg.Launcher.EntryPoint)
		assert.False(t, cfg.Launcher.PauseOnError)
		assert.Equal(t, []string{"python3.12", "python3"}, cfg.Launcher.Interpreters)
	})

	t.Run("explicit config file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeConfig(t, dir, "custom.toml", "[launcher]\nworking_dir = \"/opt/shorts\"\n")

		cfg, err := Load(LoadOptions{ConfigFile: path, UserConfigDir: t.TempDir()})
		require.NoError(t, err)
		assert.Equal(t, "/opt/shorts", cfg.Launcher.WorkingDir)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing explicit config file", func(t *testing.T) {
		_, err := Load(LoadOptions{
			ConfigFile:    filepath.Join(t.TempDir(), "nope.toml"),
			UserConfigDir: t.TempDir(),
		})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed project config", func(t *testing.T) {
		workDir := t.TempDir()
		writeConfig(t, workDir, ProjectConfigFile, "[content\nroot = ")

		_, err := Load(LoadOptions{WorkingDir: workDir, UserConfigDir: t.TempDir()})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("empty entry point is rejected", func(t *testing.T) {
		workDir := t.TempDir()
		writeConfig(t, workDir, ProjectConfigFile, "[launcher]\nentry_point = \"\"\n")

		_, err := Load(LoadOptions{WorkingDir: workDir, UserConfigDir: t.TempDir()})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "entry_point")
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "launcher.entry_point", envKey("PACKSMITH_LAUNCHER__ENTRY_POINT"))
	assert.Equal(t, "content.root", envKey("PACKSMITH_CONTENT__ROOT"))
}

func TestLoadOverrides(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, ProjectConfigFile, "[content]\nroot = \"from-file\"\n")
	t.Setenv("PACKSMITH_CONTENT__ROOT", "from-env")

	cfg, err := Load(LoadOptions{
		WorkingDir:    workDir,
		UserConfigDir: t.TempDir(),
		Overrides:     map[string]interface{}{"content.root": "from-flag"},
	})
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Content.Root)
	assert.Equal(t, "gui_app.py", cfg.Launcher.EntryPoint, "untouched keys keep their defaults")
}

func TestLoadProjectFileLogsAtDebug(t *testing.T) {
	// Loading a file runs through the component logger at debug level
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.WarnLevel) })

	workDir := t.TempDir()
	writeConfig(t, workDir, ProjectConfigFile, "[launcher]\nentry_point = \"app.py\"\n")

	cfg, err := Load(LoadOptions{WorkingDir: workDir, UserConfigDir: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "app.py", cfg.Launcher.EntryPoint)
}
