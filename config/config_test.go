package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, Default(), *cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "splitterm.toml", `
[log]
level = "debug"
file = "/tmp/splitterm.log"

[terminal]
alt_screen = false

[status]
separator = " | "
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/splitterm.log", cfg.Log.File)
	assert.False(t, cfg.Terminal.AltScreen)
	assert.True(t, cfg.Terminal.HideCursor, "unset keys keep defaults")
	assert.Equal(t, " | ", cfg.Status.Separator)
}

func TestLoadYAMLFile(t *testing.T) {
	path := writeFile(t, "splitterm.yaml", "log:\n  level: warn\nterminal:\n  hide_cursor: false\n")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Terminal.HideCursor)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "splitterm.toml", "[log]\nlevel = \"debug\"\n")
	t.Setenv("SPLITTERM_LOG_LEVEL", "error")

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
}

func TestFlagsOverrideEnv(t *testing.T) {
	t.Setenv("SPLITTERM_LOG_LEVEL", "error")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse([]string{"--log-level=debug", "--alt-screen=false"}))

	cfg, err := Load("", fs)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.False(t, cfg.Terminal.AltScreen)
	// Unchanged flags do not mask defaults
	assert.True(t, cfg.Terminal.HideCursor)
}

func TestLoadRejectsBadLevel(t *testing.T) {
	t.Setenv("SPLITTERM_LOG_LEVEL", "chatty")

	_, err := Load("", nil)
	assert.ErrorContains(t, err, "log.level")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"), nil)
	assert.Error(t, err)
}
