package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/meetings/internal/tz"
)

func isolate(t *testing.T) (configHome, stateHome string) {
	t.Helper()
	configHome, stateHome = t.TempDir(), t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("XDG_STATE_HOME", stateHome)
	t.Setenv("MEETINGS_DATA_FILE", "")
	t.Setenv("MEETINGS_LOG_FILE", "")
	t.Setenv("MEETINGS_LOG_LEVEL", "")
	t.Setenv("MEETINGS_THEME", "")
	return configHome, stateHome
}

func writeConfig(t *testing.T, configHome, body string) {
	t.Helper()
	dir := filepath.Join(configHome, "meetings")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644))
}

func TestLoadDefaults(t *testing.T) {
	_, stateHome := isolate(t)
	wd, err := os.Getwd()
	require.NoError(t, err)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(wd, "meetings.csv"), cfg.DataFile)
	assert.Equal(t, filepath.Join(stateHome, "meetings", "meetings.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, tz.CST, cfg.DefaultZone)
	assert.Equal(t, "classic", cfg.Theme)
	assert.DirExists(t, filepath.Join(stateHome, "meetings"))
}

func TestLoadFileAndEnv(t *testing.T) {
	configHome, _ := isolate(t)
	writeConfig(t, configHome, `
data_file = "/srv/meetings.csv"
log_level = "debug"
default_zone = "ist"
theme = "neon"
`)
	t.Setenv("MEETINGS_LOG_LEVEL", "warn")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/srv/meetings.csv", cfg.DataFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, tz.IST, cfg.DefaultZone)
	assert.Equal(t, "neon", cfg.Theme)
}

func TestLoadRejectsUnknownZone(t *testing.T) {
	configHome, _ := isolate(t)
	writeConfig(t, configHome, `default_zone = "PST"`)

	_, err := Load()
	assert.ErrorIs(t, err, tz.ErrUnknownZone)
}

func TestLoadRejectsBadToml(t *testing.T) {
	configHome, _ := isolate(t)
	writeConfig(t, configHome, `data_file = `)

	_, err := Load()
	assert.Error(t, err)
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "m.csv"), expandTilde("~/m.csv"))
	assert.Equal(t, "/abs/m.csv", expandTilde("/abs/m.csv"))
}
