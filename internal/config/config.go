package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/idilsaglam/meetings/internal/store/csvstore"
	"github.com/idilsaglam/meetings/internal/tz"
)

type Config struct {
	DataFile    string // CSV file holding the meetings
	LogFile     string
	LogLevel    string
	DefaultZone tz.Zone // zone preselected in the add form
	Theme       string
}

type fileConfig struct {
	DataFile    string `toml:"data_file"`
	LogFile     string `toml:"log_file"`
	LogLevel    string `toml:"log_level"`
	DefaultZone string `toml:"default_zone"`
	Theme       string `toml:"theme"`
}

// Load builds the config from defaults, the config file if present, and
// MEETINGS_* environment overrides, in that order.
func Load() (*Config, error) {
	dataFile, err := csvstore.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		DataFile:    dataFile,
		LogFile:     defaultLogFile(),
		LogLevel:    "info",
		DefaultZone: tz.CST,
		Theme:       "classic",
	}

	if path := configFilePath(); path != "" {
		if err := applyFile(cfg, path); err != nil {
			return nil, err
		}
	}
	applyEnvOverrides(cfg)

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFile(cfg *Config, path string) error {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if fc.DataFile != "" {
		cfg.DataFile = expandTilde(fc.DataFile)
	}
	if fc.LogFile != "" {
		cfg.LogFile = expandTilde(fc.LogFile)
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	if fc.DefaultZone != "" {
		z, err := tz.ParseZone(fc.DefaultZone)
		if err != nil {
			return fmt.Errorf("%s: default_zone: %w", path, err)
		}
		cfg.DefaultZone = z
	}
	if fc.Theme != "" {
		cfg.Theme = fc.Theme
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MEETINGS_DATA_FILE"); v != "" {
		cfg.DataFile = expandTilde(v)
	}
	if v := os.Getenv("MEETINGS_LOG_FILE"); v != "" {
		cfg.LogFile = expandTilde(v)
	}
	if v := os.Getenv("MEETINGS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("MEETINGS_THEME"); v != "" {
		cfg.Theme = v
	}
}

func configFilePath() string {
	var configDir string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		configDir = filepath.Join(xdg, "meetings")
	} else if home, err := os.UserHomeDir(); err == nil {
		configDir = filepath.Join(home, ".config", "meetings")
	} else {
		return ""
	}

	path := filepath.Join(configDir, "config.toml")
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}

func defaultLogFile() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "meetings", "meetings.log")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "state", "meetings", "meetings.log")
	}
	return filepath.Join(os.TempDir(), "meetings.log")
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}
