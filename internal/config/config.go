// Package config loads ctxline's optional TOML configuration. Nothing here
// changes the status line itself; it covers logging, the usage report theme
// and where Claude Code keeps its settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all ctxline configuration.
type Config struct {
	Log        LogConfig        `toml:"log"`
	Appearance AppearanceConfig `toml:"appearance"`
	Claude     ClaudeConfig     `toml:"claude"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	Debug      bool   `toml:"debug"`
	File       string `toml:"file,omitempty"`
	MaxSizeMB  int    `toml:"max_size_mb"`
	MaxBackups int    `toml:"max_backups"`
}

// AppearanceConfig holds theme settings for the usage report.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ClaudeConfig locates Claude Code's own files.
type ClaudeConfig struct {
	SettingsPath string `toml:"settings_path,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{
			MaxSizeMB:  5,
			MaxBackups: 2,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ctxline")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ctxline")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// LogPath returns the configured log file, defaulting to ctxline.log in the
// config directory.
func LogPath(cfg Config) string {
	if cfg.Log.File != "" {
		return cfg.Log.File
	}
	return filepath.Join(Dir(), "ctxline.log")
}

// ClaudeSettingsPath returns Claude Code's settings.json: config value first,
// then $CLAUDE_CONFIG_DIR, then ~/.claude.
func ClaudeSettingsPath(cfg Config) string {
	if cfg.Claude.SettingsPath != "" {
		return cfg.Claude.SettingsPath
	}
	if dir := os.Getenv("CLAUDE_CONFIG_DIR"); dir != "" {
		return filepath.Join(dir, "settings.json")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".claude", "settings.json")
}
