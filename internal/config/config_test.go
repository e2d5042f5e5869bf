package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want defaults", cfg)
	}
	if Exists() {
		t.Error("Exists = true before any Save")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "ctxline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "[log]\ndebug = true\n\n[appearance]\ntheme = \"terminal\"\n"
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Log.Debug {
		t.Error("Log.Debug = false, want true")
	}
	if cfg.Appearance.Theme != "terminal" {
		t.Errorf("Theme = %q, want terminal", cfg.Appearance.Theme)
	}
	if cfg.Log.MaxSizeMB != 5 {
		t.Errorf("MaxSizeMB = %d, want default 5", cfg.Log.MaxSizeMB)
	}
}

func TestLoad_MalformedReturnsDefaultsAndError(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)
	dir := filepath.Join(xdg, "ctxline")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[log\ndebug = "), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg != DefaultConfig() {
		t.Errorf("Load = %+v, want defaults on error", cfg)
	}
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.Log.Debug = true
	cfg.Claude.SettingsPath = "/opt/claude/settings.json"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load = %+v, want %+v", got, cfg)
	}
}

func TestLogPath(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdg)

	if got, want := LogPath(DefaultConfig()), filepath.Join(xdg, "ctxline", "ctxline.log"); got != want {
		t.Errorf("LogPath = %q, want %q", got, want)
	}

	cfg := DefaultConfig()
	cfg.Log.File = "/var/log/ctxline.log"
	if got := LogPath(cfg); got != "/var/log/ctxline.log" {
		t.Errorf("LogPath = %q, want configured file", got)
	}
}

func TestClaudeSettingsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("CLAUDE_CONFIG_DIR", "")

	if got, want := ClaudeSettingsPath(DefaultConfig()), filepath.Join(home, ".claude", "settings.json"); got != want {
		t.Errorf("default = %q, want %q", got, want)
	}

	t.Setenv("CLAUDE_CONFIG_DIR", "/etc/claude")
	if got := ClaudeSettingsPath(DefaultConfig()); got != "/etc/claude/settings.json" {
		t.Errorf("env = %q, want /etc/claude/settings.json", got)
	}

	cfg := DefaultConfig()
	cfg.Claude.SettingsPath = "/custom/settings.json"
	if got := ClaudeSettingsPath(cfg); got != "/custom/settings.json" {
		t.Errorf("config = %q, want /custom/settings.json", got)
	}
}
