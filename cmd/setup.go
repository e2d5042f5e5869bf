package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theirongolddev/ctxline/internal/config"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var (
	flagSetupYes      bool
	flagSetupSettings string
	flagSetupCommand  string
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Install ctxline as Claude Code's status line",
	Long:  "Adds a statusLine entry to Claude Code's settings.json, keeping every other setting.",
	Args:  cobra.NoArgs,
	RunE:  runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&flagSetupYes, "yes", "y", false, "Skip the confirmation prompt")
	setupCmd.Flags().StringVar(&flagSetupSettings, "settings", "", "Path to settings.json (default from config)")
	setupCmd.Flags().StringVar(&flagSetupCommand, "command", "", "Status line command (default: this executable)")
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, _ []string) error {
	settingsPath := flagSetupSettings
	if settingsPath == "" {
		settingsPath = config.ClaudeSettingsPath(appConfig)
	}

	command := flagSetupCommand
	if command == "" {
		exe, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating executable: %w", err)
		}
		command = exe
	}

	if !flagSetupYes {
		confirmed := true
		form := huh.NewForm(huh.NewGroup(
			huh.NewConfirm().
				Title("Install ctxline status line?").
				Description(fmt.Sprintf("Settings: %s\nCommand:  %s", settingsPath, command)).
				Affirmative("Install").
				Negative("Cancel").
				Value(&confirmed),
		))
		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return fmt.Errorf("confirmation prompt: %w", err)
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), "  Cancelled.")
			return nil
		}
	}

	backup, err := installStatusLine(settingsPath, command)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if backup != "" {
		fmt.Fprintf(out, "  Backed up settings to %s\n", backup)
	}
	fmt.Fprintf(out, "  Status line installed in %s\n", settingsPath)
	fmt.Fprintf(out, "  Command: %s\n", command)

	if flagSetupSettings != "" {
		saved, err := rememberSettingsPath(settingsPath)
		switch {
		case err != nil:
			fmt.Fprintf(out, "  Settings path not saved: %v\n", err)
		case saved:
			fmt.Fprintf(out, "  Saved settings path to %s\n", config.Path())
		}
	}
	return nil
}

// rememberSettingsPath records path as [claude] settings_path so a later
// setup without --settings targets the same file. It reports whether the
// config file was written. A config file that fails to load is left alone.
func rememberSettingsPath(path string) (bool, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return false, fmt.Errorf("resolving settings path: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return false, err
	}
	if cfg.Claude.SettingsPath == abs {
		return false, nil
	}
	cfg.Claude.SettingsPath = abs
	if err := config.Save(cfg); err != nil {
		return false, fmt.Errorf("saving config: %w", err)
	}
	appConfig = cfg
	return true, nil
}

// installStatusLine sets settings.statusLine to run command, preserving all
// other keys. An existing file is copied to <path>.backup first; its path is
// returned. A settings file that is not valid JSON is left untouched.
func installStatusLine(path, command string) (backup string, err error) {
	settings := map[string]any{}

	data, err := os.ReadFile(path) //nolint:gosec // user-supplied settings path
	switch {
	case err == nil:
		if len(data) > 0 {
			if err := json.Unmarshal(data, &settings); err != nil {
				return "", fmt.Errorf("parsing %s: %w", path, err)
			}
		}
		if settings == nil {
			settings = map[string]any{}
		}
		backup = path + ".backup"
		if err := os.WriteFile(backup, data, 0o600); err != nil {
			return "", fmt.Errorf("writing backup: %w", err)
		}
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return "", fmt.Errorf("creating settings dir: %w", err)
		}
	default:
		return "", fmt.Errorf("reading settings: %w", err)
	}

	settings["statusLine"] = map[string]any{
		"type":    "command",
		"command": command,
	}

	out, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return backup, fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, append(out, '\n'), 0o644); err != nil { //nolint:gosec // settings.json is user-readable by convention
		return backup, fmt.Errorf("writing settings: %w", err)
	}
	return backup, nil
}
