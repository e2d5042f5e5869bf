package cmd

import (
	"fmt"

	"github.com/theirongolddev/ctxline/internal/config"
	"github.com/theirongolddev/ctxline/internal/statusline"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Fprintln(out, "  Status: loaded")
	} else {
		fmt.Fprintln(out, "  Status: using defaults (no config file)")
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Log]")
	fmt.Fprintf(out, "    Debug:       %v\n", cfg.Log.Debug)
	fmt.Fprintf(out, "    File:        %s\n", config.LogPath(cfg))
	fmt.Fprintf(out, "    Max size:    %d MB\n", cfg.Log.MaxSizeMB)
	fmt.Fprintf(out, "    Max backups: %d\n", cfg.Log.MaxBackups)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Appearance]")
	fmt.Fprintf(out, "    Report theme: %s\n", cfg.Appearance.Theme)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Claude]")
	fmt.Fprintf(out, "    Settings: %s\n", config.ClaudeSettingsPath(cfg))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  [Context gauge] (fixed)")
	fmt.Fprintf(out, "    Context limit:        %d\n", statusline.ContextLimit)
	fmt.Fprintf(out, "    Compaction threshold: %d\n", int64(statusline.CompactionThreshold))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "  Run `ctxline setup` to install the status line.")
	return nil
}
