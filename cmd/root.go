// Package cmd implements the ctxline CLI commands.
package cmd

import (
	"fmt"
	"os"

	"github.com/theirongolddev/ctxline/internal/config"
	"github.com/theirongolddev/ctxline/internal/logger"
	"github.com/theirongolddev/ctxline/internal/statusline"

	"github.com/spf13/cobra"
)

// appConfig is loaded once before any command runs.
var appConfig = config.DefaultConfig()

var rootCmd = &cobra.Command{
	Use:   "ctxline",
	Short: "Claude Code status line with a context usage gauge",
	Long: "Reads Claude Code's status line JSON on stdin and prints one line:\n" +
		"model, session, git branch and context usage against the compaction threshold.",
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRun:  loadConfig,
	PersistentPostRun: func(_ *cobra.Command, _ []string) { logger.Close() },
	RunE:              runStatusline,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Close()
		os.Exit(1)
	}
}

// loadConfig never fails: a broken config file must not cost the user
// their status line, so defaults are used and the problem is logged.
func loadConfig(_ *cobra.Command, _ []string) {
	cfg, err := config.Load()
	appConfig = cfg
	logger.Init(logger.Options{
		Path:       config.LogPath(cfg),
		Debug:      cfg.Log.Debug,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	})
	if err != nil {
		logger.Errorf("config %s: %v", config.Path(), err)
	}
}

func runStatusline(cmd *cobra.Command, _ []string) error {
	if err := statusline.New().Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Errorf("%v", err)
		return fmt.Errorf("status line: %w", err)
	}
	return nil
}
