// Package main implements a Claude Code hook that gives git workflow guidance.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/krmcbride/git-workflow-guidance/pkg/config"
	"github.com/krmcbride/git-workflow-guidance/pkg/guidance"
	"github.com/krmcbride/git-workflow-guidance/pkg/telemetry"
)

// Build info set via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123 -X main.date=2024-01-01"
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(buildVersion())); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "git-workflow-guidance",
		Short: "PreToolUse hook that advises against combining git add and git commit",
		Long: `git-workflow-guidance reads a Claude Code PreToolUse request on stdin and
writes a decision on stdout:

  {"proceed":true}
  {"proceed":false,"reason":"..."}

Git commands that stage and commit in one compound command get advisory
guidance. Everything else, including unreadable input, proceeds. The exit
status is always 0.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runHook,
	}

	cmd.PersistentFlags().String("config", "", "Config file (default $XDG_CONFIG_HOME/git-workflow-guidance/config.yaml)")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// loadConfig reads the --config file, or the default path when unset.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultPath()
	}
	return config.Load(path)
}

// runHook is the PreToolUse entry point. It never returns an error so the
// host always gets a response and a zero exit status.
func runHook(cmd *cobra.Command, _ []string) error {
	cfg, cfgErr := loadConfig(cmd)
	if cfgErr != nil {
		cfg = config.Default()
	}

	logger, closer := telemetry.NewLogger(cfg.Log, cmd.ErrOrStderr())
	defer func() { _ = closer.Close() }()

	if cfgErr != nil {
		logger.Warn("using default config", "error", cfgErr)
	}

	guard := guidance.NewGuard(cfg.Hook.ToolNames(), logger)
	if err := guard.Run(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		logger.Error("failed to write hook response", "error", err)
	}
	return nil
}
