// Package cli implements the cardstack command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cardstack/pkg/buildinfo"
	"github.com/matzehuels/cardstack/pkg/config"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cardstack"

	// logFileName is the TUI log file inside the state directory.
	logFileName = "cardstack.log"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger     *log.Logger
	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
// Without a subcommand the root starts the interactive stack.
func (c *CLI) RootCommand() *cobra.Command {
	var opts runOpts

	root := &cobra.Command{
		Use:          appName,
		Short:        "Cardstack animates a stack of collapsible cards",
		Long:         `Cardstack renders a stack of five cards that springs between a collapsed, peeking pile and an expanded list when the top card is tapped. It runs interactively in the terminal and exports snapshots of any animation frame.`,
		Version:      buildinfo.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.Logger.GetLevel() <= log.DebugLevel {
				registerLogHooks()
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/cardstack/config.toml)")
	bindRunFlags(root, &opts)

	root.AddCommand(c.runCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.traceCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads the config file named by --config, or the default one.
func (c *CLI) loadConfig(ctx context.Context) (config.Config, error) {
	logger := loggerFromContext(ctx)

	cfg, meta, err := config.Load(c.configPath)
	if err != nil {
		return cfg, err
	}
	if meta.Found {
		logger.Debugf("Loaded config %s", meta.Path)
	} else if meta.Path != "" {
		logger.Debugf("No config at %s, using defaults", meta.Path)
	}
	for _, key := range meta.Unknown {
		logger.Warnf("Ignoring unknown config key %q", key)
	}
	return cfg, nil
}

// =============================================================================
// Paths
// =============================================================================

// stateDir returns the state directory using XDG standard (~/.local/state/cardstack/).
func stateDir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "state", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{formatSVG}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return parts
}
