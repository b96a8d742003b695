// Package cli implements the refnet command-line interface.
//
// This package provides commands for inspecting referral networks, ranking
// influencers, simulating referral-driven growth, and searching for the
// cheapest bonus that meets a hiring target. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - network: Load a referral file and query stats, reach, and rankings
//   - report: Run the full analysis pipeline and export it as JSON
//   - simulate: Run the growth simulation, optionally live in the terminal
//   - optimize: Find the minimum bonus for a hiring target
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// shared through the CLI struct so subcommands report progress consistently.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// appName is the application name used for config lookup and display.
const appName = "refnet"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev" // semantic version (e.g., "v1.2.3")
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package with values injected via
// ldflags at build time.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath is the value of the persistent --config flag.
	configPath string
}

// New creates a new CLI instance with a default logger. Observability hooks
// are bound to the same logger; they emit at debug level, so they stay silent
// unless --verbose raises the level.
func New(w io.Writer, level log.Level) *CLI {
	c := &CLI{Logger: newLogger(w, level)}
	registerHooks(c.Logger)
	return c
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Refnet analyzes referral networks and growth incentives",
		Long:         `Refnet is a CLI tool for analyzing who-referred-whom networks: it ranks referrers by reach and brokerage, simulates referral-driven hiring growth, and searches for the cheapest bonus that meets a hiring target.`,
		Version:      version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ./"+appName+".toml)")

	// Register all subcommands
	root.AddCommand(c.networkCommand())
	root.AddCommand(c.reportCommand())
	root.AddCommand(c.simulateCommand())
	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.completionCommand())

	return root
}
