// Package cli implements the dungeongraph command-line interface.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/voidshard/dungeongraph"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance logging to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "dungeongraph",
		Short:        "Dungeongraph lays out procedural dungeons",
		Long:         `Dungeongraph scatters rooms, pushes them apart, keeps the rooms between the largest ones & joins them with straight hallways.`,
		SilenceUsage: true,
	}

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.validateCommand())

	return root
}

// loadConfig reads the config at fpath, or the defaults if fpath is empty.
func loadConfig(fpath string) (*dungeongraph.Config, error) {
	if fpath == "" {
		return dungeongraph.DefaultConfig(), nil
	}
	return dungeongraph.LoadConfig(fpath)
}
