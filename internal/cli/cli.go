// Package cli implements the bhopengraph command-line interface.
//
// This package provides commands for inspecting, validating, and previewing
// BloodHound OpenGraph JSON files, plus a sample-graph generator for testing
// ingestion pipelines. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - info: Summarize a graph file (counts, isolated elements, validation)
//   - validate: Check a graph file and exit non-zero on inconsistencies
//   - render: Generate a DOT or SVG preview of a graph file
//   - sample: Emit a sample graph document
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/p0dalirius/bhopengraph/pkg/buildinfo"
)

// appName is the application name used for the binary and display.
const appName = "bhopengraph"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
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
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Build and inspect BloodHound OpenGraph files",
		Long:         `bhopengraph works with BloodHound OpenGraph JSON documents: it summarizes and validates graph files produced by collectors, renders previews, and generates sample documents for testing ingestion.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.infoCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.sampleCommand())
	root.AddCommand(c.completionCommand())

	return root
}
