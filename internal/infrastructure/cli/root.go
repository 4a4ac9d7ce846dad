// Package cli implements the handoff command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "handoff",
	Version: Version,
	Short:   "Export your backlog to AI coding assistants",
	Long: `Handoff keeps a four-level backlog (Epic → Feature → User Story → Task)
and renders any part of it into assistant-ready artifacts:
Cursor rules, Copilot instructions and WRAP issues, v0 UI specs,
Devin task briefs, Linear issues, and generic JSON/CSV/Markdown.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() error {
	return RootCmd.Execute()
}
