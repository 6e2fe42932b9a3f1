// Package cli provides the command-line interface for the schemas builder.
package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

// Version is the release version, set via -ldflags.
var Version = "dev"

// verbose enables debug logging
var verbose bool

// Execute creates and runs the root command.
func Execute() error {
	rootCmd := &cobra.Command{
		Use:   "schemas",
		Short: "Rebuild JSON Schemas for Ansible files",
		Long: `schemas rebuilds the JSON Schema artifacts published for Ansible
files (playbooks, tasks, vars, galaxy and role metadata, requirements,
molecule and zuul configuration) and dumps sanitized per-module
documentation from ansible-doc.`,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(newDocsCommand())
	rootCmd.AddCommand(newBuildCommand())
	rootCmd.AddCommand(newPlatformsCommand())

	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}
