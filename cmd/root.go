// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pr-report",
	Short: "A CLI tool to report pull-request activity as an Excel workbook.",
	Long: `pr-report collects the pull requests a fixed set of authors opened in a
GitHub organization within a creation-date window, enriches each one with
per-file change statistics, and writes a two-sheet Excel report (the raw
PR list plus author, top-PR and top-repository summaries).`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	// Add a persistent flag for verbose output, available to all commands.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose/debug logging")
}
