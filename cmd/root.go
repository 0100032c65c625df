/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "logspread",
	Short: "Spread or merge rotated log files",
	Long: `logspread reads all rotated logs for a program, decompressing them
if necessary, and either spreads their lines across n files with lines
randomly interleaved, or merges them into a single ordered stream.`,
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main() and returns any error the command produced.
func Execute() error {
	return rootCmd.Execute()
}

// GetRootCmd returns the root command for use by external tools
func GetRootCmd() *cobra.Command {
	return rootCmd
}
