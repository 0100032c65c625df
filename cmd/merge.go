/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"gitlab.com/NebulousLabs/errors"

	"logspread/constants"
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge [/var/log/]file.log",
	Short: "Merge rotated log files into one ordered stream",
	Long: `Read all logs for a program, decompressing them if necessary, and merge
them into a single byte-ordered stream. Each source file is expected to be
internally ordered. The merge is streaming, so memory use stays bounded by
the number of source files rather than their size.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := ParseMergeConfig(cmd, args)
		if err != nil {
			return err
		}

		// Merged lines go to stdout unless an output file was requested. The
		// summary moves to stderr when stdout carries the data.
		merged := cmd.OutOrStdout()
		report := cmd.ErrOrStderr()
		if config.Output != "" {
			file, err := os.OpenFile(config.Output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, constants.OutputFileMode)
			if err != nil {
				return errors.AddContext(err, "unable to create merge output file")
			}
			merged = file
			report = cmd.OutOrStdout()
			defer file.Close()

			merger := NewMerger(config, merged, report)
			if err := merger.Run(); err != nil {
				return err
			}
			return errors.AddContext(file.Close(), "unable to close merge output file")
		}

		return NewMerger(config, merged, report).Run()
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)

	// Define command flags
	mergeCmd.Flags().String("output", "", "File to write the merged stream into (default stdout)")
}
