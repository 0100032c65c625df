/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"
)

// spreadCmd represents the spread command
var spreadCmd = &cobra.Command{
	Use:   "spread [/var/log/]file.log n-files",
	Short: "Spread rotated log lines randomly across n files",
	Long: `Read all logs for a program, decompressing them if necessary, and then
write them out into n files in the current directory with lines randomly
interleaved. Output files are named file.log.a, file.log.b, and so on.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := ParseSpreadConfig(cmd, args)
		if err != nil {
			return err
		}

		// Seed from system time unless a fixed seed was requested.
		seed := config.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))

		spreader := NewSpreader(config, rng, cmd.OutOrStdout())
		return spreader.Run()
	},
}

func init() {
	rootCmd.AddCommand(spreadCmd)

	// Define command flags
	spreadCmd.Flags().Int64("seed", 0, "Seed for the partition RNG (0 seeds from system time)")
	spreadCmd.Flags().Bool("check-order", false, "Note source lines that are out of byte order")
	spreadCmd.Flags().String("out-dir", ".", "Directory to write the output files into")
}
