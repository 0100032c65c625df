/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// generateDocsCmd represents the generateDocs command
var generateDocsCmd = &cobra.Command{
	Use:   "generateDocs",
	Short: "Generate and write CLI tool docs",
	Long:  `Generate and write CLI tool docs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := os.MkdirAll("./docs/", 0755); err != nil {
			return err
		}
		return doc.GenMarkdownTree(rootCmd, "./docs/")
	},
}

func init() {
	rootCmd.AddCommand(generateDocsCmd)
}
