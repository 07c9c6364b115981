package main

import (
	"github.com/spf13/cobra"

	"github.com/aellingwood/placeholders/internal/icon"
)

// outputDir is where the icons are written, relative to the working
// directory. It must already exist.
const outputDir = "public"

var rootCmd = &cobra.Command{
	Use:           "placeholders",
	Short:         "Generate placeholder company icons",
	Long:          "Placeholders renders the fixed set of 64x64 company icons into public/.",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return icon.Run(outputDir, cmd.OutOrStdout())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
