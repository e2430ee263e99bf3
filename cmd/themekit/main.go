package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/AvengeMedia/themekit/internal/log"
)

var Version = "dev"

var rootCmd = &cobra.Command{
	Use:     "themekit",
	Short:   "Theme analysis and FOUC tooling",
	Long:    "Analyze CSS custom-property themes for accessibility and generate the pre-paint theme-restore script for web integrations",
	Version: Version,
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		debug, _ := cmd.Flags().GetBool("debug")
		log.SetDebug(debug)
	}

	rootCmd.AddCommand(varsCmd)
	rootCmd.AddCommand(contrastCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(foucCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(previewCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
